//go:build mips || mips64 || ppc64 || s390x

// SPDX-License-Identifier: EPL-2.0

package riff

import "github.com/ik5/micwav/endian"

type (
	idBE          = ID
	audioFormatLE = endian.Swapped[AudioFormat]
)
