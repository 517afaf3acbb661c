//go:build 386 || amd64 || arm || arm64 || loong64 || mips64le || mipsle || ppc64le || riscv64 || wasm

// SPDX-License-Identifier: EPL-2.0

package riff

import "github.com/ik5/micwav/endian"

type (
	idBE          = endian.Swapped[ID]
	audioFormatLE = AudioFormat
)
