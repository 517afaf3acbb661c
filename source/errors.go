// SPDX-License-Identifier: EPL-2.0

package source

import "errors"

var (
	// ErrUnsupportedFormat indicates that no loader is registered for an extension.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrOddLength indicates raw 16-bit data with a dangling byte.
	ErrOddLength = errors.New("raw data has an odd number of bytes")

	// ErrOnlyPCM16bitSupported indicates a WAV or AIFF that is not 16-bit PCM.
	ErrOnlyPCM16bitSupported = errors.New("only 16-bit PCM is supported")

	// ErrNotAiffFile indicates the input is not a valid AIFF file.
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedLayout indicates a decoder reported no usable format.
	ErrUnsupportedLayout = errors.New("unsupported audio layout")

	// ErrInvalidSampleRate indicates a missing or out of range sample rate.
	ErrInvalidSampleRate = errors.New("invalid sample rate")
)
