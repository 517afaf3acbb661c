// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrInvalidSampleRate    = errors.New("invalid sample rate")
	ErrTooManySamples       = errors.New("too many samples for a WAV file")
	ErrTruncated            = errors.New("WAV data chunk is truncated")
)
