// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"
	"math"

	"github.com/ik5/micwav/wbfile"
)

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate to w. The bytes are the
// same as those written by Save. w is not closed.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	if sampleRate <= 0 || uint64(sampleRate) > math.MaxUint32 {
		return ErrInvalidSampleRate
	}

	l, err := NewLayout(len(samples), uint32(sampleRate))
	if err != nil {
		return err
	}

	f := wbfile.New(w, wbfile.WithBufferSize(bufferSize(l)))
	if err := encode(f, l, samples); err != nil {
		return err
	}

	return f.Flush()
}

// bufferSize fits the whole file in one buffer, up to wbfile.DefaultBufferSize.
func bufferSize(l Layout) int {
	return int(min(int64(wbfile.DefaultBufferSize), HeaderSize+int64(l.DataSize)))
}
