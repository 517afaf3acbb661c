// SPDX-License-Identifier: EPL-2.0

package source

import (
	"fmt"
	"io"

	"github.com/ik5/micwav/endian"
)

// Raw loads headerless signed 16-bit big-endian mono samples.
type Raw struct {
	SampleRate uint32
}

func (l Raw) Load(r io.Reader) (*Clip, error) {
	if l.SampleRate == 0 {
		return nil, ErrInvalidSampleRate
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading raw data: %w", err)
	}
	if len(data)%2 != 0 {
		return nil, ErrOddLength
	}

	stored := make([]endian.I16BE, len(data)/2)
	copy(endian.Bytes(stored), data)

	samples := make([]int16, len(stored))
	for i, v := range stored {
		samples[i] = endian.FromBE(v)
	}

	return &Clip{Samples: samples, SampleRate: l.SampleRate}, nil
}
