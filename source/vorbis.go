// SPDX-License-Identifier: EPL-2.0

package source

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// Vorbis loads Ogg Vorbis audio.
type Vorbis struct{}

func (Vorbis) Load(r io.Reader) (*Clip, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return loadVorbis(dec)
}

func loadVorbis(dec oggReader) (*Clip, error) {
	rate, channels := dec.SampleRate(), dec.Channels()
	if rate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if channels < 1 {
		return nil, ErrUnsupportedLayout
	}

	// Read returns interleaved values, so keep the buffer frame aligned.
	buf := make([]float32, 4096*channels)
	var interleaved []int16

	for {
		n, err := dec.Read(buf)
		for _, v := range buf[:n] {
			interleaved = append(interleaved, Float32ToInt16(v))
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding vorbis: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return &Clip{
		Samples:    Downmix(interleaved, channels),
		SampleRate: uint32(rate),
	}, nil
}
