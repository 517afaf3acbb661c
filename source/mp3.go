// SPDX-License-Identifier: EPL-2.0

package source

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/micwav/endian"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// go-mp3 always decodes to stereo.
const mp3Channels = 2

// MP3 loads MPEG-1/2 layer III audio.
type MP3 struct{}

func (MP3) Load(r io.Reader) (*Clip, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return loadMP3(dec)
}

func loadMP3(dec mp3Reader) (*Clip, error) {
	rate := dec.SampleRate()
	if rate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3: %w", err)
	}

	// The decoder emits 16-bit little-endian PCM.
	stored := make([]endian.I16LE, len(data)/2)
	copy(endian.Bytes(stored), data)

	interleaved := make([]int16, len(stored))
	for i, v := range stored {
		interleaved[i] = endian.FromLE(v)
	}

	return &Clip{
		Samples:    Downmix(interleaved, mp3Channels),
		SampleRate: uint32(rate),
	}, nil
}
