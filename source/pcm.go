// SPDX-License-Identifier: EPL-2.0

package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/micwav/formats/wav"
	"github.com/ik5/micwav/riff"
)

// pcmReader is the part of the go-audio wav and aiff decoders used here.
type pcmReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// WAV loads 16-bit PCM WAV files with any number of channels.
type WAV struct{}

func (WAV) Load(r io.Reader) (*Clip, error) {
	rs, err := asReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, wav.ErrNotWavFile
	}

	if riff.AudioFormat(dec.WavAudioFormat) != riff.PCM || dec.BitDepth != 16 {
		return nil, fmt.Errorf("%w: %s, %d bits",
			ErrOnlyPCM16bitSupported, riff.AudioFormat(dec.WavAudioFormat), dec.BitDepth)
	}

	return readPCM(dec)
}

// AIFF loads 16-bit AIFF files with any number of channels.
type AIFF struct{}

func (AIFF) Load(r io.Reader) (*Clip, error) {
	rs, err := asReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()
	if dec.BitDepth != 16 {
		return nil, fmt.Errorf("%w: %d bits", ErrOnlyPCM16bitSupported, dec.BitDepth)
	}

	return readPCM(dec)
}

func readPCM(dec pcmReader) (*Clip, error) {
	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrUnsupportedLayout
	}
	if format.SampleRate <= 0 || uint64(format.SampleRate) > math.MaxUint32 {
		return nil, ErrInvalidSampleRate
	}

	buf := &goaudio.IntBuffer{
		Data:   make([]int, 4096*format.NumChannels),
		Format: format,
	}
	var interleaved []int

	for {
		n, err := dec.PCMBuffer(buf)
		interleaved = append(interleaved, buf.Data[:n]...)

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding pcm: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return &Clip{
		Samples:    Downmix(interleaved, format.NumChannels),
		SampleRate: uint32(format.SampleRate),
	}, nil
}

// go-audio decoders need to seek.
func asReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}
