// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"os"
	"time"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/micwav/riff"
)

// Info describes a WAV file as read back from disk.
type Info struct {
	SampleRate uint32
	Channels   uint16
	BitDepth   uint16
	Format     riff.AudioFormat
	NumSamples int
	DataSize   uint32
	Duration   time.Duration
}

// Verify decodes the file at path independently of the writer and checks that
// it is a mono 16-bit PCM WAV whose payload is as long as its data chunk header
// says. Files without samples are reported as ErrNotWavFile, short payloads as
// ErrTruncated.
func Verify(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	dec := gowav.NewDecoder(f)
	if !dec.IsValidFile() {
		return Info{}, ErrNotWavFile
	}

	info := Info{
		SampleRate: dec.SampleRate,
		Channels:   dec.NumChans,
		BitDepth:   dec.BitDepth,
		Format:     riff.AudioFormat(dec.WavAudioFormat),
	}
	if info.Format != riff.PCM || info.Channels != Channels || info.BitDepth != BitsPerSample {
		return info, fmt.Errorf("%w: %s, %d channel(s), %d bits",
			ErrUnsupportedWavLayout, info.Format, info.Channels, info.BitDepth)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return info, fmt.Errorf("reading samples of %s: %w", path, err)
	}

	info.NumSamples = len(buf.Data)
	info.DataSize = uint32(dec.PCMSize)
	info.Duration = time.Duration(info.NumSamples) * time.Second / time.Duration(info.SampleRate)

	if read := info.NumSamples * bytesPerSample; read != dec.PCMSize {
		return info, fmt.Errorf("%w: %s holds %d of %d bytes", ErrTruncated, path, read, dec.PCMSize)
	}

	return info, nil
}
