// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/micwav/riff"
)

func TestVerify(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.wav")
	samples := make([]int16, 8000)
	for i := range samples {
		samples[i] = int16(i*7 - 20000)
	}

	if err := Save(path, samples, 16000); err != nil {
		t.Fatal(err)
	}

	info, err := Verify(path)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	want := Info{
		SampleRate: 16000,
		Channels:   1,
		BitDepth:   16,
		Format:     riff.PCM,
		NumSamples: 8000,
		DataSize:   16000,
		Duration:   500 * time.Millisecond,
	}
	if info != want {
		t.Errorf("Verify() = %+v, want %+v", info, want)
	}
}

func TestVerify_SamplesRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.wav")
	samples := []int16{-32768, -1000, -1, 0, 1, 0x0102, 32767}

	if err := Save(path, samples, 8000); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	dec := gowav.NewDecoder(f)
	if !dec.IsValidFile() {
		t.Fatal("IsValidFile() = false")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer() error = %v", err)
	}
	if len(buf.Data) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(buf.Data), len(samples))
	}
	for i, s := range samples {
		if buf.Data[i] != int(s) {
			t.Errorf("sample[%d] = %d, want %d", i, buf.Data[i], s)
		}
	}
}

func TestVerify_Truncated(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cut.wav")
	if err := Save(path, make([]int16, 1000), 8000); err != nil {
		t.Fatal(err)
	}
	if err := os.Truncate(path, HeaderSize+200); err != nil {
		t.Fatal(err)
	}

	info, err := Verify(path)
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("Verify() error = %v, want %v", err, ErrTruncated)
	}
	if info.DataSize != 2000 {
		t.Errorf("DataSize = %d, want 2000 from the data chunk header", info.DataSize)
	}
	if info.NumSamples != 100 {
		t.Errorf("NumSamples = %d, want 100", info.NumSamples)
	}
}

func TestVerify_NotWav(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "noise.wav")
	if err := os.WriteFile(path, []byte("this is definitely not a riff file, just text"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Verify(path); !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Verify() error = %v, want %v", err, ErrNotWavFile)
	}
}

func TestVerify_Stereo(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "stereo.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	enc := gowav.NewEncoder(f, 8000, 16, 2, int(riff.PCM))
	buf := stereoBuffer(8000, 400)
	if err := enc.Write(buf); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	info, err := Verify(path)
	if !errors.Is(err, ErrUnsupportedWavLayout) {
		t.Fatalf("Verify() error = %v, want %v", err, ErrUnsupportedWavLayout)
	}
	if info.Channels != 2 {
		t.Errorf("Channels = %d, want 2", info.Channels)
	}
}

func TestVerify_Missing(t *testing.T) {
	t.Parallel()

	if _, err := Verify(filepath.Join(t.TempDir(), "none.wav")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Verify() error = %v, want not exist", err)
	}
}

func stereoBuffer(rate, frames int) *goaudio.IntBuffer {
	data := make([]int, frames*2)
	for i := range data {
		data[i] = (i % 64) * 100
	}
	return &goaudio.IntBuffer{
		Data:           data,
		Format:         &goaudio.Format{NumChannels: 2, SampleRate: rate},
		SourceBitDepth: 16,
	}
}
