// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ik5/micwav/endian"
	"github.com/ik5/micwav/wbfile"
)

// Save writes samples to a new mono 16-bit PCM WAV file at path, replacing any
// existing file.
//
// Errors from package wbfile are returned as they are, so the failing step can
// be told apart with errors.As. The file is always closed; if a write fails the
// file is left incomplete.
func Save(path string, samples []int16, sampleRate uint32, opts ...wbfile.Option) (err error) {
	l, err := NewLayout(len(samples), sampleRate)
	if err != nil {
		return err
	}

	f, err := wbfile.Create(path, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return encode(f, l, samples)
}

// SaveBE is like Save for samples still in the big-endian order of the capture
// device.
func SaveBE(path string, samples []endian.I16BE, sampleRate uint32, opts ...wbfile.Option) error {
	native := make([]int16, len(samples))
	for i, s := range samples {
		native[i] = endian.FromBE(s)
	}

	return Save(path, native, sampleRate, opts...)
}

// SaveAtomic is like Save but writes to a temporary file in the same directory
// and renames it over path once complete, so path never holds a partial file.
// The file gets the wbfile.Options Perm mode exactly, without the umask.
func SaveAtomic(path string, samples []int16, sampleRate uint32, opts ...wbfile.Option) error {
	perm := wbfile.Resolve(opts...).Perm

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &wbfile.OpenError{Path: path, Err: err}
	}
	tmpPath := tmp.Name()
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing %s: %w", tmpPath, err)
	}

	if err := Save(tmpPath, samples, sampleRate, opts...); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming %s: %w", tmpPath, err)
	}

	return nil
}

// FileName returns the name of a recording taken at t, for example
// "MIC-2025-01-02--15-04-05.123.wav".
func FileName(t time.Time) string {
	return t.Format("MIC-2006-01-02--15-04-05.000.wav")
}
