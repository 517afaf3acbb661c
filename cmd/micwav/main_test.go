// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ik5/micwav/formats/wav"
	"github.com/ik5/micwav/wbfile"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	cfg, err := parseFlags([]string{"-o", "out.wav", "-rate", "16000", "-resample", "8000", "-verify", "-atomic", "-buffer", "4096", "-json", "-v", "in.pcm"}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	want := config{
		input:    "in.pcm",
		output:   "out.wav",
		dir:      ".",
		rate:     16000,
		resample: 8000,
		buffer:   4096,
		verify:   true,
		atomic:   true,
		verbose:  true,
		json:     true,
	}
	if cfg != want {
		t.Errorf("parseFlags() = %+v, want %+v", cfg, want)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := parseFlags([]string{"in.pcm"}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	if cfg.rate != defaultRate || cfg.buffer != wbfile.DefaultBufferSize || cfg.dir != "." || cfg.output != "" {
		t.Errorf("parseFlags() = %+v", cfg)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"no input", nil, errUsage},
		{"two inputs", []string{"a.pcm", "b.pcm"}, errUsage},
		{"help", []string{"-h"}, flag.ErrHelp},
		{"zero rate", []string{"-rate", "0", "a.pcm"}, nil},
		{"rate overflows byte rate", []string{"-rate", "2147483648", "a.pcm"}, nil},
		{"resample overflows byte rate", []string{"-resample", "2147483648", "a.pcm"}, nil},
		{"zero buffer", []string{"-buffer", "0", "a.pcm"}, nil},
		{"unknown flag", []string{"-x", "a.pcm"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := parseFlags(tt.args, io.Discard)
			if err == nil {
				t.Fatal("parseFlags() error = nil")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("parseFlags() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseFlags_HighestRate(t *testing.T) {
	t.Parallel()

	rate := strconv.Itoa(wav.MaxSampleRate)
	cfg, err := parseFlags([]string{"-rate", rate, "-resample", rate, "a.pcm"}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if cfg.rate != wav.MaxSampleRate || cfg.resample != wav.MaxSampleRate {
		t.Errorf("rate = %d, resample = %d, want %d", cfg.rate, cfg.resample, wav.MaxSampleRate)
	}
}

func TestParseFlags_Version(t *testing.T) {
	t.Parallel()

	cfg, err := parseFlags([]string{"-version"}, io.Discard)
	if err != nil || !cfg.version {
		t.Errorf("parseFlags(-version) = %+v, %v", cfg, err)
	}
}

func TestOutputPath(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.May, 6, 7, 8, 9, 10_000_000, time.Local)

	if got := outputPath(config{output: "x.wav", dir: "d"}, now); got != "x.wav" {
		t.Errorf("outputPath() = %q, want x.wav", got)
	}

	want := filepath.Join("d", "MIC-2025-05-06--07-08-09.010.wav")
	if got := outputPath(config{dir: "d"}, now); got != want {
		t.Errorf("outputPath() = %q, want %q", got, want)
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	newLogger(config{json: true}, &buf).Info("hello", "k", 1)
	if !strings.HasPrefix(buf.String(), "{") {
		t.Errorf("JSON logger wrote %q", buf.String())
	}

	buf.Reset()
	log := newLogger(config{}, &buf)
	log.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug message logged without -v: %q", buf.String())
	}

	if !newLogger(config{verbose: true}, io.Discard).Enabled(t.Context(), slog.LevelDebug) {
		t.Error("-v does not enable debug logging")
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "capture.pcm")
	if err := os.WriteFile(in, []byte{0x01, 0x02, 0x03, 0x04}, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config{input: in, dir: dir, rate: 32000, buffer: 64, verify: true}
	now := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	out, err := run(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), now)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if want := filepath.Join(dir, wav.FileName(now)); out != want {
		t.Errorf("run() wrote %q, want %q", out, want)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data[wav.HeaderSize:], []byte{0x02, 0x01, 0x04, 0x03}) {
		t.Errorf("payload = % x, want 02 01 04 03", data[wav.HeaderSize:])
	}
}

func TestRun_Resample(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "capture.raw")
	if err := os.WriteFile(in, make([]byte, 2*32000), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config{input: in, output: filepath.Join(dir, "out.wav"), rate: 32000, resample: 16000, buffer: 4096, atomic: true}
	out, err := run(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), time.Now())
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	info, err := wav.Verify(out)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if info.SampleRate != 16000 || info.NumSamples != 16000 {
		t.Errorf("Verify() = %+v, want 16000 samples at 16000 Hz", info)
	}
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "capture.pcm")
	if err := os.WriteFile(in, []byte{1, 2}, 0o644); err != nil {
		t.Fatal(err)
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	var openErr *wbfile.OpenError
	_, err := run(config{input: in, dir: filepath.Join(dir, "missing"), rate: 8000, buffer: 64}, log, time.Now())
	if !errors.As(err, &openErr) {
		t.Errorf("run() error = %v, want *wbfile.OpenError", err)
	}

	_, err = run(config{input: filepath.Join(dir, "x.flac"), dir: dir, rate: 8000, buffer: 64}, log, time.Now())
	if err == nil {
		t.Error("run() error = nil for unsupported input")
	}
}
