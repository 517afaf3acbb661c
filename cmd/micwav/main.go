// SPDX-License-Identifier: EPL-2.0

// Command micwav converts a microphone capture into a mono 16-bit PCM WAV file.
//
//	micwav [flags] <input>
//
// The input format is chosen by extension. Headerless .pcm and .raw dumps are
// read as big-endian 16-bit samples at -rate Hz.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ik5/micwav/formats/wav"
	"github.com/ik5/micwav/resample"
	"github.com/ik5/micwav/source"
	"github.com/ik5/micwav/wbfile"
)

const VERSION = "1.0.0"

// Default sample rate of the capture device.
const defaultRate = 32000

var errUsage = errors.New("usage")

type config struct {
	input    string
	output   string
	dir      string
	rate     uint
	resample uint
	buffer   int
	verify   bool
	atomic   bool
	verbose  bool
	json     bool
	version  bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("micwav", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.output, "o", "", "Output file (defaults to MIC-<time>.wav in -dir)")
	fs.StringVar(&cfg.dir, "dir", ".", "Output directory used when -o is not set")
	fs.UintVar(&cfg.rate, "rate", defaultRate, "Sample rate of headerless .pcm and .raw input")
	fs.UintVar(&cfg.resample, "resample", 0, "Resample the output to this rate (0 keeps the input rate)")
	fs.IntVar(&cfg.buffer, "buffer", wbfile.DefaultBufferSize, "Write buffer size in bytes")
	fs.BoolVar(&cfg.verify, "verify", false, "Read the written file back and check it")
	fs.BoolVar(&cfg.atomic, "atomic", false, "Write to a temporary file and rename it into place")
	fs.BoolVar(&cfg.verbose, "v", false, "Debug logging")
	fs.BoolVar(&cfg.json, "json", false, "Log as JSON")
	fs.BoolVar(&cfg.version, "version", false, "Display version information")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: micwav [flags] <input.{%s}>\n", strings.Join(source.Default(0).Formats(), "|"))
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.version {
		return cfg, nil
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return cfg, errUsage
	}
	cfg.input = fs.Arg(0)

	if cfg.rate == 0 || cfg.rate > wav.MaxSampleRate {
		return cfg, fmt.Errorf("-rate %d out of range", cfg.rate)
	}
	if cfg.resample > wav.MaxSampleRate {
		return cfg, fmt.Errorf("-resample %d out of range", cfg.resample)
	}
	if cfg.buffer <= 0 {
		return cfg, fmt.Errorf("-buffer must be positive, got %d", cfg.buffer)
	}

	return cfg, nil
}

func newLogger(cfg config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cfg.verbose {
		opts.Level = slog.LevelDebug
	}

	if cfg.json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// outputPath returns -o, or a name derived from now inside -dir.
func outputPath(cfg config, now time.Time) string {
	if cfg.output != "" {
		return cfg.output
	}
	return filepath.Join(cfg.dir, wav.FileName(now))
}

func run(cfg config, log *slog.Logger, now time.Time) (string, error) {
	start := time.Now()

	clip, err := source.LoadFile(source.Default(uint32(cfg.rate)), cfg.input)
	if err != nil {
		return "", err
	}
	log.Debug("loaded input",
		"path", cfg.input,
		"samples", len(clip.Samples),
		"rate", clip.SampleRate,
		"duration", clip.Duration())

	if cfg.resample != 0 && uint32(cfg.resample) != clip.SampleRate {
		samples, err := resample.Mono(clip.Samples, clip.SampleRate, uint32(cfg.resample))
		if err != nil {
			return "", fmt.Errorf("resampling: %w", err)
		}
		log.Debug("resampled", "from", clip.SampleRate, "to", cfg.resample, "samples", len(samples))
		clip = &source.Clip{Samples: samples, SampleRate: uint32(cfg.resample)}
	}

	out := outputPath(cfg, now)
	save := wav.Save
	if cfg.atomic {
		save = wav.SaveAtomic
	}
	if err := save(out, clip.Samples, clip.SampleRate, wbfile.WithBufferSize(cfg.buffer)); err != nil {
		return out, err
	}

	if cfg.verify {
		info, err := wav.Verify(out)
		if err != nil {
			return out, fmt.Errorf("verifying %s: %w", out, err)
		}
		log.Debug("verified", "path", out, "samples", info.NumSamples, "duration", info.Duration)
	}

	log.Info("saved recording",
		"path", out,
		"samples", len(clip.Samples),
		"rate", clip.SampleRate,
		"elapsed", time.Since(start))

	return out, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(2)
	}

	if cfg.version {
		fmt.Printf("micwav version %s\n", VERSION)
		os.Exit(0)
	}

	log := newLogger(cfg, os.Stderr)
	slog.SetDefault(log)

	if _, err := run(cfg, log, time.Now()); err != nil {
		log.Error("failed to save recording", "input", cfg.input, "error", err)
		os.Exit(1)
	}
}
