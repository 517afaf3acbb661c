// SPDX-License-Identifier: EPL-2.0

// Package source loads recordings into memory as mono 16-bit samples ready
// for the WAV writer.
//
// # Formats
//
// Loaders are registered in a Registry under a file extension. Default
// returns a registry with:
//   - pcm, raw: headerless signed 16-bit big-endian mono, as dumped by the
//     capture device
//   - wav: 16-bit PCM through github.com/go-audio/wav
//   - aif, aiff: 16-bit PCM through github.com/go-audio/aiff
//   - mp3: through github.com/hajimehoshi/go-mp3
//   - ogg: Ogg Vorbis through github.com/jfreymuth/oggvorbis
//
// Inputs with more than one channel are averaged down to mono.
//
// # Usage
//
//	reg := source.Default(32000)
//	clip, err := source.LoadFile(reg, "capture.pcm")
//	if err != nil {
//	    return err
//	}
//	err = wav.Save("capture.wav", clip.Samples, clip.SampleRate)
//
// A Clip holds numeric sample values. Byte order only matters inside the
// loaders, which read each format in the order it is stored.
package source
