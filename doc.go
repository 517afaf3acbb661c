// SPDX-License-Identifier: EPL-2.0

// Package micwav turns microphone captures into WAV files.
//
// The module is split by concern:
//   - endian: scalar values kept in a declared byte order
//   - riff: the packed RIFF/WAVE header records
//   - wbfile: a buffered sequential file writer with typed errors
//   - formats/wav: the mono 16-bit PCM serializer and its verification
//   - source: loaders turning recordings on disk into samples
//   - resample: sample rate conversion
//   - cmd/micwav: the command line front end
//
// # Quick Start
//
//	clip, err := source.LoadFile(source.Default(32000), "capture.pcm")
//	if err != nil {
//	    return err
//	}
//	err = wav.Save(wav.FileName(time.Now()), clip.Samples, clip.SampleRate)
//
// # Byte Order
//
// The capture device produces big-endian samples while WAV stores
// little-endian ones. Records in package riff declare the order of every
// field in its type, for example endian.U32LE, so a value is converted when it
// is stored and read back as a plain number:
//
//	var size endian.U32LE = endian.ToLE(uint32(40))
//	n := endian.FromLE(size) // 40 on any machine
//
// On a little-endian machine the LE types are the native ones and no swap
// happens. Unsupported architectures fail to build.
package micwav
