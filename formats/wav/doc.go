// SPDX-License-Identifier: EPL-2.0

// Package wav writes mono 16-bit PCM WAV files.
//
// The file is assembled from the packed records of package riff and written
// through a wbfile.File, so every header field lands in the byte order the
// format requires on any host.
//
// # Layout
//
// A file is a 44-byte header followed by the samples:
//
//	0x00  "RIFF"  riff size (LE)  "WAVE"
//	0x0C  "fmt "  16 (LE)
//	0x14  format=1  channels=1  rate  byte rate  block align=2  bits=16
//	0x24  "data"  data size (LE)
//	0x2C  samples, little-endian
//
// The data size is twice the sample count and the riff size is 36 plus the
// data size.
//
// # Writing
//
// Save creates or truncates a file:
//
//	if err := wav.Save("take.wav", samples, 32000); err != nil {
//	    var short *wbfile.ShortWriteError
//	    if errors.As(err, &short) {
//	        // disk full
//	    }
//	}
//
// SaveAtomic writes to a sibling temporary file and renames it into place.
// WriteWAV16 serializes to any io.Writer. FileName names a recording after its
// capture time.
//
// Samples are numeric values. They are stored little-endian whatever the
// byte order of the machine running the program.
//
// # Checking
//
// Verify reads a file back with github.com/go-audio/wav and reports its
// format.
package wav
