// SPDX-License-Identifier: EPL-2.0

// Package riff describes the RIFF/WAVE records written by micwav.
//
// Every record is a plain Go struct whose fields carry their byte order in
// their type (see package endian), so the in-memory layout of a record is the
// on-disk layout:
//
//	Header       12 bytes  "RIFF" <size LE> "WAVE"
//	ChunkHeader   8 bytes  <tag BE> <size LE>
//	FormatChunk  16 bytes  PCM description, all fields LE
//
// The sizes and field offsets are asserted at compile time in layout.go. A
// reordered or inserted field fails the build instead of producing a corrupt
// file.
package riff
