// SPDX-License-Identifier: EPL-2.0

package riff

import "fmt"

// ID is a four character code. Its numeric value is the big-endian reading of
// the four ASCII bytes, so it is stored in big-endian order on disk.
type ID uint32

const (
	RIFF ID = 'R'<<24 | 'I'<<16 | 'F'<<8 | 'F'
	WAVE ID = 'W'<<24 | 'A'<<16 | 'V'<<8 | 'E'
	Fmt  ID = 'f'<<24 | 'm'<<16 | 't'<<8 | ' '
	Data ID = 'd'<<24 | 'a'<<16 | 't'<<8 | 'a'
)

// FourCC builds an ID from its four bytes, first byte most significant.
func FourCC(a, b, c, d byte) ID {
	return ID(a)<<24 | ID(b)<<16 | ID(c)<<8 | ID(d)
}

// ParseID converts a four byte string such as "fmt " to an ID.
func ParseID(s string) (ID, error) {
	if len(s) != 4 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return FourCC(s[0], s[1], s[2], s[3]), nil
}

func (id ID) String() string {
	return string([]byte{byte(id >> 24), byte(id >> 16), byte(id >> 8), byte(id)})
}

// AudioFormat is the format code of a WAVE fmt chunk.
type AudioFormat uint16

const (
	PCM         AudioFormat = 0x0001
	IEEEFloat   AudioFormat = 0x0003
	// As reported by ffmpeg.
	ADPCMYamaha AudioFormat = 0x0020
	Extensible  AudioFormat = 0xfffe
)

func (f AudioFormat) String() string {
	switch f {
	case PCM:
		return "pcm"
	case IEEEFloat:
		return "ieee_float"
	case ADPCMYamaha:
		return "adpcm_yamaha"
	case Extensible:
		return "extensible"
	default:
		return fmt.Sprintf("AudioFormat(0x%04x)", uint16(f))
	}
}
