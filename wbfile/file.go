// SPDX-License-Identifier: EPL-2.0

package wbfile

import (
	"bufio"
	"errors"
	"io"
	"os"
	"unsafe"

	"github.com/ik5/micwav/endian"
)

// Origin selects the reference point of SeekFrom.
type Origin int

const (
	Start   Origin = io.SeekStart
	Current Origin = io.SeekCurrent
	End     Origin = io.SeekEnd
)

func (o Origin) String() string {
	switch o {
	case Start:
		return "start"
	case Current:
		return "current"
	case End:
		return "end"
	default:
		return "invalid"
	}
}

// File is a buffered, write-only binary sink.
//
// A File must be closed exactly once; Close flushes the buffer and releases the
// sink. Pass it by pointer: moving the pointer moves ownership.
type File struct {
	sink   io.Writer
	buf    *bufio.Writer
	path   string
	closed bool
}

// Create creates or truncates the file at path.
func Create(path string, opts ...Option) (*File, error) {
	o := Resolve(opts...)

	fh, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, o.Perm)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	f := newFile(fh, o)
	f.path = path
	return f, nil
}

// New wraps w. The File takes ownership of w: Close closes it when w is an
// io.Closer. SeekFrom and Tell need w to be an io.Seeker.
func New(w io.Writer, opts ...Option) *File {
	return newFile(w, Resolve(opts...))
}

func newFile(w io.Writer, o Options) *File {
	return &File{
		sink: w,
		buf:  bufio.NewWriterSize(w, o.BufferSize),
	}
}

// Path returns the path given to Create, or "" for a File made by New.
func (f *File) Path() string { return f.path }

// Buffered returns the number of bytes waiting in the buffer.
func (f *File) Buffered() int { return f.buf.Buffered() }

// Write writes the memory image of v, exactly unsafe.Sizeof(v) bytes. T must
// not contain pointers.
func Write[T any](f *File, v T) error {
	if f.closed {
		return ErrClosed
	}

	b := unsafe.Slice((*byte)(unsafe.Pointer(&v)), unsafe.Sizeof(v))
	n, err := f.buf.Write(b)
	if n != len(b) {
		return &ShortWriteError{Requested: len(b), Written: n, Err: err}
	}

	return nil
}

// WriteRange writes the memory image of s in one operation and returns how many
// whole values were accepted. On a short write the count is below len(s) and
// the sink's error is returned with it; checking the count is the caller's
// job.
func WriteRange[T any](f *File, s []T) (int, error) {
	if f.closed {
		return 0, ErrClosed
	}

	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 || len(s) == 0 {
		return len(s), nil
	}

	n, err := f.buf.Write(endian.Bytes(s))
	return n / size, err
}

// Flush writes buffered bytes to the sink.
func (f *File) Flush() error {
	if f.closed {
		return ErrClosed
	}
	return f.flush()
}

func (f *File) flush() error {
	want := f.buf.Buffered()
	if err := f.buf.Flush(); err != nil {
		return &ShortWriteError{Requested: want, Written: want - f.buf.Buffered(), Err: err}
	}
	return nil
}

// SeekFrom flushes the buffer and moves the write position relative to whence.
// It returns the new offset from the start of the file.
func (f *File) SeekFrom(offset int64, whence Origin) (int64, error) {
	if f.closed {
		return 0, ErrClosed
	}

	s, ok := f.sink.(io.Seeker)
	if !ok {
		return 0, &SeekError{Offset: offset, Whence: whence, Err: ErrNotSeekable}
	}

	if err := f.flush(); err != nil {
		return 0, err
	}

	pos, err := s.Seek(offset, int(whence))
	if err != nil {
		return 0, &SeekError{Offset: offset, Whence: whence, Err: err}
	}

	return pos, nil
}

// Move moves the write position by offset bytes.
func (f *File) Move(offset int64) error {
	_, err := f.SeekFrom(offset, Current)
	return err
}

// Tell returns the logical write position, buffered bytes included.
func (f *File) Tell() (int64, error) {
	if f.closed {
		return 0, ErrClosed
	}

	s, ok := f.sink.(io.Seeker)
	if !ok {
		return 0, &PositionError{Err: ErrNotSeekable}
	}

	pos, err := s.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, &PositionError{Err: err}
	}

	return pos + int64(f.buf.Buffered()), nil
}

// Close flushes the buffer and closes the sink. Further calls return ErrClosed.
// The sink is closed even when the flush fails.
func (f *File) Close() error {
	if f.closed {
		return ErrClosed
	}
	f.closed = true

	err := f.flush()
	if c, ok := f.sink.(io.Closer); ok {
		if cerr := c.Close(); cerr != nil {
			if err == nil {
				return cerr
			}
			return errors.Join(err, cerr)
		}
	}

	return err
}
