// SPDX-License-Identifier: EPL-2.0

// Package sinktest provides an in-memory write sink for tests.
package sinktest

import (
	"errors"
	"io"
)

// ErrSeek is returned by Seek when a Sink is configured to fail seeking.
var ErrSeek = errors.New("sinktest: seek refused")

// Sink is an in-memory io.WriteSeeker/io.Closer. It can be told to accept only
// a limited number of bytes, to fail seeks, or to fail on close.
type Sink struct {
	data []byte
	pos  int64

	limit    int // remaining bytes accepted, -1 for unlimited
	failSeek bool
	closeErr error

	// Writes counts calls to Write, Closes calls to Close.
	Writes int
	Closes int
}

// NewSink creates a sink that accepts everything.
func NewSink() *Sink {
	return &Sink{limit: -1}
}

// NewShortSink creates a sink that stores at most limit bytes in total. The
// write crossing the limit returns a short count with io.ErrShortWrite.
func NewShortSink(limit int) *Sink {
	return &Sink{limit: limit}
}

// FailSeek makes every Seek call fail with ErrSeek.
func (s *Sink) FailSeek() *Sink {
	s.failSeek = true
	return s
}

// FailClose makes Close return err.
func (s *Sink) FailClose(err error) *Sink {
	s.closeErr = err
	return s
}

// Bytes returns everything written so far.
func (s *Sink) Bytes() []byte { return s.data }

func (s *Sink) Write(p []byte) (int, error) {
	s.Writes++

	n := len(p)
	var err error
	if s.limit >= 0 && n > s.limit {
		n = s.limit
		err = io.ErrShortWrite
	}
	if s.limit >= 0 {
		s.limit -= n
	}

	end := s.pos + int64(n)
	if end > int64(len(s.data)) {
		s.data = append(s.data, make([]byte, end-int64(len(s.data)))...)
	}
	copy(s.data[s.pos:end], p[:n])
	s.pos = end

	return n, err
}

func (s *Sink) Seek(offset int64, whence int) (int64, error) {
	if s.failSeek {
		return 0, ErrSeek
	}

	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = s.pos + offset
	case io.SeekEnd:
		pos = int64(len(s.data)) + offset
	default:
		return 0, errors.New("sinktest: invalid whence")
	}

	if pos < 0 {
		return 0, errors.New("sinktest: negative position")
	}

	s.pos = pos
	return pos, nil
}

func (s *Sink) Close() error {
	s.Closes++
	return s.closeErr
}
