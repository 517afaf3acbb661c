// SPDX-License-Identifier: EPL-2.0

package wbfile

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrClosed reports use of a File after Close.
	ErrClosed = errors.New("wbfile: file already closed")

	// ErrNotSeekable reports a seek or position query on a sink without Seek.
	ErrNotSeekable = errors.New("wbfile: sink is not seekable")
)

// OpenError reports a file that could not be created for writing.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	// Report the OS error text once, without repeating the operation and path.
	cause := e.Err
	var pe *fs.PathError
	if errors.As(cause, &pe) {
		cause = pe.Err
	}
	return fmt.Sprintf("wbfile: failed to open '%s': %v", e.Path, cause)
}

func (e *OpenError) Unwrap() error { return e.Err }

// ShortWriteError reports a write that stored fewer bytes than requested.
type ShortWriteError struct {
	Requested int
	Written   int
	Err       error
}

func (e *ShortWriteError) Error() string {
	msg := fmt.Sprintf("wbfile: wrote only %#x bytes when writing %#x-byte object", e.Written, e.Requested)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ShortWriteError) Unwrap() error { return e.Err }

// SeekError reports a failed reposition.
type SeekError struct {
	Offset int64
	Whence Origin
	Err    error
}

func (e *SeekError) Error() string {
	var msg string
	switch e.Whence {
	case Current:
		msg = fmt.Sprintf("wbfile: failed to seek by %+#x", e.Offset)
	case End:
		msg = fmt.Sprintf("wbfile: failed to seek to end%+#x", e.Offset)
	default:
		msg = fmt.Sprintf("wbfile: failed to seek to %#x", e.Offset)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SeekError) Unwrap() error { return e.Err }

// PositionError reports a failed position query.
type PositionError struct {
	Err error
}

func (e *PositionError) Error() string {
	return "wbfile: failed to get file position: " + e.Err.Error()
}

func (e *PositionError) Unwrap() error { return e.Err }
