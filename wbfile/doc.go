// SPDX-License-Identifier: EPL-2.0

// Package wbfile writes fixed-size binary values to a buffered file.
//
// A File owns its sink exclusively. Values are written as their exact memory
// image, so records declared with package endian land on disk in their
// declared byte order:
//
//	f, err := wbfile.Create("out.wav")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	if err := wbfile.Write(f, header); err != nil {
//	    return err
//	}
//	n, err := wbfile.WriteRange(f, samples)
//
// # Errors
//
// Every failure is reported with a dedicated type so callers can match it with
// errors.As:
//   - *OpenError: the file could not be created
//   - *ShortWriteError: fewer bytes than requested reached the sink
//   - *SeekError: repositioning failed
//   - *PositionError: the current position could not be queried
//
// Nothing is retried. A File is not safe for concurrent use.
package wbfile
