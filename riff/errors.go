// SPDX-License-Identifier: EPL-2.0

package riff

import "errors"

var (
	// ErrInvalidID reports a chunk tag that is not exactly four bytes.
	ErrInvalidID = errors.New("riff: chunk id must be 4 bytes")
)
