// SPDX-License-Identifier: EPL-2.0

package wbfile

import "io/fs"

// DefaultBufferSize is the size of the output buffer of a File.
const DefaultBufferSize = 512 * 1024

// Options configures a File.
type Options struct {
	// BufferSize is the output buffer size in bytes. Zero or negative selects
	// the bufio default.
	BufferSize int

	// Perm is the mode used when Create makes a new file, before the umask.
	Perm fs.FileMode
}

var defaultOptions = Options{
	BufferSize: DefaultBufferSize,
	Perm:       0o644,
}

type Option func(*Options)

func WithBufferSize(n int) Option {
	return func(o *Options) { o.BufferSize = n }
}

func WithPerm(perm fs.FileMode) Option {
	return func(o *Options) { o.Perm = perm }
}

// Resolve returns the defaults with opts applied in order.
func Resolve(opts ...Option) Options {
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
