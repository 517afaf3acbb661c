// SPDX-License-Identifier: EPL-2.0

package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Clip is a mono recording.
type Clip struct {
	Samples    []int16
	SampleRate uint32
}

// Duration returns the playing time of c.
func (c *Clip) Duration() time.Duration {
	if c.SampleRate == 0 {
		return 0
	}
	return time.Duration(len(c.Samples)) * time.Second / time.Duration(c.SampleRate)
}

// Loader reads a whole recording from r.
type Loader interface {
	Load(r io.Reader) (*Clip, error)
}

// Registry maps file extensions (without the dot, lower case) to loaders.
type Registry struct {
	loaders map[string]Loader

	mtx *sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		loaders: make(map[string]Loader),
		mtx:     &sync.RWMutex{},
	}
}

func (r *Registry) Register(ext string, l Loader) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.loaders[normalizeExt(ext)] = l
}

func (r *Registry) Get(ext string) (Loader, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	l, ok := r.loaders[normalizeExt(ext)]
	return l, ok
}

// Formats returns the registered extensions in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	out := make([]string, 0, len(r.loaders))
	for ext := range r.loaders {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// Default returns a registry holding every loader of this package. rawRate is
// the sample rate assumed for headerless pcm and raw files.
func Default(rawRate uint32) *Registry {
	reg := NewRegistry()

	raw := Raw{SampleRate: rawRate}
	reg.Register("pcm", raw)
	reg.Register("raw", raw)
	reg.Register("wav", WAV{})
	reg.Register("aif", AIFF{})
	reg.Register("aiff", AIFF{})
	reg.Register("mp3", MP3{})
	reg.Register("ogg", Vorbis{})

	return reg
}

// LoadFile loads path with the loader registered for its extension.
func LoadFile(reg *Registry, path string) (*Clip, error) {
	ext := filepath.Ext(path)
	l, ok := reg.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	clip, err := l.Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	return clip, nil
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
