// Package assets reads the optional portfolio files (resume, portrait) from
// the application root and turns them into self-contained data URIs.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// ErrAbsent reports that an asset was simply not provided. It is an expected
// state, not a failure.
var ErrAbsent = errors.New("assets: absent")

// ReadError is returned when an asset path exists (or cannot be checked) but
// its contents could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("assets: read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Source yields the raw bytes of a named asset.
type Source interface {
	Resolve(name string) ([]byte, error)
}

// Resolver reads assets from a filesystem on every call. Nothing is cached.
type Resolver struct {
	fsys fs.FS
}

// NewResolver returns a Resolver rooted at dir. An empty dir means the
// working directory.
func NewResolver(dir string) *Resolver {
	if dir == "" {
		dir = "."
	}
	return &Resolver{fsys: os.DirFS(dir)}
}

// NewResolverFS returns a Resolver backed by fsys.
func NewResolverFS(fsys fs.FS) *Resolver {
	return &Resolver{fsys: fsys}
}

// Resolve returns the bytes of name, a path relative to the resolver's root
// ("./cv.pdf" and "docs/../cv.pdf" are accepted). A missing file yields
// ErrAbsent; any other failure yields a *ReadError. Absolute paths and paths
// leaving the root are invalid.
func (r *Resolver) Resolve(name string) ([]byte, error) {
	clean := path.Clean(filepath.ToSlash(name))
	if name == "" || !fs.ValidPath(clean) {
		return nil, &ReadError{Path: name, Err: fs.ErrInvalid}
	}
	data, err := fs.ReadFile(r.fsys, clean)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrAbsent
		}
		return nil, &ReadError{Path: name, Err: err}
	}
	return data, nil
}
