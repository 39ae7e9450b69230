// Package assets fetches mesh and texture files off the render thread and
// hands the results back to it.
package assets

import (
	"context"
	"errors"
	"image"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/Faultbox/scene-studio/internal/engine/texture"
)

// ErrOutsideRoot is returned for paths that escape the asset directory.
var ErrOutsideRoot = errors.New("path escapes asset root")

var errEmptyPath = errors.New("empty path")

// Source fetches asset files. Implementations must be safe for concurrent use.
type Source interface {
	FetchText(ctx context.Context, path string) (string, error)
	FetchImage(ctx context.Context, path string) (image.Image, error)
}

// ByteSource is implemented by sources that can return raw file contents.
// Loader.Preload uses it to warm caches.
type ByteSource interface {
	FetchBytes(ctx context.Context, path string) ([]byte, error)
}

// DirSource serves assets from a directory, caching file contents.
type DirSource struct {
	root  string
	cache *Cache
}

// NewDirSource creates a source rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{root: dir, cache: NewCache()}
}

// Root returns the asset directory.
func (s *DirSource) Root() string {
	return s.root
}

// Cache returns the byte cache.
func (s *DirSource) Cache() *Cache {
	return s.cache
}

// FetchBytes returns the contents of the file at p, relative to the root.
func (s *DirSource) FetchBytes(ctx context.Context, p string) ([]byte, error) {
	key, err := cleanPath(p)
	if err != nil {
		return nil, &LoadError{Path: p, Err: err}
	}
	if data, ok := s.cache.Get(key); ok {
		return data, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, &LoadError{Path: p, Err: err}
	}

	data, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(key)))
	if err != nil {
		return nil, &LoadError{Path: p, Err: err}
	}
	s.cache.Set(key, data)
	return data, nil
}

// FetchText returns the file at p as a string.
func (s *DirSource) FetchText(ctx context.Context, p string) (string, error) {
	data, err := s.FetchBytes(ctx, p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FetchImage reads and decodes the image at p.
func (s *DirSource) FetchImage(ctx context.Context, p string) (image.Image, error) {
	data, err := s.FetchBytes(ctx, p)
	if err != nil {
		return nil, err
	}
	img, err := texture.Decode(data, p)
	if err != nil {
		return nil, &LoadError{Path: p, Err: err}
	}
	return img, nil
}

// cleanPath normalizes p to a slash-separated path inside the root.
func cleanPath(p string) (string, error) {
	slashed := filepath.ToSlash(p)
	if filepath.IsAbs(p) || strings.HasPrefix(slashed, "/") {
		return "", ErrOutsideRoot
	}
	for _, seg := range strings.Split(slashed, "/") {
		if seg == ".." {
			return "", ErrOutsideRoot
		}
	}
	clean := path.Clean(slashed)
	if clean == "." {
		return "", errEmptyPath
	}
	return clean, nil
}
