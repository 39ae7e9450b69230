package studio

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelativeAsset(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"top level", filepath.Join(root, "teapot.obj"), "teapot.obj"},
		{"nested", filepath.Join(root, "models", "ship", "hull.obj"), "models/ship/hull.obj"},
		{"unclean", filepath.Join(root, "models", "..", "tex", "a.png"), "tex/a.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := relativeAsset(root, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRelativeAssetOutsideRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "assets")

	for _, p := range []string{
		filepath.Join(filepath.Dir(root), "other", "a.obj"),
		filepath.Dir(root),
		root,
	} {
		_, err := relativeAsset(root, p)
		assert.ErrorIs(t, err, ErrOutsideAssetRoot, p)
	}
}

func TestImageExtensions(t *testing.T) {
	exts := imageExtensions()
	assert.Contains(t, exts, "png")
	assert.Contains(t, exts, "tga")
	for _, e := range exts {
		assert.NotContains(t, e, ".")
	}
}

func TestPickerPollEmpty(t *testing.T) {
	p := newFilePicker(t.TempDir())
	_, ok := p.poll()
	assert.False(t, ok)

	p.results <- pickResult{purpose: pickTexture, path: "a.png"}
	r, ok := p.poll()
	require.True(t, ok)
	assert.Equal(t, "a.png", r.path)
}
