package debug

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scene-studio/internal/engine/model"
	"github.com/Faultbox/scene-studio/pkg/math"
)

func TestBoxLines(t *testing.T) {
	b := model.Bounds{Min: math.Vec3{X: -1, Y: 0, Z: -2}, Max: math.Vec3{X: 1, Y: 3, Z: 2}}
	lines := BoxLines(b, 0.5)
	require.Len(t, lines, BoxLineVertexCount*3)

	for i := 0; i < len(lines); i += 3 {
		x, y, z := lines[i], lines[i+1], lines[i+2]
		assert.Contains(t, []float32{-1.5, 1.5}, x)
		assert.Contains(t, []float32{-0.5, 3.5}, y)
		assert.Contains(t, []float32{-2.5, 2.5}, z)
	}

	// Every edge changes exactly one coordinate.
	for e := 0; e < BoxLineVertexCount/2; e++ {
		a := lines[e*6 : e*6+3]
		c := lines[e*6+3 : e*6+6]
		changed := 0
		for k := range 3 {
			if a[k] != c[k] {
				changed++
			}
		}
		assert.Equal(t, 1, changed, "edge %d", e)
	}
}

func TestFromPixelsFlipsRows(t *testing.T) {
	// 1x2 image: bottom row red, top row blue in GL order.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FromPixels(pixels, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{B: 255, A: 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(0, 1))
}

func TestFromPixelsSizeMismatch(t *testing.T) {
	_, err := FromPixels(make([]byte, 7), 1, 2)
	assert.Error(t, err)
	_, err = FromPixels(nil, 0, 0)
	assert.Error(t, err)
}

func TestSavePixels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshots(dir, "studio")
	sc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC) }

	path, err := sc.SavePixels(make([]byte, 2*2*4), 2, 2)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "studio_2026-03-01_12-30-00.000.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())
}
