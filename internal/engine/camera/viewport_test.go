package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout(t *testing.T) {
	single := Layout(1280, 720, false)
	require.Len(t, single, 1)
	assert.InDelta(t, 1280.0/720.0, single[0].Aspect(), 1e-6)

	dual := Layout(1281, 720, true)
	require.Len(t, dual, 2)
	assert.Equal(t, Viewport{X: 0, Width: 640, Height: 720}, dual[0])
	assert.Equal(t, Viewport{X: 640, Width: 641, Height: 720}, dual[1])
	assert.InDelta(t, 640.0/720.0, dual[0].Aspect(), 1e-6)
}

func TestViewportContains(t *testing.T) {
	v := Viewport{X: 100, Width: 100, Height: 50}
	assert.True(t, v.Contains(100, 0))
	assert.False(t, v.Contains(200, 0))
	assert.False(t, v.Contains(150, 50))
	assert.Equal(t, float32(1), Viewport{}.Aspect())
}
