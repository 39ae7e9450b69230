package model

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scene-studio/pkg/formats"
	"github.com/Faultbox/scene-studio/pkg/math"
)

const quad = `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
vn 0 0 1
vn 0 0 1
vn 0 0 1
f 1/1/1 2/2/2 3/3/3 4/4/4
`

func TestLoadOBJQuadFan(t *testing.T) {
	m, err := LoadOBJ([]byte(quad))
	require.NoError(t, err)

	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, m.Indices)
	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, math.Vec2{X: 1, Y: 1}, m.TexCoords[2])
	require.NoError(t, m.Validate())
}

func TestLoadOBJMissingAttributes(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
vn 0 0 1
vn 0 0 1
f 1//1 2//2 3//3
f 1 2 3
`
	m, err := LoadOBJ([]byte(src))
	require.NoError(t, err)

	// "1//1" and "1" are distinct keys.
	require.Equal(t, 6, m.VertexCount())
	for i := 0; i < 3; i++ {
		assert.Equal(t, DefaultTexCoord, m.TexCoords[i])
		assert.Equal(t, math.Vec3{Z: 1}, m.Normals[i])
	}
	for i := 3; i < 6; i++ {
		assert.Equal(t, DefaultNormal, m.Normals[i])
	}
}

func TestLoadOBJDeduplicatesTokens(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
vn 0 0 -1
f 1//1 2//1 3//1
f 1//1 3//1 4//1
f 1//2 3//2 2//2
`
	m, err := LoadOBJ([]byte(src))
	require.NoError(t, err)

	// Four corners share normal 1; the back face repeats three positions
	// with a different normal and must not merge with them.
	assert.Equal(t, 7, m.VertexCount())
	assert.Equal(t, 9, len(m.Indices))
	assert.Equal(t, m.Indices[0], m.Indices[3])
	assert.NotEqual(t, m.Indices[0], m.Indices[6])
}

func TestLoadOBJRelativeIndicesShareVertices(t *testing.T) {
	tests := []struct {
		name  string
		faces string
	}{
		{"position", "f 1 2 3\nf -3 -2 -1\n"},
		{"position and texcoord", "f 1/1 2/2 3/3\nf -3/-3 -2/-2 -1/-1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nvt 0 0\nvt 1 0\nvt 0 1\n" + tt.faces
			m, err := LoadOBJ([]byte(src))
			require.NoError(t, err)
			assert.Equal(t, 3, m.VertexCount())
			assert.Equal(t, []uint32{0, 1, 2, 0, 1, 2}, m.Indices)
		})
	}
}

func TestLoadOBJParseError(t *testing.T) {
	_, err := LoadOBJ([]byte("v 0 0 0\nf 1 2 3\n"))
	var pe *formats.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)
}

func TestLoadOBJLargeUsesUint32(t *testing.T) {
	const tris = 22000
	var b strings.Builder
	for i := 0; i < tris*3; i++ {
		fmt.Fprintf(&b, "v %d 0 0\n", i)
	}
	for i := 0; i < tris; i++ {
		fmt.Fprintf(&b, "f %d %d %d\n", i*3+1, i*3+2, i*3+3)
	}

	m, err := LoadOBJ([]byte(b.String()))
	require.NoError(t, err)
	assert.Equal(t, tris*3, m.VertexCount())
	assert.Equal(t, IndexUint32, m.IndexFormat())
	assert.Equal(t, uint32(tris*3-1), m.Indices[len(m.Indices)-1])
}
