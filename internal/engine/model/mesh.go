package model

import (
	"errors"
	"fmt"

	"github.com/Faultbox/scene-studio/pkg/math"
)

// Mesh validation errors.
var (
	ErrAttributeMismatch = errors.New("attribute arrays differ in length")
	ErrIndexRange        = errors.New("index refers to a missing vertex")
	ErrNotTriangles      = errors.New("index count is not a multiple of 3")
)

// NewMesh validates the attribute arrays and returns a mesh with its bounds
// computed. The slices are owned by the mesh afterwards.
func NewMesh(positions, normals []math.Vec3, texCoords []math.Vec2, indices []uint32) (*Mesh, error) {
	m := &Mesh{
		Positions: positions,
		Normals:   normals,
		TexCoords: texCoords,
		Indices:   indices,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	m.Bounds = BoundsOf(positions)
	return m, nil
}

// Validate checks the mesh invariants.
func (m *Mesh) Validate() error {
	n := len(m.Positions)
	if len(m.Normals) != n || len(m.TexCoords) != n {
		return fmt.Errorf("%w: %d positions, %d normals, %d texcoords",
			ErrAttributeMismatch, n, len(m.Normals), len(m.TexCoords))
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d", ErrNotTriangles, len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("%w: index %d is %d, vertex count %d", ErrIndexRange, i, idx, n)
		}
	}
	return nil
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IndexFormat reports the narrowest index type able to address every vertex.
func (m *Mesh) IndexFormat() IndexFormat {
	if len(m.Positions) > MaxUint16Vertices {
		return IndexUint32
	}
	return IndexUint16
}

// Indices16 returns the indices narrowed to uint16. It must only be called
// when IndexFormat reports IndexUint16.
func (m *Mesh) Indices16() []uint16 {
	out := make([]uint16, len(m.Indices))
	for i, idx := range m.Indices {
		out[i] = uint16(idx)
	}
	return out
}

// Interleave packs the attributes into a single vertex array for upload.
func (m *Mesh) Interleave() []Vertex {
	out := make([]Vertex, len(m.Positions))
	for i := range m.Positions {
		out[i] = Vertex{
			Position: m.Positions[i].Array(),
			Normal:   m.Normals[i].Array(),
			TexCoord: [2]float32{m.TexCoords[i].X, m.TexCoords[i].Y},
		}
	}
	return out
}

// BoundsOf returns the box enclosing positions.
func BoundsOf(positions []math.Vec3) Bounds {
	if len(positions) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: positions[0], Max: positions[0]}
	for _, p := range positions[1:] {
		b.Min = b.Min.Min(p)
		b.Max = b.Max.Max(p)
	}
	return b
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Transform returns the world-space box enclosing the eight transformed corners.
func (b Bounds) Transform(m math.Mat4) Bounds {
	corners := [8]math.Vec3{
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
	}
	first := m.TransformPoint(corners[0])
	out := Bounds{Min: first, Max: first}
	for _, c := range corners[1:] {
		p := m.TransformPoint(c)
		out.Min = out.Min.Min(p)
		out.Max = out.Max.Max(p)
	}
	return out
}
