// Package model provides the immutable mesh type shared by the geometry
// generators, the OBJ importer and the renderer.
package model

import "github.com/Faultbox/scene-studio/pkg/math"

// Vertex is one interleaved vertex as uploaded to the GPU.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// VertexStride is the size of Vertex in bytes.
const VertexStride = 8 * 4

// IndexFormat is the element type an index buffer needs.
type IndexFormat int

// Index formats.
const (
	IndexUint16 IndexFormat = iota
	IndexUint32
)

// MaxUint16Vertices is the largest vertex count addressable with 16-bit indices.
const MaxUint16Vertices = 1 << 16

// String returns the index format name.
func (f IndexFormat) String() string {
	if f == IndexUint32 {
		return "uint32"
	}
	return "uint16"
}

// Mesh holds parallel vertex attribute arrays and a triangle index list.
// Positions, Normals and TexCoords always have the same length and every
// index is smaller than that length. A Mesh is never modified after it has
// been built; share it by pointer.
type Mesh struct {
	Positions []math.Vec3
	Normals   []math.Vec3
	TexCoords []math.Vec2
	Indices   []uint32
	Bounds    Bounds
}

// Bounds holds the axis-aligned bounding box of a mesh in model space.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}
