// Package debug provides editor overlays and capture utilities.
package debug

import "github.com/Faultbox/scene-studio/internal/engine/model"

// BoxLineVertexCount is the number of vertices of a box wireframe
// (12 edges × 2).
const BoxLineVertexCount = 24

// SelectionPadding expands selection boxes so they do not z-fight with the
// object's faces.
const SelectionPadding = 0.02

// BoxLines returns line-list vertices for the edges of b grown by padding
// on every side, as [x, y, z] per vertex.
func BoxLines(b model.Bounds, padding float32) []float32 {
	minX, minY, minZ := b.Min.X-padding, b.Min.Y-padding, b.Min.Z-padding
	maxX, maxY, maxZ := b.Max.X+padding, b.Max.Y+padding, b.Max.Z+padding
	return []float32{
		// Bottom face (4 edges)
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top face (4 edges)
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Vertical edges (4 edges)
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	}
}
