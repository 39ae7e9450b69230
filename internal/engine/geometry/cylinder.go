package geometry

import (
	stdmath "math"

	"github.com/Faultbox/scene-studio/internal/engine/model"
	"github.com/Faultbox/scene-studio/pkg/math"
)

// MinSegments is the smallest radial segment count a cylinder accepts.
const MinSegments = 3

// Cylinder returns an open tube of the given radius and height centered on
// the origin along Y. Vertices alternate top and bottom for each of the
// segments+1 columns; the last column repeats the first so the seam gets
// texture coordinate u = 1.
func Cylinder(radius, height float32, segments int) (*model.Mesh, error) {
	if radius <= 0 {
		return nil, &ValidationError{Param: "radius", Value: float64(radius), Reason: "must be positive"}
	}
	if height <= 0 {
		return nil, &ValidationError{Param: "height", Value: float64(height), Reason: "must be positive"}
	}
	if segments < MinSegments {
		return nil, &ValidationError{Param: "segments", Value: float64(segments), Reason: "must be at least 3"}
	}

	n := segments
	m := &model.Mesh{
		Positions: make([]math.Vec3, 0, 2*(n+1)),
		Normals:   make([]math.Vec3, 0, 2*(n+1)),
		TexCoords: make([]math.Vec2, 0, 2*(n+1)),
		Indices:   make([]uint32, 0, 6*n),
	}
	half := height / 2

	for i := 0; i <= n; i++ {
		theta := 2 * stdmath.Pi * float64(i) / float64(n)
		c := float32(stdmath.Cos(theta))
		s := float32(stdmath.Sin(theta))
		u := float32(i) / float32(n)
		normal := math.Vec3{X: c, Y: 0, Z: s}

		m.Positions = append(m.Positions, math.Vec3{X: radius * c, Y: half, Z: radius * s})
		m.Normals = append(m.Normals, normal)
		m.TexCoords = append(m.TexCoords, math.Vec2{X: u, Y: 0})

		m.Positions = append(m.Positions, math.Vec3{X: radius * c, Y: -half, Z: radius * s})
		m.Normals = append(m.Normals, normal)
		m.TexCoords = append(m.TexCoords, math.Vec2{X: u, Y: 1})
	}

	for i := 0; i < n; i++ {
		top := uint32(2 * i)
		bottom := top + 1
		nextTop := top + 2
		nextBottom := top + 3
		m.Indices = append(m.Indices,
			top, bottom, nextTop,
			bottom, nextBottom, nextTop,
		)
	}
	return finish(m), nil
}
