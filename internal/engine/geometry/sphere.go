package geometry

import (
	stdmath "math"

	"github.com/Faultbox/scene-studio/internal/engine/model"
	"github.com/Faultbox/scene-studio/pkg/math"
)

// Sphere returns a UV sphere. The unit direction of each vertex is also its
// normal.
func Sphere(radius float32, latBands, longBands int) (*model.Mesh, error) {
	if radius <= 0 {
		return nil, &ValidationError{Param: "radius", Value: float64(radius), Reason: "must be positive"}
	}
	if latBands < 1 {
		return nil, &ValidationError{Param: "latBands", Value: float64(latBands), Reason: "must be at least 1"}
	}
	if longBands < 1 {
		return nil, &ValidationError{Param: "longBands", Value: float64(longBands), Reason: "must be at least 1"}
	}

	count := (latBands + 1) * (longBands + 1)
	m := &model.Mesh{
		Positions: make([]math.Vec3, 0, count),
		Normals:   make([]math.Vec3, 0, count),
		TexCoords: make([]math.Vec2, 0, count),
		Indices:   make([]uint32, 0, 6*latBands*longBands),
	}

	for lat := 0; lat <= latBands; lat++ {
		theta := float64(lat) * stdmath.Pi / float64(latBands)
		sinT, cosT := stdmath.Sin(theta), stdmath.Cos(theta)
		for lon := 0; lon <= longBands; lon++ {
			phi := float64(lon) * 2 * stdmath.Pi / float64(longBands)
			sinP, cosP := stdmath.Sin(phi), stdmath.Cos(phi)

			n := math.Vec3{
				X: float32(cosP * sinT),
				Y: float32(cosT),
				Z: float32(sinP * sinT),
			}
			m.Normals = append(m.Normals, n)
			m.Positions = append(m.Positions, n.Scale(radius))
			m.TexCoords = append(m.TexCoords, math.Vec2{
				X: 1 - float32(lon)/float32(longBands),
				Y: 1 - float32(lat)/float32(latBands),
			})
		}
	}

	stride := uint32(longBands + 1)
	for lat := 0; lat < latBands; lat++ {
		for lon := 0; lon < longBands; lon++ {
			first := uint32(lat)*stride + uint32(lon)
			second := first + stride
			m.Indices = append(m.Indices,
				first, second, first+1,
				second, second+1, first+1,
			)
		}
	}
	return finish(m), nil
}
