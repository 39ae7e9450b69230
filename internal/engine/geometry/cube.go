package geometry

import (
	"github.com/Faultbox/scene-studio/internal/engine/model"
	"github.com/Faultbox/scene-studio/pkg/math"
)

// cubeFace describes one face: its outward normal and four corners in
// counter-clockwise order seen from outside.
type cubeFace struct {
	normal  math.Vec3
	corners [4]math.Vec3
}

var cubeFaces = [6]cubeFace{
	{ // +Z
		normal:  math.Vec3{X: 0, Y: 0, Z: 1},
		corners: [4]math.Vec3{{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1}},
	},
	{ // -Z
		normal:  math.Vec3{X: 0, Y: 0, Z: -1},
		corners: [4]math.Vec3{{X: -1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: -1, Z: -1}},
	},
	{ // +Y
		normal:  math.Vec3{X: 0, Y: 1, Z: 0},
		corners: [4]math.Vec3{{X: -1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: -1}},
	},
	{ // -Y
		normal:  math.Vec3{X: 0, Y: -1, Z: 0},
		corners: [4]math.Vec3{{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: 1}},
	},
	{ // +X
		normal:  math.Vec3{X: 1, Y: 0, Z: 0},
		corners: [4]math.Vec3{{X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: 1}},
	},
	{ // -X
		normal:  math.Vec3{X: -1, Y: 0, Z: 0},
		corners: [4]math.Vec3{{X: -1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: 1}, {X: -1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: -1}},
	},
}

var faceUVs = [4]math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

// Cube returns the 2x2x2 cube centered at the origin with four vertices per
// face so each face keeps its exact normal.
func Cube() *model.Mesh {
	m := &model.Mesh{
		Positions: make([]math.Vec3, 0, 24),
		Normals:   make([]math.Vec3, 0, 24),
		TexCoords: make([]math.Vec2, 0, 24),
		Indices:   make([]uint32, 0, 36),
	}
	for _, f := range cubeFaces {
		base := uint32(len(m.Positions))
		for i, c := range f.corners {
			m.Positions = append(m.Positions, c)
			m.Normals = append(m.Normals, f.normal)
			m.TexCoords = append(m.TexCoords, faceUVs[i])
		}
		m.Indices = append(m.Indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
	return finish(m)
}
