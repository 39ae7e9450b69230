package model

import (
	"github.com/Faultbox/scene-studio/pkg/formats"
	"github.com/Faultbox/scene-studio/pkg/math"
)

// Attribute defaults for face vertices that omit a component.
var (
	DefaultTexCoord = math.Vec2{X: 0, Y: 0}
	DefaultNormal   = math.Vec3{X: 0, Y: 1, Z: 0}
)

// LoadOBJ parses OBJ text and builds an indexed mesh from it.
func LoadOBJ(data []byte) (*Mesh, error) {
	obj, err := formats.ParseOBJ(data)
	if err != nil {
		return nil, err
	}
	return BuildOBJMesh(obj), nil
}

// BuildOBJMesh fan-triangulates every face and emits one output vertex per
// distinct v/vt/vn key. Corners that share a position but differ in texture
// coordinate or normal stay separate vertices.
func BuildOBJMesh(obj *formats.OBJ) *Mesh {
	triangles := obj.TriangleCount()
	m := &Mesh{
		Indices: make([]uint32, 0, triangles*3),
	}
	seen := make(map[string]uint32)

	emit := func(v formats.OBJVertex) {
		if idx, ok := seen[v.Key]; ok {
			m.Indices = append(m.Indices, idx)
			return
		}

		idx := uint32(len(m.Positions))
		seen[v.Key] = idx

		m.Positions = append(m.Positions, obj.Positions[v.V])
		if v.VT >= 0 {
			m.TexCoords = append(m.TexCoords, obj.TexCoords[v.VT])
		} else {
			m.TexCoords = append(m.TexCoords, DefaultTexCoord)
		}
		if v.VN >= 0 {
			m.Normals = append(m.Normals, obj.Normals[v.VN])
		} else {
			m.Normals = append(m.Normals, DefaultNormal)
		}
		m.Indices = append(m.Indices, idx)
	}

	for _, face := range obj.Faces {
		first := face.Vertices[0]
		for i := 1; i+1 < len(face.Vertices); i++ {
			emit(first)
			emit(face.Vertices[i])
			emit(face.Vertices[i+1])
		}
	}

	m.Bounds = BoundsOf(m.Positions)
	return m
}
