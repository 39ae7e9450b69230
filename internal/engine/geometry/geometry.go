// Package geometry generates the procedural primitive meshes.
package geometry

import (
	"fmt"

	"github.com/Faultbox/scene-studio/internal/engine/model"
)

// PrimitiveKind identifies a procedural primitive.
type PrimitiveKind int

// Primitive kinds.
const (
	KindCube PrimitiveKind = iota
	KindSphere
	KindCylinder
)

// Kinds lists every primitive kind in spawn-menu order.
var Kinds = []PrimitiveKind{KindCube, KindSphere, KindCylinder}

// String returns the display name of the primitive.
func (k PrimitiveKind) String() string {
	switch k {
	case KindCube:
		return "Cube"
	case KindSphere:
		return "Sphere"
	case KindCylinder:
		return "Cylinder"
	default:
		return fmt.Sprintf("PrimitiveKind(%d)", int(k))
	}
}

// ParseKind resolves a primitive name as written in config files.
func ParseKind(name string) (PrimitiveKind, error) {
	switch name {
	case "cube", "Cube":
		return KindCube, nil
	case "sphere", "Sphere":
		return KindSphere, nil
	case "cylinder", "Cylinder", "prism", "Prism":
		return KindCylinder, nil
	}
	return 0, fmt.Errorf("unknown primitive %q", name)
}

// Params holds the shape parameters used by Build.
type Params struct {
	Radius    float32
	Height    float32
	Segments  int
	LatBands  int
	LongBands int
}

// DefaultParams returns the parameters of the editor's built-in primitives.
func DefaultParams(kind PrimitiveKind) Params {
	switch kind {
	case KindSphere:
		return Params{Radius: 0.8, LatBands: 30, LongBands: 30}
	case KindCylinder:
		return Params{Radius: 0.6, Height: 1.5, Segments: 30}
	default:
		return Params{}
	}
}

// ValidationError reports a shape parameter outside its valid range.
type ValidationError struct {
	Param  string
	Value  float64
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %g: %s", e.Param, e.Value, e.Reason)
}

// Build generates the mesh for kind.
func Build(kind PrimitiveKind, p Params) (*model.Mesh, error) {
	switch kind {
	case KindCube:
		return Cube(), nil
	case KindSphere:
		return Sphere(p.Radius, p.LatBands, p.LongBands)
	case KindCylinder:
		return Cylinder(p.Radius, p.Height, p.Segments)
	default:
		return nil, fmt.Errorf("build %v: unknown primitive", kind)
	}
}

func finish(m *model.Mesh) *model.Mesh {
	m.Bounds = model.BoundsOf(m.Positions)
	return m
}
