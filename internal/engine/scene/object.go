package scene

import (
	"path/filepath"
	"strings"

	"github.com/Faultbox/scene-studio/internal/engine/geometry"
	"github.com/Faultbox/scene-studio/pkg/math"
)

// MeshID refers to a mesh in the scene's mesh cache.
type MeshID uint32

// TextureID refers to a texture in the scene's texture cache.
type TextureID uint32

// DefaultTexture is the plain white texture every object starts with.
const DefaultTexture TextureID = 0

// SourceKind tells where an object's mesh comes from.
type SourceKind int

// Mesh source kinds.
const (
	SourcePrimitive SourceKind = iota
	SourceImported
)

// MeshSource identifies the geometry an object was created from.
type MeshSource struct {
	Kind      SourceKind
	Primitive geometry.PrimitiveKind
	Path      string
}

// PrimitiveSource returns the source for a built-in primitive.
func PrimitiveSource(kind geometry.PrimitiveKind) MeshSource {
	return MeshSource{Kind: SourcePrimitive, Primitive: kind}
}

// ImportedSource returns the source for an OBJ file.
func ImportedSource(path string) MeshSource {
	return MeshSource{Kind: SourceImported, Path: path}
}

// DefaultName is the object name used when none is given.
func (s MeshSource) DefaultName() string {
	if s.Kind == SourcePrimitive {
		return s.Primitive.String()
	}
	base := filepath.Base(filepath.FromSlash(s.Path))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Transform places an object. Rotation holds per-axis Euler angles in
// degrees.
type Transform struct {
	Position math.Vec3
	Rotation math.Vec3
	Scale    math.Vec3
}

// DefaultTransform returns the identity placement.
func DefaultTransform() Transform {
	return Transform{Scale: math.Vec3{X: 1, Y: 1, Z: 1}}
}

// Matrix composes T * Ry * Rx * Rz * S.
func (t Transform) Matrix() math.Mat4 {
	m := math.Translate(t.Position)
	m = m.Mul(math.RotateY(math.Radians(t.Rotation.Y)))
	m = m.Mul(math.RotateX(math.Radians(t.Rotation.X)))
	m = m.Mul(math.RotateZ(math.Radians(t.Rotation.Z)))
	return m.Mul(math.Scale(t.Scale))
}

// Material holds per-object shading parameters.
type Material struct {
	Shininess  float32
	Opacity    float32
	AutoRotate bool
}

// DefaultMaterial returns the material of newly spawned objects.
func DefaultMaterial() Material {
	return Material{Shininess: 32, Opacity: 1}
}

func (m Material) clamped() Material {
	m.Opacity = math.Clamp(m.Opacity, 0, 1)
	if m.Shininess < 0 {
		m.Shininess = 0
	}
	return m
}

// Object is a placed mesh instance.
type Object struct {
	// Handle identifies the object for its whole lifetime and is never reused.
	Handle    uint64
	Name      string
	Source    MeshSource
	Mesh      MeshID
	Transform Transform
	Texture   TextureID
	Material  Material
}
