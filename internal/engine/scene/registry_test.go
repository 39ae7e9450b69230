package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scene-studio/internal/engine/geometry"
	"github.com/Faultbox/scene-studio/pkg/math"
)

var cubeSrc = PrimitiveSource(geometry.KindCube)

func TestSpawnDefaults(t *testing.T) {
	r := NewRegistry()
	pos := math.Vec3{X: 2.5}
	idx := r.Spawn(cubeSrc, 1, "", &pos)

	obj, ok := r.At(idx)
	require.True(t, ok)
	assert.Equal(t, "Cube", obj.Name)
	assert.Equal(t, pos, obj.Transform.Position)
	assert.Equal(t, math.Vec3{}, obj.Transform.Rotation)
	assert.Equal(t, math.Vec3{X: 1, Y: 1, Z: 1}, obj.Transform.Scale)
	assert.Equal(t, DefaultMaterial(), obj.Material)
	assert.Equal(t, float32(32), obj.Material.Shininess)
	assert.Equal(t, DefaultTexture, obj.Texture)

	sel, ok := r.Selected()
	assert.True(t, ok)
	assert.Equal(t, idx, sel)
}

func TestSpawnUniqueNames(t *testing.T) {
	r := NewRegistry()
	names := []string{}
	for i := 0; i < 3; i++ {
		idx := r.Spawn(cubeSrc, 1, "Cube", nil)
		obj, _ := r.At(idx)
		names = append(names, obj.Name)
	}
	assert.Equal(t, []string{"Cube", "Cube (1)", "Cube (2)"}, names)

	require.True(t, r.Remove(1))
	idx := r.Spawn(cubeSrc, 1, "Cube", nil)
	obj, _ := r.At(idx)
	assert.Equal(t, "Cube (1)", obj.Name)

	imported := r.Spawn(ImportedSource("models/teapot.obj"), 9, "", nil)
	obj, _ = r.At(imported)
	assert.Equal(t, "teapot", obj.Name)
}

func TestHandlesNeverReused(t *testing.T) {
	r := NewRegistry()
	a := r.Spawn(cubeSrc, 1, "", nil)
	first, _ := r.At(a)
	r.Remove(a)
	b := r.Spawn(cubeSrc, 1, "", nil)
	second, _ := r.At(b)
	assert.Greater(t, second.Handle, first.Handle)
}

func TestRemove(t *testing.T) {
	r := NewRegistry()
	r.Spawn(cubeSrc, 1, "a", nil)
	r.Spawn(cubeSrc, 1, "b", nil)
	r.Spawn(cubeSrc, 1, "c", nil)

	assert.False(t, r.Remove(3))
	assert.False(t, r.Remove(-1))
	assert.Equal(t, 3, r.Len())
	_, selected := r.Selected()
	assert.True(t, selected)

	require.True(t, r.Remove(0))
	obj, _ := r.At(0)
	assert.Equal(t, "b", obj.Name)
	_, selected = r.Selected()
	assert.False(t, selected)

	idx, ok := r.IndexOf(obj.Handle)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestRemoveSelected(t *testing.T) {
	r := NewRegistry()
	assert.False(t, r.RemoveSelected())

	r.Spawn(cubeSrc, 1, "a", nil)
	r.Spawn(cubeSrc, 1, "b", nil)
	require.NoError(t, r.Select(0))
	require.True(t, r.RemoveSelected())

	obj, _ := r.At(0)
	assert.Equal(t, "b", obj.Name)
	assert.False(t, r.RemoveSelected())
}

func TestMutationsOutOfRange(t *testing.T) {
	r := NewRegistry()
	assert.ErrorIs(t, r.SetTransform(0, DefaultTransform()), ErrIndexOutOfRange)
	assert.ErrorIs(t, r.SetMaterial(0, DefaultMaterial()), ErrIndexOutOfRange)
	assert.ErrorIs(t, r.SetTexture(0, 1), ErrIndexOutOfRange)
	assert.ErrorIs(t, r.Select(0), ErrIndexOutOfRange)
	assert.ErrorIs(t, r.Rename(0, "x"), ErrIndexOutOfRange)
}

func TestSetMaterialClamps(t *testing.T) {
	r := NewRegistry()
	idx := r.Spawn(cubeSrc, 1, "", nil)
	require.NoError(t, r.SetMaterial(idx, Material{Shininess: -4, Opacity: 1.7, AutoRotate: true}))

	obj, _ := r.At(idx)
	assert.Equal(t, Material{Shininess: 0, Opacity: 1, AutoRotate: true}, obj.Material)
}

func TestRename(t *testing.T) {
	r := NewRegistry()
	r.Spawn(cubeSrc, 1, "a", nil)
	b := r.Spawn(cubeSrc, 1, "b", nil)
	require.NoError(t, r.Rename(b, "a"))
	obj, _ := r.At(b)
	assert.Equal(t, "a (1)", obj.Name)
	require.NoError(t, r.Rename(b, "a (1)"))
	obj, _ = r.At(b)
	assert.Equal(t, "a (1)", obj.Name)
}

func TestTransformMatrix(t *testing.T) {
	tr := Transform{
		Position: math.Vec3{X: 1, Y: 2, Z: 3},
		Rotation: math.Vec3{X: 10, Y: 20, Z: 30},
		Scale:    math.Vec3{X: 2, Y: 1, Z: 0.5},
	}
	assert.Equal(t, tr.Matrix(), tr.Matrix())

	want := math.Translate(tr.Position).
		Mul(math.RotateY(math.Radians(20))).
		Mul(math.RotateX(math.Radians(10))).
		Mul(math.RotateZ(math.Radians(30))).
		Mul(math.Scale(tr.Scale))
	assert.Equal(t, want, tr.Matrix())

	p := DefaultTransform()
	p.Position = math.Vec3{X: 4}
	assert.Equal(t, math.Vec3{X: 5}, p.Matrix().TransformPoint(math.Vec3{X: 1}))
}
