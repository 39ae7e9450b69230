package lighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scene-studio/pkg/math"
)

func newRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry()
	require.NoError(t, err)
	return r
}

func TestNewRegistryDefault(t *testing.T) {
	r := newRegistry(t)
	require.Equal(t, 1, r.Len())
	l, ok := r.At(0)
	require.True(t, ok)
	assert.Equal(t, DefaultLight(), l)
	_, selected := r.Selected()
	assert.False(t, selected)
}

func TestAddNamesAndSelects(t *testing.T) {
	r := newRegistry(t)
	idx, err := r.Add(Light{Intensity: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	l, _ := r.At(idx)
	assert.Equal(t, "Light 2", l.Name)
	sel, ok := r.Selected()
	assert.True(t, ok)
	assert.Equal(t, idx, sel)
}

func TestAddCapacity(t *testing.T) {
	r := newRegistry(t)
	for r.Len() < MaxLights {
		_, err := r.Add(Light{Intensity: 1})
		require.NoError(t, err)
	}
	before := r.All()

	_, err := r.Add(Light{Name: "overflow"})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, before, r.All())
}

func TestNewRegistryTooMany(t *testing.T) {
	lights := make([]Light, MaxLights+1)
	_, err := NewRegistry(lights...)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestRemove(t *testing.T) {
	r := newRegistry(t)

	err := r.Remove(0)
	assert.ErrorIs(t, err, ErrMinimumViolation)
	assert.Equal(t, 1, r.Len())

	_, err = r.Add(Light{Name: "fill"})
	require.NoError(t, err)

	assert.ErrorIs(t, r.Remove(5), ErrIndexOutOfRange)
	assert.ErrorIs(t, r.Remove(-1), ErrIndexOutOfRange)

	require.NoError(t, r.Remove(0))
	assert.Equal(t, 1, r.Len())
	l, _ := r.At(0)
	assert.Equal(t, "fill", l.Name)
	_, selected := r.Selected()
	assert.False(t, selected)
}

func TestUpdate(t *testing.T) {
	r := newRegistry(t)
	pos := math.Vec3{X: 1, Y: 2, Z: 3}
	off := false
	typ := Directional
	require.NoError(t, r.Update(0, LightUpdate{Position: &pos, Active: &off, Type: &typ}))

	l, _ := r.At(0)
	assert.Equal(t, pos, l.Position)
	assert.False(t, l.Active)
	assert.Equal(t, Directional, l.Type)
	assert.Equal(t, "Light 1", l.Name)

	neg := float32(-1)
	assert.ErrorIs(t, r.Update(0, LightUpdate{Intensity: &neg, Position: &math.Vec3{}}), ErrNegativeIntensity)
	l, _ = r.At(0)
	assert.Equal(t, pos, l.Position)

	assert.ErrorIs(t, r.Update(3, LightUpdate{}), ErrIndexOutOfRange)
}

func TestSelect(t *testing.T) {
	r := newRegistry(t)
	require.NoError(t, r.Select(0))
	sel, ok := r.Selected()
	assert.True(t, ok)
	assert.Equal(t, 0, sel)
	assert.ErrorIs(t, r.Select(1), ErrIndexOutOfRange)

	r.ClearSelection()
	_, ok = r.Selected()
	assert.False(t, ok)
}

func TestCloneIsIndependent(t *testing.T) {
	r := newRegistry(t)
	cp := r.Clone()
	name := "changed"
	require.NoError(t, r.Update(0, LightUpdate{Name: &name}))

	l, _ := cp.At(0)
	assert.Equal(t, "Light 1", l.Name)
}

func TestUniformBlock(t *testing.T) {
	r := newRegistry(t)
	_, err := r.Add(Light{
		Type:      Directional,
		Position:  math.Vec3{Y: 1},
		Color:     [3]uint8{255, 0, 51},
		Intensity: 0.5,
	})
	require.NoError(t, err)

	b := r.UniformBlock()
	assert.Equal(t, int32(2), b.Count)
	assert.Equal(t, [3]float32{1, 0, 0.2}, b.Lights[1].Color)
	assert.Equal(t, int32(Directional), b.Lights[1].Type)
	assert.Equal(t, int32(0), b.Lights[1].Active)
	assert.Equal(t, int32(1), b.Lights[0].Active)

	pos := b.Positions()
	require.Len(t, pos, MaxLights*3)
	assert.Equal(t, []float32{5, 5, 5, 0, 1, 0, 0, 0, 0}, pos[:9])
	assert.Len(t, b.Colors(), MaxLights*3)
	assert.Equal(t, float32(0.5), b.Intensities()[1])
	assert.Equal(t, []int32{1, 0}, b.ActiveFlags()[:2])
	assert.Equal(t, []int32{0, 1}, b.Types()[:2])
}

func TestDirectionFromAngles(t *testing.T) {
	d := DirectionFromAngles(0, 90)
	assert.InDelta(t, 1, d.Y, 1e-6)

	d = DirectionFromAngles(90, 0)
	assert.InDelta(t, 1, d.X, 1e-6)
	assert.InDelta(t, 0, d.Z, 1e-6)

	d = DirectionFromAngles(37, 21)
	assert.InDelta(t, 1, d.Length(), 1e-6)
}

func TestParseType(t *testing.T) {
	typ, err := ParseType("directional")
	require.NoError(t, err)
	assert.Equal(t, Directional, typ)
	_, err = ParseType("spot")
	assert.Error(t, err)
}
