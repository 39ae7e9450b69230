package lighting

import (
	"errors"
	"fmt"

	"github.com/Faultbox/scene-studio/pkg/math"
)

// Registry errors.
var (
	ErrCapacityExceeded  = errors.New("light capacity exceeded")
	ErrMinimumViolation  = errors.New("at least one light must remain")
	ErrIndexOutOfRange   = errors.New("light index out of range")
	ErrNegativeIntensity = errors.New("light intensity must not be negative")
)

// Registry is the ordered, bounded collection of scene lights. It always
// holds between 1 and MaxLights lights.
type Registry struct {
	lights   []Light
	selected int
	named    int
}

// NewRegistry creates a registry holding lights, or DefaultLight when none
// are given.
func NewRegistry(lights ...Light) (*Registry, error) {
	r := &Registry{
		lights:   make([]Light, 0, MaxLights),
		selected: -1,
	}
	if len(lights) == 0 {
		lights = []Light{DefaultLight()}
	}
	for _, l := range lights {
		if _, err := r.Add(l); err != nil {
			return nil, err
		}
	}
	r.selected = -1
	return r, nil
}

// Len returns the number of lights.
func (r *Registry) Len() int {
	return len(r.lights)
}

// At returns the light at index.
func (r *Registry) At(index int) (Light, bool) {
	if index < 0 || index >= len(r.lights) {
		return Light{}, false
	}
	return r.lights[index], true
}

// All returns a copy of every light in order.
func (r *Registry) All() []Light {
	out := make([]Light, len(r.lights))
	copy(out, r.lights)
	return out
}

// Add appends l and selects it. An empty name becomes "Light N". When the
// registry is full it is left unchanged.
func (r *Registry) Add(l Light) (int, error) {
	if len(r.lights) >= MaxLights {
		return -1, fmt.Errorf("add light: %w (max %d)", ErrCapacityExceeded, MaxLights)
	}
	if l.Intensity < 0 {
		return -1, fmt.Errorf("add light: %w", ErrNegativeIntensity)
	}
	r.named++
	if l.Name == "" {
		l.Name = fmt.Sprintf("Light %d", r.named)
	}
	r.lights = append(r.lights, l)
	r.selected = len(r.lights) - 1
	return r.selected, nil
}

// Remove deletes the light at index and clears the selection.
func (r *Registry) Remove(index int) error {
	if index < 0 || index >= len(r.lights) {
		return fmt.Errorf("remove light %d: %w", index, ErrIndexOutOfRange)
	}
	if len(r.lights) == 1 {
		return fmt.Errorf("remove light %d: %w", index, ErrMinimumViolation)
	}
	r.lights = append(r.lights[:index], r.lights[index+1:]...)
	r.selected = -1
	return nil
}

// LightUpdate lists the fields to change; nil fields are left alone.
type LightUpdate struct {
	Name      *string
	Type      *Type
	Position  *math.Vec3
	Color     *[3]uint8
	Intensity *float32
	Active    *bool
}

// Update applies u to the light at index. Nothing changes on error.
func (r *Registry) Update(index int, u LightUpdate) error {
	if index < 0 || index >= len(r.lights) {
		return fmt.Errorf("update light %d: %w", index, ErrIndexOutOfRange)
	}
	if u.Intensity != nil && *u.Intensity < 0 {
		return fmt.Errorf("update light %d: %w", index, ErrNegativeIntensity)
	}

	l := &r.lights[index]
	if u.Name != nil {
		l.Name = *u.Name
	}
	if u.Type != nil {
		l.Type = *u.Type
	}
	if u.Position != nil {
		l.Position = *u.Position
	}
	if u.Color != nil {
		l.Color = *u.Color
	}
	if u.Intensity != nil {
		l.Intensity = *u.Intensity
	}
	if u.Active != nil {
		l.Active = *u.Active
	}
	return nil
}

// Select marks the light at index as selected.
func (r *Registry) Select(index int) error {
	if index < 0 || index >= len(r.lights) {
		return fmt.Errorf("select light %d: %w", index, ErrIndexOutOfRange)
	}
	r.selected = index
	return nil
}

// ClearSelection deselects any light.
func (r *Registry) ClearSelection() {
	r.selected = -1
}

// Selected returns the selected index, if any.
func (r *Registry) Selected() (int, bool) {
	return r.selected, r.selected >= 0
}

// Clone returns an independent copy.
func (r *Registry) Clone() *Registry {
	cp := *r
	cp.lights = r.All()
	return &cp
}
