// Package lighting holds the scene's dynamic lights and packs them for the
// shader's fixed-size light array.
package lighting

import (
	"fmt"

	"github.com/Faultbox/scene-studio/pkg/math"
)

// MaxLights is the size of the shader's light array. Keep it in sync with
// MAX_LIGHTS in the lit fragment shader.
const MaxLights = 8

// Type distinguishes point lights from directional lights.
type Type int

// Light types. The values are uploaded to the shader as-is.
const (
	Point Type = iota
	Directional
)

// String returns the light type name.
func (t Type) String() string {
	switch t {
	case Point:
		return "point"
	case Directional:
		return "directional"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType resolves a light type name as written in config files.
func ParseType(s string) (Type, error) {
	switch s {
	case "point", "":
		return Point, nil
	case "directional", "sun":
		return Directional, nil
	}
	return 0, fmt.Errorf("unknown light type %q", s)
}

// Light is a point or directional light. For directional lights Position
// holds the direction toward the light.
type Light struct {
	Name      string
	Type      Type
	Position  math.Vec3
	Color     [3]uint8
	Intensity float32
	Active    bool
}

// DefaultLight returns the white point light every new scene starts with.
func DefaultLight() Light {
	return Light{
		Name:      "Light 1",
		Type:      Point,
		Position:  math.Vec3{X: 5, Y: 5, Z: 5},
		Color:     [3]uint8{255, 255, 255},
		Intensity: 1,
		Active:    true,
	}
}

// NormalizedColor returns the color scaled to [0, 1].
func (l Light) NormalizedColor() [3]float32 {
	return [3]float32{
		float32(l.Color[0]) / 255,
		float32(l.Color[1]) / 255,
		float32(l.Color[2]) / 255,
	}
}
