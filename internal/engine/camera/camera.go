// Package camera provides the first-person camera used by both editor views.
package camera

import (
	gomath "math"

	"github.com/Faultbox/scene-studio/pkg/math"
)

// Camera defaults.
const (
	DefaultYaw         = -90.0
	DefaultPitch       = 0.0
	DefaultSensitivity = 0.1
	MaxPitch           = 89.0
)

// Camera is a yaw/pitch camera. Angles are stored in degrees; Front, Right
// and Up are derived from them and recomputed on every orientation change.
type Camera struct {
	Position math.Vec3
	WorldUp  math.Vec3

	Yaw   float32
	Pitch float32

	Front math.Vec3
	Right math.Vec3
	Up    math.Vec3

	// Sensitivity scales mouse deltas into degrees.
	Sensitivity float32
}

// New creates a camera at position looking along yaw/pitch.
func New(position, worldUp math.Vec3, yaw, pitch float32) *Camera {
	c := &Camera{
		Position:    position,
		WorldUp:     worldUp,
		Yaw:         yaw,
		Pitch:       pitch,
		Sensitivity: DefaultSensitivity,
	}
	c.updateVectors()
	return c
}

// NewTopDown creates the fixed overhead camera used by the secondary view.
func NewTopDown(height float32) *Camera {
	return New(math.Vec3{X: 0, Y: height, Z: 0}, math.Vec3{X: 0, Y: 1, Z: 0}, DefaultYaw, -MaxPitch)
}

// MoveForward moves along the view direction. Negative distances move back.
func (c *Camera) MoveForward(distance float32) {
	c.Position = c.Position.Add(c.Front.Scale(distance))
}

// MoveRight strafes along the right vector.
func (c *Camera) MoveRight(distance float32) {
	c.Position = c.Position.Add(c.Right.Scale(distance))
}

// MoveUp moves along the camera's up vector.
func (c *Camera) MoveUp(distance float32) {
	c.Position = c.Position.Add(c.Up.Scale(distance))
}

// Look applies a mouse delta. Screen Y grows downward, so positive dy
// lowers the pitch.
func (c *Camera) Look(dx, dy float32, constrainPitch bool) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch -= dy * c.Sensitivity

	if constrainPitch {
		c.Pitch = math.Clamp(c.Pitch, -MaxPitch, MaxPitch)
	}
	c.updateVectors()
}

// SetOrientation replaces yaw and pitch.
func (c *Camera) SetOrientation(yaw, pitch float32) {
	c.Yaw = yaw
	c.Pitch = pitch
	c.updateVectors()
}

// ViewMatrix returns the look-at matrix for the current state.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Front), c.Up)
}

// Clone returns an independent copy.
func (c *Camera) Clone() *Camera {
	cp := *c
	return &cp
}

func (c *Camera) updateVectors() {
	yaw := float64(math.Radians(c.Yaw))
	pitch := float64(math.Radians(c.Pitch))

	front := math.Vec3{
		X: float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		Y: float32(gomath.Sin(pitch)),
		Z: float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
