package camera

// DefaultMoveSpeed is the fly speed in world units per second.
const DefaultMoveSpeed = 5.0

// Movement holds held-key axes in [-1, 1].
type Movement struct {
	Forward float32
	Right   float32
	Up      float32
}

// IsZero reports whether no movement key is held.
func (m Movement) IsZero() bool {
	return m.Forward == 0 && m.Right == 0 && m.Up == 0
}

// Controller turns held-key state into frame-rate independent movement.
type Controller struct {
	Speed float32
}

// NewController creates a controller with the default speed.
func NewController() *Controller {
	return &Controller{Speed: DefaultMoveSpeed}
}

// Apply moves cam by Speed*dt along each held axis.
func (ctl *Controller) Apply(cam *Camera, m Movement, dt float32) {
	if m.IsZero() || dt <= 0 {
		return
	}
	d := ctl.Speed * dt
	if m.Forward != 0 {
		cam.MoveForward(m.Forward * d)
	}
	if m.Right != 0 {
		cam.MoveRight(m.Right * d)
	}
	if m.Up != 0 {
		cam.MoveUp(m.Up * d)
	}
}
