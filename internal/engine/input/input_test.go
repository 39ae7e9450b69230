package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/scene-studio/internal/engine/camera"
)

func press(in *Input, keys ...sdl.Scancode) {
	for _, k := range keys {
		in.Handle(Event{Type: EventKeyDown, Key: k})
	}
}

func TestMovementAxes(t *testing.T) {
	tests := []struct {
		name string
		keys []sdl.Scancode
		want camera.Movement
	}{
		{"none", nil, camera.Movement{}},
		{"forward", []sdl.Scancode{sdl.SCANCODE_W}, camera.Movement{Forward: 1}},
		{"back", []sdl.Scancode{sdl.SCANCODE_S}, camera.Movement{Forward: -1}},
		{"strafe left", []sdl.Scancode{sdl.SCANCODE_A}, camera.Movement{Right: -1}},
		{"up", []sdl.Scancode{sdl.SCANCODE_E}, camera.Movement{Up: 1}},
		{"down", []sdl.Scancode{sdl.SCANCODE_Q}, camera.Movement{Up: -1}},
		{"opposing cancel", []sdl.Scancode{sdl.SCANCODE_W, sdl.SCANCODE_S}, camera.Movement{}},
		{"diagonal", []sdl.Scancode{sdl.SCANCODE_W, sdl.SCANCODE_D}, camera.Movement{Forward: 1, Right: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := New()
			press(in, tt.keys...)
			assert.Equal(t, tt.want, in.Movement())
		})
	}
}

func TestHeldKeysSurviveFrames(t *testing.T) {
	in := New()
	press(in, sdl.SCANCODE_W)
	assert.True(t, in.IsKeyPressed(sdl.SCANCODE_W))

	in.BeginFrame()
	assert.False(t, in.IsKeyPressed(sdl.SCANCODE_W), "press is a one-frame event")
	assert.True(t, in.IsKeyHeld(sdl.SCANCODE_W))
	assert.Equal(t, float32(1), in.Movement().Forward)

	in.Handle(Event{Type: EventKeyUp, Key: sdl.SCANCODE_W})
	assert.False(t, in.IsKeyHeld(sdl.SCANCODE_W))
	assert.True(t, in.Movement().IsZero())
}

func TestRepeatIsNotAPress(t *testing.T) {
	in := New()
	in.Handle(Event{Type: EventKeyDown, Key: sdl.SCANCODE_TAB, Repeat: true})
	assert.False(t, in.IsKeyPressed(sdl.SCANCODE_TAB))
	assert.True(t, in.IsKeyHeld(sdl.SCANCODE_TAB))
}

func TestMouseLookOnlyWhileButtonHeld(t *testing.T) {
	in := New()
	in.Handle(Event{Type: EventMouseMove, RelX: 10, RelY: 10})
	dx, dy := in.MouseDelta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	in.Handle(Event{Type: EventMouseDown, Button: LookButton})
	assert.True(t, in.Looking())
	in.Handle(Event{Type: EventMouseMove, RelX: 4, RelY: 2})
	in.Handle(Event{Type: EventMouseMove, RelX: 1, RelY: -5})
	dx, dy = in.MouseDelta()
	assert.Equal(t, float32(5), dx)
	assert.Equal(t, float32(-3), dy)

	in.BeginFrame()
	dx, dy = in.MouseDelta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	in.Handle(Event{Type: EventMouseUp, Button: LookButton})
	assert.False(t, in.Looking())
}
