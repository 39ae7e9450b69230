// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/scene-studio/internal/engine/camera"
)

// EventType classifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Repeat bool
	Width  int
	Height int
	MouseX int
	MouseY int
	// RelX and RelY are the motion since the previous mouse event.
	RelX   int
	RelY   int
	Button uint8
}

// LookButton is the mouse button that enables free look while held.
const LookButton = sdl.BUTTON_RIGHT

// Input turns SDL events into per-frame movement axes, mouse-look deltas
// and discrete events.
type Input struct {
	events  []Event
	held    map[sdl.Scancode]bool
	dx, dy  float32
	looking bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		held:   make(map[sdl.Scancode]bool),
	}
}

// Update polls SDL events for the frame.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.BeginFrame()

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		ev, ok := translate(event)
		if !ok {
			continue
		}
		i.Handle(ev)
		if ev.Type == EventQuit {
			quit = true
		}
	}
	return quit
}

// translate converts an SDL event. It reports false for events the studio
// ignores.
func translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			}, true
		}

	case *sdl.KeyboardEvent:
		ev := Event{Key: e.Keysym.Scancode, Repeat: e.Repeat != 0}
		switch e.Type {
		case sdl.KEYDOWN:
			ev.Type = EventKeyDown
			return ev, true
		case sdl.KEYUP:
			ev.Type = EventKeyUp
			return ev, true
		}

	case *sdl.MouseMotionEvent:
		return Event{
			Type:   EventMouseMove,
			MouseX: int(e.X),
			MouseY: int(e.Y),
			RelX:   int(e.XRel),
			RelY:   int(e.YRel),
		}, true

	case *sdl.MouseButtonEvent:
		ev := Event{
			MouseX: int(e.X),
			MouseY: int(e.Y),
			Button: e.Button,
		}
		switch e.Type {
		case sdl.MOUSEBUTTONDOWN:
			ev.Type = EventMouseDown
			return ev, true
		case sdl.MOUSEBUTTONUP:
			ev.Type = EventMouseUp
			return ev, true
		}
	}
	return Event{}, false
}

// BeginFrame clears the events and mouse deltas of the previous frame.
// Held keys persist.
func (i *Input) BeginFrame() {
	i.events = i.events[:0]
	i.dx, i.dy = 0, 0
}

// Handle records ev for the current frame.
func (i *Input) Handle(ev Event) {
	i.events = append(i.events, ev)

	switch ev.Type {
	case EventKeyDown:
		i.held[ev.Key] = true
	case EventKeyUp:
		delete(i.held, ev.Key)
	case EventMouseDown:
		if ev.Button == LookButton {
			i.looking = true
		}
	case EventMouseUp:
		if ev.Button == LookButton {
			i.looking = false
		}
	case EventMouseMove:
		if i.looking {
			i.dx += float32(ev.RelX)
			i.dy += float32(ev.RelY)
		}
	}
}

// Events returns the events of the current frame.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key was pressed this frame. Auto-repeat
// presses do not count.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode && !e.Repeat {
			return true
		}
	}
	return false
}

// IsKeyHeld reports whether scancode is currently down.
func (i *Input) IsKeyHeld(scancode sdl.Scancode) bool {
	return i.held[scancode]
}

// Movement returns the camera movement axes from the held keys: W/S move
// along the view direction, D/A strafe and E/Q move vertically. Opposing keys
// cancel out.
func (i *Input) Movement() camera.Movement {
	return camera.Movement{
		Forward: i.axis(sdl.SCANCODE_W, sdl.SCANCODE_S),
		Right:   i.axis(sdl.SCANCODE_D, sdl.SCANCODE_A),
		Up:      i.axis(sdl.SCANCODE_E, sdl.SCANCODE_Q),
	}
}

func (i *Input) axis(positive, negative sdl.Scancode) float32 {
	var v float32
	if i.held[positive] {
		v++
	}
	if i.held[negative] {
		v--
	}
	return v
}

// Looking reports whether free look is active.
func (i *Input) Looking() bool {
	return i.looking
}

// MouseDelta returns the look motion accumulated this frame in screen
// pixels, y growing downward.
func (i *Input) MouseDelta() (dx, dy float32) {
	return i.dx, i.dy
}
