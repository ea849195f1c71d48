// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a processed input event.
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
	EventMouseWheel
)

// Key scancodes the viewer reacts to, re-exported so callers do not need
// to import SDL directly.
const (
	KeyEscape     = sdl.SCANCODE_ESCAPE
	KeyR          = sdl.SCANCODE_R
	KeyF12        = sdl.SCANCODE_F12
	KeyLeftShift  = sdl.SCANCODE_LSHIFT
	KeyRightShift = sdl.SCANCODE_RSHIFT
)

// ButtonLeft is the primary pointer button.
const ButtonLeft = sdl.BUTTON_LEFT

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	MouseX float64
	MouseY float64
	WheelY float64
	Button uint8
	Shift  bool // modifier state at the time of the event
}

// Input handles all input processing.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to viewer events.
// Returns true if the viewer should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	shift := sdl.GetModState()&sdl.KMOD_SHIFT != 0

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				i.events = append(i.events, Event{
					Type:  EventKeyDown,
					Key:   e.Keysym.Scancode,
					Shift: shift,
				})
			} else if e.Type == sdl.KEYUP {
				i.events = append(i.events, Event{
					Type:  EventKeyUp,
					Key:   e.Keysym.Scancode,
					Shift: shift,
				})
			}

		case *sdl.MouseMotionEvent:
			i.events = append(i.events, Event{
				Type:   EventMouseMove,
				MouseX: float64(e.X),
				MouseY: float64(e.Y),
				Shift:  shift,
			})

		case *sdl.MouseButtonEvent:
			ev := Event{
				MouseX: float64(e.X),
				MouseY: float64(e.Y),
				Button: e.Button,
				Shift:  shift,
			}
			if e.Type == sdl.MOUSEBUTTONDOWN {
				ev.Type = EventMouseDown
			} else if e.Type == sdl.MOUSEBUTTONUP {
				ev.Type = EventMouseUp
			} else {
				continue
			}
			i.events = append(i.events, ev)

		case *sdl.MouseWheelEvent:
			i.events = append(i.events, Event{
				Type:   EventMouseWheel,
				WheelY: float64(e.Y),
				Shift:  shift,
			})
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
