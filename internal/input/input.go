// Package input runs the input task: it turns SDL2 events into writes on
// the shared state and nothing else.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/heliscene/internal/keys"
)

// EventType is the kind of a translated event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
)

// Event is a backend-independent input event.
type Event struct {
	Type   EventType
	Key    keys.Key
	Width  int
	Height int
	DX, DY float32
}

var scancodes = map[sdl.Scancode]keys.Key{
	sdl.SCANCODE_W:      keys.W,
	sdl.SCANCODE_A:      keys.A,
	sdl.SCANCODE_S:      keys.S,
	sdl.SCANCODE_D:      keys.D,
	sdl.SCANCODE_SPACE:  keys.Space,
	sdl.SCANCODE_LSHIFT: keys.LShift,
	sdl.SCANCODE_LEFT:   keys.Left,
	sdl.SCANCODE_RIGHT:  keys.Right,
	sdl.SCANCODE_UP:     keys.Up,
	sdl.SCANCODE_DOWN:   keys.Down,
	sdl.SCANCODE_O:      keys.O,
	sdl.SCANCODE_C:      keys.C,
	sdl.SCANCODE_Q:      keys.Q,
	sdl.SCANCODE_ESCAPE: keys.Escape,
}

// KeyFromScancode maps an SDL scancode to a Key. Unbound scancodes map to
// keys.Unknown.
func KeyFromScancode(sc sdl.Scancode) keys.Key {
	if k, ok := scancodes[sc]; ok {
		return k
	}
	return keys.Unknown
}

// SizeFunc reports the drawable size in pixels.
type SizeFunc func() (width, height int)

// Translate converts an SDL event. ok is false for events the viewer does
// not use. Window events carry sizes in screen points, which differ from
// pixels on HiDPI displays, so resizes are measured with drawable when it
// is non-nil.
func Translate(event sdl.Event, drawable SizeFunc) (ev Event, ok bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		switch e.Event {
		// SDL sends SIZE_CHANGED for every size change, RESIZED only for
		// user-driven ones.
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			resize := Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			}
			if drawable != nil {
				resize.Width, resize.Height = drawable()
			}
			return resize, true
		case sdl.WINDOWEVENT_CLOSE:
			return Event{Type: EventQuit}, true
		}

	case *sdl.KeyboardEvent:
		k := KeyFromScancode(e.Keysym.Scancode)
		if k == keys.Unknown {
			return Event{}, false
		}
		switch e.Type {
		case sdl.KEYDOWN:
			return Event{Type: EventKeyDown, Key: k}, true
		case sdl.KEYUP:
			return Event{Type: EventKeyUp, Key: k}, true
		}

	case *sdl.MouseMotionEvent:
		return Event{
			Type: EventMouseMove,
			DX:   float32(e.XRel),
			DY:   float32(e.YRel),
		}, true
	}

	return Event{}, false
}
