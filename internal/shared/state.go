package shared

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/Faultbox/heliscene/internal/keys"
)

// MouseDelta is the mouse motion accumulated since the last read.
type MouseDelta struct {
	DX, DY float32
}

// WindowSize is the latest window size and whether the render task still
// has to apply it.
type WindowSize struct {
	Width, Height int
	Dirty         bool
}

// PressedKeys is the set of keys currently held, in press order.
type PressedKeys struct {
	cell *Cell[[]keys.Key]
}

// NewPressedKeys wraps c, which holds the key set.
func NewPressedKeys(c *Cell[[]keys.Key]) PressedKeys {
	return PressedKeys{cell: c}
}

// Press adds k to the set. Pressing a held key is a no-op.
func (p PressedKeys) Press(k keys.Key) error {
	return p.cell.With(func(set *[]keys.Key) {
		if !slices.Contains(*set, k) {
			*set = append(*set, k)
		}
	})
}

// Release removes k from the set.
func (p PressedKeys) Release(k keys.Key) error {
	return p.cell.With(func(set *[]keys.Key) {
		if i := slices.Index(*set, k); i >= 0 {
			*set = slices.Delete(*set, i, i+1)
		}
	})
}

// Snapshot returns a copy of the held keys.
func (p PressedKeys) Snapshot() ([]keys.Key, error) {
	var out []keys.Key
	err := p.cell.With(func(set *[]keys.Key) {
		out = slices.Clone(*set)
	})
	return out, err
}

// Mouse accumulates relative mouse motion between frames.
type Mouse struct {
	cell *Cell[MouseDelta]
}

// NewMouse wraps c, which holds the accumulated delta.
func NewMouse(c *Cell[MouseDelta]) Mouse {
	return Mouse{cell: c}
}

// Add accumulates a motion event.
func (m Mouse) Add(dx, dy float32) error {
	return m.cell.With(func(d *MouseDelta) {
		d.DX += dx
		d.DY += dy
	})
}

// Take returns the accumulated delta and resets it to zero.
func (m Mouse) Take() (MouseDelta, error) {
	var out MouseDelta
	err := m.cell.With(func(d *MouseDelta) {
		out = *d
		*d = MouseDelta{}
	})
	return out, err
}

// Window tracks the window size handed from the input task to the render task.
type Window struct {
	cell *Cell[WindowSize]
}

// NewWindow wraps c, which holds the window size.
func NewWindow(c *Cell[WindowSize]) Window {
	return Window{cell: c}
}

// Resize records a new size and marks it pending.
func (w Window) Resize(width, height int) error {
	return w.cell.With(func(s *WindowSize) {
		*s = WindowSize{Width: width, Height: height, Dirty: true}
	})
}

// TakeResize returns the pending size, if any, and clears the dirty flag.
func (w Window) TakeResize() (WindowSize, bool, error) {
	var (
		out     WindowSize
		pending bool
	)
	err := w.cell.With(func(s *WindowSize) {
		if s.Dirty {
			out, pending = *s, true
			s.Dirty = false
		}
	})
	return out, pending, err
}

// Size returns the current size.
func (w Window) Size() (WindowSize, error) {
	return w.cell.Load()
}

// Health is the render task health flag. It starts healthy and only ever
// goes from healthy to failed.
type Health struct {
	failed atomic.Bool

	mu    sync.Mutex
	cause error
}

// Healthy reports whether the render task is still alive.
func (h *Health) Healthy() bool {
	return !h.failed.Load()
}

// Fail marks the render task as dead.
func (h *Health) Fail(cause error) {
	h.mu.Lock()
	if h.cause == nil {
		h.cause = cause
	}
	h.mu.Unlock()
	h.failed.Store(true)
}

// Cause returns the first recorded failure, or nil.
func (h *Health) Cause() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cause
}

// State bundles the three cells and the health flag. It is created once at
// startup and passed by pointer to both tasks.
type State struct {
	Keys   PressedKeys
	Mouse  Mouse
	Window Window
	Health *Health
}

// New creates the shared state for a window of the given initial size.
func New(width, height int) *State {
	return &State{
		Keys:   NewPressedKeys(NewCell(make([]keys.Key, 0, 10))),
		Mouse:  NewMouse(NewCell(MouseDelta{})),
		Window: NewWindow(NewCell(WindowSize{Width: width, Height: height})),
		Health: &Health{},
	}
}
