package input

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/heliscene/internal/keys"
	"github.com/Faultbox/heliscene/internal/logger"
	"github.com/Faultbox/heliscene/internal/shared"
)

// ErrRenderFailed is returned by Run when the health flag went down.
var ErrRenderFailed = errors.New("render task failed")

// PollInterval bounds how long Run waits for an event before it checks the
// health flag again.
const PollInterval = 100 * time.Millisecond

// Source yields input events. Wait blocks for at most timeout and reports
// false if nothing arrived.
type Source interface {
	Wait(timeout time.Duration) (Event, bool)
}

// SDLSource reads the SDL event queue. It must be used on the main thread.
type SDLSource struct {
	// Drawable measures the GL drawable on resize.
	Drawable SizeFunc
}

// Wait implements Source.
func (s SDLSource) Wait(timeout time.Duration) (Event, bool) {
	event := sdl.WaitEventTimeout(int(timeout / time.Millisecond))
	if event == nil {
		return Event{}, false
	}
	return Translate(event, s.Drawable)
}

// Task is the input task. It only ever writes to the shared cells.
type Task struct {
	src   Source
	state *shared.State
	log   *zap.Logger
}

// NewTask creates an input task reading src and writing st.
func NewTask(src Source, st *shared.State) *Task {
	return &Task{src: src, state: st, log: logger.Named("input")}
}

// Run pumps events until the user quits, ctx is cancelled or the render
// task is reported dead. The health flag is checked once per iteration.
func (t *Task) Run(ctx context.Context) error {
	for {
		if !t.state.Health.Healthy() {
			cause := t.state.Health.Cause()
			t.log.Error("render task down, shutting down", zap.Error(cause))
			if cause == nil {
				return ErrRenderFailed
			}
			return fmt.Errorf("%w: %w", ErrRenderFailed, cause)
		}
		if err := ctx.Err(); err != nil {
			return nil
		}

		ev, ok := t.src.Wait(PollInterval)
		if !ok {
			continue
		}
		if t.Dispatch(ev) {
			t.log.Info("quit requested")
			return nil
		}
	}
}

// Dispatch applies one event to the shared state and reports whether it
// asks the program to quit. A poisoned cell drops the event.
func (t *Task) Dispatch(ev Event) (quit bool) {
	var err error
	switch ev.Type {
	case EventQuit:
		return true
	case EventKeyDown:
		if keys.IsQuit(ev.Key) {
			return true
		}
		err = t.state.Keys.Press(ev.Key)
	case EventKeyUp:
		err = t.state.Keys.Release(ev.Key)
	case EventMouseMove:
		err = t.state.Mouse.Add(ev.DX, ev.DY)
	case EventWindowResize:
		t.log.Debug("window resized", zap.Int("width", ev.Width), zap.Int("height", ev.Height))
		err = t.state.Window.Resize(ev.Width, ev.Height)
	}
	if err != nil {
		t.log.Warn("dropping input event", zap.Int("type", int(ev.Type)), zap.Error(err))
	}
	return false
}
