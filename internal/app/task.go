package app

import (
	"context"
	"fmt"
	"runtime"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/Faultbox/heliscene/internal/logger"
	"github.com/Faultbox/heliscene/internal/shared"
)

// RenderFunc is the body of the render task.
type RenderFunc func(ctx context.Context) error

// StartRender runs fn on its own goroutine, locked to one OS thread for its
// whole life so a GL context made current there stays there. The returned
// channel receives exactly one value: nil on a clean stop, otherwise the
// error or recovered panic.
func StartRender(ctx context.Context, fn RenderFunc) <-chan error {
	done := make(chan error, 1)
	go func() {
		runtime.LockOSThread()
		// Never unlocked: the thread dies with the goroutine and the
		// context goes with it.

		var err error
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("render task panicked: %v\n%s", r, debug.Stack())
			}
			done <- err
		}()
		err = fn(ctx)
	}()
	return done
}

// Watchdog observes the render task's termination.
type Watchdog struct {
	finished chan struct{}
	err      error
}

// Watch starts the watchdog on renderDone. On abnormal termination it
// fails health, which the input task picks up on its next iteration.
func Watch(renderDone <-chan error, health *shared.Health) *Watchdog {
	w := &Watchdog{finished: make(chan struct{})}
	log := logger.Named("watchdog")

	go func() {
		defer close(w.finished)
		err := <-renderDone
		if err != nil {
			log.Error("render task terminated abnormally", zap.Error(err))
			health.Fail(err)
		} else {
			log.Debug("render task finished")
		}
		w.err = err
	}()
	return w
}

// Wait blocks until the render task has ended and returns its error.
func (w *Watchdog) Wait() error {
	<-w.finished
	return w.err
}

// Done is closed once the render task has ended.
func (w *Watchdog) Done() <-chan struct{} {
	return w.finished
}
