package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Faultbox/heliscene/internal/input"
	"github.com/Faultbox/heliscene/internal/shared"
)

func TestStartRenderReportsResult(t *testing.T) {
	boom := errors.New("gl init failed")

	tests := []struct {
		name  string
		fn    RenderFunc
		check func(error) bool
	}{
		{
			name:  "clean stop",
			fn:    func(ctx context.Context) error { return nil },
			check: func(err error) bool { return err == nil },
		},
		{
			name:  "error",
			fn:    func(ctx context.Context) error { return boom },
			check: func(err error) bool { return errors.Is(err, boom) },
		},
		{
			name: "panic",
			fn:   func(ctx context.Context) error { panic("index out of range") },
			check: func(err error) bool {
				return err != nil && strings.Contains(err.Error(), "render task panicked: index out of range")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			select {
			case err := <-StartRender(context.Background(), tt.fn):
				if !tt.check(err) {
					t.Errorf("unexpected result: %v", err)
				}
			case <-time.After(2 * time.Second):
				t.Fatal("render task never reported")
			}
		})
	}
}

func TestWatchdogLeavesHealthOnCleanStop(t *testing.T) {
	h := shared.New(1, 1).Health
	ctx, cancel := context.WithCancel(context.Background())

	wd := Watch(StartRender(ctx, func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	}), h)

	cancel()
	if err := wd.Wait(); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if !h.Healthy() {
		t.Error("clean stop flipped the health flag")
	}
}

func TestWatchdogFailsHealthOnPanic(t *testing.T) {
	h := shared.New(1, 1).Health
	wd := Watch(StartRender(context.Background(), func(context.Context) error {
		panic("driver crashed")
	}), h)

	<-wd.Done()
	if h.Healthy() {
		t.Fatal("health still up after render panic")
	}
	if err := wd.Wait(); err == nil || h.Cause() != err {
		t.Errorf("Wait = %v, cause = %v", err, h.Cause())
	}
}

// idleSource never produces events; it counts how often it was polled.
type idleSource struct {
	polls chan struct{}
}

func (s idleSource) Wait(d time.Duration) (input.Event, bool) {
	s.polls <- struct{}{}
	time.Sleep(time.Millisecond)
	return input.Event{}, false
}

func TestRenderFailureStopsInputTask(t *testing.T) {
	st := shared.New(800, 600)
	crash := make(chan struct{})

	wd := Watch(StartRender(context.Background(), func(context.Context) error {
		<-crash
		return errors.New("lost GL context")
	}), st.Health)

	src := idleSource{polls: make(chan struct{}, 1024)}
	done := make(chan error, 1)
	go func() { done <- input.NewTask(src, st).Run(context.Background()) }()

	// Let the input task spin a few times before the crash.
	for range 3 {
		<-src.polls
	}
	close(crash)
	<-wd.Done()
	pollsAtFailure := len(src.polls)

	select {
	case err := <-done:
		if !errors.Is(err, input.ErrRenderFailed) {
			t.Fatalf("input task returned %v, want ErrRenderFailed", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("input task kept running after the render task died")
	}

	// At most the wait already in flight completes before shutdown.
	if extra := len(src.polls) - pollsAtFailure; extra > 1 {
		t.Errorf("input task polled %d more times after the flag flipped", extra)
	}
}
