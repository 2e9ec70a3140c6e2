// Package app wires the viewer together: the render loop, the render task
// and its watchdog, and the input task on the main thread.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/heliscene/internal/animation"
	"github.com/Faultbox/heliscene/internal/camera"
	"github.com/Faultbox/heliscene/internal/keys"
	"github.com/Faultbox/heliscene/internal/logger"
	"github.com/Faultbox/heliscene/internal/scene"
	"github.com/Faultbox/heliscene/internal/shared"
)

// Graphics is the drawing surface the render loop talks to.
type Graphics interface {
	Clear()
	Viewport(width, height int)
	Submit(scene.DrawCall)
}

// Presenter shows the finished frame.
type Presenter interface {
	Present()
}

// LoopConfig tunes the render loop.
type LoopConfig struct {
	Lens             camera.Lens
	MoveRate         float32 // accumulator units per second of hold
	MouseLook        bool
	MouseSensitivity float32
}

// Shared cell names used in stale-value warnings.
const (
	cellKeys   = "keys"
	cellMouse  = "mouse"
	cellWindow = "window"
)

// RenderLoop owns everything the render task touches between frames.
type RenderLoop struct {
	cfg     LoopConfig
	state   *shared.State
	gfx     Graphics
	present Presenter
	root    *scene.Node
	driver  *animation.Driver

	motion camera.Motion
	aspect float32
	warned map[string]bool
	log    *zap.Logger
}

// NewRenderLoop creates a loop drawing root. The initial aspect ratio comes
// from the window cell.
func NewRenderLoop(cfg LoopConfig, st *shared.State, gfx Graphics, present Presenter,
	root *scene.Node, driver *animation.Driver) *RenderLoop {
	l := &RenderLoop{
		cfg:     cfg,
		state:   st,
		gfx:     gfx,
		present: present,
		root:    root,
		driver:  driver,
		aspect:  1,
		warned:  make(map[string]bool),
		log:     logger.Named("render"),
	}
	if size, err := st.Window.Size(); err == nil {
		l.setAspect(size.Width, size.Height)
	}
	return l
}

// Motion returns the camera accumulators.
func (l *RenderLoop) Motion() camera.Motion {
	return l.motion
}

// Aspect returns the aspect ratio used for the projection.
func (l *RenderLoop) Aspect() float32 {
	return l.aspect
}

func (l *RenderLoop) setAspect(width, height int) {
	// A minimised window reports zero height; keep the last ratio.
	if width > 0 && height > 0 {
		l.aspect = float32(width) / float32(height)
	}
}

// skipCell logs the first failure of each cell. The frame goes on without
// that cell's input.
func (l *RenderLoop) skipCell(name string, err error) {
	if l.warned[name] {
		return
	}
	l.warned[name] = true
	l.log.Warn("shared cell unavailable, skipping its input",
		zap.String("cell", name),
		zap.Error(err),
	)
}

// Frame runs one iteration. elapsed is the time since the loop started and
// dt the duration of the previous frame, both in seconds.
func (l *RenderLoop) Frame(elapsed, dt float32) error {
	size, pending, err := l.state.Window.TakeResize()
	switch {
	case err != nil:
		l.skipCell(cellWindow, err)
	case pending:
		l.gfx.Viewport(size.Width, size.Height)
		l.setAspect(size.Width, size.Height)
		l.log.Info("window resized", zap.Int("width", size.Width), zap.Int("height", size.Height))
	}

	// A poisoned key cell reads as nothing held.
	held, err := l.state.Keys.Snapshot()
	if err != nil {
		l.skipCell(cellKeys, err)
		held = nil
	}
	l.motion.Apply(held, l.cfg.MoveRate, dt)
	for _, k := range held {
		switch k {
		case keys.DoorOpen:
			l.driver.SetDoor(animation.DoorOpen)
		case keys.DoorClose:
			l.driver.SetDoor(animation.DoorClosed)
		}
	}

	// Taken every frame so motion never piles up while mouse look is off.
	delta, err := l.state.Mouse.Take()
	if err != nil {
		l.skipCell(cellMouse, err)
	} else if l.cfg.MouseLook {
		l.motion.Look(delta.DX, delta.DY, l.cfg.MouseSensitivity)
	}

	viewProj := camera.ViewProjection(l.motion, l.cfg.Lens, l.aspect)

	if err := l.driver.Update(elapsed, dt); err != nil {
		return fmt.Errorf("animating actors: %w", err)
	}

	l.gfx.Clear()
	scene.Render(l.root, viewProj, l.gfx)
	l.present.Present()
	return nil
}

// Run calls Frame until ctx is cancelled or a frame fails. Frame pacing
// comes from Present blocking on vsync.
func (l *RenderLoop) Run(ctx context.Context) error {
	start := time.Now()
	lastTime := start
	frameCount := 0
	fpsTimer := start

	l.log.Info("starting render loop", zap.Int("actors", len(l.driver.Actors())))

	for {
		select {
		case <-ctx.Done():
			l.log.Info("render loop stopped")
			return nil
		default:
		}

		now := time.Now()
		elapsed := now.Sub(start).Seconds()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if err := l.Frame(float32(elapsed), float32(dt)); err != nil {
			return err
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			stats := scene.Count(l.root)
			l.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
				zap.Int("draw_calls", stats.DrawCalls),
				zap.Int64("indices", stats.Indices),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
}
