package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/heliscene/internal/animation"
	"github.com/Faultbox/heliscene/internal/config"
	"github.com/Faultbox/heliscene/internal/input"
	"github.com/Faultbox/heliscene/internal/logger"
	"github.com/Faultbox/heliscene/internal/renderer"
	"github.com/Faultbox/heliscene/internal/shared"
	"github.com/Faultbox/heliscene/internal/trajectory"
	"github.com/Faultbox/heliscene/internal/window"
)

// Title is the window title.
const Title = "HeliScene"

// Run opens the window and runs the viewer until the user quits or the
// render task dies. It must be called from the main goroutine.
func Run(cfg *config.Config) error {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("actors", cfg.Scene.ActorCount),
	)

	win, err := window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer win.Close()

	width, height := win.Size()
	st := shared.New(width, height)

	// The render task takes the context over for good.
	if err := win.ReleaseContext(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	renderDone := StartRender(ctx, func(ctx context.Context) error {
		return render(ctx, cfg, win, st)
	})
	wd := Watch(renderDone, st.Health)

	inputErr := input.NewTask(input.SDLSource{Drawable: win.Size}, st).Run(ctx)

	cancel()
	renderErr := wd.Wait()

	if errors.Is(inputErr, input.ErrRenderFailed) {
		return inputErr
	}
	return errors.Join(inputErr, renderErr)
}

// render is the render task body. It runs on a locked OS thread.
func render(ctx context.Context, cfg *config.Config, win *window.Window, st *shared.State) error {
	if err := win.MakeCurrent(); err != nil {
		return err
	}

	r, err := renderer.New(rendererConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	defer r.Close()

	size, err := st.Window.Size()
	if err != nil {
		return fmt.Errorf("reading window size: %w", err)
	}
	r.Viewport(size.Width, size.Height)

	root, actors, err := BuildScene(r, cfg.Scene)
	if err != nil {
		return err
	}
	driver := animation.NewDriver(driverConfig(cfg.Scene), trajectory.Circuit, actors)

	return NewRenderLoop(loopConfig(cfg), st, r, win, root, driver).Run(ctx)
}
