// Package window handles SDL2 window and OpenGL context creation.
package window

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/heliscene/internal/logger"
)

func init() {
	// SDL video and event calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// Window wraps the SDL2 window and its OpenGL context.
//
// New, Close and event handling belong to the main thread. The context is
// handed to the render thread with ReleaseContext then MakeCurrent.
type Window struct {
	config    Config
	sdlWindow *sdl.Window
	glContext sdl.GLContext
}

// New creates a window with an OpenGL 4.1 core context.
func New(cfg Config) (*Window, error) {
	w := &Window{
		config: cfg,
	}

	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// 4.1 core is the newest profile macOS offers
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	w.glContext, err = w.sdlWindow.GLCreateContext()
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	if err := w.applySwapInterval(); err != nil {
		logger.Warn("failed to set swap interval", zap.Error(err))
	}

	logger.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

func (w *Window) applySwapInterval() error {
	if w.config.VSync {
		return sdl.GLSetSwapInterval(1)
	}
	return sdl.GLSetSwapInterval(0)
}

// ReleaseContext detaches the GL context from the calling thread.
func (w *Window) ReleaseContext() error {
	if err := w.sdlWindow.GLMakeCurrent(nil); err != nil {
		return fmt.Errorf("releasing GL context: %w", err)
	}
	return nil
}

// MakeCurrent binds the GL context to the calling thread. The caller must
// have locked its OS thread.
func (w *Window) MakeCurrent() error {
	if err := w.sdlWindow.GLMakeCurrent(w.glContext); err != nil {
		return fmt.Errorf("binding GL context: %w", err)
	}
	// Swap interval is per context binding on some drivers
	if err := w.applySwapInterval(); err != nil {
		logger.Warn("failed to set swap interval", zap.Error(err))
	}
	return nil
}

// Present swaps the OpenGL buffers. Called from the thread that owns the context.
func (w *Window) Present() {
	w.sdlWindow.GLSwap()
}

// Size returns the current drawable size in pixels.
func (w *Window) Size() (int, int) {
	width, height := w.sdlWindow.GLGetDrawableSize()
	return int(width), int(height)
}

// Close destroys the context and window and shuts SDL down.
func (w *Window) Close() {
	logger.Info("closing window")

	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}

	sdl.Quit()
}
