// Package window creates the OS window and its OpenGL 4.1 core context.
// Two backends exist: GLFW and SDL2. Both report resize, key and close
// events through an input.Queue.
package window

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/Faultbox/spinlight/internal/config"
	"github.com/Faultbox/spinlight/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// ErrUnknownBackend is returned by New for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown window backend")

// Config holds window configuration.
type Config struct {
	Title   string
	Width   int
	Height  int
	Backend string
	VSync   bool
}

// FromConfig extracts the window settings from the application config.
func FromConfig(c config.WindowConfig) Config {
	return Config{
		Title:   c.Title,
		Width:   c.Width,
		Height:  c.Height,
		Backend: c.Backend,
		VSync:   c.VSync,
	}
}

// Window is an open window with a current GL context.
type Window interface {
	// PollEvents pumps the OS event loop and pushes events to the queue.
	PollEvents()
	SwapBuffers()
	// FramebufferSize returns the drawable size in pixels.
	FramebufferSize() (int, int)
	SetTitle(title string)
	Close()
	Backend() string
}

// New opens a window on the configured backend.
func New(cfg Config, events *input.Queue) (Window, error) {
	if events == nil {
		return nil, errors.New("window: nil event queue")
	}
	switch cfg.Backend {
	case config.BackendGLFW, "":
		w, err := newGLFW(cfg, events)
		if err != nil {
			return nil, err
		}
		return w, nil
	case config.BackendSDL:
		w, err := newSDL(cfg, events)
		if err != nil {
			return nil, err
		}
		return w, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
