package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/spinlight/internal/engine/input"
	"github.com/Faultbox/spinlight/internal/logger"
)

type glfwWindow struct {
	config Config
	win    *glfw.Window
	events *input.Queue
}

func newGLFW(cfg Config, events *input.Queue) (*glfwWindow, error) {
	logger.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init failed: %w", err)
	}

	// OpenGL 4.1 Core Profile (max supported on macOS)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw create window failed: %w", err)
	}
	win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &glfwWindow{config: cfg, win: win, events: events}
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.events.Push(input.Resize(width, height))
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			w.events.Push(input.KeyDown(glfwKey(key)))
		case glfw.Release:
			w.events.Push(input.KeyUp(glfwKey(key)))
		}
	})
	win.SetCloseCallback(func(_ *glfw.Window) {
		w.events.Push(input.Quit())
	})

	logger.Info("window created",
		zap.String("backend", "glfw"),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("vsync", cfg.VSync),
	)
	return w, nil
}

func glfwKey(k glfw.Key) input.Key {
	switch k {
	case glfw.KeyEscape:
		return input.KeyEscape
	case glfw.KeyF12:
		return input.KeyF12
	case glfw.KeySpace:
		return input.KeySpace
	default:
		return input.KeyUnknown
	}
}

func (w *glfwWindow) PollEvents() {
	glfw.PollEvents()
}

func (w *glfwWindow) SwapBuffers() {
	w.win.SwapBuffers()
}

func (w *glfwWindow) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

func (w *glfwWindow) SetTitle(title string) {
	w.win.SetTitle(title)
}

func (w *glfwWindow) Backend() string { return "glfw" }

func (w *glfwWindow) Close() {
	logger.Info("closing window")
	if w.win != nil {
		w.win.Destroy()
		w.win = nil
	}
	glfw.Terminate()
}
