// Package app drives the demo: it wires the window, renderer and scene
// together and runs the frame loop until a close is requested.
package app

import (
	"fmt"
	"time"

	"github.com/loov/hrtime"
	"go.uber.org/zap"

	"github.com/Faultbox/spinlight/internal/assets"
	"github.com/Faultbox/spinlight/internal/config"
	"github.com/Faultbox/spinlight/internal/engine/debug"
	"github.com/Faultbox/spinlight/internal/engine/input"
	"github.com/Faultbox/spinlight/internal/engine/renderer"
	"github.com/Faultbox/spinlight/internal/engine/scene"
	"github.com/Faultbox/spinlight/internal/engine/window"
	"github.com/Faultbox/spinlight/internal/logger"
)

// State is the lifecycle phase of the frame driver.
type State int

const (
	StateInitializing State = iota
	StateRunning
	StateShuttingDown
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateRunning:
		return "running"
	case StateShuttingDown:
		return "shutting-down"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Window is the part of the OS window the loop needs.
type Window interface {
	PollEvents()
	SwapBuffers()
	SetTitle(title string)
}

// Renderer draws frames into the current back buffer.
type Renderer interface {
	Resize(width, height int)
	Draw(t float64) error
	ReadPixels() ([]byte, int, int)
}

// Screenshotter saves a bottom-up RGBA framebuffer read.
type Screenshotter interface {
	CaptureFromPixels(pixels []byte, width, height int) (string, error)
}

// App is the frame driver.
type App struct {
	state    State
	window   Window
	renderer Renderer
	events   *input.Queue
	shots    Screenshotter

	title          string // base window title, the frame rate is appended
	clock          func() time.Duration
	closeRequested bool
	captureQueued  bool
	frames         uint64
	stats          *frameStats

	closers []func()
}

func newApp(w Window, r Renderer, events *input.Queue, shots Screenshotter) *App {
	return &App{
		state:    StateInitializing,
		window:   w,
		renderer: r,
		events:   events,
		shots:    shots,
		clock:    hrtime.Now,
		stats:    newFrameStats(time.Second),
	}
}

// New sets up the scene, window and renderer described by cfg.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing",
		zap.String("scene", cfg.Render.Scene),
		zap.String("backend", cfg.Window.Backend),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	sc, err := scene.ByName(cfg.Render.Scene)
	if err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	files := assets.NewManager()
	if cfg.Render.ShaderDir != "" {
		if err := files.AddDir(cfg.Render.ShaderDir); err != nil {
			return nil, err
		}
	}
	res, err := renderer.LoadResources(files, sc, cfg.Render.ShaderName)
	if err != nil {
		return nil, fmt.Errorf("loading resources: %w", err)
	}

	events := input.NewQueue()
	win, err := window.New(window.FromConfig(cfg.Window), events)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer AFTER window, since the GL context must exist
	width, height := win.FramebufferSize()
	r, err := renderer.New(renderer.FromConfig(cfg.Render, width, height), sc, res)
	if err != nil {
		win.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a := newApp(win, r, events, debug.FromConfig(cfg.Screenshot))
	a.title = cfg.Window.Title
	a.closers = []func(){r.Close, win.Close}

	logger.Info("initialized", zap.String("backend", win.Backend()))
	return a, nil
}

// State returns the current lifecycle phase.
func (a *App) State() State {
	return a.state
}

// Frames returns how many frames have been presented.
func (a *App) Frames() uint64 {
	return a.frames
}

// Run draws frames until a close is requested. Events are handled right
// after each poll, so a close delivered by the poll ends the loop at the
// next iteration boundary without drawing another frame.
func (a *App) Run() error {
	a.state = StateRunning
	logger.Info("starting frame loop")

	start := a.clock()
	a.handleEvents()
	for !a.closeRequested {
		if err := a.frame(start); err != nil {
			a.state = StateShuttingDown
			return err
		}
	}

	a.state = StateShuttingDown
	logger.Info("frame loop stopped", zap.Uint64("frames", a.frames))
	return nil
}

// handleEvents drains the queue: resizes go to the renderer, Escape and
// window close set the close flag, F12 queues a capture of the next frame.
func (a *App) handleEvents() {
	for _, e := range a.events.Drain() {
		switch e.Type {
		case input.EventWindowResize:
			a.renderer.Resize(e.Width, e.Height)
		case input.EventQuit:
			a.closeRequested = true
		case input.EventKeyDown:
			switch e.Key {
			case input.KeyEscape:
				a.closeRequested = true
			case input.KeyF12:
				a.captureQueued = true
			}
		}
	}
}

func (a *App) frame(start time.Duration) error {
	frameStart := a.clock()

	t := (frameStart - start).Seconds()
	if err := a.renderer.Draw(t); err != nil {
		return fmt.Errorf("render error: %w", err)
	}
	if a.captureQueued {
		a.captureQueued = false
		a.screenshot()
	}

	a.window.SwapBuffers()
	a.window.PollEvents()
	a.frames++
	a.handleEvents()

	now := a.clock()
	a.stats.record(now - frameStart)
	if a.stats.due(now) {
		fps := a.stats.report(now)
		a.window.SetTitle(fmt.Sprintf("%s (%.0f fps)", a.title, fps))
	}
	return nil
}

// screenshot reads the back buffer before it is swapped.
func (a *App) screenshot() {
	if a.shots == nil {
		return
	}
	pixels, width, height := a.renderer.ReadPixels()
	path, err := a.shots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases GPU resources and the window. It is safe to call twice.
func (a *App) Close() {
	logger.Info("shutting down")
	a.state = StateShuttingDown
	for _, c := range a.closers {
		c()
	}
	a.closers = nil
}
