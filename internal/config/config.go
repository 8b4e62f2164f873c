// Package config handles demo configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/spinlight/internal/engine/scene"
)

// Window backends.
const (
	BackendGLFW = "glfw"
	BackendSDL  = "sdl"
)

// Scene variants.
const (
	SceneCube        = scene.NameCube
	ScenePyramidCube = scene.NamePyramidCube
)

// Screenshot formats.
const (
	FormatPNG = "png"
	FormatBMP = "bmp"
)

// Config holds all settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Render     RenderConfig     `yaml:"render"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WindowConfig holds window system settings.
type WindowConfig struct {
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Backend string `yaml:"backend"` // glfw or sdl
	VSync   bool   `yaml:"vsync"`
}

// RenderConfig holds scene and pipeline settings.
type RenderConfig struct {
	Scene         string     `yaml:"scene"`
	ShaderDir     string     `yaml:"shader_dir"`  // overrides the builtin shaders/ and meshes/
	ShaderName    string     `yaml:"shader_name"` // empty = the scene's default pair
	FOVDegrees    float32    `yaml:"fov_deg"`
	Near          float32    `yaml:"near"`
	Far           float32    `yaml:"far"`
	ClearColor    [3]float32 `yaml:"clear_color"`
	CheckGLErrors bool       `yaml:"check_gl_errors"`
}

// ScreenshotConfig holds F12 capture settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
	Format string `yaml:"format"` // png or bmp
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the demo's stock values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:   "My spinning cube",
			Width:   640,
			Height:  480,
			Backend: BackendGLFW,
			VSync:   true,
		},
		Render: RenderConfig{
			Scene:      SceneCube,
			FOVDegrees: 50,
			Near:       0.1,
			Far:        1000,
			ClearColor: [3]float32{0, 0, 0},
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Prefix: "spinlight",
			Format: FormatPNG,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	switch c.Window.Backend {
	case BackendGLFW, BackendSDL:
	default:
		errs = append(errs, fmt.Errorf("unknown window backend %q", c.Window.Backend))
	}

	switch c.Render.Scene {
	case SceneCube, ScenePyramidCube:
	default:
		errs = append(errs, fmt.Errorf("unknown scene %q", c.Render.Scene))
	}
	if c.Render.FOVDegrees <= 0 || c.Render.FOVDegrees >= 180 {
		errs = append(errs, fmt.Errorf("fov_deg %v out of range (0, 180)", c.Render.FOVDegrees))
	}
	if c.Render.Near <= 0 || c.Render.Near >= c.Render.Far {
		errs = append(errs, fmt.Errorf("clip planes near=%v far=%v: need 0 < near < far", c.Render.Near, c.Render.Far))
	}

	switch c.Screenshot.Format {
	case FormatPNG, FormatBMP:
	default:
		errs = append(errs, fmt.Errorf("unknown screenshot format %q", c.Screenshot.Format))
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Logging.Level))
	}

	return errors.Join(errs...)
}
