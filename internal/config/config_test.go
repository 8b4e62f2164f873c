package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 640 {
		t.Errorf("expected width 640, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 480 {
		t.Errorf("expected height 480, got %d", cfg.Window.Height)
	}
	if cfg.Window.Backend != BackendGLFW {
		t.Errorf("expected glfw backend, got %s", cfg.Window.Backend)
	}
	if cfg.Render.Scene != SceneCube {
		t.Errorf("expected cube scene, got %s", cfg.Render.Scene)
	}
	if cfg.Render.FOVDegrees != 50 {
		t.Errorf("expected fov 50, got %v", cfg.Render.FOVDegrees)
	}
	if cfg.Render.Near != 0.1 || cfg.Render.Far != 1000 {
		t.Errorf("expected clip planes 0.1/1000, got %v/%v", cfg.Render.Near, cfg.Render.Far)
	}
	if cfg.Render.CheckGLErrors {
		t.Error("expected GL error checks off by default")
	}
	if cfg.Screenshot.Format != FormatPNG {
		t.Errorf("expected png screenshots, got %s", cfg.Screenshot.Format)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
window:
  width: 1024
  height: 768
  backend: sdl
  vsync: false

render:
  scene: pyramid_cube
  shader_dir: ./my-shaders
  fov_deg: 60
  clear_color: [0.1, 0.1, 0.15]
  check_gl_errors: true

screenshot:
  format: bmp

logging:
  level: debug
  log_file: spinlight.log
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
		t.Errorf("expected 1024x768, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Backend != BackendSDL {
		t.Errorf("expected sdl backend, got %s", cfg.Window.Backend)
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Render.Scene != ScenePyramidCube {
		t.Errorf("expected pyramid_cube, got %s", cfg.Render.Scene)
	}
	if cfg.Render.ShaderDir != "./my-shaders" {
		t.Errorf("expected shader dir ./my-shaders, got %s", cfg.Render.ShaderDir)
	}
	if cfg.Render.FOVDegrees != 60 {
		t.Errorf("expected fov 60, got %v", cfg.Render.FOVDegrees)
	}
	if cfg.Render.ClearColor != [3]float32{0.1, 0.1, 0.15} {
		t.Errorf("unexpected clear color %v", cfg.Render.ClearColor)
	}
	if !cfg.Render.CheckGLErrors {
		t.Error("expected GL error checks on")
	}
	if cfg.Screenshot.Format != FormatBMP {
		t.Errorf("expected bmp, got %s", cfg.Screenshot.Format)
	}
	if cfg.Logging.LogFile != "spinlight.log" {
		t.Errorf("expected log file spinlight.log, got %s", cfg.Logging.LogFile)
	}

	// Keys absent from the file keep their defaults.
	if cfg.Render.Near != 0.1 || cfg.Render.Far != 1000 {
		t.Errorf("clip planes should keep defaults, got %v/%v", cfg.Render.Near, cfg.Render.Far)
	}
	if cfg.Window.Title != "My spinning cube" {
		t.Errorf("title should keep default, got %q", cfg.Window.Title)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }, "window size"},
		{"bad backend", func(c *Config) { c.Window.Backend = "x11" }, "backend"},
		{"bad scene", func(c *Config) { c.Render.Scene = "teapot" }, "scene"},
		{"fov too wide", func(c *Config) { c.Render.FOVDegrees = 180 }, "fov_deg"},
		{"near past far", func(c *Config) { c.Render.Near = 2000 }, "clip planes"},
		{"negative near", func(c *Config) { c.Render.Near = -1 }, "clip planes"},
		{"bad format", func(c *Config) { c.Screenshot.Format = "gif" }, "screenshot format"},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }, "log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestValidateReportsAll(t *testing.T) {
	cfg := Default()
	cfg.Window.Backend = "x11"
	cfg.Render.Scene = "teapot"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "backend") || !strings.Contains(err.Error(), "scene") {
		t.Errorf("expected both problems reported, got %v", err)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Render.Scene = ScenePyramidCube
	cfg.Window.Width = 800
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if loaded.Render.Scene != ScenePyramidCube || loaded.Window.Width != 800 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestApplyFlags(t *testing.T) {
	oldDebug, oldScene, oldWidth := *flagDebug, *flagScene, *flagWidth
	defer func() {
		*flagDebug, *flagScene, *flagWidth = oldDebug, oldScene, oldWidth
	}()

	*flagDebug = true
	*flagScene = ScenePyramidCube
	*flagWidth = 1280

	cfg := Default()
	applyFlags(cfg)

	if cfg.Logging.Level != "debug" || !cfg.Render.CheckGLErrors {
		t.Error("-debug should enable debug logging and GL error checks")
	}
	if cfg.Render.Scene != ScenePyramidCube {
		t.Errorf("expected scene override, got %s", cfg.Render.Scene)
	}
	if cfg.Window.Width != 1280 {
		t.Errorf("expected width override, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 480 {
		t.Errorf("height should be untouched, got %d", cfg.Window.Height)
	}
}
