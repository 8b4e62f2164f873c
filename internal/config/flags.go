package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging and GL error checks")
	flagBackend = flag.String("backend", "", "Window backend (glfw, sdl)")
	flagScene   = flag.String("scene", "", "Scene variant (cube, pyramid_cube)")
	flagShaders = flag.String("shaders", "", "Directory with shaders/ and meshes/ overrides")
	flagWidth   = flag.Int("width", 0, "Window width")
	flagHeight  = flag.Int("height", 0, "Window height")

	flagSaveConfig = flag.String("save-config", "", "Write the effective config to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveConfigPath returns the -save-config target, or "" when not set.
func SaveConfigPath() string {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Render.CheckGLErrors = true
	}
	if *flagBackend != "" {
		cfg.Window.Backend = *flagBackend
	}
	if *flagScene != "" {
		cfg.Render.Scene = *flagScene
	}
	if *flagShaders != "" {
		cfg.Render.ShaderDir = *flagShaders
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
}
