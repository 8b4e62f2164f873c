// Package main is the entry point for the spinlight demo.
package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/spinlight/internal/app"
	"github.com/Faultbox/spinlight/internal/config"
	"github.com/Faultbox/spinlight/internal/engine/shader"
	"github.com/Faultbox/spinlight/internal/logger"
)

// runner is the set-up demo driven by main.
type runner interface {
	Run() error
	Close()
}

// newRunner builds the demo; replaced in tests.
var newRunner = func(cfg *config.Config) (runner, error) {
	a, err := app.New(cfg)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func main() {
	os.Exit(run())
}

func run() int {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if path := config.SaveConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Config save error: %v\n", err)
			return 1
		}
		fmt.Printf("Config written to %s\n", path)
		return 0
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	return runApp(cfg)
}

// runApp sets up and runs the demo, returning the process exit status.
func runApp(cfg *config.Config) int {
	logger.Info("=== spinlight ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := newRunner(cfg)
	if err != nil {
		logSetupError(err)
		return 1
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("frame loop error", zap.Error(err))
		return 1
	}

	logger.Info("closed normally")
	return 0
}

func logSetupError(err error) {
	var compileErr *shader.CompileError
	var linkErr *shader.LinkError
	switch {
	case errors.As(err, &compileErr):
		logger.Error("shader compile failed",
			zap.Stringer("stage", compileErr.Stage),
			zap.String("log", compileErr.Log),
		)
	case errors.As(err, &linkErr):
		logger.Error("shader link failed", zap.String("log", linkErr.Log))
	default:
		logger.Error("setup failed", zap.Error(err))
	}
}
