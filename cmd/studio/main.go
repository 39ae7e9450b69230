// Package main is the entry point for Scene Studio.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/scene-studio/internal/config"
	"github.com/Faultbox/scene-studio/internal/logger"
	"github.com/Faultbox/scene-studio/internal/studio"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Scene Studio ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	app, err := studio.New(cfg)
	if err != nil {
		logger.Error("failed to start studio", zap.Error(err))
		os.Exit(1)
	}
	defer app.Close()

	if err := app.Run(); err != nil {
		logger.Error("studio error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("studio closed normally")
}
