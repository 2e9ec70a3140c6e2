// Package main is the entry point for the HeliScene viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/heliscene/internal/app"
	"github.com/Faultbox/heliscene/internal/config"
	"github.com/Faultbox/heliscene/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("=== HeliScene ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := app.Run(cfg); err != nil {
		logger.Error("viewer stopped", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
	logger.Sync()
}
