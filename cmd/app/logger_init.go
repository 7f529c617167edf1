package main

import (
	"github.com/osse101/slotforge/internal/config"
	"github.com/osse101/slotforge/internal/logger"
)

// initLogger installs the process logger from app configuration. Source
// locations are only attached in development.
func initLogger(cfg *config.Config) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))
}
