package main

import (
	"os"

	"github.com/ldanko/idleheroes/internal/config"
	"github.com/ldanko/idleheroes/internal/logger"
)

// initLogger initializes the logger from app configuration.
func initLogger(cfg *config.Config) {
	// Source locations are only worth the noise in dev.
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "idleheroes",
		Version:     version,
		Environment: cfg.Environment,
		AddSource:   addSource,
	}, os.Stdout)
}
