// Package main implements the entry point for the bookshelf API server,
// which manages users, shelves and their book collections.
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/raduapetrei/bookshelf-api/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	app, err := newApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
