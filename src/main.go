package main

import (
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/contre95/soundwell/src/features/config"
	"github.com/contre95/soundwell/src/features/hosting"
	"github.com/contre95/soundwell/src/features/library"
	"github.com/contre95/soundwell/src/features/logging"
	"github.com/contre95/soundwell/src/features/plays"
	"github.com/contre95/soundwell/src/features/search"
	"github.com/contre95/soundwell/src/infra/database"
)

func main() {
	// Load configuration
	cfgManager, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Setup default logger with slog
	logger := logging.SetupLogger(cfgManager)
	slog.SetDefault(logger)

	// Create the database store
	store, err := database.NewSqliteStore(cfgManager.Get().Database.Path)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer store.Close()

	// Create the feature services
	playsService := plays.NewService(store)
	searchService := search.NewService(store, cfgManager)
	libraryService := library.NewService(store)

	// Create and start the HTTP server
	server := hosting.NewServer(cfgManager, playsService, searchService, libraryService)
	go func() {
		if err := server.Start(); err != nil {
			slog.Error("server stopped", "error", err)
		}
	}()
	slog.Info("Server started. Press Ctrl+C to shut down.", "port", cfgManager.Get().Server.Port)

	// Wait for a shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	slog.Info("Shutting down server...")

	if err := server.Shutdown(); err != nil {
		log.Fatalf("failed to shutdown server: %v", err)
	}
	slog.Info("Server gracefully shut down.")
}
