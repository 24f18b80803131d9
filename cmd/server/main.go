package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/platformbuilds/mirador-relay/internal/api"
	"github.com/platformbuilds/mirador-relay/internal/config"
	"github.com/platformbuilds/mirador-relay/internal/services"
	"github.com/platformbuilds/mirador-relay/pkg/logger"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	// Load configuration; a missing DISCORD_WEBHOOK is fatal before binding
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)
	logger.Info("Starting mirador-relay", "version", api.Version, "environment", cfg.Environment)

	// Discord delivery client, shared read-only across request handlers
	discord := services.NewDiscordService(cfg.Discord, logger)

	// Initialize API server
	apiServer := api.NewServer(cfg, logger, discord)

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		logger.Info("Shutdown signal received")
		cancel()
	}()

	// Start server
	if err := apiServer.Start(ctx); err != nil {
		logger.Fatal("Server failed to start", "error", err)
	}

	logger.Info("mirador-relay shutdown complete")
}
