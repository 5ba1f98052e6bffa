package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Lah112/Hospital-Management-System-Final/internal/server"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/config"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/logger"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)

	// Initialize the API server
	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize server: %v", err)
	}

	// Start server in a goroutine
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down Hospital API...")
	if err := srv.Stop(); err != nil {
		logger.Errorf("Error during shutdown: %v", err)
	}
	logger.Info("Hospital API stopped")
}
