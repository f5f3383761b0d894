package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blogworks/post-service/config"
	_ "github.com/blogworks/post-service/docs"
	"github.com/blogworks/post-service/internal/api"
	"github.com/blogworks/post-service/internal/storage"
	"github.com/blogworks/post-service/internal/utils"
	"github.com/gin-gonic/gin"
)

// @title Blog Post Service API
// @version 1.0
// @description CRUD API for blog posts backed by a relational table.
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.NewServiceLogger("post-service")
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	if !cfg.Dev {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize storage
	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	// Ensure the blogposts table exists
	if err := store.Initialize(); err != nil {
		log.Fatalf("Failed to initialize database tables: %v", err)
	}

	// Initialize API server
	server := api.NewServer(cfg.Server.Port, store)

	// Start the API server
	go func() {
		logger.LogInfo("Starting API server on port %d (%s backend)", cfg.Server.Port, cfg.Database.Backend)
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start API server: %v", err)
		}
	}()

	// Wait for shutdown
	waitForShutdown(server, logger)
}

func newStore(cfg *config.Config) (storage.Store, error) {
	if cfg.Database.Backend == config.BackendSQLite {
		return storage.NewSQLiteStore(cfg.Database.SQLitePath)
	}
	return storage.NewPostgresStore(cfg.ConnectionString())
}

func waitForShutdown(server *api.Server, logger *utils.ServiceLogger) {
	// Handle system signals for shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	logger.LogInfo("Shutting down...")

	// Graceful server shutdown
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.LogError("Error shutting down server: %v", err)
	}
	logger.LogInfo("Server shut down gracefully")
}
