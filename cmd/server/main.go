// Package main provides the API server entry point for the creator
// tipping service.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/creator-tips/internal/api"
	"github.com/creator-tips/internal/auth"
	"github.com/creator-tips/internal/config"
	"github.com/creator-tips/internal/frame"
	"github.com/creator-tips/internal/logging"
	"github.com/creator-tips/internal/service"
	"github.com/creator-tips/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize structured logging
	logLevel := logging.ParseLogLevel(cfg.Logging.Level)
	logFormat := logging.ParseLogFormat(cfg.Logging.Format)
	logging.InitGlobalLogger(logLevel, logFormat)

	logger := logging.GetGlobalLogger()
	logger.WithFields(map[string]interface{}{
		"level":  cfg.Logging.Level,
		"format": cfg.Logging.Format,
	}).Info("Structured logging initialized")

	// Connect to Postgres
	postgres, err := storage.NewPostgresDB(&cfg.Database.Postgres)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to Postgres")
	}
	defer postgres.Close()

	// Connect to Redis. The leaderboard cache is optional; the service
	// runs uncached when Redis is unreachable.
	var creatorCache *storage.CreatorCache
	redis, err := storage.NewRedisCache(&cfg.Database.Redis)
	if err != nil {
		logger.WithError(err).Warn("Redis unavailable, running without leaderboard cache")
	} else {
		defer redis.Close()
		creatorCache = storage.NewCreatorCache(redis, cfg.Cache.TopCreatorsTTL)
	}

	logger.Info("Database connections established")

	// Initialize repositories
	tipRepo := storage.NewTipRepository(postgres)
	creatorRepo := storage.NewCreatorRepository(postgres)
	notificationRepo := storage.NewNotificationRepository(postgres)
	userRepo := storage.NewUserRepository(postgres)

	// Initialize services
	var tipCache service.CreatorCacheInvalidator
	var leaderboardCache service.CreatorLeaderboardCache
	if creatorCache != nil {
		tipCache = creatorCache
		leaderboardCache = creatorCache
	}

	tipService := service.NewTipService(tipRepo, tipCache, logger)
	creatorService := service.NewCreatorService(creatorRepo, tipRepo, leaderboardCache, logger)
	notificationService := service.NewNotificationService(notificationRepo, logger)

	verifier := auth.NewVerifier(cfg.Auth.RequireSignature)
	frames := frame.NewGenerator(&cfg.Frame)

	serverConfig := &api.ServerConfig{
		Host:            cfg.Server.Host,
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		IdleTimeout:     cfg.Server.IdleTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		RateLimitRPS:    cfg.RateLimit.RequestsPerSecond,
		RateLimitBurst:  cfg.RateLimit.Burst,
	}

	server := api.NewServer(serverConfig, tipService, creatorService,
		notificationService, userRepo, verifier, frames, logger)

	// Start the server in a goroutine so we can listen for shutdown
	// signals
	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		logger.WithError(err).Fatal("Server failed")
	case sig := <-sigChan:
		logger.WithField("signal", sig.String()).Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Graceful shutdown failed")
	}

	logger.Info("Server stopped")
}
