package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/cravecurve/api"
	"github.com/example/cravecurve/pkg/config"
	"github.com/example/cravecurve/pkg/media"
	"github.com/example/cravecurve/pkg/repository"
	"github.com/example/cravecurve/pkg/service"
	"go.uber.org/zap"
)

func main() {
	// Load config
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Setup logger
	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to create logger: %v", err))
	}
	defer logger.Sync()

	logger.Info("Starting server",
		zap.String("address", cfg.Server.Address()),
		zap.String("database", cfg.MongoDB.Database))

	// Connect to MongoDB, fail fast if unreachable
	mongo, err := repository.NewMongoRepository(&cfg.MongoDB)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	ctx := context.Background()
	if err := mongo.Ping(ctx); err != nil {
		logger.Fatal("MongoDB ping failed", zap.Error(err))
	}
	logger.Info("MongoDB connected successfully")

	// Redis cache is optional; run without it when not configured
	var cache service.ProductCache
	if cfg.Redis.Addr != "" {
		redisRepo := repository.NewRedisRepository(&cfg.Redis)
		if err := redisRepo.Ping(ctx); err != nil {
			logger.Warn("Redis connection failed, continuing without cache", zap.Error(err))
		} else {
			logger.Info("Redis connected successfully")
			cache = redisRepo
			defer redisRepo.Close()
		}
	}

	// Media ingestion
	uploader, err := media.NewCloudinaryUploader(&cfg.Cloudinary)
	if err != nil {
		logger.Fatal("Failed to configure Cloudinary", zap.Error(err))
	}
	ingestor := media.NewService(uploader, logger)

	// Services
	catalog := service.NewCatalogService(mongo.Products(), ingestor, cache, logger)
	cart := service.NewCartService(mongo.Cart(), mongo.Products(), logger)
	orders := service.NewOrderService(mongo.Orders(), logger)
	comments := service.NewCommentService(mongo.Comments(), logger)

	server := api.NewServer(cfg, logger, catalog, cart, orders, comments)
	httpServer := &http.Server{
		Addr:    cfg.Server.Address(),
		Handler: server.Router(),
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server started", zap.String("address", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("Received shutdown signal")
	case err := <-serverErr:
		logger.Fatal("Server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
	if err := mongo.Close(shutdownCtx); err != nil {
		logger.Error("MongoDB disconnect failed", zap.Error(err))
	}

	logger.Info("Server stopped")
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
