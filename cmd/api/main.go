package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"social-media-backend/config"
	"social-media-backend/internal/database"
	"social-media-backend/internal/server"
	"social-media-backend/pkg/logger"
)

func main() {
	logger.Init(os.Getenv("ENV"))

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to run migrations", err)
	}

	// Rate limiting and uploads degrade gracefully when their backends are
	// unreachable.
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("redis unavailable, rate limiting disabled", err)
		redisClient = nil
	}

	s3Config, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		logger.Warn("S3 unavailable, image uploads disabled", err)
		s3Config = nil
	}
	if s3Config != nil {
		// Uploaded images are served straight from the bucket.
		if err := s3Config.SetupBucketPolicy(context.Background()); err != nil {
			logger.Warn("failed to apply bucket policy, uploads may not be publicly readable", err)
		}
	}

	srv := server.New(cfg, db, redisClient, s3Config)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting server", map[string]interface{}{
			"addr": fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
		})
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal("server error", err)
		}
	case sig := <-quit:
		logger.Info("received signal", map[string]interface{}{"signal": sig.String()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server shutdown error", err)
	}
	logger.Info("server stopped", nil)
}
