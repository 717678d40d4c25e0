package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/samber/do"
	"github.com/serroba/hex-shortener/internal/container"
	"github.com/serroba/hex-shortener/internal/events"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	opts := &container.Options{
		RedisURL:  getEnv("SERVICE_REDIS_URL", "redis://localhost:6379/0"),
		LogFormat: getEnv("SERVICE_LOG_FORMAT", "console"),
	}

	injector := do.New()
	do.ProvideValue(injector, opts)
	container.LoggerPackage(injector)
	container.RedisPackage(injector)
	container.RecorderPackage(injector)

	logger := do.MustInvoke[*zap.Logger](injector)

	runner, err := do.Invoke[*events.Runner](injector)
	if err != nil {
		logger.Fatal("failed to create event runner", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())

	if err := runner.Start(ctx); err != nil {
		logger.Fatal("failed to start event runner", zap.Error(err))
	}

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down")
	cancel()

	if err := injector.Shutdown(); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}

	logger.Info("shutdown complete")
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return defaultValue
}
