package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/samber/do"
	"github.com/serroba/hex-shortener/internal/container"
	"github.com/serroba/hex-shortener/internal/shortener"
	"go.uber.org/zap"
)

func registerPackages(injector *do.Injector, options *container.Options) {
	do.ProvideValue(injector, options)
	container.LoggerPackage(injector)
	container.ClientsPackage(injector)
	container.StoragePackage(injector)
	container.MetricsPackage(injector)
	container.ServicePackage(injector)
	container.SerializerPackage(injector)
	container.EventsPackage(injector)
	container.HTTPPackage(injector)
}

func main() {
	// A missing .env is fine; the environment and flags still apply.
	_ = godotenv.Load()

	cli := humacli.New(func(hooks humacli.Hooks, options *container.Options) {
		injector := do.New()
		registerPackages(injector, options)

		logger := do.MustInvoke[*zap.Logger](injector)

		var server *http.Server

		hooks.OnStart(func() {
			router := do.MustInvoke[*chi.Mux](injector)

			// Invoke API to trigger route registration
			if _, err := do.Invoke[huma.API](injector); err != nil {
				logger.Fatal("failed to build api", zap.String("storage", options.Storage), zap.Error(err))
			}

			if options.SelfTest {
				service := do.MustInvoke[shortener.RedirectService](injector)

				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				err := container.SelfTest(ctx, service, logger)

				cancel()

				if err != nil {
					logger.Fatal("self-test failed", zap.Error(err))
				}
			}

			server = &http.Server{
				Addr:              fmt.Sprintf(":%d", options.Port),
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			logger.Info("server starting",
				zap.Int("port", options.Port),
				zap.String("storage", options.Storage),
				zap.Bool("events", options.Events),
			)

			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Fatal("server failed", zap.Error(err))
			}
		})

		hooks.OnStop(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			shutdown(ctx, server, injector, logger)
		})
	})

	cli.Run()
}

// shutdown drains the server, closes injected services and flushes the logger last.
func shutdown(ctx context.Context, server *http.Server, injector *do.Injector, logger *zap.Logger) {
	logger.Info("shutting down")

	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server shutdown error", zap.Error(err))
		}
	}

	if err := injector.Shutdown(); err != nil {
		logger.Error("service shutdown error", zap.Error(err))
	}

	logger.Info("shutdown complete")

	_ = logger.Sync()
}
