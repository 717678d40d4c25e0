package container

import (
	"context"
	"fmt"

	"github.com/serroba/hex-shortener/internal/shortener"
	"go.uber.org/zap"
)

// SelfTestURL is the destination stored by the startup self-test.
const SelfTestURL = "https://www.example.com"

// SelfTest stores a redirect and resolves it back, proving the selected
// storage works end to end.
func SelfTest(ctx context.Context, service shortener.RedirectService, logger *zap.Logger) error {
	created, err := service.Store(ctx, &shortener.Redirect{URL: SelfTestURL})
	if err != nil {
		return fmt.Errorf("self-test store: %w", err)
	}

	found, err := service.Find(ctx, created.Code)
	if err != nil {
		return fmt.Errorf("self-test find %s: %w", created.Code, err)
	}

	if *found != *created {
		return fmt.Errorf("self-test: stored %+v, found %+v", *created, *found)
	}

	logger.Info("self-test passed",
		zap.String("code", found.Code),
		zap.String("url", found.URL),
		zap.Int64("created_at", found.CreatedAt),
	)

	return nil
}
