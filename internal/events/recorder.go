package events

import (
	"context"

	"go.uber.org/zap"
)

// Recorder persists consumed events.
type Recorder interface {
	RecordCreated(ctx context.Context, event *RedirectCreated) error
	RecordAccessed(ctx context.Context, event *RedirectAccessed) error
}

// LogRecorder writes events to a zap logger.
type LogRecorder struct {
	logger *zap.Logger
}

// NewLogRecorder creates a recorder that logs every event at info level.
func NewLogRecorder(logger *zap.Logger) *LogRecorder {
	return &LogRecorder{logger: logger}
}

func (r *LogRecorder) RecordCreated(_ context.Context, event *RedirectCreated) error {
	r.logger.Info("redirect created",
		zap.String("code", event.Code),
		zap.String("url", event.URL),
		zap.Int64("createdAt", event.CreatedAt),
		zap.String("contentType", event.ContentType),
		zap.String("clientIp", event.ClientIP),
	)

	return nil
}

func (r *LogRecorder) RecordAccessed(_ context.Context, event *RedirectAccessed) error {
	r.logger.Info("redirect accessed",
		zap.String("code", event.Code),
		zap.Time("accessedAt", event.AccessedAt),
		zap.String("clientIp", event.ClientIP),
		zap.String("referrer", event.Referrer),
	)

	return nil
}

var _ Recorder = (*LogRecorder)(nil)
