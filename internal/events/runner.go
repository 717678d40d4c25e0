package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/serroba/hex-shortener/internal/messaging"
	"go.uber.org/zap"
)

// Handler names as they appear in router logs.
const (
	handlerRecordCreated  = "record_redirect_created"
	handlerRecordAccessed = "record_redirect_accessed"
)

// Runner feeds both redirect topics from one subscriber into a Recorder.
type Runner struct {
	router     *message.Router
	subscriber message.Subscriber
	logger     *zap.Logger
}

// NewRunner registers a handler per topic on a new router.
func NewRunner(subscriber message.Subscriber, recorder Recorder, logger *zap.Logger) (*Runner, error) {
	router, err := messaging.NewRouter(logger)
	if err != nil {
		return nil, fmt.Errorf("create event router: %w", err)
	}

	router.AddNoPublisherHandler(handlerRecordCreated, TopicRedirectCreated, subscriber,
		messaging.NewHandlerFunc(recorder.RecordCreated, logger))
	router.AddNoPublisherHandler(handlerRecordAccessed, TopicRedirectAccessed, subscriber,
		messaging.NewHandlerFunc(recorder.RecordAccessed, logger))

	return &Runner{router: router, subscriber: subscriber, logger: logger}, nil
}

// Start runs the router in the background and returns once both topics are
// subscribed, so no event published afterwards is missed.
func (r *Runner) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- r.router.Run(ctx)
	}()

	select {
	case <-r.router.Running():
		r.logger.Info("event runner started",
			zap.Strings("topics", []string{TopicRedirectCreated, TopicRedirectAccessed}),
		)

		return nil
	case err := <-errCh:
		if err == nil {
			err = errors.New("router stopped before running")
		}

		return fmt.Errorf("run event router: %w", err)
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown waits for in-flight events, then closes the subscriber.
func (r *Runner) Shutdown() error {
	r.logger.Info("shutting down event runner")

	err := r.router.Close()

	if closeErr := r.subscriber.Close(); err == nil {
		err = closeErr
	}

	return err
}
