package messaging

import (
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"go.uber.org/zap"
)

// NewRouter creates a watermill router logging through logger. A panicking
// handler nacks its message instead of killing the process.
func NewRouter(logger *zap.Logger) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, NewZapLogger(logger))
	if err != nil {
		return nil, err
	}

	router.AddMiddleware(middleware.Recoverer)

	return router, nil
}
