package messaging

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.uber.org/zap"
)

// Handler processes one decoded event. A returned error nacks the message.
type Handler[T any] func(ctx context.Context, event *T) error

// NewHandlerFunc adapts a typed handler to a watermill router handler. The
// payload is decoded with the codec named in its metadata. A payload that
// cannot be decoded is logged and acked, since redelivery cannot fix it.
func NewHandlerFunc[T any](handler Handler[T], logger *zap.Logger) message.NoPublishHandlerFunc {
	return func(msg *message.Message) error {
		contentType := msg.Metadata.Get(MetadataContentType)

		var event T
		if err := CodecFor(contentType).Unmarshal(msg.Payload, &event); err != nil {
			logger.Error("dropping undecodable event",
				zap.String("message_uuid", msg.UUID),
				zap.String("content_type", contentType),
				zap.Error(err),
			)

			return nil
		}

		return handler(msg.Context(), &event)
	}
}
