package messaging

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Publish sends one typed event.
type Publish[T any] func(event *T) error

// NewPublishFunc binds a topic and codec to publisher. Every message carries
// the codec's content type in MetadataContentType.
func NewPublishFunc[T any](publisher message.Publisher, topic string, codec Codec) Publish[T] {
	return func(event *T) error {
		payload, err := codec.Marshal(event)
		if err != nil {
			return err
		}

		msg := message.NewMessage(watermill.NewUUID(), payload)
		msg.Metadata.Set(MetadataContentType, codec.ContentType())

		return publisher.Publish(topic, msg)
	}
}

// NopPublish drops every event.
func NopPublish[T any]() Publish[T] {
	return func(_ *T) error { return nil }
}
