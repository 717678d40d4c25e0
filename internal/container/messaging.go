package container

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/samber/do"
	"github.com/serroba/hex-shortener/internal/events"
	"github.com/serroba/hex-shortener/internal/messaging"
	"go.uber.org/zap"
)

// EventsConsumerGroup is the Redis Streams consumer group event recorders join.
const EventsConsumerGroup = "hex-shortener-events"

// StreamPublisher is closed by the injector on shutdown.
type StreamPublisher struct {
	*redisstream.Publisher
}

func (p *StreamPublisher) Shutdown() error {
	return p.Close()
}

// EventsPackage provides the event publishers. With --events the events go
// to Redis Streams, otherwise they are dropped. Needs RedisPackage.
func EventsPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*StreamPublisher, error) {
		client, err := do.Invoke[*RedisClient](i)
		if err != nil {
			return nil, err
		}

		logger := do.MustInvoke[*zap.Logger](i)

		publisher, err := redisstream.NewPublisher(redisstream.PublisherConfig{
			Client:     client.Client,
			Marshaller: redisstream.DefaultMarshallerUnmarshaller{},
		}, messaging.NewZapLogger(logger))
		if err != nil {
			return nil, fmt.Errorf("create redis stream publisher: %w", err)
		}

		return &StreamPublisher{Publisher: publisher}, nil
	})

	do.Provide(injector, func(i *do.Injector) (events.Publishers, error) {
		opts := do.MustInvoke[*Options](i)
		if !opts.Events {
			return events.NopPublishers(), nil
		}

		publisher, err := do.Invoke[*StreamPublisher](i)
		if err != nil {
			return events.Publishers{}, err
		}

		return events.NewPublishers(publisher, messaging.MsgPackCodec{}), nil
	})
}

// RecorderPackage provides the runner that logs redirect events read from
// Redis Streams. Needs RedisPackage.
func RecorderPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*events.Runner, error) {
		client, err := do.Invoke[*RedisClient](i)
		if err != nil {
			return nil, err
		}

		logger := do.MustInvoke[*zap.Logger](i)

		subscriber, err := redisstream.NewSubscriber(redisstream.SubscriberConfig{
			Client:        client.Client,
			Unmarshaller:  redisstream.DefaultMarshallerUnmarshaller{},
			ConsumerGroup: EventsConsumerGroup,
		}, messaging.NewZapLogger(logger))
		if err != nil {
			return nil, fmt.Errorf("create redis stream subscriber: %w", err)
		}

		return events.NewRunner(subscriber, events.NewLogRecorder(logger), logger)
	})
}
