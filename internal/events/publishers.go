package events

import (
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/serroba/hex-shortener/internal/messaging"
)

// Publishers bundles the typed publish functions the HTTP layer emits through.
type Publishers struct {
	Created  messaging.Publish[RedirectCreated]
	Accessed messaging.Publish[RedirectAccessed]
}

// NewPublishers binds both topics to publisher.
func NewPublishers(publisher message.Publisher, codec messaging.Codec) Publishers {
	return Publishers{
		Created:  messaging.NewPublishFunc[RedirectCreated](publisher, TopicRedirectCreated, codec),
		Accessed: messaging.NewPublishFunc[RedirectAccessed](publisher, TopicRedirectAccessed, codec),
	}
}

// NopPublishers drops every event. Used when events are disabled.
func NopPublishers() Publishers {
	return Publishers{
		Created:  messaging.NopPublish[RedirectCreated](),
		Accessed: messaging.NopPublish[RedirectAccessed](),
	}
}
