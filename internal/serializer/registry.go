package serializer

import (
	"mime"
	"strings"

	"github.com/serroba/hex-shortener/internal/shortener"
)

// Registry resolves a serializer from a request content type.
type Registry struct {
	byType   map[string]shortener.Serializer
	fallback shortener.Serializer
}

// NewRegistry returns a registry with JSON, MessagePack and CBOR registered.
// Unknown content types resolve to JSON.
func NewRegistry() *Registry {
	r := &Registry{
		byType:   make(map[string]shortener.Serializer),
		fallback: JSON{},
	}

	r.Register(ContentTypeJSON, JSON{})
	r.Register(ContentTypeMsgPack, MsgPack{})
	r.Register(contentTypeMsgPackAlt, MsgPack{})
	r.Register(ContentTypeCBOR, CBOR{})

	return r
}

// Register binds a media type to a serializer, replacing any previous binding.
func (r *Registry) Register(mediaType string, s shortener.Serializer) {
	r.byType[strings.ToLower(mediaType)] = s
}

// ForContentType picks the serializer for a Content-Type header value.
// Parameters such as charset are ignored.
func (r *Registry) ForContentType(contentType string) shortener.Serializer {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return r.fallback
	}

	if s, ok := r.byType[mediaType]; ok {
		return s
	}

	return r.fallback
}
