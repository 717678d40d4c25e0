// Package messaging holds the watermill plumbing shared by event producers
// and consumers: payload codecs, typed publish functions and typed handlers.
package messaging

import (
	"encoding/json"
	"mime"

	"github.com/vmihailenco/msgpack/v5"
)

// MetadataContentType is the message metadata key naming the payload codec.
const MetadataContentType = "content_type"

// Codec turns event payloads into message bytes and back.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	ContentType() string
}

// JSONCodec encodes payloads as JSON.
type JSONCodec struct{}

func (JSONCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (JSONCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (JSONCodec) ContentType() string                { return "application/json" }

// MsgPackCodec encodes payloads as MessagePack.
type MsgPackCodec struct{}

func (MsgPackCodec) Marshal(v any) ([]byte, error)      { return msgpack.Marshal(v) }
func (MsgPackCodec) Unmarshal(data []byte, v any) error { return msgpack.Unmarshal(data, v) }
func (MsgPackCodec) ContentType() string                { return "application/x-msgpack" }

// CodecFor returns the codec a message was published with. Messages without
// a recognised content type are read as JSON.
func CodecFor(contentType string) Codec {
	mediaType, _, _ := mime.ParseMediaType(contentType)

	switch mediaType {
	case "application/x-msgpack", "application/msgpack":
		return MsgPackCodec{}
	default:
		return JSONCodec{}
	}
}
