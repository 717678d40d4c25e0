package serializer_test

import (
	"testing"

	"github.com/serroba/hex-shortener/internal/serializer"
	"github.com/stretchr/testify/assert"
)

func TestRegistry_ForContentType(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		want        string
	}{
		{name: "json", contentType: "application/json", want: serializer.ContentTypeJSON},
		{name: "json with charset", contentType: "application/json; charset=utf-8", want: serializer.ContentTypeJSON},
		{name: "msgpack", contentType: "application/x-msgpack", want: serializer.ContentTypeMsgPack},
		{name: "msgpack alias", contentType: "application/msgpack", want: serializer.ContentTypeMsgPack},
		{name: "media type is case insensitive", contentType: "Application/X-MsgPack", want: serializer.ContentTypeMsgPack},
		{name: "cbor", contentType: "application/cbor", want: serializer.ContentTypeCBOR},
		{name: "unknown falls back to json", contentType: "text/plain", want: serializer.ContentTypeJSON},
		{name: "empty falls back to json", contentType: "", want: serializer.ContentTypeJSON},
		{name: "garbage falls back to json", contentType: ";;;", want: serializer.ContentTypeJSON},
	}

	r := serializer.NewRegistry()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ForContentType(tt.contentType).ContentType())
		})
	}
}

func TestRegistry_Register(t *testing.T) {
	r := serializer.NewRegistry()
	r.Register("application/vnd.redirect+json", serializer.JSON{})

	assert.Equal(t, serializer.ContentTypeJSON, r.ForContentType("application/vnd.redirect+json").ContentType())
}
