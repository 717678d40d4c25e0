package serializer

import (
	"bytes"
	"fmt"

	"github.com/serroba/hex-shortener/internal/shortener"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	ContentTypeMsgPack    = "application/x-msgpack"
	contentTypeMsgPackAlt = "application/msgpack"
)

// MsgPack encodes redirects as MessagePack maps keyed by field name.
type MsgPack struct{}

func (MsgPack) Encode(redirect *shortener.Redirect) ([]byte, error) {
	var buf bytes.Buffer

	enc := msgpack.NewEncoder(&buf)
	enc.UseCompactInts(true)

	if err := enc.Encode(toWire(redirect)); err != nil {
		return nil, fmt.Errorf("msgpack encode: %w", err)
	}

	return buf.Bytes(), nil
}

func (MsgPack) Decode(data []byte) (*shortener.Redirect, error) {
	var w wireRedirect
	if err := msgpack.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("msgpack decode: %w", err)
	}

	return w.redirect()
}

func (MsgPack) ContentType() string {
	return ContentTypeMsgPack
}

var _ shortener.Serializer = MsgPack{}
