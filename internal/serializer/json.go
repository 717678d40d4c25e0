package serializer

import (
	"encoding/json"
	"fmt"

	"github.com/serroba/hex-shortener/internal/shortener"
)

const ContentTypeJSON = "application/json"

// JSON encodes redirects as JSON objects.
type JSON struct{}

func (JSON) Encode(redirect *shortener.Redirect) ([]byte, error) {
	data, err := json.Marshal(toWire(redirect))
	if err != nil {
		return nil, fmt.Errorf("json encode: %w", err)
	}

	return data, nil
}

func (JSON) Decode(data []byte) (*shortener.Redirect, error) {
	var w wireRedirect
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("json decode: %w", err)
	}

	return w.redirect()
}

func (JSON) ContentType() string {
	return ContentTypeJSON
}

var _ shortener.Serializer = JSON{}
