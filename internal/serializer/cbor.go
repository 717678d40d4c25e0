package serializer

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/serroba/hex-shortener/internal/shortener"
)

const ContentTypeCBOR = "application/cbor"

// CBOR encodes redirects as CBOR maps keyed by field name.
type CBOR struct{}

func (CBOR) Encode(redirect *shortener.Redirect) ([]byte, error) {
	data, err := cbor.Marshal(toWire(redirect))
	if err != nil {
		return nil, fmt.Errorf("cbor encode: %w", err)
	}

	return data, nil
}

func (CBOR) Decode(data []byte) (*shortener.Redirect, error) {
	var w wireRedirect
	if err := cbor.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("cbor decode: %w", err)
	}

	return w.redirect()
}

func (CBOR) ContentType() string {
	return ContentTypeCBOR
}

var _ shortener.Serializer = CBOR{}
