// Package serializer provides wire-format adapters for shortener.Serializer.
package serializer

import (
	"errors"

	"github.com/serroba/hex-shortener/internal/shortener"
)

// ErrMissingURL is returned by Decode when the payload has no url field.
var ErrMissingURL = errors.New("missing field url")

// wireRedirect is the shape shared by every format. URL is a pointer so an
// absent field can be told apart from an empty one.
type wireRedirect struct {
	CreatedAt int64   `cbor:"created_at" json:"created_at" msgpack:"created_at"`
	Code      string  `cbor:"code"       json:"code"       msgpack:"code"`
	URL       *string `cbor:"url"        json:"url"        msgpack:"url"`
}

func toWire(r *shortener.Redirect) wireRedirect {
	url := r.URL

	return wireRedirect{
		CreatedAt: r.CreatedAt,
		Code:      r.Code,
		URL:       &url,
	}
}

func (w wireRedirect) redirect() (*shortener.Redirect, error) {
	if w.URL == nil {
		return nil, ErrMissingURL
	}

	return &shortener.Redirect{
		Code:      w.Code,
		URL:       *w.URL,
		CreatedAt: w.CreatedAt,
	}, nil
}
