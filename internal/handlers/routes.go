package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// MaxBodyBytes caps the size of an encoded redirect on create.
const MaxBodyBytes = 32 * 1024

// RegisterRoutes registers the redirect routes.
func RegisterRoutes(api huma.API, handler *RedirectHandler) {
	// POST / - Store a redirect, body encoded as JSON, MessagePack or CBOR
	huma.Register(api, huma.Operation{
		OperationID:   "create-redirect",
		Method:        http.MethodPost,
		Path:          "/",
		Summary:       "Create redirect",
		Description:   "Stores the URL under a freshly generated code and returns the redirect encoded like the request.",
		Tags:          []string{"Redirects"},
		DefaultStatus: http.StatusCreated,
		MaxBodyBytes:  MaxBodyBytes,
	}, handler.CreateRedirect)

	// GET /{code} - Redirect to the stored URL
	huma.Register(api, huma.Operation{
		OperationID: "redirect",
		Method:      http.MethodGet,
		Path:        "/{code}",
		Summary:     "Redirect to stored URL",
		Description: "Redirects to the URL stored under the short code.",
		Tags:        []string{"Redirects"},
	}, handler.Redirect)
}
