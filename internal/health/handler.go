package health

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// PingTimeout bounds how long a storage ping may take.
const PingTimeout = 2 * time.Second

// Checker defines the interface for checking service health.
// Every storage adapter satisfies it.
type Checker interface {
	Ping(ctx context.Context) error
}

// Handler handles health check operations.
type Handler struct {
	backend string
	storage Checker
}

// NewHandler creates a health handler reporting on the named storage backend.
func NewHandler(backend string, storage Checker) *Handler {
	return &Handler{backend: backend, storage: storage}
}

// Response is the response for health check endpoint.
type Response struct {
	Body struct {
		Status  string `enum:"ok,degraded"         json:"status"`
		Backend string `example:"redis"            json:"backend"`
		Storage string `enum:"healthy,unhealthy" json:"storage"`
	}
}

// Check performs a health check of the application and its storage.
func (h *Handler) Check(ctx context.Context, _ *struct{}) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, PingTimeout)
	defer cancel()

	resp := &Response{}
	resp.Body.Status = "ok"
	resp.Body.Backend = h.backend

	if err := h.storage.Ping(ctx); err != nil {
		resp.Body.Storage = "unhealthy"
		resp.Body.Status = "degraded"
	} else {
		resp.Body.Storage = "healthy"
	}

	return resp, nil
}

// RegisterRoutes registers health check routes.
func RegisterRoutes(api huma.API, h *Handler) {
	huma.Get(api, "/health", h.Check)
}
