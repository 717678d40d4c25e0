package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/hex-shortener/internal/events"
	"github.com/serroba/hex-shortener/internal/serializer"
	"github.com/serroba/hex-shortener/internal/shortener"
	"go.uber.org/zap"
)

// RedirectHandler translates HTTP requests into RedirectService calls.
// It holds no mutable state and is shared by all requests.
type RedirectHandler struct {
	service     shortener.RedirectService
	serializers *serializer.Registry
	publishers  events.Publishers
	logger      *zap.Logger
}

// NewRedirectHandler creates a new redirect handler.
func NewRedirectHandler(
	service shortener.RedirectService,
	serializers *serializer.Registry,
	publishers events.Publishers,
	logger *zap.Logger,
) *RedirectHandler {
	return &RedirectHandler{
		service:     service,
		serializers: serializers,
		publishers:  publishers,
		logger:      logger,
	}
}

// ErrorFor maps an error onto the response for its kind. The body carries
// only the kind's message; the cause is for logs.
func ErrorFor(err error) huma.StatusError {
	kind := shortener.KindOf(err)
	msg := kind.Err().Error()

	switch kind {
	case shortener.KindNotFound:
		return huma.Error404NotFound(msg)
	case shortener.KindInvalid:
		return huma.Error400BadRequest(msg)
	default:
		return huma.Error500InternalServerError(msg)
	}
}

func (h *RedirectHandler) CreateRedirect(ctx context.Context, req *CreateRedirectRequest) (*CreateRedirectResponse, error) {
	codec := h.serializers.ForContentType(req.ContentType)

	input, err := codec.Decode(req.RawBody)
	if err != nil {
		h.logger.Error("failed to decode redirect",
			zap.String("content_type", req.ContentType),
			zap.Error(err),
		)

		return nil, ErrorFor(shortener.ServerError("decode redirect", err))
	}

	redirect, err := h.service.Store(ctx, input)
	if err != nil {
		h.logger.Error("failed to store redirect", zap.String("url", input.URL), zap.Error(err))

		return nil, ErrorFor(err)
	}

	body, err := codec.Encode(redirect)
	if err != nil {
		h.logger.Error("failed to encode redirect", zap.String("code", redirect.Code), zap.Error(err))

		return nil, ErrorFor(shortener.ServerError("encode redirect", err))
	}

	meta := RequestMetaFromContext(ctx)
	event := &events.RedirectCreated{
		Code:        redirect.Code,
		URL:         redirect.URL,
		CreatedAt:   redirect.CreatedAt,
		ContentType: codec.ContentType(),
		ClientIP:    meta.ClientIP,
		UserAgent:   meta.UserAgent,
	}

	if err := h.publishers.Created(event); err != nil {
		h.logger.Error("failed to publish created event",
			zap.String("code", event.Code),
			zap.Error(err),
		)
	}

	return &CreateRedirectResponse{
		ContentType: codec.ContentType(),
		Body:        body,
	}, nil
}

func (h *RedirectHandler) Redirect(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error) {
	redirect, err := h.service.Find(ctx, req.Code)
	if err != nil {
		h.logger.Warn("failed to resolve code", zap.String("code", req.Code), zap.Error(err))

		return nil, ErrorFor(err)
	}

	meta := RequestMetaFromContext(ctx)
	event := &events.RedirectAccessed{
		Code:       redirect.Code,
		AccessedAt: time.Now(),
		ClientIP:   meta.ClientIP,
		UserAgent:  meta.UserAgent,
		Referrer:   meta.Referrer,
	}

	if err = h.publishers.Accessed(event); err != nil {
		h.logger.Error("failed to publish access event",
			zap.String("code", event.Code),
			zap.Error(err),
		)
	}

	h.logger.Info("redirect", zap.String("code", redirect.Code), zap.String("url", redirect.URL))

	return &RedirectResponse{
		Status:   http.StatusMovedPermanently,
		Location: redirect.URL,
	}, nil
}
