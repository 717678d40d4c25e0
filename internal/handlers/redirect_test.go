package handlers_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/serroba/hex-shortener/internal/events"
	"github.com/serroba/hex-shortener/internal/handlers"
	"github.com/serroba/hex-shortener/internal/messaging"
	"github.com/serroba/hex-shortener/internal/serializer"
	"github.com/serroba/hex-shortener/internal/shortener"
	"github.com/serroba/hex-shortener/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// errorPublish returns a publish function that always fails.
func errorPublish[T any](err error) messaging.Publish[T] {
	return func(_ *T) error { return err }
}

type recordingPublishers struct {
	mu       sync.Mutex
	created  []*events.RedirectCreated
	accessed []*events.RedirectAccessed
}

func (r *recordingPublishers) publishers() events.Publishers {
	return events.Publishers{
		Created: func(e *events.RedirectCreated) error {
			r.mu.Lock()
			defer r.mu.Unlock()

			r.created = append(r.created, e)

			return nil
		},
		Accessed: func(e *events.RedirectAccessed) error {
			r.mu.Lock()
			defer r.mu.Unlock()

			r.accessed = append(r.accessed, e)

			return nil
		},
	}
}

func newTestHandler(service shortener.RedirectService) *handlers.RedirectHandler {
	return handlers.NewRedirectHandler(service, serializer.NewRegistry(), events.NopPublishers(), zap.NewNop())
}

func newTestAPI(t *testing.T, handler *handlers.RedirectHandler) humatest.TestAPI {
	t.Helper()

	_, api := humatest.New(t)
	handlers.RegisterRoutes(api, handler)

	return api
}

func statusOf(t *testing.T, err error) int {
	t.Helper()

	var statusErr huma.StatusError

	require.ErrorAs(t, err, &statusErr)

	return statusErr.GetStatus()
}

func TestErrorFor(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{name: "not found", err: shortener.ErrNotFound, status: http.StatusNotFound, msg: "redirect not found"},
		{name: "invalid", err: shortener.ErrInvalid, status: http.StatusBadRequest, msg: "redirect invalid"},
		{
			name:   "server",
			err:    shortener.ServerError("redis find", errMock),
			status: http.StatusInternalServerError,
			msg:    "a server error occurred",
		},
		{name: "unclassified", err: errMock, status: http.StatusInternalServerError, msg: "a server error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := handlers.ErrorFor(tt.err)

			assert.Equal(t, tt.status, err.GetStatus())
			assert.Contains(t, err.Error(), tt.msg)
			assert.NotContains(t, err.Error(), errMock.Error())
		})
	}
}

func TestCreateRedirect(t *testing.T) {
	t.Run("stores and encodes with the request serializer", func(t *testing.T) {
		svc := &mockService{}
		handler := newTestHandler(svc)

		body, err := serializer.MsgPack{}.Encode(&shortener.Redirect{URL: testURL})
		require.NoError(t, err)

		resp, err := handler.CreateRedirect(context.Background(), &handlers.CreateRedirectRequest{
			ContentType: serializer.ContentTypeMsgPack,
			RawBody:     body,
		})

		require.NoError(t, err)
		assert.Equal(t, serializer.ContentTypeMsgPack, resp.ContentType)

		got, err := serializer.MsgPack{}.Decode(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, &shortener.Redirect{Code: "0123456789abcdef", URL: testURL, CreatedAt: 1700000000}, got)
		assert.Equal(t, testURL, svc.stored.URL)
	})

	t.Run("unknown content type falls back to json", func(t *testing.T) {
		handler := newTestHandler(&mockService{})

		resp, err := handler.CreateRedirect(context.Background(), &handlers.CreateRedirectRequest{
			ContentType: "text/plain",
			RawBody:     []byte(`{"url":"https://example.com"}`),
		})

		require.NoError(t, err)
		assert.Equal(t, serializer.ContentTypeJSON, resp.ContentType)
		assert.JSONEq(t, `{"created_at":1700000000,"code":"0123456789abcdef","url":"https://example.com"}`, string(resp.Body))
	})

	t.Run("decode failure is a server error", func(t *testing.T) {
		svc := &mockService{}
		handler := newTestHandler(svc)

		resp, err := handler.CreateRedirect(context.Background(), &handlers.CreateRedirectRequest{
			ContentType: serializer.ContentTypeJSON,
			RawBody:     []byte(`{"code":"abc"}`),
		})

		assert.Nil(t, resp)
		assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))
		assert.Nil(t, svc.stored)
	})

	t.Run("store failure maps by kind", func(t *testing.T) {
		tests := []struct {
			name   string
			err    error
			status int
		}{
			{name: "server", err: shortener.ServerError("store", errMock), status: http.StatusInternalServerError},
			{name: "invalid", err: shortener.ErrInvalid, status: http.StatusBadRequest},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				handler := newTestHandler(&mockService{storeErr: tt.err})

				resp, err := handler.CreateRedirect(context.Background(), &handlers.CreateRedirectRequest{
					ContentType: serializer.ContentTypeJSON,
					RawBody:     []byte(`{"url":"https://example.com"}`),
				})

				assert.Nil(t, resp)
				assert.Equal(t, tt.status, statusOf(t, err))
			})
		}
	})

	t.Run("publishes created event with request metadata", func(t *testing.T) {
		rec := &recordingPublishers{}
		handler := handlers.NewRedirectHandler(&mockService{}, serializer.NewRegistry(), rec.publishers(), zap.NewNop())

		ctx := handlers.ContextWithRequestMeta(context.Background(), handlers.RequestMeta{
			ClientIP:  "192.168.1.1",
			UserAgent: "test-agent",
		})

		_, err := handler.CreateRedirect(ctx, &handlers.CreateRedirectRequest{
			ContentType: serializer.ContentTypeCBOR,
			RawBody:     mustEncode(t, serializer.CBOR{}, &shortener.Redirect{URL: testURL}),
		})
		require.NoError(t, err)

		require.Len(t, rec.created, 1)
		assert.Equal(t, "0123456789abcdef", rec.created[0].Code)
		assert.Equal(t, serializer.ContentTypeCBOR, rec.created[0].ContentType)
		assert.Equal(t, "192.168.1.1", rec.created[0].ClientIP)
		assert.Equal(t, "test-agent", rec.created[0].UserAgent)
	})

	t.Run("publish failure does not fail the request", func(t *testing.T) {
		publishers := events.Publishers{
			Created:  errorPublish[events.RedirectCreated](errors.New("publish error")),
			Accessed: errorPublish[events.RedirectAccessed](errors.New("publish error")),
		}
		handler := handlers.NewRedirectHandler(&mockService{}, serializer.NewRegistry(), publishers, zap.NewNop())

		resp, err := handler.CreateRedirect(context.Background(), &handlers.CreateRedirectRequest{
			RawBody: []byte(`{"url":"https://example.com"}`),
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Body)
	})
}

func TestRedirect(t *testing.T) {
	t.Run("redirects permanently to stored url", func(t *testing.T) {
		handler := newTestHandler(&mockService{})

		resp, err := handler.Redirect(context.Background(), &handlers.RedirectRequest{Code: "abc123"})

		require.NoError(t, err)
		assert.Equal(t, http.StatusMovedPermanently, resp.Status)
		assert.Equal(t, testURL, resp.Location)
	})

	t.Run("maps lookup errors by kind", func(t *testing.T) {
		tests := []struct {
			name   string
			err    error
			status int
		}{
			{name: "not found", err: shortener.ErrNotFound, status: http.StatusNotFound},
			{name: "invalid", err: shortener.ErrInvalid, status: http.StatusBadRequest},
			{name: "server", err: shortener.ServerError("redis find", errMock), status: http.StatusInternalServerError},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				handler := newTestHandler(&mockService{findErr: tt.err})

				resp, err := handler.Redirect(context.Background(), &handlers.RedirectRequest{Code: "abc123"})

				assert.Nil(t, resp)
				assert.Equal(t, tt.status, statusOf(t, err))
			})
		}
	})

	t.Run("publishes accessed event", func(t *testing.T) {
		rec := &recordingPublishers{}
		handler := handlers.NewRedirectHandler(&mockService{}, serializer.NewRegistry(), rec.publishers(), zap.NewNop())

		ctx := handlers.ContextWithRequestMeta(context.Background(), handlers.RequestMeta{
			Referrer: "https://referrer.com",
		})

		_, err := handler.Redirect(ctx, &handlers.RedirectRequest{Code: "abc123"})
		require.NoError(t, err)

		require.Len(t, rec.accessed, 1)
		assert.Equal(t, "abc123", rec.accessed[0].Code)
		assert.Equal(t, "https://referrer.com", rec.accessed[0].Referrer)
		assert.False(t, rec.accessed[0].AccessedAt.IsZero())
	})
}

func TestRoutes(t *testing.T) {
	newAPI := func(t *testing.T) humatest.TestAPI {
		t.Helper()

		service := shortener.NewService(store.NewMemoryStore())

		return newTestAPI(t, newTestHandler(service))
	}

	t.Run("create then follow over every format", func(t *testing.T) {
		api := newAPI(t)

		for _, s := range []shortener.Serializer{serializer.JSON{}, serializer.MsgPack{}, serializer.CBOR{}} {
			t.Run(s.ContentType(), func(t *testing.T) {
				created := api.Post("/", "Content-Type: "+s.ContentType(),
					bytes.NewReader(mustEncode(t, s, &shortener.Redirect{URL: testURL})))

				require.Equal(t, http.StatusCreated, created.Code)
				assert.Equal(t, s.ContentType(), created.Header().Get("Content-Type"))

				redirect, err := s.Decode(created.Body.Bytes())
				require.NoError(t, err)
				assert.Regexp(t, `^[0-9a-f]{16}$`, redirect.Code)
				assert.Positive(t, redirect.CreatedAt)

				followed := api.Get("/" + redirect.Code)

				assert.Equal(t, http.StatusMovedPermanently, followed.Code)
				assert.Equal(t, testURL, followed.Header().Get("Location"))
			})
		}
	})

	t.Run("unknown code is not found", func(t *testing.T) {
		resp := newAPI(t).Get("/doesnotexist")

		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.Contains(t, resp.Body.String(), "redirect not found")
	})

	t.Run("malformed body is a server error", func(t *testing.T) {
		resp := newAPI(t).Post("/", "Content-Type: application/x-msgpack", bytes.NewReader([]byte{0xc1}))

		assert.Equal(t, http.StatusInternalServerError, resp.Code)
		assert.Contains(t, resp.Body.String(), "a server error occurred")
	})

	t.Run("oversized body is rejected", func(t *testing.T) {
		big := bytes.Repeat([]byte("a"), handlers.MaxBodyBytes+1)

		resp := newAPI(t).Post("/", "Content-Type: application/json", bytes.NewReader(big))

		assert.Equal(t, http.StatusRequestEntityTooLarge, resp.Code)
	})
}

func mustEncode(t *testing.T, s shortener.Serializer, r *shortener.Redirect) []byte {
	t.Helper()

	data, err := s.Encode(r)
	require.NoError(t, err)

	return data
}
