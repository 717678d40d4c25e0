package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/serroba/hex-shortener/internal/metrics"
	"github.com/serroba/hex-shortener/internal/middleware"
	"github.com/stretchr/testify/assert"
)

type itemInput struct {
	ID string `path:"id"`
}

func TestMetrics(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	router := chi.NewMux()
	api := humachi.New(router, huma.DefaultConfig("Test", "1.0.0"))
	api.UseMiddleware(middleware.Metrics(m))

	huma.Get(api, "/items/{id}", func(_ context.Context, in *itemInput) (*testOutput, error) {
		if in.ID == "missing" {
			return nil, huma.Error404NotFound("not found")
		}

		return &testOutput{Body: in.ID}, nil
	})

	for _, id := range []string{"a", "b", "missing"} {
		req := httptest.NewRequest(http.MethodGet, "/items/"+id, nil)
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.InDelta(t, 2, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/items/{id}", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/items/{id}", "404")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.HTTPInflightRequests), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.HTTPRequestDurationSeconds))
}
