package middleware

import (
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/hex-shortener/internal/metrics"
)

// Metrics records request count, latency and in-flight requests per operation route.
func Metrics(m *metrics.Metrics) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()

		m.HTTPInflightRequests.Inc()
		defer m.HTTPInflightRequests.Dec()

		route := "UNMATCHED"
		if op := ctx.Operation(); op != nil {
			route = op.Path
		}

		next(ctx)

		status := ctx.Status()
		if status == 0 {
			status = 200
		}

		m.HTTPRequestsTotal.WithLabelValues(ctx.Method(), route, strconv.Itoa(status)).Inc()
		m.HTTPRequestDurationSeconds.WithLabelValues(ctx.Method(), route).Observe(time.Since(start).Seconds())
	}
}
