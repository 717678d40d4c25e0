package container

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor" // CBOR format support for huma
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/do"
	"github.com/serroba/hex-shortener/internal/events"
	"github.com/serroba/hex-shortener/internal/handlers"
	"github.com/serroba/hex-shortener/internal/health"
	"github.com/serroba/hex-shortener/internal/metrics"
	"github.com/serroba/hex-shortener/internal/middleware"
	"github.com/serroba/hex-shortener/internal/serializer"
	"github.com/serroba/hex-shortener/internal/shortener"
	"go.uber.org/zap"
)

// HTTPPackage provides the router and the huma API with every route registered.
// Invoking huma.API is what registers the routes.
func HTTPPackage(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (*chi.Mux, error) {
		return chi.NewMux(), nil
	})

	do.Provide(injector, func(i *do.Injector) (huma.API, error) {
		router := do.MustInvoke[*chi.Mux](i)
		logger := do.MustInvoke[*zap.Logger](i)
		reg := do.MustInvoke[*prometheus.Registry](i)
		m := do.MustInvoke[*metrics.Metrics](i)
		serializers := do.MustInvoke[*serializer.Registry](i)

		storage, err := do.Invoke[*Storage](i)
		if err != nil {
			return nil, err
		}

		service, err := do.Invoke[shortener.RedirectService](i)
		if err != nil {
			return nil, err
		}

		publishers, err := do.Invoke[events.Publishers](i)
		if err != nil {
			return nil, err
		}

		api := humachi.New(router, huma.DefaultConfig("Hex Shortener", "1.0.0"))
		api.UseMiddleware(middleware.RequestMeta(api), middleware.Metrics(m))

		handlers.RegisterRoutes(api, handlers.NewRedirectHandler(service, serializers, publishers, logger))
		health.RegisterRoutes(api, health.NewHandler(storage.Backend, storage.Repository))

		router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

		return api, nil
	})
}
