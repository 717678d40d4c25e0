package container

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/samber/do"
	"github.com/serroba/hex-shortener/internal/metrics"
	"github.com/serroba/hex-shortener/internal/serializer"
	"github.com/serroba/hex-shortener/internal/shortener"
)

// MetricsPackage provides a private Prometheus registry with runtime
// collectors and the application metrics registered on it.
func MetricsPackage(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (*prometheus.Registry, error) {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		return reg, nil
	})

	do.Provide(injector, func(i *do.Injector) (*metrics.Metrics, error) {
		return metrics.New(do.MustInvoke[*prometheus.Registry](i)), nil
	})
}

// ServicePackage provides the instrumented redirect service over the selected storage.
func ServicePackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (shortener.RedirectService, error) {
		storage, err := do.Invoke[*Storage](i)
		if err != nil {
			return nil, err
		}

		m := do.MustInvoke[*metrics.Metrics](i)

		return metrics.NewInstrumentedService(shortener.NewService(storage.Repository), m), nil
	})
}

// SerializerPackage provides the content-type serializer registry.
func SerializerPackage(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (*serializer.Registry, error) {
		return serializer.NewRegistry(), nil
	})
}
