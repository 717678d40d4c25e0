package metrics

import (
	"context"

	"github.com/serroba/hex-shortener/internal/shortener"
)

// InstrumentedService counts calls to the wrapped RedirectService by outcome.
type InstrumentedService struct {
	next    shortener.RedirectService
	metrics *Metrics
}

var _ shortener.RedirectService = (*InstrumentedService)(nil)

// NewInstrumentedService wraps next.
func NewInstrumentedService(next shortener.RedirectService, metrics *Metrics) *InstrumentedService {
	return &InstrumentedService{next: next, metrics: metrics}
}

func (s *InstrumentedService) Find(ctx context.Context, code string) (*shortener.Redirect, error) {
	redirect, err := s.next.Find(ctx, code)
	s.observe("find", err)

	return redirect, err
}

func (s *InstrumentedService) Store(ctx context.Context, redirect *shortener.Redirect) (*shortener.Redirect, error) {
	stored, err := s.next.Store(ctx, redirect)
	s.observe("store", err)

	return stored, err
}

func (s *InstrumentedService) observe(operation string, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = shortener.KindOf(err).String()
	}

	s.metrics.ServiceCallsTotal.WithLabelValues(operation, outcome).Inc()
}
