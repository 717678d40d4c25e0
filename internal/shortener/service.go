package shortener

import (
	"context"
	"errors"
	"time"
)

// RedirectService is the port the transport layer drives.
type RedirectService interface {
	Find(ctx context.Context, code string) (*Redirect, error)
	// Store mints a new redirect for redirect.URL. A nil redirect is a server error.
	Store(ctx context.Context, redirect *Redirect) (*Redirect, error)
}

var errNilRedirect = errors.New("nil redirect")

// Clock returns the current wall-clock time.
type Clock func() time.Time

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the clock used to stamp CreatedAt.
func WithClock(clock Clock) Option {
	return func(s *Service) {
		s.now = clock
	}
}

// WithCodeGenerator overrides short-code generation.
func WithCodeGenerator(generator CodeGenerator) Option {
	return func(s *Service) {
		s.generateCode = generator
	}
}

// Service assigns codes and timestamps and delegates persistence to a Repository.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	repo         Repository
	now          Clock
	generateCode CodeGenerator
}

// NewService creates a redirect service backed by repo.
func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:         repo,
		now:          time.Now,
		generateCode: HexCode,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Find looks a redirect up by code.
func (s *Service) Find(ctx context.Context, code string) (*Redirect, error) {
	return s.repo.Find(ctx, code)
}

// Store mints a new redirect for redirect.URL. Code and CreatedAt on the input are ignored.
func (s *Service) Store(ctx context.Context, redirect *Redirect) (*Redirect, error) {
	if redirect == nil {
		return nil, ServerError("store redirect", errNilRedirect)
	}

	createdAt := s.now().Unix()
	if createdAt < 0 {
		panic("shortener: system clock reads before the unix epoch")
	}

	created := &Redirect{
		Code:      s.generateCode(createdAt),
		URL:       redirect.URL,
		CreatedAt: createdAt,
	}

	if err := s.repo.Store(ctx, created); err != nil {
		if KindOf(err) == KindServer && !errors.Is(err, ErrServer) {
			err = ServerError("store redirect", err)
		}

		return nil, err
	}

	return created, nil
}

var _ RedirectService = (*Service)(nil)
