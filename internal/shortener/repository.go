package shortener

import "context"

// Repository is the storage port. Implementations must be safe for concurrent use.
type Repository interface {
	// Find returns ErrNotFound when no redirect has the code. Any I/O or
	// decoding failure is returned as an ErrServer error.
	Find(ctx context.Context, code string) (*Redirect, error)

	// Store persists the redirect as given. It never assigns Code or CreatedAt
	// and performs no uniqueness check.
	Store(ctx context.Context, redirect *Redirect) error
}
