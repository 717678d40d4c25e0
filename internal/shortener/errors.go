package shortener

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no redirect matches a code.
	ErrNotFound = errors.New("redirect not found")

	// ErrInvalid marks unacceptable input. Reserved for validation at the edges.
	ErrInvalid = errors.New("redirect invalid")

	// ErrServer is the catch-all for I/O, encoding and unexpected failures.
	ErrServer = errors.New("a server error occurred")
)

// Kind is the closed set of error categories the transport layer may translate.
type Kind int

const (
	KindServer Kind = iota
	KindNotFound
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalid:
		return "invalid"
	default:
		return "server"
	}
}

// Err returns the sentinel error for the kind.
func (k Kind) Err() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindInvalid:
		return ErrInvalid
	default:
		return ErrServer
	}
}

// KindOf classifies err. Anything that is neither ErrNotFound nor ErrInvalid is KindServer.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalid):
		return KindInvalid
	default:
		return KindServer
	}
}

// ServerError wraps an adapter failure so that it matches ErrServer while keeping the cause.
func ServerError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrServer, err)
}
