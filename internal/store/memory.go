package store

import (
	"context"
	"sync"

	"github.com/serroba/hex-shortener/internal/shortener"
)

// MemoryStore is an in-memory implementation of shortener.Repository.
type MemoryStore struct {
	mu        sync.RWMutex
	redirects map[string]shortener.Redirect // code -> redirect
}

// NewMemoryStore creates a new in-memory redirect store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		redirects: make(map[string]shortener.Redirect),
	}
}

func (m *MemoryStore) Find(_ context.Context, code string) (*shortener.Redirect, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	redirect, ok := m.redirects[code]
	if !ok {
		return nil, shortener.ErrNotFound
	}

	return &redirect, nil
}

func (m *MemoryStore) Store(_ context.Context, redirect *shortener.Redirect) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.redirects[redirect.Code] = *redirect

	return nil
}

// Ping always succeeds.
func (m *MemoryStore) Ping(_ context.Context) error {
	return nil
}

// Len reports how many redirects are held.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.redirects)
}

// Compile-time check.
var _ shortener.Repository = (*MemoryStore)(nil)
