package handlers_test

import (
	"context"
	"errors"

	"github.com/serroba/hex-shortener/internal/shortener"
)

var errMock = errors.New("mock error")

const testURL = "https://example.com"

// mockService is a test double for shortener.RedirectService that can be configured to return errors.
type mockService struct {
	findErr  error
	storeErr error
	found    *shortener.Redirect
	stored   *shortener.Redirect
}

func (m *mockService) Find(_ context.Context, code string) (*shortener.Redirect, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}

	if m.found != nil {
		return m.found, nil
	}

	return &shortener.Redirect{Code: code, URL: testURL, CreatedAt: 1700000000}, nil
}

func (m *mockService) Store(_ context.Context, redirect *shortener.Redirect) (*shortener.Redirect, error) {
	m.stored = redirect

	if m.storeErr != nil {
		return nil, m.storeErr
	}

	return &shortener.Redirect{Code: "0123456789abcdef", URL: redirect.URL, CreatedAt: 1700000000}, nil
}
