package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/serroba/hex-shortener/internal/shortener"
)

const (
	redisKeyPrefix      = "redirect:"
	redisFieldCode      = "code"
	redisFieldURL       = "url"
	redisFieldCreatedAt = "createdAt"
)

var errMissingField = errors.New("missing field")

// RedisStore keeps each redirect in a Redis hash at "redirect:<code>".
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis-backed redirect store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// RedisKey returns the hash key holding the redirect for code.
func RedisKey(code string) string {
	return redisKeyPrefix + code
}

func (r *RedisStore) Find(ctx context.Context, code string) (*shortener.Redirect, error) {
	data, err := r.client.HGetAll(ctx, RedisKey(code)).Result()
	if err != nil {
		return nil, shortener.ServerError("redis find", err)
	}

	if len(data) == 0 {
		return nil, shortener.ErrNotFound
	}

	redirect, err := parseRedisHash(data)
	if err != nil {
		return nil, shortener.ServerError("redis find", err)
	}

	return redirect, nil
}

func (r *RedisStore) Store(ctx context.Context, redirect *shortener.Redirect) error {
	err := r.client.HSet(ctx, RedisKey(redirect.Code),
		redisFieldCode, redirect.Code,
		redisFieldURL, redirect.URL,
		redisFieldCreatedAt, strconv.FormatInt(redirect.CreatedAt, 10),
	).Err()
	if err != nil {
		return shortener.ServerError("redis store", err)
	}

	return nil
}

// Ping checks Redis connectivity.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func parseRedisHash(data map[string]string) (*shortener.Redirect, error) {
	raw, ok := data[redisFieldCreatedAt]
	if !ok {
		return nil, fmt.Errorf("%w %q", errMissingField, redisFieldCreatedAt)
	}

	createdAt, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", redisFieldCreatedAt, err)
	}

	url, ok := data[redisFieldURL]
	if !ok {
		return nil, fmt.Errorf("%w %q", errMissingField, redisFieldURL)
	}

	code, ok := data[redisFieldCode]
	if !ok {
		return nil, fmt.Errorf("%w %q", errMissingField, redisFieldCode)
	}

	return &shortener.Redirect{
		Code:      code,
		URL:       url,
		CreatedAt: createdAt,
	}, nil
}

// Compile-time check.
var _ shortener.Repository = (*RedisStore)(nil)
