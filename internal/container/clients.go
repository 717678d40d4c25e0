package container

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const connectTimeout = 5 * time.Second

// RedisClient is closed by the injector on shutdown.
type RedisClient struct {
	*redis.Client
}

func (c *RedisClient) Shutdown() error {
	return c.Close()
}

// MongoClient is disconnected by the injector on shutdown.
type MongoClient struct {
	*mongo.Client
}

func (c *MongoClient) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	return c.Disconnect(ctx)
}

// PostgresPool is closed by the injector on shutdown.
type PostgresPool struct {
	*pgxpool.Pool
}

func (p *PostgresPool) Shutdown() error {
	p.Close()

	return nil
}

// ClientsPackage registers the lazily connected backend clients.
func ClientsPackage(injector *do.Injector) {
	RedisPackage(injector)
	MongoPackage(injector)
	PostgresPackage(injector)
}

// RedisPackage provides a Redis client for --redis-url. It is shared by the
// Redis store and the event stream.
func RedisPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*RedisClient, error) {
		opts := do.MustInvoke[*Options](i)

		redisOpts, err := redis.ParseURL(opts.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}

		client := redis.NewClient(redisOpts)

		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()

		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()

			return nil, fmt.Errorf("connect redis: %w", err)
		}

		return &RedisClient{Client: client}, nil
	})
}

// MongoPackage provides a MongoDB client for --mongo-url.
func MongoPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*MongoClient, error) {
		opts := do.MustInvoke[*Options](i)

		client, err := mongo.Connect(options.Client().ApplyURI(opts.MongoURL).SetServerSelectionTimeout(connectTimeout))
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()

		if err := client.Ping(ctx, nil); err != nil {
			_ = client.Disconnect(context.Background())

			return nil, fmt.Errorf("ping mongo: %w", err)
		}

		return &MongoClient{Client: client}, nil
	})
}

// PostgresPackage provides a pgx connection pool for --database-url.
func PostgresPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*PostgresPool, error) {
		opts := do.MustInvoke[*Options](i)

		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()

		pool, err := pgxpool.New(ctx, opts.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("create postgres pool: %w", err)
		}

		if err := pool.Ping(ctx); err != nil {
			pool.Close()

			return nil, fmt.Errorf("connect postgres: %w", err)
		}

		return &PostgresPool{Pool: pool}, nil
	})
}
