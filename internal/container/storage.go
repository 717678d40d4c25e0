package container

import (
	"context"
	"fmt"

	"github.com/samber/do"
	"github.com/serroba/hex-shortener/internal/health"
	"github.com/serroba/hex-shortener/internal/shortener"
	"github.com/serroba/hex-shortener/internal/store"
)

// Repository is a storage adapter that can also report its health.
type Repository interface {
	shortener.Repository
	health.Checker
}

// Storage is the storage adapter chosen at startup.
type Storage struct {
	Backend    string
	Repository Repository
}

// StoragePackage provides the Storage selected by --storage. It needs
// ClientsPackage; clients for the unselected backends are never created.
func StoragePackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*Storage, error) {
		opts := do.MustInvoke[*Options](i)

		repo, err := openRepository(i, opts)
		if err != nil {
			return nil, err
		}

		return &Storage{Backend: opts.Storage, Repository: repo}, nil
	})
}

func openRepository(i *do.Injector, opts *Options) (Repository, error) {
	switch opts.Storage {
	case StorageMemory:
		return store.NewMemoryStore(), nil

	case StorageRedis:
		client, err := do.Invoke[*RedisClient](i)
		if err != nil {
			return nil, err
		}

		return store.NewRedisStore(client.Client), nil

	case StorageMongo:
		client, err := do.Invoke[*MongoClient](i)
		if err != nil {
			return nil, err
		}

		return store.NewMongoStore(client.Client, opts.MongoDB), nil

	case StoragePostgres:
		pool, err := do.Invoke[*PostgresPool](i)
		if err != nil {
			return nil, err
		}

		pgStore := store.NewPostgresStore(pool.Pool)

		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()

		if err := pgStore.EnsureSchema(ctx); err != nil {
			return nil, err
		}

		return pgStore, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Storage)
	}
}
