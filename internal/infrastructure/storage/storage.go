// Package storage opens the blob backend selected by STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fastygo/taskboard/internal/config"
	pgInfra "github.com/fastygo/taskboard/internal/infrastructure/postgres"
	redisInfra "github.com/fastygo/taskboard/internal/infrastructure/redis"
	"github.com/fastygo/taskboard/repository"
	boltRepo "github.com/fastygo/taskboard/repository/bolt"
	"github.com/fastygo/taskboard/repository/memory"
	pgRepo "github.com/fastygo/taskboard/repository/postgres"
	redisRepo "github.com/fastygo/taskboard/repository/redis"
)

// Backend is an opened blob store plus its shutdown hook.
type Backend struct {
	Driver string
	Blobs  repository.BlobStore
	Close  func(ctx context.Context) error
}

// Pinger returns the health probe of the backend, or nil when it has none.
func (b *Backend) Pinger() repository.Pinger {
	p, _ := b.Blobs.(repository.Pinger)
	return p
}

func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Backend, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	driver := cfg.Storage.Driver

	switch driver {
	case config.DriverBolt:
		store, err := boltRepo.Open(cfg.Storage.BoltPath, cfg.Storage.BoltBucket)
		if err != nil {
			return nil, fmt.Errorf("open bolt %s: %w", cfg.Storage.BoltPath, err)
		}
		logger.Info("storage opened", zap.String("driver", driver), zap.String("path", cfg.Storage.BoltPath))
		return &Backend{
			Driver: driver,
			Blobs:  store,
			Close:  func(context.Context) error { return store.Close() },
		}, nil

	case config.DriverRedis:
		client, err := redisInfra.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		logger.Info("storage opened", zap.String("driver", driver))
		// The Store already prefixes its keys with STORAGE_KEY_PREFIX.
		blobs := redisRepo.NewBlobStore(client, "")
		return &Backend{
			Driver: driver,
			Blobs:  blobs,
			Close:  func(context.Context) error { return client.Close() },
		}, nil

	case config.DriverPostgres:
		if err := pgInfra.RunMigrations(cfg, logger); err != nil {
			return nil, fmt.Errorf("migrate postgres: %w", err)
		}
		pool, err := pgInfra.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		return &Backend{
			Driver: driver,
			Blobs:  pgRepo.NewBlobStore(pool),
			Close: func(context.Context) error {
				pool.Close()
				return nil
			},
		}, nil

	case config.DriverMemory:
		logger.Warn("memory storage selected, state is lost on exit")
		return &Backend{
			Driver: driver,
			Blobs:  memory.NewBlobStore(),
			Close:  func(context.Context) error { return nil },
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
