package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/chamados/servicedesk/internal/infrastructure/config"
	"github.com/chamados/servicedesk/internal/infrastructure/database"
	"github.com/chamados/servicedesk/internal/shared/clock"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

// Handle is an opened backend together with the connection it runs on, if any.
type Handle struct {
	Backend Backend
	// DB is set for the database backend
	DB *gorm.DB
	// Redis is set for the redis backend
	Redis *redis.Client
}

// Open builds the backend named by cfg.Storage.Backend. The caller closes the handle.
func Open(ctx context.Context, cfg *config.Config, clk clock.Clock, log logger.Interface) (*Handle, error) {
	switch cfg.Storage.Backend {
	case "memory":
		log.Warnw("using in-memory storage, data is lost on restart")
		return &Handle{Backend: NewMemoryBackend()}, nil

	case "file":
		log.Infow("using file storage", "dir", cfg.Storage.Dir)
		return &Handle{Backend: NewFileBackend(cfg.Storage.Dir)}, nil

	case "database":
		db, err := database.Open(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to open database storage: %w", err)
		}
		log.Infow("using database storage", "driver", cfg.Database.Driver)
		return &Handle{Backend: NewDatabaseBackend(db, clk), DB: db}, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		log.Infow("using redis storage", "addr", cfg.Redis.GetAddr(), "prefix", cfg.Storage.KeyPrefix)
		return &Handle{Backend: NewRedisBackend(client, cfg.Storage.KeyPrefix), Redis: client}, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// Close releases the underlying connection.
func (h *Handle) Close() error {
	var errs []error
	if h.DB != nil {
		if sqlDB, err := h.DB.DB(); err == nil {
			errs = append(errs, sqlDB.Close())
		}
	}
	if h.Redis != nil {
		errs = append(errs, h.Redis.Close())
	}
	return errors.Join(errs...)
}
