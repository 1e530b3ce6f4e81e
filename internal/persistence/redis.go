package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/air-quality-dashboard/internal/config"
	"github.com/spec-kit/air-quality-dashboard/internal/repository"
)

// Redis wraps the go-redis client.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects to Redis using the provided configuration.
func NewRedis(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	r := &Redis{Client: client}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := r.Ping(pingCtx); err != nil {
		r.Close()
		return nil, err
	}

	logger.Info("connected to redis", zap.String("addr", cfg.Addr))
	return r, nil
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	return r.Client.Ping(ctx).Err()
}

// NewSessionRepository picks the session backend: Redis when enabled, memory otherwise.
// The returned close func releases the backend.
func NewSessionRepository(ctx context.Context, cfg config.Config, logger *zap.Logger) (repository.SessionRepository, func(), error) {
	if !cfg.Redis.Enabled {
		logger.Warn("REDIS_ENABLED is false; sessions are kept in process memory")
		return repository.NewMemorySessionRepository(cfg.Session.TTL(), nil), func() {}, nil
	}

	rdb, err := NewRedis(ctx, cfg.Redis, logger)
	if err != nil {
		return nil, nil, err
	}
	return repository.NewRedisSessionRepository(rdb.Client, cfg.Session.TTL(), nil), rdb.Close, nil
}
