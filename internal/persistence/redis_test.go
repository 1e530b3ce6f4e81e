package persistence

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/air-quality-dashboard/internal/config"
)

func TestNewSessionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("memory when redis disabled", func(t *testing.T) {
		repo, closeFn, err := NewSessionRepository(ctx, config.Config{}, zap.NewNop())
		require.NoError(t, err)
		defer closeFn()
		assert.NoError(t, repo.Ping(ctx))
	})

	t.Run("redis when enabled", func(t *testing.T) {
		server := miniredis.RunT(t)
		cfg := config.Config{Redis: config.RedisConfig{Enabled: true, Addr: server.Addr()}}

		repo, closeFn, err := NewSessionRepository(ctx, cfg, zap.NewNop())
		require.NoError(t, err)
		defer closeFn()
		assert.NoError(t, repo.Ping(ctx))
	})

	t.Run("unreachable redis fails fast", func(t *testing.T) {
		cfg := config.Config{Redis: config.RedisConfig{Enabled: true, Addr: "127.0.0.1:1"}}
		_, _, err := NewSessionRepository(ctx, cfg, zap.NewNop())
		assert.Error(t, err)
	})
}

func TestNilRedisPing(t *testing.T) {
	var r *Redis
	assert.Error(t, r.Ping(context.Background()))
	r.Close()
}
