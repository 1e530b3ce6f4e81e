package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/air-quality-dashboard/internal/domain"
)

const (
	sessionKeyPrefix     = "aq:session:"
	maxOptimisticRetries = 5
)

type redisSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
	now    Clock
}

// NewRedisSessionRepository returns a Redis-backed implementation.
func NewRedisSessionRepository(client *redis.Client, ttl time.Duration, now Clock) SessionRepository {
	if now == nil {
		now = time.Now
	}
	return &redisSessionRepository{client: client, ttl: ttl, now: now}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (r *redisSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return r.client.Set(ctx, sessionKey(session.ID), data, r.ttl).Err()
}

func (r *redisSessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	raw, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return decodeSession(raw)
}

func (r *redisSessionRepository) Update(ctx context.Context, id string, fn SessionMutator) (*domain.Session, error) {
	key := sessionKey(id)
	var updated *domain.Session

	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return ErrSessionNotFound
			}
			return err
		}
		session, err := decodeSession(raw)
		if err != nil {
			return err
		}
		if err := fn(session); err != nil {
			return err
		}
		session.UpdatedAt = r.now()
		data, err := json.Marshal(session)
		if err != nil {
			return fmt.Errorf("encode session: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, r.ttl)
			return nil
		})
		if err == nil {
			updated = session
		}
		return err
	}

	for i := 0; i < maxOptimisticRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("update session %s: too much contention", id)
}

func (r *redisSessionRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func decodeSession(raw []byte) (*domain.Session, error) {
	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}
