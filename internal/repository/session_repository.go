package repository

import (
	"context"
	"errors"
	"time"

	"github.com/spec-kit/air-quality-dashboard/internal/domain"
)

// ErrSessionNotFound is returned when a session id is unknown or has expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionMutator mutates a session in place. Returning an error aborts the update.
type SessionMutator func(*domain.Session) error

// SessionRepository stores per-browser sessions with an idle TTL.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	// Update is the single mutation entry point: it loads the session, applies fn and
	// saves the result atomically, refreshing the idle TTL.
	Update(ctx context.Context, id string, fn SessionMutator) (*domain.Session, error)
	Ping(ctx context.Context) error
}

// Clock returns the current time. Tests replace it.
type Clock func() time.Time
