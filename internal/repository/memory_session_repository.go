package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/spec-kit/air-quality-dashboard/internal/domain"
)

type memoryEntry struct {
	session   domain.Session
	expiresAt time.Time
}

type memorySessionRepository struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     Clock
	entries map[string]*memoryEntry
}

// NewMemorySessionRepository returns a process-local store, used when Redis is disabled.
func NewMemorySessionRepository(ttl time.Duration, now Clock) SessionRepository {
	if now == nil {
		now = time.Now
	}
	return &memorySessionRepository{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]*memoryEntry),
	}
}

func (r *memorySessionRepository) Create(_ context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweepLocked()
	r.entries[session.ID] = &memoryEntry{session: cloneSession(session), expiresAt: r.now().Add(r.ttl)}
	return nil
}

func (r *memorySessionRepository) Get(_ context.Context, id string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.liveLocked(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	s := cloneSession(&entry.session)
	return &s, nil
}

func (r *memorySessionRepository) Update(_ context.Context, id string, fn SessionMutator) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.liveLocked(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	working := cloneSession(&entry.session)
	if err := fn(&working); err != nil {
		return nil, err
	}
	now := r.now()
	working.UpdatedAt = now
	entry.session = working
	entry.expiresAt = now.Add(r.ttl)
	out := cloneSession(&working)
	return &out, nil
}

func (r *memorySessionRepository) Ping(context.Context) error {
	return nil
}

func (r *memorySessionRepository) liveLocked(id string) (*memoryEntry, bool) {
	entry, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	if r.ttl > 0 && !r.now().Before(entry.expiresAt) {
		delete(r.entries, id)
		return nil, false
	}
	return entry, true
}

func (r *memorySessionRepository) sweepLocked() {
	if r.ttl <= 0 {
		return
	}
	now := r.now()
	for id, entry := range r.entries {
		if !now.Before(entry.expiresAt) {
			delete(r.entries, id)
		}
	}
}

// cloneSession deep-copies a session. Strings are cloned too: request values parsed
// by fasthttp may alias a buffer that is reused once the request ends.
func cloneSession(s *domain.Session) domain.Session {
	out := *s
	out.ID = strings.Clone(s.ID)
	out.Username = strings.Clone(s.Username)
	out.Theme = domain.Theme(strings.Clone(string(s.Theme)))
	out.Page = domain.Page(strings.Clone(string(s.Page)))
	if s.Notice.Pending != nil {
		n := *s.Notice.Pending
		n.Text = strings.Clone(n.Text)
		out.Notice.Pending = &n
	}
	return out
}
