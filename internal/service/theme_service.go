package service

import (
	"context"
	"time"

	"github.com/spec-kit/air-quality-dashboard/internal/domain"
	"github.com/spec-kit/air-quality-dashboard/internal/events"
	"github.com/spec-kit/air-quality-dashboard/internal/notice"
	"github.com/spec-kit/air-quality-dashboard/internal/repository"
	"github.com/spec-kit/air-quality-dashboard/internal/theme"
	apperrors "github.com/spec-kit/air-quality-dashboard/pkg/util/errorutil"
)

// ThemeService switches between light and dark mode.
type ThemeService struct {
	sessions   repository.SessionRepository
	dispatcher events.Dispatcher
	noticeTTL  time.Duration
}

// NewThemeService builds the service.
func NewThemeService(sessions repository.SessionRepository, dispatcher events.Dispatcher, noticeTTL time.Duration) *ThemeService {
	return &ThemeService{sessions: sessions, dispatcher: dispatcher, noticeTTL: noticeTTL}
}

// SetTheme stores the mode and posts a one-shot confirmation.
func (s *ThemeService) SetTheme(ctx context.Context, sessionID, rawMode string) (*domain.Session, error) {
	mode, parseErr := domain.ParseTheme(rawMode)
	session, err := s.sessions.Update(ctx, sessionID, func(sess *domain.Session) error {
		if parseErr != nil {
			sess.Notice.Post(notice.Warning("⚠️ Unknown theme.", s.noticeTTL))
			return nil
		}
		sess.Theme = mode
		sess.Notice.Post(notice.Success(theme.ConfirmationFor(mode), s.noticeTTL))
		return nil
	})
	if err != nil {
		return nil, mapSessionError(err)
	}
	if parseErr != nil {
		return session, apperrors.NewValidationError("unknown theme", map[string]any{"theme": rawMode})
	}

	publish(ctx, s.dispatcher, events.New(events.EventSessionThemeChanged, sessionID, events.ThemeChangedPayload{Theme: mode}))
	return session, nil
}
