package service

import (
	"context"
	"time"

	"github.com/spec-kit/air-quality-dashboard/internal/domain"
	"github.com/spec-kit/air-quality-dashboard/internal/events"
	"github.com/spec-kit/air-quality-dashboard/internal/notice"
	"github.com/spec-kit/air-quality-dashboard/internal/repository"
	apperrors "github.com/spec-kit/air-quality-dashboard/pkg/util/errorutil"
)

// NavigationService moves a session between pages.
type NavigationService struct {
	sessions   repository.SessionRepository
	dispatcher events.Dispatcher
	noticeTTL  time.Duration
}

// NewNavigationService builds the service.
func NewNavigationService(sessions repository.SessionRepository, dispatcher events.Dispatcher, noticeTTL time.Duration) *NavigationService {
	return &NavigationService{sessions: sessions, dispatcher: dispatcher, noticeTTL: noticeTTL}
}

// Navigate selects a page. Navigating to the current page again is a no-op in effect.
func (s *NavigationService) Navigate(ctx context.Context, sessionID, rawPage string) (*domain.Session, error) {
	page, parseErr := domain.ParsePage(rawPage)
	session, err := s.sessions.Update(ctx, sessionID, func(sess *domain.Session) error {
		if parseErr != nil {
			sess.Notice.Post(notice.Warning("⚠️ Unknown page.", s.noticeTTL))
			return nil
		}
		sess.Page = page
		return nil
	})
	if err != nil {
		return nil, mapSessionError(err)
	}
	if parseErr != nil {
		return session, apperrors.NewValidationError("unknown page", map[string]any{"page": rawPage})
	}

	publish(ctx, s.dispatcher, events.New(events.EventSessionPageChanged, sessionID, events.PageChangedPayload{Page: page}))
	return session, nil
}
