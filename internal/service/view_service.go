package service

import (
	"context"

	"github.com/spec-kit/air-quality-dashboard/internal/domain"
	"github.com/spec-kit/air-quality-dashboard/internal/notice"
	"github.com/spec-kit/air-quality-dashboard/internal/repository"
	"github.com/spec-kit/air-quality-dashboard/internal/theme"
)

// ViewState is everything a page render needs.
type ViewState struct {
	Session domain.Session
	View    domain.View
	Style   theme.Style
	Notice  *notice.Notice
}

// ViewService resolves what to render for a session.
type ViewService struct {
	sessions repository.SessionRepository
}

// NewViewService builds the service.
func NewViewService(sessions repository.SessionRepository) *ViewService {
	return &ViewService{sessions: sessions}
}

// Prepare resolves the view and consumes the pending notice, so each notice renders once.
func (s *ViewService) Prepare(ctx context.Context, sessionID string) (ViewState, error) {
	var taken *notice.Notice
	session, err := s.sessions.Update(ctx, sessionID, func(sess *domain.Session) error {
		if n, ok := sess.Notice.Take(); ok {
			taken = &n
		}
		return nil
	})
	if err != nil {
		return ViewState{}, mapSessionError(err)
	}

	return ViewState{
		Session: *session,
		View:    domain.Resolve(session),
		Style:   theme.StyleFor(session.CurrentTheme()),
		Notice:  taken,
	}, nil
}

// Style returns the current style for a session without consuming its notice.
func (s *ViewService) Style(ctx context.Context, sessionID string) (theme.Style, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return theme.Style{}, mapSessionError(err)
	}
	return theme.StyleFor(session.CurrentTheme()), nil
}
