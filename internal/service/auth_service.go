package service

import (
	"context"
	"fmt"
	"time"

	"github.com/spec-kit/air-quality-dashboard/internal/domain"
	"github.com/spec-kit/air-quality-dashboard/internal/events"
	"github.com/spec-kit/air-quality-dashboard/internal/notice"
	"github.com/spec-kit/air-quality-dashboard/internal/repository"
	apperrors "github.com/spec-kit/air-quality-dashboard/pkg/util/errorutil"
)

const msgFillBothFields = "Please fill in both fields."

// AuthService implements the credential-free sign-up gate.
type AuthService struct {
	sessions              repository.SessionRepository
	dispatcher            events.Dispatcher
	noticeTTL             time.Duration
	clearUsernameOnLogout bool
}

// AuthOptions tunes the gate.
type AuthOptions struct {
	NoticeDuration        time.Duration
	ClearUsernameOnLogout bool
}

// NewAuthService builds the service.
func NewAuthService(sessions repository.SessionRepository, dispatcher events.Dispatcher, opts AuthOptions) *AuthService {
	return &AuthService{
		sessions:              sessions,
		dispatcher:            dispatcher,
		noticeTTL:             opts.NoticeDuration,
		clearUsernameOnLogout: opts.ClearUsernameOnLogout,
	}
}

// SignUp authenticates the session when both fields are non-empty. The password is
// only checked for presence; it is never stored.
func (s *AuthService) SignUp(ctx context.Context, sessionID, username, password string) (*domain.Session, error) {
	var validationErr error
	session, err := s.sessions.Update(ctx, sessionID, func(sess *domain.Session) error {
		if username == "" || password == "" {
			validationErr = apperrors.NewValidationError(msgFillBothFields, nil)
			sess.Notice.Post(notice.Warning("⚠️ "+msgFillBothFields, s.noticeTTL))
			return nil
		}
		sess.Authenticated = true
		sess.Username = username
		sess.Notice.Post(notice.Success(fmt.Sprintf("✅ Welcome, %s! Successfully signed in!", username), s.noticeTTL))
		return nil
	})
	if err != nil {
		return nil, mapSessionError(err)
	}
	if validationErr != nil {
		return session, validationErr
	}

	publish(ctx, s.dispatcher, events.New(events.EventSessionSignedUp, sessionID, nil))
	return session, nil
}

// Logout drops authentication. The username is kept unless configured otherwise so
// the sign-up form can be pre-filled.
func (s *AuthService) Logout(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.sessions.Update(ctx, sessionID, func(sess *domain.Session) error {
		sess.Authenticated = false
		if s.clearUsernameOnLogout {
			sess.Username = ""
		}
		return nil
	})
	if err != nil {
		return nil, mapSessionError(err)
	}

	publish(ctx, s.dispatcher, events.New(events.EventSessionLoggedOut, sessionID, nil))
	return session, nil
}
