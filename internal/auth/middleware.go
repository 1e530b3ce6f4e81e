package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/air-quality-dashboard/internal/domain"
	"github.com/spec-kit/air-quality-dashboard/internal/repository"
	apperrors "github.com/spec-kit/air-quality-dashboard/pkg/util/errorutil"
)

const sessionIDKey = "session_id"

// CookieConfig controls the session cookie attributes.
type CookieConfig struct {
	Name   string
	Secure bool
}

// SessionMiddleware binds every request to a session, creating one when the cookie is
// missing, tampered with, or points at an expired session.
type SessionMiddleware struct {
	tokens   *TokenManager
	sessions repository.SessionRepository
	cookie   CookieConfig
}

// NewSessionMiddleware constructs middleware.
func NewSessionMiddleware(tokens *TokenManager, sessions repository.SessionRepository, cookie CookieConfig) *SessionMiddleware {
	if cookie.Name == "" {
		cookie.Name = "aq_session"
	}
	return &SessionMiddleware{tokens: tokens, sessions: sessions, cookie: cookie}
}

// Handle resolves the session and refreshes the cookie.
func (m *SessionMiddleware) Handle(c *fiber.Ctx) error {
	ctx := c.UserContext()
	sessionID := ""

	if raw := c.Cookies(m.cookie.Name); raw != "" {
		if claims, err := m.tokens.ParseToken(raw); err == nil {
			if _, err := m.sessions.Get(ctx, claims.SessionID); err == nil {
				sessionID = claims.SessionID
			} else if !errors.Is(err, repository.ErrSessionNotFound) {
				return apperrors.NewInternalError(err)
			}
		}
	}

	if sessionID == "" {
		sessionID = uuid.NewString()
		if err := m.sessions.Create(ctx, domain.NewSession(sessionID, time.Now())); err != nil {
			return apperrors.NewInternalError(err)
		}
	}

	token, _, err := m.tokens.GenerateToken(sessionID)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     m.cookie.Name,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   m.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	c.Locals(sessionIDKey, sessionID)
	return c.Next()
}

// SessionIDFromContext retrieves the session bound to the request.
func SessionIDFromContext(c *fiber.Ctx) (string, bool) {
	id, ok := c.Locals(sessionIDKey).(string)
	return id, ok && id != ""
}

// RequireAuthenticated ensures the session has passed the sign-up gate.
func RequireAuthenticated(sessions repository.SessionRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := SessionIDFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("session required")
		}
		session, err := sessions.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return apperrors.NewUnauthorized("session expired")
			}
			return apperrors.NewInternalError(err)
		}
		if !session.Authenticated {
			return apperrors.NewUnauthorized("sign up required")
		}
		return c.Next()
	}
}
