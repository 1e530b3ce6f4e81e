package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/air-quality-dashboard/internal/api/dto"
	"github.com/spec-kit/air-quality-dashboard/internal/service"
	apperrors "github.com/spec-kit/air-quality-dashboard/pkg/util/errorutil"
)

// SessionHandler exposes the sign-up gate, navigation and theme switches.
type SessionHandler struct {
	auth  *service.AuthService
	nav   *service.NavigationService
	theme *service.ThemeService
}

// NewSessionHandler constructs handler.
func NewSessionHandler(auth *service.AuthService, nav *service.NavigationService, theme *service.ThemeService) *SessionHandler {
	return &SessionHandler{auth: auth, nav: nav, theme: theme}
}

// SignUp handles POST /signup.
func (h *SessionHandler) SignUp(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	var req dto.SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	_, err = h.auth.SignUp(c.UserContext(), id, req.Username, req.Password)
	return backToPage(c, err)
}

// Logout handles POST /logout.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	_, err = h.auth.Logout(c.UserContext(), id)
	return backToPage(c, err)
}

// Navigate handles POST /navigate.
func (h *SessionHandler) Navigate(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	var req dto.NavigateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	_, err = h.nav.Navigate(c.UserContext(), id, req.Page)
	return backToPage(c, err)
}

// SetTheme handles POST /theme.
func (h *SessionHandler) SetTheme(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	var req dto.ThemeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	_, err = h.theme.SetTheme(c.UserContext(), id, req.Mode)
	return backToPage(c, err)
}
