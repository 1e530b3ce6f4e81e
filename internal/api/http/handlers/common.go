package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/air-quality-dashboard/internal/auth"
	apperrors "github.com/spec-kit/air-quality-dashboard/pkg/util/errorutil"
)

func sessionID(c *fiber.Ctx) (string, error) {
	id, ok := auth.SessionIDFromContext(c)
	if !ok {
		return "", apperrors.NewUnauthorized("session required")
	}
	return id, nil
}

// backToPage finishes a form post. Validation and transport failures were already
// posted as notices, so they redirect like a success does.
func backToPage(c *fiber.Ctx, err error) error {
	if err != nil &&
		!apperrors.IsCode(err, apperrors.CodeValidationFailed) &&
		!apperrors.IsCode(err, apperrors.CodeTransportFailed) {
		return err
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}
