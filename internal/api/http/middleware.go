package http

import (
	"context"
	"errors"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/air-quality-dashboard/internal/observability"
	apperrors "github.com/spec-kit/air-quality-dashboard/pkg/util/errorutil"
)

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) {
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(errorHandlingMiddleware(logger, metrics))
	app.Use(observability.RequestLogger(logger, metrics, statusOf))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err != nil {
				domainErr := toDomainError(err)
				if metrics != nil {
					metrics.RecordError(c.Path(), c.Method(), domainErr.Code)
				}
				if domainErr.HTTPStatus >= 500 {
					logger.Error("request failed", zap.String("path", c.Path()), zap.Error(domainErr))
				}
				err = respondError(c, domainErr)
			}
		}()
		return c.Next()
	}
}

func respondError(c *fiber.Ctx, domainErr *apperrors.DomainError) error {
	wantsJSON := c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON

	// A browser that lost its session goes back to the sign-up view.
	if domainErr.Code == apperrors.CodeUnauthorized && !wantsJSON {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	c.Status(domainErr.HTTPStatus)
	if wantsJSON {
		response := fiber.Map{"error": fiber.Map{
			"code":    domainErr.Code,
			"message": domainErr.Message,
		}}
		if len(domainErr.Details) > 0 {
			response["error"].(fiber.Map)["details"] = domainErr.Details
		}
		return c.JSON(response)
	}

	if renderErr := c.Render("error", fiber.Map{
		"Status":  domainErr.HTTPStatus,
		"Code":    domainErr.Code,
		"Message": domainErr.Message,
	}); renderErr != nil {
		return c.SendString(domainErr.Message)
	}
	return nil
}

// toDomainError also maps Fiber's own errors, such as unmatched routes.
func toDomainError(err error) *apperrors.DomainError {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code := apperrors.CodeInternal
		switch fiberErr.Code {
		case fiber.StatusNotFound:
			code = apperrors.CodeNotFound
		case fiber.StatusUnauthorized:
			code = apperrors.CodeUnauthorized
		case fiber.StatusBadRequest, fiber.StatusMethodNotAllowed:
			code = apperrors.CodeValidationFailed
		}
		return apperrors.NewDomainError(code, fiberErr.Message, fiberErr.Code, nil)
	}
	return apperrors.ToDomainError(err)
}

func statusOf(err error) int {
	domainErr := toDomainError(err)
	if domainErr.Code == apperrors.CodeUnauthorized {
		return fiber.StatusSeeOther
	}
	return domainErr.HTTPStatus
}
