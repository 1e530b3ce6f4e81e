package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/spec-kit/air-quality-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/air-quality-dashboard/internal/auth"
	"github.com/spec-kit/air-quality-dashboard/internal/observability"
	"github.com/spec-kit/air-quality-dashboard/internal/repository"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Pages    *handlers.PagesHandler
	Session  *handlers.SessionHandler
	Feedback *handlers.FeedbackHandler
	Insights *handlers.InsightsHandler
	Metrics  *observability.Metrics

	SessionMiddleware *auth.SessionMiddleware
	Sessions          repository.SessionRepository
}

// RegisterRoutes wires HTTP routes. Probes and metrics are registered before the
// session middleware so they never create sessions.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	web := app.Group("", cfg.SessionMiddleware.Handle)
	web.Get("/", cfg.Pages.Show)
	web.Post("/signup", cfg.Session.SignUp)
	web.Post("/logout", cfg.Session.Logout)
	web.Post("/navigate", cfg.Session.Navigate)
	web.Post("/theme", cfg.Session.SetTheme)

	requireAuth := auth.RequireAuthenticated(cfg.Sessions)
	web.Post("/feedback", requireAuth, cfg.Feedback.Submit)
	web.Get("/insights/charts/:chart", requireAuth, cfg.Insights.Chart)
}
