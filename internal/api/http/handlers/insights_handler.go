package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/air-quality-dashboard/internal/insights"
	"github.com/spec-kit/air-quality-dashboard/internal/service"
	apperrors "github.com/spec-kit/air-quality-dashboard/pkg/util/errorutil"
)

// InsightsHandler serves the framed charts of the Insights page.
type InsightsHandler struct {
	views *service.ViewService
}

// NewInsightsHandler constructs handler.
func NewInsightsHandler(views *service.ViewService) *InsightsHandler {
	return &InsightsHandler{views: views}
}

// Chart handles GET /insights/charts/:chart.
func (h *InsightsHandler) Chart(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	dataset, ok := insights.Find(c.Params("chart"))
	if !ok {
		return apperrors.NewNotFound("chart", map[string]any{"chart": c.Params("chart")})
	}
	style, err := h.views.Style(c.UserContext(), id)
	if err != nil {
		return err
	}

	c.Type("html", "utf-8")
	return insights.Render(c, dataset, style)
}
