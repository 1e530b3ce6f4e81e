package handlers

import (
	"fmt"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/air-quality-dashboard/internal/config"
	"github.com/spec-kit/air-quality-dashboard/internal/domain"
	"github.com/spec-kit/air-quality-dashboard/internal/insights"
	"github.com/spec-kit/air-quality-dashboard/internal/service"
	"github.com/spec-kit/air-quality-dashboard/internal/web"
	apperrors "github.com/spec-kit/air-quality-dashboard/pkg/util/errorutil"
)

const appTitle = "Air Quality Visualization App"

var pageIcons = map[domain.Page]string{
	domain.PageHome:      "🏠",
	domain.PageDashboard: "📊",
	domain.PageInsights:  "📈",
	domain.PageFeedback:  "💬",
}

type navItem struct {
	Page   domain.Page
	Title  string
	Icon   string
	Active bool
}

// PagesHandler renders whichever view the session resolves to.
type PagesHandler struct {
	views  *service.ViewService
	report config.ReportConfig
}

// NewPagesHandler constructs handler.
func NewPagesHandler(views *service.ViewService, report config.ReportConfig) *PagesHandler {
	return &PagesHandler{views: views, report: report}
}

// Show handles GET /.
func (h *PagesHandler) Show(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	state, err := h.views.Prepare(c.UserContext(), id)
	if err != nil {
		return err
	}

	data := baseData(state)
	switch state.View {
	case domain.ViewSignUp:
		data["PageTitle"] = appTitle + " · Sign Up"
		return c.Render("signup", data, web.Layout)
	case domain.ViewHome:
		return c.Render("home", data, web.Layout)
	case domain.ViewDashboard:
		data["Report"] = h.report
		return c.Render("dashboard", data, web.Layout)
	case domain.ViewInsights:
		data["Charts"] = insights.Datasets()
		return c.Render("insights", data, web.Layout)
	case domain.ViewFeedback:
		data["MinRating"] = service.MinRating
		data["MaxRating"] = service.MaxRating
		data["DefaultRating"] = service.DefaultRating
		return c.Render("feedback", data, web.Layout)
	}
	return apperrors.NewInternalError(fmt.Errorf("unhandled view %v", state.View))
}

func baseData(state service.ViewState) fiber.Map {
	current := state.Session.CurrentPage()
	nav := make([]navItem, 0, len(domain.Pages))
	for _, p := range domain.Pages {
		nav = append(nav, navItem{Page: p, Title: p.Title(), Icon: pageIcons[p], Active: p == current})
	}

	return fiber.Map{
		"PageTitle":     appTitle + " · " + current.Title(),
		"Theme":         string(state.Style.Mode),
		"ThemeCSS":      template.CSS(state.Style.CSS()),
		"Authenticated": state.Session.Authenticated,
		"Username":      state.Session.Username,
		"Notice":        state.Notice,
		"Nav":           nav,
	}
}
