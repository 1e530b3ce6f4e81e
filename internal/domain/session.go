package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/spec-kit/air-quality-dashboard/internal/notice"
)

// Theme is the colour mode selected by the user.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme validates a theme name.
func ParseTheme(raw string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(raw))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	}
	return "", fmt.Errorf("unknown theme %q", raw)
}

// Page is one of the four navigable pages. The zero value means none selected yet.
type Page string

const (
	PageNone      Page = ""
	PageHome      Page = "home"
	PageDashboard Page = "dashboard"
	PageInsights  Page = "insights"
	PageFeedback  Page = "feedback"
)

// Pages lists the navigable pages in sidebar order.
var Pages = []Page{PageHome, PageDashboard, PageInsights, PageFeedback}

// ParsePage validates a page name, case-insensitively.
func ParsePage(raw string) (Page, error) {
	p := Page(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Pages {
		if p == known {
			return p, nil
		}
	}
	return PageNone, fmt.Errorf("unknown page %q", raw)
}

// Title is the human readable page name.
func (p Page) Title() string {
	switch p {
	case PageHome:
		return "Home"
	case PageDashboard:
		return "Dashboard"
	case PageInsights:
		return "Insights"
	case PageFeedback:
		return "Feedback"
	}
	return ""
}

// Session is the per-browser state. It is only mutated through the session repository's
// Update entry point.
type Session struct {
	ID            string      `json:"id"`
	Authenticated bool        `json:"authenticated"`
	Username      string      `json:"username"`
	Theme         Theme       `json:"theme"`
	Page          Page        `json:"page"`
	Notice        notice.Slot `json:"notice"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// NewSession returns an unauthenticated light-themed session.
func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		Theme:     ThemeLight,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CurrentPage returns the selected page, defaulting to Home.
func (s *Session) CurrentPage() Page {
	if s.Page == PageNone {
		return PageHome
	}
	return s.Page
}

// CurrentTheme returns the selected theme, defaulting to light.
func (s *Session) CurrentTheme() Theme {
	if s.Theme == "" {
		return ThemeLight
	}
	return s.Theme
}
