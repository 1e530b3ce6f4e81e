// Package theme maps a colour mode to the style payload injected into every page.
package theme

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/spec-kit/air-quality-dashboard/internal/domain"
)

// Style is the presentation payload for one mode.
type Style struct {
	Mode       domain.Theme
	Background string
	Foreground string
	SidebarBg  string
	SidebarFg  string
	ButtonBg   string
	ButtonFg   string
	HeadingFg  string
	SliderFg   string
	ChartTheme string
}

var (
	light = Style{
		Mode:       domain.ThemeLight,
		Background: "white",
		Foreground: "black",
		SidebarBg:  "#f0f0f0",
		SidebarFg:  "black",
		ButtonBg:   "#e0e0e0",
		ButtonFg:   "black",
		HeadingFg:  "black",
		SliderFg:   "black",
		ChartTheme: types.ThemeWesteros,
	}
	dark = Style{
		Mode:       domain.ThemeDark,
		Background: "black",
		Foreground: "white",
		SidebarBg:  "#111",
		SidebarFg:  "white",
		ButtonBg:   "#333",
		ButtonFg:   "white",
		HeadingFg:  "#ffcc00",
		SliderFg:   "white",
		ChartTheme: types.ThemeChalk,
	}
)

// StyleFor returns the style for a mode. Anything other than dark resolves to light.
func StyleFor(mode domain.Theme) Style {
	if mode == domain.ThemeDark {
		return dark
	}
	return light
}

// CSS renders the stylesheet body for the style.
func (s Style) CSS() string {
	return fmt.Sprintf(`body, .app { background-color: %s; color: %s; }
.sidebar { background-color: %s !important; color: %s !important; }
.sidebar button, .content button { background-color: %s; color: %s; border-radius: 8px; }
h1, h2, h3, h4, h5, h6 { color: %s !important; text-align: left; }
input[type=range] { color: %s !important; accent-color: %s; }
`, s.Background, s.Foreground,
		s.SidebarBg, s.SidebarFg,
		s.ButtonBg, s.ButtonFg,
		s.HeadingFg,
		s.SliderFg, s.SliderFg)
}

// ConfirmationFor is the notice shown after switching to mode.
func ConfirmationFor(mode domain.Theme) string {
	if mode == domain.ThemeDark {
		return "Switched to Dark Mode!"
	}
	return "Switched to Light Mode!"
}
