package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/air-quality-dashboard/internal/domain"
)

func TestStyleFor(t *testing.T) {
	for _, mode := range []domain.Theme{domain.ThemeLight, domain.ThemeDark} {
		t.Run(string(mode), func(t *testing.T) {
			first := StyleFor(mode)
			assert.Equal(t, mode, first.Mode)
			assert.Equal(t, first, StyleFor(mode))
			assert.Equal(t, first.CSS(), StyleFor(mode).CSS())
		})
	}

	assert.Contains(t, StyleFor(domain.ThemeDark).CSS(), "#ffcc00")
	assert.Contains(t, StyleFor(domain.ThemeLight).CSS(), "background-color: white")
	assert.Equal(t, domain.ThemeLight, StyleFor("").Mode)
}

func TestConfirmationFor(t *testing.T) {
	assert.Equal(t, "Switched to Light Mode!", ConfirmationFor(domain.ThemeLight))
	assert.Equal(t, "Switched to Dark Mode!", ConfirmationFor(domain.ThemeDark))
}
