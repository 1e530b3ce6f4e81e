package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/air-quality-dashboard/internal/domain"
	"github.com/spec-kit/air-quality-dashboard/internal/notice"
	"github.com/spec-kit/air-quality-dashboard/internal/theme"
	apperrors "github.com/spec-kit/air-quality-dashboard/pkg/util/errorutil"
)

func TestNavigate(t *testing.T) {
	ctx := context.Background()

	for _, page := range domain.Pages {
		t.Run("idempotent "+string(page), func(t *testing.T) {
			f := newFixture(t, AuthOptions{})
			f.signedIn(t, "s", "asha")

			_, err := f.nav.Navigate(ctx, "s", string(page))
			require.NoError(t, err)
			first, err := f.views.Prepare(ctx, "s")
			require.NoError(t, err)

			_, err = f.nav.Navigate(ctx, "s", string(page))
			require.NoError(t, err)
			second, err := f.views.Prepare(ctx, "s")
			require.NoError(t, err)

			assert.Equal(t, first.View, second.View)
			assert.Equal(t, string(page), first.View.String())
		})
	}

	t.Run("unknown page warns without moving", func(t *testing.T) {
		f := newFixture(t, AuthOptions{})
		f.signedIn(t, "s", "asha")

		_, err := f.nav.Navigate(ctx, "s", "admin")
		assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationFailed))

		state, err := f.views.Prepare(ctx, "s")
		require.NoError(t, err)
		assert.Equal(t, domain.ViewHome, state.View)
		require.NotNil(t, state.Notice)
		assert.Equal(t, notice.KindWarning, state.Notice.Kind)
	})
}

func TestSetTheme(t *testing.T) {
	ctx := context.Background()

	for _, mode := range []domain.Theme{domain.ThemeDark, domain.ThemeLight} {
		t.Run(string(mode), func(t *testing.T) {
			f := newFixture(t, AuthOptions{})
			f.signedIn(t, "s", "asha")

			_, err := f.theme.SetTheme(ctx, "s", string(mode))
			require.NoError(t, err)

			state, err := f.views.Prepare(ctx, "s")
			require.NoError(t, err)
			assert.Equal(t, theme.StyleFor(mode), state.Style)
			require.NotNil(t, state.Notice)
			assert.Equal(t, theme.ConfirmationFor(mode), state.Notice.Text)

			again, err := f.views.Prepare(ctx, "s")
			require.NoError(t, err)
			assert.Nil(t, again.Notice, "confirmation is shown once")
			assert.Equal(t, mode, again.Style.Mode)
		})
	}

	t.Run("unknown theme", func(t *testing.T) {
		f := newFixture(t, AuthOptions{})
		f.signedIn(t, "s", "asha")

		_, err := f.theme.SetTheme(ctx, "s", "sepia")
		assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationFailed))
		assert.Equal(t, domain.ThemeLight, f.session(t, "s").Theme)
	})
}

func TestViewStyleDoesNotConsumeNotice(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, AuthOptions{})
	f.signedIn(t, "s", "asha")
	_, err := f.theme.SetTheme(ctx, "s", "dark")
	require.NoError(t, err)

	style, err := f.views.Style(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, style.Mode)
	assert.NotNil(t, f.session(t, "s").Notice.Pending)
}
