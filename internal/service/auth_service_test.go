package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/air-quality-dashboard/internal/domain"
	"github.com/spec-kit/air-quality-dashboard/internal/events"
	"github.com/spec-kit/air-quality-dashboard/internal/notice"
	apperrors "github.com/spec-kit/air-quality-dashboard/pkg/util/errorutil"
)

func TestSignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("non-empty credentials authenticate", func(t *testing.T) {
		pairs := [][2]string{{"asha", "pw"}, {" ", " "}, {"<b>x</b>", "1"}}
		for _, p := range pairs {
			f := newFixture(t, AuthOptions{})
			f.newSession(t, "s")

			sess, err := f.auth.SignUp(ctx, "s", p[0], p[1])
			require.NoError(t, err)
			assert.True(t, sess.Authenticated)
			assert.Equal(t, p[0], sess.Username, "username is stored verbatim")

			require.NotNil(t, sess.Notice.Pending)
			assert.Equal(t, notice.KindSuccess, sess.Notice.Pending.Kind)
			assert.Contains(t, sess.Notice.Pending.Text, "Welcome, "+p[0]+"! Successfully signed in!")
			assert.Equal(t, noticeTTL, sess.Notice.Pending.Duration)
			assert.Equal(t, []events.EventType{events.EventSessionSignedUp}, f.events.Types())
		}
	})

	t.Run("empty field leaves state unchanged and warns", func(t *testing.T) {
		pairs := [][2]string{{"", "pw"}, {"asha", ""}, {"", ""}}
		for _, p := range pairs {
			f := newFixture(t, AuthOptions{})
			f.newSession(t, "s")

			_, err := f.auth.SignUp(ctx, "s", p[0], p[1])
			require.Error(t, err)
			assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationFailed))

			sess := f.session(t, "s")
			assert.False(t, sess.Authenticated)
			assert.Empty(t, sess.Username)
			require.NotNil(t, sess.Notice.Pending)
			assert.Equal(t, notice.KindWarning, sess.Notice.Pending.Kind)
			assert.Contains(t, sess.Notice.Pending.Text, "Please fill in both fields.")
			assert.Empty(t, f.events.Types())
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		f := newFixture(t, AuthOptions{})
		_, err := f.auth.SignUp(ctx, "missing", "a", "b")
		assert.True(t, apperrors.IsCode(err, apperrors.CodeUnauthorized))
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps username and page by default", func(t *testing.T) {
		f := newFixture(t, AuthOptions{})
		f.signedIn(t, "s", "asha")
		_, err := f.nav.Navigate(ctx, "s", "insights")
		require.NoError(t, err)

		sess, err := f.auth.Logout(ctx, "s")
		require.NoError(t, err)
		assert.False(t, sess.Authenticated)
		assert.Equal(t, "asha", sess.Username)
		assert.Equal(t, domain.PageInsights, sess.Page)
		assert.Equal(t, domain.ViewSignUp, domain.Resolve(sess))
	})

	t.Run("clears username when configured", func(t *testing.T) {
		f := newFixture(t, AuthOptions{ClearUsernameOnLogout: true})
		f.signedIn(t, "s", "asha")

		sess, err := f.auth.Logout(ctx, "s")
		require.NoError(t, err)
		assert.Empty(t, sess.Username)
	})
}
