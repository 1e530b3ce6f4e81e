package observability

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/air-quality-dashboard/internal/config"
)

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(config.LoggerConfig{Level: "not-a-level"}, config.AppConfig{Name: "aq", Env: "development"})
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestMetrics(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/", "GET", 200, 10*time.Millisecond)
	m.RecordRequest("/", "GET", 200, 10*time.Millisecond)
	m.RecordError("/feedback", "POST", "TRANSPORT_FAILED")
	m.RecordEvent("feedback_sent")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestTotal.WithLabelValues("/", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errorTotal.WithLabelValues("/feedback", "POST", "TRANSPORT_FAILED")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.eventTotal.WithLabelValues("feedback_sent")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.True(t, strings.Contains(rec.Body.String(), "session_events_total"))
}

func TestNilMetricsAreNoops(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "X")
	m.RecordEvent("x")
}

func TestRequestLoggerRecordsRoutePattern(t *testing.T) {
	m := NewMetrics()
	app := fiber.New()
	app.Use(RequestLogger(zap.NewNop(), m, func(error) int { return http.StatusTeapot }))
	app.Get("/charts/:chart", func(c *fiber.Ctx) error { return c.SendString(c.Params("chart")) })
	app.Get("/fail", func(c *fiber.Ctx) error { return errors.New("nope") })

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/charts/cities", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestTotal.WithLabelValues("/charts/:chart", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestTotal.WithLabelValues("/fail", "GET", "418")))
}
