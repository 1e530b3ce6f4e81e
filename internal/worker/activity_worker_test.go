package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/air-quality-dashboard/internal/domain"
	"github.com/spec-kit/air-quality-dashboard/internal/events"
	"github.com/spec-kit/air-quality-dashboard/internal/service"
)

type countingRecorder map[string]int

func (r countingRecorder) RecordEvent(eventType string) { r[eventType]++ }

func TestStartActivityWorker(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	dispatcher := events.NewInMemoryDispatcher()
	recorder := countingRecorder{}

	StartActivityWorker(service.NewActivityService(dispatcher, zap.New(core), recorder))

	ctx := context.Background()
	require.NoError(t, dispatcher.Publish(ctx, events.New(events.EventFeedbackSent, "s1", events.FeedbackOutcomePayload{Rating: 4})))
	require.NoError(t, dispatcher.Publish(ctx, events.New(events.EventSessionThemeChanged, "s1", events.ThemeChangedPayload{Theme: domain.ThemeDark})))
	require.NoError(t, dispatcher.Publish(ctx, events.New(events.EventFeedbackFailed, "s1", events.FeedbackOutcomePayload{Rating: 2})))

	assert.Equal(t, 1, recorder[string(events.EventFeedbackSent)])
	assert.Equal(t, 1, recorder[string(events.EventSessionThemeChanged)])
	assert.Equal(t, 1, recorder[string(events.EventFeedbackFailed)])

	sent := logs.FilterMessage(string(events.EventFeedbackSent)).All()
	require.Len(t, sent, 1)
	assert.Equal(t, int64(4), sent[0].ContextMap()["rating"])
	assert.Equal(t, "s1", sent[0].ContextMap()["session_id"])

	failed := logs.FilterMessage(string(events.EventFeedbackFailed)).All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.WarnLevel, failed[0].Level)
}

func TestStartActivityWorkerNil(t *testing.T) {
	assert.NotPanics(t, func() { StartActivityWorker(nil) })
}
