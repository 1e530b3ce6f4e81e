package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/air-quality-dashboard/internal/events"
)

// EventRecorder counts events; observability.Metrics satisfies it.
type EventRecorder interface {
	RecordEvent(eventType string)
}

// ActivityService observes session events for logs and metrics. It never sees
// feedback content or passwords.
type ActivityService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	recorder   EventRecorder
}

// NewActivityService creates the service.
func NewActivityService(dispatcher events.Dispatcher, logger *zap.Logger, recorder EventRecorder) *ActivityService {
	return &ActivityService{
		dispatcher: dispatcher,
		logger:     logger,
		recorder:   recorder,
	}
}

// RegisterHandlers subscribes to events.
func (a *ActivityService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	for _, eventType := range events.AllEventTypes {
		a.dispatcher.Subscribe(eventType, a.handle)
	}
}

func (a *ActivityService) handle(_ context.Context, event events.Event) error {
	if a.recorder != nil {
		a.recorder.RecordEvent(string(event.Type))
	}
	fields := []zap.Field{
		zap.String("event_id", event.ID),
		zap.String("session_id", event.SessionID),
	}
	switch p := event.Payload.(type) {
	case events.ThemeChangedPayload:
		fields = append(fields, zap.String("theme", string(p.Theme)))
	case events.PageChangedPayload:
		fields = append(fields, zap.String("page", string(p.Page)))
	case events.FeedbackOutcomePayload:
		fields = append(fields, zap.Int("rating", p.Rating))
	}
	if event.Type == events.EventFeedbackFailed {
		a.logger.Warn(string(event.Type), fields...)
		return nil
	}
	a.logger.Info(string(event.Type), fields...)
	return nil
}
