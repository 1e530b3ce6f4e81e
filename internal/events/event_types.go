package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/air-quality-dashboard/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSessionSignedUp     EventType = "session_signed_up"
	EventSessionLoggedOut    EventType = "session_logged_out"
	EventSessionThemeChanged EventType = "session_theme_changed"
	EventSessionPageChanged  EventType = "session_page_changed"
	EventFeedbackSent        EventType = "feedback_sent"
	EventFeedbackFailed      EventType = "feedback_failed"
)

// AllEventTypes lists every published event type.
var AllEventTypes = []EventType{
	EventSessionSignedUp,
	EventSessionLoggedOut,
	EventSessionThemeChanged,
	EventSessionPageChanged,
	EventFeedbackSent,
	EventFeedbackFailed,
}

// Event represents something that happened to a session.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SessionID string      `json:"session_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// New stamps an event with an id and the current time.
func New(eventType EventType, sessionID string, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SessionID: sessionID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// ThemeChangedPayload payload.
type ThemeChangedPayload struct {
	Theme domain.Theme `json:"theme"`
}

// PageChangedPayload payload.
type PageChangedPayload struct {
	Page domain.Page `json:"page"`
}

// FeedbackOutcomePayload carries no feedback content, only the rating.
type FeedbackOutcomePayload struct {
	Rating int `json:"rating"`
}
