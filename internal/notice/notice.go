// Package notice models one-shot messages that are shown to the user once and
// then cleared after a display duration.
package notice

import "time"

// Kind classifies how a notice is presented.
type Kind string

const (
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Notice is a transient message with the duration it stays on screen.
type Notice struct {
	Kind     Kind          `json:"kind"`
	Text     string        `json:"text"`
	Duration time.Duration `json:"duration"`
}

// New builds a notice. A non-positive duration keeps it on screen until the next render.
func New(kind Kind, text string, d time.Duration) Notice {
	if d < 0 {
		d = 0
	}
	return Notice{Kind: kind, Text: text, Duration: d}
}

func Success(text string, d time.Duration) Notice { return New(KindSuccess, text, d) }

func Warning(text string, d time.Duration) Notice { return New(KindWarning, text, d) }

func Error(text string, d time.Duration) Notice { return New(KindError, text, d) }

// DismissAfterMillis is the delay after which the page clears the notice; zero means never.
func (n Notice) DismissAfterMillis() int64 {
	return n.Duration.Milliseconds()
}

// Slot holds at most one pending notice. Posting replaces, taking clears.
type Slot struct {
	Pending *Notice `json:"pending,omitempty"`
}

// Post replaces any pending notice.
func (s *Slot) Post(n Notice) {
	s.Pending = &n
}

// Take returns the pending notice and clears the slot.
func (s *Slot) Take() (Notice, bool) {
	if s.Pending == nil {
		return Notice{}, false
	}
	n := *s.Pending
	s.Pending = nil
	return n, true
}
