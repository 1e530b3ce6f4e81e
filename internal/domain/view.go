package domain

// View is the screen rendered for a session: the sign-up gate or one of the four pages.
type View int

const (
	ViewSignUp View = iota
	ViewHome
	ViewDashboard
	ViewInsights
	ViewFeedback
)

func (v View) String() string {
	switch v {
	case ViewSignUp:
		return "signup"
	case ViewHome:
		return "home"
	case ViewDashboard:
		return "dashboard"
	case ViewInsights:
		return "insights"
	case ViewFeedback:
		return "feedback"
	}
	return "unknown"
}

// Resolve picks the view for a session. Unauthenticated sessions always get the sign-up view.
func Resolve(s *Session) View {
	if s == nil || !s.Authenticated {
		return ViewSignUp
	}
	switch s.CurrentPage() {
	case PageDashboard:
		return ViewDashboard
	case PageInsights:
		return ViewInsights
	case PageFeedback:
		return ViewFeedback
	default:
		return ViewHome
	}
}
