package domain

import "fmt"

// FeedbackSubject is the subject line of every feedback email.
const FeedbackSubject = "New Feedback Received"

// FeedbackSubmission is built at submit time and handed straight to the mail transport.
type FeedbackSubmission struct {
	ReporterUsername string
	ReporterEmail    string
	Rating           int
	Body             string
}

// MessageBody renders the plain-text email body.
func (f FeedbackSubmission) MessageBody() string {
	return fmt.Sprintf("Feedback from %s (%s):\n\nRating: %d ⭐\n\n%s",
		f.ReporterUsername, f.ReporterEmail, f.Rating, f.Body)
}
