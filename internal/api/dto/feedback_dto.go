package dto

// FeedbackRequest is the feedback form. Rating arrives as text and may be absent.
type FeedbackRequest struct {
	Email    string `form:"email" json:"email"`
	Feedback string `form:"feedback" json:"feedback"`
	Rating   string `form:"rating" json:"rating"`
}
