package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/air-quality-dashboard/internal/api/dto"
	"github.com/spec-kit/air-quality-dashboard/internal/service"
	apperrors "github.com/spec-kit/air-quality-dashboard/pkg/util/errorutil"
)

// FeedbackHandler accepts the feedback form.
type FeedbackHandler struct {
	feedback *service.FeedbackService
}

// NewFeedbackHandler constructs handler.
func NewFeedbackHandler(feedback *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

// Submit handles POST /feedback.
func (h *FeedbackHandler) Submit(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	var req dto.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	err = h.feedback.Submit(c.UserContext(), id, service.FeedbackInput{
		Email:    req.Email,
		Feedback: req.Feedback,
		Rating:   parseRating(req.Rating),
	})
	return backToPage(c, err)
}

// parseRating applies the form default. Unparseable input becomes 0 so range
// validation rejects it.
func parseRating(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return service.DefaultRating
	}
	rating, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return rating
}
