package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/spec-kit/air-quality-dashboard/internal/domain"
	"github.com/spec-kit/air-quality-dashboard/internal/events"
	"github.com/spec-kit/air-quality-dashboard/internal/mail"
	"github.com/spec-kit/air-quality-dashboard/internal/notice"
	"github.com/spec-kit/air-quality-dashboard/internal/repository"
	apperrors "github.com/spec-kit/air-quality-dashboard/pkg/util/errorutil"
)

// Rating bounds of the feedback form.
const (
	MinRating     = 1
	MaxRating     = 5
	DefaultRating = MaxRating
)

const (
	msgEmailRequired    = "Please enter your email before submitting."
	msgFeedbackRequired = "Please enter your feedback before submitting."
	msgRatingRange      = "Rating must be between 1 and 5."
	msgFeedbackThanks   = "Thank you for your feedback!"
	transportErrPrefix  = "Error sending feedback"
)

// FeedbackInput is the submitted form. Fields are checked in declaration order.
type FeedbackInput struct {
	Email    string `validate:"required"`
	Feedback string `validate:"required"`
	Rating   int    `validate:"min=1,max=5"`
}

var validationMessages = map[string]string{
	"Email":    msgEmailRequired,
	"Feedback": msgFeedbackRequired,
	"Rating":   msgRatingRange,
}

// FeedbackService validates submissions and forwards them to the mailbox.
type FeedbackService struct {
	sessions   repository.SessionRepository
	transport  mail.Transport
	dispatcher events.Dispatcher
	validate   *validator.Validate
	noticeTTL  time.Duration
}

// NewFeedbackService builds the service.
func NewFeedbackService(sessions repository.SessionRepository, transport mail.Transport, dispatcher events.Dispatcher, noticeTTL time.Duration) *FeedbackService {
	return &FeedbackService{
		sessions:   sessions,
		transport:  transport,
		dispatcher: dispatcher,
		validate:   validator.New(),
		noticeTTL:  noticeTTL,
	}
}

// Submit validates the input, emails it and posts the outcome as a notice. Validation
// and transport failures are returned as domain errors after the notice is posted.
func (s *FeedbackService) Submit(ctx context.Context, sessionID string, in FeedbackInput) error {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return mapSessionError(err)
	}
	if !session.Authenticated {
		return apperrors.NewUnauthorized("sign up required")
	}

	if msg := s.firstViolation(in); msg != "" {
		s.postNotice(ctx, sessionID, notice.Warning("⚠️ "+msg, s.noticeTTL))
		return apperrors.NewValidationError(msg, nil)
	}

	submission := domain.FeedbackSubmission{
		ReporterUsername: session.Username,
		ReporterEmail:    in.Email,
		Rating:           in.Rating,
		Body:             in.Feedback,
	}
	payload := events.FeedbackOutcomePayload{Rating: in.Rating}

	if err := s.send(ctx, submission); err != nil {
		terr := apperrors.NewTransportError(transportErrPrefix, err)
		s.postNotice(ctx, sessionID, notice.Error("❌ "+apperrors.ToDomainError(terr).Message, s.noticeTTL))
		publish(ctx, s.dispatcher, events.New(events.EventFeedbackFailed, sessionID, payload))
		return terr
	}

	s.postNotice(ctx, sessionID, notice.Success("✅ "+msgFeedbackThanks, s.noticeTTL))
	publish(ctx, s.dispatcher, events.New(events.EventFeedbackSent, sessionID, payload))
	return nil
}

func (s *FeedbackService) firstViolation(in FeedbackInput) string {
	check := in
	check.Email = strings.TrimSpace(in.Email)
	check.Feedback = strings.TrimSpace(in.Feedback)

	err := s.validate.Struct(check)
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := validationMessages[verrs[0].StructField()]; ok {
			return msg
		}
	}
	return err.Error()
}

// send delivers the submission. A panicking transport is reported like any other failure.
func (s *FeedbackService) send(ctx context.Context, submission domain.FeedbackSubmission) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("mail transport panic: %v", r)
		}
	}()
	return s.transport.Send(ctx, mail.Message{
		Subject: domain.FeedbackSubject,
		Body:    submission.MessageBody(),
	})
}

func (s *FeedbackService) postNotice(ctx context.Context, sessionID string, n notice.Notice) {
	_, _ = s.sessions.Update(ctx, sessionID, func(sess *domain.Session) error {
		sess.Notice.Post(n)
		return nil
	})
}
