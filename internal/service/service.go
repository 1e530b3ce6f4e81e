package service

import (
	"context"
	"errors"

	"github.com/spec-kit/air-quality-dashboard/internal/events"
	"github.com/spec-kit/air-quality-dashboard/internal/repository"
	apperrors "github.com/spec-kit/air-quality-dashboard/pkg/util/errorutil"
)

func mapSessionError(err error) error {
	if errors.Is(err, repository.ErrSessionNotFound) {
		return apperrors.NewUnauthorized("session expired")
	}
	return apperrors.MapError(err)
}

// publish fires an event. Subscribers only observe, so their failures never fail the action.
func publish(ctx context.Context, dispatcher events.Dispatcher, event events.Event) {
	if dispatcher == nil {
		return
	}
	_ = dispatcher.Publish(ctx, event)
}
