package worker

import (
	"github.com/spec-kit/air-quality-dashboard/internal/service"
)

// StartActivityWorker registers the activity handlers on the event dispatcher.
func StartActivityWorker(activity *service.ActivityService) {
	if activity == nil {
		return
	}
	activity.RegisterHandlers()
}
