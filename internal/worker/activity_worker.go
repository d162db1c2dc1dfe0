package worker

import (
	"github.com/offline-ticketing/ticketing-service/internal/service"
)

// StartActivityWorker registers the activity log handlers.
func StartActivityWorker(activityService *service.ActivityService) {
	if activityService == nil {
		return
	}
	activityService.RegisterHandlers()
}
