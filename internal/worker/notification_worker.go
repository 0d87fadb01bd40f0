package worker

import (
	"go.uber.org/zap"

	"github.com/spec-kit/nagarseva/internal/service"
)

// StartNotificationWorker subscribes the bell feed to issue events.
func StartNotificationWorker(notificationService *service.NotificationService, logger *zap.Logger) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
	if logger != nil {
		logger.Debug("notification handlers registered")
	}
}
