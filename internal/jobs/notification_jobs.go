package jobs

import (
	"context"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/logger"
)

const PromoteNotificationsJob = "promote-notifications"

// PromoteNotifications turns due rent reminders into dashboard notifications.
func (jr *JobRunner) PromoteNotifications() {
	_ = jr.promoteNotifications()
}

func (jr *JobRunner) promoteNotifications() error {
	return jr.runWithRecovery(PromoteNotificationsJob, func(ctx context.Context) error {
		report, err := jr.notifications.Promote(ctx)
		if err != nil {
			return err
		}
		if report.Failed > 0 {
			logger.Warn("Some reminders were not promoted", "failed", report.Failed, "promoted", report.Promoted)
		}
		return nil
	})
}
