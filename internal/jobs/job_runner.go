package jobs

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/logger"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/service"
)

const jobTimeout = 2 * time.Minute

// Promoter promotes due reminders into visible notifications.
type Promoter interface {
	Promote(ctx context.Context) (service.PromotionReport, error)
}

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	notifications Promoter
	timeout       time.Duration
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(notifications Promoter) *JobRunner {
	return &JobRunner{notifications: notifications, timeout: jobTimeout}
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
			err = fmt.Errorf("job %s panicked: %v", jobName, r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), jr.timeout)
	defer cancel()

	logger.Info("Starting job", "job", jobName)
	if err := jobFunc(ctx); err != nil {
		logger.Error("Job failed", "job", jobName, "error", err)
		return err
	}
	logger.Info("Job completed", "job", jobName)
	return nil
}

// Names lists the jobs Run accepts.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

var registry = map[string]func(*JobRunner) error{
	PromoteNotificationsJob: (*JobRunner).promoteNotifications,
}

// Run executes one job by name, for manual runs outside the scheduler.
func (jr *JobRunner) Run(name string) error {
	job, ok := registry[name]
	if !ok {
		return fmt.Errorf("unknown job %q (known: %v)", name, Names())
	}
	return job(jr)
}
