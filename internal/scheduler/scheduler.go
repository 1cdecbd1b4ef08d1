package scheduler

import (
	"fmt"
	"time"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/jobs"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/logger"
	"github.com/robfig/cron/v3"
)

// Schedules holds one cron expression (with seconds) per job.
type Schedules struct {
	PromoteNotifications string
}

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler registers every job. A run still in progress when its next
// tick arrives makes that tick a no-op.
func NewScheduler(jobRunner *jobs.JobRunner, schedules Schedules) (*Scheduler, error) {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	if err := s.registerJobs(schedules); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) registerJobs(schedules Schedules) error {
	if _, err := s.cron.AddFunc(schedules.PromoteNotifications, s.jobs.PromoteNotifications); err != nil {
		return fmt.Errorf("registering %s job: %w", jobs.PromoteNotificationsJob, err)
	}
	logger.Info("Cron jobs registered", "jobs", len(s.cron.Entries()))
	return nil
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Info("Cron scheduler started")
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}

// Next returns when each registered job fires next.
func (s *Scheduler) Next() []time.Time {
	entries := s.cron.Entries()
	out := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Next)
	}
	return out
}
