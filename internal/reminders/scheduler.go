package reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// NextRun calculates the next run time after "from" for a standard 5-field cron expression
func NextRun(cronExpr string, from time.Time) (time.Time, error) {
	schedule, err := cron.ParseStandard(cronExpr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid cron expression %q: %w", cronExpr, err)
	}
	return schedule.Next(from), nil
}

// Scheduler runs the reminder fan-out on a cron schedule in UTC
type Scheduler struct {
	cron     *cron.Cron
	enqueuer *Enqueuer
	logger   *zap.Logger
	timeout  time.Duration
}

// NewScheduler creates a new reminder scheduler for "cronExpr"
func NewScheduler(cronExpr string, enqueuer *Enqueuer, logger *zap.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		enqueuer: enqueuer,
		logger:   logger,
		timeout:  5 * time.Minute,
	}
	if _, err := s.cron.AddFunc(cronExpr, s.run); err != nil {
		return nil, fmt.Errorf("invalid cron expression %q: %w", cronExpr, err)
	}
	return s, nil
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
	for _, entry := range s.cron.Entries() {
		s.logger.Info("Reminder scheduler started", zap.Time("next_run", entry.Next))
	}
}

// Stop stops the scheduler and waits for a running fan-out to finish
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("Reminder scheduler stopped")
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if _, err := s.enqueuer.EnqueueAll(ctx); err != nil {
		s.logger.Error("Failed to enqueue review reminders", zap.Error(err))
	}
}
