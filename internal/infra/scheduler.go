package infra

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// DefaultRefreshTimeout bounds a single scheduled refresh
const DefaultRefreshTimeout = 15 * time.Second

// Refresher is anything that can refresh itself from upstream
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Scheduler periodically refreshes the dashboard data
type Scheduler struct {
	cron      *cron.Cron
	refresher Refresher
	schedule  string
	timeout   time.Duration
	logger    zerolog.Logger
}

// NewScheduler creates a new scheduler. schedule accepts standard cron specs
// and descriptors such as "@every 30s".
func NewScheduler(refresher Refresher, schedule string, logger zerolog.Logger) *Scheduler {
	cronLogger := cron.PrintfLogger(&logger)
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		refresher: refresher,
		schedule:  schedule,
		timeout:   DefaultRefreshTimeout,
		logger:    logger,
	}
}

// Start registers the refresh job and starts the scheduler
func (s *Scheduler) Start() error {
	s.logger.Info().Str("schedule", s.schedule).Msg("Starting dashboard refresh scheduler...")

	_, err := s.cron.AddFunc(s.schedule, func() {
		if err := s.RunNow(); err != nil {
			s.logger.Warn().Err(err).Msg("Scheduled dashboard refresh failed")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info().Msg("[OK] Scheduler started successfully")
	return nil
}

// RunNow performs one refresh immediately
func (s *Scheduler) RunNow() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	return s.refresher.Refresh(ctx)
}

// Stop stops the scheduler and waits for a running refresh to finish
func (s *Scheduler) Stop() {
	s.logger.Info().Msg("Stopping scheduler...")
	<-s.cron.Stop().Done()
	s.logger.Info().Msg("[OK] Scheduler stopped")
}

// Schedule returns the configured schedule
func (s *Scheduler) Schedule() string {
	return s.schedule
}
