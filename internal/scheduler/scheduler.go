// Package scheduler wires up the cron job that periodically refreshes the
// catalog while the API is serving.
package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Job is one harvest cycle.
type Job func(ctx context.Context) error

type Scheduler struct {
	cron   *cron.Cron
	spec   string
	job    Job
	logger zerolog.Logger

	wg      sync.WaitGroup
	running sync.Mutex
	// AfterRun is called after every successful cycle, e.g. to drop cached
	// API responses.
	AfterRun func(ctx context.Context)
}

// New creates a Scheduler that fires every intervalHours hours.
func New(job Job, intervalHours int, logger zerolog.Logger) (*Scheduler, error) {
	if intervalHours <= 0 {
		return nil, fmt.Errorf("scrape interval must be positive, got %d", intervalHours)
	}
	return &Scheduler{
		cron:   cron.New(),
		spec:   fmt.Sprintf("@every %dh", intervalHours),
		job:    job,
		logger: logger,
	}, nil
}

func (s *Scheduler) Spec() string { return s.spec }

// Start registers the job and starts the scheduler. One cycle also runs
// immediately so a fresh deployment has data without waiting for a tick.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.run(ctx) }); err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	s.cron.Start()
	s.logger.Info().Str("spec", s.spec).Msg("scheduler started")

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(ctx)
	}()
	return nil
}

// Stop halts the cron loop and waits for in-flight cycles.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.wg.Wait()
	s.logger.Info().Msg("scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context) {
	if !s.running.TryLock() {
		s.logger.Warn().Msg("previous harvest still running, skipping")
		return
	}
	defer s.running.Unlock()

	s.logger.Info().Msg("harvest started")
	if err := s.job(ctx); err != nil {
		s.logger.Error().Err(err).Msg("harvest failed")
		return
	}
	if s.AfterRun != nil {
		s.AfterRun(ctx)
	}
	s.logger.Info().Msg("harvest complete")
}
