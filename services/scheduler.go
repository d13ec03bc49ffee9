package services

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/clublibertad/clubfees-backend/utils"
)

// Scheduler runs the periodic fee jobs: monthly generation and the overdue
// sweep. Jobs never overlap themselves; a run that is still going when the
// next tick arrives makes the tick a no-op.
type Scheduler struct {
	cron               *cron.Cron
	generation         *GenerationService
	expiration         *ExpirationService
	generationSchedule string
	sweepSchedule      string
}

// NewScheduler creates a scheduler for the fee jobs. Schedules are standard
// cron expressions.
func NewScheduler(generation *GenerationService, expiration *ExpirationService, generationSchedule, sweepSchedule string) *Scheduler {
	cronLogger := cron.PrintfLogger(log.New(os.Stdout, "cron: ", log.LstdFlags))
	c := cron.New(cron.WithChain(
		cron.Recover(cronLogger),
		cron.SkipIfStillRunning(cronLogger),
	))

	return &Scheduler{
		cron:               c,
		generation:         generation,
		expiration:         expiration,
		generationSchedule: generationSchedule,
		sweepSchedule:      sweepSchedule,
	}
}

// Start registers the jobs and starts the scheduler
func (s *Scheduler) Start() {
	if _, err := s.cron.AddFunc(s.generationSchedule, s.runGeneration); err != nil {
		log.Printf("Failed to schedule fee generation job: %v", err)
	} else {
		log.Printf("Scheduled fee generation job (%s)", s.generationSchedule)
	}

	if _, err := s.cron.AddFunc(s.sweepSchedule, s.runSweep); err != nil {
		log.Printf("Failed to schedule overdue sweep job: %v", err)
	} else {
		log.Printf("Scheduled overdue sweep job (%s)", s.sweepSchedule)
	}

	s.cron.Start()
}

// Stop gracefully stops the scheduler; the returned context is done when
// running jobs have finished
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) runGeneration() {
	if _, err := s.generation.GenerateForPeriod(utils.CurrentPeriod()); err != nil {
		log.Printf("Fee generation job failed: %v", err)
	}
}

func (s *Scheduler) runSweep() {
	if _, err := s.expiration.SweepOverdue(time.Now().UTC()); err != nil {
		log.Printf("Overdue sweep job failed: %v", err)
	}
}
