// Package scheduler provides scheduled job management using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/Belkouche/jarvis-sub000/internal/application/escalation"
	"github.com/Belkouche/jarvis-sub000/internal/shared/logger"
)

// EscalationJob runs one escalation pass over all sweepable complaints.
type EscalationJob interface {
	Sweep(ctx context.Context) ([]escalation.SweepResult, error)
}

// SchedulerManager owns the gocron scheduler and the escalation sweep job.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterEscalationJob registers the periodic complaint sweep. Singleton
// mode with reschedule means a tick arriving while a sweep is still running
// is dropped rather than queued.
func (m *SchedulerManager) RegisterEscalationJob(job EscalationJob, interval time.Duration) error {
	if interval <= 0 {
		interval = 30 * time.Minute
	}

	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			defer cancel()
			m.runSweep(ctx, job)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("escalation", "sweep"),
		gocron.WithName("escalation-sweep"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered escalation sweep job", "interval", interval)
	return nil
}

func (m *SchedulerManager) runSweep(ctx context.Context, job EscalationJob) {
	startTime := time.Now()

	results, err := job.Sweep(ctx)
	if err != nil {
		m.logger.Errorw("escalation sweep failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	var escalated, reminded, bumped, failed int
	for _, r := range results {
		switch r.Action {
		case escalation.ActionEscalated:
			escalated++
		case escalation.ActionReminded:
			reminded++
		case escalation.ActionBumped:
			bumped++
		case escalation.ActionFailed:
			failed++
		}
	}

	m.logger.Infow("escalation sweep finished",
		"complaints", len(results),
		"escalated", escalated,
		"reminded", reminded,
		"bumped", bumped,
		"failed", failed,
		"duration", time.Since(startTime),
	)
}

// Start starts the scheduler and all registered jobs.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop gracefully stops the scheduler, waiting for running jobs.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

// IsStarted returns whether the scheduler is running.
func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}
