// Package scheduler drives the periodic triggers. Interval triggers fire
// immediately on startup and then on every tick; cron triggers fire at
// their expression times in UTC. Each trigger run is recorded as a
// scheduled task row.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	cronlib "github.com/robfig/cron/v3"

	"content_orchestrator/internal/domain"
)

// cronParser parses standard 5-field cron expressions (minute, hour,
// dom, month, dow).
var cronParser = cronlib.NewParser(
	cronlib.Minute | cronlib.Hour | cronlib.Dom | cronlib.Month | cronlib.Dow,
)

// Runner is one sweep. The returned summary is stored on the task row.
type Runner interface {
	Run(ctx context.Context) (string, error)
}

// TaskStore records trigger runs.
type TaskStore interface {
	Start(ctx context.Context, taskType string, startedAt time.Time) (int64, error)
	Finish(ctx context.Context, id int64, status domain.TaskStatus, resultSummary, errorMessage string) error
}

// Metrics is the optional metrics hook; nil disables it.
type Metrics interface {
	RecordSweepRun(trigger string, failed bool, duration time.Duration)
}

type trigger struct {
	name      string
	runner    Runner
	interval  time.Duration
	schedules []cronlib.Schedule
	timeout   time.Duration
	running   sync.Mutex
}

type Scheduler struct {
	tasks    TaskStore
	metrics  Metrics
	triggers []*trigger
	logger   *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(tasks TaskStore, metrics Metrics, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		tasks:   tasks,
		metrics: metrics,
		logger:  logger.With("component", "scheduler"),
	}
}

// Every registers an interval trigger. The run context carries the
// interval as its deadline so a slow sweep cannot pile onto the next
// tick.
func (s *Scheduler) Every(name string, interval time.Duration, r Runner) {
	s.triggers = append(s.triggers, &trigger{
		name:     name,
		runner:   r,
		interval: interval,
		timeout:  interval,
	})
}

// Cron registers a trigger firing at each of the given cron expressions,
// evaluated in UTC.
func (s *Scheduler) Cron(name string, exprs []string, r Runner) error {
	if len(exprs) == 0 {
		return fmt.Errorf("trigger %s: no cron expressions", name)
	}

	schedules := make([]cronlib.Schedule, 0, len(exprs))
	for _, expr := range exprs {
		sched, err := cronParser.Parse(expr)
		if err != nil {
			return fmt.Errorf("trigger %s: parse %q: %w", name, expr, err)
		}
		schedules = append(schedules, sched)
	}

	s.triggers = append(s.triggers, &trigger{
		name:      name,
		runner:    r,
		schedules: schedules,
		timeout:   time.Hour,
	})
	return nil
}

// Start launches one goroutine per trigger.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	for _, t := range s.triggers {
		s.wg.Add(1)
		if t.interval > 0 {
			go s.intervalLoop(ctx, t)
		} else {
			go s.cronLoop(ctx, t)
		}
	}

	s.logger.Info("scheduler started", "triggers", len(s.triggers))
}

// Stop cancels all trigger loops and waits for them to exit.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) intervalLoop(ctx context.Context, t *trigger) {
	defer s.wg.Done()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	// First pass right away so a restart does not wait a full interval.
	s.execute(ctx, t)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.execute(ctx, t)
		}
	}
}

func (s *Scheduler) cronLoop(ctx context.Context, t *trigger) {
	defer s.wg.Done()

	for {
		now := time.Now().UTC()
		next := t.nextRun(now)

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			s.execute(ctx, t)
		}
	}
}

// nextRun returns the earliest upcoming fire time across the trigger's
// cron expressions.
func (t *trigger) nextRun(after time.Time) time.Time {
	var next time.Time
	for _, sched := range t.schedules {
		n := sched.Next(after)
		if next.IsZero() || n.Before(next) {
			next = n
		}
	}
	return next
}

// execute runs the trigger once, bookending it with a scheduled task
// row. Overlapping fires of the same trigger are dropped.
func (s *Scheduler) execute(ctx context.Context, t *trigger) {
	if !t.running.TryLock() {
		s.logger.Warn("previous run still in progress, skipping", "trigger", t.name)
		return
	}
	defer t.running.Unlock()

	start := time.Now().UTC()
	taskID, err := s.tasks.Start(ctx, t.name, start)
	if err != nil {
		s.logger.Error("task bookkeeping failed", "trigger", t.name, "error", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	summary, runErr := t.runner.Run(runCtx)

	if s.metrics != nil {
		s.metrics.RecordSweepRun(t.name, runErr != nil, time.Since(start))
	}

	if taskID != 0 {
		status := domain.TaskCompleted
		errMsg := ""
		if runErr != nil {
			status = domain.TaskFailed
			errMsg = runErr.Error()
		}
		if err := s.tasks.Finish(ctx, taskID, status, summary, errMsg); err != nil {
			s.logger.Error("task bookkeeping failed", "trigger", t.name, "error", err)
		}
	}

	if runErr != nil {
		s.logger.Error("trigger run failed", "trigger", t.name, "error", runErr)
		return
	}
	s.logger.Info("trigger run complete", "trigger", t.name, "summary", summary)
}
