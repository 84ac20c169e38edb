package photos

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Runner drives periodic sync runs until its context is cancelled.
//
// With fixed-rate scheduling, runs start on a fixed interval; a tick that
// arrives while a run is still in flight is skipped rather than queued.
// With fixed-delay scheduling, the interval is counted from the end of one
// run to the start of the next.
type Runner struct {
	engine *Engine
	logger *zap.Logger
}

// NewRunner creates a runner for the engine.
func NewRunner(engine *Engine, logger *zap.Logger) *Runner {
	return &Runner{engine: engine, logger: logger}
}

// Run blocks, executing sync runs per the engine's schedule configuration,
// until ctx is cancelled.
func (r *Runner) Run(ctx context.Context) {
	cfg := r.engine.cfg

	if delay := cfg.InitialDelay(); delay > 0 {
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}

	r.logger.Info("Photo sync scheduler started",
		zap.String("schedule", cfg.ScheduleType),
		zap.Duration("interval", cfg.Interval()))

	if cfg.ScheduleType == ScheduleFixedDelay {
		r.runFixedDelay(ctx, cfg.Interval())
		return
	}
	r.runFixedRate(ctx, cfg.Interval())
}

func (r *Runner) runFixedRate(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	r.engine.Sync(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, ok := r.engine.TrySync(ctx); !ok {
				r.logger.Debug("Skipping photo sync tick, previous run still in flight")
			}
		}
	}
}

func (r *Runner) runFixedDelay(ctx context.Context, interval time.Duration) {
	for {
		r.engine.Sync(ctx)
		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
		}
	}
}
