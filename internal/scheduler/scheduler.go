package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ErrInvalidInterval = errors.New("job interval must be positive")

// Runner runs periodic jobs. A job still running when its next activation
// comes is skipped, and a panicking job is logged without stopping the others.
type Runner struct {
	cron    *cron.Cron
	logs    *zap.SugaredLogger
	baseCtx context.Context
	cancel  context.CancelFunc
}

func New(logger *zap.SugaredLogger) *Runner {
	adapter := cronLogger{logs: logger}
	ctx, cancel := context.WithCancel(context.Background())
	return &Runner{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(adapter),
			cron.WithChain(cron.Recover(adapter), cron.SkipIfStillRunning(adapter)),
		),
		logs:    logger,
		baseCtx: ctx,
		cancel:  cancel,
	}
}

// Every registers job to run each interval. The context passed to job is
// cancelled by Stop.
func (r *Runner) Every(name string, interval time.Duration, job func(context.Context)) (cron.EntryID, error) {
	if interval <= 0 {
		return 0, fmt.Errorf("%w: %s %s", ErrInvalidInterval, name, interval)
	}

	id, err := r.cron.AddFunc("@every "+interval.String(), func() {
		if r.baseCtx.Err() != nil {
			return
		}
		started := time.Now()
		job(r.baseCtx)
		r.logs.Debugw("job finished", "job", name, "took", time.Since(started))
	})
	if err != nil {
		return 0, fmt.Errorf("schedule %s: %w", name, err)
	}

	r.logs.Infow("job scheduled", "job", name, "interval", interval)
	return id, nil
}

func (r *Runner) Start() {
	r.logs.Infow("scheduler started", "jobs", len(r.cron.Entries()))
	r.cron.Start()
}

// Stop cancels running jobs and waits for them to return.
func (r *Runner) Stop() {
	r.cancel()
	<-r.cron.Stop().Done()
	r.logs.Infow("scheduler stopped")
}

type cronLogger struct {
	logs *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logs.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logs.Errorw(msg, append(keysAndValues, "error", err)...)
}
