package job

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// cronLogger adapts zap to cron.Logger
type cronLogger struct {
	logger *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Errorw(msg, append(keysAndValues, "error", err)...)
}

// Scheduler runs background jobs on cron schedules. A job still running when its
// next tick fires is skipped, and a panicking job is logged instead of crashing.
type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
}

// NewScheduler creates a stopped scheduler
func NewScheduler(logger *zap.Logger) *Scheduler {
	cl := cronLogger{logger: logger.Sugar()}
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		logger: logger,
	}
}

// Add registers job under a standard five-field schedule or a descriptor such as "@every 10m"
func (s *Scheduler) Add(name, schedule string, job cron.Job) error {
	if _, err := s.cron.AddJob(schedule, job); err != nil {
		return err
	}
	s.logger.Info("Scheduled job", zap.String("job", name), zap.String("schedule", schedule))
	return nil
}

// Start runs the scheduler in its own goroutine
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and waits for running jobs until ctx is done
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.logger.Warn("Timed out waiting for running jobs")
	}
}
