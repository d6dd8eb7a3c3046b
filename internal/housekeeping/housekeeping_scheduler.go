package housekeeping

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	SpecStaleBreaks = "5 0 * * *"
	SpecAbsence     = "0 1 * * *"
	SpecOutbox      = "30 2 * * *"
	// SpecCheckoutReminder: 23:30 waktu bisnis, sebelum batas check-out 23:59.
	SpecCheckoutReminder = "30 23 * * *"

	jobTimeout = 10 * time.Minute
)

// cronLogger menjembatani cron.Logger ke zap.
type cronLogger struct {
	s *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, append(keysAndValues, "error", err)...)
}

// NewScheduler mendaftarkan job harian di zona waktu bisnis. Panggil Start/Stop dari pemanggil.
func NewScheduler(ctx context.Context, jobs *Jobs) (*cron.Cron, error) {
	cl := cronLogger{s: jobs.logger.Named("cron").Sugar()}
	c := cron.New(
		cron.WithLocation(jobs.loc),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)

	entries := []struct {
		spec string
		name string
		run  func(context.Context, time.Time) error
	}{
		{SpecStaleBreaks, "stale_breaks", func(ctx context.Context, now time.Time) error {
			_, err := jobs.SweepStaleBreaks(ctx, now)
			return err
		}},
		{SpecAbsence, "absence_block", func(ctx context.Context, now time.Time) error {
			_, err := jobs.BlockAbsentees(ctx, now)
			return err
		}},
		{SpecOutbox, "outbox_purge", func(ctx context.Context, now time.Time) error {
			_, err := jobs.PurgeOutbox(ctx, now)
			return err
		}},
		{SpecCheckoutReminder, "checkout_reminder", func(ctx context.Context, now time.Time) error {
			_, err := jobs.RemindMissingCheckouts(ctx, now)
			return err
		}},
	}

	for _, e := range entries {
		if _, err := c.AddFunc(e.spec, func() {
			runCtx, cancel := context.WithTimeout(ctx, jobTimeout)
			defer cancel()
			if err := e.run(runCtx, time.Now()); err != nil {
				jobs.logger.Warn("scheduled job failed", zap.String("job", e.name), zap.Error(err))
			}
		}); err != nil {
			return nil, err
		}
	}
	return c, nil
}
