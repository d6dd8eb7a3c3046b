package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/code-hero23/peopledesk-sub002/internal/bootstrap"
	"github.com/code-hero23/peopledesk-sub002/internal/config"
	"github.com/code-hero23/peopledesk-sub002/internal/housekeeping"
	"github.com/code-hero23/peopledesk-sub002/internal/messaging/kafka/producer"
	"github.com/code-hero23/peopledesk-sub002/internal/notify"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/connection"

	"go.uber.org/zap"
)

// NewJobs merakit job housekeeping dari service yang sudah di-wire.
func NewJobs(svc *Services, cfg *config.Config, logger *zap.Logger) *housekeeping.Jobs {
	return housekeeping.NewJobs(housekeeping.Deps{
		Users:       svc.UserRepo,
		Attendance:  svc.AttendanceRepo,
		Leaves:      svc.RequestRepo,
		Breaks:      svc.Attendance,
		Outbox:      svc.Outbox,
		Invalidator: svc.Payroll,
		Audit:       bootstrap.NewStdoutAuditLogger(logger),
		Daily:       svc.AttendanceRepo,
		Mailer:      notify.NewMailer(cfg.Mail, logger),
	}, cfg.Location(), logger)
}

// RunWorker menjalankan relay outbox ke Kafka dan job terjadwal sampai menerima sinyal.
func RunWorker(cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	infra, err := Connect(cfg, true)
	if err != nil {
		return err
	}
	defer infra.Close()

	svc, err := NewServices(infra, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Kafka.Broker != "" {
		kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, cfg.Database.MaxRetries)
		if err != nil {
			return err
		}
		defer kafkaWriter.Close()

		go producer.ProcessOutboxEvents(
			ctx,
			svc.Outbox,
			kafkaWriter,
			logger,
			cfg.Kafka.PollInterval,
		)
	} else {
		logger.Warn("KAFKA_BROKER kosong, outbox relay tidak dijalankan")
	}

	scheduler, err := housekeeping.NewScheduler(ctx, NewJobs(svc, cfg, logger))
	if err != nil {
		return err
	}
	scheduler.Start()
	logger.Info("housekeeping scheduler started", zap.Int("jobs", len(scheduler.Entries())))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()
	<-scheduler.Stop().Done()

	return nil
}
