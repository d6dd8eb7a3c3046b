package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/code-hero23/peopledesk-sub002/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader dipenuhi oleh *kafkago.Reader dengan consumer group.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type SummaryInvalidator interface {
	InvalidateUser(ctx context.Context, userID string) error
}

var ErrMalformedEvent = errors.New("malformed request_decided event")

// ConsumeRequestDecided membuang cache ringkasan gaji milik pemohon setiap kali
// sebuah request final. Pesan yang gagal diproses tidak di-commit sehingga akan dibaca ulang.
func ConsumeRequestDecided(
	ctx context.Context,
	reader MessageReader,
	invalidator SummaryInvalidator,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.request_decided")
	log.Info("request decided consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("request decided consumer stopped")
				return
			}
			log.Error("fetch request decided message failed", zap.Error(err))
			continue
		}

		event, err := HandleRequestDecided(ctx, msg, invalidator)
		if err != nil {
			if errors.Is(err, ErrMalformedEvent) {
				log.Error("decode request_decided event failed", zap.Error(err))
				_ = reader.CommitMessages(ctx, msg)
				continue
			}
			log.Error("invalidate payroll summary failed",
				zap.String("user_id", event.UserID),
				zap.String("record_id", event.RecordID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit request decided message failed", zap.Error(err))
			continue
		}

		log.Info("payroll summary invalidated from request_decided event",
			zap.String("user_id", event.UserID),
			zap.String("record_id", event.RecordID),
			zap.String("kind", event.Kind),
			zap.String("status", event.Status),
		)
	}
}

func HandleRequestDecided(ctx context.Context, msg kafkago.Message, invalidator SummaryInvalidator) (events.RequestDecidedEvent, error) {
	var event events.RequestDecidedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return event, errors.Join(ErrMalformedEvent, err)
	}
	if event.UserID == "" {
		return event, ErrMalformedEvent
	}
	return event, invalidator.InvalidateUser(ctx, event.UserID)
}
