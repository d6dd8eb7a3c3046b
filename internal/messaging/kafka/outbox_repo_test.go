package kafka_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOutbox(t *testing.T) (kafka.OutboxRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return kafka.NewOutboxRepository(db), mock
}

func validEvent() kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            "0b9cf5f5-3c53-4a53-8f2e-6b0c1f63c0a1",
		RequestID:     "rid-1",
		AggregateType: "request",
		AggregateID:   "7d6c5b4a-3c53-4a53-8f2e-6b0c1f63c0a1",
		EventType:     "request_decided",
		Topic:         "hr.request.decided.v1",
		Payload:       []byte(`{"status":"APPROVED"}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestOutboxRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("inside caller transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		ev := validEvent()
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
			WithArgs(ev.ID, ev.RequestID, ev.AggregateType, ev.AggregateID, ev.EventType, ev.Topic, ev.Payload, ev.Status).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := db.BeginTx(ctx, nil)
		require.NoError(t, err)
		require.NoError(t, kafka.NewOutboxRepository(db).WithTx(tx).Create(ctx, ev))
		require.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative invalid event is not written", func(t *testing.T) {
		repo, _ := newOutbox(t)
		ev := validEvent()
		ev.Payload = nil
		assert.Error(t, repo.Create(ctx, ev))
	})
}

func TestOutboxRepository_ListPending(t *testing.T) {
	repo, mock := newOutbox(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count", "next_retry_at",
	}).AddRow("e1", "rid", "request", "a1", "request_decided", "hr.request.decided.v1", []byte(`{}`), "failed", 2, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM outbox_events")).
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, kafka.MaxOutboxRetries, 50).
		WillReturnRows(rows)

	events, err := repo.ListPending(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "e1", events[0].ID)
	assert.Equal(t, 2, events[0].RetryCount)
}

func TestOutboxRepository_MarkAndPurge(t *testing.T) {
	ctx := context.Background()
	repo, mock := newOutbox(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events")).
		WithArgs("e1", kafka.OutboxStatusSent).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("retry_count = retry_count + 1")).
		WithArgs("e2", kafka.OutboxStatusFailed, "broker down").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM outbox_events")).
		WithArgs(kafka.OutboxStatusSent, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.MarkSent(ctx, "e1"))
	require.NoError(t, repo.MarkFailed(ctx, "e2", "broker down"))

	n, err := repo.PurgeSent(ctx, time.Now().Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
