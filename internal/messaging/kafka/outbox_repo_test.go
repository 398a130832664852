package kafka_test

import (
	"context"
	"testing"

	"go-benefits/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutboxRepository_Create(t *testing.T) {
	ctx := context.Background()

	event := kafka.OutboxEvent{
		ID:            uuid.NewString(),
		AggregateType: "claim",
		AggregateID:   uuid.NewString(),
		EventType:     "claim_submitted",
		Topic:         "benefits.claim.lifecycle.v1",
		Payload:       []byte(`{"claim_id":"x"}`),
		Status:        kafka.OutboxStatusPending,
	}

	t.Run("valid event is inserted", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := kafka.NewOutboxRepository(db)

		dbMock.ExpectExec("INSERT INTO outbox_events").
			WithArgs(
				event.ID, event.RequestID, event.AggregateType,
				event.AggregateID, event.EventType, event.Topic, event.Payload, event.Status,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Create(ctx, event))
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("undeliverable event never reaches the store", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := kafka.NewOutboxRepository(db)

		bad := event
		bad.Topic = ""

		assert.Error(t, repo.Create(ctx, bad))
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}

func TestValidateOutboxEvent(t *testing.T) {
	base := kafka.OutboxEvent{
		ID:      uuid.NewString(),
		Topic:   "benefits.claim.lifecycle.v1",
		Payload: []byte(`{}`),
		Status:  kafka.OutboxStatusPending,
	}

	assert.NoError(t, kafka.ValidateOutboxEvent(base))

	noPayload := base
	noPayload.Payload = nil
	assert.Error(t, kafka.ValidateOutboxEvent(noPayload))

	badStatus := base
	badStatus.Status = "queued"
	assert.Error(t, kafka.ValidateOutboxEvent(badStatus))
}
