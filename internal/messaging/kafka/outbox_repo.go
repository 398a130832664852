package kafka

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
)

// OutboxEvent is one row of the transactional outbox. Claim lifecycle
// events are inserted here inside the same transaction as the claim write,
// then shipped to Kafka by the producer worker. Payload is the marshalled
// event body, opaque to this layer.
type OutboxEvent struct {
	ID            string
	RequestID     string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Payload       []byte
	Status        string
	RetryCount    int
	NextRetryAt   time.Time
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock

type OutboxRepository interface {
	WithTx(tx *sql.Tx) OutboxRepository
	Create(ctx context.Context, event OutboxEvent) error
	ListPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

type outboxRepo struct {
	db *sql.DB
	tx *sql.Tx
}

func NewOutboxRepository(db *sql.DB) OutboxRepository {
	return &outboxRepo{db: db}
}

// WithTx binds the insert to the caller's transaction so the event commits
// or rolls back together with the domain write.
func (r *outboxRepo) WithTx(tx *sql.Tx) OutboxRepository {
	return &outboxRepo{db: r.db, tx: tx}
}

func (r *outboxRepo) Create(ctx context.Context, event OutboxEvent) error {
	if err := ValidateOutboxEvent(event); err != nil {
		return err
	}

	const insertEvent = `
		INSERT INTO outbox_events (
			id, request_id, aggregate_type, aggregate_id, event_type, topic, payload, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.execer().ExecContext(
		ctx, insertEvent,
		event.ID, event.RequestID, event.AggregateType,
		event.AggregateID, event.EventType, event.Topic, event.Payload, event.Status,
	)
	return err
}

// ListPending returns rows due for delivery: pending ones plus failed ones
// whose retry delay has elapsed, oldest first.
func (r *outboxRepo) ListPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	const selectDue = `
		SELECT
			id::text, aggregate_type, aggregate_id::text, event_type, topic,
			payload, status, retry_count, COALESCE(next_retry_at, created_at)
		FROM outbox_events
		WHERE status IN ($1, $2)
			AND (next_retry_at IS NULL OR next_retry_at <= NOW())
		ORDER BY created_at ASC
		LIMIT $3`

	rows, err := r.db.QueryContext(ctx, selectDue, OutboxStatusPending, OutboxStatusFailed, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	due := make([]OutboxEvent, 0, limit)
	for rows.Next() {
		var e OutboxEvent
		if err := rows.Scan(
			&e.ID, &e.AggregateType, &e.AggregateID, &e.EventType, &e.Topic,
			&e.Payload, &e.Status, &e.RetryCount, &e.NextRetryAt,
		); err != nil {
			return nil, err
		}
		due = append(due, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return due, nil
}

func (r *outboxRepo) MarkSent(ctx context.Context, id string) error {
	const markSent = `
		UPDATE outbox_events
		SET status = $2, processed_at = NOW(), error_message = NULL, updated_at = NOW()
		WHERE id = $1`

	_, err := r.db.ExecContext(ctx, markSent, id, OutboxStatusSent)
	return err
}

// MarkFailed records the delivery error and pushes next_retry_at out by
// 15 seconds per attempt, capped at attempt ten.
func (r *outboxRepo) MarkFailed(ctx context.Context, id string, reason string) error {
	const markFailed = `
		UPDATE outbox_events
		SET
			status = $2,
			retry_count = retry_count + 1,
			error_message = LEFT($3, 500),
			next_retry_at = NOW() + (LEAST(retry_count + 1, 10) * INTERVAL '15 seconds'),
			updated_at = NOW()
		WHERE id = $1`

	_, err := r.db.ExecContext(ctx, markFailed, id, OutboxStatusFailed, reason)
	return err
}

func (r *outboxRepo) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// ValidateOutboxEvent rejects rows that could never be delivered. Create
// runs it before insert so a bad event fails the producing transaction
// instead of poisoning the worker loop.
func ValidateOutboxEvent(event OutboxEvent) error {
	if event.ID == "" {
		return errors.New("outbox id is required")
	}
	if event.Topic == "" {
		return errors.New("outbox topic is required")
	}
	if len(event.Payload) == 0 {
		return errors.New("outbox payload is required")
	}
	switch event.Status {
	case OutboxStatusPending, OutboxStatusSent, OutboxStatusFailed:
		return nil
	default:
		return fmt.Errorf("invalid outbox status: %s", event.Status)
	}
}
