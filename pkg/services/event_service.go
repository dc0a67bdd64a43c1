package services

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mnemonic-nexus/mnx/ent"
	"github.com/mnemonic-nexus/mnx/pkg/database"
	"github.com/mnemonic-nexus/mnx/pkg/envelope"
	"github.com/mnemonic-nexus/mnx/pkg/models"
)

const pgUniqueViolation = "23505"

// appendTimeout bounds the append transaction independently of the caller:
// a client disconnect must not abort a half-committed log+outbox write.
const appendTimeout = 60 * time.Second

// EventService owns the append path: one transaction writes the log row and
// the outbox row, and the log's sequence is the sole assigner of global_seq.
type EventService struct {
	client *database.Client
}

// NewEventService creates a new EventService
func NewEventService(client *database.Client) *EventService {
	return &EventService{client: client}
}

// AppendEvent validates, enriches, and durably appends an envelope. A replay
// of a previously accepted idempotency key returns IdempotencyConflictError
// carrying the first-accepted event; nothing is written in that case.
func (s *EventService) AppendEvent(httpCtx context.Context, env *envelope.Envelope, idempotencyKey string) (*models.AppendEventResponse, error) {
	if err := env.Validate(); err != nil {
		return nil, NewValidationError("envelope", err.Error())
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(httpCtx), appendTimeout)
	defer cancel()

	now := time.Now().UTC()
	eventID, err := env.Enrich(now)
	if err != nil {
		return nil, fmt.Errorf("failed to enrich envelope: %w", err)
	}

	envJSON, err := json.Marshal(env.ToMap())
	if err != nil {
		return nil, fmt.Errorf("failed to encode envelope: %w", err)
	}

	resp, err := s.appendTx(ctx, env, eventID, envJSON, idempotencyKey, now)
	if err == nil {
		return resp, nil
	}

	// A concurrent append can win the idempotency race between our insert
	// and a prior check; surface the first-accepted event either way.
	var pgErr *pgconn.PgError
	if idempotencyKey != "" && errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		existing, lookupErr := s.findByIdempotencyKey(ctx, env.WorldID, env.Branch, idempotencyKey)
		if lookupErr == nil && existing != nil {
			return nil, existing
		}
	}
	return nil, err
}

func (s *EventService) appendTx(ctx context.Context, env *envelope.Envelope, eventID string, envJSON []byte, idempotencyKey string, now time.Time) (*models.AppendEventResponse, error) {
	tx, err := s.client.DB().BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin append transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Row policies gate writes too; scope the transaction to the event's world.
	if _, err := tx.ExecContext(ctx, `SELECT set_config('app.world_id', $1, true)`, env.WorldID); err != nil {
		return nil, fmt.Errorf("failed to set world context: %w", err)
	}

	if idempotencyKey != "" {
		existing, err := findByIdempotencyKeyTx(ctx, tx, env.WorldID, env.Branch, idempotencyKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, existing
		}
	}

	var keyParam *string
	if idempotencyKey != "" {
		keyParam = &idempotencyKey
	}

	var globalSeq int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO event_log (event_id, world_id, branch, kind, envelope, occurred_at, received_at, payload_hash, idempotency_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING global_seq`,
		eventID, env.WorldID, env.Branch, env.Kind, envJSON,
		env.OccurredAtTime(), now, env.PayloadHash, keyParam,
	).Scan(&globalSeq)
	if err != nil {
		return nil, fmt.Errorf("failed to insert event: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO outbox (global_seq, event_id, world_id, branch, kind, envelope, payload_hash, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		globalSeq, eventID, env.WorldID, env.Branch, env.Kind, envJSON, env.PayloadHash, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert outbox entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit append: %w", err)
	}

	return &models.AppendEventResponse{
		GlobalSeq:   globalSeq,
		EventID:     eventID,
		ReceivedAt:  env.ReceivedAt,
		PayloadHash: env.PayloadHash,
	}, nil
}

func (s *EventService) findByIdempotencyKey(ctx context.Context, worldID, branch, key string) (*IdempotencyConflictError, error) {
	var conflict *IdempotencyConflictError
	err := database.WithWorldContext(ctx, s.client.DB(), worldID, func(conn *stdsql.Conn) error {
		row := conn.QueryRowContext(ctx, `
			SELECT global_seq, event_id, received_at, payload_hash
			FROM event_log
			WHERE world_id = $1 AND branch = $2 AND idempotency_key = $3`,
			worldID, branch, key)
		c, err := scanConflict(row)
		if err != nil {
			return err
		}
		conflict = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return conflict, nil
}

func findByIdempotencyKeyTx(ctx context.Context, tx *stdsql.Tx, worldID, branch, key string) (*IdempotencyConflictError, error) {
	row := tx.QueryRowContext(ctx, `
		SELECT global_seq, event_id, received_at, payload_hash
		FROM event_log
		WHERE world_id = $1 AND branch = $2 AND idempotency_key = $3`,
		worldID, branch, key)
	return scanConflict(row)
}

func scanConflict(row *stdsql.Row) (*IdempotencyConflictError, error) {
	var c IdempotencyConflictError
	var receivedAt time.Time
	err := row.Scan(&c.GlobalSeq, &c.EventID, &receivedAt, &c.PayloadHash)
	if errors.Is(err, stdsql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up idempotency key: %w", err)
	}
	c.ReceivedAt = receivedAt.UTC().Format("2006-01-02T15:04:05.000Z")
	return &c, nil
}

// ListEvents returns one stream's events in global_seq order, under the
// requesting world's tenancy context.
func (s *EventService) ListEvents(ctx context.Context, filters models.EventFilters) (*models.EventListResponse, error) {
	if filters.WorldID == "" {
		return nil, NewValidationError("world_id", "world_id is required")
	}
	if _, err := uuid.Parse(filters.WorldID); err != nil {
		return nil, NewValidationError("world_id", "world_id must be a valid UUID")
	}
	if filters.Branch == "" {
		filters.Branch = "main"
	}
	limit := filters.Limit
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	var events []*ent.WorldEvent
	err := database.WithWorldContext(ctx, s.client.DB(), filters.WorldID, func(conn *stdsql.Conn) error {
		// One extra row decides has_more without a second count query.
		rows, err := conn.QueryContext(ctx, `
			SELECT global_seq, event_id, world_id, branch, kind, envelope, occurred_at, received_at, payload_hash, idempotency_key
			FROM event_log
			WHERE world_id = $1 AND branch = $2
			  AND global_seq > $3
			  AND ($4 = '' OR kind = $4)
			ORDER BY global_seq ASC
			LIMIT $5`,
			filters.WorldID, filters.Branch, filters.AfterSeq, filters.Kind, limit+1)
		if err != nil {
			return fmt.Errorf("failed to list events: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			evt, err := scanWorldEvent(rows)
			if err != nil {
				return err
			}
			events = append(events, evt)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	resp := &models.EventListResponse{NextAfterGlobalSeq: filters.AfterSeq}
	if len(events) > limit {
		resp.HasMore = true
		events = events[:limit]
	}
	resp.Items = events
	if len(events) > 0 {
		resp.NextAfterGlobalSeq = events[len(events)-1].ID
	}
	return resp, nil
}

// GetEvent returns a single event by id, scoped to the requesting world.
func (s *EventService) GetEvent(ctx context.Context, worldID, eventID string) (*ent.WorldEvent, error) {
	if _, err := uuid.Parse(eventID); err != nil {
		return nil, NewValidationError("event_id", "event_id must be a valid UUID")
	}

	var evt *ent.WorldEvent
	err := database.WithWorldContext(ctx, s.client.DB(), worldID, func(conn *stdsql.Conn) error {
		rows, err := conn.QueryContext(ctx, `
			SELECT global_seq, event_id, world_id, branch, kind, envelope, occurred_at, received_at, payload_hash, idempotency_key
			FROM event_log
			WHERE event_id = $1`,
			eventID)
		if err != nil {
			return fmt.Errorf("failed to get event: %w", err)
		}
		defer rows.Close()

		if !rows.Next() {
			return rows.Err()
		}
		evt, err = scanWorldEvent(rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	if evt == nil {
		return nil, ErrNotFound
	}
	return evt, nil
}

func scanWorldEvent(rows *stdsql.Rows) (*ent.WorldEvent, error) {
	var (
		evt      ent.WorldEvent
		envRaw   []byte
		occurred stdsql.NullTime
		key      stdsql.NullString
	)
	err := rows.Scan(&evt.ID, &evt.EventID, &evt.WorldID, &evt.Branch, &evt.Kind,
		&envRaw, &occurred, &evt.ReceivedAt, &evt.PayloadHash, &key)
	if err != nil {
		return nil, fmt.Errorf("failed to scan event: %w", err)
	}
	if err := json.Unmarshal(envRaw, &evt.Envelope); err != nil {
		return nil, fmt.Errorf("failed to decode stored envelope: %w", err)
	}
	if occurred.Valid {
		t := occurred.Time.UTC()
		evt.OccurredAt = &t
	}
	if key.Valid {
		evt.IdempotencyKey = &key.String
	}
	return &evt, nil
}
