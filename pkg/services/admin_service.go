package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mnemonic-nexus/mnx/ent"
	"github.com/mnemonic-nexus/mnx/ent/deadletter"
	"github.com/mnemonic-nexus/mnx/ent/outboxentry"
	"github.com/mnemonic-nexus/mnx/pkg/database"
	"github.com/mnemonic-nexus/mnx/pkg/models"
)

// Rebuilder replays a projector's lens from the log. Implemented by the
// projector runtime; the admin surface only triggers it.
type Rebuilder interface {
	Rebuild(ctx context.Context, projectorName string, req *models.RebuildRequest) (*models.RebuildResponse, error)
}

// AdminService backs the operational surface: publisher status, dead
// letters, projector lag, tenancy self-tests, and rebuild triggers.
type AdminService struct {
	client    *database.Client
	rebuilder Rebuilder
}

// NewAdminService creates a new AdminService
func NewAdminService(client *database.Client, rebuilder Rebuilder) *AdminService {
	return &AdminService{client: client, rebuilder: rebuilder}
}

// OutboxStatus reports publisher backlog depth and DLQ size.
func (s *AdminService) OutboxStatus(ctx context.Context) (*models.OutboxStatus, error) {
	unpublished, err := s.client.OutboxEntry.Query().
		Where(outboxentry.PublishedAtIsNil()).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count unpublished entries: %w", err)
	}

	retryScheduled, err := s.client.OutboxEntry.Query().
		Where(outboxentry.PublishedAtIsNil(), outboxentry.AttemptsGT(0)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count retry-scheduled entries: %w", err)
	}

	dlqCount, err := s.client.DeadLetter.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count dead letters: %w", err)
	}

	status := &models.OutboxStatus{
		UnpublishedCount: int64(unpublished),
		RetryScheduled:   int64(retryScheduled),
		DeadLetterCount:  int64(dlqCount),
	}

	oldest, err := s.client.OutboxEntry.Query().
		Where(outboxentry.PublishedAtIsNil()).
		Order(ent.Asc(outboxentry.FieldID)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to find oldest unpublished entry: %w", err)
	}
	if oldest != nil {
		t := oldest.ReceivedAt.UTC()
		status.OldestUnpublished = &t
	}

	return status, nil
}

// ListDeadLetters returns quarantined events, newest first.
func (s *AdminService) ListDeadLetters(ctx context.Context, limit int) (*models.DeadLetterListResponse, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	letters, err := s.client.DeadLetter.Query().
		Order(ent.Desc(deadletter.FieldMovedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list dead letters: %w", err)
	}

	return &models.DeadLetterListResponse{DeadLetters: letters, Count: len(letters)}, nil
}

// RequeueDeadLetter moves a quarantined event back to the outbox with its
// retry state reset, so the publisher picks it up again.
func (s *AdminService) RequeueDeadLetter(ctx context.Context, globalSeq int64) error {
	tx, err := s.client.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin requeue transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		UPDATE outbox
		SET published_at = NULL, attempts = 0, last_error = NULL, next_retry_at = NULL
		WHERE global_seq = $1`, globalSeq)
	if err != nil {
		return fmt.Errorf("failed to reset outbox entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check requeue result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM dead_letters WHERE global_seq = $1`, globalSeq); err != nil {
		return fmt.Errorf("failed to remove dead letter: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit requeue: %w", err)
	}
	return nil
}

// ProjectorLag reports each projector's distance from its stream's log head.
// Runs under the maintenance role so it sees every world.
func (s *AdminService) ProjectorLag(ctx context.Context) ([]models.ProjectorLagEntry, error) {
	tx, err := database.BeginMaintenanceTx(ctx, s.client.DB())
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.QueryContext(ctx, `
		SELECT w.projector_name, w.world_id, w.branch, w.last_processed_seq,
		       COALESCE(MAX(e.global_seq), 0) AS head
		FROM watermarks w
		LEFT JOIN event_log e ON e.world_id = w.world_id AND e.branch = w.branch
		GROUP BY w.projector_name, w.world_id, w.branch, w.last_processed_seq
		ORDER BY w.projector_name, w.world_id, w.branch`)
	if err != nil {
		return nil, fmt.Errorf("failed to query projector lag: %w", err)
	}
	defer rows.Close()

	var entries []models.ProjectorLagEntry
	for rows.Next() {
		var e models.ProjectorLagEntry
		if err := rows.Scan(&e.ProjectorName, &e.WorldID, &e.Branch, &e.LastProcessedSeq, &e.LogHeadSeq); err != nil {
			return nil, fmt.Errorf("failed to scan lag row: %w", err)
		}
		e.Lag = e.LogHeadSeq - e.LastProcessedSeq
		if e.Lag < 0 {
			e.Lag = 0
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit lag query: %w", err)
	}
	return entries, nil
}

// RefreshTagCounts refreshes the tag-count materialized view.
func (s *AdminService) RefreshTagCounts(ctx context.Context) error {
	refreshCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	return database.RefreshTagCounts(refreshCtx, s.client.DB())
}

// ValidateRLS checks that row-level security is active on all gated tables.
func (s *AdminService) ValidateRLS(ctx context.Context) (*database.RLSStatus, error) {
	return database.ValidateRLSSetup(ctx, s.client.DB())
}

// TestIsolation runs the live cross-tenant probe.
func (s *AdminService) TestIsolation(ctx context.Context) (*database.IsolationResult, error) {
	return database.TestIsolation(ctx, s.client.DB())
}

// RebuildProjector replays one projector over one stream, truncating first
// unless the request opts out.
func (s *AdminService) RebuildProjector(ctx context.Context, projectorName string, req *models.RebuildRequest) (*models.RebuildResponse, error) {
	if s.rebuilder == nil {
		return nil, fmt.Errorf("no rebuilder configured")
	}
	if req.Branch == "" {
		req.Branch = "main"
	}
	return s.rebuilder.Rebuild(ctx, projectorName, req)
}
