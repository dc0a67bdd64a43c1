package projector

import (
	"context"
	stdsql "database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mnemonic-nexus/mnx/pkg/metrics"
	"github.com/mnemonic-nexus/mnx/pkg/models"
	"github.com/mnemonic-nexus/mnx/pkg/services"
)

// ErrUnknownProjector is returned for deliveries addressed to a projector
// this process does not host.
var ErrUnknownProjector = errors.New("unknown projector")

// Runtime dispatches deliveries to registered projectors with exactly-once
// effect per stream: a per-stream watermark row is locked for the duration
// of the apply transaction, duplicates are acknowledged without effect, and
// the watermark only moves forward.
type Runtime struct {
	db       *stdsql.DB
	registry *Registry
}

// NewRuntime creates a Runtime.
func NewRuntime(db *stdsql.DB, registry *Registry) *Runtime {
	return &Runtime{db: db, registry: registry}
}

// Registry returns the underlying registry.
func (rt *Runtime) Registry() *Registry {
	return rt.registry
}

// HandleDelivery processes one publisher delivery for the named projector.
// Verification failures return ValidationError (structural, never retried);
// an already-processed sequence returns a "duplicate" ack.
func (rt *Runtime) HandleDelivery(ctx context.Context, name string, req *models.ProjectorEventRequest) (*models.ProjectorAckResponse, error) {
	p, ok := rt.registry.Get(name)
	if !ok {
		return nil, ErrUnknownProjector
	}

	if req.Envelope == nil {
		return nil, services.NewValidationError("envelope", "envelope is required")
	}
	if req.GlobalSeq <= 0 {
		return nil, services.NewValidationError("global_seq", "global_seq must be positive")
	}
	if err := req.Envelope.Validate(); err != nil {
		return nil, services.NewValidationError("envelope", err.Error())
	}
	ok, err := req.Envelope.VerifyPayloadHash(req.PayloadHash)
	if err != nil {
		return nil, services.NewValidationError("payload_hash", err.Error())
	}
	if !ok {
		return nil, services.NewValidationError("payload_hash", "payload hash does not match canonical payload")
	}

	worldID := req.Envelope.WorldID
	branch := req.Envelope.Branch

	start := time.Now()
	applied, err := rt.applyTx(ctx, p, req)
	if err != nil {
		return nil, err
	}

	if !applied {
		metrics.ProjectorDuplicates.WithLabelValues(name).Inc()
		return &models.ProjectorAckResponse{
			Status:    "duplicate",
			GlobalSeq: req.GlobalSeq,
			Projector: name,
		}, nil
	}

	metrics.ProjectorApplied.WithLabelValues(name).Inc()
	metrics.ProjectorApplyDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	metrics.WatermarkSeq.WithLabelValues(name, worldID, branch).Set(float64(req.GlobalSeq))

	return &models.ProjectorAckResponse{
		Status:    "applied",
		GlobalSeq: req.GlobalSeq,
		Projector: name,
	}, nil
}

// applyTx runs the gate-apply-advance sequence in one transaction. Returns
// false when the watermark gate rejected the delivery as already processed.
func (rt *Runtime) applyTx(ctx context.Context, p Projector, req *models.ProjectorEventRequest) (bool, error) {
	tx, err := rt.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin apply transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	worldID := req.Envelope.WorldID
	branch := req.Envelope.Branch

	// Lens tables are tenant-gated; scope the transaction to the event's world.
	if _, err := tx.ExecContext(ctx, `SELECT set_config('app.world_id', $1, true)`, worldID); err != nil {
		return false, fmt.Errorf("failed to set world context: %w", err)
	}

	// The row lock serializes concurrent deliveries for the same stream.
	watermark, err := lockWatermark(ctx, tx, p.Name(), worldID, branch)
	if err != nil {
		return false, err
	}
	if req.GlobalSeq <= watermark {
		slog.Debug("Duplicate delivery gated by watermark",
			"projector", p.Name(), "global_seq", req.GlobalSeq, "watermark", watermark)
		return false, nil
	}

	d := &Delivery{
		GlobalSeq: req.GlobalSeq,
		EventID:   req.EventID,
		Envelope:  req.Envelope,
	}
	if err := p.Apply(ctx, tx, d); err != nil {
		return false, fmt.Errorf("projector %s failed to apply seq %d: %w", p.Name(), req.GlobalSeq, err)
	}

	if err := advanceWatermark(ctx, tx, p.Name(), worldID, branch, req.GlobalSeq); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit apply for seq %d: %w", req.GlobalSeq, err)
	}
	return true, nil
}

// lockWatermark reads the stream's watermark under FOR UPDATE, creating the
// row on first contact.
func lockWatermark(ctx context.Context, tx *stdsql.Tx, name, worldID, branch string) (int64, error) {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO watermarks (projector_name, world_id, branch, last_processed_seq, updated_at)
		VALUES ($1, $2, $3, 0, now())
		ON CONFLICT (projector_name, world_id, branch) DO NOTHING`,
		name, worldID, branch)
	if err != nil {
		return 0, fmt.Errorf("failed to ensure watermark row: %w", err)
	}

	var seq int64
	err = tx.QueryRowContext(ctx, `
		SELECT last_processed_seq FROM watermarks
		WHERE projector_name = $1 AND world_id = $2 AND branch = $3
		FOR UPDATE`,
		name, worldID, branch).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("failed to lock watermark: %w", err)
	}
	return seq, nil
}

// advanceWatermark moves the watermark forward, never back.
func advanceWatermark(ctx context.Context, tx *stdsql.Tx, name, worldID, branch string, seq int64) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE watermarks
		SET last_processed_seq = GREATEST(last_processed_seq, $4), updated_at = now()
		WHERE projector_name = $1 AND world_id = $2 AND branch = $3`,
		name, worldID, branch, seq)
	if err != nil {
		return fmt.Errorf("failed to advance watermark: %w", err)
	}
	return nil
}

// Watermarks lists a projector's progress rows.
func (rt *Runtime) Watermarks(ctx context.Context, name string) ([]models.WatermarkEntry, error) {
	if _, ok := rt.registry.Get(name); !ok {
		return nil, ErrUnknownProjector
	}

	rows, err := rt.db.QueryContext(ctx, `
		SELECT projector_name, world_id, branch, last_processed_seq
		FROM watermarks
		WHERE projector_name = $1
		ORDER BY world_id, branch`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to list watermarks: %w", err)
	}
	defer rows.Close()

	var entries []models.WatermarkEntry
	for rows.Next() {
		var e models.WatermarkEntry
		if err := rows.Scan(&e.ProjectorName, &e.WorldID, &e.Branch, &e.LastProcessedSeq); err != nil {
			return nil, fmt.Errorf("failed to scan watermark: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Snapshot returns a projector's deterministic state snapshot and its hash.
func (rt *Runtime) Snapshot(ctx context.Context, name, worldID, branch string) (*models.SnapshotResponse, error) {
	p, ok := rt.registry.Get(name)
	if !ok {
		return nil, ErrUnknownProjector
	}

	tx, err := rt.db.BeginTx(ctx, &stdsql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `SELECT set_config('app.world_id', $1, true)`, worldID); err != nil {
		return nil, fmt.Errorf("failed to set world context: %w", err)
	}

	snapshot, err := p.Snapshot(ctx, tx, worldID, branch)
	if err != nil {
		return nil, fmt.Errorf("projector %s snapshot failed: %w", name, err)
	}

	hash, err := StateHash(snapshot)
	if err != nil {
		return nil, err
	}

	return &models.SnapshotResponse{
		Projector: name,
		WorldID:   worldID,
		Branch:    branch,
		StateHash: hash,
		Snapshot:  snapshot,
	}, nil
}
