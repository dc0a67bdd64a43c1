package projector

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/mnemonic-nexus/mnx/pkg/database"
	"github.com/mnemonic-nexus/mnx/pkg/envelope"
	"github.com/mnemonic-nexus/mnx/pkg/models"
)

// Rebuild re-projects one stream through one projector. By default it
// truncates the lens and replays the full event log in global_seq order; a
// request with ClearExisting=false keeps the lens and only replays events
// above the watermark (a catch-up pass). Either way it runs in a single
// maintenance-role transaction: readers see either the old state or the
// finished rebuild, and a failure rolls everything back including the
// watermark reset.
func (rt *Runtime) Rebuild(ctx context.Context, name string, req *models.RebuildRequest) (*models.RebuildResponse, error) {
	p, ok := rt.registry.Get(name)
	if !ok {
		return nil, ErrUnknownProjector
	}
	worldID, branch := req.WorldID, req.Branch

	start := time.Now()
	log := slog.With("projector", name, "world_id", worldID, "branch", branch)
	log.Info("Rebuild started", "from_global_seq", req.FromGlobalSeq, "clear_existing", req.Clear())

	tx, err := database.BeginMaintenanceTx(ctx, rt.db)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	fromSeq := req.FromGlobalSeq
	if req.Clear() {
		if err := p.Truncate(ctx, tx, worldID, branch); err != nil {
			return nil, fmt.Errorf("failed to truncate lens for rebuild: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO watermarks (projector_name, world_id, branch, last_processed_seq, updated_at)
			VALUES ($1, $2, $3, 0, now())
			ON CONFLICT (projector_name, world_id, branch)
			DO UPDATE SET last_processed_seq = 0, updated_at = now()`,
			name, worldID, branch)
		if err != nil {
			return nil, fmt.Errorf("failed to reset watermark: %w", err)
		}
	} else {
		// Keeping state means never re-applying below the watermark.
		watermark, err := lockWatermark(ctx, tx, name, worldID, branch)
		if err != nil {
			return nil, err
		}
		if watermark+1 > fromSeq {
			fromSeq = watermark + 1
		}
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT global_seq, event_id, envelope
		FROM event_log
		WHERE world_id = $1 AND branch = $2 AND global_seq >= $3
		ORDER BY global_seq ASC`,
		worldID, branch, fromSeq)
	if err != nil {
		return nil, fmt.Errorf("failed to read log for rebuild: %w", err)
	}

	var (
		replayed int64
		lastSeq  int64
	)
	for rows.Next() {
		var (
			seq     int64
			eventID string
			envRaw  []byte
		)
		if err := rows.Scan(&seq, &eventID, &envRaw); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan log row: %w", err)
		}
		var env envelope.Envelope
		if err := json.Unmarshal(envRaw, &env); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to decode stored envelope for seq %d: %w", seq, err)
		}

		d := &Delivery{GlobalSeq: seq, EventID: eventID, Envelope: &env}
		if err := p.Apply(ctx, tx, d); err != nil {
			rows.Close()
			return nil, fmt.Errorf("rebuild apply failed at seq %d: %w", seq, err)
		}
		replayed++
		lastSeq = seq
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	if lastSeq > 0 {
		if err := advanceWatermark(ctx, tx, name, worldID, branch, lastSeq); err != nil {
			return nil, err
		}
	}

	snapshot, err := p.Snapshot(ctx, tx, worldID, branch)
	if err != nil {
		return nil, fmt.Errorf("post-rebuild snapshot failed: %w", err)
	}
	hash, err := StateHash(snapshot)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit rebuild: %w", err)
	}

	log.Info("Rebuild complete",
		"events_replayed", replayed, "final_watermark", lastSeq,
		"duration", time.Since(start))

	return &models.RebuildResponse{
		Projector:      name,
		WorldID:        worldID,
		Branch:         branch,
		EventsReplayed: replayed,
		FinalWatermark: lastSeq,
		StateHash:      hash,
	}, nil
}
