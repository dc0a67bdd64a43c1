// Package relational implements the relational projector: owner of the EMO
// lens (emo_current, emo_history, emo_links) and the legacy note lens
// (notes, note_tags, note_links).
package relational

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/mnemonic-nexus/mnx/pkg/emo"
	"github.com/mnemonic-nexus/mnx/pkg/projector"
)

// Name is the projector's registry name.
const Name = "relational"

type Projector struct{}

func New() *Projector {
	return &Projector{}
}

func (p *Projector) Name() string { return Name }

func (p *Projector) Lens() string { return "emo_current,emo_history,emo_links,notes" }

// Apply folds one event into the lens. Rows are stamped with the envelope's
// receipt time rather than the wall clock, so a rebuild reproduces identical
// state.
func (p *Projector) Apply(ctx context.Context, tx *stdsql.Tx, d *projector.Delivery) error {
	at, err := eventTime(d)
	if err != nil {
		return err
	}

	switch d.Envelope.Kind {
	case emo.KindCreated, emo.KindUpdated, emo.KindLinked, emo.KindDeleted:
		return p.applyEMO(ctx, tx, d, at)
	case "note.created":
		return p.noteCreated(ctx, tx, d, at)
	case "note.updated":
		return p.noteUpdated(ctx, tx, d, at)
	case "note.deleted":
		return p.noteDeleted(ctx, tx, d)
	case "tag.added":
		return p.tagAdded(ctx, tx, d, at)
	case "tag.removed":
		return p.tagRemoved(ctx, tx, d)
	case "link.added":
		return p.linkAdded(ctx, tx, d, at)
	case "link.removed":
		return p.linkRemoved(ctx, tx, d)
	default:
		slog.Debug("Relational projector ignoring kind",
			"kind", d.Envelope.Kind, "global_seq", d.GlobalSeq)
		return nil
	}
}

// eventTime returns the envelope receipt time, falling back to occurred_at
// for envelopes that predate server enrichment.
func eventTime(d *projector.Delivery) (time.Time, error) {
	if d.Envelope.ReceivedAt != "" {
		t, err := time.Parse(time.RFC3339Nano, d.Envelope.ReceivedAt)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid received_at on seq %d: %w", d.GlobalSeq, err)
		}
		return t.UTC(), nil
	}
	if t := d.Envelope.OccurredAtTime(); t != nil {
		return *t, nil
	}
	return time.Time{}, fmt.Errorf("envelope for seq %d carries no timestamp", d.GlobalSeq)
}

// decodePayload round-trips a generic payload into a typed struct.
func decodePayload(raw map[string]interface{}, out interface{}) error {
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding payload: %w", err)
	}
	return nil
}

// Snapshot serializes the lens state for one stream with stable ordering.
// Timestamps are excluded; they feed the per-EMO determinism hash instead.
func (p *Projector) Snapshot(ctx context.Context, tx *stdsql.Tx, worldID, branch string) (map[string]interface{}, error) {
	emos, err := p.snapshotEMOs(ctx, tx, worldID, branch)
	if err != nil {
		return nil, err
	}
	history, err := p.snapshotHistory(ctx, tx, worldID, branch)
	if err != nil {
		return nil, err
	}
	notes, err := p.snapshotNotes(ctx, tx, worldID, branch)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"emos":    emos,
		"history": history,
		"notes":   notes,
	}, nil
}

func (p *Projector) snapshotHistory(ctx context.Context, tx *stdsql.Tx, worldID, branch string) ([]interface{}, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT emo_id, emo_version, operation, content_hash
		FROM emo_history
		WHERE world_id = $1 AND branch = $2
		ORDER BY emo_id, emo_version`,
		worldID, branch)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot emo_history: %w", err)
	}
	defer rows.Close()

	history := make([]interface{}, 0)
	for rows.Next() {
		var (
			emoID, op, contentHash string
			version                int
		)
		if err := rows.Scan(&emoID, &version, &op, &contentHash); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		history = append(history, map[string]interface{}{
			"emo_id":       emoID,
			"emo_version":  version,
			"operation":    op,
			"content_hash": contentHash,
		})
	}
	return history, rows.Err()
}

// Truncate clears the lens for one stream, children first.
func (p *Projector) Truncate(ctx context.Context, tx *stdsql.Tx, worldID, branch string) error {
	tables := []string{
		"emo_links", "emo_history", "emo_current",
		"note_links", "note_tags", "notes",
	}
	for _, table := range tables {
		_, err := tx.ExecContext(ctx,
			fmt.Sprintf(`DELETE FROM %s WHERE world_id = $1 AND branch = $2`, table),
			worldID, branch)
		if err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}
