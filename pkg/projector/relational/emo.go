package relational

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mnemonic-nexus/mnx/pkg/emo"
	"github.com/mnemonic-nexus/mnx/pkg/projector"
)

func (p *Projector) applyEMO(ctx context.Context, tx *stdsql.Tx, d *projector.Delivery, at time.Time) error {
	payload, err := emo.ParsePayload(d.Envelope.Payload)
	if err != nil {
		return fmt.Errorf("seq %d: %w", d.GlobalSeq, err)
	}

	switch d.Envelope.Kind {
	case emo.KindCreated:
		return p.emoCreated(ctx, tx, d, payload, at)
	case emo.KindUpdated:
		return p.emoUpdated(ctx, tx, d, payload, at)
	case emo.KindLinked:
		return p.emoLinked(ctx, tx, d, payload, at)
	case emo.KindDeleted:
		return p.emoDeleted(ctx, tx, d, payload, at)
	}
	return nil
}

// emoCreated inserts version 1 if the identity is new; a replayed create is
// absorbed by the identity conflict.
func (p *Projector) emoCreated(ctx context.Context, tx *stdsql.Tx, d *projector.Delivery, payload *emo.Payload, at time.Time) error {
	emoType := payload.EMOType
	if emoType == "" {
		emoType = emo.TypeNote
	}
	tenantID := payload.TenantID
	if tenantID == "" {
		tenantID = d.Envelope.WorldID
	}
	sourceKind := emo.SourceAgent
	var sourceURI *string
	if payload.Source != nil {
		if payload.Source.Kind != "" {
			sourceKind = payload.Source.Kind
		}
		if payload.Source.URI != "" {
			sourceURI = &payload.Source.URI
		}
	}
	tags, err := tagsJSON(payload.Tags)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO emo_current (
			emo_id, world_id, branch, emo_type, emo_version, tenant_id,
			content, tags, mime_type, source_kind, source_uri, deleted, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, FALSE, $12)
		ON CONFLICT (emo_id, world_id, branch) DO NOTHING`,
		payload.EMOID, d.Envelope.WorldID, d.Envelope.Branch,
		string(emoType), payload.EMOVersion, tenantID,
		payload.Content, tags, payload.MimeType, string(sourceKind), sourceURI, at)
	if err != nil {
		return fmt.Errorf("failed to insert emo_current: %w", err)
	}

	if err := p.recordHistory(ctx, tx, d, payload, emo.OpCreated, emo.ContentHash(payload.Content), at); err != nil {
		return err
	}
	return p.insertEdges(ctx, tx, d, payload, at)
}

// emoUpdated overwrites content when the payload carries a strictly greater
// version; the log is immutable, so late duplicates lose by version order.
func (p *Projector) emoUpdated(ctx context.Context, tx *stdsql.Tx, d *projector.Delivery, payload *emo.Payload, at time.Time) error {
	tags, err := tagsJSON(payload.Tags)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE emo_current
		SET content = $4, tags = $5, mime_type = $6, emo_version = $7, updated_at = $8
		WHERE emo_id = $1 AND world_id = $2 AND branch = $3 AND emo_version < $7`,
		payload.EMOID, d.Envelope.WorldID, d.Envelope.Branch,
		payload.Content, tags, payload.MimeType, payload.EMOVersion, at)
	if err != nil {
		return fmt.Errorf("failed to update emo_current: %w", err)
	}

	if err := p.recordHistory(ctx, tx, d, payload, emo.OpUpdated, emo.ContentHash(payload.Content), at); err != nil {
		return err
	}

	// Updated events carry the full link set; replace the identity's edges.
	_, err = tx.ExecContext(ctx, `
		DELETE FROM emo_links WHERE emo_id = $1 AND world_id = $2 AND branch = $3`,
		payload.EMOID, d.Envelope.WorldID, d.Envelope.Branch)
	if err != nil {
		return fmt.Errorf("failed to replace emo_links: %w", err)
	}
	return p.insertEdges(ctx, tx, d, payload, at)
}

// emoLinked bumps the version and merges new edges without touching content.
func (p *Projector) emoLinked(ctx context.Context, tx *stdsql.Tx, d *projector.Delivery, payload *emo.Payload, at time.Time) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE emo_current
		SET emo_version = $4, updated_at = $5
		WHERE emo_id = $1 AND world_id = $2 AND branch = $3 AND emo_version < $4`,
		payload.EMOID, d.Envelope.WorldID, d.Envelope.Branch, payload.EMOVersion, at)
	if err != nil {
		return fmt.Errorf("failed to bump emo_version: %w", err)
	}

	var content string
	err = tx.QueryRowContext(ctx, `
		SELECT COALESCE(content, '') FROM emo_current
		WHERE emo_id = $1 AND world_id = $2 AND branch = $3`,
		payload.EMOID, d.Envelope.WorldID, d.Envelope.Branch).Scan(&content)
	if err != nil && err != stdsql.ErrNoRows {
		return fmt.Errorf("failed to read current content: %w", err)
	}

	if err := p.recordHistory(ctx, tx, d, payload, emo.OpLinked, emo.ContentHash(content), at); err != nil {
		return err
	}
	return p.insertEdges(ctx, tx, d, payload, at)
}

// emoDeleted soft-deletes: the row and its edges survive for lineage, the
// active view stops showing it. The history row hashes the empty string.
func (p *Projector) emoDeleted(ctx context.Context, tx *stdsql.Tx, d *projector.Delivery, payload *emo.Payload, at time.Time) error {
	var reason *string
	if payload.DeletionReason != "" {
		reason = &payload.DeletionReason
	}
	_, err := tx.ExecContext(ctx, `
		UPDATE emo_current
		SET deleted = TRUE, deleted_at = $4, deletion_reason = $5,
		    emo_version = GREATEST(emo_version, $6), updated_at = $4
		WHERE emo_id = $1 AND world_id = $2 AND branch = $3`,
		payload.EMOID, d.Envelope.WorldID, d.Envelope.Branch,
		at, reason, payload.EMOVersion)
	if err != nil {
		return fmt.Errorf("failed to soft-delete emo: %w", err)
	}
	return p.recordHistory(ctx, tx, d, payload, emo.OpDeleted, emo.ContentHash(""), at)
}

// recordHistory appends the audit row. Both unique constraints (per-version
// identity and idempotency key) absorb replays.
func (p *Projector) recordHistory(ctx context.Context, tx *stdsql.Tx, d *projector.Delivery, payload *emo.Payload, op emo.Operation, contentHash string, at time.Time) error {
	key := payload.IdempotencyKey
	if key == "" {
		key = emo.IdempotencyKey(payload.EMOID, payload.EMOVersion, op)
	}
	var changeID *string
	if payload.ChangeID != "" {
		changeID = &payload.ChangeID
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO emo_history (
			change_id, emo_id, emo_version, world_id, branch,
			operation, content_hash, idempotency_key, recorded_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT DO NOTHING`,
		changeID, payload.EMOID, payload.EMOVersion,
		d.Envelope.WorldID, d.Envelope.Branch,
		string(op), contentHash, key, at)
	if err != nil {
		return fmt.Errorf("failed to insert emo_history: %w", err)
	}
	return nil
}

// insertEdges merges the payload's parents and links into emo_links.
func (p *Projector) insertEdges(ctx context.Context, tx *stdsql.Tx, d *projector.Delivery, payload *emo.Payload, at time.Time) error {
	for _, parent := range payload.Parents {
		rel := parent.Rel
		if rel == "" {
			rel = emo.RelDerived
		}
		if err := p.insertEdge(ctx, tx, d, payload.EMOID, rel, &parent.EMOID, nil, at); err != nil {
			return err
		}
	}
	for _, link := range payload.Links {
		switch link.Kind {
		case "emo":
			if err := p.insertEdge(ctx, tx, d, payload.EMOID, emo.RelLinked, &link.Ref, nil, at); err != nil {
				return err
			}
		case "uri":
			if err := p.insertEdge(ctx, tx, d, payload.EMOID, emo.RelLinked, nil, &link.Ref, at); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Projector) insertEdge(ctx context.Context, tx *stdsql.Tx, d *projector.Delivery, emoID, rel string, targetEMO, targetURI *string, at time.Time) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO emo_links (emo_id, world_id, branch, rel, target_emo_id, target_uri, created_at)
		SELECT $1, $2, $3, $4, $5, $6, $7
		WHERE NOT EXISTS (
			SELECT 1 FROM emo_links
			WHERE emo_id = $1 AND world_id = $2 AND branch = $3 AND rel = $4
			  AND target_emo_id IS NOT DISTINCT FROM $5
			  AND target_uri IS NOT DISTINCT FROM $6
		)`,
		emoID, d.Envelope.WorldID, d.Envelope.Branch, rel, targetEMO, targetURI, at)
	if err != nil {
		return fmt.Errorf("failed to insert emo_link: %w", err)
	}
	return nil
}

func tagsJSON(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("encoding tags: %w", err)
	}
	return data, nil
}

// snapshotEMOs lists the EMO lens in emo_id order, each row carrying its
// determinism hash so replay validation can compare individual EMOs too.
func (p *Projector) snapshotEMOs(ctx context.Context, tx *stdsql.Tx, worldID, branch string) ([]interface{}, error) {
	linked, err := p.linkedByEMO(ctx, tx, worldID, branch)
	if err != nil {
		return nil, err
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT emo_id, emo_type, emo_version, COALESCE(content, ''), COALESCE(tags, '[]'::jsonb),
		       mime_type, deleted, COALESCE(deletion_reason, ''), updated_at
		FROM emo_current
		WHERE world_id = $1 AND branch = $2
		ORDER BY emo_id`,
		worldID, branch)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot emo_current: %w", err)
	}
	defer rows.Close()

	emos := make([]interface{}, 0)
	for rows.Next() {
		var (
			emoID, emoType, content, mimeType, reason string
			version                                   int
			tagsRaw                                   []byte
			deleted                                   bool
			updatedAt                                 time.Time
		)
		if err := rows.Scan(&emoID, &emoType, &version, &content, &tagsRaw, &mimeType, &deleted, &reason, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan emo_current row: %w", err)
		}
		var tags []string
		if err := json.Unmarshal(tagsRaw, &tags); err != nil {
			return nil, fmt.Errorf("failed to decode tags for %s: %w", emoID, err)
		}

		hash := emo.DeterminismHash(emo.HashInput{
			EMOID:        emoID,
			EMOVersion:   version,
			WorldID:      worldID,
			Branch:       branch,
			Content:      content,
			Tags:         tags,
			LinkedEMOIDs: linked[emoID],
			UpdatedAt:    updatedAt,
		})

		emos = append(emos, map[string]interface{}{
			"emo_id":           emoID,
			"emo_type":         emoType,
			"emo_version":      version,
			"content":          content,
			"tags":             tags,
			"mime_type":        mimeType,
			"deleted":          deleted,
			"deletion_reason":  reason,
			"link_count":       len(linked[emoID]),
			"determinism_hash": hash,
		})
	}
	return emos, rows.Err()
}

func (p *Projector) linkedByEMO(ctx context.Context, tx *stdsql.Tx, worldID, branch string) (map[string][]string, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT emo_id, target_emo_id
		FROM emo_links
		WHERE world_id = $1 AND branch = $2 AND target_emo_id IS NOT NULL
		ORDER BY emo_id, target_emo_id`,
		worldID, branch)
	if err != nil {
		return nil, fmt.Errorf("failed to read emo_links: %w", err)
	}
	defer rows.Close()

	linked := make(map[string][]string)
	for rows.Next() {
		var src, dst string
		if err := rows.Scan(&src, &dst); err != nil {
			return nil, fmt.Errorf("failed to scan emo_link: %w", err)
		}
		linked[src] = append(linked[src], dst)
	}
	return linked, rows.Err()
}
