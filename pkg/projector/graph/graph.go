// Package graph implements the graph projector: one node per EMO identity,
// edges for lineage and references. Soft deletes mark the node but preserve
// every edge, so lineage through deleted EMOs stays traversable.
package graph

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/mnemonic-nexus/mnx/pkg/emo"
	"github.com/mnemonic-nexus/mnx/pkg/projector"
)

// Name is the projector's registry name.
const Name = "graph"

type Projector struct{}

func New() *Projector {
	return &Projector{}
}

func (p *Projector) Name() string { return Name }

func (p *Projector) Lens() string { return "graph_nodes,graph_edges" }

func (p *Projector) Apply(ctx context.Context, tx *stdsql.Tx, d *projector.Delivery) error {
	switch d.Envelope.Kind {
	case emo.KindCreated, emo.KindUpdated, emo.KindLinked, emo.KindDeleted:
	default:
		slog.Debug("Graph projector ignoring kind",
			"kind", d.Envelope.Kind, "global_seq", d.GlobalSeq)
		return nil
	}

	payload, err := emo.ParsePayload(d.Envelope.Payload)
	if err != nil {
		return fmt.Errorf("seq %d: %w", d.GlobalSeq, err)
	}
	at, err := eventTime(d)
	if err != nil {
		return err
	}

	switch d.Envelope.Kind {
	case emo.KindCreated:
		if err := p.upsertNode(ctx, tx, d, payload, at); err != nil {
			return err
		}
		return p.mergeEdges(ctx, tx, d, payload, at)
	case emo.KindUpdated:
		if err := p.upsertNode(ctx, tx, d, payload, at); err != nil {
			return err
		}
		// Updated events carry the full edge set for the identity.
		_, err := tx.ExecContext(ctx, `
			DELETE FROM graph_edges WHERE src_id = $1 AND world_id = $2 AND branch = $3`,
			payload.EMOID, d.Envelope.WorldID, d.Envelope.Branch)
		if err != nil {
			return fmt.Errorf("failed to replace graph edges: %w", err)
		}
		return p.mergeEdges(ctx, tx, d, payload, at)
	case emo.KindLinked:
		if err := p.upsertNode(ctx, tx, d, payload, at); err != nil {
			return err
		}
		return p.mergeEdges(ctx, tx, d, payload, at)
	case emo.KindDeleted:
		return p.markDeleted(ctx, tx, d, payload, at)
	}
	return nil
}

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

// upsertNode creates the node or advances its version; versions never move
// backwards, so replays and stale duplicates are absorbed.
func (p *Projector) upsertNode(ctx context.Context, tx *stdsql.Tx, d *projector.Delivery, payload *emo.Payload, at time.Time) error {
	emoType := payload.EMOType
	if emoType == "" {
		emoType = emo.TypeNote
	}
	_, err := tx.ExecContext(ctx, `
		INSERT INTO graph_nodes (node_id, world_id, branch, emo_type, emo_version, deleted, updated_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, $6)
		ON CONFLICT (node_id, world_id, branch) DO UPDATE
		SET emo_version = GREATEST(graph_nodes.emo_version, EXCLUDED.emo_version),
		    updated_at = CASE
		        WHEN EXCLUDED.emo_version > graph_nodes.emo_version THEN EXCLUDED.updated_at
		        ELSE graph_nodes.updated_at
		    END`,
		payload.EMOID, d.Envelope.WorldID, d.Envelope.Branch,
		string(emoType), payload.EMOVersion, at)
	if err != nil {
		return fmt.Errorf("failed to upsert graph node: %w", err)
	}
	return nil
}

// markDeleted tombstones the node. Edges terminating at deleted nodes stay.
func (p *Projector) markDeleted(ctx context.Context, tx *stdsql.Tx, d *projector.Delivery, payload *emo.Payload, at time.Time) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE graph_nodes
		SET deleted = TRUE, emo_version = GREATEST(emo_version, $4), updated_at = $5
		WHERE node_id = $1 AND world_id = $2 AND branch = $3`,
		payload.EMOID, d.Envelope.WorldID, d.Envelope.Branch, payload.EMOVersion, at)
	if err != nil {
		return fmt.Errorf("failed to mark graph node deleted: %w", err)
	}
	return nil
}

func (p *Projector) mergeEdges(ctx context.Context, tx *stdsql.Tx, d *projector.Delivery, payload *emo.Payload, at time.Time) error {
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

func (p *Projector) insertEdge(ctx context.Context, tx *stdsql.Tx, d *projector.Delivery, srcID, rel string, dstID, dstURI *string, at time.Time) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO graph_edges (src_id, world_id, branch, rel, dst_id, dst_uri, created_at)
		SELECT $1, $2, $3, $4, $5, $6, $7
		WHERE NOT EXISTS (
			SELECT 1 FROM graph_edges
			WHERE src_id = $1 AND world_id = $2 AND branch = $3 AND rel = $4
			  AND dst_id IS NOT DISTINCT FROM $5
			  AND dst_uri IS NOT DISTINCT FROM $6
		)`,
		srcID, d.Envelope.WorldID, d.Envelope.Branch, rel, dstID, dstURI, at)
	if err != nil {
		return fmt.Errorf("failed to insert graph edge: %w", err)
	}
	return nil
}

// Snapshot serializes nodes and edges in stable order.
func (p *Projector) Snapshot(ctx context.Context, tx *stdsql.Tx, worldID, branch string) (map[string]interface{}, error) {
	nodes, err := p.snapshotNodes(ctx, tx, worldID, branch)
	if err != nil {
		return nil, err
	}
	edges, err := p.snapshotEdges(ctx, tx, worldID, branch)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"nodes": nodes,
		"edges": edges,
	}, nil
}

// Truncate drops all graph state for one world/branch stream. Edges go
// first so a partial failure never leaves dangling references.
func (p *Projector) Truncate(ctx context.Context, tx *stdsql.Tx, worldID, branch string) error {
	for _, table := range []string{"graph_edges", "graph_nodes"} {
		if _, err := tx.ExecContext(ctx,
			fmt.Sprintf("DELETE FROM %s WHERE world_id = $1 AND branch = $2", table),
			worldID, branch); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}

func (p *Projector) snapshotNodes(ctx context.Context, tx *stdsql.Tx, worldID, branch string) ([]interface{}, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT node_id, emo_type, emo_version, deleted
		FROM graph_nodes
		WHERE world_id = $1 AND branch = $2
		ORDER BY node_id`,
		worldID, branch)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot graph nodes: %w", err)
	}
	defer rows.Close()

	nodes := make([]interface{}, 0)
	for rows.Next() {
		var (
			nodeID, emoType string
			version         int
			deleted         bool
		)
		if err := rows.Scan(&nodeID, &emoType, &version, &deleted); err != nil {
			return nil, fmt.Errorf("failed to scan graph node: %w", err)
		}
		nodes = append(nodes, map[string]interface{}{
			"node_id":     nodeID,
			"emo_type":    emoType,
			"emo_version": version,
			"deleted":     deleted,
		})
	}
	return nodes, rows.Err()
}

func (p *Projector) snapshotEdges(ctx context.Context, tx *stdsql.Tx, worldID, branch string) ([]interface{}, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT src_id, rel, COALESCE(dst_id::text, ''), COALESCE(dst_uri, '')
		FROM graph_edges
		WHERE world_id = $1 AND branch = $2
		ORDER BY src_id, rel, dst_id, dst_uri`,
		worldID, branch)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot graph edges: %w", err)
	}
	defer rows.Close()

	edges := make([]interface{}, 0)
	for rows.Next() {
		var src, rel, dst, dstURI string
		if err := rows.Scan(&src, &rel, &dst, &dstURI); err != nil {
			return nil, fmt.Errorf("failed to scan graph edge: %w", err)
		}
		edges = append(edges, map[string]interface{}{
			"src": src,
			"rel": rel,
			"dst": dst,
			"uri": dstURI,
		})
	}
	return edges, rows.Err()
}
