package relational

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/mnemonic-nexus/mnx/pkg/projector"
)

type notePayload struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

type tagPayload struct {
	NoteID string `json:"note_id"`
	Tag    string `json:"tag"`
}

type linkPayload struct {
	Src      string `json:"src"`
	Dst      string `json:"dst"`
	LinkType string `json:"link_type"`
}

func (p *Projector) noteCreated(ctx context.Context, tx *stdsql.Tx, d *projector.Delivery, at time.Time) error {
	var payload notePayload
	if err := decodePayload(d.Envelope.Payload, &payload); err != nil {
		return err
	}
	if payload.ID == "" {
		return fmt.Errorf("note.created seq %d missing id", d.GlobalSeq)
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO notes (world_id, branch, note_id, title, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (world_id, branch, note_id) DO NOTHING`,
		d.Envelope.WorldID, d.Envelope.Branch, payload.ID, payload.Title, payload.Body, at)
	if err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}
	return nil
}

func (p *Projector) noteUpdated(ctx context.Context, tx *stdsql.Tx, d *projector.Delivery, at time.Time) error {
	var payload notePayload
	if err := decodePayload(d.Envelope.Payload, &payload); err != nil {
		return err
	}
	if payload.ID == "" {
		return fmt.Errorf("note.updated seq %d missing id", d.GlobalSeq)
	}

	_, err := tx.ExecContext(ctx, `
		UPDATE notes SET title = $4, body = $5, updated_at = $6
		WHERE world_id = $1 AND branch = $2 AND note_id = $3`,
		d.Envelope.WorldID, d.Envelope.Branch, payload.ID, payload.Title, payload.Body, at)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	return nil
}

// noteDeleted removes the note and everything hanging off it. The note lens
// predates soft deletes; only EMOs keep tombstones.
func (p *Projector) noteDeleted(ctx context.Context, tx *stdsql.Tx, d *projector.Delivery) error {
	var payload notePayload
	if err := decodePayload(d.Envelope.Payload, &payload); err != nil {
		return err
	}
	if payload.ID == "" {
		return fmt.Errorf("note.deleted seq %d missing id", d.GlobalSeq)
	}

	stmts := []string{
		`DELETE FROM note_links WHERE world_id = $1 AND branch = $2 AND (src_id = $3 OR dst_id = $3)`,
		`DELETE FROM note_tags WHERE world_id = $1 AND branch = $2 AND note_id = $3`,
		`DELETE FROM notes WHERE world_id = $1 AND branch = $2 AND note_id = $3`,
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt, d.Envelope.WorldID, d.Envelope.Branch, payload.ID); err != nil {
			return fmt.Errorf("failed to delete note: %w", err)
		}
	}
	return nil
}

func (p *Projector) tagAdded(ctx context.Context, tx *stdsql.Tx, d *projector.Delivery, at time.Time) error {
	var payload tagPayload
	if err := decodePayload(d.Envelope.Payload, &payload); err != nil {
		return err
	}
	if payload.NoteID == "" || payload.Tag == "" {
		return fmt.Errorf("tag.added seq %d missing note_id or tag", d.GlobalSeq)
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO note_tags (world_id, branch, note_id, tag, applied_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (world_id, branch, note_id, tag) DO NOTHING`,
		d.Envelope.WorldID, d.Envelope.Branch, payload.NoteID, payload.Tag, at)
	if err != nil {
		return fmt.Errorf("failed to insert note tag: %w", err)
	}
	return nil
}

func (p *Projector) tagRemoved(ctx context.Context, tx *stdsql.Tx, d *projector.Delivery) error {
	var payload tagPayload
	if err := decodePayload(d.Envelope.Payload, &payload); err != nil {
		return err
	}

	_, err := tx.ExecContext(ctx, `
		DELETE FROM note_tags
		WHERE world_id = $1 AND branch = $2 AND note_id = $3 AND tag = $4`,
		d.Envelope.WorldID, d.Envelope.Branch, payload.NoteID, payload.Tag)
	if err != nil {
		return fmt.Errorf("failed to delete note tag: %w", err)
	}
	return nil
}

func (p *Projector) linkAdded(ctx context.Context, tx *stdsql.Tx, d *projector.Delivery, at time.Time) error {
	var payload linkPayload
	if err := decodePayload(d.Envelope.Payload, &payload); err != nil {
		return err
	}
	if payload.Src == "" || payload.Dst == "" {
		return fmt.Errorf("link.added seq %d missing src or dst", d.GlobalSeq)
	}
	if payload.LinkType == "" {
		payload.LinkType = "default"
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO note_links (world_id, branch, src_id, dst_id, link_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (world_id, branch, src_id, dst_id, link_type) DO NOTHING`,
		d.Envelope.WorldID, d.Envelope.Branch, payload.Src, payload.Dst, payload.LinkType, at)
	if err != nil {
		return fmt.Errorf("failed to insert note link: %w", err)
	}
	return nil
}

func (p *Projector) linkRemoved(ctx context.Context, tx *stdsql.Tx, d *projector.Delivery) error {
	var payload linkPayload
	if err := decodePayload(d.Envelope.Payload, &payload); err != nil {
		return err
	}
	if payload.LinkType == "" {
		payload.LinkType = "default"
	}

	_, err := tx.ExecContext(ctx, `
		DELETE FROM note_links
		WHERE world_id = $1 AND branch = $2 AND src_id = $3 AND dst_id = $4 AND link_type = $5`,
		d.Envelope.WorldID, d.Envelope.Branch, payload.Src, payload.Dst, payload.LinkType)
	if err != nil {
		return fmt.Errorf("failed to delete note link: %w", err)
	}
	return nil
}

// snapshotNotes serializes the note lens: notes in id order, tags sorted,
// links ordered by their identity columns.
func (p *Projector) snapshotNotes(ctx context.Context, tx *stdsql.Tx, worldID, branch string) ([]interface{}, error) {
	tags, err := p.noteTags(ctx, tx, worldID, branch)
	if err != nil {
		return nil, err
	}
	links, err := p.noteLinks(ctx, tx, worldID, branch)
	if err != nil {
		return nil, err
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT note_id, title, body
		FROM notes
		WHERE world_id = $1 AND branch = $2
		ORDER BY note_id`,
		worldID, branch)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot notes: %w", err)
	}
	defer rows.Close()

	notes := make([]interface{}, 0)
	for rows.Next() {
		var noteID, title, body string
		if err := rows.Scan(&noteID, &title, &body); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		noteTags := tags[noteID]
		if noteTags == nil {
			noteTags = []string{}
		}
		sort.Strings(noteTags)
		noteLinks := links[noteID]
		if noteLinks == nil {
			noteLinks = []interface{}{}
		}
		notes = append(notes, map[string]interface{}{
			"note_id": noteID,
			"title":   title,
			"body":    body,
			"tags":    noteTags,
			"links":   noteLinks,
		})
	}
	return notes, rows.Err()
}

func (p *Projector) noteTags(ctx context.Context, tx *stdsql.Tx, worldID, branch string) (map[string][]string, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT note_id, tag FROM note_tags
		WHERE world_id = $1 AND branch = $2
		ORDER BY note_id, tag`,
		worldID, branch)
	if err != nil {
		return nil, fmt.Errorf("failed to read note_tags: %w", err)
	}
	defer rows.Close()

	tags := make(map[string][]string)
	for rows.Next() {
		var noteID, tag string
		if err := rows.Scan(&noteID, &tag); err != nil {
			return nil, fmt.Errorf("failed to scan note tag: %w", err)
		}
		tags[noteID] = append(tags[noteID], tag)
	}
	return tags, rows.Err()
}

func (p *Projector) noteLinks(ctx context.Context, tx *stdsql.Tx, worldID, branch string) (map[string][]interface{}, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT src_id, dst_id, link_type FROM note_links
		WHERE world_id = $1 AND branch = $2
		ORDER BY src_id, dst_id, link_type`,
		worldID, branch)
	if err != nil {
		return nil, fmt.Errorf("failed to read note_links: %w", err)
	}
	defer rows.Close()

	links := make(map[string][]interface{})
	for rows.Next() {
		var src, dst, linkType string
		if err := rows.Scan(&src, &dst, &linkType); err != nil {
			return nil, fmt.Errorf("failed to scan note link: %w", err)
		}
		links[src] = append(links[src], map[string]interface{}{
			"dst":       dst,
			"link_type": linkType,
		})
	}
	return links, rows.Err()
}
