package database

import (
	"context"
	stdsql "database/sql"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates PostgreSQL GIN indexes for EMO content search and
// tag containment queries. These cannot be expressed in the Ent schema.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Full-text search over current EMO content
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_emo_current_content_gin
		ON emo_current USING gin(to_tsvector('english', COALESCE(content, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create emo content GIN index: %w", err)
	}

	// Tag containment (tags @> '["x"]')
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_emo_current_tags_gin
		ON emo_current USING gin(tags jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create emo tags GIN index: %w", err)
	}

	// Envelope search on the log (admin/debug queries by payload content)
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_event_log_envelope_gin
		ON event_log USING gin(envelope jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create event envelope GIN index: %w", err)
	}

	return nil
}

// RefreshTagCounts refreshes the emo_tag_counts materialized view. Called
// from the admin surface; CONCURRENTLY so readers are not blocked.
func RefreshTagCounts(ctx context.Context, db *stdsql.DB) error {
	_, err := db.ExecContext(ctx, `REFRESH MATERIALIZED VIEW CONCURRENTLY emo_tag_counts`)
	if err != nil {
		return fmt.Errorf("failed to refresh emo_tag_counts: %w", err)
	}
	return nil
}
