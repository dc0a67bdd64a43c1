package database

import (
	"context"
	stdsql "database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Tenant reads are gated by row-level security keyed on the session setting
// app.world_id. A query with a missing or mismatched world context returns
// the empty set; it never errors. Rebuild paths bypass via role membership,
// not by clearing the setting.

// SetWorldContext sets the RLS world context on a single connection.
// Callers must use the same *sql.Conn (or transaction) for the queries that
// follow; the setting is connection-scoped.
func SetWorldContext(ctx context.Context, conn *stdsql.Conn, worldID string) error {
	if _, err := conn.ExecContext(ctx, `SELECT set_config('app.world_id', $1, false)`, worldID); err != nil {
		return fmt.Errorf("failed to set world context: %w", err)
	}
	return nil
}

// ClearWorldContext clears the RLS world context before the connection
// returns to the pool.
func ClearWorldContext(ctx context.Context, conn *stdsql.Conn) error {
	if _, err := conn.ExecContext(ctx, `SELECT set_config('app.world_id', '', false)`); err != nil {
		return fmt.Errorf("failed to clear world context: %w", err)
	}
	return nil
}

// WithWorldContext checks a connection out of the pool, scopes it to the
// given world, runs fn, and clears the context before releasing it.
func WithWorldContext(ctx context.Context, db *stdsql.DB, worldID string, fn func(*stdsql.Conn) error) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer func() {
		_ = ClearWorldContext(context.WithoutCancel(ctx), conn)
		_ = conn.Close()
	}()

	if err := SetWorldContext(ctx, conn, worldID); err != nil {
		return err
	}
	return fn(conn)
}

// BeginMaintenanceTx starts a transaction under the mnx_maintenance role,
// which the row policies exempt from tenant gating. Only sessions whose user
// was granted membership can take it; rebuilds and integrity sweeps run here.
func BeginMaintenanceTx(ctx context.Context, db *stdsql.DB) (*stdsql.Tx, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin maintenance transaction: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `SET LOCAL ROLE mnx_maintenance`); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("failed to assume maintenance role: %w", err)
	}
	return tx, nil
}

// RLSStatus reports row-level security state for the tenant-gated tables.
type RLSStatus struct {
	Enabled       bool     `json:"rls_enabled"`
	TablesChecked int      `json:"tables_checked"`
	Issues        []string `json:"issues"`
}

var rlsGatedTables = []string{
	"event_log", "emo_current", "emo_history", "emo_links",
	"notes", "note_tags", "note_links", "graph_nodes", "graph_edges",
}

// ValidateRLSSetup verifies RLS is enabled on every tenant-gated table.
func ValidateRLSSetup(ctx context.Context, db *stdsql.DB) (*RLSStatus, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT tablename, rowsecurity
		FROM pg_tables
		WHERE schemaname = current_schema() AND tablename = ANY($1)`,
		pgTextArray(rlsGatedTables))
	if err != nil {
		return nil, fmt.Errorf("failed to query RLS state: %w", err)
	}
	defer rows.Close()

	status := &RLSStatus{Enabled: true, Issues: []string{}}
	for rows.Next() {
		var table string
		var enabled bool
		if err := rows.Scan(&table, &enabled); err != nil {
			return nil, fmt.Errorf("failed to scan RLS row: %w", err)
		}
		status.TablesChecked++
		if !enabled {
			status.Enabled = false
			status.Issues = append(status.Issues, fmt.Sprintf("RLS not enabled on %s", table))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if status.TablesChecked < len(rlsGatedTables) {
		status.Enabled = false
		status.Issues = append(status.Issues,
			fmt.Sprintf("expected %d gated tables, found %d", len(rlsGatedTables), status.TablesChecked))
	}
	return status, nil
}

// IsolationResult reports the outcome of a live cross-tenant probe.
type IsolationResult struct {
	IsolationWorking bool `json:"isolation_working"`
	CrossAccess      bool `json:"cross_tenant_access"`
}

// TestIsolation inserts a probe row under one world context and attempts to
// read it under another. Used by the admin isolation self-test.
func TestIsolation(ctx context.Context, db *stdsql.DB) (*IsolationResult, error) {
	worldA := uuid.NewString()
	worldB := uuid.NewString()
	probeID := uuid.NewString()

	err := WithWorldContext(ctx, db, worldA, func(conn *stdsql.Conn) error {
		_, err := conn.ExecContext(ctx, `
			INSERT INTO event_log (event_id, world_id, branch, kind, envelope, payload_hash, received_at)
			VALUES ($1, $2, 'main', 'tenancy.probe', '{"probe":true}', '', NOW())`,
			probeID, worldA)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert isolation probe: %w", err)
	}

	var crossCount int
	err = WithWorldContext(ctx, db, worldB, func(conn *stdsql.Conn) error {
		return conn.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM event_log WHERE event_id = $1`, probeID).
			Scan(&crossCount)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to probe cross-tenant read: %w", err)
	}

	// Probe cleanup runs under the owning world.
	err = WithWorldContext(ctx, db, worldA, func(conn *stdsql.Conn) error {
		_, err := conn.ExecContext(ctx, `DELETE FROM event_log WHERE event_id = $1`, probeID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to clean up isolation probe: %w", err)
	}

	return &IsolationResult{
		IsolationWorking: crossCount == 0,
		CrossAccess:      crossCount > 0,
	}, nil
}

// pgTextArray renders a Postgres text[] literal for ANY($1) parameters.
func pgTextArray(items []string) string {
	out := "{"
	for i, s := range items {
		if i > 0 {
			out += ","
		}
		out += s
	}
	return out + "}"
}
