package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// HealthStatus reports connectivity, connection pool pressure, and the
// tenant-isolation posture of the schema.
type HealthStatus struct {
	Status          string `json:"status"`
	ResponseTime    int64  `json:"response_time_ms"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
	WaitCount       int64  `json:"wait_count"`
	WaitDuration    int64  `json:"wait_duration_ms"`
	MaxOpenConns    int    `json:"max_open_conns"`
	RLSForcedTables int    `json:"rls_forced_tables"`
}

// Health checks database connectivity and returns pool statistics plus the
// number of tables with forced row-level security. A schema that lost its
// RLS posture (for example after a careless migration) shows up here as a
// forced-table count below the expected nine.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()

	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).Milliseconds(),
		}, err
	}

	var rlsForced int
	err := db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM pg_class c
		JOIN pg_namespace n ON n.oid = c.relnamespace
		WHERE n.nspname = current_schema() AND c.relforcerowsecurity`).Scan(&rlsForced)
	if err != nil {
		return &HealthStatus{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).Milliseconds(),
		}, fmt.Errorf("failed to inspect RLS posture: %w", err)
	}

	stats := db.Stats()

	return &HealthStatus{
		Status:          "healthy",
		ResponseTime:    time.Since(start).Milliseconds(),
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		WaitCount:       stats.WaitCount,
		WaitDuration:    stats.WaitDuration.Milliseconds(),
		MaxOpenConns:    stats.MaxOpenConnections,
		RLSForcedTables: rlsForced,
	}, nil
}
