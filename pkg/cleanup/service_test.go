package cleanup

import (
	"context"
	stdsql "database/sql"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/mnemonic-nexus/mnx/test/database"
)

// insertPublished writes an event_log row and its outbox row with a
// published_at shifted by age into the past. Returns the global_seq.
func insertPublished(t *testing.T, db *stdsql.DB, worldID string, age time.Duration) int64 {
	t.Helper()
	ctx := context.Background()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `SELECT set_config('app.world_id', $1, true)`, worldID)
	require.NoError(t, err)

	var seq int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO event_log (event_id, world_id, branch, kind, envelope, payload_hash, received_at)
		VALUES ($1, $2, 'main', 'note.created', '{}', '', now())
		RETURNING global_seq`,
		uuid.NewString(), worldID).Scan(&seq)
	require.NoError(t, err)

	_, err = tx.ExecContext(ctx, `
		INSERT INTO outbox (global_seq, event_id, world_id, branch, kind, envelope, payload_hash, received_at, published_at)
		SELECT global_seq, event_id, world_id, branch, kind, envelope, payload_hash, received_at,
		       now() - make_interval(secs => $2)
		FROM event_log WHERE global_seq = $1`,
		seq, age.Seconds())
	require.NoError(t, err)

	require.NoError(t, tx.Commit())
	return seq
}

func TestPruneOutbox(t *testing.T) {
	client := testdb.NewMigratedClient(t)
	db := client.DB()
	ctx := context.Background()
	worldID := uuid.NewString()

	stale := insertPublished(t, db, worldID, 48*time.Hour)
	fresh := insertPublished(t, db, worldID, time.Hour)
	quarantined := insertPublished(t, db, worldID, 48*time.Hour)

	_, err := db.ExecContext(ctx, `
		INSERT INTO dead_letters (global_seq, event_id, world_id, branch, kind, envelope, error, publisher_id, attempts)
		SELECT global_seq, event_id, world_id, branch, kind, envelope, 'rejected', 'test-pub', 3
		FROM outbox WHERE global_seq = $1`, quarantined)
	require.NoError(t, err)

	svc := NewService(db, &Config{OutboxRetention: 24 * time.Hour, Interval: time.Hour})
	svc.pruneOutbox(ctx)

	remaining := map[int64]bool{}
	rows, err := db.QueryContext(ctx, `SELECT global_seq FROM outbox ORDER BY global_seq`)
	require.NoError(t, err)
	defer rows.Close()
	for rows.Next() {
		var seq int64
		require.NoError(t, rows.Scan(&seq))
		remaining[seq] = true
	}
	require.NoError(t, rows.Err())

	assert.False(t, remaining[stale], "stale published row should be pruned")
	assert.True(t, remaining[fresh], "row inside the retention window should survive")
	assert.True(t, remaining[quarantined], "dead-lettered row must survive for requeue")
}

func TestServiceStartStop(t *testing.T) {
	client := testdb.NewMigratedClient(t)

	svc := NewService(client.DB(), &Config{
		OutboxRetention:  24 * time.Hour,
		TagCountsRefresh: true,
		Interval:         time.Hour,
	})
	svc.Start(context.Background())
	svc.Stop()

	// Stop is idempotent and a second Start after Stop is a no-op safe call.
	svc.Stop()
}

func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "defaults",
			envVars: map[string]string{},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 7*24*time.Hour, cfg.OutboxRetention)
				assert.True(t, cfg.TagCountsRefresh)
				assert.Equal(t, time.Hour, cfg.Interval)
			},
		},
		{
			name: "custom values",
			envVars: map[string]string{
				"CLEANUP_OUTBOX_RETENTION":   "48h",
				"CLEANUP_INTERVAL":           "10m",
				"CLEANUP_TAG_COUNTS_REFRESH": "false",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 48*time.Hour, cfg.OutboxRetention)
				assert.False(t, cfg.TagCountsRefresh)
				assert.Equal(t, 10*time.Minute, cfg.Interval)
			},
		},
		{
			name:    "invalid retention",
			envVars: map[string]string{"CLEANUP_OUTBOX_RETENTION": "soon"},
			wantErr: true,
		},
		{
			name:    "negative interval",
			envVars: map[string]string{"CLEANUP_INTERVAL": "-5m"},
			wantErr: true,
		},
	}

	envKeys := []string{"CLEANUP_OUTBOX_RETENTION", "CLEANUP_INTERVAL", "CLEANUP_TAG_COUNTS_REFRESH"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range envKeys {
				os.Unsetenv(key)
			}
			for key, val := range tt.envVars {
				os.Setenv(key, val)
			}
			t.Cleanup(func() {
				for _, key := range envKeys {
					os.Unsetenv(key)
				}
			})

			cfg, err := LoadConfigFromEnv()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
