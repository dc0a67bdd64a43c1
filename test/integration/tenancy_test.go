package integration

import (
	"context"
	stdsql "database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnemonic-nexus/mnx/pkg/database"
	"github.com/mnemonic-nexus/mnx/pkg/services"
	testdb "github.com/mnemonic-nexus/mnx/test/database"
)

func TestRLSIsolatesTenantReads(t *testing.T) {
	client := testdb.NewMigratedClient(t)
	app := newTestApp(t, client)
	ctx := context.Background()

	worldA := uuid.NewString()
	worldB := uuid.NewString()

	env := newEnvelope(worldA, "note.created", map[string]interface{}{
		"id": "n1", "title": "hello",
	})
	_, err := app.events.AppendEvent(ctx, env, "")
	require.NoError(t, err)

	countFor := func(worldID string) int {
		var n int
		err := database.WithWorldContext(ctx, client.DB(), worldID, func(conn *stdsql.Conn) error {
			return conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM event_log`).Scan(&n)
		})
		require.NoError(t, err)
		return n
	}

	assert.Equal(t, 1, countFor(worldA))
	assert.Equal(t, 0, countFor(worldB))

	// Without any world context the policies yield the empty set, not an error.
	var n int
	err = client.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM event_log`).Scan(&n)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestValidateRLSSetup(t *testing.T) {
	client := testdb.NewMigratedClient(t)

	status, err := database.ValidateRLSSetup(context.Background(), client.DB())
	require.NoError(t, err)

	assert.True(t, status.Enabled)
	assert.Equal(t, 9, status.TablesChecked)
	assert.Empty(t, status.Issues)

	// Health reports the same posture for operators.
	health, err := database.Health(context.Background(), client.DB())
	require.NoError(t, err)
	assert.Equal(t, 9, health.RLSForcedTables)
}

func TestCrossTenantIsolation(t *testing.T) {
	client := testdb.NewMigratedClient(t)

	result, err := database.TestIsolation(context.Background(), client.DB())
	require.NoError(t, err)

	assert.True(t, result.IsolationWorking)
	assert.False(t, result.CrossAccess)
}

func TestMaintenanceRoleSeesEveryWorld(t *testing.T) {
	client := testdb.NewMigratedClient(t)
	app := newTestApp(t, client)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		env := newEnvelope(uuid.NewString(), "note.created", map[string]interface{}{
			"id": "n1", "title": "per-world note",
		})
		_, err := app.events.AppendEvent(ctx, env, "")
		require.NoError(t, err)
	}

	tx, err := database.BeginMaintenanceTx(ctx, client.DB())
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	var n int
	require.NoError(t, tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM event_log`).Scan(&n))
	assert.Equal(t, 2, n, "maintenance role should see both worlds")
}

func TestAppendIdempotencyKeyConflict(t *testing.T) {
	client := testdb.NewMigratedClient(t)
	app := newTestApp(t, client)
	ctx := context.Background()

	worldID := uuid.NewString()

	first := newEnvelope(worldID, "note.created", map[string]interface{}{
		"id": "n1", "title": "original",
	})
	resp, err := app.events.AppendEvent(ctx, first, "memo-1")
	require.NoError(t, err)

	// Same key, different payload: the first-accepted event wins.
	replay := newEnvelope(worldID, "note.created", map[string]interface{}{
		"id": "n1", "title": "changed",
	})
	_, err = app.events.AppendEvent(ctx, replay, "memo-1")

	var conflict *services.IdempotencyConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, resp.GlobalSeq, conflict.GlobalSeq)
	assert.Equal(t, resp.EventID, conflict.EventID)

	// The conflict must not have appended anything.
	var n int
	err = database.WithWorldContext(ctx, client.DB(), worldID, func(conn *stdsql.Conn) error {
		return conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM event_log`).Scan(&n)
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
