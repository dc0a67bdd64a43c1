package integration

import (
	"context"
	stdsql "database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnemonic-nexus/mnx/pkg/database"
	"github.com/mnemonic-nexus/mnx/pkg/emo"
	"github.com/mnemonic-nexus/mnx/pkg/models"
	testdb "github.com/mnemonic-nexus/mnx/test/database"
)

// TestRebuildReproducesState drives a stream through the relational
// projector, corrupts the lens out-of-band, and verifies a rebuild restores
// the exact pre-corruption state hash.
func TestRebuildReproducesState(t *testing.T) {
	client := testdb.NewMigratedClient(t)
	app := newTestApp(t, client)
	ctx := context.Background()

	worldID := uuid.NewString()
	emoA := uuid.NewString()
	emoB := uuid.NewString()

	steps := []struct {
		kind    string
		payload map[string]interface{}
	}{
		{emo.KindCreated, emoPayload(emoA, 1, "alpha v1", "ops")},
		{emo.KindCreated, emoPayload(emoB, 1, "beta v1")},
		{emo.KindUpdated, emoPayload(emoA, 2, "alpha v2", "ops", "infra")},
		{emo.KindDeleted, map[string]interface{}{
			"emo_id": emoB, "emo_version": 2, "deletion_reason": "superseded",
		}},
	}

	var lastSeq int64
	for _, step := range steps {
		env := newEnvelope(worldID, step.kind, step.payload)
		resp, err := app.events.AppendEvent(ctx, env, "")
		require.NoError(t, err)

		ack := deliver(t, app.runtime, "relational", env, resp)
		assert.Equal(t, "applied", ack.Status)
		lastSeq = resp.GlobalSeq
	}

	before, err := app.runtime.Snapshot(ctx, "relational", worldID, "main")
	require.NoError(t, err)
	require.NotEmpty(t, before.StateHash)

	// Corrupt the lens behind the projector's back.
	err = database.WithWorldContext(ctx, client.DB(), worldID, func(conn *stdsql.Conn) error {
		_, err := conn.ExecContext(ctx, `UPDATE emo_current SET content = 'corrupted'`)
		return err
	})
	require.NoError(t, err)

	corrupted, err := app.runtime.Snapshot(ctx, "relational", worldID, "main")
	require.NoError(t, err)
	require.NotEqual(t, before.StateHash, corrupted.StateHash)

	result, err := app.runtime.Rebuild(ctx, "relational", &models.RebuildRequest{WorldID: worldID, Branch: "main"})
	require.NoError(t, err)

	assert.Equal(t, int64(len(steps)), result.EventsReplayed)
	assert.Equal(t, lastSeq, result.FinalWatermark)
	assert.Equal(t, before.StateHash, result.StateHash)

	after, err := app.runtime.Snapshot(ctx, "relational", worldID, "main")
	require.NoError(t, err)
	assert.Equal(t, before.StateHash, after.StateHash)
}

// TestRebuildViaAdminService covers the admin path, including the branch
// default.
func TestRebuildViaAdminService(t *testing.T) {
	client := testdb.NewMigratedClient(t)
	app := newTestApp(t, client)
	ctx := context.Background()

	worldID := uuid.NewString()
	emoID := uuid.NewString()

	env := newEnvelope(worldID, emo.KindCreated, emoPayload(emoID, 1, "only event"))
	resp, err := app.events.AppendEvent(ctx, env, "")
	require.NoError(t, err)
	deliver(t, app.runtime, "graph", env, resp)

	result, err := app.admin.RebuildProjector(ctx, "graph", &models.RebuildRequest{WorldID: worldID})
	require.NoError(t, err)

	assert.Equal(t, "graph", result.Projector)
	assert.Equal(t, "main", result.Branch)
	assert.Equal(t, int64(1), result.EventsReplayed)

	var nodes int
	err = database.WithWorldContext(ctx, client.DB(), worldID, func(conn *stdsql.Conn) error {
		return conn.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM graph_nodes WHERE node_id = $1`, emoID).Scan(&nodes)
	})
	require.NoError(t, err)
	assert.Equal(t, 1, nodes)
}

// TestRebuildCatchUpKeepsState appends two events but only delivers the
// first, then runs a non-clearing rebuild. Only the undelivered event is
// replayed and the existing lens rows survive.
func TestRebuildCatchUpKeepsState(t *testing.T) {
	client := testdb.NewMigratedClient(t)
	app := newTestApp(t, client)
	ctx := context.Background()

	worldID := uuid.NewString()
	emoA := uuid.NewString()
	emoB := uuid.NewString()

	envA := newEnvelope(worldID, emo.KindCreated, emoPayload(emoA, 1, "delivered"))
	respA, err := app.events.AppendEvent(ctx, envA, "")
	require.NoError(t, err)
	deliver(t, app.runtime, "relational", envA, respA)

	envB := newEnvelope(worldID, emo.KindCreated, emoPayload(emoB, 1, "missed"))
	respB, err := app.events.AppendEvent(ctx, envB, "")
	require.NoError(t, err)

	keep := false
	result, err := app.runtime.Rebuild(ctx, "relational", &models.RebuildRequest{
		WorldID:       worldID,
		Branch:        "main",
		ClearExisting: &keep,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.EventsReplayed, "only the event above the watermark replays")
	assert.Equal(t, respB.GlobalSeq, result.FinalWatermark)

	var current int
	err = database.WithWorldContext(ctx, client.DB(), worldID, func(conn *stdsql.Conn) error {
		return conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM emo_current`).Scan(&current)
	})
	require.NoError(t, err)
	assert.Equal(t, 2, current, "pre-existing row survives a catch-up rebuild")
}
