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
	"github.com/mnemonic-nexus/mnx/pkg/services"
	testdb "github.com/mnemonic-nexus/mnx/test/database"
)

func TestOutboxStatusCountsBacklog(t *testing.T) {
	client := testdb.NewMigratedClient(t)
	app := newTestApp(t, client)
	ctx := context.Background()

	worldID := uuid.NewString()
	for i := 0; i < 2; i++ {
		env := newEnvelope(worldID, emo.KindCreated, emoPayload(uuid.NewString(), 1, "backlog"))
		_, err := app.events.AppendEvent(ctx, env, "")
		require.NoError(t, err)
	}

	status, err := app.admin.OutboxStatus(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), status.UnpublishedCount)
	assert.Equal(t, int64(0), status.RetryScheduled)
	assert.Equal(t, int64(0), status.DeadLetterCount)
	require.NotNil(t, status.OldestUnpublished)
}

func TestRequeueDeadLetter(t *testing.T) {
	client := testdb.NewMigratedClient(t)
	app := newTestApp(t, client)
	ctx := context.Background()

	worldID := uuid.NewString()
	env := newEnvelope(worldID, emo.KindCreated, emoPayload(uuid.NewString(), 1, "doomed"))
	resp, err := app.events.AppendEvent(ctx, env, "")
	require.NoError(t, err)

	// Quarantine the entry the way the publisher does after exhausting its
	// retry budget.
	_, err = client.DB().ExecContext(ctx, `
		UPDATE outbox SET published_at = now(), attempts = 3, last_error = 'subscriber rejected'
		WHERE global_seq = $1`, resp.GlobalSeq)
	require.NoError(t, err)
	_, err = client.DB().ExecContext(ctx, `
		INSERT INTO dead_letters (global_seq, event_id, world_id, branch, kind, envelope, error, publisher_id, attempts)
		SELECT global_seq, event_id, world_id, branch, kind, envelope, 'subscriber rejected', 'test-pub', 3
		FROM outbox WHERE global_seq = $1`, resp.GlobalSeq)
	require.NoError(t, err)

	letters, err := app.admin.ListDeadLetters(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, 1, letters.Count)

	require.NoError(t, app.admin.RequeueDeadLetter(ctx, resp.GlobalSeq))

	status, err := app.admin.OutboxStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), status.UnpublishedCount)
	assert.Equal(t, int64(0), status.DeadLetterCount)

	err = app.admin.RequeueDeadLetter(ctx, resp.GlobalSeq+100)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestProjectorLag(t *testing.T) {
	client := testdb.NewMigratedClient(t)
	app := newTestApp(t, client)
	ctx := context.Background()

	worldID := uuid.NewString()

	first := newEnvelope(worldID, emo.KindCreated, emoPayload(uuid.NewString(), 1, "first"))
	resp, err := app.events.AppendEvent(ctx, first, "")
	require.NoError(t, err)
	deliver(t, app.runtime, "relational", first, resp)

	// A second event the projector has not seen yet.
	second := newEnvelope(worldID, emo.KindCreated, emoPayload(uuid.NewString(), 1, "second"))
	_, err = app.events.AppendEvent(ctx, second, "")
	require.NoError(t, err)

	entries, err := app.admin.ProjectorLag(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "relational", entries[0].ProjectorName)
	assert.Equal(t, resp.GlobalSeq, entries[0].LastProcessedSeq)
	assert.Equal(t, int64(1), entries[0].Lag)
}

func TestTagCountsAndActiveView(t *testing.T) {
	client := testdb.NewMigratedClient(t)
	app := newTestApp(t, client)
	ctx := context.Background()

	worldID := uuid.NewString()
	live1 := uuid.NewString()
	live2 := uuid.NewString()
	doomed := uuid.NewString()

	for _, step := range []struct {
		kind    string
		payload map[string]interface{}
	}{
		{emo.KindCreated, emoPayload(live1, 1, "first", "ops")},
		{emo.KindCreated, emoPayload(live2, 1, "second", "ops", "infra")},
		{emo.KindCreated, emoPayload(doomed, 1, "third", "ops")},
		{emo.KindDeleted, map[string]interface{}{
			"emo_id": doomed, "emo_version": 2, "deletion_reason": "retired",
		}},
	} {
		env := newEnvelope(worldID, step.kind, step.payload)
		resp, err := app.events.AppendEvent(ctx, env, "")
		require.NoError(t, err)
		deliver(t, app.runtime, "relational", env, resp)
	}

	// Soft-deleted rows drop out of the active view but stay in the table.
	err := database.WithWorldContext(ctx, client.DB(), worldID, func(conn *stdsql.Conn) error {
		var total, active int
		if err := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM emo_current`).Scan(&total); err != nil {
			return err
		}
		if err := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM emo_active`).Scan(&active); err != nil {
			return err
		}
		assert.Equal(t, 3, total)
		assert.Equal(t, 2, active)
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, app.admin.RefreshTagCounts(ctx))

	counts := map[string]int{}
	rows, err := client.DB().QueryContext(ctx,
		`SELECT tag, emo_count FROM emo_tag_counts WHERE world_id = $1`, worldID)
	require.NoError(t, err)
	defer rows.Close()
	for rows.Next() {
		var tag string
		var n int
		require.NoError(t, rows.Scan(&tag, &n))
		counts[tag] = n
	}
	require.NoError(t, rows.Err())

	assert.Equal(t, map[string]int{"ops": 2, "infra": 1}, counts)
}
