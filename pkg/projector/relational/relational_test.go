package relational

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/mnemonic-nexus/mnx/ent"
	"github.com/mnemonic-nexus/mnx/pkg/envelope"
	"github.com/mnemonic-nexus/mnx/pkg/models"
	"github.com/mnemonic-nexus/mnx/pkg/projector"
)

func newTestDB(t *testing.T) *stdsql.DB {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}

	ctx := context.Background()
	connStr := os.Getenv("CI_DATABASE_URL")
	if connStr == "" {
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)
		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})
		connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))
	require.NoError(t, entClient.Schema.Create(ctx))

	t.Cleanup(func() { entClient.Close() })
	return db
}

func newTestRuntime(t *testing.T) (*projector.Runtime, *stdsql.DB) {
	db := newTestDB(t)
	registry := projector.NewRegistry()
	registry.Register(New())
	return projector.NewRuntime(db, registry), db
}

// delivery builds a publisher-shaped request with a consistent payload hash
// and a fixed per-sequence receipt time, so replays are reproducible.
func delivery(t *testing.T, seq int64, worldID, kind string, payload map[string]interface{}) *models.ProjectorEventRequest {
	t.Helper()
	env := &envelope.Envelope{
		WorldID:    worldID,
		Branch:     "main",
		Kind:       kind,
		Payload:    payload,
		By:         envelope.By{Agent: "user:test"},
		EventID:    uuid.NewString(),
		ReceivedAt: fmt.Sprintf("2024-01-15T10:30:%02d.000Z", seq%60),
	}
	hash, err := env.ComputePayloadHash()
	require.NoError(t, err)
	return &models.ProjectorEventRequest{
		GlobalSeq:   seq,
		EventID:     env.EventID,
		Envelope:    env,
		PayloadHash: hash,
	}
}

func emoPayload(emoID string, version int, worldID string, extra map[string]interface{}) map[string]interface{} {
	p := map[string]interface{}{
		"emo_id":      emoID,
		"emo_type":    "note",
		"emo_version": version,
		"world_id":    worldID,
		"branch":      "main",
	}
	for k, v := range extra {
		p[k] = v
	}
	return p
}

func TestEMOLifecycle(t *testing.T) {
	rt, db := newTestRuntime(t)
	ctx := context.Background()

	worldID := uuid.NewString()
	emoID := uuid.NewString()

	events := []*models.ProjectorEventRequest{
		delivery(t, 1, worldID, "emo.created", emoPayload(emoID, 1, worldID, map[string]interface{}{
			"content": "A", "tags": []string{"alpha"},
		})),
		delivery(t, 2, worldID, "emo.updated", emoPayload(emoID, 2, worldID, map[string]interface{}{
			"content": "B", "tags": []string{"alpha", "beta"},
		})),
		delivery(t, 3, worldID, "emo.deleted", emoPayload(emoID, 3, worldID, map[string]interface{}{
			"deletion_reason": "r",
		})),
	}

	for _, ev := range events {
		ack, err := rt.HandleDelivery(ctx, Name, ev)
		require.NoError(t, err)
		assert.Equal(t, "applied", ack.Status)
	}

	var (
		version int
		deleted bool
		reason  stdsql.NullString
	)
	err := db.QueryRowContext(ctx, `
		SELECT emo_version, deleted, deletion_reason FROM emo_current
		WHERE emo_id = $1 AND world_id = $2 AND branch = 'main'`,
		emoID, worldID).Scan(&version, &deleted, &reason)
	require.NoError(t, err)
	assert.Equal(t, 3, version)
	assert.True(t, deleted)
	assert.Equal(t, "r", reason.String)

	rows, err := db.QueryContext(ctx, `
		SELECT operation FROM emo_history
		WHERE emo_id = $1 AND world_id = $2 ORDER BY emo_version`,
		emoID, worldID)
	require.NoError(t, err)
	defer rows.Close()
	var ops []string
	for rows.Next() {
		var op string
		require.NoError(t, rows.Scan(&op))
		ops = append(ops, op)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"created", "updated", "deleted"}, ops)
}

func TestDuplicateDeliveryIsGated(t *testing.T) {
	rt, db := newTestRuntime(t)
	ctx := context.Background()

	worldID := uuid.NewString()
	emoID := uuid.NewString()
	ev := delivery(t, 1, worldID, "emo.created", emoPayload(emoID, 1, worldID, map[string]interface{}{
		"content": "once",
	}))

	ack, err := rt.HandleDelivery(ctx, Name, ev)
	require.NoError(t, err)
	assert.Equal(t, "applied", ack.Status)

	ack, err = rt.HandleDelivery(ctx, Name, ev)
	require.NoError(t, err)
	assert.Equal(t, "duplicate", ack.Status)

	var count int
	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM emo_history WHERE emo_id = $1`, emoID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStaleUpdateLosesByVersion(t *testing.T) {
	rt, db := newTestRuntime(t)
	ctx := context.Background()

	worldID := uuid.NewString()
	emoID := uuid.NewString()

	seq := int64(1)
	apply := func(kind string, payload map[string]interface{}) {
		t.Helper()
		_, err := rt.HandleDelivery(ctx, Name, delivery(t, seq, worldID, kind, payload))
		require.NoError(t, err)
		seq++
	}

	apply("emo.created", emoPayload(emoID, 1, worldID, map[string]interface{}{"content": "v1"}))
	apply("emo.updated", emoPayload(emoID, 3, worldID, map[string]interface{}{"content": "v3"}))
	// Arrives later in the log but targets an older version: must not win.
	apply("emo.updated", emoPayload(emoID, 2, worldID, map[string]interface{}{"content": "v2"}))

	var (
		version int
		content string
	)
	err := db.QueryRowContext(ctx, `
		SELECT emo_version, content FROM emo_current
		WHERE emo_id = $1 AND world_id = $2`,
		emoID, worldID).Scan(&version, &content)
	require.NoError(t, err)
	assert.Equal(t, 3, version)
	assert.Equal(t, "v3", content)
}

func TestLinkedMergesEdges(t *testing.T) {
	rt, db := newTestRuntime(t)
	ctx := context.Background()

	worldID := uuid.NewString()
	emoID := uuid.NewString()
	parentID := uuid.NewString()
	otherID := uuid.NewString()

	_, err := rt.HandleDelivery(ctx, Name, delivery(t, 1, worldID, "emo.created",
		emoPayload(emoID, 1, worldID, map[string]interface{}{
			"content": "c",
			"parents": []map[string]interface{}{{"emo_id": parentID, "rel": "derived"}},
		})))
	require.NoError(t, err)

	_, err = rt.HandleDelivery(ctx, Name, delivery(t, 2, worldID, "emo.linked",
		emoPayload(emoID, 2, worldID, map[string]interface{}{
			"links": []map[string]interface{}{
				{"kind": "emo", "ref": otherID},
				{"kind": "uri", "ref": "https://example.com/doc"},
			},
		})))
	require.NoError(t, err)

	var edges int
	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM emo_links WHERE emo_id = $1`, emoID).Scan(&edges)
	require.NoError(t, err)
	assert.Equal(t, 3, edges, "parent edge plus both links")

	var version int
	err = db.QueryRowContext(ctx, `
		SELECT emo_version FROM emo_current WHERE emo_id = $1`, emoID).Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, 2, version)
}

func TestNoteLens(t *testing.T) {
	rt, db := newTestRuntime(t)
	ctx := context.Background()

	worldID := uuid.NewString()

	seq := int64(1)
	apply := func(kind string, payload map[string]interface{}) {
		t.Helper()
		_, err := rt.HandleDelivery(ctx, Name, delivery(t, seq, worldID, kind, payload))
		require.NoError(t, err)
		seq++
	}

	apply("note.created", map[string]interface{}{"id": "n1", "title": "First", "body": "hello"})
	apply("note.created", map[string]interface{}{"id": "n2", "title": "Second"})
	apply("tag.added", map[string]interface{}{"note_id": "n1", "tag": "inbox"})
	apply("tag.added", map[string]interface{}{"note_id": "n1", "tag": "todo"})
	apply("link.added", map[string]interface{}{"src": "n1", "dst": "n2"})
	apply("note.updated", map[string]interface{}{"id": "n1", "title": "First!", "body": "hello again"})
	apply("tag.removed", map[string]interface{}{"note_id": "n1", "tag": "todo"})

	var title, body string
	err := db.QueryRowContext(ctx, `
		SELECT title, body FROM notes WHERE world_id = $1 AND note_id = 'n1'`,
		worldID).Scan(&title, &body)
	require.NoError(t, err)
	assert.Equal(t, "First!", title)
	assert.Equal(t, "hello again", body)

	snap, err := rt.Snapshot(ctx, Name, worldID, "main")
	require.NoError(t, err)
	notes, ok := snap.Snapshot["notes"].([]interface{})
	require.True(t, ok)
	require.Len(t, notes, 2)

	n1 := notes[0].(map[string]interface{})
	assert.Equal(t, "n1", n1["note_id"])
	assert.Equal(t, []string{"inbox"}, n1["tags"])
	require.Len(t, n1["links"], 1)

	apply("note.deleted", map[string]interface{}{"id": "n1"})
	var remaining int
	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM notes WHERE world_id = $1`, worldID).Scan(&remaining)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)
}

// TestReplayDeterminism clears the lens and re-applies the same sequence;
// the snapshot hash must not change.
func TestReplayDeterminism(t *testing.T) {
	rt, db := newTestRuntime(t)
	ctx := context.Background()

	worldID := uuid.NewString()
	emoA := uuid.NewString()
	emoB := uuid.NewString()

	events := []*models.ProjectorEventRequest{
		delivery(t, 1, worldID, "emo.created", emoPayload(emoA, 1, worldID, map[string]interface{}{
			"content": "alpha", "tags": []string{"x", "y"},
		})),
		delivery(t, 2, worldID, "emo.created", emoPayload(emoB, 1, worldID, map[string]interface{}{
			"content": "beta",
			"parents": []map[string]interface{}{{"emo_id": emoA, "rel": "derived"}},
		})),
		delivery(t, 3, worldID, "emo.updated", emoPayload(emoA, 2, worldID, map[string]interface{}{
			"content": "alpha2", "tags": []string{"y"},
		})),
		delivery(t, 4, worldID, "note.created", map[string]interface{}{"id": "n1", "title": "t", "body": "b"}),
		delivery(t, 5, worldID, "emo.deleted", emoPayload(emoB, 2, worldID, map[string]interface{}{
			"deletion_reason": "superseded",
		})),
	}

	for _, ev := range events {
		_, err := rt.HandleDelivery(ctx, Name, ev)
		require.NoError(t, err)
	}

	first, err := rt.Snapshot(ctx, Name, worldID, "main")
	require.NoError(t, err)

	// Clear the lens and the watermark, then replay the identical sequence.
	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	p := New()
	require.NoError(t, p.Truncate(ctx, tx, worldID, "main"))
	_, err = tx.ExecContext(ctx,
		`UPDATE watermarks SET last_processed_seq = 0 WHERE world_id = $1`, worldID)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	for _, ev := range events {
		_, err := rt.HandleDelivery(ctx, Name, ev)
		require.NoError(t, err)
	}

	second, err := rt.Snapshot(ctx, Name, worldID, "main")
	require.NoError(t, err)
	assert.Equal(t, first.StateHash, second.StateHash)
}

func TestSnapshotIsolatedPerStream(t *testing.T) {
	rt, _ := newTestRuntime(t)
	ctx := context.Background()

	worldA := uuid.NewString()
	worldB := uuid.NewString()

	_, err := rt.HandleDelivery(ctx, Name, delivery(t, 1, worldA, "emo.created",
		emoPayload(uuid.NewString(), 1, worldA, map[string]interface{}{"content": "a"})))
	require.NoError(t, err)

	snap, err := rt.Snapshot(ctx, Name, worldB, "main")
	require.NoError(t, err)
	emos, ok := snap.Snapshot["emos"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, emos)
}
