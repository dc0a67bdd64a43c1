package graph

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

func newTestRuntime(t *testing.T) (*projector.Runtime, *stdsql.DB) {
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

	registry := projector.NewRegistry()
	registry.Register(New())
	return projector.NewRuntime(db, registry), db
}

func delivery(t *testing.T, seq int64, worldID string, payload map[string]interface{}) *models.ProjectorEventRequest {
	t.Helper()
	kind := payload["__kind"].(string)
	delete(payload, "__kind")
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

func TestGraphLifecycle(t *testing.T) {
	rt, db := newTestRuntime(t)
	ctx := context.Background()

	worldID := uuid.NewString()
	emoID := uuid.NewString()
	parentID := uuid.NewString()

	seq := int64(1)
	apply := func(payload map[string]interface{}) {
		t.Helper()
		_, err := rt.HandleDelivery(ctx, Name, delivery(t, seq, worldID, payload))
		require.NoError(t, err)
		seq++
	}

	apply(map[string]interface{}{
		"__kind": "emo.created", "emo_id": emoID, "emo_type": "note", "emo_version": 1,
		"world_id": worldID, "branch": "main",
		"parents": []map[string]interface{}{{"emo_id": parentID, "rel": "derived"}},
	})

	var (
		version int
		deleted bool
	)
	err := db.QueryRowContext(ctx, `
		SELECT emo_version, deleted FROM graph_nodes
		WHERE node_id = $1 AND world_id = $2`, emoID, worldID).Scan(&version, &deleted)
	require.NoError(t, err)
	assert.Equal(t, 1, version)
	assert.False(t, deleted)

	var edges int
	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM graph_edges WHERE src_id = $1`, emoID).Scan(&edges)
	require.NoError(t, err)
	assert.Equal(t, 1, edges)

	// Soft delete: node is tombstoned, the lineage edge survives.
	apply(map[string]interface{}{
		"__kind": "emo.deleted", "emo_id": emoID, "emo_version": 2,
		"world_id": worldID, "branch": "main",
	})

	err = db.QueryRowContext(ctx, `
		SELECT emo_version, deleted FROM graph_nodes
		WHERE node_id = $1 AND world_id = $2`, emoID, worldID).Scan(&version, &deleted)
	require.NoError(t, err)
	assert.Equal(t, 2, version)
	assert.True(t, deleted)

	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM graph_edges WHERE src_id = $1`, emoID).Scan(&edges)
	require.NoError(t, err)
	assert.Equal(t, 1, edges, "edges must survive soft deletes")
}

func TestGraphUpdateReplacesEdges(t *testing.T) {
	rt, db := newTestRuntime(t)
	ctx := context.Background()

	worldID := uuid.NewString()
	emoID := uuid.NewString()
	oldRef := uuid.NewString()
	newRef := uuid.NewString()

	_, err := rt.HandleDelivery(ctx, Name, delivery(t, 1, worldID, map[string]interface{}{
		"__kind": "emo.created", "emo_id": emoID, "emo_version": 1,
		"world_id": worldID, "branch": "main",
		"links": []map[string]interface{}{{"kind": "emo", "ref": oldRef}},
	}))
	require.NoError(t, err)

	_, err = rt.HandleDelivery(ctx, Name, delivery(t, 2, worldID, map[string]interface{}{
		"__kind": "emo.updated", "emo_id": emoID, "emo_version": 2,
		"world_id": worldID, "branch": "main",
		"links": []map[string]interface{}{{"kind": "emo", "ref": newRef}},
	}))
	require.NoError(t, err)

	rows, err := db.QueryContext(ctx,
		`SELECT dst_id FROM graph_edges WHERE src_id = $1`, emoID)
	require.NoError(t, err)
	defer rows.Close()

	var dsts []string
	for rows.Next() {
		var dst string
		require.NoError(t, rows.Scan(&dst))
		dsts = append(dsts, dst)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{newRef}, dsts)
}

func TestGraphSnapshotOrdering(t *testing.T) {
	rt, _ := newTestRuntime(t)
	ctx := context.Background()

	worldID := uuid.NewString()
	ids := []string{
		"00000000-0000-4000-8000-000000000002",
		"00000000-0000-4000-8000-000000000001",
	}
	for i, id := range ids {
		_, err := rt.HandleDelivery(ctx, Name, delivery(t, int64(i+1), worldID, map[string]interface{}{
			"__kind": "emo.created", "emo_id": id, "emo_version": 1,
			"world_id": worldID, "branch": "main",
		}))
		require.NoError(t, err)
	}

	snap, err := rt.Snapshot(ctx, Name, worldID, "main")
	require.NoError(t, err)
	nodes, ok := snap.Snapshot["nodes"].([]interface{})
	require.True(t, ok)
	require.Len(t, nodes, 2)

	first := nodes[0].(map[string]interface{})
	assert.Equal(t, ids[1], first["node_id"], "nodes must be ordered by id regardless of insertion order")
	assert.NotEmpty(t, snap.StateHash)
}
