package integration

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnemonic-nexus/mnx/pkg/api"
	"github.com/mnemonic-nexus/mnx/pkg/database"
	"github.com/mnemonic-nexus/mnx/pkg/emo"
	"github.com/mnemonic-nexus/mnx/pkg/publisher"
	testdb "github.com/mnemonic-nexus/mnx/test/database"
)

// TestPipelineDeliversToProjectors runs the full path: gateway append,
// outbox claim, HTTP fan-out, projector apply, watermark advance.
func TestPipelineDeliversToProjectors(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	client := shared.NewClient(t)
	app := newTestApp(t, client)
	ctx := context.Background()

	server := api.NewServer(client, app.events, app.admin, app.runtime, nil)
	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	subs := []publisher.Subscriber{
		{Name: "relational", URL: ts.URL + "/projectors/relational/events"},
		{Name: "graph", URL: ts.URL + "/projectors/graph/events"},
	}
	pub := publisher.New(client.DB(), newPublisherConfig("it-pub-1", subs))
	require.NoError(t, pub.Start(ctx))
	defer pub.Stop()

	worldID := uuid.NewString()
	emoID := uuid.NewString()
	env := newEnvelope(worldID, emo.KindCreated, emoPayload(emoID, 1, "pipeline body", "ops"))
	resp, err := app.events.AppendEvent(ctx, env, "")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		var published bool
		err := client.DB().QueryRowContext(ctx,
			`SELECT published_at IS NOT NULL FROM outbox WHERE global_seq = $1`,
			resp.GlobalSeq).Scan(&published)
		return err == nil && published
	}, 15*time.Second, 100*time.Millisecond, "outbox entry was never published")

	var current, nodes int
	err = database.WithWorldContext(ctx, client.DB(), worldID, func(conn *stdsql.Conn) error {
		if err := conn.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM emo_current WHERE emo_id = $1`, emoID).Scan(&current); err != nil {
			return err
		}
		return conn.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM graph_nodes WHERE node_id = $1`, emoID).Scan(&nodes)
	})
	require.NoError(t, err)
	assert.Equal(t, 1, current, "relational lens should hold the EMO")
	assert.Equal(t, 1, nodes, "graph lens should hold the node")

	marks, err := app.runtime.Watermarks(ctx, "relational")
	require.NoError(t, err)
	require.Len(t, marks, 1)
	assert.Equal(t, resp.GlobalSeq, marks[0].LastProcessedSeq)
}

// TestConcurrentPublishersDeliverOnce runs two publisher replicas against
// the same outbox. The claim lease keeps them from double-claiming; the
// watermark gate absorbs any redelivery.
func TestConcurrentPublishersDeliverOnce(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	clientA := shared.NewClient(t)
	clientB := shared.NewClient(t)
	app := newTestApp(t, clientA)
	ctx := context.Background()

	server := api.NewServer(clientA, app.events, app.admin, app.runtime, nil)
	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	subs := []publisher.Subscriber{
		{Name: "relational", URL: ts.URL + "/projectors/relational/events"},
	}
	pubA := publisher.New(clientA.DB(), newPublisherConfig("replica-a", subs))
	pubB := publisher.New(clientB.DB(), newPublisherConfig("replica-b", subs))
	require.NoError(t, pubA.Start(ctx))
	defer pubA.Stop()
	require.NoError(t, pubB.Start(ctx))
	defer pubB.Stop()

	worldID := uuid.NewString()
	const events = 5
	for i := 1; i <= events; i++ {
		env := newEnvelope(worldID, emo.KindCreated,
			emoPayload(uuid.NewString(), 1, fmt.Sprintf("body %d", i), "fanout"))
		_, err := app.events.AppendEvent(ctx, env, "")
		require.NoError(t, err)
	}

	require.Eventually(t, func() bool {
		var unpublished int
		err := clientA.DB().QueryRowContext(ctx,
			`SELECT COUNT(*) FROM outbox WHERE published_at IS NULL`).Scan(&unpublished)
		return err == nil && unpublished == 0
	}, 20*time.Second, 100*time.Millisecond, "outbox never drained")

	var dead int
	require.NoError(t, clientA.DB().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM dead_letters`).Scan(&dead))
	assert.Zero(t, dead)

	// Exactly one history row per event, no matter which replica delivered.
	var history int
	err := database.WithWorldContext(ctx, clientA.DB(), worldID, func(conn *stdsql.Conn) error {
		return conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM emo_history`).Scan(&history)
	})
	require.NoError(t, err)
	assert.Equal(t, events, history)
}

// TestStructuralRejectGoesToDeadLetters points the publisher at a
// subscriber that rejects everything with 400. Structural rejects skip the
// retry budget and quarantine immediately; a requeue makes the entry
// claimable again.
func TestStructuralRejectGoesToDeadLetters(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	client := shared.NewClient(t)
	app := newTestApp(t, client)
	ctx := context.Background()

	reject := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"malformed delivery"}`, http.StatusBadRequest)
	}))
	defer reject.Close()

	pub := publisher.New(client.DB(), newPublisherConfig("it-reject",
		[]publisher.Subscriber{{Name: "relational", URL: reject.URL}}))
	require.NoError(t, pub.Start(ctx))

	worldID := uuid.NewString()
	env := newEnvelope(worldID, emo.KindCreated, emoPayload(uuid.NewString(), 1, "rejected"))
	resp, err := app.events.AppendEvent(ctx, env, "")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		var n int
		err := client.DB().QueryRowContext(ctx,
			`SELECT COUNT(*) FROM dead_letters WHERE global_seq = $1`, resp.GlobalSeq).Scan(&n)
		return err == nil && n == 1
	}, 15*time.Second, 100*time.Millisecond, "event was never quarantined")

	// Stop before requeueing so the entry is not immediately re-quarantined.
	pub.Stop()

	require.NoError(t, app.admin.RequeueDeadLetter(ctx, resp.GlobalSeq))

	status, err := app.admin.OutboxStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), status.UnpublishedCount)
	assert.Equal(t, int64(0), status.DeadLetterCount)
}
