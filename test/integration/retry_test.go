package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnemonic-nexus/mnx/pkg/emo"
	"github.com/mnemonic-nexus/mnx/pkg/models"
	"github.com/mnemonic-nexus/mnx/pkg/publisher"
	testdb "github.com/mnemonic-nexus/mnx/test/database"
)

// TestTransientFailureRetriesThenPublishes points the publisher at a
// subscriber that fails twice with 503 before accepting. The delivery must
// survive the backoff cycle and publish without touching the DLQ.
func TestTransientFailureRetriesThenPublishes(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	client := shared.NewClient(t)
	app := newTestApp(t, client)
	ctx := context.Background()

	var (
		mu       sync.Mutex
		attempts int
	)
	flaky := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		attempts++
		n := attempts
		mu.Unlock()
		if n <= 2 {
			http.Error(w, `{"error":"temporarily unavailable"}`, http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer flaky.Close()

	pub := publisher.New(client.DB(), newPublisherConfig("it-flaky",
		[]publisher.Subscriber{{Name: "relational", URL: flaky.URL}}))
	require.NoError(t, pub.Start(ctx))
	defer pub.Stop()

	worldID := uuid.NewString()
	env := newEnvelope(worldID, emo.KindCreated, emoPayload(uuid.NewString(), 1, "flaky body"))
	resp, err := app.events.AppendEvent(ctx, env, "")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		var published bool
		err := client.DB().QueryRowContext(ctx,
			`SELECT published_at IS NOT NULL FROM outbox WHERE global_seq = $1`,
			resp.GlobalSeq).Scan(&published)
		return err == nil && published
	}, 15*time.Second, 100*time.Millisecond, "delivery never recovered from transient failures")

	var recorded int
	require.NoError(t, client.DB().QueryRowContext(ctx,
		`SELECT attempts FROM outbox WHERE global_seq = $1`, resp.GlobalSeq).Scan(&recorded))
	assert.Equal(t, 2, recorded, "both failed attempts should be recorded")

	var dead int
	require.NoError(t, client.DB().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM dead_letters WHERE global_seq = $1`, resp.GlobalSeq).Scan(&dead))
	assert.Zero(t, dead, "a recovered delivery must not be quarantined")
}

// TestRetriesExhaustedGoToDeadLetters runs an always-failing subscriber
// until the retry budget is spent. The entry must land in the DLQ with the
// exhaustion reason, and its outbox row must be closed out.
func TestRetriesExhaustedGoToDeadLetters(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	client := shared.NewClient(t)
	app := newTestApp(t, client)
	ctx := context.Background()

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"still down"}`, http.StatusServiceUnavailable)
	}))
	defer down.Close()

	cfg := newPublisherConfig("it-down",
		[]publisher.Subscriber{{Name: "relational", URL: down.URL}})
	cfg.MaxAttempts = 2
	pub := publisher.New(client.DB(), cfg)
	require.NoError(t, pub.Start(ctx))
	defer pub.Stop()

	worldID := uuid.NewString()
	env := newEnvelope(worldID, emo.KindCreated, emoPayload(uuid.NewString(), 1, "doomed body"))
	resp, err := app.events.AppendEvent(ctx, env, "")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		var n int
		err := client.DB().QueryRowContext(ctx,
			`SELECT COUNT(*) FROM dead_letters WHERE global_seq = $1`, resp.GlobalSeq).Scan(&n)
		return err == nil && n == 1
	}, 15*time.Second, 100*time.Millisecond, "event was never quarantined")

	var reason string
	require.NoError(t, client.DB().QueryRowContext(ctx,
		`SELECT error FROM dead_letters WHERE global_seq = $1`, resp.GlobalSeq).Scan(&reason))
	assert.Contains(t, reason, "retries exhausted")

	var published bool
	require.NoError(t, client.DB().QueryRowContext(ctx,
		`SELECT published_at IS NOT NULL FROM outbox WHERE global_seq = $1`,
		resp.GlobalSeq).Scan(&published))
	assert.True(t, published, "a quarantined entry must not stay claimable")
}

// TestStreamOrderHeldAcrossRetry appends two events on one stream and fails
// the first delivery of the first sequence. The second sequence must wait
// out the retry instead of overtaking it, which would advance the
// subscriber watermark past the retried event and drop it.
func TestStreamOrderHeldAcrossRetry(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	client := shared.NewClient(t)
	app := newTestApp(t, client)
	ctx := context.Background()

	var (
		mu       sync.Mutex
		received []int64
	)
	sub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.ProjectorEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		mu.Lock()
		received = append(received, req.GlobalSeq)
		first := len(received) == 1
		mu.Unlock()
		if first {
			http.Error(w, `{"error":"not yet"}`, http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer sub.Close()

	worldID := uuid.NewString()
	respA, err := app.events.AppendEvent(ctx,
		newEnvelope(worldID, emo.KindCreated, emoPayload(uuid.NewString(), 1, "first")), "")
	require.NoError(t, err)
	respB, err := app.events.AppendEvent(ctx,
		newEnvelope(worldID, emo.KindCreated, emoPayload(uuid.NewString(), 1, "second")), "")
	require.NoError(t, err)

	pub := publisher.New(client.DB(), newPublisherConfig("it-order",
		[]publisher.Subscriber{{Name: "relational", URL: sub.URL}}))
	require.NoError(t, pub.Start(ctx))
	defer pub.Stop()

	require.Eventually(t, func() bool {
		var unpublished int
		err := client.DB().QueryRowContext(ctx,
			`SELECT COUNT(*) FROM outbox WHERE published_at IS NULL`).Scan(&unpublished)
		return err == nil && unpublished == 0
	}, 15*time.Second, 100*time.Millisecond, "outbox never drained")

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []int64{respA.GlobalSeq, respA.GlobalSeq, respB.GlobalSeq}, received,
		"the retried sequence must be redelivered before its successor")
}
