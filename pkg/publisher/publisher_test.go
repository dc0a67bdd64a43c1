package publisher

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnemonic-nexus/mnx/pkg/envelope"
	"github.com/mnemonic-nexus/mnx/pkg/models"
)

func testEnvelope() *envelope.Envelope {
	return &envelope.Envelope{
		WorldID: "550e8400-e29b-41d4-a716-446655440000",
		Branch:  "main",
		Kind:    "note.created",
		Payload: map[string]interface{}{"id": "n1"},
		By:      envelope.By{Agent: "user:test"},
	}
}

func TestShardFor_StableAndStreamSticky(t *testing.T) {
	p := &Publisher{shards: make([]chan *Entry, 4)}

	a := p.shardFor("550e8400-e29b-41d4-a716-446655440000", "main")
	b := p.shardFor("550e8400-e29b-41d4-a716-446655440000", "main")
	assert.Equal(t, a, b, "same stream must always map to the same shard")

	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 4)

	// Different branch may differ; what matters is determinism.
	c1 := p.shardFor("550e8400-e29b-41d4-a716-446655440000", "feature-x")
	c2 := p.shardFor("550e8400-e29b-41d4-a716-446655440000", "feature-x")
	assert.Equal(t, c1, c2)
}

func TestDeliver_Classification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   OutcomeKind
	}{
		{"200 accepted", http.StatusOK, OutcomeSuccess},
		{"201 created", http.StatusCreated, OutcomeSuccess},
		{"409 already processed", http.StatusConflict, OutcomeSuccess},
		{"400 structural", http.StatusBadRequest, OutcomeStructural},
		{"404 retryable", http.StatusNotFound, OutcomeRetryable},
		{"500 retryable", http.StatusInternalServerError, OutcomeRetryable},
		{"503 retryable", http.StatusServiceUnavailable, OutcomeRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			d := NewDeliverer("pub-test", 2*time.Second)
			outcome := d.Deliver(context.Background(), Subscriber{Name: "rel", URL: srv.URL}, &models.ProjectorEventRequest{
				GlobalSeq:   7,
				EventID:     "660e8400-e29b-41d4-a716-446655440001",
				Envelope:    testEnvelope(),
				PayloadHash: "abc",
			})

			assert.Equal(t, tt.want, outcome.Kind)
			assert.Equal(t, tt.status, outcome.StatusCode)
		})
	}
}

func TestDeliver_RequestShape(t *testing.T) {
	var gotBody models.ProjectorEventRequest
	var gotPublisherID, gotEventID, gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPublisherID = r.Header.Get("X-Publisher-ID")
		gotEventID = r.Header.Get("X-Event-ID")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := NewDeliverer("pub-1", 2*time.Second)
	req := &models.ProjectorEventRequest{
		GlobalSeq:   42,
		EventID:     "660e8400-e29b-41d4-a716-446655440001",
		Envelope:    testEnvelope(),
		PayloadHash: "deadbeef",
	}
	outcome := d.Deliver(context.Background(), Subscriber{Name: "rel", URL: srv.URL}, req)

	require.Equal(t, OutcomeSuccess, outcome.Kind)
	assert.Equal(t, "pub-1", gotPublisherID)
	assert.Equal(t, req.EventID, gotEventID)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, int64(42), gotBody.GlobalSeq)
	assert.Equal(t, "deadbeef", gotBody.PayloadHash)
	require.NotNil(t, gotBody.Envelope)
	assert.Equal(t, "note.created", gotBody.Envelope.Kind)
}

func TestDeliver_ConnectionRefusedIsRetryable(t *testing.T) {
	d := NewDeliverer("pub-test", 500*time.Millisecond)
	outcome := d.Deliver(context.Background(),
		Subscriber{Name: "down", URL: "http://127.0.0.1:1/events"},
		&models.ProjectorEventRequest{GlobalSeq: 1, Envelope: testEnvelope()})

	assert.Equal(t, OutcomeRetryable, outcome.Kind)
	assert.Error(t, outcome.Err)
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"PUBLISHER_ID", "PUBLISHER_BATCH_SIZE", "PUBLISHER_WORKER_COUNT",
		"PUBLISHER_MAX_ATTEMPTS", "PUBLISHER_POLL_INTERVAL", "PUBLISHER_CLAIM_LEASE",
		"PUBLISHER_DELIVERY_TIMEOUT", "PUBLISHER_RETRY_BASE_DELAY",
		"PUBLISHER_RETRY_MAX_DELAY", "PUBLISHER_SUBSCRIBERS",
	}
	clear := func() {
		for _, k := range envKeys {
			os.Unsetenv(k)
		}
	}
	clear()
	t.Cleanup(clear)

	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, 50, cfg.BatchSize)
		assert.Equal(t, 10, cfg.MaxAttempts)
		assert.Equal(t, time.Second, cfg.RetryBaseDelay)
		assert.Equal(t, time.Hour, cfg.RetryMaxDelay)
	})

	t.Run("subscribers parsed", func(t *testing.T) {
		os.Setenv("PUBLISHER_SUBSCRIBERS", "rel=http://localhost:8081/projectors/rel/events, graph=http://localhost:8082/projectors/graph/events")
		t.Cleanup(clear)

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		require.Len(t, cfg.Subscribers, 2)
		assert.Equal(t, "rel", cfg.Subscribers[0].Name)
		assert.Equal(t, "http://localhost:8082/projectors/graph/events", cfg.Subscribers[1].URL)
	})

	t.Run("malformed subscriber rejected", func(t *testing.T) {
		os.Setenv("PUBLISHER_SUBSCRIBERS", "not-a-pair")
		t.Cleanup(clear)

		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "want name=url")
	})

	t.Run("invalid batch size rejected", func(t *testing.T) {
		os.Setenv("PUBLISHER_BATCH_SIZE", "zero")
		t.Cleanup(clear)

		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PUBLISHER_BATCH_SIZE")
	})
}
