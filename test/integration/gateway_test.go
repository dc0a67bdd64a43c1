package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnemonic-nexus/mnx/pkg/api"
	"github.com/mnemonic-nexus/mnx/pkg/emo"
	testdb "github.com/mnemonic-nexus/mnx/test/database"
)

func postJSON(t *testing.T, url string, body interface{}, headers map[string]string) (*http.Response, map[string]interface{}) {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

// TestGatewayHeaderValidation exercises the append endpoint's header
// contract over real HTTP: a caller-supplied correlation id must be a UUID,
// and an Idempotency-Key header must not be sent blank.
func TestGatewayHeaderValidation(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	client := shared.NewClient(t)
	app := newTestApp(t, client)

	server := api.NewServer(client, app.events, app.admin, app.runtime, nil)
	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	env := newEnvelope(uuid.NewString(), emo.KindCreated, emoPayload(uuid.NewString(), 1, "header test"))

	t.Run("non-UUID correlation id returns 400", func(t *testing.T) {
		resp, body := postJSON(t, ts.URL+"/api/v1/events", env,
			map[string]string{"X-Correlation-ID": "not-a-uuid"})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "validation_error", body["code"])
	})

	t.Run("blank idempotency key returns 400", func(t *testing.T) {
		resp, body := postJSON(t, ts.URL+"/api/v1/events", env,
			map[string]string{"Idempotency-Key": " "})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "validation_error", body["code"])
		assert.Contains(t, body["message"], "Idempotency-Key")
	})

	t.Run("valid headers append", func(t *testing.T) {
		correlation := uuid.NewString()
		resp, body := postJSON(t, ts.URL+"/api/v1/events", env,
			map[string]string{"X-Correlation-ID": correlation})

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, correlation, body["correlation_id"])
	})
}

// TestGatewayIdempotencyConflictBody replays an idempotency key with a
// different payload and checks the 409 body: the error taxonomy fields plus
// the first-accepted event.
func TestGatewayIdempotencyConflictBody(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	client := shared.NewClient(t)
	app := newTestApp(t, client)

	server := api.NewServer(client, app.events, app.admin, app.runtime, nil)
	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	worldID := uuid.NewString()
	key := "memo-http-1"

	first := newEnvelope(worldID, emo.KindCreated, emoPayload(uuid.NewString(), 1, "original"))
	resp, accepted := postJSON(t, ts.URL+"/api/v1/events", first,
		map[string]string{"Idempotency-Key": key})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	replay := newEnvelope(worldID, emo.KindCreated, emoPayload(uuid.NewString(), 1, "changed"))
	resp, conflict := postJSON(t, ts.URL+"/api/v1/events", replay,
		map[string]string{"Idempotency-Key": key})

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "idempotency_conflict", conflict["code"])
	assert.NotEmpty(t, conflict["message"])
	assert.NotEmpty(t, conflict["correlation_id"])
	assert.Equal(t, accepted["global_seq"], conflict["global_seq"])
	assert.Equal(t, accepted["event_id"], conflict["event_id"])
}
