// Package integration tests the system against the real SQL schema: RLS
// policies, views, the maintenance role, and the publisher pipeline, none of
// which exist under the Ent auto-migration the package tests use.
package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mnemonic-nexus/mnx/pkg/database"
	"github.com/mnemonic-nexus/mnx/pkg/envelope"
	"github.com/mnemonic-nexus/mnx/pkg/models"
	"github.com/mnemonic-nexus/mnx/pkg/projector"
	"github.com/mnemonic-nexus/mnx/pkg/projector/graph"
	"github.com/mnemonic-nexus/mnx/pkg/projector/relational"
	"github.com/mnemonic-nexus/mnx/pkg/publisher"
	"github.com/mnemonic-nexus/mnx/pkg/services"
)

// testApp wires the service graph the way cmd/mnx does, minus the HTTP
// server and publisher, which individual tests add as needed.
type testApp struct {
	client  *database.Client
	events  *services.EventService
	admin   *services.AdminService
	runtime *projector.Runtime
}

func newTestApp(t *testing.T, client *database.Client) *testApp {
	t.Helper()

	registry := projector.NewRegistry()
	registry.Register(relational.New())
	registry.Register(graph.New())
	runtime := projector.NewRuntime(client.DB(), registry)

	return &testApp{
		client:  client,
		events:  services.NewEventService(client),
		admin:   services.NewAdminService(client, runtime),
		runtime: runtime,
	}
}

func newEnvelope(worldID, kind string, payload map[string]interface{}) *envelope.Envelope {
	return &envelope.Envelope{
		WorldID: worldID,
		Branch:  "main",
		Kind:    kind,
		Payload: payload,
		By:      envelope.By{Agent: "user:integration"},
	}
}

func emoPayload(emoID string, version int, content string, tags ...string) map[string]interface{} {
	p := map[string]interface{}{
		"emo_id":      emoID,
		"emo_type":    "note",
		"emo_version": version,
		"content":     content,
	}
	if len(tags) > 0 {
		p["tags"] = tags
	}
	return p
}

// deliver hands an appended event to a projector the way the publisher
// would, using the enriched envelope and the append response.
func deliver(t *testing.T, rt *projector.Runtime, name string, env *envelope.Envelope, resp *models.AppendEventResponse) *models.ProjectorAckResponse {
	t.Helper()

	ack, err := rt.HandleDelivery(context.Background(), name, &models.ProjectorEventRequest{
		GlobalSeq:   resp.GlobalSeq,
		EventID:     resp.EventID,
		Envelope:    env,
		PayloadHash: resp.PayloadHash,
	})
	require.NoError(t, err)
	return ack
}

// newPublisherConfig returns tuning suited to test runtimes: tight poll
// loops, small retry delays.
func newPublisherConfig(id string, subs []publisher.Subscriber) *publisher.Config {
	return &publisher.Config{
		PublisherID:        id,
		BatchSize:          10,
		WorkerCount:        2,
		PollInterval:       50 * time.Millisecond,
		PollIntervalJitter: 10 * time.Millisecond,
		ClaimLease:         10 * time.Second,
		DeliveryTimeout:    5 * time.Second,
		MaxAttempts:        3,
		RetryBaseDelay:     50 * time.Millisecond,
		RetryMaxDelay:      time.Second,
		Subscribers:        subs,
	}
}
