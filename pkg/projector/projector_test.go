package projector

import (
	"context"
	stdsql "database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnemonic-nexus/mnx/pkg/canonical"
	"github.com/mnemonic-nexus/mnx/pkg/envelope"
	"github.com/mnemonic-nexus/mnx/pkg/models"
	"github.com/mnemonic-nexus/mnx/pkg/services"
)

type fakeProjector struct {
	name string
}

func (f *fakeProjector) Name() string { return f.name }
func (f *fakeProjector) Lens() string { return f.name }
func (f *fakeProjector) Apply(ctx context.Context, tx *stdsql.Tx, d *Delivery) error {
	return nil
}
func (f *fakeProjector) Snapshot(ctx context.Context, tx *stdsql.Tx, worldID, branch string) (map[string]interface{}, error) {
	return map[string]interface{}{}, nil
}
func (f *fakeProjector) Truncate(ctx context.Context, tx *stdsql.Tx, worldID, branch string) error {
	return nil
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(&fakeProjector{name: "relational"})
	r.Register(&fakeProjector{name: "graph"})

	p, ok := r.Get("relational")
	require.True(t, ok)
	assert.Equal(t, "relational", p.Name())

	_, ok = r.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"graph", "relational"}, r.Names())
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&fakeProjector{name: "relational"})
	assert.Panics(t, func() {
		r.Register(&fakeProjector{name: "relational"})
	})
}

func deliveryEnvelope(t *testing.T) *envelope.Envelope {
	t.Helper()
	return &envelope.Envelope{
		WorldID: "550e8400-e29b-41d4-a716-446655440000",
		Branch:  "main",
		Kind:    "note.created",
		Payload: map[string]interface{}{"id": "n1", "title": "hello"},
		By:      envelope.By{Agent: "user:test"},
	}
}

func TestHandleDelivery_Validation(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&fakeProjector{name: "relational"})
	rt := NewRuntime(nil, registry)

	env := deliveryEnvelope(t)
	hash, err := env.ComputePayloadHash()
	require.NoError(t, err)

	tests := []struct {
		name    string
		reqName string
		req     *models.ProjectorEventRequest
		wantErr error
	}{
		{
			name:    "unknown projector",
			reqName: "nope",
			req:     &models.ProjectorEventRequest{GlobalSeq: 1, Envelope: env, PayloadHash: hash},
			wantErr: ErrUnknownProjector,
		},
		{
			name:    "missing envelope",
			reqName: "relational",
			req:     &models.ProjectorEventRequest{GlobalSeq: 1, PayloadHash: hash},
		},
		{
			name:    "non-positive global_seq",
			reqName: "relational",
			req:     &models.ProjectorEventRequest{GlobalSeq: 0, Envelope: env, PayloadHash: hash},
		},
		{
			name:    "invalid envelope",
			reqName: "relational",
			req: &models.ProjectorEventRequest{
				GlobalSeq:   1,
				Envelope:    &envelope.Envelope{WorldID: "not-a-uuid", Branch: "main", Kind: "note.created", Payload: map[string]interface{}{"a": 1}, By: envelope.By{Agent: "x"}},
				PayloadHash: hash,
			},
		},
		{
			name:    "payload hash mismatch",
			reqName: "relational",
			req:     &models.ProjectorEventRequest{GlobalSeq: 1, Envelope: env, PayloadHash: "0000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rt.HandleDelivery(context.Background(), tt.reqName, tt.req)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.True(t, services.IsValidationError(err), "expected a validation error, got %v", err)
			}
		})
	}
}

func TestStateHash_Deterministic(t *testing.T) {
	a := map[string]interface{}{
		"emos":  []interface{}{map[string]interface{}{"emo_id": "a", "emo_version": 2}},
		"notes": []interface{}{},
	}
	b := map[string]interface{}{
		"notes": []interface{}{},
		"emos":  []interface{}{map[string]interface{}{"emo_version": 2, "emo_id": "a"}},
	}

	ha, err := StateHash(a)
	require.NoError(t, err)
	hb, err := StateHash(b)
	require.NoError(t, err)
	assert.Equal(t, ha, hb, "key order must not affect the state hash")

	// Matches the canonical encoding directly.
	want, err := canonical.Hash(a)
	require.NoError(t, err)
	assert.Equal(t, want, ha)

	c := map[string]interface{}{
		"emos":  []interface{}{map[string]interface{}{"emo_id": "a", "emo_version": 3}},
		"notes": []interface{}{},
	}
	hc, err := StateHash(c)
	require.NoError(t, err)
	assert.NotEqual(t, ha, hc)
}
