package envelope

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEnvelope() *Envelope {
	return &Envelope{
		WorldID: "550e8400-e29b-41d4-a716-446655440000",
		Branch:  "main",
		Kind:    "note.created",
		Payload: map[string]interface{}{"id": "n1", "title": "Test"},
		By:      By{Agent: "user:alice"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Envelope)
		wantErr string
	}{
		{
			name:   "minimal valid envelope",
			mutate: func(e *Envelope) {},
		},
		{
			name: "all optional fields valid",
			mutate: func(e *Envelope) {
				e.OccurredAt = "2024-01-15T10:00:00Z"
				e.CausationID = "660e8400-e29b-41d4-a716-446655440001"
				e.Version = 2
			},
		},
		{
			name:    "missing world_id",
			mutate:  func(e *Envelope) { e.WorldID = "" },
			wantErr: "world_id is required",
		},
		{
			name:    "malformed world_id",
			mutate:  func(e *Envelope) { e.WorldID = "not-a-uuid" },
			wantErr: "world_id must be a valid UUID",
		},
		{
			name:    "missing branch",
			mutate:  func(e *Envelope) { e.Branch = "" },
			wantErr: "branch is required",
		},
		{
			name:    "branch too long",
			mutate:  func(e *Envelope) { e.Branch = strings.Repeat("a", 101) },
			wantErr: "cannot exceed 100 characters",
		},
		{
			name:   "branch at the length limit",
			mutate: func(e *Envelope) { e.Branch = strings.Repeat("a", 100) },
		},
		{
			name:    "branch with forbidden characters",
			mutate:  func(e *Envelope) { e.Branch = "feature/foo" },
			wantErr: "alphanumeric with hyphens/underscores",
		},
		{
			name:   "branch with hyphens and underscores",
			mutate: func(e *Envelope) { e.Branch = "feat_x-2" },
		},
		{
			name:    "kind without dot",
			mutate:  func(e *Envelope) { e.Kind = "notecreated" },
			wantErr: "format 'category.action'",
		},
		{
			name:    "kind with extra dot",
			mutate:  func(e *Envelope) { e.Kind = "note.created.v2" },
			wantErr: "format 'category.action'",
		},
		{
			name:    "kind with empty category",
			mutate:  func(e *Envelope) { e.Kind = ".created" },
			wantErr: "cannot be empty",
		},
		{
			name:    "kind with empty action",
			mutate:  func(e *Envelope) { e.Kind = "note." },
			wantErr: "cannot be empty",
		},
		{
			name:    "empty payload",
			mutate:  func(e *Envelope) { e.Payload = map[string]interface{}{} },
			wantErr: "payload cannot be empty",
		},
		{
			name:    "nil payload",
			mutate:  func(e *Envelope) { e.Payload = nil },
			wantErr: "payload cannot be empty",
		},
		{
			name:    "missing agent",
			mutate:  func(e *Envelope) { e.By.Agent = "" },
			wantErr: "by.agent is required",
		},
		{
			name:    "whitespace-only agent",
			mutate:  func(e *Envelope) { e.By.Agent = "   " },
			wantErr: "by.agent is required",
		},
		{
			name:    "occurred_at not a timestamp",
			mutate:  func(e *Envelope) { e.OccurredAt = "yesterday" },
			wantErr: "invalid RFC 3339 timestamp",
		},
		{
			name:    "occurred_at with non-UTC offset",
			mutate:  func(e *Envelope) { e.OccurredAt = "2024-01-15T10:00:00+02:00" },
			wantErr: "must be UTC",
		},
		{
			name:   "occurred_at with explicit zero offset",
			mutate: func(e *Envelope) { e.OccurredAt = "2024-01-15T10:00:00+00:00" },
		},
		{
			name:    "malformed causation_id",
			mutate:  func(e *Envelope) { e.CausationID = "abc" },
			wantErr: "causation_id must be a valid UUID",
		},
		{
			name:    "unsupported version",
			mutate:  func(e *Envelope) { e.Version = 3 },
			wantErr: "unsupported envelope version: 3",
		},
		{
			name:   "version 1 accepted",
			mutate: func(e *Envelope) { e.Version = 1 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := validEnvelope()
			tt.mutate(env)
			err := env.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestEnrich(t *testing.T) {
	env := validEnvelope()
	now := time.Date(2024, 1, 15, 10, 30, 0, 123_000_000, time.UTC)

	eventID, err := env.Enrich(now)
	require.NoError(t, err)

	_, err = uuid.Parse(eventID)
	assert.NoError(t, err)
	assert.Equal(t, eventID, env.EventID)
	assert.Equal(t, "2024-01-15T10:30:00.123Z", env.ReceivedAt)
	assert.Len(t, env.PayloadHash, 64)
}

func TestEnrich_HashCoversPayloadOnly(t *testing.T) {
	a := validEnvelope()
	b := validEnvelope()
	b.Branch = "other"
	b.By.Agent = "agent:planner"

	_, err := a.Enrich(time.Now())
	require.NoError(t, err)
	_, err = b.Enrich(time.Now())
	require.NoError(t, err)

	assert.Equal(t, a.PayloadHash, b.PayloadHash)
	assert.NotEqual(t, a.EventID, b.EventID)
}

func TestVerifyPayloadHash(t *testing.T) {
	env := validEnvelope()
	_, err := env.Enrich(time.Now())
	require.NoError(t, err)

	ok, err := env.VerifyPayloadHash(env.PayloadHash)
	require.NoError(t, err)
	assert.True(t, ok)

	env.Payload["title"] = "tampered"
	ok, err = env.VerifyPayloadHash(env.PayloadHash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOccurredAtTime(t *testing.T) {
	env := validEnvelope()
	assert.Nil(t, env.OccurredAtTime())

	env.OccurredAt = "2024-01-15T10:00:00Z"
	got := env.OccurredAtTime()
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC), *got)
}

func TestKindCategory(t *testing.T) {
	env := validEnvelope()
	assert.Equal(t, "note", env.KindCategory())

	env.Kind = "emo.updated"
	assert.Equal(t, "emo", env.KindCategory())
}

func TestToMap_OmitsUnsetOptionalFields(t *testing.T) {
	env := validEnvelope()
	m := env.ToMap()

	assert.Equal(t, env.WorldID, m["world_id"])
	assert.NotContains(t, m, "occurred_at")
	assert.NotContains(t, m, "causation_id")
	assert.NotContains(t, m, "event_id")

	_, err := env.Enrich(time.Now())
	require.NoError(t, err)
	m = env.ToMap()
	assert.Contains(t, m, "event_id")
	assert.Contains(t, m, "received_at")
	assert.Contains(t, m, "payload_hash")
}
