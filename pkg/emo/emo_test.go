package emo

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveID_Deterministic(t *testing.T) {
	a := DeriveID("mem1")
	b := DeriveID("mem1")
	c := DeriveID("mem2")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, uuid.Version(5), a.Version())
}

func TestIdempotencyKey(t *testing.T) {
	key := IdempotencyKey("550e8400-e29b-41d4-a716-446655440000", 3, OpDeleted)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000:3:deleted", key)
}

func TestParsePayload(t *testing.T) {
	tests := []struct {
		name    string
		raw     map[string]interface{}
		wantErr string
		check   func(*testing.T, *Payload)
	}{
		{
			name: "full payload",
			raw: map[string]interface{}{
				"emo_id":      "550e8400-e29b-41d4-a716-446655440000",
				"emo_type":    "note",
				"emo_version": 2,
				"world_id":    "660e8400-e29b-41d4-a716-446655440001",
				"branch":      "main",
				"content":     "hello",
				"tags":        []interface{}{"a", "b"},
				"source":      map[string]interface{}{"kind": "user"},
				"parents":     []interface{}{map[string]interface{}{"emo_id": "770e8400-e29b-41d4-a716-446655440002", "rel": "derived"}},
				"links":       []interface{}{map[string]interface{}{"kind": "uri", "ref": "https://example.com"}},
			},
			check: func(t *testing.T, p *Payload) {
				assert.Equal(t, TypeNote, p.EMOType)
				assert.Equal(t, 2, p.EMOVersion)
				assert.Equal(t, []string{"a", "b"}, p.Tags)
				assert.Equal(t, SourceUser, p.Source.Kind)
				require.Len(t, p.Parents, 1)
				assert.Equal(t, RelDerived, p.Parents[0].Rel)
				assert.Equal(t, "text/markdown", p.MimeType)
			},
		},
		{
			name: "missing emo_id",
			raw: map[string]interface{}{
				"emo_version": 1,
			},
			wantErr: "missing emo_id",
		},
		{
			name: "emo_id not a uuid",
			raw: map[string]interface{}{
				"emo_id":      "nope",
				"emo_version": 1,
			},
			wantErr: "valid UUID",
		},
		{
			name: "version below one",
			raw: map[string]interface{}{
				"emo_id":      "550e8400-e29b-41d4-a716-446655440000",
				"emo_version": 0,
			},
			wantErr: "emo_version must be >= 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePayload(tt.raw)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, p)
		})
	}
}

func TestOperationForKind(t *testing.T) {
	op, ok := OperationForKind(KindLinked)
	assert.True(t, ok)
	assert.Equal(t, OpLinked, op)

	_, ok = OperationForKind("memory.item.upserted")
	assert.False(t, ok)
}

func TestDeterminismHash_OrderInsensitiveInputs(t *testing.T) {
	base := HashInput{
		EMOID:        "550e8400-e29b-41d4-a716-446655440000",
		EMOVersion:   2,
		WorldID:      "660e8400-e29b-41d4-a716-446655440001",
		Branch:       "main",
		Content:      "B",
		Tags:         []string{"zeta", "alpha"},
		LinkedEMOIDs: []string{"b-id", "a-id"},
		UpdatedAt:    time.Unix(1705312200, 0),
	}
	shuffled := base
	shuffled.Tags = []string{"alpha", "zeta"}
	shuffled.LinkedEMOIDs = []string{"a-id", "b-id"}

	assert.Equal(t, DeterminismHash(base), DeterminismHash(shuffled))
}

func TestDeterminismHash_SensitiveToState(t *testing.T) {
	base := HashInput{
		EMOID:      "550e8400-e29b-41d4-a716-446655440000",
		EMOVersion: 1,
		WorldID:    "660e8400-e29b-41d4-a716-446655440001",
		Branch:     "main",
		Content:    "A",
		UpdatedAt:  time.Unix(1705312200, 0),
	}
	h1 := DeterminismHash(base)

	bumped := base
	bumped.EMOVersion = 2
	assert.NotEqual(t, h1, DeterminismHash(bumped))

	edited := base
	edited.Content = "B"
	assert.NotEqual(t, h1, DeterminismHash(edited))

	// Sub-second drift collapses to the same epoch second.
	jittered := base
	jittered.UpdatedAt = time.Unix(1705312200, 999_000_000)
	assert.Equal(t, h1, DeterminismHash(jittered))
}

func TestContentHash(t *testing.T) {
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		ContentHash(""))
	assert.NotEqual(t, ContentHash("a"), ContentHash("b"))
}

func TestLinkedEMOIDs_DedupesAndSkipsURIs(t *testing.T) {
	parents := []Parent{
		{EMOID: "p1", Rel: RelDerived},
		{EMOID: "p1", Rel: RelSupersedes},
	}
	links := []Link{
		{Kind: "emo", Ref: "l1"},
		{Kind: "uri", Ref: "https://example.com"},
		{Kind: "emo", Ref: "p1"},
	}

	got := LinkedEMOIDs(parents, links)
	assert.ElementsMatch(t, []string{"p1", "l1"}, got)
}
