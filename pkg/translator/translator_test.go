package translator

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"os"
	"strings"
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
	"github.com/mnemonic-nexus/mnx/pkg/database"
	"github.com/mnemonic-nexus/mnx/pkg/emo"
	"github.com/mnemonic-nexus/mnx/pkg/envelope"
	"github.com/mnemonic-nexus/mnx/pkg/models"
	"github.com/mnemonic-nexus/mnx/pkg/services"
)

func TestJoinContent(t *testing.T) {
	assert.Equal(t, "X\n\nY", joinContent("X", "Y"))
	assert.Equal(t, "X", joinContent("X", ""))
	assert.Equal(t, "Y", joinContent("", "Y"))
	assert.Equal(t, "", joinContent("", ""))
}

func TestInferSourceKind(t *testing.T) {
	tests := []struct {
		agent string
		want  emo.SourceKind
	}{
		{"user:alice", emo.SourceUser},
		{"cli-User-7", emo.SourceUser},
		{"ingest:rss", emo.SourceIngest},
		{"batch-import", emo.SourceIngest},
		{"agent:planner", emo.SourceAgent},
		{"", emo.SourceAgent},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, inferSourceKind(tt.agent), "agent %q", tt.agent)
	}
}

func TestInferParents(t *testing.T) {
	p := &memoryPayload{
		ParentID:   "mem-parent",
		Supersedes: "mem-old",
		MergedFrom: []string{"mem-a", "", "mem-b"},
	}
	parents := inferParents(p)
	require.Len(t, parents, 4)
	assert.Equal(t, emo.RelDerived, parents[0].Rel)
	assert.Equal(t, emo.DeriveID("mem-parent").String(), parents[0].EMOID)
	assert.Equal(t, emo.RelSupersedes, parents[1].Rel)
	assert.Equal(t, emo.RelMerges, parents[2].Rel)
	assert.Equal(t, emo.RelMerges, parents[3].Rel)
}

func TestInferEMOType(t *testing.T) {
	tests := []struct {
		name    string
		payload *memoryPayload
		want    emo.Type
	}{
		{"plain note", &memoryPayload{Title: "groceries", Body: "milk, eggs"}, emo.TypeNote},
		{"long content is a doc", &memoryPayload{Body: strings.Repeat("x", 1001)}, emo.TypeDoc},
		{"markdown heading is a doc", &memoryPayload{Body: "# Title\nprose"}, emo.TypeDoc},
		{"subheading is a doc", &memoryPayload{Content: "intro\n## Section"}, emo.TypeDoc},
		{"fact title", &memoryPayload{Title: "Fact: water boils at 100C"}, emo.TypeFact},
		{"definition title", &memoryPayload{Title: "Definition of done"}, emo.TypeFact},
		{"rule title", &memoryPayload{Title: "house rules"}, emo.TypeFact},
		{"profile title", &memoryPayload{Title: "Profile: Ada"}, emo.TypeProfile},
		{"contact title", &memoryPayload{Title: "emergency contact"}, emo.TypeProfile},
		{"content wins over title", &memoryPayload{Title: "Fact sheet", Body: "# Heading"}, emo.TypeDoc},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inferEMOType(tt.payload))
		})
	}
}

func TestExtractLinks(t *testing.T) {
	p := &memoryPayload{
		Links: []interface{}{
			"https://example.com/a",
			map[string]interface{}{"uri": "https://example.com/b", "label": "b"},
			map[string]interface{}{"label": "no uri"},
			42,
		},
		References: []string{"mem-ref", ""},
	}

	links := extractLinks(p)
	require.Len(t, links, 3)
	assert.Equal(t, emo.Link{Kind: "uri", Ref: "https://example.com/a"}, links[0])
	assert.Equal(t, emo.Link{Kind: "uri", Ref: "https://example.com/b"}, links[1])
	assert.Equal(t, emo.Link{Kind: "emo", Ref: emo.DeriveID("mem-ref").String()}, links[2])

	assert.Empty(t, extractLinks(&memoryPayload{}))
}

func TestDecodeMemoryPayload_IDFallback(t *testing.T) {
	p, err := decodeMemoryPayload(map[string]interface{}{"id": "mem1", "title": "T"})
	require.NoError(t, err)
	assert.Equal(t, "mem1", p.memoryID())

	p, err = decodeMemoryPayload(map[string]interface{}{"memory_id": "mem2", "id": "legacy"})
	require.NoError(t, err)
	assert.Equal(t, "mem2", p.memoryID())

	_, err = decodeMemoryPayload(map[string]interface{}{"title": "no id"})
	require.Error(t, err)
}

func newTestTranslator(t *testing.T) (*Translator, *stdsql.DB) {
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

	client := database.NewClientFromEnt(entClient, db)
	t.Cleanup(func() { client.Close() })

	return New(services.NewEventService(client), db), db
}

func memoryDelivery(t *testing.T, seq int64, worldID, kind string, payload map[string]interface{}) *models.ProjectorEventRequest {
	t.Helper()
	env := &envelope.Envelope{
		WorldID:    worldID,
		Branch:     "main",
		Kind:       kind,
		Payload:    payload,
		By:         envelope.By{Agent: "user:test"},
		EventID:    uuid.NewString(),
		ReceivedAt: "2024-01-15T10:30:00.000Z",
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

func TestTranslateUpsertThenUpdate(t *testing.T) {
	tr, db := newTestTranslator(t)
	ctx := context.Background()

	worldID := uuid.NewString()
	wantEMOID := emo.DeriveID("mem1").String()

	ack, err := tr.HandleDelivery(ctx, memoryDelivery(t, 1, worldID, emo.KindMemoryUpserted,
		map[string]interface{}{"memory_id": "mem1", "title": "X", "body": "Y"}))
	require.NoError(t, err)
	assert.Equal(t, "translated", ack.Status)

	var (
		kind   string
		envRaw []byte
	)
	err = db.QueryRowContext(ctx, `
		SELECT kind, envelope FROM event_log
		WHERE world_id = $1 AND kind LIKE 'emo.%'
		ORDER BY global_seq DESC LIMIT 1`, worldID).Scan(&kind, &envRaw)
	require.NoError(t, err)
	assert.Equal(t, emo.KindCreated, kind)

	var stored envelope.Envelope
	require.NoError(t, json.Unmarshal(envRaw, &stored))
	payload, err := emo.ParsePayload(stored.Payload)
	require.NoError(t, err)
	assert.Equal(t, wantEMOID, payload.EMOID)
	assert.Equal(t, 1, payload.EMOVersion)
	assert.Equal(t, "X\n\nY", payload.Content)
	assert.Equal(t, emo.IdempotencyKey(wantEMOID, 1, emo.OpCreated), payload.IdempotencyKey)
	assert.Equal(t, Agent, stored.By.Agent)

	// Second upsert on the same memory id becomes an update at version 2.
	ack, err = tr.HandleDelivery(ctx, memoryDelivery(t, 2, worldID, emo.KindMemoryUpserted,
		map[string]interface{}{"memory_id": "mem1", "title": "X2", "body": "Y2"}))
	require.NoError(t, err)
	assert.Equal(t, "translated", ack.Status)

	err = db.QueryRowContext(ctx, `
		SELECT kind, envelope FROM event_log
		WHERE world_id = $1 AND kind LIKE 'emo.%'
		ORDER BY global_seq DESC LIMIT 1`, worldID).Scan(&kind, &envRaw)
	require.NoError(t, err)
	assert.Equal(t, emo.KindUpdated, kind)

	require.NoError(t, json.Unmarshal(envRaw, &stored))
	payload, err = emo.ParsePayload(stored.Payload)
	require.NoError(t, err)
	assert.Equal(t, 2, payload.EMOVersion)
}

func TestTranslateRedeliveryIsIdempotent(t *testing.T) {
	tr, db := newTestTranslator(t)
	ctx := context.Background()

	worldID := uuid.NewString()
	ev := memoryDelivery(t, 1, worldID, emo.KindMemoryUpserted,
		map[string]interface{}{"memory_id": "mem1", "title": "once"})

	_, err := tr.HandleDelivery(ctx, ev)
	require.NoError(t, err)

	// Publisher redelivery of the same sequence. The version cache is warm,
	// so without the watermark gate this would read as a fresh upsert and
	// emit a spurious emo.updated at v2.
	ack, err := tr.HandleDelivery(ctx, ev)
	require.NoError(t, err)
	assert.Equal(t, "duplicate", ack.Status)

	var count int
	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM event_log WHERE world_id = $1 AND kind LIKE 'emo.%'`,
		worldID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "redelivery must not emit a second event")
}

func TestTranslateReplayAfterLostProgress(t *testing.T) {
	tr, db := newTestTranslator(t)
	ctx := context.Background()

	worldID := uuid.NewString()
	ev := memoryDelivery(t, 1, worldID, emo.KindMemoryUpserted,
		map[string]interface{}{"memory_id": "mem1", "title": "once"})

	_, err := tr.HandleDelivery(ctx, ev)
	require.NoError(t, err)

	// A crash between emit and progress commit replays the delivery with no
	// cache and no watermark. The emo_current lookup misses (no projector
	// ran), translation retries v1, and the idempotency key absorbs it.
	tr.mu.Lock()
	tr.versions = make(map[string]int)
	tr.mu.Unlock()
	_, err = db.ExecContext(ctx,
		`DELETE FROM watermarks WHERE projector_name = $1 AND world_id = $2`, Name, worldID)
	require.NoError(t, err)

	ack, err := tr.HandleDelivery(ctx, ev)
	require.NoError(t, err)
	assert.Equal(t, "translated", ack.Status)

	var count int
	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM event_log WHERE world_id = $1 AND kind = 'emo.created'`,
		worldID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "idempotency key must absorb the replay")
}

func TestTranslateDeleteUnseenSkips(t *testing.T) {
	tr, db := newTestTranslator(t)
	ctx := context.Background()

	worldID := uuid.NewString()
	ack, err := tr.HandleDelivery(ctx, memoryDelivery(t, 1, worldID, emo.KindMemoryDeleted,
		map[string]interface{}{"memory_id": "never-seen"}))
	require.NoError(t, err)
	assert.Equal(t, "skipped", ack.Status)

	var count int
	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM event_log WHERE world_id = $1`, worldID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestTranslateIgnoresOtherKinds(t *testing.T) {
	tr, _ := newTestTranslator(t)
	ctx := context.Background()

	ack, err := tr.HandleDelivery(ctx, memoryDelivery(t, 1, uuid.NewString(), "note.created",
		map[string]interface{}{"id": "n1", "title": "T"}))
	require.NoError(t, err)
	assert.Equal(t, "ignored", ack.Status)
}
