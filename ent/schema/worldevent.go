package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// WorldEvent holds the schema definition for the append-only event log.
// The integer ID is the globally monotonic sequence (BIGSERIAL); the
// database sequence is the sole assigner of global_seq.
type WorldEvent struct {
	ent.Schema
}

// Annotations of the WorldEvent.
func (WorldEvent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "event_log"},
	}
}

// Fields of the WorldEvent.
func (WorldEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			StorageKey("global_seq").
			Comment("Globally monotonic sequence across the whole log"),
		field.UUID("event_id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.UUID("world_id", uuid.UUID{}).
			Immutable().
			Comment("Tenant key; every downstream row carries it"),
		field.String("branch").
			MaxLen(100).
			Immutable(),
		field.String("kind").
			Immutable().
			Comment("category.action"),
		field.JSON("envelope", map[string]interface{}{}).
			Immutable().
			Comment("Enriched envelope as accepted by the gateway"),
		field.Time("occurred_at").
			Optional().
			Nillable().
			Immutable().
			Comment("Client-supplied RFC 3339 UTC timestamp"),
		field.Time("received_at").
			Default(time.Now).
			Immutable(),
		field.String("payload_hash").
			Immutable().
			Comment("SHA-256 of the canonical JSON of payload alone"),
		field.String("idempotency_key").
			Optional().
			Nillable().
			Immutable(),
	}
}

// Indexes of the WorldEvent.
func (WorldEvent) Indexes() []ent.Index {
	return []ent.Index{
		// Idempotency tuple — NULL keys are distinct, so unenforced when absent.
		index.Fields("world_id", "branch", "idempotency_key").
			Unique(),
		// Stream listing in sequence order
		index.Fields("world_id", "branch"),
		index.Fields("world_id", "branch", "kind"),
	}
}
