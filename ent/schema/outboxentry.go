package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// OutboxEntry holds the schema definition for the transactional outbox.
// One row per appended event, written in the same transaction as the log
// row; the ID is the event's global_seq (set explicitly, not generated).
type OutboxEntry struct {
	ent.Schema
}

// Annotations of the OutboxEntry.
func (OutboxEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "outbox"},
	}
}

// Fields of the OutboxEntry.
func (OutboxEntry) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			StorageKey("global_seq").
			Immutable(),
		field.UUID("event_id", uuid.UUID{}).
			Immutable(),
		field.UUID("world_id", uuid.UUID{}).
			Immutable(),
		field.String("branch").
			MaxLen(100).
			Immutable(),
		field.String("kind").
			Immutable(),
		field.JSON("envelope", map[string]interface{}{}).
			Immutable(),
		field.String("payload_hash").
			Immutable(),
		field.Time("received_at").
			Immutable().
			Comment("Copied from the log row; drives the lag-seconds gauge"),
		field.Time("published_at").
			Optional().
			Nillable(),
		field.Int("attempts").
			Default(0),
		field.Text("last_error").
			Optional().
			Nillable(),
		field.Time("next_retry_at").
			Optional().
			Nillable().
			Comment("Doubles as the claim lease while a publisher holds the row"),
	}
}

// Indexes of the OutboxEntry.
func (OutboxEntry) Indexes() []ent.Index {
	return []ent.Index{
		// Publisher batch fetch: unpublished rows in sequence order
		index.Fields("published_at"),
		index.Fields("world_id", "branch"),
	}
}
