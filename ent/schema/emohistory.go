package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// EmoHistory holds the schema definition for the append-only EMO version
// history. Rows are never mutated; a delete appends a row with operation
// "deleted" and an empty content hash.
type EmoHistory struct {
	ent.Schema
}

// Annotations of the EmoHistory.
func (EmoHistory) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "emo_history"},
	}
}

// Fields of the EmoHistory.
func (EmoHistory) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("change_id", uuid.UUID{}).
			Optional().
			Nillable().
			Immutable(),
		field.UUID("emo_id", uuid.UUID{}).
			Immutable(),
		field.Int("emo_version").
			Immutable(),
		field.UUID("world_id", uuid.UUID{}).
			Immutable(),
		field.String("branch").
			Immutable(),
		field.Enum("operation").
			Values("created", "updated", "linked", "deleted").
			Immutable(),
		field.String("content_hash").
			Immutable().
			Comment("SHA-256 of the content at this version; empty string for deletes"),
		field.String("idempotency_key").
			Optional().
			Nillable().
			Immutable().
			Comment("{emo_id}:{emo_version}:{op}"),
		field.Time("recorded_at").
			Immutable(),
	}
}

// Indexes of the EmoHistory.
func (EmoHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("emo_id", "emo_version", "world_id", "branch").
			Unique(),
		index.Fields("idempotency_key").
			Unique(),
		index.Fields("world_id", "branch"),
	}
}
