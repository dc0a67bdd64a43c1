package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// EmoCurrent holds the schema definition for the current EMO state: one row
// per EMO identity (emo_id, world_id, branch). Owned exclusively by the
// relational projector; deletes are soft.
type EmoCurrent struct {
	ent.Schema
}

// Annotations of the EmoCurrent.
func (EmoCurrent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "emo_current"},
	}
}

// Fields of the EmoCurrent.
func (EmoCurrent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("emo_id", uuid.UUID{}).
			Immutable(),
		field.UUID("world_id", uuid.UUID{}).
			Immutable(),
		field.String("branch").
			Immutable(),
		field.Enum("emo_type").
			Values("note", "fact", "doc", "profile"),
		field.Int("emo_version").
			Comment("Strictly increasing per identity, starting at 1"),
		field.UUID("tenant_id", uuid.UUID{}),
		field.Text("content").
			Optional(),
		field.JSON("tags", []string{}).
			Optional(),
		field.String("mime_type").
			Default("text/markdown"),
		field.Enum("source_kind").
			Values("user", "agent", "ingest").
			Default("agent"),
		field.String("source_uri").
			Optional().
			Nillable(),
		field.Bool("deleted").
			Default(false),
		field.Time("deleted_at").
			Optional().
			Nillable(),
		field.Text("deletion_reason").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Comment("Stamped from the envelope's received_at so replays reproduce identical snapshots"),
	}
}

// Indexes of the EmoCurrent.
func (EmoCurrent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("emo_id", "world_id", "branch").
			Unique(),
		index.Fields("world_id", "branch", "deleted"),
	}
}
