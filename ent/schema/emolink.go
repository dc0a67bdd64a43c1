package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// EmoLink holds the schema definition for EMO lineage and reference edges.
// Parent relationships carry rel ∈ {derived, supersedes, merges}; plain
// references carry rel = linked with either an EMO or a URI target.
type EmoLink struct {
	ent.Schema
}

// Fields of the EmoLink.
func (EmoLink) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("emo_id", uuid.UUID{}).
			Immutable(),
		field.UUID("world_id", uuid.UUID{}).
			Immutable(),
		field.String("branch").
			Immutable(),
		field.Enum("rel").
			Values("derived", "supersedes", "merges", "linked").
			Immutable(),
		field.UUID("target_emo_id", uuid.UUID{}).
			Optional().
			Nillable().
			Immutable(),
		field.String("target_uri").
			Optional().
			Nillable().
			Immutable(),
		field.Time("created_at").
			Immutable(),
	}
}

// Indexes of the EmoLink.
func (EmoLink) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("emo_id", "world_id", "branch"),
		index.Fields("world_id", "branch", "target_emo_id"),
	}
}
