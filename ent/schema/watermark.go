package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

/// Watermark holds the schema definition for projector progress markers:
// (projector_name, world_id, branch) → last_processed_seq, strictly
// non-decreasing (the upsert uses GREATEST).
type Watermark struct {
	ent.Schema
}

// Fields of the Watermark.
func (Watermark) Fields() []ent.Field {
	return []ent.Field{
		field.String("projector_name").
			Immutable(),
		field.UUID("world_id", uuid.UUID{}).
			Immutable(),
		field.String("branch").
			Immutable(),
		field.Int64("last_processed_seq").
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Watermark.
func (Watermark) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("projector_name", "world_id", "branch").
			Unique(),
		index.Fields("projector_name"),
	}
}
