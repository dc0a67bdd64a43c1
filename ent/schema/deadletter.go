package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// DeadLetter holds the schema definition for quarantined events: rows the
// publisher exhausted retries on, or rejected structurally.
type DeadLetter struct {
	ent.Schema
}

// Fields of the DeadLetter.
func (DeadLetter) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			StorageKey("global_seq").
			Immutable(),
		field.UUID("event_id", uuid.UUID{}).
			Immutable(),
		field.UUID("world_id", uuid.UUID{}).
			Immutable(),
		field.String("branch").
			Immutable(),
		field.String("kind").
			Immutable(),
		field.JSON("envelope", map[string]interface{}{}).
			Immutable(),
		field.Text("error").
			Immutable(),
		field.String("publisher_id").
			Immutable(),
		field.Int("attempts").
			Default(0).
			Immutable(),
		field.Time("moved_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the DeadLetter.
func (DeadLetter) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("world_id", "branch"),
		index.Fields("moved_at"),
	}
}
