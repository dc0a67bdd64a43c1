package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// GraphNode holds the schema definition for the graph lens node table: one
// node per EMO identity. Deletion marks the node; edges terminating at a
// deleted node are preserved.
type GraphNode struct {
	ent.Schema
}

// Fields of the GraphNode.
func (GraphNode) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("node_id", uuid.UUID{}).
			Immutable().
			Comment("The EMO id"),
		field.UUID("world_id", uuid.UUID{}).
			Immutable(),
		field.String("branch").
			Immutable(),
		field.String("emo_type"),
		field.Int("emo_version"),
		field.Bool("deleted").
			Default(false),
		field.Time("updated_at"),
	}
}

// Indexes of the GraphNode.
func (GraphNode) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("node_id", "world_id", "branch").
			Unique(),
	}
}

// GraphEdge holds the schema definition for graph lens edges (lineage and
// references between EMOs, or out to URIs).
type GraphEdge struct {
	ent.Schema
}

// Fields of the GraphEdge.
func (GraphEdge) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("src_id", uuid.UUID{}).
			Immutable(),
		field.UUID("world_id", uuid.UUID{}).
			Immutable(),
		field.String("branch").
			Immutable(),
		field.String("rel").
			Immutable(),
		field.UUID("dst_id", uuid.UUID{}).
			Optional().
			Nillable().
			Immutable(),
		field.String("dst_uri").
			Optional().
			Nillable().
			Immutable(),
		field.Time("created_at").
			Immutable(),
	}
}

// Indexes of the GraphEdge.
func (GraphEdge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("src_id", "world_id", "branch"),
		index.Fields("world_id", "branch", "dst_id"),
	}
}
