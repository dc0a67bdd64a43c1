package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Note holds the schema definition for the legacy relational-lens note
// table, maintained from note.* events.
type Note struct {
	ent.Schema
}

// Fields of the Note.
func (Note) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("world_id", uuid.UUID{}).
			Immutable(),
		field.String("branch").
			Immutable(),
		field.String("note_id").
			Immutable(),
		field.String("title"),
		field.Text("body").
			Default(""),
		field.Time("created_at"),
		field.Time("updated_at"),
	}
}

// Indexes of the Note.
func (Note) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("world_id", "branch", "note_id").
			Unique(),
	}
}

// NoteTag holds the schema definition for tags applied to notes.
type NoteTag struct {
	ent.Schema
}

// Fields of the NoteTag.
func (NoteTag) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("world_id", uuid.UUID{}).
			Immutable(),
		field.String("branch").
			Immutable(),
		field.String("note_id").
			Immutable(),
		field.String("tag").
			Immutable(),
		field.Time("applied_at").
			Immutable(),
	}
}

// Indexes of the NoteTag.
func (NoteTag) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("world_id", "branch", "note_id", "tag").
			Unique(),
	}
}

// NoteLink holds the schema definition for typed links between notes.
type NoteLink struct {
	ent.Schema
}

// Fields of the NoteLink.
func (NoteLink) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("world_id", uuid.UUID{}).
			Immutable(),
		field.String("branch").
			Immutable(),
		field.String("src_id").
			Immutable(),
		field.String("dst_id").
			Immutable(),
		field.String("link_type").
			Default("default").
			Immutable(),
		field.Time("created_at").
			Immutable(),
	}
}

// Indexes of the NoteLink.
func (NoteLink) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("world_id", "branch", "src_id", "dst_id", "link_type").
			Unique(),
	}
}
