// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mnemonic-nexus/mnx/ent/notetag"
)

// NoteTag is the model entity for the NoteTag schema.
type NoteTag struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// WorldID holds the value of the "world_id" field.
	WorldID uuid.UUID `json:"world_id,omitempty"`
	// Branch holds the value of the "branch" field.
	Branch string `json:"branch,omitempty"`
	// NoteID holds the value of the "note_id" field.
	NoteID string `json:"note_id,omitempty"`
	// Tag holds the value of the "tag" field.
	Tag string `json:"tag,omitempty"`
	// AppliedAt holds the value of the "applied_at" field.
	AppliedAt    time.Time `json:"applied_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NoteTag) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case notetag.FieldID:
			values[i] = new(sql.NullInt64)
		case notetag.FieldBranch, notetag.FieldNoteID, notetag.FieldTag:
			values[i] = new(sql.NullString)
		case notetag.FieldAppliedAt:
			values[i] = new(sql.NullTime)
		case notetag.FieldWorldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NoteTag fields.
func (_m *NoteTag) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case notetag.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case notetag.FieldWorldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field world_id", values[i])
			} else if value != nil {
				_m.WorldID = *value
			}
		case notetag.FieldBranch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field branch", values[i])
			} else if value.Valid {
				_m.Branch = value.String
			}
		case notetag.FieldNoteID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field note_id", values[i])
			} else if value.Valid {
				_m.NoteID = value.String
			}
		case notetag.FieldTag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tag", values[i])
			} else if value.Valid {
				_m.Tag = value.String
			}
		case notetag.FieldAppliedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field applied_at", values[i])
			} else if value.Valid {
				_m.AppliedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the NoteTag.
// This includes values selected through modifiers, order, etc.
func (_m *NoteTag) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this NoteTag.
// Note that you need to call NoteTag.Unwrap() before calling this method if this NoteTag
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NoteTag) Update() *NoteTagUpdateOne {
	return NewNoteTagClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NoteTag entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NoteTag) Unwrap() *NoteTag {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: NoteTag is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NoteTag) String() string {
	var builder strings.Builder
	builder.WriteString("NoteTag(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("world_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorldID))
	builder.WriteString(", ")
	builder.WriteString("branch=")
	builder.WriteString(_m.Branch)
	builder.WriteString(", ")
	builder.WriteString("note_id=")
	builder.WriteString(_m.NoteID)
	builder.WriteString(", ")
	builder.WriteString("tag=")
	builder.WriteString(_m.Tag)
	builder.WriteString(", ")
	builder.WriteString("applied_at=")
	builder.WriteString(_m.AppliedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// NoteTags is a parsable slice of NoteTag.
type NoteTags []*NoteTag
