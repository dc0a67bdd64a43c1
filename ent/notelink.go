// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mnemonic-nexus/mnx/ent/notelink"
)

// NoteLink is the model entity for the NoteLink schema.
type NoteLink struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// WorldID holds the value of the "world_id" field.
	WorldID uuid.UUID `json:"world_id,omitempty"`
	// Branch holds the value of the "branch" field.
	Branch string `json:"branch,omitempty"`
	// SrcID holds the value of the "src_id" field.
	SrcID string `json:"src_id,omitempty"`
	// DstID holds the value of the "dst_id" field.
	DstID string `json:"dst_id,omitempty"`
	// LinkType holds the value of the "link_type" field.
	LinkType string `json:"link_type,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NoteLink) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case notelink.FieldID:
			values[i] = new(sql.NullInt64)
		case notelink.FieldBranch, notelink.FieldSrcID, notelink.FieldDstID, notelink.FieldLinkType:
			values[i] = new(sql.NullString)
		case notelink.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case notelink.FieldWorldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NoteLink fields.
func (_m *NoteLink) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case notelink.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case notelink.FieldWorldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field world_id", values[i])
			} else if value != nil {
				_m.WorldID = *value
			}
		case notelink.FieldBranch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field branch", values[i])
			} else if value.Valid {
				_m.Branch = value.String
			}
		case notelink.FieldSrcID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field src_id", values[i])
			} else if value.Valid {
				_m.SrcID = value.String
			}
		case notelink.FieldDstID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dst_id", values[i])
			} else if value.Valid {
				_m.DstID = value.String
			}
		case notelink.FieldLinkType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field link_type", values[i])
			} else if value.Valid {
				_m.LinkType = value.String
			}
		case notelink.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the NoteLink.
// This includes values selected through modifiers, order, etc.
func (_m *NoteLink) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this NoteLink.
// Note that you need to call NoteLink.Unwrap() before calling this method if this NoteLink
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NoteLink) Update() *NoteLinkUpdateOne {
	return NewNoteLinkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NoteLink entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NoteLink) Unwrap() *NoteLink {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: NoteLink is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NoteLink) String() string {
	var builder strings.Builder
	builder.WriteString("NoteLink(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("world_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorldID))
	builder.WriteString(", ")
	builder.WriteString("branch=")
	builder.WriteString(_m.Branch)
	builder.WriteString(", ")
	builder.WriteString("src_id=")
	builder.WriteString(_m.SrcID)
	builder.WriteString(", ")
	builder.WriteString("dst_id=")
	builder.WriteString(_m.DstID)
	builder.WriteString(", ")
	builder.WriteString("link_type=")
	builder.WriteString(_m.LinkType)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// NoteLinks is a parsable slice of NoteLink.
type NoteLinks []*NoteLink
