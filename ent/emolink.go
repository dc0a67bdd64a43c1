// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mnemonic-nexus/mnx/ent/emolink"
)

// EmoLink is the model entity for the EmoLink schema.
type EmoLink struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// EmoID holds the value of the "emo_id" field.
	EmoID uuid.UUID `json:"emo_id,omitempty"`
	// WorldID holds the value of the "world_id" field.
	WorldID uuid.UUID `json:"world_id,omitempty"`
	// Branch holds the value of the "branch" field.
	Branch string `json:"branch,omitempty"`
	// Rel holds the value of the "rel" field.
	Rel emolink.Rel `json:"rel,omitempty"`
	// TargetEmoID holds the value of the "target_emo_id" field.
	TargetEmoID *uuid.UUID `json:"target_emo_id,omitempty"`
	// TargetURI holds the value of the "target_uri" field.
	TargetURI *string `json:"target_uri,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EmoLink) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case emolink.FieldTargetEmoID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case emolink.FieldID:
			values[i] = new(sql.NullInt64)
		case emolink.FieldBranch, emolink.FieldRel, emolink.FieldTargetURI:
			values[i] = new(sql.NullString)
		case emolink.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case emolink.FieldEmoID, emolink.FieldWorldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EmoLink fields.
func (_m *EmoLink) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case emolink.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case emolink.FieldEmoID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field emo_id", values[i])
			} else if value != nil {
				_m.EmoID = *value
			}
		case emolink.FieldWorldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field world_id", values[i])
			} else if value != nil {
				_m.WorldID = *value
			}
		case emolink.FieldBranch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field branch", values[i])
			} else if value.Valid {
				_m.Branch = value.String
			}
		case emolink.FieldRel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rel", values[i])
			} else if value.Valid {
				_m.Rel = emolink.Rel(value.String)
			}
		case emolink.FieldTargetEmoID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field target_emo_id", values[i])
			} else if value.Valid {
				_m.TargetEmoID = new(uuid.UUID)
				*_m.TargetEmoID = *value.S.(*uuid.UUID)
			}
		case emolink.FieldTargetURI:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_uri", values[i])
			} else if value.Valid {
				_m.TargetURI = new(string)
				*_m.TargetURI = value.String
			}
		case emolink.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the EmoLink.
// This includes values selected through modifiers, order, etc.
func (_m *EmoLink) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EmoLink.
// Note that you need to call EmoLink.Unwrap() before calling this method if this EmoLink
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EmoLink) Update() *EmoLinkUpdateOne {
	return NewEmoLinkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EmoLink entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EmoLink) Unwrap() *EmoLink {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EmoLink is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EmoLink) String() string {
	var builder strings.Builder
	builder.WriteString("EmoLink(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("emo_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmoID))
	builder.WriteString(", ")
	builder.WriteString("world_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorldID))
	builder.WriteString(", ")
	builder.WriteString("branch=")
	builder.WriteString(_m.Branch)
	builder.WriteString(", ")
	builder.WriteString("rel=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rel))
	builder.WriteString(", ")
	if v := _m.TargetEmoID; v != nil {
		builder.WriteString("target_emo_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TargetURI; v != nil {
		builder.WriteString("target_uri=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EmoLinks is a parsable slice of EmoLink.
type EmoLinks []*EmoLink
