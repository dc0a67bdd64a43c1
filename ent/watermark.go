// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mnemonic-nexus/mnx/ent/watermark"
)

// Watermark is the model entity for the Watermark schema.
type Watermark struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ProjectorName holds the value of the "projector_name" field.
	ProjectorName string `json:"projector_name,omitempty"`
	// WorldID holds the value of the "world_id" field.
	WorldID uuid.UUID `json:"world_id,omitempty"`
	// Branch holds the value of the "branch" field.
	Branch string `json:"branch,omitempty"`
	// LastProcessedSeq holds the value of the "last_processed_seq" field.
	LastProcessedSeq int64 `json:"last_processed_seq,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Watermark) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case watermark.FieldID, watermark.FieldLastProcessedSeq:
			values[i] = new(sql.NullInt64)
		case watermark.FieldProjectorName, watermark.FieldBranch:
			values[i] = new(sql.NullString)
		case watermark.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case watermark.FieldWorldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Watermark fields.
func (_m *Watermark) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case watermark.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case watermark.FieldProjectorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field projector_name", values[i])
			} else if value.Valid {
				_m.ProjectorName = value.String
			}
		case watermark.FieldWorldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field world_id", values[i])
			} else if value != nil {
				_m.WorldID = *value
			}
		case watermark.FieldBranch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field branch", values[i])
			} else if value.Valid {
				_m.Branch = value.String
			}
		case watermark.FieldLastProcessedSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_processed_seq", values[i])
			} else if value.Valid {
				_m.LastProcessedSeq = value.Int64
			}
		case watermark.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Watermark.
// This includes values selected through modifiers, order, etc.
func (_m *Watermark) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Watermark.
// Note that you need to call Watermark.Unwrap() before calling this method if this Watermark
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Watermark) Update() *WatermarkUpdateOne {
	return NewWatermarkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Watermark entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Watermark) Unwrap() *Watermark {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Watermark is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Watermark) String() string {
	var builder strings.Builder
	builder.WriteString("Watermark(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("projector_name=")
	builder.WriteString(_m.ProjectorName)
	builder.WriteString(", ")
	builder.WriteString("world_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorldID))
	builder.WriteString(", ")
	builder.WriteString("branch=")
	builder.WriteString(_m.Branch)
	builder.WriteString(", ")
	builder.WriteString("last_processed_seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastProcessedSeq))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Watermarks is a parsable slice of Watermark.
type Watermarks []*Watermark
