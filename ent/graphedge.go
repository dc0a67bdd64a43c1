// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mnemonic-nexus/mnx/ent/graphedge"
)

// GraphEdge is the model entity for the GraphEdge schema.
type GraphEdge struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SrcID holds the value of the "src_id" field.
	SrcID uuid.UUID `json:"src_id,omitempty"`
	// WorldID holds the value of the "world_id" field.
	WorldID uuid.UUID `json:"world_id,omitempty"`
	// Branch holds the value of the "branch" field.
	Branch string `json:"branch,omitempty"`
	// Rel holds the value of the "rel" field.
	Rel string `json:"rel,omitempty"`
	// DstID holds the value of the "dst_id" field.
	DstID *uuid.UUID `json:"dst_id,omitempty"`
	// DstURI holds the value of the "dst_uri" field.
	DstURI *string `json:"dst_uri,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GraphEdge) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case graphedge.FieldDstID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case graphedge.FieldID:
			values[i] = new(sql.NullInt64)
		case graphedge.FieldBranch, graphedge.FieldRel, graphedge.FieldDstURI:
			values[i] = new(sql.NullString)
		case graphedge.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case graphedge.FieldSrcID, graphedge.FieldWorldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GraphEdge fields.
func (_m *GraphEdge) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case graphedge.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case graphedge.FieldSrcID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field src_id", values[i])
			} else if value != nil {
				_m.SrcID = *value
			}
		case graphedge.FieldWorldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field world_id", values[i])
			} else if value != nil {
				_m.WorldID = *value
			}
		case graphedge.FieldBranch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field branch", values[i])
			} else if value.Valid {
				_m.Branch = value.String
			}
		case graphedge.FieldRel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rel", values[i])
			} else if value.Valid {
				_m.Rel = value.String
			}
		case graphedge.FieldDstID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field dst_id", values[i])
			} else if value.Valid {
				_m.DstID = new(uuid.UUID)
				*_m.DstID = *value.S.(*uuid.UUID)
			}
		case graphedge.FieldDstURI:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dst_uri", values[i])
			} else if value.Valid {
				_m.DstURI = new(string)
				*_m.DstURI = value.String
			}
		case graphedge.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the GraphEdge.
// This includes values selected through modifiers, order, etc.
func (_m *GraphEdge) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GraphEdge.
// Note that you need to call GraphEdge.Unwrap() before calling this method if this GraphEdge
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GraphEdge) Update() *GraphEdgeUpdateOne {
	return NewGraphEdgeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GraphEdge entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GraphEdge) Unwrap() *GraphEdge {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GraphEdge is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GraphEdge) String() string {
	var builder strings.Builder
	builder.WriteString("GraphEdge(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("src_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SrcID))
	builder.WriteString(", ")
	builder.WriteString("world_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorldID))
	builder.WriteString(", ")
	builder.WriteString("branch=")
	builder.WriteString(_m.Branch)
	builder.WriteString(", ")
	builder.WriteString("rel=")
	builder.WriteString(_m.Rel)
	builder.WriteString(", ")
	if v := _m.DstID; v != nil {
		builder.WriteString("dst_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DstURI; v != nil {
		builder.WriteString("dst_uri=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GraphEdges is a parsable slice of GraphEdge.
type GraphEdges []*GraphEdge
