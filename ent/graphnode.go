// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mnemonic-nexus/mnx/ent/graphnode"
)

// GraphNode is the model entity for the GraphNode schema.
type GraphNode struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// The EMO id
	NodeID uuid.UUID `json:"node_id,omitempty"`
	// WorldID holds the value of the "world_id" field.
	WorldID uuid.UUID `json:"world_id,omitempty"`
	// Branch holds the value of the "branch" field.
	Branch string `json:"branch,omitempty"`
	// EmoType holds the value of the "emo_type" field.
	EmoType string `json:"emo_type,omitempty"`
	// EmoVersion holds the value of the "emo_version" field.
	EmoVersion int `json:"emo_version,omitempty"`
	// Deleted holds the value of the "deleted" field.
	Deleted bool `json:"deleted,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GraphNode) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case graphnode.FieldDeleted:
			values[i] = new(sql.NullBool)
		case graphnode.FieldID, graphnode.FieldEmoVersion:
			values[i] = new(sql.NullInt64)
		case graphnode.FieldBranch, graphnode.FieldEmoType:
			values[i] = new(sql.NullString)
		case graphnode.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case graphnode.FieldNodeID, graphnode.FieldWorldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GraphNode fields.
func (_m *GraphNode) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case graphnode.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case graphnode.FieldNodeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field node_id", values[i])
			} else if value != nil {
				_m.NodeID = *value
			}
		case graphnode.FieldWorldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field world_id", values[i])
			} else if value != nil {
				_m.WorldID = *value
			}
		case graphnode.FieldBranch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field branch", values[i])
			} else if value.Valid {
				_m.Branch = value.String
			}
		case graphnode.FieldEmoType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field emo_type", values[i])
			} else if value.Valid {
				_m.EmoType = value.String
			}
		case graphnode.FieldEmoVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field emo_version", values[i])
			} else if value.Valid {
				_m.EmoVersion = int(value.Int64)
			}
		case graphnode.FieldDeleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field deleted", values[i])
			} else if value.Valid {
				_m.Deleted = value.Bool
			}
		case graphnode.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the GraphNode.
// This includes values selected through modifiers, order, etc.
func (_m *GraphNode) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GraphNode.
// Note that you need to call GraphNode.Unwrap() before calling this method if this GraphNode
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GraphNode) Update() *GraphNodeUpdateOne {
	return NewGraphNodeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GraphNode entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GraphNode) Unwrap() *GraphNode {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GraphNode is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GraphNode) String() string {
	var builder strings.Builder
	builder.WriteString("GraphNode(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("node_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.NodeID))
	builder.WriteString(", ")
	builder.WriteString("world_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorldID))
	builder.WriteString(", ")
	builder.WriteString("branch=")
	builder.WriteString(_m.Branch)
	builder.WriteString(", ")
	builder.WriteString("emo_type=")
	builder.WriteString(_m.EmoType)
	builder.WriteString(", ")
	builder.WriteString("emo_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmoVersion))
	builder.WriteString(", ")
	builder.WriteString("deleted=")
	builder.WriteString(fmt.Sprintf("%v", _m.Deleted))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GraphNodes is a parsable slice of GraphNode.
type GraphNodes []*GraphNode
