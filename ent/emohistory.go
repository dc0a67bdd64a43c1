// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mnemonic-nexus/mnx/ent/emohistory"
)

// EmoHistory is the model entity for the EmoHistory schema.
type EmoHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ChangeID holds the value of the "change_id" field.
	ChangeID *uuid.UUID `json:"change_id,omitempty"`
	// EmoID holds the value of the "emo_id" field.
	EmoID uuid.UUID `json:"emo_id,omitempty"`
	// EmoVersion holds the value of the "emo_version" field.
	EmoVersion int `json:"emo_version,omitempty"`
	// WorldID holds the value of the "world_id" field.
	WorldID uuid.UUID `json:"world_id,omitempty"`
	// Branch holds the value of the "branch" field.
	Branch string `json:"branch,omitempty"`
	// Operation holds the value of the "operation" field.
	Operation emohistory.Operation `json:"operation,omitempty"`
	// SHA-256 of the content at this version; empty string for deletes
	ContentHash string `json:"content_hash,omitempty"`
	// {emo_id}:{emo_version}:{op}
	IdempotencyKey *string `json:"idempotency_key,omitempty"`
	// RecordedAt holds the value of the "recorded_at" field.
	RecordedAt   time.Time `json:"recorded_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EmoHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case emohistory.FieldChangeID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case emohistory.FieldID, emohistory.FieldEmoVersion:
			values[i] = new(sql.NullInt64)
		case emohistory.FieldBranch, emohistory.FieldOperation, emohistory.FieldContentHash, emohistory.FieldIdempotencyKey:
			values[i] = new(sql.NullString)
		case emohistory.FieldRecordedAt:
			values[i] = new(sql.NullTime)
		case emohistory.FieldEmoID, emohistory.FieldWorldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EmoHistory fields.
func (_m *EmoHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case emohistory.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case emohistory.FieldChangeID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field change_id", values[i])
			} else if value.Valid {
				_m.ChangeID = new(uuid.UUID)
				*_m.ChangeID = *value.S.(*uuid.UUID)
			}
		case emohistory.FieldEmoID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field emo_id", values[i])
			} else if value != nil {
				_m.EmoID = *value
			}
		case emohistory.FieldEmoVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field emo_version", values[i])
			} else if value.Valid {
				_m.EmoVersion = int(value.Int64)
			}
		case emohistory.FieldWorldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field world_id", values[i])
			} else if value != nil {
				_m.WorldID = *value
			}
		case emohistory.FieldBranch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field branch", values[i])
			} else if value.Valid {
				_m.Branch = value.String
			}
		case emohistory.FieldOperation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field operation", values[i])
			} else if value.Valid {
				_m.Operation = emohistory.Operation(value.String)
			}
		case emohistory.FieldContentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value.Valid {
				_m.ContentHash = value.String
			}
		case emohistory.FieldIdempotencyKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field idempotency_key", values[i])
			} else if value.Valid {
				_m.IdempotencyKey = new(string)
				*_m.IdempotencyKey = value.String
			}
		case emohistory.FieldRecordedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field recorded_at", values[i])
			} else if value.Valid {
				_m.RecordedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EmoHistory.
// This includes values selected through modifiers, order, etc.
func (_m *EmoHistory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EmoHistory.
// Note that you need to call EmoHistory.Unwrap() before calling this method if this EmoHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EmoHistory) Update() *EmoHistoryUpdateOne {
	return NewEmoHistoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EmoHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EmoHistory) Unwrap() *EmoHistory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EmoHistory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EmoHistory) String() string {
	var builder strings.Builder
	builder.WriteString("EmoHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.ChangeID; v != nil {
		builder.WriteString("change_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("emo_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmoID))
	builder.WriteString(", ")
	builder.WriteString("emo_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmoVersion))
	builder.WriteString(", ")
	builder.WriteString("world_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorldID))
	builder.WriteString(", ")
	builder.WriteString("branch=")
	builder.WriteString(_m.Branch)
	builder.WriteString(", ")
	builder.WriteString("operation=")
	builder.WriteString(fmt.Sprintf("%v", _m.Operation))
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(_m.ContentHash)
	builder.WriteString(", ")
	if v := _m.IdempotencyKey; v != nil {
		builder.WriteString("idempotency_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("recorded_at=")
	builder.WriteString(_m.RecordedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EmoHistories is a parsable slice of EmoHistory.
type EmoHistories []*EmoHistory
