// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mnemonic-nexus/mnx/ent/emocurrent"
)

// EmoCurrent is the model entity for the EmoCurrent schema.
type EmoCurrent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// EmoID holds the value of the "emo_id" field.
	EmoID uuid.UUID `json:"emo_id,omitempty"`
	// WorldID holds the value of the "world_id" field.
	WorldID uuid.UUID `json:"world_id,omitempty"`
	// Branch holds the value of the "branch" field.
	Branch string `json:"branch,omitempty"`
	// EmoType holds the value of the "emo_type" field.
	EmoType emocurrent.EmoType `json:"emo_type,omitempty"`
	// Strictly increasing per identity, starting at 1
	EmoVersion int `json:"emo_version,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID uuid.UUID `json:"tenant_id,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags []string `json:"tags,omitempty"`
	// MimeType holds the value of the "mime_type" field.
	MimeType string `json:"mime_type,omitempty"`
	// SourceKind holds the value of the "source_kind" field.
	SourceKind emocurrent.SourceKind `json:"source_kind,omitempty"`
	// SourceURI holds the value of the "source_uri" field.
	SourceURI *string `json:"source_uri,omitempty"`
	// Deleted holds the value of the "deleted" field.
	Deleted bool `json:"deleted,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// DeletionReason holds the value of the "deletion_reason" field.
	DeletionReason *string `json:"deletion_reason,omitempty"`
	// Stamped from the envelope's received_at so replays reproduce identical snapshots
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EmoCurrent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case emocurrent.FieldTags:
			values[i] = new([]byte)
		case emocurrent.FieldDeleted:
			values[i] = new(sql.NullBool)
		case emocurrent.FieldID, emocurrent.FieldEmoVersion:
			values[i] = new(sql.NullInt64)
		case emocurrent.FieldBranch, emocurrent.FieldEmoType, emocurrent.FieldContent, emocurrent.FieldMimeType, emocurrent.FieldSourceKind, emocurrent.FieldSourceURI, emocurrent.FieldDeletionReason:
			values[i] = new(sql.NullString)
		case emocurrent.FieldDeletedAt, emocurrent.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case emocurrent.FieldEmoID, emocurrent.FieldWorldID, emocurrent.FieldTenantID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EmoCurrent fields.
func (_m *EmoCurrent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case emocurrent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case emocurrent.FieldEmoID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field emo_id", values[i])
			} else if value != nil {
				_m.EmoID = *value
			}
		case emocurrent.FieldWorldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field world_id", values[i])
			} else if value != nil {
				_m.WorldID = *value
			}
		case emocurrent.FieldBranch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field branch", values[i])
			} else if value.Valid {
				_m.Branch = value.String
			}
		case emocurrent.FieldEmoType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field emo_type", values[i])
			} else if value.Valid {
				_m.EmoType = emocurrent.EmoType(value.String)
			}
		case emocurrent.FieldEmoVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field emo_version", values[i])
			} else if value.Valid {
				_m.EmoVersion = int(value.Int64)
			}
		case emocurrent.FieldTenantID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value != nil {
				_m.TenantID = *value
			}
		case emocurrent.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case emocurrent.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case emocurrent.FieldMimeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mime_type", values[i])
			} else if value.Valid {
				_m.MimeType = value.String
			}
		case emocurrent.FieldSourceKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_kind", values[i])
			} else if value.Valid {
				_m.SourceKind = emocurrent.SourceKind(value.String)
			}
		case emocurrent.FieldSourceURI:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_uri", values[i])
			} else if value.Valid {
				_m.SourceURI = new(string)
				*_m.SourceURI = value.String
			}
		case emocurrent.FieldDeleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field deleted", values[i])
			} else if value.Valid {
				_m.Deleted = value.Bool
			}
		case emocurrent.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case emocurrent.FieldDeletionReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field deletion_reason", values[i])
			} else if value.Valid {
				_m.DeletionReason = new(string)
				*_m.DeletionReason = value.String
			}
		case emocurrent.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the EmoCurrent.
// This includes values selected through modifiers, order, etc.
func (_m *EmoCurrent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EmoCurrent.
// Note that you need to call EmoCurrent.Unwrap() before calling this method if this EmoCurrent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EmoCurrent) Update() *EmoCurrentUpdateOne {
	return NewEmoCurrentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EmoCurrent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EmoCurrent) Unwrap() *EmoCurrent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EmoCurrent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EmoCurrent) String() string {
	var builder strings.Builder
	builder.WriteString("EmoCurrent(")
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
	builder.WriteString("emo_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmoType))
	builder.WriteString(", ")
	builder.WriteString("emo_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmoVersion))
	builder.WriteString(", ")
	builder.WriteString("tenant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TenantID))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	builder.WriteString("mime_type=")
	builder.WriteString(_m.MimeType)
	builder.WriteString(", ")
	builder.WriteString("source_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceKind))
	builder.WriteString(", ")
	if v := _m.SourceURI; v != nil {
		builder.WriteString("source_uri=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("deleted=")
	builder.WriteString(fmt.Sprintf("%v", _m.Deleted))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeletionReason; v != nil {
		builder.WriteString("deletion_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EmoCurrents is a parsable slice of EmoCurrent.
type EmoCurrents []*EmoCurrent
