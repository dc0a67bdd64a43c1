// Code generated by ent, DO NOT EDIT.

package emocurrent

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the emocurrent type in the database.
	Label = "emo_current"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEmoID holds the string denoting the emo_id field in the database.
	FieldEmoID = "emo_id"
	// FieldWorldID holds the string denoting the world_id field in the database.
	FieldWorldID = "world_id"
	// FieldBranch holds the string denoting the branch field in the database.
	FieldBranch = "branch"
	// FieldEmoType holds the string denoting the emo_type field in the database.
	FieldEmoType = "emo_type"
	// FieldEmoVersion holds the string denoting the emo_version field in the database.
	FieldEmoVersion = "emo_version"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldMimeType holds the string denoting the mime_type field in the database.
	FieldMimeType = "mime_type"
	// FieldSourceKind holds the string denoting the source_kind field in the database.
	FieldSourceKind = "source_kind"
	// FieldSourceURI holds the string denoting the source_uri field in the database.
	FieldSourceURI = "source_uri"
	// FieldDeleted holds the string denoting the deleted field in the database.
	FieldDeleted = "deleted"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldDeletionReason holds the string denoting the deletion_reason field in the database.
	FieldDeletionReason = "deletion_reason"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the emocurrent in the database.
	Table = "emo_current"
)

// Columns holds all SQL columns for emocurrent fields.
var Columns = []string{
	FieldID,
	FieldEmoID,
	FieldWorldID,
	FieldBranch,
	FieldEmoType,
	FieldEmoVersion,
	FieldTenantID,
	FieldContent,
	FieldTags,
	FieldMimeType,
	FieldSourceKind,
	FieldSourceURI,
	FieldDeleted,
	FieldDeletedAt,
	FieldDeletionReason,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultMimeType holds the default value on creation for the "mime_type" field.
	DefaultMimeType string
	// DefaultDeleted holds the default value on creation for the "deleted" field.
	DefaultDeleted bool
)

// EmoType defines the type for the "emo_type" enum field.
type EmoType string

// EmoType values.
const (
	EmoTypeNote    EmoType = "note"
	EmoTypeFact    EmoType = "fact"
	EmoTypeDoc     EmoType = "doc"
	EmoTypeProfile EmoType = "profile"
)

func (et EmoType) String() string {
	return string(et)
}

// EmoTypeValidator is a validator for the "emo_type" field enum values. It is called by the builders before save.
func EmoTypeValidator(et EmoType) error {
	switch et {
	case EmoTypeNote, EmoTypeFact, EmoTypeDoc, EmoTypeProfile:
		return nil
	default:
		return fmt.Errorf("emocurrent: invalid enum value for emo_type field: %q", et)
	}
}

// SourceKind defines the type for the "source_kind" enum field.
type SourceKind string

// SourceKindAgent is the default value of the SourceKind enum.
const DefaultSourceKind = SourceKindAgent

// SourceKind values.
const (
	SourceKindUser   SourceKind = "user"
	SourceKindAgent  SourceKind = "agent"
	SourceKindIngest SourceKind = "ingest"
)

func (sk SourceKind) String() string {
	return string(sk)
}

// SourceKindValidator is a validator for the "source_kind" field enum values. It is called by the builders before save.
func SourceKindValidator(sk SourceKind) error {
	switch sk {
	case SourceKindUser, SourceKindAgent, SourceKindIngest:
		return nil
	default:
		return fmt.Errorf("emocurrent: invalid enum value for source_kind field: %q", sk)
	}
}

// OrderOption defines the ordering options for the EmoCurrent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEmoID orders the results by the emo_id field.
func ByEmoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmoID, opts...).ToFunc()
}

// ByWorldID orders the results by the world_id field.
func ByWorldID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorldID, opts...).ToFunc()
}

// ByBranch orders the results by the branch field.
func ByBranch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranch, opts...).ToFunc()
}

// ByEmoType orders the results by the emo_type field.
func ByEmoType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmoType, opts...).ToFunc()
}

// ByEmoVersion orders the results by the emo_version field.
func ByEmoVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmoVersion, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByMimeType orders the results by the mime_type field.
func ByMimeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMimeType, opts...).ToFunc()
}

// BySourceKind orders the results by the source_kind field.
func BySourceKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceKind, opts...).ToFunc()
}

// BySourceURI orders the results by the source_uri field.
func BySourceURI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceURI, opts...).ToFunc()
}

// ByDeleted orders the results by the deleted field.
func ByDeleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeleted, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByDeletionReason orders the results by the deletion_reason field.
func ByDeletionReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletionReason, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
