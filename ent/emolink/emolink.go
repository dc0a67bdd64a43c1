// Code generated by ent, DO NOT EDIT.

package emolink

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the emolink type in the database.
	Label = "emo_link"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEmoID holds the string denoting the emo_id field in the database.
	FieldEmoID = "emo_id"
	// FieldWorldID holds the string denoting the world_id field in the database.
	FieldWorldID = "world_id"
	// FieldBranch holds the string denoting the branch field in the database.
	FieldBranch = "branch"
	// FieldRel holds the string denoting the rel field in the database.
	FieldRel = "rel"
	// FieldTargetEmoID holds the string denoting the target_emo_id field in the database.
	FieldTargetEmoID = "target_emo_id"
	// FieldTargetURI holds the string denoting the target_uri field in the database.
	FieldTargetURI = "target_uri"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the emolink in the database.
	Table = "emo_links"
)

// Columns holds all SQL columns for emolink fields.
var Columns = []string{
	FieldID,
	FieldEmoID,
	FieldWorldID,
	FieldBranch,
	FieldRel,
	FieldTargetEmoID,
	FieldTargetURI,
	FieldCreatedAt,
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

// Rel defines the type for the "rel" enum field.
type Rel string

// Rel values.
const (
	RelDerived    Rel = "derived"
	RelSupersedes Rel = "supersedes"
	RelMerges     Rel = "merges"
	RelLinked     Rel = "linked"
)

func (r Rel) String() string {
	return string(r)
}

// RelValidator is a validator for the "rel" field enum values. It is called by the builders before save.
func RelValidator(r Rel) error {
	switch r {
	case RelDerived, RelSupersedes, RelMerges, RelLinked:
		return nil
	default:
		return fmt.Errorf("emolink: invalid enum value for rel field: %q", r)
	}
}

// OrderOption defines the ordering options for the EmoLink queries.
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

// ByRel orders the results by the rel field.
func ByRel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRel, opts...).ToFunc()
}

// ByTargetEmoID orders the results by the target_emo_id field.
func ByTargetEmoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetEmoID, opts...).ToFunc()
}

// ByTargetURI orders the results by the target_uri field.
func ByTargetURI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetURI, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
