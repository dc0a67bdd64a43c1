// Code generated by ent, DO NOT EDIT.

package notelink

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the notelink type in the database.
	Label = "note_link"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldWorldID holds the string denoting the world_id field in the database.
	FieldWorldID = "world_id"
	// FieldBranch holds the string denoting the branch field in the database.
	FieldBranch = "branch"
	// FieldSrcID holds the string denoting the src_id field in the database.
	FieldSrcID = "src_id"
	// FieldDstID holds the string denoting the dst_id field in the database.
	FieldDstID = "dst_id"
	// FieldLinkType holds the string denoting the link_type field in the database.
	FieldLinkType = "link_type"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the notelink in the database.
	Table = "note_links"
)

// Columns holds all SQL columns for notelink fields.
var Columns = []string{
	FieldID,
	FieldWorldID,
	FieldBranch,
	FieldSrcID,
	FieldDstID,
	FieldLinkType,
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

var (
	// DefaultLinkType holds the default value on creation for the "link_type" field.
	DefaultLinkType string
)

// OrderOption defines the ordering options for the NoteLink queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorldID orders the results by the world_id field.
func ByWorldID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorldID, opts...).ToFunc()
}

// ByBranch orders the results by the branch field.
func ByBranch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranch, opts...).ToFunc()
}

// BySrcID orders the results by the src_id field.
func BySrcID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSrcID, opts...).ToFunc()
}

// ByDstID orders the results by the dst_id field.
func ByDstID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDstID, opts...).ToFunc()
}

// ByLinkType orders the results by the link_type field.
func ByLinkType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLinkType, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
