// Code generated by ent, DO NOT EDIT.

package notetag

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the notetag type in the database.
	Label = "note_tag"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldWorldID holds the string denoting the world_id field in the database.
	FieldWorldID = "world_id"
	// FieldBranch holds the string denoting the branch field in the database.
	FieldBranch = "branch"
	// FieldNoteID holds the string denoting the note_id field in the database.
	FieldNoteID = "note_id"
	// FieldTag holds the string denoting the tag field in the database.
	FieldTag = "tag"
	// FieldAppliedAt holds the string denoting the applied_at field in the database.
	FieldAppliedAt = "applied_at"
	// Table holds the table name of the notetag in the database.
	Table = "note_tags"
)

// Columns holds all SQL columns for notetag fields.
var Columns = []string{
	FieldID,
	FieldWorldID,
	FieldBranch,
	FieldNoteID,
	FieldTag,
	FieldAppliedAt,
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

// OrderOption defines the ordering options for the NoteTag queries.
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

// ByNoteID orders the results by the note_id field.
func ByNoteID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNoteID, opts...).ToFunc()
}

// ByTag orders the results by the tag field.
func ByTag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTag, opts...).ToFunc()
}

// ByAppliedAt orders the results by the applied_at field.
func ByAppliedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppliedAt, opts...).ToFunc()
}
