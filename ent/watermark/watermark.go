// Code generated by ent, DO NOT EDIT.

package watermark

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the watermark type in the database.
	Label = "watermark"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProjectorName holds the string denoting the projector_name field in the database.
	FieldProjectorName = "projector_name"
	// FieldWorldID holds the string denoting the world_id field in the database.
	FieldWorldID = "world_id"
	// FieldBranch holds the string denoting the branch field in the database.
	FieldBranch = "branch"
	// FieldLastProcessedSeq holds the string denoting the last_processed_seq field in the database.
	FieldLastProcessedSeq = "last_processed_seq"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the watermark in the database.
	Table = "watermarks"
)

// Columns holds all SQL columns for watermark fields.
var Columns = []string{
	FieldID,
	FieldProjectorName,
	FieldWorldID,
	FieldBranch,
	FieldLastProcessedSeq,
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
	// DefaultLastProcessedSeq holds the default value on creation for the "last_processed_seq" field.
	DefaultLastProcessedSeq int64
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Watermark queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectorName orders the results by the projector_name field.
func ByProjectorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectorName, opts...).ToFunc()
}

// ByWorldID orders the results by the world_id field.
func ByWorldID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorldID, opts...).ToFunc()
}

// ByBranch orders the results by the branch field.
func ByBranch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranch, opts...).ToFunc()
}

// ByLastProcessedSeq orders the results by the last_processed_seq field.
func ByLastProcessedSeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastProcessedSeq, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
