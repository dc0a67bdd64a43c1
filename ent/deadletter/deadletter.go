// Code generated by ent, DO NOT EDIT.

package deadletter

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the deadletter type in the database.
	Label = "dead_letter"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "global_seq"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldWorldID holds the string denoting the world_id field in the database.
	FieldWorldID = "world_id"
	// FieldBranch holds the string denoting the branch field in the database.
	FieldBranch = "branch"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldEnvelope holds the string denoting the envelope field in the database.
	FieldEnvelope = "envelope"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// FieldPublisherID holds the string denoting the publisher_id field in the database.
	FieldPublisherID = "publisher_id"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldMovedAt holds the string denoting the moved_at field in the database.
	FieldMovedAt = "moved_at"
	// Table holds the table name of the deadletter in the database.
	Table = "dead_letters"
)

// Columns holds all SQL columns for deadletter fields.
var Columns = []string{
	FieldID,
	FieldEventID,
	FieldWorldID,
	FieldBranch,
	FieldKind,
	FieldEnvelope,
	FieldError,
	FieldPublisherID,
	FieldAttempts,
	FieldMovedAt,
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
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// DefaultMovedAt holds the default value on creation for the "moved_at" field.
	DefaultMovedAt func() time.Time
)

// OrderOption defines the ordering options for the DeadLetter queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByWorldID orders the results by the world_id field.
func ByWorldID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorldID, opts...).ToFunc()
}

// ByBranch orders the results by the branch field.
func ByBranch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranch, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}

// ByPublisherID orders the results by the publisher_id field.
func ByPublisherID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublisherID, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByMovedAt orders the results by the moved_at field.
func ByMovedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMovedAt, opts...).ToFunc()
}
