// Code generated by ent, DO NOT EDIT.

package emohistory

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the emohistory type in the database.
	Label = "emo_history"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldChangeID holds the string denoting the change_id field in the database.
	FieldChangeID = "change_id"
	// FieldEmoID holds the string denoting the emo_id field in the database.
	FieldEmoID = "emo_id"
	// FieldEmoVersion holds the string denoting the emo_version field in the database.
	FieldEmoVersion = "emo_version"
	// FieldWorldID holds the string denoting the world_id field in the database.
	FieldWorldID = "world_id"
	// FieldBranch holds the string denoting the branch field in the database.
	FieldBranch = "branch"
	// FieldOperation holds the string denoting the operation field in the database.
	FieldOperation = "operation"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldIdempotencyKey holds the string denoting the idempotency_key field in the database.
	FieldIdempotencyKey = "idempotency_key"
	// FieldRecordedAt holds the string denoting the recorded_at field in the database.
	FieldRecordedAt = "recorded_at"
	// Table holds the table name of the emohistory in the database.
	Table = "emo_history"
)

// Columns holds all SQL columns for emohistory fields.
var Columns = []string{
	FieldID,
	FieldChangeID,
	FieldEmoID,
	FieldEmoVersion,
	FieldWorldID,
	FieldBranch,
	FieldOperation,
	FieldContentHash,
	FieldIdempotencyKey,
	FieldRecordedAt,
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

// Operation defines the type for the "operation" enum field.
type Operation string

// Operation values.
const (
	OperationCreated Operation = "created"
	OperationUpdated Operation = "updated"
	OperationLinked  Operation = "linked"
	OperationDeleted Operation = "deleted"
)

func (o Operation) String() string {
	return string(o)
}

// OperationValidator is a validator for the "operation" field enum values. It is called by the builders before save.
func OperationValidator(o Operation) error {
	switch o {
	case OperationCreated, OperationUpdated, OperationLinked, OperationDeleted:
		return nil
	default:
		return fmt.Errorf("emohistory: invalid enum value for operation field: %q", o)
	}
}

// OrderOption defines the ordering options for the EmoHistory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChangeID orders the results by the change_id field.
func ByChangeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChangeID, opts...).ToFunc()
}

// ByEmoID orders the results by the emo_id field.
func ByEmoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmoID, opts...).ToFunc()
}

// ByEmoVersion orders the results by the emo_version field.
func ByEmoVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmoVersion, opts...).ToFunc()
}

// ByWorldID orders the results by the world_id field.
func ByWorldID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorldID, opts...).ToFunc()
}

// ByBranch orders the results by the branch field.
func ByBranch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranch, opts...).ToFunc()
}

// ByOperation orders the results by the operation field.
func ByOperation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperation, opts...).ToFunc()
}

// ByContentHash orders the results by the content_hash field.
func ByContentHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentHash, opts...).ToFunc()
}

// ByIdempotencyKey orders the results by the idempotency_key field.
func ByIdempotencyKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdempotencyKey, opts...).ToFunc()
}

// ByRecordedAt orders the results by the recorded_at field.
func ByRecordedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordedAt, opts...).ToFunc()
}
