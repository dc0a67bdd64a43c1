// Code generated by ent, DO NOT EDIT.

package graphnode

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the graphnode type in the database.
	Label = "graph_node"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldNodeID holds the string denoting the node_id field in the database.
	FieldNodeID = "node_id"
	// FieldWorldID holds the string denoting the world_id field in the database.
	FieldWorldID = "world_id"
	// FieldBranch holds the string denoting the branch field in the database.
	FieldBranch = "branch"
	// FieldEmoType holds the string denoting the emo_type field in the database.
	FieldEmoType = "emo_type"
	// FieldEmoVersion holds the string denoting the emo_version field in the database.
	FieldEmoVersion = "emo_version"
	// FieldDeleted holds the string denoting the deleted field in the database.
	FieldDeleted = "deleted"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the graphnode in the database.
	Table = "graph_nodes"
)

// Columns holds all SQL columns for graphnode fields.
var Columns = []string{
	FieldID,
	FieldNodeID,
	FieldWorldID,
	FieldBranch,
	FieldEmoType,
	FieldEmoVersion,
	FieldDeleted,
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
	// DefaultDeleted holds the default value on creation for the "deleted" field.
	DefaultDeleted bool
)

// OrderOption defines the ordering options for the GraphNode queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByNodeID orders the results by the node_id field.
func ByNodeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNodeID, opts...).ToFunc()
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

// ByDeleted orders the results by the deleted field.
func ByDeleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeleted, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
