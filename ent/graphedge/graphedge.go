// Code generated by ent, DO NOT EDIT.

package graphedge

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the graphedge type in the database.
	Label = "graph_edge"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSrcID holds the string denoting the src_id field in the database.
	FieldSrcID = "src_id"
	// FieldWorldID holds the string denoting the world_id field in the database.
	FieldWorldID = "world_id"
	// FieldBranch holds the string denoting the branch field in the database.
	FieldBranch = "branch"
	// FieldRel holds the string denoting the rel field in the database.
	FieldRel = "rel"
	// FieldDstID holds the string denoting the dst_id field in the database.
	FieldDstID = "dst_id"
	// FieldDstURI holds the string denoting the dst_uri field in the database.
	FieldDstURI = "dst_uri"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the graphedge in the database.
	Table = "graph_edges"
)

// Columns holds all SQL columns for graphedge fields.
var Columns = []string{
	FieldID,
	FieldSrcID,
	FieldWorldID,
	FieldBranch,
	FieldRel,
	FieldDstID,
	FieldDstURI,
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

// OrderOption defines the ordering options for the GraphEdge queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySrcID orders the results by the src_id field.
func BySrcID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSrcID, opts...).ToFunc()
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

// ByDstID orders the results by the dst_id field.
func ByDstID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDstID, opts...).ToFunc()
}

// ByDstURI orders the results by the dst_uri field.
func ByDstURI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDstURI, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
