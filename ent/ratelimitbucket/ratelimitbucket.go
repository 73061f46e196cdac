// Code generated by ent, DO NOT EDIT.

package ratelimitbucket

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the ratelimitbucket type in the database.
	Label = "rate_limit_bucket"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOwnerKeyHash holds the string denoting the owner_key_hash field in the database.
	FieldOwnerKeyHash = "owner_key_hash"
	// FieldScope holds the string denoting the scope field in the database.
	FieldScope = "scope"
	// FieldWindowStart holds the string denoting the window_start field in the database.
	FieldWindowStart = "window_start"
	// FieldCount holds the string denoting the count field in the database.
	FieldCount = "count"
	// Table holds the table name of the ratelimitbucket in the database.
	Table = "rate_limit_buckets"
)

// Columns holds all SQL columns for ratelimitbucket fields.
var Columns = []string{
	FieldID,
	FieldOwnerKeyHash,
	FieldScope,
	FieldWindowStart,
	FieldCount,
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
	// DefaultCount holds the default value on creation for the "count" field.
	DefaultCount int
)

// OrderOption defines the ordering options for the RateLimitBucket queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerKeyHash orders the results by the owner_key_hash field.
func ByOwnerKeyHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerKeyHash, opts...).ToFunc()
}

// ByScope orders the results by the scope field.
func ByScope(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScope, opts...).ToFunc()
}

// ByWindowStart orders the results by the window_start field.
func ByWindowStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowStart, opts...).ToFunc()
}

// ByCount orders the results by the count field.
func ByCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCount, opts...).ToFunc()
}
