// Code generated by ent, DO NOT EDIT.

package usagecounter

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the usagecounter type in the database.
	Label = "usage_counter"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOwnerKeyHash holds the string denoting the owner_key_hash field in the database.
	FieldOwnerKeyHash = "owner_key_hash"
	// FieldDay holds the string denoting the day field in the database.
	FieldDay = "day"
	// FieldTokensIn holds the string denoting the tokens_in field in the database.
	FieldTokensIn = "tokens_in"
	// FieldTokensOut holds the string denoting the tokens_out field in the database.
	FieldTokensOut = "tokens_out"
	// FieldCommandRuns holds the string denoting the command_runs field in the database.
	FieldCommandRuns = "command_runs"
	// Table holds the table name of the usagecounter in the database.
	Table = "usage_counters"
)

// Columns holds all SQL columns for usagecounter fields.
var Columns = []string{
	FieldID,
	FieldOwnerKeyHash,
	FieldDay,
	FieldTokensIn,
	FieldTokensOut,
	FieldCommandRuns,
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
	// DefaultTokensIn holds the default value on creation for the "tokens_in" field.
	DefaultTokensIn int64
	// DefaultTokensOut holds the default value on creation for the "tokens_out" field.
	DefaultTokensOut int64
	// DefaultCommandRuns holds the default value on creation for the "command_runs" field.
	DefaultCommandRuns int64
)

// OrderOption defines the ordering options for the UsageCounter queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerKeyHash orders the results by the owner_key_hash field.
func ByOwnerKeyHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerKeyHash, opts...).ToFunc()
}

// ByDay orders the results by the day field.
func ByDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDay, opts...).ToFunc()
}

// ByTokensIn orders the results by the tokens_in field.
func ByTokensIn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensIn, opts...).ToFunc()
}

// ByTokensOut orders the results by the tokens_out field.
func ByTokensOut(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensOut, opts...).ToFunc()
}

// ByCommandRuns orders the results by the command_runs field.
func ByCommandRuns(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommandRuns, opts...).ToFunc()
}
