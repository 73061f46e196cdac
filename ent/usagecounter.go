// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeproject/forge/ent/usagecounter"
)

// UsageCounter is the model entity for the UsageCounter schema.
type UsageCounter struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// OwnerKeyHash holds the value of the "owner_key_hash" field.
	OwnerKeyHash string `json:"owner_key_hash,omitempty"`
	// UTC date, YYYY-MM-DD
	Day string `json:"day,omitempty"`
	// TokensIn holds the value of the "tokens_in" field.
	TokensIn int64 `json:"tokens_in,omitempty"`
	// TokensOut holds the value of the "tokens_out" field.
	TokensOut int64 `json:"tokens_out,omitempty"`
	// CommandRuns holds the value of the "command_runs" field.
	CommandRuns  int64 `json:"command_runs,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UsageCounter) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case usagecounter.FieldID, usagecounter.FieldTokensIn, usagecounter.FieldTokensOut, usagecounter.FieldCommandRuns:
			values[i] = new(sql.NullInt64)
		case usagecounter.FieldOwnerKeyHash, usagecounter.FieldDay:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UsageCounter fields.
func (_m *UsageCounter) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case usagecounter.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case usagecounter.FieldOwnerKeyHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_key_hash", values[i])
			} else if value.Valid {
				_m.OwnerKeyHash = value.String
			}
		case usagecounter.FieldDay:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field day", values[i])
			} else if value.Valid {
				_m.Day = value.String
			}
		case usagecounter.FieldTokensIn:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_in", values[i])
			} else if value.Valid {
				_m.TokensIn = value.Int64
			}
		case usagecounter.FieldTokensOut:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_out", values[i])
			} else if value.Valid {
				_m.TokensOut = value.Int64
			}
		case usagecounter.FieldCommandRuns:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field command_runs", values[i])
			} else if value.Valid {
				_m.CommandRuns = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UsageCounter.
// This includes values selected through modifiers, order, etc.
func (_m *UsageCounter) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UsageCounter.
// Note that you need to call UsageCounter.Unwrap() before calling this method if this UsageCounter
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UsageCounter) Update() *UsageCounterUpdateOne {
	return NewUsageCounterClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UsageCounter entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UsageCounter) Unwrap() *UsageCounter {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UsageCounter is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UsageCounter) String() string {
	var builder strings.Builder
	builder.WriteString("UsageCounter(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_key_hash=")
	builder.WriteString(_m.OwnerKeyHash)
	builder.WriteString(", ")
	builder.WriteString("day=")
	builder.WriteString(_m.Day)
	builder.WriteString(", ")
	builder.WriteString("tokens_in=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensIn))
	builder.WriteString(", ")
	builder.WriteString("tokens_out=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensOut))
	builder.WriteString(", ")
	builder.WriteString("command_runs=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommandRuns))
	builder.WriteByte(')')
	return builder.String()
}

// UsageCounters is a parsable slice of UsageCounter.
type UsageCounters []*UsageCounter
