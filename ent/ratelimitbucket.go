// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeproject/forge/ent/ratelimitbucket"
)

// RateLimitBucket is the model entity for the RateLimitBucket schema.
type RateLimitBucket struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// OwnerKeyHash holds the value of the "owner_key_hash" field.
	OwnerKeyHash string `json:"owner_key_hash,omitempty"`
	// create_task, rerun_review, or download
	Scope string `json:"scope,omitempty"`
	// WindowStart holds the value of the "window_start" field.
	WindowStart time.Time `json:"window_start,omitempty"`
	// Count holds the value of the "count" field.
	Count        int `json:"count,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RateLimitBucket) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ratelimitbucket.FieldID, ratelimitbucket.FieldCount:
			values[i] = new(sql.NullInt64)
		case ratelimitbucket.FieldOwnerKeyHash, ratelimitbucket.FieldScope:
			values[i] = new(sql.NullString)
		case ratelimitbucket.FieldWindowStart:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RateLimitBucket fields.
func (_m *RateLimitBucket) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ratelimitbucket.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case ratelimitbucket.FieldOwnerKeyHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_key_hash", values[i])
			} else if value.Valid {
				_m.OwnerKeyHash = value.String
			}
		case ratelimitbucket.FieldScope:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope", values[i])
			} else if value.Valid {
				_m.Scope = value.String
			}
		case ratelimitbucket.FieldWindowStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field window_start", values[i])
			} else if value.Valid {
				_m.WindowStart = value.Time
			}
		case ratelimitbucket.FieldCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field count", values[i])
			} else if value.Valid {
				_m.Count = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RateLimitBucket.
// This includes values selected through modifiers, order, etc.
func (_m *RateLimitBucket) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RateLimitBucket.
// Note that you need to call RateLimitBucket.Unwrap() before calling this method if this RateLimitBucket
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RateLimitBucket) Update() *RateLimitBucketUpdateOne {
	return NewRateLimitBucketClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RateLimitBucket entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RateLimitBucket) Unwrap() *RateLimitBucket {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RateLimitBucket is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RateLimitBucket) String() string {
	var builder strings.Builder
	builder.WriteString("RateLimitBucket(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_key_hash=")
	builder.WriteString(_m.OwnerKeyHash)
	builder.WriteString(", ")
	builder.WriteString("scope=")
	builder.WriteString(_m.Scope)
	builder.WriteString(", ")
	builder.WriteString("window_start=")
	builder.WriteString(_m.WindowStart.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("count=")
	builder.WriteString(fmt.Sprintf("%v", _m.Count))
	builder.WriteByte(')')
	return builder.String()
}

// RateLimitBuckets is a parsable slice of RateLimitBucket.
type RateLimitBuckets []*RateLimitBucket
