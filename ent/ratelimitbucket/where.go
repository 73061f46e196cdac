// Code generated by ent, DO NOT EDIT.

package ratelimitbucket

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/forgeproject/forge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldLTE(FieldID, id))
}

// OwnerKeyHash applies equality check predicate on the "owner_key_hash" field. It's identical to OwnerKeyHashEQ.
func OwnerKeyHash(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEQ(FieldOwnerKeyHash, v))
}

// Scope applies equality check predicate on the "scope" field. It's identical to ScopeEQ.
func Scope(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEQ(FieldScope, v))
}

// WindowStart applies equality check predicate on the "window_start" field. It's identical to WindowStartEQ.
func WindowStart(v time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEQ(FieldWindowStart, v))
}

// Count applies equality check predicate on the "count" field. It's identical to CountEQ.
func Count(v int) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEQ(FieldCount, v))
}

// OwnerKeyHashEQ applies the EQ predicate on the "owner_key_hash" field.
func OwnerKeyHashEQ(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEQ(FieldOwnerKeyHash, v))
}

// OwnerKeyHashNEQ applies the NEQ predicate on the "owner_key_hash" field.
func OwnerKeyHashNEQ(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNEQ(FieldOwnerKeyHash, v))
}

// OwnerKeyHashIn applies the In predicate on the "owner_key_hash" field.
func OwnerKeyHashIn(vs ...string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldIn(FieldOwnerKeyHash, vs...))
}

// OwnerKeyHashNotIn applies the NotIn predicate on the "owner_key_hash" field.
func OwnerKeyHashNotIn(vs ...string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNotIn(FieldOwnerKeyHash, vs...))
}

// OwnerKeyHashGT applies the GT predicate on the "owner_key_hash" field.
func OwnerKeyHashGT(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldGT(FieldOwnerKeyHash, v))
}

// OwnerKeyHashGTE applies the GTE predicate on the "owner_key_hash" field.
func OwnerKeyHashGTE(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldGTE(FieldOwnerKeyHash, v))
}

// OwnerKeyHashLT applies the LT predicate on the "owner_key_hash" field.
func OwnerKeyHashLT(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldLT(FieldOwnerKeyHash, v))
}

// OwnerKeyHashLTE applies the LTE predicate on the "owner_key_hash" field.
func OwnerKeyHashLTE(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldLTE(FieldOwnerKeyHash, v))
}

// OwnerKeyHashContains applies the Contains predicate on the "owner_key_hash" field.
func OwnerKeyHashContains(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldContains(FieldOwnerKeyHash, v))
}

// OwnerKeyHashHasPrefix applies the HasPrefix predicate on the "owner_key_hash" field.
func OwnerKeyHashHasPrefix(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldHasPrefix(FieldOwnerKeyHash, v))
}

// OwnerKeyHashHasSuffix applies the HasSuffix predicate on the "owner_key_hash" field.
func OwnerKeyHashHasSuffix(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldHasSuffix(FieldOwnerKeyHash, v))
}

// OwnerKeyHashEqualFold applies the EqualFold predicate on the "owner_key_hash" field.
func OwnerKeyHashEqualFold(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEqualFold(FieldOwnerKeyHash, v))
}

// OwnerKeyHashContainsFold applies the ContainsFold predicate on the "owner_key_hash" field.
func OwnerKeyHashContainsFold(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldContainsFold(FieldOwnerKeyHash, v))
}

// ScopeEQ applies the EQ predicate on the "scope" field.
func ScopeEQ(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEQ(FieldScope, v))
}

// ScopeNEQ applies the NEQ predicate on the "scope" field.
func ScopeNEQ(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNEQ(FieldScope, v))
}

// ScopeIn applies the In predicate on the "scope" field.
func ScopeIn(vs ...string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldIn(FieldScope, vs...))
}

// ScopeNotIn applies the NotIn predicate on the "scope" field.
func ScopeNotIn(vs ...string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNotIn(FieldScope, vs...))
}

// ScopeGT applies the GT predicate on the "scope" field.
func ScopeGT(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldGT(FieldScope, v))
}

// ScopeGTE applies the GTE predicate on the "scope" field.
func ScopeGTE(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldGTE(FieldScope, v))
}

// ScopeLT applies the LT predicate on the "scope" field.
func ScopeLT(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldLT(FieldScope, v))
}

// ScopeLTE applies the LTE predicate on the "scope" field.
func ScopeLTE(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldLTE(FieldScope, v))
}

// ScopeContains applies the Contains predicate on the "scope" field.
func ScopeContains(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldContains(FieldScope, v))
}

// ScopeHasPrefix applies the HasPrefix predicate on the "scope" field.
func ScopeHasPrefix(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldHasPrefix(FieldScope, v))
}

// ScopeHasSuffix applies the HasSuffix predicate on the "scope" field.
func ScopeHasSuffix(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldHasSuffix(FieldScope, v))
}

// ScopeEqualFold applies the EqualFold predicate on the "scope" field.
func ScopeEqualFold(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEqualFold(FieldScope, v))
}

// ScopeContainsFold applies the ContainsFold predicate on the "scope" field.
func ScopeContainsFold(v string) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldContainsFold(FieldScope, v))
}

// WindowStartEQ applies the EQ predicate on the "window_start" field.
func WindowStartEQ(v time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEQ(FieldWindowStart, v))
}

// WindowStartNEQ applies the NEQ predicate on the "window_start" field.
func WindowStartNEQ(v time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNEQ(FieldWindowStart, v))
}

// WindowStartIn applies the In predicate on the "window_start" field.
func WindowStartIn(vs ...time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldIn(FieldWindowStart, vs...))
}

// WindowStartNotIn applies the NotIn predicate on the "window_start" field.
func WindowStartNotIn(vs ...time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNotIn(FieldWindowStart, vs...))
}

// WindowStartGT applies the GT predicate on the "window_start" field.
func WindowStartGT(v time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldGT(FieldWindowStart, v))
}

// WindowStartGTE applies the GTE predicate on the "window_start" field.
func WindowStartGTE(v time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldGTE(FieldWindowStart, v))
}

// WindowStartLT applies the LT predicate on the "window_start" field.
func WindowStartLT(v time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldLT(FieldWindowStart, v))
}

// WindowStartLTE applies the LTE predicate on the "window_start" field.
func WindowStartLTE(v time.Time) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldLTE(FieldWindowStart, v))
}

// CountEQ applies the EQ predicate on the "count" field.
func CountEQ(v int) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldEQ(FieldCount, v))
}

// CountNEQ applies the NEQ predicate on the "count" field.
func CountNEQ(v int) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNEQ(FieldCount, v))
}

// CountIn applies the In predicate on the "count" field.
func CountIn(vs ...int) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldIn(FieldCount, vs...))
}

// CountNotIn applies the NotIn predicate on the "count" field.
func CountNotIn(vs ...int) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldNotIn(FieldCount, vs...))
}

// CountGT applies the GT predicate on the "count" field.
func CountGT(v int) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldGT(FieldCount, v))
}

// CountGTE applies the GTE predicate on the "count" field.
func CountGTE(v int) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldGTE(FieldCount, v))
}

// CountLT applies the LT predicate on the "count" field.
func CountLT(v int) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldLT(FieldCount, v))
}

// CountLTE applies the LTE predicate on the "count" field.
func CountLTE(v int) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.FieldLTE(FieldCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RateLimitBucket) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RateLimitBucket) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RateLimitBucket) predicate.RateLimitBucket {
	return predicate.RateLimitBucket(sql.NotPredicates(p))
}
