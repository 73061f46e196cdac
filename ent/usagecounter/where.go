// Code generated by ent, DO NOT EDIT.

package usagecounter

import (
	"entgo.io/ent/dialect/sql"
	"github.com/forgeproject/forge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldLTE(FieldID, id))
}

// OwnerKeyHash applies equality check predicate on the "owner_key_hash" field. It's identical to OwnerKeyHashEQ.
func OwnerKeyHash(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEQ(FieldOwnerKeyHash, v))
}

// Day applies equality check predicate on the "day" field. It's identical to DayEQ.
func Day(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEQ(FieldDay, v))
}

// TokensIn applies equality check predicate on the "tokens_in" field. It's identical to TokensInEQ.
func TokensIn(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEQ(FieldTokensIn, v))
}

// TokensOut applies equality check predicate on the "tokens_out" field. It's identical to TokensOutEQ.
func TokensOut(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEQ(FieldTokensOut, v))
}

// CommandRuns applies equality check predicate on the "command_runs" field. It's identical to CommandRunsEQ.
func CommandRuns(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEQ(FieldCommandRuns, v))
}

// OwnerKeyHashEQ applies the EQ predicate on the "owner_key_hash" field.
func OwnerKeyHashEQ(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEQ(FieldOwnerKeyHash, v))
}

// OwnerKeyHashNEQ applies the NEQ predicate on the "owner_key_hash" field.
func OwnerKeyHashNEQ(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldNEQ(FieldOwnerKeyHash, v))
}

// OwnerKeyHashIn applies the In predicate on the "owner_key_hash" field.
func OwnerKeyHashIn(vs ...string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldIn(FieldOwnerKeyHash, vs...))
}

// OwnerKeyHashNotIn applies the NotIn predicate on the "owner_key_hash" field.
func OwnerKeyHashNotIn(vs ...string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldNotIn(FieldOwnerKeyHash, vs...))
}

// OwnerKeyHashGT applies the GT predicate on the "owner_key_hash" field.
func OwnerKeyHashGT(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldGT(FieldOwnerKeyHash, v))
}

// OwnerKeyHashGTE applies the GTE predicate on the "owner_key_hash" field.
func OwnerKeyHashGTE(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldGTE(FieldOwnerKeyHash, v))
}

// OwnerKeyHashLT applies the LT predicate on the "owner_key_hash" field.
func OwnerKeyHashLT(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldLT(FieldOwnerKeyHash, v))
}

// OwnerKeyHashLTE applies the LTE predicate on the "owner_key_hash" field.
func OwnerKeyHashLTE(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldLTE(FieldOwnerKeyHash, v))
}

// OwnerKeyHashContains applies the Contains predicate on the "owner_key_hash" field.
func OwnerKeyHashContains(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldContains(FieldOwnerKeyHash, v))
}

// OwnerKeyHashHasPrefix applies the HasPrefix predicate on the "owner_key_hash" field.
func OwnerKeyHashHasPrefix(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldHasPrefix(FieldOwnerKeyHash, v))
}

// OwnerKeyHashHasSuffix applies the HasSuffix predicate on the "owner_key_hash" field.
func OwnerKeyHashHasSuffix(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldHasSuffix(FieldOwnerKeyHash, v))
}

// OwnerKeyHashEqualFold applies the EqualFold predicate on the "owner_key_hash" field.
func OwnerKeyHashEqualFold(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEqualFold(FieldOwnerKeyHash, v))
}

// OwnerKeyHashContainsFold applies the ContainsFold predicate on the "owner_key_hash" field.
func OwnerKeyHashContainsFold(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldContainsFold(FieldOwnerKeyHash, v))
}

// DayEQ applies the EQ predicate on the "day" field.
func DayEQ(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEQ(FieldDay, v))
}

// DayNEQ applies the NEQ predicate on the "day" field.
func DayNEQ(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldNEQ(FieldDay, v))
}

// DayIn applies the In predicate on the "day" field.
func DayIn(vs ...string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldIn(FieldDay, vs...))
}

// DayNotIn applies the NotIn predicate on the "day" field.
func DayNotIn(vs ...string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldNotIn(FieldDay, vs...))
}

// DayGT applies the GT predicate on the "day" field.
func DayGT(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldGT(FieldDay, v))
}

// DayGTE applies the GTE predicate on the "day" field.
func DayGTE(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldGTE(FieldDay, v))
}

// DayLT applies the LT predicate on the "day" field.
func DayLT(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldLT(FieldDay, v))
}

// DayLTE applies the LTE predicate on the "day" field.
func DayLTE(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldLTE(FieldDay, v))
}

// DayContains applies the Contains predicate on the "day" field.
func DayContains(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldContains(FieldDay, v))
}

// DayHasPrefix applies the HasPrefix predicate on the "day" field.
func DayHasPrefix(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldHasPrefix(FieldDay, v))
}

// DayHasSuffix applies the HasSuffix predicate on the "day" field.
func DayHasSuffix(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldHasSuffix(FieldDay, v))
}

// DayEqualFold applies the EqualFold predicate on the "day" field.
func DayEqualFold(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEqualFold(FieldDay, v))
}

// DayContainsFold applies the ContainsFold predicate on the "day" field.
func DayContainsFold(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldContainsFold(FieldDay, v))
}

// TokensInEQ applies the EQ predicate on the "tokens_in" field.
func TokensInEQ(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEQ(FieldTokensIn, v))
}

// TokensInNEQ applies the NEQ predicate on the "tokens_in" field.
func TokensInNEQ(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldNEQ(FieldTokensIn, v))
}

// TokensInIn applies the In predicate on the "tokens_in" field.
func TokensInIn(vs ...int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldIn(FieldTokensIn, vs...))
}

// TokensInNotIn applies the NotIn predicate on the "tokens_in" field.
func TokensInNotIn(vs ...int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldNotIn(FieldTokensIn, vs...))
}

// TokensInGT applies the GT predicate on the "tokens_in" field.
func TokensInGT(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldGT(FieldTokensIn, v))
}

// TokensInGTE applies the GTE predicate on the "tokens_in" field.
func TokensInGTE(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldGTE(FieldTokensIn, v))
}

// TokensInLT applies the LT predicate on the "tokens_in" field.
func TokensInLT(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldLT(FieldTokensIn, v))
}

// TokensInLTE applies the LTE predicate on the "tokens_in" field.
func TokensInLTE(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldLTE(FieldTokensIn, v))
}

// TokensOutEQ applies the EQ predicate on the "tokens_out" field.
func TokensOutEQ(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEQ(FieldTokensOut, v))
}

// TokensOutNEQ applies the NEQ predicate on the "tokens_out" field.
func TokensOutNEQ(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldNEQ(FieldTokensOut, v))
}

// TokensOutIn applies the In predicate on the "tokens_out" field.
func TokensOutIn(vs ...int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldIn(FieldTokensOut, vs...))
}

// TokensOutNotIn applies the NotIn predicate on the "tokens_out" field.
func TokensOutNotIn(vs ...int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldNotIn(FieldTokensOut, vs...))
}

// TokensOutGT applies the GT predicate on the "tokens_out" field.
func TokensOutGT(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldGT(FieldTokensOut, v))
}

// TokensOutGTE applies the GTE predicate on the "tokens_out" field.
func TokensOutGTE(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldGTE(FieldTokensOut, v))
}

// TokensOutLT applies the LT predicate on the "tokens_out" field.
func TokensOutLT(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldLT(FieldTokensOut, v))
}

// TokensOutLTE applies the LTE predicate on the "tokens_out" field.
func TokensOutLTE(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldLTE(FieldTokensOut, v))
}

// CommandRunsEQ applies the EQ predicate on the "command_runs" field.
func CommandRunsEQ(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEQ(FieldCommandRuns, v))
}

// CommandRunsNEQ applies the NEQ predicate on the "command_runs" field.
func CommandRunsNEQ(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldNEQ(FieldCommandRuns, v))
}

// CommandRunsIn applies the In predicate on the "command_runs" field.
func CommandRunsIn(vs ...int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldIn(FieldCommandRuns, vs...))
}

// CommandRunsNotIn applies the NotIn predicate on the "command_runs" field.
func CommandRunsNotIn(vs ...int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldNotIn(FieldCommandRuns, vs...))
}

// CommandRunsGT applies the GT predicate on the "command_runs" field.
func CommandRunsGT(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldGT(FieldCommandRuns, v))
}

// CommandRunsGTE applies the GTE predicate on the "command_runs" field.
func CommandRunsGTE(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldGTE(FieldCommandRuns, v))
}

// CommandRunsLT applies the LT predicate on the "command_runs" field.
func CommandRunsLT(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldLT(FieldCommandRuns, v))
}

// CommandRunsLTE applies the LTE predicate on the "command_runs" field.
func CommandRunsLTE(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldLTE(FieldCommandRuns, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UsageCounter) predicate.UsageCounter {
	return predicate.UsageCounter(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UsageCounter) predicate.UsageCounter {
	return predicate.UsageCounter(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UsageCounter) predicate.UsageCounter {
	return predicate.UsageCounter(sql.NotPredicates(p))
}
