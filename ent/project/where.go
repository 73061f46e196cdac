// Code generated by ent, DO NOT EDIT.

package project

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/forgeproject/forge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldID, id))
}

// OwnerKeyHash applies equality check predicate on the "owner_key_hash" field. It's identical to OwnerKeyHashEQ.
func OwnerKeyHash(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldOwnerKeyHash, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldName, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// OwnerKeyHashEQ applies the EQ predicate on the "owner_key_hash" field.
func OwnerKeyHashEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldOwnerKeyHash, v))
}

// OwnerKeyHashNEQ applies the NEQ predicate on the "owner_key_hash" field.
func OwnerKeyHashNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldOwnerKeyHash, v))
}

// OwnerKeyHashIn applies the In predicate on the "owner_key_hash" field.
func OwnerKeyHashIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldOwnerKeyHash, vs...))
}

// OwnerKeyHashNotIn applies the NotIn predicate on the "owner_key_hash" field.
func OwnerKeyHashNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldOwnerKeyHash, vs...))
}

// OwnerKeyHashGT applies the GT predicate on the "owner_key_hash" field.
func OwnerKeyHashGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldOwnerKeyHash, v))
}

// OwnerKeyHashGTE applies the GTE predicate on the "owner_key_hash" field.
func OwnerKeyHashGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldOwnerKeyHash, v))
}

// OwnerKeyHashLT applies the LT predicate on the "owner_key_hash" field.
func OwnerKeyHashLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldOwnerKeyHash, v))
}

// OwnerKeyHashLTE applies the LTE predicate on the "owner_key_hash" field.
func OwnerKeyHashLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldOwnerKeyHash, v))
}

// OwnerKeyHashContains applies the Contains predicate on the "owner_key_hash" field.
func OwnerKeyHashContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldOwnerKeyHash, v))
}

// OwnerKeyHashHasPrefix applies the HasPrefix predicate on the "owner_key_hash" field.
func OwnerKeyHashHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldOwnerKeyHash, v))
}

// OwnerKeyHashHasSuffix applies the HasSuffix predicate on the "owner_key_hash" field.
func OwnerKeyHashHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldOwnerKeyHash, v))
}

// OwnerKeyHashEqualFold applies the EqualFold predicate on the "owner_key_hash" field.
func OwnerKeyHashEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldOwnerKeyHash, v))
}

// OwnerKeyHashContainsFold applies the ContainsFold predicate on the "owner_key_hash" field.
func OwnerKeyHashContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldOwnerKeyHash, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldName, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Project) predicate.Project {
	return predicate.Project(sql.NotPredicates(p))
}
