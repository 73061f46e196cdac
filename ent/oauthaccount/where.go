// Code generated by ent, DO NOT EDIT.

package oauthaccount

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/forgeproject/forge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldContainsFold(FieldID, id))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldEQ(FieldProvider, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldEQ(FieldSubject, v))
}

// OwnerKeyHash applies equality check predicate on the "owner_key_hash" field. It's identical to OwnerKeyHashEQ.
func OwnerKeyHash(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldEQ(FieldOwnerKeyHash, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldEQ(FieldEmail, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldEQ(FieldCreatedAt, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldContainsFold(FieldProvider, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldContainsFold(FieldSubject, v))
}

// OwnerKeyHashEQ applies the EQ predicate on the "owner_key_hash" field.
func OwnerKeyHashEQ(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldEQ(FieldOwnerKeyHash, v))
}

// OwnerKeyHashNEQ applies the NEQ predicate on the "owner_key_hash" field.
func OwnerKeyHashNEQ(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldNEQ(FieldOwnerKeyHash, v))
}

// OwnerKeyHashIn applies the In predicate on the "owner_key_hash" field.
func OwnerKeyHashIn(vs ...string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldIn(FieldOwnerKeyHash, vs...))
}

// OwnerKeyHashNotIn applies the NotIn predicate on the "owner_key_hash" field.
func OwnerKeyHashNotIn(vs ...string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldNotIn(FieldOwnerKeyHash, vs...))
}

// OwnerKeyHashGT applies the GT predicate on the "owner_key_hash" field.
func OwnerKeyHashGT(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldGT(FieldOwnerKeyHash, v))
}

// OwnerKeyHashGTE applies the GTE predicate on the "owner_key_hash" field.
func OwnerKeyHashGTE(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldGTE(FieldOwnerKeyHash, v))
}

// OwnerKeyHashLT applies the LT predicate on the "owner_key_hash" field.
func OwnerKeyHashLT(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldLT(FieldOwnerKeyHash, v))
}

// OwnerKeyHashLTE applies the LTE predicate on the "owner_key_hash" field.
func OwnerKeyHashLTE(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldLTE(FieldOwnerKeyHash, v))
}

// OwnerKeyHashContains applies the Contains predicate on the "owner_key_hash" field.
func OwnerKeyHashContains(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldContains(FieldOwnerKeyHash, v))
}

// OwnerKeyHashHasPrefix applies the HasPrefix predicate on the "owner_key_hash" field.
func OwnerKeyHashHasPrefix(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldHasPrefix(FieldOwnerKeyHash, v))
}

// OwnerKeyHashHasSuffix applies the HasSuffix predicate on the "owner_key_hash" field.
func OwnerKeyHashHasSuffix(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldHasSuffix(FieldOwnerKeyHash, v))
}

// OwnerKeyHashEqualFold applies the EqualFold predicate on the "owner_key_hash" field.
func OwnerKeyHashEqualFold(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldEqualFold(FieldOwnerKeyHash, v))
}

// OwnerKeyHashContainsFold applies the ContainsFold predicate on the "owner_key_hash" field.
func OwnerKeyHashContainsFold(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldContainsFold(FieldOwnerKeyHash, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldContainsFold(FieldEmail, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OAuthAccount) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OAuthAccount) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OAuthAccount) predicate.OAuthAccount {
	return predicate.OAuthAccount(sql.NotPredicates(p))
}
