// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeproject/forge/ent/oauthaccount"
	"github.com/forgeproject/forge/ent/predicate"
)

// OAuthAccountUpdate is the builder for updating OAuthAccount entities.
type OAuthAccountUpdate struct {
	config
	hooks    []Hook
	mutation *OAuthAccountMutation
}

// Where appends a list predicates to the OAuthAccountUpdate builder.
func (_u *OAuthAccountUpdate) Where(ps ...predicate.OAuthAccount) *OAuthAccountUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *OAuthAccountUpdate) SetProvider(v string) *OAuthAccountUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *OAuthAccountUpdate) SetNillableProvider(v *string) *OAuthAccountUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *OAuthAccountUpdate) SetSubject(v string) *OAuthAccountUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *OAuthAccountUpdate) SetNillableSubject(v *string) *OAuthAccountUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetOwnerKeyHash sets the "owner_key_hash" field.
func (_u *OAuthAccountUpdate) SetOwnerKeyHash(v string) *OAuthAccountUpdate {
	_u.mutation.SetOwnerKeyHash(v)
	return _u
}

// SetNillableOwnerKeyHash sets the "owner_key_hash" field if the given value is not nil.
func (_u *OAuthAccountUpdate) SetNillableOwnerKeyHash(v *string) *OAuthAccountUpdate {
	if v != nil {
		_u.SetOwnerKeyHash(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *OAuthAccountUpdate) SetEmail(v string) *OAuthAccountUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *OAuthAccountUpdate) SetNillableEmail(v *string) *OAuthAccountUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *OAuthAccountUpdate) ClearEmail() *OAuthAccountUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OAuthAccountUpdate) SetCreatedAt(v time.Time) *OAuthAccountUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OAuthAccountUpdate) SetNillableCreatedAt(v *time.Time) *OAuthAccountUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the OAuthAccountMutation object of the builder.
func (_u *OAuthAccountUpdate) Mutation() *OAuthAccountMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OAuthAccountUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OAuthAccountUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OAuthAccountUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OAuthAccountUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *OAuthAccountUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(oauthaccount.Table, oauthaccount.Columns, sqlgraph.NewFieldSpec(oauthaccount.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(oauthaccount.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(oauthaccount.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerKeyHash(); ok {
		_spec.SetField(oauthaccount.FieldOwnerKeyHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(oauthaccount.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(oauthaccount.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(oauthaccount.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{oauthaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OAuthAccountUpdateOne is the builder for updating a single OAuthAccount entity.
type OAuthAccountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OAuthAccountMutation
}

// SetProvider sets the "provider" field.
func (_u *OAuthAccountUpdateOne) SetProvider(v string) *OAuthAccountUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *OAuthAccountUpdateOne) SetNillableProvider(v *string) *OAuthAccountUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *OAuthAccountUpdateOne) SetSubject(v string) *OAuthAccountUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *OAuthAccountUpdateOne) SetNillableSubject(v *string) *OAuthAccountUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetOwnerKeyHash sets the "owner_key_hash" field.
func (_u *OAuthAccountUpdateOne) SetOwnerKeyHash(v string) *OAuthAccountUpdateOne {
	_u.mutation.SetOwnerKeyHash(v)
	return _u
}

// SetNillableOwnerKeyHash sets the "owner_key_hash" field if the given value is not nil.
func (_u *OAuthAccountUpdateOne) SetNillableOwnerKeyHash(v *string) *OAuthAccountUpdateOne {
	if v != nil {
		_u.SetOwnerKeyHash(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *OAuthAccountUpdateOne) SetEmail(v string) *OAuthAccountUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *OAuthAccountUpdateOne) SetNillableEmail(v *string) *OAuthAccountUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *OAuthAccountUpdateOne) ClearEmail() *OAuthAccountUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OAuthAccountUpdateOne) SetCreatedAt(v time.Time) *OAuthAccountUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OAuthAccountUpdateOne) SetNillableCreatedAt(v *time.Time) *OAuthAccountUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the OAuthAccountMutation object of the builder.
func (_u *OAuthAccountUpdateOne) Mutation() *OAuthAccountMutation {
	return _u.mutation
}

// Where appends a list predicates to the OAuthAccountUpdate builder.
func (_u *OAuthAccountUpdateOne) Where(ps ...predicate.OAuthAccount) *OAuthAccountUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OAuthAccountUpdateOne) Select(field string, fields ...string) *OAuthAccountUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OAuthAccount entity.
func (_u *OAuthAccountUpdateOne) Save(ctx context.Context) (*OAuthAccount, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OAuthAccountUpdateOne) SaveX(ctx context.Context) *OAuthAccount {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OAuthAccountUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OAuthAccountUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *OAuthAccountUpdateOne) sqlSave(ctx context.Context) (_node *OAuthAccount, err error) {
	_spec := sqlgraph.NewUpdateSpec(oauthaccount.Table, oauthaccount.Columns, sqlgraph.NewFieldSpec(oauthaccount.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OAuthAccount.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, oauthaccount.FieldID)
		for _, f := range fields {
			if !oauthaccount.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != oauthaccount.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(oauthaccount.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(oauthaccount.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerKeyHash(); ok {
		_spec.SetField(oauthaccount.FieldOwnerKeyHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(oauthaccount.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(oauthaccount.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(oauthaccount.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &OAuthAccount{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{oauthaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
