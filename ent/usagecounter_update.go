// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeproject/forge/ent/predicate"
	"github.com/forgeproject/forge/ent/usagecounter"
)

// UsageCounterUpdate is the builder for updating UsageCounter entities.
type UsageCounterUpdate struct {
	config
	hooks    []Hook
	mutation *UsageCounterMutation
}

// Where appends a list predicates to the UsageCounterUpdate builder.
func (_u *UsageCounterUpdate) Where(ps ...predicate.UsageCounter) *UsageCounterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerKeyHash sets the "owner_key_hash" field.
func (_u *UsageCounterUpdate) SetOwnerKeyHash(v string) *UsageCounterUpdate {
	_u.mutation.SetOwnerKeyHash(v)
	return _u
}

// SetNillableOwnerKeyHash sets the "owner_key_hash" field if the given value is not nil.
func (_u *UsageCounterUpdate) SetNillableOwnerKeyHash(v *string) *UsageCounterUpdate {
	if v != nil {
		_u.SetOwnerKeyHash(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *UsageCounterUpdate) SetDay(v string) *UsageCounterUpdate {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *UsageCounterUpdate) SetNillableDay(v *string) *UsageCounterUpdate {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetTokensIn sets the "tokens_in" field.
func (_u *UsageCounterUpdate) SetTokensIn(v int64) *UsageCounterUpdate {
	_u.mutation.ResetTokensIn()
	_u.mutation.SetTokensIn(v)
	return _u
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_u *UsageCounterUpdate) SetNillableTokensIn(v *int64) *UsageCounterUpdate {
	if v != nil {
		_u.SetTokensIn(*v)
	}
	return _u
}

// AddTokensIn adds value to the "tokens_in" field.
func (_u *UsageCounterUpdate) AddTokensIn(v int64) *UsageCounterUpdate {
	_u.mutation.AddTokensIn(v)
	return _u
}

// SetTokensOut sets the "tokens_out" field.
func (_u *UsageCounterUpdate) SetTokensOut(v int64) *UsageCounterUpdate {
	_u.mutation.ResetTokensOut()
	_u.mutation.SetTokensOut(v)
	return _u
}

// SetNillableTokensOut sets the "tokens_out" field if the given value is not nil.
func (_u *UsageCounterUpdate) SetNillableTokensOut(v *int64) *UsageCounterUpdate {
	if v != nil {
		_u.SetTokensOut(*v)
	}
	return _u
}

// AddTokensOut adds value to the "tokens_out" field.
func (_u *UsageCounterUpdate) AddTokensOut(v int64) *UsageCounterUpdate {
	_u.mutation.AddTokensOut(v)
	return _u
}

// SetCommandRuns sets the "command_runs" field.
func (_u *UsageCounterUpdate) SetCommandRuns(v int64) *UsageCounterUpdate {
	_u.mutation.ResetCommandRuns()
	_u.mutation.SetCommandRuns(v)
	return _u
}

// SetNillableCommandRuns sets the "command_runs" field if the given value is not nil.
func (_u *UsageCounterUpdate) SetNillableCommandRuns(v *int64) *UsageCounterUpdate {
	if v != nil {
		_u.SetCommandRuns(*v)
	}
	return _u
}

// AddCommandRuns adds value to the "command_runs" field.
func (_u *UsageCounterUpdate) AddCommandRuns(v int64) *UsageCounterUpdate {
	_u.mutation.AddCommandRuns(v)
	return _u
}

// Mutation returns the UsageCounterMutation object of the builder.
func (_u *UsageCounterUpdate) Mutation() *UsageCounterMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UsageCounterUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageCounterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UsageCounterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageCounterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UsageCounterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(usagecounter.Table, usagecounter.Columns, sqlgraph.NewFieldSpec(usagecounter.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerKeyHash(); ok {
		_spec.SetField(usagecounter.FieldOwnerKeyHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(usagecounter.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.TokensIn(); ok {
		_spec.SetField(usagecounter.FieldTokensIn, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensIn(); ok {
		_spec.AddField(usagecounter.FieldTokensIn, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TokensOut(); ok {
		_spec.SetField(usagecounter.FieldTokensOut, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensOut(); ok {
		_spec.AddField(usagecounter.FieldTokensOut, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CommandRuns(); ok {
		_spec.SetField(usagecounter.FieldCommandRuns, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCommandRuns(); ok {
		_spec.AddField(usagecounter.FieldCommandRuns, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usagecounter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UsageCounterUpdateOne is the builder for updating a single UsageCounter entity.
type UsageCounterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UsageCounterMutation
}

// SetOwnerKeyHash sets the "owner_key_hash" field.
func (_u *UsageCounterUpdateOne) SetOwnerKeyHash(v string) *UsageCounterUpdateOne {
	_u.mutation.SetOwnerKeyHash(v)
	return _u
}

// SetNillableOwnerKeyHash sets the "owner_key_hash" field if the given value is not nil.
func (_u *UsageCounterUpdateOne) SetNillableOwnerKeyHash(v *string) *UsageCounterUpdateOne {
	if v != nil {
		_u.SetOwnerKeyHash(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *UsageCounterUpdateOne) SetDay(v string) *UsageCounterUpdateOne {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *UsageCounterUpdateOne) SetNillableDay(v *string) *UsageCounterUpdateOne {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetTokensIn sets the "tokens_in" field.
func (_u *UsageCounterUpdateOne) SetTokensIn(v int64) *UsageCounterUpdateOne {
	_u.mutation.ResetTokensIn()
	_u.mutation.SetTokensIn(v)
	return _u
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_u *UsageCounterUpdateOne) SetNillableTokensIn(v *int64) *UsageCounterUpdateOne {
	if v != nil {
		_u.SetTokensIn(*v)
	}
	return _u
}

// AddTokensIn adds value to the "tokens_in" field.
func (_u *UsageCounterUpdateOne) AddTokensIn(v int64) *UsageCounterUpdateOne {
	_u.mutation.AddTokensIn(v)
	return _u
}

// SetTokensOut sets the "tokens_out" field.
func (_u *UsageCounterUpdateOne) SetTokensOut(v int64) *UsageCounterUpdateOne {
	_u.mutation.ResetTokensOut()
	_u.mutation.SetTokensOut(v)
	return _u
}

// SetNillableTokensOut sets the "tokens_out" field if the given value is not nil.
func (_u *UsageCounterUpdateOne) SetNillableTokensOut(v *int64) *UsageCounterUpdateOne {
	if v != nil {
		_u.SetTokensOut(*v)
	}
	return _u
}

// AddTokensOut adds value to the "tokens_out" field.
func (_u *UsageCounterUpdateOne) AddTokensOut(v int64) *UsageCounterUpdateOne {
	_u.mutation.AddTokensOut(v)
	return _u
}

// SetCommandRuns sets the "command_runs" field.
func (_u *UsageCounterUpdateOne) SetCommandRuns(v int64) *UsageCounterUpdateOne {
	_u.mutation.ResetCommandRuns()
	_u.mutation.SetCommandRuns(v)
	return _u
}

// SetNillableCommandRuns sets the "command_runs" field if the given value is not nil.
func (_u *UsageCounterUpdateOne) SetNillableCommandRuns(v *int64) *UsageCounterUpdateOne {
	if v != nil {
		_u.SetCommandRuns(*v)
	}
	return _u
}

// AddCommandRuns adds value to the "command_runs" field.
func (_u *UsageCounterUpdateOne) AddCommandRuns(v int64) *UsageCounterUpdateOne {
	_u.mutation.AddCommandRuns(v)
	return _u
}

// Mutation returns the UsageCounterMutation object of the builder.
func (_u *UsageCounterUpdateOne) Mutation() *UsageCounterMutation {
	return _u.mutation
}

// Where appends a list predicates to the UsageCounterUpdate builder.
func (_u *UsageCounterUpdateOne) Where(ps ...predicate.UsageCounter) *UsageCounterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UsageCounterUpdateOne) Select(field string, fields ...string) *UsageCounterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UsageCounter entity.
func (_u *UsageCounterUpdateOne) Save(ctx context.Context) (*UsageCounter, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageCounterUpdateOne) SaveX(ctx context.Context) *UsageCounter {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UsageCounterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageCounterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UsageCounterUpdateOne) sqlSave(ctx context.Context) (_node *UsageCounter, err error) {
	_spec := sqlgraph.NewUpdateSpec(usagecounter.Table, usagecounter.Columns, sqlgraph.NewFieldSpec(usagecounter.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UsageCounter.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usagecounter.FieldID)
		for _, f := range fields {
			if !usagecounter.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usagecounter.FieldID {
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
	if value, ok := _u.mutation.OwnerKeyHash(); ok {
		_spec.SetField(usagecounter.FieldOwnerKeyHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(usagecounter.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.TokensIn(); ok {
		_spec.SetField(usagecounter.FieldTokensIn, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensIn(); ok {
		_spec.AddField(usagecounter.FieldTokensIn, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TokensOut(); ok {
		_spec.SetField(usagecounter.FieldTokensOut, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensOut(); ok {
		_spec.AddField(usagecounter.FieldTokensOut, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CommandRuns(); ok {
		_spec.SetField(usagecounter.FieldCommandRuns, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCommandRuns(); ok {
		_spec.AddField(usagecounter.FieldCommandRuns, field.TypeInt64, value)
	}
	_node = &UsageCounter{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usagecounter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
