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
	"github.com/forgeproject/forge/ent/predicate"
	"github.com/forgeproject/forge/ent/ratelimitbucket"
)

// RateLimitBucketUpdate is the builder for updating RateLimitBucket entities.
type RateLimitBucketUpdate struct {
	config
	hooks    []Hook
	mutation *RateLimitBucketMutation
}

// Where appends a list predicates to the RateLimitBucketUpdate builder.
func (_u *RateLimitBucketUpdate) Where(ps ...predicate.RateLimitBucket) *RateLimitBucketUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerKeyHash sets the "owner_key_hash" field.
func (_u *RateLimitBucketUpdate) SetOwnerKeyHash(v string) *RateLimitBucketUpdate {
	_u.mutation.SetOwnerKeyHash(v)
	return _u
}

// SetNillableOwnerKeyHash sets the "owner_key_hash" field if the given value is not nil.
func (_u *RateLimitBucketUpdate) SetNillableOwnerKeyHash(v *string) *RateLimitBucketUpdate {
	if v != nil {
		_u.SetOwnerKeyHash(*v)
	}
	return _u
}

// SetScope sets the "scope" field.
func (_u *RateLimitBucketUpdate) SetScope(v string) *RateLimitBucketUpdate {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *RateLimitBucketUpdate) SetNillableScope(v *string) *RateLimitBucketUpdate {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetWindowStart sets the "window_start" field.
func (_u *RateLimitBucketUpdate) SetWindowStart(v time.Time) *RateLimitBucketUpdate {
	_u.mutation.SetWindowStart(v)
	return _u
}

// SetNillableWindowStart sets the "window_start" field if the given value is not nil.
func (_u *RateLimitBucketUpdate) SetNillableWindowStart(v *time.Time) *RateLimitBucketUpdate {
	if v != nil {
		_u.SetWindowStart(*v)
	}
	return _u
}

// SetCount sets the "count" field.
func (_u *RateLimitBucketUpdate) SetCount(v int) *RateLimitBucketUpdate {
	_u.mutation.ResetCount()
	_u.mutation.SetCount(v)
	return _u
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_u *RateLimitBucketUpdate) SetNillableCount(v *int) *RateLimitBucketUpdate {
	if v != nil {
		_u.SetCount(*v)
	}
	return _u
}

// AddCount adds value to the "count" field.
func (_u *RateLimitBucketUpdate) AddCount(v int) *RateLimitBucketUpdate {
	_u.mutation.AddCount(v)
	return _u
}

// Mutation returns the RateLimitBucketMutation object of the builder.
func (_u *RateLimitBucketUpdate) Mutation() *RateLimitBucketMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RateLimitBucketUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RateLimitBucketUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RateLimitBucketUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RateLimitBucketUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RateLimitBucketUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(ratelimitbucket.Table, ratelimitbucket.Columns, sqlgraph.NewFieldSpec(ratelimitbucket.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerKeyHash(); ok {
		_spec.SetField(ratelimitbucket.FieldOwnerKeyHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(ratelimitbucket.FieldScope, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowStart(); ok {
		_spec.SetField(ratelimitbucket.FieldWindowStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Count(); ok {
		_spec.SetField(ratelimitbucket.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCount(); ok {
		_spec.AddField(ratelimitbucket.FieldCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ratelimitbucket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RateLimitBucketUpdateOne is the builder for updating a single RateLimitBucket entity.
type RateLimitBucketUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RateLimitBucketMutation
}

// SetOwnerKeyHash sets the "owner_key_hash" field.
func (_u *RateLimitBucketUpdateOne) SetOwnerKeyHash(v string) *RateLimitBucketUpdateOne {
	_u.mutation.SetOwnerKeyHash(v)
	return _u
}

// SetNillableOwnerKeyHash sets the "owner_key_hash" field if the given value is not nil.
func (_u *RateLimitBucketUpdateOne) SetNillableOwnerKeyHash(v *string) *RateLimitBucketUpdateOne {
	if v != nil {
		_u.SetOwnerKeyHash(*v)
	}
	return _u
}

// SetScope sets the "scope" field.
func (_u *RateLimitBucketUpdateOne) SetScope(v string) *RateLimitBucketUpdateOne {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *RateLimitBucketUpdateOne) SetNillableScope(v *string) *RateLimitBucketUpdateOne {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetWindowStart sets the "window_start" field.
func (_u *RateLimitBucketUpdateOne) SetWindowStart(v time.Time) *RateLimitBucketUpdateOne {
	_u.mutation.SetWindowStart(v)
	return _u
}

// SetNillableWindowStart sets the "window_start" field if the given value is not nil.
func (_u *RateLimitBucketUpdateOne) SetNillableWindowStart(v *time.Time) *RateLimitBucketUpdateOne {
	if v != nil {
		_u.SetWindowStart(*v)
	}
	return _u
}

// SetCount sets the "count" field.
func (_u *RateLimitBucketUpdateOne) SetCount(v int) *RateLimitBucketUpdateOne {
	_u.mutation.ResetCount()
	_u.mutation.SetCount(v)
	return _u
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_u *RateLimitBucketUpdateOne) SetNillableCount(v *int) *RateLimitBucketUpdateOne {
	if v != nil {
		_u.SetCount(*v)
	}
	return _u
}

// AddCount adds value to the "count" field.
func (_u *RateLimitBucketUpdateOne) AddCount(v int) *RateLimitBucketUpdateOne {
	_u.mutation.AddCount(v)
	return _u
}

// Mutation returns the RateLimitBucketMutation object of the builder.
func (_u *RateLimitBucketUpdateOne) Mutation() *RateLimitBucketMutation {
	return _u.mutation
}

// Where appends a list predicates to the RateLimitBucketUpdate builder.
func (_u *RateLimitBucketUpdateOne) Where(ps ...predicate.RateLimitBucket) *RateLimitBucketUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RateLimitBucketUpdateOne) Select(field string, fields ...string) *RateLimitBucketUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RateLimitBucket entity.
func (_u *RateLimitBucketUpdateOne) Save(ctx context.Context) (*RateLimitBucket, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RateLimitBucketUpdateOne) SaveX(ctx context.Context) *RateLimitBucket {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RateLimitBucketUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RateLimitBucketUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RateLimitBucketUpdateOne) sqlSave(ctx context.Context) (_node *RateLimitBucket, err error) {
	_spec := sqlgraph.NewUpdateSpec(ratelimitbucket.Table, ratelimitbucket.Columns, sqlgraph.NewFieldSpec(ratelimitbucket.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RateLimitBucket.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ratelimitbucket.FieldID)
		for _, f := range fields {
			if !ratelimitbucket.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ratelimitbucket.FieldID {
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
		_spec.SetField(ratelimitbucket.FieldOwnerKeyHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(ratelimitbucket.FieldScope, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowStart(); ok {
		_spec.SetField(ratelimitbucket.FieldWindowStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Count(); ok {
		_spec.SetField(ratelimitbucket.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCount(); ok {
		_spec.AddField(ratelimitbucket.FieldCount, field.TypeInt, value)
	}
	_node = &RateLimitBucket{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ratelimitbucket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
