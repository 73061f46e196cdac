// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/forgeproject/forge/ent/containersnapshot"
	"github.com/forgeproject/forge/ent/predicate"
)

// ContainerSnapshotUpdate is the builder for updating ContainerSnapshot entities.
type ContainerSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *ContainerSnapshotMutation
}

// Where appends a list predicates to the ContainerSnapshotUpdate builder.
func (_u *ContainerSnapshotUpdate) Where(ps ...predicate.ContainerSnapshot) *ContainerSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *ContainerSnapshotUpdate) SetTaskID(v string) *ContainerSnapshotUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *ContainerSnapshotUpdate) SetNillableTaskID(v *string) *ContainerSnapshotUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetSnapshot sets the "snapshot" field.
func (_u *ContainerSnapshotUpdate) SetSnapshot(v json.RawMessage) *ContainerSnapshotUpdate {
	_u.mutation.SetSnapshot(v)
	return _u
}

// AppendSnapshot appends value to the "snapshot" field.
func (_u *ContainerSnapshotUpdate) AppendSnapshot(v json.RawMessage) *ContainerSnapshotUpdate {
	_u.mutation.AppendSnapshot(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContainerSnapshotUpdate) SetUpdatedAt(v time.Time) *ContainerSnapshotUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ContainerSnapshotMutation object of the builder.
func (_u *ContainerSnapshotUpdate) Mutation() *ContainerSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContainerSnapshotUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContainerSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContainerSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContainerSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContainerSnapshotUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := containersnapshot.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ContainerSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(containersnapshot.Table, containersnapshot.Columns, sqlgraph.NewFieldSpec(containersnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(containersnapshot.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Snapshot(); ok {
		_spec.SetField(containersnapshot.FieldSnapshot, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSnapshot(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, containersnapshot.FieldSnapshot, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(containersnapshot.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{containersnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContainerSnapshotUpdateOne is the builder for updating a single ContainerSnapshot entity.
type ContainerSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContainerSnapshotMutation
}

// SetTaskID sets the "task_id" field.
func (_u *ContainerSnapshotUpdateOne) SetTaskID(v string) *ContainerSnapshotUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *ContainerSnapshotUpdateOne) SetNillableTaskID(v *string) *ContainerSnapshotUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetSnapshot sets the "snapshot" field.
func (_u *ContainerSnapshotUpdateOne) SetSnapshot(v json.RawMessage) *ContainerSnapshotUpdateOne {
	_u.mutation.SetSnapshot(v)
	return _u
}

// AppendSnapshot appends value to the "snapshot" field.
func (_u *ContainerSnapshotUpdateOne) AppendSnapshot(v json.RawMessage) *ContainerSnapshotUpdateOne {
	_u.mutation.AppendSnapshot(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContainerSnapshotUpdateOne) SetUpdatedAt(v time.Time) *ContainerSnapshotUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ContainerSnapshotMutation object of the builder.
func (_u *ContainerSnapshotUpdateOne) Mutation() *ContainerSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContainerSnapshotUpdate builder.
func (_u *ContainerSnapshotUpdateOne) Where(ps ...predicate.ContainerSnapshot) *ContainerSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContainerSnapshotUpdateOne) Select(field string, fields ...string) *ContainerSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContainerSnapshot entity.
func (_u *ContainerSnapshotUpdateOne) Save(ctx context.Context) (*ContainerSnapshot, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContainerSnapshotUpdateOne) SaveX(ctx context.Context) *ContainerSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContainerSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContainerSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContainerSnapshotUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := containersnapshot.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ContainerSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *ContainerSnapshot, err error) {
	_spec := sqlgraph.NewUpdateSpec(containersnapshot.Table, containersnapshot.Columns, sqlgraph.NewFieldSpec(containersnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContainerSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, containersnapshot.FieldID)
		for _, f := range fields {
			if !containersnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != containersnapshot.FieldID {
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
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(containersnapshot.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Snapshot(); ok {
		_spec.SetField(containersnapshot.FieldSnapshot, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSnapshot(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, containersnapshot.FieldSnapshot, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(containersnapshot.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ContainerSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{containersnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
