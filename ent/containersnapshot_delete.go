// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeproject/forge/ent/containersnapshot"
	"github.com/forgeproject/forge/ent/predicate"
)

// ContainerSnapshotDelete is the builder for deleting a ContainerSnapshot entity.
type ContainerSnapshotDelete struct {
	config
	hooks    []Hook
	mutation *ContainerSnapshotMutation
}

// Where appends a list predicates to the ContainerSnapshotDelete builder.
func (_d *ContainerSnapshotDelete) Where(ps ...predicate.ContainerSnapshot) *ContainerSnapshotDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ContainerSnapshotDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ContainerSnapshotDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ContainerSnapshotDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(containersnapshot.Table, sqlgraph.NewFieldSpec(containersnapshot.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ContainerSnapshotDeleteOne is the builder for deleting a single ContainerSnapshot entity.
type ContainerSnapshotDeleteOne struct {
	_d *ContainerSnapshotDelete
}

// Where appends a list predicates to the ContainerSnapshotDelete builder.
func (_d *ContainerSnapshotDeleteOne) Where(ps ...predicate.ContainerSnapshot) *ContainerSnapshotDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ContainerSnapshotDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{containersnapshot.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ContainerSnapshotDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
