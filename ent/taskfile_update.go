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
	"github.com/forgeproject/forge/ent/taskfile"
)

// TaskFileUpdate is the builder for updating TaskFile entities.
type TaskFileUpdate struct {
	config
	hooks    []Hook
	mutation *TaskFileMutation
}

// Where appends a list predicates to the TaskFileUpdate builder.
func (_u *TaskFileUpdate) Where(ps ...predicate.TaskFile) *TaskFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *TaskFileUpdate) SetTaskID(v string) *TaskFileUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *TaskFileUpdate) SetNillableTaskID(v *string) *TaskFileUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *TaskFileUpdate) SetPath(v string) *TaskFileUpdate {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *TaskFileUpdate) SetNillablePath(v *string) *TaskFileUpdate {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *TaskFileUpdate) SetContent(v []byte) *TaskFileUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetSha256 sets the "sha256" field.
func (_u *TaskFileUpdate) SetSha256(v string) *TaskFileUpdate {
	_u.mutation.SetSha256(v)
	return _u
}

// SetNillableSha256 sets the "sha256" field if the given value is not nil.
func (_u *TaskFileUpdate) SetNillableSha256(v *string) *TaskFileUpdate {
	if v != nil {
		_u.SetSha256(*v)
	}
	return _u
}

// SetSize sets the "size" field.
func (_u *TaskFileUpdate) SetSize(v int) *TaskFileUpdate {
	_u.mutation.ResetSize()
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *TaskFileUpdate) SetNillableSize(v *int) *TaskFileUpdate {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// AddSize adds value to the "size" field.
func (_u *TaskFileUpdate) AddSize(v int) *TaskFileUpdate {
	_u.mutation.AddSize(v)
	return _u
}

// Mutation returns the TaskFileMutation object of the builder.
func (_u *TaskFileUpdate) Mutation() *TaskFileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskFileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TaskFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(taskfile.Table, taskfile.Columns, sqlgraph.NewFieldSpec(taskfile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(taskfile.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(taskfile.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(taskfile.FieldContent, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Sha256(); ok {
		_spec.SetField(taskfile.FieldSha256, field.TypeString, value)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(taskfile.FieldSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSize(); ok {
		_spec.AddField(taskfile.FieldSize, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskFileUpdateOne is the builder for updating a single TaskFile entity.
type TaskFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskFileMutation
}

// SetTaskID sets the "task_id" field.
func (_u *TaskFileUpdateOne) SetTaskID(v string) *TaskFileUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *TaskFileUpdateOne) SetNillableTaskID(v *string) *TaskFileUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *TaskFileUpdateOne) SetPath(v string) *TaskFileUpdateOne {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *TaskFileUpdateOne) SetNillablePath(v *string) *TaskFileUpdateOne {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *TaskFileUpdateOne) SetContent(v []byte) *TaskFileUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetSha256 sets the "sha256" field.
func (_u *TaskFileUpdateOne) SetSha256(v string) *TaskFileUpdateOne {
	_u.mutation.SetSha256(v)
	return _u
}

// SetNillableSha256 sets the "sha256" field if the given value is not nil.
func (_u *TaskFileUpdateOne) SetNillableSha256(v *string) *TaskFileUpdateOne {
	if v != nil {
		_u.SetSha256(*v)
	}
	return _u
}

// SetSize sets the "size" field.
func (_u *TaskFileUpdateOne) SetSize(v int) *TaskFileUpdateOne {
	_u.mutation.ResetSize()
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *TaskFileUpdateOne) SetNillableSize(v *int) *TaskFileUpdateOne {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// AddSize adds value to the "size" field.
func (_u *TaskFileUpdateOne) AddSize(v int) *TaskFileUpdateOne {
	_u.mutation.AddSize(v)
	return _u
}

// Mutation returns the TaskFileMutation object of the builder.
func (_u *TaskFileUpdateOne) Mutation() *TaskFileMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskFileUpdate builder.
func (_u *TaskFileUpdateOne) Where(ps ...predicate.TaskFile) *TaskFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskFileUpdateOne) Select(field string, fields ...string) *TaskFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskFile entity.
func (_u *TaskFileUpdateOne) Save(ctx context.Context) (*TaskFile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskFileUpdateOne) SaveX(ctx context.Context) *TaskFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TaskFileUpdateOne) sqlSave(ctx context.Context) (_node *TaskFile, err error) {
	_spec := sqlgraph.NewUpdateSpec(taskfile.Table, taskfile.Columns, sqlgraph.NewFieldSpec(taskfile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskfile.FieldID)
		for _, f := range fields {
			if !taskfile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taskfile.FieldID {
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
		_spec.SetField(taskfile.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(taskfile.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(taskfile.FieldContent, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Sha256(); ok {
		_spec.SetField(taskfile.FieldSha256, field.TypeString, value)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(taskfile.FieldSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSize(); ok {
		_spec.AddField(taskfile.FieldSize, field.TypeInt, value)
	}
	_node = &TaskFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
