// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeproject/forge/ent/taskfile"
)

// TaskFileCreate is the builder for creating a TaskFile entity.
type TaskFileCreate struct {
	config
	mutation *TaskFileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *TaskFileCreate) SetTaskID(v string) *TaskFileCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetPath sets the "path" field.
func (_c *TaskFileCreate) SetPath(v string) *TaskFileCreate {
	_c.mutation.SetPath(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *TaskFileCreate) SetContent(v []byte) *TaskFileCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetSha256 sets the "sha256" field.
func (_c *TaskFileCreate) SetSha256(v string) *TaskFileCreate {
	_c.mutation.SetSha256(v)
	return _c
}

// SetSize sets the "size" field.
func (_c *TaskFileCreate) SetSize(v int) *TaskFileCreate {
	_c.mutation.SetSize(v)
	return _c
}

// Mutation returns the TaskFileMutation object of the builder.
func (_c *TaskFileCreate) Mutation() *TaskFileMutation {
	return _c.mutation
}

// Save creates the TaskFile in the database.
func (_c *TaskFileCreate) Save(ctx context.Context) (*TaskFile, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskFileCreate) SaveX(ctx context.Context) *TaskFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskFileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskFileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskFileCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "TaskFile.task_id"`)}
	}
	if _, ok := _c.mutation.Path(); !ok {
		return &ValidationError{Name: "path", err: errors.New(`ent: missing required field "TaskFile.path"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "TaskFile.content"`)}
	}
	if _, ok := _c.mutation.Sha256(); !ok {
		return &ValidationError{Name: "sha256", err: errors.New(`ent: missing required field "TaskFile.sha256"`)}
	}
	if _, ok := _c.mutation.Size(); !ok {
		return &ValidationError{Name: "size", err: errors.New(`ent: missing required field "TaskFile.size"`)}
	}
	return nil
}

func (_c *TaskFileCreate) sqlSave(ctx context.Context) (*TaskFile, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskFileCreate) createSpec() (*TaskFile, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskFile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taskfile.Table, sqlgraph.NewFieldSpec(taskfile.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(taskfile.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.Path(); ok {
		_spec.SetField(taskfile.FieldPath, field.TypeString, value)
		_node.Path = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(taskfile.FieldContent, field.TypeBytes, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Sha256(); ok {
		_spec.SetField(taskfile.FieldSha256, field.TypeString, value)
		_node.Sha256 = value
	}
	if value, ok := _c.mutation.Size(); ok {
		_spec.SetField(taskfile.FieldSize, field.TypeInt, value)
		_node.Size = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TaskFile.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskFileUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskFileCreate) OnConflict(opts ...sql.ConflictOption) *TaskFileUpsertOne {
	_c.conflict = opts
	return &TaskFileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TaskFile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskFileCreate) OnConflictColumns(columns ...string) *TaskFileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskFileUpsertOne{
		create: _c,
	}
}

type (
	// TaskFileUpsertOne is the builder for "upsert"-ing
	//  one TaskFile node.
	TaskFileUpsertOne struct {
		create *TaskFileCreate
	}

	// TaskFileUpsert is the "OnConflict" setter.
	TaskFileUpsert struct {
		*sql.UpdateSet
	}
)

// SetTaskID sets the "task_id" field.
func (u *TaskFileUpsert) SetTaskID(v string) *TaskFileUpsert {
	u.Set(taskfile.FieldTaskID, v)
	return u
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *TaskFileUpsert) UpdateTaskID() *TaskFileUpsert {
	u.SetExcluded(taskfile.FieldTaskID)
	return u
}

// SetPath sets the "path" field.
func (u *TaskFileUpsert) SetPath(v string) *TaskFileUpsert {
	u.Set(taskfile.FieldPath, v)
	return u
}

// UpdatePath sets the "path" field to the value that was provided on create.
func (u *TaskFileUpsert) UpdatePath() *TaskFileUpsert {
	u.SetExcluded(taskfile.FieldPath)
	return u
}

// SetContent sets the "content" field.
func (u *TaskFileUpsert) SetContent(v []byte) *TaskFileUpsert {
	u.Set(taskfile.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *TaskFileUpsert) UpdateContent() *TaskFileUpsert {
	u.SetExcluded(taskfile.FieldContent)
	return u
}

// SetSha256 sets the "sha256" field.
func (u *TaskFileUpsert) SetSha256(v string) *TaskFileUpsert {
	u.Set(taskfile.FieldSha256, v)
	return u
}

// UpdateSha256 sets the "sha256" field to the value that was provided on create.
func (u *TaskFileUpsert) UpdateSha256() *TaskFileUpsert {
	u.SetExcluded(taskfile.FieldSha256)
	return u
}

// SetSize sets the "size" field.
func (u *TaskFileUpsert) SetSize(v int) *TaskFileUpsert {
	u.Set(taskfile.FieldSize, v)
	return u
}

// UpdateSize sets the "size" field to the value that was provided on create.
func (u *TaskFileUpsert) UpdateSize() *TaskFileUpsert {
	u.SetExcluded(taskfile.FieldSize)
	return u
}

// AddSize adds v to the "size" field.
func (u *TaskFileUpsert) AddSize(v int) *TaskFileUpsert {
	u.Add(taskfile.FieldSize, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.TaskFile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TaskFileUpsertOne) UpdateNewValues() *TaskFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TaskFile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaskFileUpsertOne) Ignore() *TaskFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskFileUpsertOne) DoNothing() *TaskFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskFileCreate.OnConflict
// documentation for more info.
func (u *TaskFileUpsertOne) Update(set func(*TaskFileUpsert)) *TaskFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskFileUpsert{UpdateSet: update})
	}))
	return u
}

// SetTaskID sets the "task_id" field.
func (u *TaskFileUpsertOne) SetTaskID(v string) *TaskFileUpsertOne {
	return u.Update(func(s *TaskFileUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *TaskFileUpsertOne) UpdateTaskID() *TaskFileUpsertOne {
	return u.Update(func(s *TaskFileUpsert) {
		s.UpdateTaskID()
	})
}

// SetPath sets the "path" field.
func (u *TaskFileUpsertOne) SetPath(v string) *TaskFileUpsertOne {
	return u.Update(func(s *TaskFileUpsert) {
		s.SetPath(v)
	})
}

// UpdatePath sets the "path" field to the value that was provided on create.
func (u *TaskFileUpsertOne) UpdatePath() *TaskFileUpsertOne {
	return u.Update(func(s *TaskFileUpsert) {
		s.UpdatePath()
	})
}

// SetContent sets the "content" field.
func (u *TaskFileUpsertOne) SetContent(v []byte) *TaskFileUpsertOne {
	return u.Update(func(s *TaskFileUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *TaskFileUpsertOne) UpdateContent() *TaskFileUpsertOne {
	return u.Update(func(s *TaskFileUpsert) {
		s.UpdateContent()
	})
}

// SetSha256 sets the "sha256" field.
func (u *TaskFileUpsertOne) SetSha256(v string) *TaskFileUpsertOne {
	return u.Update(func(s *TaskFileUpsert) {
		s.SetSha256(v)
	})
}

// UpdateSha256 sets the "sha256" field to the value that was provided on create.
func (u *TaskFileUpsertOne) UpdateSha256() *TaskFileUpsertOne {
	return u.Update(func(s *TaskFileUpsert) {
		s.UpdateSha256()
	})
}

// SetSize sets the "size" field.
func (u *TaskFileUpsertOne) SetSize(v int) *TaskFileUpsertOne {
	return u.Update(func(s *TaskFileUpsert) {
		s.SetSize(v)
	})
}

// AddSize adds v to the "size" field.
func (u *TaskFileUpsertOne) AddSize(v int) *TaskFileUpsertOne {
	return u.Update(func(s *TaskFileUpsert) {
		s.AddSize(v)
	})
}

// UpdateSize sets the "size" field to the value that was provided on create.
func (u *TaskFileUpsertOne) UpdateSize() *TaskFileUpsertOne {
	return u.Update(func(s *TaskFileUpsert) {
		s.UpdateSize()
	})
}

// Exec executes the query.
func (u *TaskFileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskFileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskFileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaskFileUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaskFileUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaskFileCreateBulk is the builder for creating many TaskFile entities in bulk.
type TaskFileCreateBulk struct {
	config
	err      error
	builders []*TaskFileCreate
	conflict []sql.ConflictOption
}

// Save creates the TaskFile entities in the database.
func (_c *TaskFileCreateBulk) Save(ctx context.Context) ([]*TaskFile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskFile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskFileMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TaskFileCreateBulk) SaveX(ctx context.Context) []*TaskFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskFileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskFileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TaskFile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskFileUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskFileCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaskFileUpsertBulk {
	_c.conflict = opts
	return &TaskFileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TaskFile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskFileCreateBulk) OnConflictColumns(columns ...string) *TaskFileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskFileUpsertBulk{
		create: _c,
	}
}

// TaskFileUpsertBulk is the builder for "upsert"-ing
// a bulk of TaskFile nodes.
type TaskFileUpsertBulk struct {
	create *TaskFileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TaskFile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TaskFileUpsertBulk) UpdateNewValues() *TaskFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TaskFile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaskFileUpsertBulk) Ignore() *TaskFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskFileUpsertBulk) DoNothing() *TaskFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskFileCreateBulk.OnConflict
// documentation for more info.
func (u *TaskFileUpsertBulk) Update(set func(*TaskFileUpsert)) *TaskFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskFileUpsert{UpdateSet: update})
	}))
	return u
}

// SetTaskID sets the "task_id" field.
func (u *TaskFileUpsertBulk) SetTaskID(v string) *TaskFileUpsertBulk {
	return u.Update(func(s *TaskFileUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *TaskFileUpsertBulk) UpdateTaskID() *TaskFileUpsertBulk {
	return u.Update(func(s *TaskFileUpsert) {
		s.UpdateTaskID()
	})
}

// SetPath sets the "path" field.
func (u *TaskFileUpsertBulk) SetPath(v string) *TaskFileUpsertBulk {
	return u.Update(func(s *TaskFileUpsert) {
		s.SetPath(v)
	})
}

// UpdatePath sets the "path" field to the value that was provided on create.
func (u *TaskFileUpsertBulk) UpdatePath() *TaskFileUpsertBulk {
	return u.Update(func(s *TaskFileUpsert) {
		s.UpdatePath()
	})
}

// SetContent sets the "content" field.
func (u *TaskFileUpsertBulk) SetContent(v []byte) *TaskFileUpsertBulk {
	return u.Update(func(s *TaskFileUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *TaskFileUpsertBulk) UpdateContent() *TaskFileUpsertBulk {
	return u.Update(func(s *TaskFileUpsert) {
		s.UpdateContent()
	})
}

// SetSha256 sets the "sha256" field.
func (u *TaskFileUpsertBulk) SetSha256(v string) *TaskFileUpsertBulk {
	return u.Update(func(s *TaskFileUpsert) {
		s.SetSha256(v)
	})
}

// UpdateSha256 sets the "sha256" field to the value that was provided on create.
func (u *TaskFileUpsertBulk) UpdateSha256() *TaskFileUpsertBulk {
	return u.Update(func(s *TaskFileUpsert) {
		s.UpdateSha256()
	})
}

// SetSize sets the "size" field.
func (u *TaskFileUpsertBulk) SetSize(v int) *TaskFileUpsertBulk {
	return u.Update(func(s *TaskFileUpsert) {
		s.SetSize(v)
	})
}

// AddSize adds v to the "size" field.
func (u *TaskFileUpsertBulk) AddSize(v int) *TaskFileUpsertBulk {
	return u.Update(func(s *TaskFileUpsert) {
		s.AddSize(v)
	})
}

// UpdateSize sets the "size" field to the value that was provided on create.
func (u *TaskFileUpsertBulk) UpdateSize() *TaskFileUpsertBulk {
	return u.Update(func(s *TaskFileUpsert) {
		s.UpdateSize()
	})
}

// Exec executes the query.
func (u *TaskFileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaskFileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskFileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskFileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
