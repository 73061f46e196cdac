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
	"entgo.io/ent/schema/field"
	"github.com/forgeproject/forge/ent/containersnapshot"
)

// ContainerSnapshotCreate is the builder for creating a ContainerSnapshot entity.
type ContainerSnapshotCreate struct {
	config
	mutation *ContainerSnapshotMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *ContainerSnapshotCreate) SetTaskID(v string) *ContainerSnapshotCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetSnapshot sets the "snapshot" field.
func (_c *ContainerSnapshotCreate) SetSnapshot(v json.RawMessage) *ContainerSnapshotCreate {
	_c.mutation.SetSnapshot(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ContainerSnapshotCreate) SetUpdatedAt(v time.Time) *ContainerSnapshotCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ContainerSnapshotCreate) SetNillableUpdatedAt(v *time.Time) *ContainerSnapshotCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ContainerSnapshotMutation object of the builder.
func (_c *ContainerSnapshotCreate) Mutation() *ContainerSnapshotMutation {
	return _c.mutation
}

// Save creates the ContainerSnapshot in the database.
func (_c *ContainerSnapshotCreate) Save(ctx context.Context) (*ContainerSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContainerSnapshotCreate) SaveX(ctx context.Context) *ContainerSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContainerSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContainerSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContainerSnapshotCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := containersnapshot.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContainerSnapshotCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "ContainerSnapshot.task_id"`)}
	}
	if _, ok := _c.mutation.Snapshot(); !ok {
		return &ValidationError{Name: "snapshot", err: errors.New(`ent: missing required field "ContainerSnapshot.snapshot"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ContainerSnapshot.updated_at"`)}
	}
	return nil
}

func (_c *ContainerSnapshotCreate) sqlSave(ctx context.Context) (*ContainerSnapshot, error) {
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

func (_c *ContainerSnapshotCreate) createSpec() (*ContainerSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &ContainerSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(containersnapshot.Table, sqlgraph.NewFieldSpec(containersnapshot.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(containersnapshot.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.Snapshot(); ok {
		_spec.SetField(containersnapshot.FieldSnapshot, field.TypeJSON, value)
		_node.Snapshot = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(containersnapshot.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ContainerSnapshot.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ContainerSnapshotUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *ContainerSnapshotCreate) OnConflict(opts ...sql.ConflictOption) *ContainerSnapshotUpsertOne {
	_c.conflict = opts
	return &ContainerSnapshotUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ContainerSnapshot.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ContainerSnapshotCreate) OnConflictColumns(columns ...string) *ContainerSnapshotUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ContainerSnapshotUpsertOne{
		create: _c,
	}
}

type (
	// ContainerSnapshotUpsertOne is the builder for "upsert"-ing
	//  one ContainerSnapshot node.
	ContainerSnapshotUpsertOne struct {
		create *ContainerSnapshotCreate
	}

	// ContainerSnapshotUpsert is the "OnConflict" setter.
	ContainerSnapshotUpsert struct {
		*sql.UpdateSet
	}
)

// SetTaskID sets the "task_id" field.
func (u *ContainerSnapshotUpsert) SetTaskID(v string) *ContainerSnapshotUpsert {
	u.Set(containersnapshot.FieldTaskID, v)
	return u
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *ContainerSnapshotUpsert) UpdateTaskID() *ContainerSnapshotUpsert {
	u.SetExcluded(containersnapshot.FieldTaskID)
	return u
}

// SetSnapshot sets the "snapshot" field.
func (u *ContainerSnapshotUpsert) SetSnapshot(v json.RawMessage) *ContainerSnapshotUpsert {
	u.Set(containersnapshot.FieldSnapshot, v)
	return u
}

// UpdateSnapshot sets the "snapshot" field to the value that was provided on create.
func (u *ContainerSnapshotUpsert) UpdateSnapshot() *ContainerSnapshotUpsert {
	u.SetExcluded(containersnapshot.FieldSnapshot)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ContainerSnapshotUpsert) SetUpdatedAt(v time.Time) *ContainerSnapshotUpsert {
	u.Set(containersnapshot.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ContainerSnapshotUpsert) UpdateUpdatedAt() *ContainerSnapshotUpsert {
	u.SetExcluded(containersnapshot.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ContainerSnapshot.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ContainerSnapshotUpsertOne) UpdateNewValues() *ContainerSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ContainerSnapshot.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ContainerSnapshotUpsertOne) Ignore() *ContainerSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ContainerSnapshotUpsertOne) DoNothing() *ContainerSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ContainerSnapshotCreate.OnConflict
// documentation for more info.
func (u *ContainerSnapshotUpsertOne) Update(set func(*ContainerSnapshotUpsert)) *ContainerSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ContainerSnapshotUpsert{UpdateSet: update})
	}))
	return u
}

// SetTaskID sets the "task_id" field.
func (u *ContainerSnapshotUpsertOne) SetTaskID(v string) *ContainerSnapshotUpsertOne {
	return u.Update(func(s *ContainerSnapshotUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *ContainerSnapshotUpsertOne) UpdateTaskID() *ContainerSnapshotUpsertOne {
	return u.Update(func(s *ContainerSnapshotUpsert) {
		s.UpdateTaskID()
	})
}

// SetSnapshot sets the "snapshot" field.
func (u *ContainerSnapshotUpsertOne) SetSnapshot(v json.RawMessage) *ContainerSnapshotUpsertOne {
	return u.Update(func(s *ContainerSnapshotUpsert) {
		s.SetSnapshot(v)
	})
}

// UpdateSnapshot sets the "snapshot" field to the value that was provided on create.
func (u *ContainerSnapshotUpsertOne) UpdateSnapshot() *ContainerSnapshotUpsertOne {
	return u.Update(func(s *ContainerSnapshotUpsert) {
		s.UpdateSnapshot()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ContainerSnapshotUpsertOne) SetUpdatedAt(v time.Time) *ContainerSnapshotUpsertOne {
	return u.Update(func(s *ContainerSnapshotUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ContainerSnapshotUpsertOne) UpdateUpdatedAt() *ContainerSnapshotUpsertOne {
	return u.Update(func(s *ContainerSnapshotUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ContainerSnapshotUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ContainerSnapshotCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ContainerSnapshotUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ContainerSnapshotUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ContainerSnapshotUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ContainerSnapshotCreateBulk is the builder for creating many ContainerSnapshot entities in bulk.
type ContainerSnapshotCreateBulk struct {
	config
	err      error
	builders []*ContainerSnapshotCreate
	conflict []sql.ConflictOption
}

// Save creates the ContainerSnapshot entities in the database.
func (_c *ContainerSnapshotCreateBulk) Save(ctx context.Context) ([]*ContainerSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContainerSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContainerSnapshotMutation)
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
func (_c *ContainerSnapshotCreateBulk) SaveX(ctx context.Context) []*ContainerSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContainerSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContainerSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ContainerSnapshot.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ContainerSnapshotUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *ContainerSnapshotCreateBulk) OnConflict(opts ...sql.ConflictOption) *ContainerSnapshotUpsertBulk {
	_c.conflict = opts
	return &ContainerSnapshotUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ContainerSnapshot.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ContainerSnapshotCreateBulk) OnConflictColumns(columns ...string) *ContainerSnapshotUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ContainerSnapshotUpsertBulk{
		create: _c,
	}
}

// ContainerSnapshotUpsertBulk is the builder for "upsert"-ing
// a bulk of ContainerSnapshot nodes.
type ContainerSnapshotUpsertBulk struct {
	create *ContainerSnapshotCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ContainerSnapshot.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ContainerSnapshotUpsertBulk) UpdateNewValues() *ContainerSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ContainerSnapshot.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ContainerSnapshotUpsertBulk) Ignore() *ContainerSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ContainerSnapshotUpsertBulk) DoNothing() *ContainerSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ContainerSnapshotCreateBulk.OnConflict
// documentation for more info.
func (u *ContainerSnapshotUpsertBulk) Update(set func(*ContainerSnapshotUpsert)) *ContainerSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ContainerSnapshotUpsert{UpdateSet: update})
	}))
	return u
}

// SetTaskID sets the "task_id" field.
func (u *ContainerSnapshotUpsertBulk) SetTaskID(v string) *ContainerSnapshotUpsertBulk {
	return u.Update(func(s *ContainerSnapshotUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *ContainerSnapshotUpsertBulk) UpdateTaskID() *ContainerSnapshotUpsertBulk {
	return u.Update(func(s *ContainerSnapshotUpsert) {
		s.UpdateTaskID()
	})
}

// SetSnapshot sets the "snapshot" field.
func (u *ContainerSnapshotUpsertBulk) SetSnapshot(v json.RawMessage) *ContainerSnapshotUpsertBulk {
	return u.Update(func(s *ContainerSnapshotUpsert) {
		s.SetSnapshot(v)
	})
}

// UpdateSnapshot sets the "snapshot" field to the value that was provided on create.
func (u *ContainerSnapshotUpsertBulk) UpdateSnapshot() *ContainerSnapshotUpsertBulk {
	return u.Update(func(s *ContainerSnapshotUpsert) {
		s.UpdateSnapshot()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ContainerSnapshotUpsertBulk) SetUpdatedAt(v time.Time) *ContainerSnapshotUpsertBulk {
	return u.Update(func(s *ContainerSnapshotUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ContainerSnapshotUpsertBulk) UpdateUpdatedAt() *ContainerSnapshotUpsertBulk {
	return u.Update(func(s *ContainerSnapshotUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ContainerSnapshotUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ContainerSnapshotCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ContainerSnapshotCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ContainerSnapshotUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
