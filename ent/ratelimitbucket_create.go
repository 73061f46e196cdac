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
	"github.com/forgeproject/forge/ent/ratelimitbucket"
)

// RateLimitBucketCreate is the builder for creating a RateLimitBucket entity.
type RateLimitBucketCreate struct {
	config
	mutation *RateLimitBucketMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetOwnerKeyHash sets the "owner_key_hash" field.
func (_c *RateLimitBucketCreate) SetOwnerKeyHash(v string) *RateLimitBucketCreate {
	_c.mutation.SetOwnerKeyHash(v)
	return _c
}

// SetScope sets the "scope" field.
func (_c *RateLimitBucketCreate) SetScope(v string) *RateLimitBucketCreate {
	_c.mutation.SetScope(v)
	return _c
}

// SetWindowStart sets the "window_start" field.
func (_c *RateLimitBucketCreate) SetWindowStart(v time.Time) *RateLimitBucketCreate {
	_c.mutation.SetWindowStart(v)
	return _c
}

// SetCount sets the "count" field.
func (_c *RateLimitBucketCreate) SetCount(v int) *RateLimitBucketCreate {
	_c.mutation.SetCount(v)
	return _c
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_c *RateLimitBucketCreate) SetNillableCount(v *int) *RateLimitBucketCreate {
	if v != nil {
		_c.SetCount(*v)
	}
	return _c
}

// Mutation returns the RateLimitBucketMutation object of the builder.
func (_c *RateLimitBucketCreate) Mutation() *RateLimitBucketMutation {
	return _c.mutation
}

// Save creates the RateLimitBucket in the database.
func (_c *RateLimitBucketCreate) Save(ctx context.Context) (*RateLimitBucket, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RateLimitBucketCreate) SaveX(ctx context.Context) *RateLimitBucket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RateLimitBucketCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RateLimitBucketCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RateLimitBucketCreate) defaults() {
	if _, ok := _c.mutation.Count(); !ok {
		v := ratelimitbucket.DefaultCount
		_c.mutation.SetCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RateLimitBucketCreate) check() error {
	if _, ok := _c.mutation.OwnerKeyHash(); !ok {
		return &ValidationError{Name: "owner_key_hash", err: errors.New(`ent: missing required field "RateLimitBucket.owner_key_hash"`)}
	}
	if _, ok := _c.mutation.Scope(); !ok {
		return &ValidationError{Name: "scope", err: errors.New(`ent: missing required field "RateLimitBucket.scope"`)}
	}
	if _, ok := _c.mutation.WindowStart(); !ok {
		return &ValidationError{Name: "window_start", err: errors.New(`ent: missing required field "RateLimitBucket.window_start"`)}
	}
	if _, ok := _c.mutation.Count(); !ok {
		return &ValidationError{Name: "count", err: errors.New(`ent: missing required field "RateLimitBucket.count"`)}
	}
	return nil
}

func (_c *RateLimitBucketCreate) sqlSave(ctx context.Context) (*RateLimitBucket, error) {
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

func (_c *RateLimitBucketCreate) createSpec() (*RateLimitBucket, *sqlgraph.CreateSpec) {
	var (
		_node = &RateLimitBucket{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ratelimitbucket.Table, sqlgraph.NewFieldSpec(ratelimitbucket.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.OwnerKeyHash(); ok {
		_spec.SetField(ratelimitbucket.FieldOwnerKeyHash, field.TypeString, value)
		_node.OwnerKeyHash = value
	}
	if value, ok := _c.mutation.Scope(); ok {
		_spec.SetField(ratelimitbucket.FieldScope, field.TypeString, value)
		_node.Scope = value
	}
	if value, ok := _c.mutation.WindowStart(); ok {
		_spec.SetField(ratelimitbucket.FieldWindowStart, field.TypeTime, value)
		_node.WindowStart = value
	}
	if value, ok := _c.mutation.Count(); ok {
		_spec.SetField(ratelimitbucket.FieldCount, field.TypeInt, value)
		_node.Count = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RateLimitBucket.Create().
//		SetOwnerKeyHash(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RateLimitBucketUpsert) {
//			SetOwnerKeyHash(v+v).
//		}).
//		Exec(ctx)
func (_c *RateLimitBucketCreate) OnConflict(opts ...sql.ConflictOption) *RateLimitBucketUpsertOne {
	_c.conflict = opts
	return &RateLimitBucketUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RateLimitBucket.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RateLimitBucketCreate) OnConflictColumns(columns ...string) *RateLimitBucketUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RateLimitBucketUpsertOne{
		create: _c,
	}
}

type (
	// RateLimitBucketUpsertOne is the builder for "upsert"-ing
	//  one RateLimitBucket node.
	RateLimitBucketUpsertOne struct {
		create *RateLimitBucketCreate
	}

	// RateLimitBucketUpsert is the "OnConflict" setter.
	RateLimitBucketUpsert struct {
		*sql.UpdateSet
	}
)

// SetOwnerKeyHash sets the "owner_key_hash" field.
func (u *RateLimitBucketUpsert) SetOwnerKeyHash(v string) *RateLimitBucketUpsert {
	u.Set(ratelimitbucket.FieldOwnerKeyHash, v)
	return u
}

// UpdateOwnerKeyHash sets the "owner_key_hash" field to the value that was provided on create.
func (u *RateLimitBucketUpsert) UpdateOwnerKeyHash() *RateLimitBucketUpsert {
	u.SetExcluded(ratelimitbucket.FieldOwnerKeyHash)
	return u
}

// SetScope sets the "scope" field.
func (u *RateLimitBucketUpsert) SetScope(v string) *RateLimitBucketUpsert {
	u.Set(ratelimitbucket.FieldScope, v)
	return u
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *RateLimitBucketUpsert) UpdateScope() *RateLimitBucketUpsert {
	u.SetExcluded(ratelimitbucket.FieldScope)
	return u
}

// SetWindowStart sets the "window_start" field.
func (u *RateLimitBucketUpsert) SetWindowStart(v time.Time) *RateLimitBucketUpsert {
	u.Set(ratelimitbucket.FieldWindowStart, v)
	return u
}

// UpdateWindowStart sets the "window_start" field to the value that was provided on create.
func (u *RateLimitBucketUpsert) UpdateWindowStart() *RateLimitBucketUpsert {
	u.SetExcluded(ratelimitbucket.FieldWindowStart)
	return u
}

// SetCount sets the "count" field.
func (u *RateLimitBucketUpsert) SetCount(v int) *RateLimitBucketUpsert {
	u.Set(ratelimitbucket.FieldCount, v)
	return u
}

// UpdateCount sets the "count" field to the value that was provided on create.
func (u *RateLimitBucketUpsert) UpdateCount() *RateLimitBucketUpsert {
	u.SetExcluded(ratelimitbucket.FieldCount)
	return u
}

// AddCount adds v to the "count" field.
func (u *RateLimitBucketUpsert) AddCount(v int) *RateLimitBucketUpsert {
	u.Add(ratelimitbucket.FieldCount, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.RateLimitBucket.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RateLimitBucketUpsertOne) UpdateNewValues() *RateLimitBucketUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RateLimitBucket.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RateLimitBucketUpsertOne) Ignore() *RateLimitBucketUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RateLimitBucketUpsertOne) DoNothing() *RateLimitBucketUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RateLimitBucketCreate.OnConflict
// documentation for more info.
func (u *RateLimitBucketUpsertOne) Update(set func(*RateLimitBucketUpsert)) *RateLimitBucketUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RateLimitBucketUpsert{UpdateSet: update})
	}))
	return u
}

// SetOwnerKeyHash sets the "owner_key_hash" field.
func (u *RateLimitBucketUpsertOne) SetOwnerKeyHash(v string) *RateLimitBucketUpsertOne {
	return u.Update(func(s *RateLimitBucketUpsert) {
		s.SetOwnerKeyHash(v)
	})
}

// UpdateOwnerKeyHash sets the "owner_key_hash" field to the value that was provided on create.
func (u *RateLimitBucketUpsertOne) UpdateOwnerKeyHash() *RateLimitBucketUpsertOne {
	return u.Update(func(s *RateLimitBucketUpsert) {
		s.UpdateOwnerKeyHash()
	})
}

// SetScope sets the "scope" field.
func (u *RateLimitBucketUpsertOne) SetScope(v string) *RateLimitBucketUpsertOne {
	return u.Update(func(s *RateLimitBucketUpsert) {
		s.SetScope(v)
	})
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *RateLimitBucketUpsertOne) UpdateScope() *RateLimitBucketUpsertOne {
	return u.Update(func(s *RateLimitBucketUpsert) {
		s.UpdateScope()
	})
}

// SetWindowStart sets the "window_start" field.
func (u *RateLimitBucketUpsertOne) SetWindowStart(v time.Time) *RateLimitBucketUpsertOne {
	return u.Update(func(s *RateLimitBucketUpsert) {
		s.SetWindowStart(v)
	})
}

// UpdateWindowStart sets the "window_start" field to the value that was provided on create.
func (u *RateLimitBucketUpsertOne) UpdateWindowStart() *RateLimitBucketUpsertOne {
	return u.Update(func(s *RateLimitBucketUpsert) {
		s.UpdateWindowStart()
	})
}

// SetCount sets the "count" field.
func (u *RateLimitBucketUpsertOne) SetCount(v int) *RateLimitBucketUpsertOne {
	return u.Update(func(s *RateLimitBucketUpsert) {
		s.SetCount(v)
	})
}

// AddCount adds v to the "count" field.
func (u *RateLimitBucketUpsertOne) AddCount(v int) *RateLimitBucketUpsertOne {
	return u.Update(func(s *RateLimitBucketUpsert) {
		s.AddCount(v)
	})
}

// UpdateCount sets the "count" field to the value that was provided on create.
func (u *RateLimitBucketUpsertOne) UpdateCount() *RateLimitBucketUpsertOne {
	return u.Update(func(s *RateLimitBucketUpsert) {
		s.UpdateCount()
	})
}

// Exec executes the query.
func (u *RateLimitBucketUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RateLimitBucketCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RateLimitBucketUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RateLimitBucketUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RateLimitBucketUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RateLimitBucketCreateBulk is the builder for creating many RateLimitBucket entities in bulk.
type RateLimitBucketCreateBulk struct {
	config
	err      error
	builders []*RateLimitBucketCreate
	conflict []sql.ConflictOption
}

// Save creates the RateLimitBucket entities in the database.
func (_c *RateLimitBucketCreateBulk) Save(ctx context.Context) ([]*RateLimitBucket, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RateLimitBucket, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RateLimitBucketMutation)
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
func (_c *RateLimitBucketCreateBulk) SaveX(ctx context.Context) []*RateLimitBucket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RateLimitBucketCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RateLimitBucketCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RateLimitBucket.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RateLimitBucketUpsert) {
//			SetOwnerKeyHash(v+v).
//		}).
//		Exec(ctx)
func (_c *RateLimitBucketCreateBulk) OnConflict(opts ...sql.ConflictOption) *RateLimitBucketUpsertBulk {
	_c.conflict = opts
	return &RateLimitBucketUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RateLimitBucket.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RateLimitBucketCreateBulk) OnConflictColumns(columns ...string) *RateLimitBucketUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RateLimitBucketUpsertBulk{
		create: _c,
	}
}

// RateLimitBucketUpsertBulk is the builder for "upsert"-ing
// a bulk of RateLimitBucket nodes.
type RateLimitBucketUpsertBulk struct {
	create *RateLimitBucketCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RateLimitBucket.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RateLimitBucketUpsertBulk) UpdateNewValues() *RateLimitBucketUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RateLimitBucket.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RateLimitBucketUpsertBulk) Ignore() *RateLimitBucketUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RateLimitBucketUpsertBulk) DoNothing() *RateLimitBucketUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RateLimitBucketCreateBulk.OnConflict
// documentation for more info.
func (u *RateLimitBucketUpsertBulk) Update(set func(*RateLimitBucketUpsert)) *RateLimitBucketUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RateLimitBucketUpsert{UpdateSet: update})
	}))
	return u
}

// SetOwnerKeyHash sets the "owner_key_hash" field.
func (u *RateLimitBucketUpsertBulk) SetOwnerKeyHash(v string) *RateLimitBucketUpsertBulk {
	return u.Update(func(s *RateLimitBucketUpsert) {
		s.SetOwnerKeyHash(v)
	})
}

// UpdateOwnerKeyHash sets the "owner_key_hash" field to the value that was provided on create.
func (u *RateLimitBucketUpsertBulk) UpdateOwnerKeyHash() *RateLimitBucketUpsertBulk {
	return u.Update(func(s *RateLimitBucketUpsert) {
		s.UpdateOwnerKeyHash()
	})
}

// SetScope sets the "scope" field.
func (u *RateLimitBucketUpsertBulk) SetScope(v string) *RateLimitBucketUpsertBulk {
	return u.Update(func(s *RateLimitBucketUpsert) {
		s.SetScope(v)
	})
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *RateLimitBucketUpsertBulk) UpdateScope() *RateLimitBucketUpsertBulk {
	return u.Update(func(s *RateLimitBucketUpsert) {
		s.UpdateScope()
	})
}

// SetWindowStart sets the "window_start" field.
func (u *RateLimitBucketUpsertBulk) SetWindowStart(v time.Time) *RateLimitBucketUpsertBulk {
	return u.Update(func(s *RateLimitBucketUpsert) {
		s.SetWindowStart(v)
	})
}

// UpdateWindowStart sets the "window_start" field to the value that was provided on create.
func (u *RateLimitBucketUpsertBulk) UpdateWindowStart() *RateLimitBucketUpsertBulk {
	return u.Update(func(s *RateLimitBucketUpsert) {
		s.UpdateWindowStart()
	})
}

// SetCount sets the "count" field.
func (u *RateLimitBucketUpsertBulk) SetCount(v int) *RateLimitBucketUpsertBulk {
	return u.Update(func(s *RateLimitBucketUpsert) {
		s.SetCount(v)
	})
}

// AddCount adds v to the "count" field.
func (u *RateLimitBucketUpsertBulk) AddCount(v int) *RateLimitBucketUpsertBulk {
	return u.Update(func(s *RateLimitBucketUpsert) {
		s.AddCount(v)
	})
}

// UpdateCount sets the "count" field to the value that was provided on create.
func (u *RateLimitBucketUpsertBulk) UpdateCount() *RateLimitBucketUpsertBulk {
	return u.Update(func(s *RateLimitBucketUpsert) {
		s.UpdateCount()
	})
}

// Exec executes the query.
func (u *RateLimitBucketUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RateLimitBucketCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RateLimitBucketCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RateLimitBucketUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
