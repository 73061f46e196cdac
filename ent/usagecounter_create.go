// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeproject/forge/ent/usagecounter"
)

// UsageCounterCreate is the builder for creating a UsageCounter entity.
type UsageCounterCreate struct {
	config
	mutation *UsageCounterMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetOwnerKeyHash sets the "owner_key_hash" field.
func (_c *UsageCounterCreate) SetOwnerKeyHash(v string) *UsageCounterCreate {
	_c.mutation.SetOwnerKeyHash(v)
	return _c
}

// SetDay sets the "day" field.
func (_c *UsageCounterCreate) SetDay(v string) *UsageCounterCreate {
	_c.mutation.SetDay(v)
	return _c
}

// SetTokensIn sets the "tokens_in" field.
func (_c *UsageCounterCreate) SetTokensIn(v int64) *UsageCounterCreate {
	_c.mutation.SetTokensIn(v)
	return _c
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_c *UsageCounterCreate) SetNillableTokensIn(v *int64) *UsageCounterCreate {
	if v != nil {
		_c.SetTokensIn(*v)
	}
	return _c
}

// SetTokensOut sets the "tokens_out" field.
func (_c *UsageCounterCreate) SetTokensOut(v int64) *UsageCounterCreate {
	_c.mutation.SetTokensOut(v)
	return _c
}

// SetNillableTokensOut sets the "tokens_out" field if the given value is not nil.
func (_c *UsageCounterCreate) SetNillableTokensOut(v *int64) *UsageCounterCreate {
	if v != nil {
		_c.SetTokensOut(*v)
	}
	return _c
}

// SetCommandRuns sets the "command_runs" field.
func (_c *UsageCounterCreate) SetCommandRuns(v int64) *UsageCounterCreate {
	_c.mutation.SetCommandRuns(v)
	return _c
}

// SetNillableCommandRuns sets the "command_runs" field if the given value is not nil.
func (_c *UsageCounterCreate) SetNillableCommandRuns(v *int64) *UsageCounterCreate {
	if v != nil {
		_c.SetCommandRuns(*v)
	}
	return _c
}

// Mutation returns the UsageCounterMutation object of the builder.
func (_c *UsageCounterCreate) Mutation() *UsageCounterMutation {
	return _c.mutation
}

// Save creates the UsageCounter in the database.
func (_c *UsageCounterCreate) Save(ctx context.Context) (*UsageCounter, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UsageCounterCreate) SaveX(ctx context.Context) *UsageCounter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageCounterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageCounterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UsageCounterCreate) defaults() {
	if _, ok := _c.mutation.TokensIn(); !ok {
		v := usagecounter.DefaultTokensIn
		_c.mutation.SetTokensIn(v)
	}
	if _, ok := _c.mutation.TokensOut(); !ok {
		v := usagecounter.DefaultTokensOut
		_c.mutation.SetTokensOut(v)
	}
	if _, ok := _c.mutation.CommandRuns(); !ok {
		v := usagecounter.DefaultCommandRuns
		_c.mutation.SetCommandRuns(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UsageCounterCreate) check() error {
	if _, ok := _c.mutation.OwnerKeyHash(); !ok {
		return &ValidationError{Name: "owner_key_hash", err: errors.New(`ent: missing required field "UsageCounter.owner_key_hash"`)}
	}
	if _, ok := _c.mutation.Day(); !ok {
		return &ValidationError{Name: "day", err: errors.New(`ent: missing required field "UsageCounter.day"`)}
	}
	if _, ok := _c.mutation.TokensIn(); !ok {
		return &ValidationError{Name: "tokens_in", err: errors.New(`ent: missing required field "UsageCounter.tokens_in"`)}
	}
	if _, ok := _c.mutation.TokensOut(); !ok {
		return &ValidationError{Name: "tokens_out", err: errors.New(`ent: missing required field "UsageCounter.tokens_out"`)}
	}
	if _, ok := _c.mutation.CommandRuns(); !ok {
		return &ValidationError{Name: "command_runs", err: errors.New(`ent: missing required field "UsageCounter.command_runs"`)}
	}
	return nil
}

func (_c *UsageCounterCreate) sqlSave(ctx context.Context) (*UsageCounter, error) {
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

func (_c *UsageCounterCreate) createSpec() (*UsageCounter, *sqlgraph.CreateSpec) {
	var (
		_node = &UsageCounter{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(usagecounter.Table, sqlgraph.NewFieldSpec(usagecounter.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.OwnerKeyHash(); ok {
		_spec.SetField(usagecounter.FieldOwnerKeyHash, field.TypeString, value)
		_node.OwnerKeyHash = value
	}
	if value, ok := _c.mutation.Day(); ok {
		_spec.SetField(usagecounter.FieldDay, field.TypeString, value)
		_node.Day = value
	}
	if value, ok := _c.mutation.TokensIn(); ok {
		_spec.SetField(usagecounter.FieldTokensIn, field.TypeInt64, value)
		_node.TokensIn = value
	}
	if value, ok := _c.mutation.TokensOut(); ok {
		_spec.SetField(usagecounter.FieldTokensOut, field.TypeInt64, value)
		_node.TokensOut = value
	}
	if value, ok := _c.mutation.CommandRuns(); ok {
		_spec.SetField(usagecounter.FieldCommandRuns, field.TypeInt64, value)
		_node.CommandRuns = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UsageCounter.Create().
//		SetOwnerKeyHash(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UsageCounterUpsert) {
//			SetOwnerKeyHash(v+v).
//		}).
//		Exec(ctx)
func (_c *UsageCounterCreate) OnConflict(opts ...sql.ConflictOption) *UsageCounterUpsertOne {
	_c.conflict = opts
	return &UsageCounterUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UsageCounter.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UsageCounterCreate) OnConflictColumns(columns ...string) *UsageCounterUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UsageCounterUpsertOne{
		create: _c,
	}
}

type (
	// UsageCounterUpsertOne is the builder for "upsert"-ing
	//  one UsageCounter node.
	UsageCounterUpsertOne struct {
		create *UsageCounterCreate
	}

	// UsageCounterUpsert is the "OnConflict" setter.
	UsageCounterUpsert struct {
		*sql.UpdateSet
	}
)

// SetOwnerKeyHash sets the "owner_key_hash" field.
func (u *UsageCounterUpsert) SetOwnerKeyHash(v string) *UsageCounterUpsert {
	u.Set(usagecounter.FieldOwnerKeyHash, v)
	return u
}

// UpdateOwnerKeyHash sets the "owner_key_hash" field to the value that was provided on create.
func (u *UsageCounterUpsert) UpdateOwnerKeyHash() *UsageCounterUpsert {
	u.SetExcluded(usagecounter.FieldOwnerKeyHash)
	return u
}

// SetDay sets the "day" field.
func (u *UsageCounterUpsert) SetDay(v string) *UsageCounterUpsert {
	u.Set(usagecounter.FieldDay, v)
	return u
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *UsageCounterUpsert) UpdateDay() *UsageCounterUpsert {
	u.SetExcluded(usagecounter.FieldDay)
	return u
}

// SetTokensIn sets the "tokens_in" field.
func (u *UsageCounterUpsert) SetTokensIn(v int64) *UsageCounterUpsert {
	u.Set(usagecounter.FieldTokensIn, v)
	return u
}

// UpdateTokensIn sets the "tokens_in" field to the value that was provided on create.
func (u *UsageCounterUpsert) UpdateTokensIn() *UsageCounterUpsert {
	u.SetExcluded(usagecounter.FieldTokensIn)
	return u
}

// AddTokensIn adds v to the "tokens_in" field.
func (u *UsageCounterUpsert) AddTokensIn(v int64) *UsageCounterUpsert {
	u.Add(usagecounter.FieldTokensIn, v)
	return u
}

// SetTokensOut sets the "tokens_out" field.
func (u *UsageCounterUpsert) SetTokensOut(v int64) *UsageCounterUpsert {
	u.Set(usagecounter.FieldTokensOut, v)
	return u
}

// UpdateTokensOut sets the "tokens_out" field to the value that was provided on create.
func (u *UsageCounterUpsert) UpdateTokensOut() *UsageCounterUpsert {
	u.SetExcluded(usagecounter.FieldTokensOut)
	return u
}

// AddTokensOut adds v to the "tokens_out" field.
func (u *UsageCounterUpsert) AddTokensOut(v int64) *UsageCounterUpsert {
	u.Add(usagecounter.FieldTokensOut, v)
	return u
}

// SetCommandRuns sets the "command_runs" field.
func (u *UsageCounterUpsert) SetCommandRuns(v int64) *UsageCounterUpsert {
	u.Set(usagecounter.FieldCommandRuns, v)
	return u
}

// UpdateCommandRuns sets the "command_runs" field to the value that was provided on create.
func (u *UsageCounterUpsert) UpdateCommandRuns() *UsageCounterUpsert {
	u.SetExcluded(usagecounter.FieldCommandRuns)
	return u
}

// AddCommandRuns adds v to the "command_runs" field.
func (u *UsageCounterUpsert) AddCommandRuns(v int64) *UsageCounterUpsert {
	u.Add(usagecounter.FieldCommandRuns, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.UsageCounter.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UsageCounterUpsertOne) UpdateNewValues() *UsageCounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UsageCounter.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UsageCounterUpsertOne) Ignore() *UsageCounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UsageCounterUpsertOne) DoNothing() *UsageCounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UsageCounterCreate.OnConflict
// documentation for more info.
func (u *UsageCounterUpsertOne) Update(set func(*UsageCounterUpsert)) *UsageCounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UsageCounterUpsert{UpdateSet: update})
	}))
	return u
}

// SetOwnerKeyHash sets the "owner_key_hash" field.
func (u *UsageCounterUpsertOne) SetOwnerKeyHash(v string) *UsageCounterUpsertOne {
	return u.Update(func(s *UsageCounterUpsert) {
		s.SetOwnerKeyHash(v)
	})
}

// UpdateOwnerKeyHash sets the "owner_key_hash" field to the value that was provided on create.
func (u *UsageCounterUpsertOne) UpdateOwnerKeyHash() *UsageCounterUpsertOne {
	return u.Update(func(s *UsageCounterUpsert) {
		s.UpdateOwnerKeyHash()
	})
}

// SetDay sets the "day" field.
func (u *UsageCounterUpsertOne) SetDay(v string) *UsageCounterUpsertOne {
	return u.Update(func(s *UsageCounterUpsert) {
		s.SetDay(v)
	})
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *UsageCounterUpsertOne) UpdateDay() *UsageCounterUpsertOne {
	return u.Update(func(s *UsageCounterUpsert) {
		s.UpdateDay()
	})
}

// SetTokensIn sets the "tokens_in" field.
func (u *UsageCounterUpsertOne) SetTokensIn(v int64) *UsageCounterUpsertOne {
	return u.Update(func(s *UsageCounterUpsert) {
		s.SetTokensIn(v)
	})
}

// AddTokensIn adds v to the "tokens_in" field.
func (u *UsageCounterUpsertOne) AddTokensIn(v int64) *UsageCounterUpsertOne {
	return u.Update(func(s *UsageCounterUpsert) {
		s.AddTokensIn(v)
	})
}

// UpdateTokensIn sets the "tokens_in" field to the value that was provided on create.
func (u *UsageCounterUpsertOne) UpdateTokensIn() *UsageCounterUpsertOne {
	return u.Update(func(s *UsageCounterUpsert) {
		s.UpdateTokensIn()
	})
}

// SetTokensOut sets the "tokens_out" field.
func (u *UsageCounterUpsertOne) SetTokensOut(v int64) *UsageCounterUpsertOne {
	return u.Update(func(s *UsageCounterUpsert) {
		s.SetTokensOut(v)
	})
}

// AddTokensOut adds v to the "tokens_out" field.
func (u *UsageCounterUpsertOne) AddTokensOut(v int64) *UsageCounterUpsertOne {
	return u.Update(func(s *UsageCounterUpsert) {
		s.AddTokensOut(v)
	})
}

// UpdateTokensOut sets the "tokens_out" field to the value that was provided on create.
func (u *UsageCounterUpsertOne) UpdateTokensOut() *UsageCounterUpsertOne {
	return u.Update(func(s *UsageCounterUpsert) {
		s.UpdateTokensOut()
	})
}

// SetCommandRuns sets the "command_runs" field.
func (u *UsageCounterUpsertOne) SetCommandRuns(v int64) *UsageCounterUpsertOne {
	return u.Update(func(s *UsageCounterUpsert) {
		s.SetCommandRuns(v)
	})
}

// AddCommandRuns adds v to the "command_runs" field.
func (u *UsageCounterUpsertOne) AddCommandRuns(v int64) *UsageCounterUpsertOne {
	return u.Update(func(s *UsageCounterUpsert) {
		s.AddCommandRuns(v)
	})
}

// UpdateCommandRuns sets the "command_runs" field to the value that was provided on create.
func (u *UsageCounterUpsertOne) UpdateCommandRuns() *UsageCounterUpsertOne {
	return u.Update(func(s *UsageCounterUpsert) {
		s.UpdateCommandRuns()
	})
}

// Exec executes the query.
func (u *UsageCounterUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UsageCounterCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UsageCounterUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UsageCounterUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UsageCounterUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UsageCounterCreateBulk is the builder for creating many UsageCounter entities in bulk.
type UsageCounterCreateBulk struct {
	config
	err      error
	builders []*UsageCounterCreate
	conflict []sql.ConflictOption
}

// Save creates the UsageCounter entities in the database.
func (_c *UsageCounterCreateBulk) Save(ctx context.Context) ([]*UsageCounter, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UsageCounter, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UsageCounterMutation)
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
func (_c *UsageCounterCreateBulk) SaveX(ctx context.Context) []*UsageCounter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageCounterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageCounterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UsageCounter.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UsageCounterUpsert) {
//			SetOwnerKeyHash(v+v).
//		}).
//		Exec(ctx)
func (_c *UsageCounterCreateBulk) OnConflict(opts ...sql.ConflictOption) *UsageCounterUpsertBulk {
	_c.conflict = opts
	return &UsageCounterUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UsageCounter.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UsageCounterCreateBulk) OnConflictColumns(columns ...string) *UsageCounterUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UsageCounterUpsertBulk{
		create: _c,
	}
}

// UsageCounterUpsertBulk is the builder for "upsert"-ing
// a bulk of UsageCounter nodes.
type UsageCounterUpsertBulk struct {
	create *UsageCounterCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UsageCounter.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UsageCounterUpsertBulk) UpdateNewValues() *UsageCounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UsageCounter.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UsageCounterUpsertBulk) Ignore() *UsageCounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UsageCounterUpsertBulk) DoNothing() *UsageCounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UsageCounterCreateBulk.OnConflict
// documentation for more info.
func (u *UsageCounterUpsertBulk) Update(set func(*UsageCounterUpsert)) *UsageCounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UsageCounterUpsert{UpdateSet: update})
	}))
	return u
}

// SetOwnerKeyHash sets the "owner_key_hash" field.
func (u *UsageCounterUpsertBulk) SetOwnerKeyHash(v string) *UsageCounterUpsertBulk {
	return u.Update(func(s *UsageCounterUpsert) {
		s.SetOwnerKeyHash(v)
	})
}

// UpdateOwnerKeyHash sets the "owner_key_hash" field to the value that was provided on create.
func (u *UsageCounterUpsertBulk) UpdateOwnerKeyHash() *UsageCounterUpsertBulk {
	return u.Update(func(s *UsageCounterUpsert) {
		s.UpdateOwnerKeyHash()
	})
}

// SetDay sets the "day" field.
func (u *UsageCounterUpsertBulk) SetDay(v string) *UsageCounterUpsertBulk {
	return u.Update(func(s *UsageCounterUpsert) {
		s.SetDay(v)
	})
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *UsageCounterUpsertBulk) UpdateDay() *UsageCounterUpsertBulk {
	return u.Update(func(s *UsageCounterUpsert) {
		s.UpdateDay()
	})
}

// SetTokensIn sets the "tokens_in" field.
func (u *UsageCounterUpsertBulk) SetTokensIn(v int64) *UsageCounterUpsertBulk {
	return u.Update(func(s *UsageCounterUpsert) {
		s.SetTokensIn(v)
	})
}

// AddTokensIn adds v to the "tokens_in" field.
func (u *UsageCounterUpsertBulk) AddTokensIn(v int64) *UsageCounterUpsertBulk {
	return u.Update(func(s *UsageCounterUpsert) {
		s.AddTokensIn(v)
	})
}

// UpdateTokensIn sets the "tokens_in" field to the value that was provided on create.
func (u *UsageCounterUpsertBulk) UpdateTokensIn() *UsageCounterUpsertBulk {
	return u.Update(func(s *UsageCounterUpsert) {
		s.UpdateTokensIn()
	})
}

// SetTokensOut sets the "tokens_out" field.
func (u *UsageCounterUpsertBulk) SetTokensOut(v int64) *UsageCounterUpsertBulk {
	return u.Update(func(s *UsageCounterUpsert) {
		s.SetTokensOut(v)
	})
}

// AddTokensOut adds v to the "tokens_out" field.
func (u *UsageCounterUpsertBulk) AddTokensOut(v int64) *UsageCounterUpsertBulk {
	return u.Update(func(s *UsageCounterUpsert) {
		s.AddTokensOut(v)
	})
}

// UpdateTokensOut sets the "tokens_out" field to the value that was provided on create.
func (u *UsageCounterUpsertBulk) UpdateTokensOut() *UsageCounterUpsertBulk {
	return u.Update(func(s *UsageCounterUpsert) {
		s.UpdateTokensOut()
	})
}

// SetCommandRuns sets the "command_runs" field.
func (u *UsageCounterUpsertBulk) SetCommandRuns(v int64) *UsageCounterUpsertBulk {
	return u.Update(func(s *UsageCounterUpsert) {
		s.SetCommandRuns(v)
	})
}

// AddCommandRuns adds v to the "command_runs" field.
func (u *UsageCounterUpsertBulk) AddCommandRuns(v int64) *UsageCounterUpsertBulk {
	return u.Update(func(s *UsageCounterUpsert) {
		s.AddCommandRuns(v)
	})
}

// UpdateCommandRuns sets the "command_runs" field to the value that was provided on create.
func (u *UsageCounterUpsertBulk) UpdateCommandRuns() *UsageCounterUpsertBulk {
	return u.Update(func(s *UsageCounterUpsert) {
		s.UpdateCommandRuns()
	})
}

// Exec executes the query.
func (u *UsageCounterUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UsageCounterCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UsageCounterCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UsageCounterUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
