// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeproject/forge/ent/oauthaccount"
)

// OAuthAccountCreate is the builder for creating a OAuthAccount entity.
type OAuthAccountCreate struct {
	config
	mutation *OAuthAccountMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProvider sets the "provider" field.
func (_c *OAuthAccountCreate) SetProvider(v string) *OAuthAccountCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *OAuthAccountCreate) SetSubject(v string) *OAuthAccountCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetOwnerKeyHash sets the "owner_key_hash" field.
func (_c *OAuthAccountCreate) SetOwnerKeyHash(v string) *OAuthAccountCreate {
	_c.mutation.SetOwnerKeyHash(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *OAuthAccountCreate) SetEmail(v string) *OAuthAccountCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *OAuthAccountCreate) SetNillableEmail(v *string) *OAuthAccountCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OAuthAccountCreate) SetCreatedAt(v time.Time) *OAuthAccountCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OAuthAccountCreate) SetNillableCreatedAt(v *time.Time) *OAuthAccountCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OAuthAccountCreate) SetID(v string) *OAuthAccountCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the OAuthAccountMutation object of the builder.
func (_c *OAuthAccountCreate) Mutation() *OAuthAccountMutation {
	return _c.mutation
}

// Save creates the OAuthAccount in the database.
func (_c *OAuthAccountCreate) Save(ctx context.Context) (*OAuthAccount, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OAuthAccountCreate) SaveX(ctx context.Context) *OAuthAccount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OAuthAccountCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OAuthAccountCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OAuthAccountCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := oauthaccount.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OAuthAccountCreate) check() error {
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "OAuthAccount.provider"`)}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "OAuthAccount.subject"`)}
	}
	if _, ok := _c.mutation.OwnerKeyHash(); !ok {
		return &ValidationError{Name: "owner_key_hash", err: errors.New(`ent: missing required field "OAuthAccount.owner_key_hash"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OAuthAccount.created_at"`)}
	}
	return nil
}

func (_c *OAuthAccountCreate) sqlSave(ctx context.Context) (*OAuthAccount, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected OAuthAccount.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OAuthAccountCreate) createSpec() (*OAuthAccount, *sqlgraph.CreateSpec) {
	var (
		_node = &OAuthAccount{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(oauthaccount.Table, sqlgraph.NewFieldSpec(oauthaccount.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(oauthaccount.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(oauthaccount.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.OwnerKeyHash(); ok {
		_spec.SetField(oauthaccount.FieldOwnerKeyHash, field.TypeString, value)
		_node.OwnerKeyHash = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(oauthaccount.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(oauthaccount.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OAuthAccount.Create().
//		SetProvider(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OAuthAccountUpsert) {
//			SetProvider(v+v).
//		}).
//		Exec(ctx)
func (_c *OAuthAccountCreate) OnConflict(opts ...sql.ConflictOption) *OAuthAccountUpsertOne {
	_c.conflict = opts
	return &OAuthAccountUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OAuthAccount.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OAuthAccountCreate) OnConflictColumns(columns ...string) *OAuthAccountUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OAuthAccountUpsertOne{
		create: _c,
	}
}

type (
	// OAuthAccountUpsertOne is the builder for "upsert"-ing
	//  one OAuthAccount node.
	OAuthAccountUpsertOne struct {
		create *OAuthAccountCreate
	}

	// OAuthAccountUpsert is the "OnConflict" setter.
	OAuthAccountUpsert struct {
		*sql.UpdateSet
	}
)

// SetProvider sets the "provider" field.
func (u *OAuthAccountUpsert) SetProvider(v string) *OAuthAccountUpsert {
	u.Set(oauthaccount.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *OAuthAccountUpsert) UpdateProvider() *OAuthAccountUpsert {
	u.SetExcluded(oauthaccount.FieldProvider)
	return u
}

// SetSubject sets the "subject" field.
func (u *OAuthAccountUpsert) SetSubject(v string) *OAuthAccountUpsert {
	u.Set(oauthaccount.FieldSubject, v)
	return u
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *OAuthAccountUpsert) UpdateSubject() *OAuthAccountUpsert {
	u.SetExcluded(oauthaccount.FieldSubject)
	return u
}

// SetOwnerKeyHash sets the "owner_key_hash" field.
func (u *OAuthAccountUpsert) SetOwnerKeyHash(v string) *OAuthAccountUpsert {
	u.Set(oauthaccount.FieldOwnerKeyHash, v)
	return u
}

// UpdateOwnerKeyHash sets the "owner_key_hash" field to the value that was provided on create.
func (u *OAuthAccountUpsert) UpdateOwnerKeyHash() *OAuthAccountUpsert {
	u.SetExcluded(oauthaccount.FieldOwnerKeyHash)
	return u
}

// SetEmail sets the "email" field.
func (u *OAuthAccountUpsert) SetEmail(v string) *OAuthAccountUpsert {
	u.Set(oauthaccount.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *OAuthAccountUpsert) UpdateEmail() *OAuthAccountUpsert {
	u.SetExcluded(oauthaccount.FieldEmail)
	return u
}

// ClearEmail clears the value of the "email" field.
func (u *OAuthAccountUpsert) ClearEmail() *OAuthAccountUpsert {
	u.SetNull(oauthaccount.FieldEmail)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *OAuthAccountUpsert) SetCreatedAt(v time.Time) *OAuthAccountUpsert {
	u.Set(oauthaccount.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *OAuthAccountUpsert) UpdateCreatedAt() *OAuthAccountUpsert {
	u.SetExcluded(oauthaccount.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.OAuthAccount.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(oauthaccount.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OAuthAccountUpsertOne) UpdateNewValues() *OAuthAccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(oauthaccount.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OAuthAccount.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OAuthAccountUpsertOne) Ignore() *OAuthAccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OAuthAccountUpsertOne) DoNothing() *OAuthAccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OAuthAccountCreate.OnConflict
// documentation for more info.
func (u *OAuthAccountUpsertOne) Update(set func(*OAuthAccountUpsert)) *OAuthAccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OAuthAccountUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *OAuthAccountUpsertOne) SetProvider(v string) *OAuthAccountUpsertOne {
	return u.Update(func(s *OAuthAccountUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *OAuthAccountUpsertOne) UpdateProvider() *OAuthAccountUpsertOne {
	return u.Update(func(s *OAuthAccountUpsert) {
		s.UpdateProvider()
	})
}

// SetSubject sets the "subject" field.
func (u *OAuthAccountUpsertOne) SetSubject(v string) *OAuthAccountUpsertOne {
	return u.Update(func(s *OAuthAccountUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *OAuthAccountUpsertOne) UpdateSubject() *OAuthAccountUpsertOne {
	return u.Update(func(s *OAuthAccountUpsert) {
		s.UpdateSubject()
	})
}

// SetOwnerKeyHash sets the "owner_key_hash" field.
func (u *OAuthAccountUpsertOne) SetOwnerKeyHash(v string) *OAuthAccountUpsertOne {
	return u.Update(func(s *OAuthAccountUpsert) {
		s.SetOwnerKeyHash(v)
	})
}

// UpdateOwnerKeyHash sets the "owner_key_hash" field to the value that was provided on create.
func (u *OAuthAccountUpsertOne) UpdateOwnerKeyHash() *OAuthAccountUpsertOne {
	return u.Update(func(s *OAuthAccountUpsert) {
		s.UpdateOwnerKeyHash()
	})
}

// SetEmail sets the "email" field.
func (u *OAuthAccountUpsertOne) SetEmail(v string) *OAuthAccountUpsertOne {
	return u.Update(func(s *OAuthAccountUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *OAuthAccountUpsertOne) UpdateEmail() *OAuthAccountUpsertOne {
	return u.Update(func(s *OAuthAccountUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *OAuthAccountUpsertOne) ClearEmail() *OAuthAccountUpsertOne {
	return u.Update(func(s *OAuthAccountUpsert) {
		s.ClearEmail()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *OAuthAccountUpsertOne) SetCreatedAt(v time.Time) *OAuthAccountUpsertOne {
	return u.Update(func(s *OAuthAccountUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *OAuthAccountUpsertOne) UpdateCreatedAt() *OAuthAccountUpsertOne {
	return u.Update(func(s *OAuthAccountUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *OAuthAccountUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OAuthAccountCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OAuthAccountUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OAuthAccountUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: OAuthAccountUpsertOne.ID is not supported by MySQL driver. Use OAuthAccountUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OAuthAccountUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OAuthAccountCreateBulk is the builder for creating many OAuthAccount entities in bulk.
type OAuthAccountCreateBulk struct {
	config
	err      error
	builders []*OAuthAccountCreate
	conflict []sql.ConflictOption
}

// Save creates the OAuthAccount entities in the database.
func (_c *OAuthAccountCreateBulk) Save(ctx context.Context) ([]*OAuthAccount, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OAuthAccount, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OAuthAccountMutation)
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
func (_c *OAuthAccountCreateBulk) SaveX(ctx context.Context) []*OAuthAccount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OAuthAccountCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OAuthAccountCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OAuthAccount.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OAuthAccountUpsert) {
//			SetProvider(v+v).
//		}).
//		Exec(ctx)
func (_c *OAuthAccountCreateBulk) OnConflict(opts ...sql.ConflictOption) *OAuthAccountUpsertBulk {
	_c.conflict = opts
	return &OAuthAccountUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OAuthAccount.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OAuthAccountCreateBulk) OnConflictColumns(columns ...string) *OAuthAccountUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OAuthAccountUpsertBulk{
		create: _c,
	}
}

// OAuthAccountUpsertBulk is the builder for "upsert"-ing
// a bulk of OAuthAccount nodes.
type OAuthAccountUpsertBulk struct {
	create *OAuthAccountCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.OAuthAccount.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(oauthaccount.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OAuthAccountUpsertBulk) UpdateNewValues() *OAuthAccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(oauthaccount.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OAuthAccount.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OAuthAccountUpsertBulk) Ignore() *OAuthAccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OAuthAccountUpsertBulk) DoNothing() *OAuthAccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OAuthAccountCreateBulk.OnConflict
// documentation for more info.
func (u *OAuthAccountUpsertBulk) Update(set func(*OAuthAccountUpsert)) *OAuthAccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OAuthAccountUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *OAuthAccountUpsertBulk) SetProvider(v string) *OAuthAccountUpsertBulk {
	return u.Update(func(s *OAuthAccountUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *OAuthAccountUpsertBulk) UpdateProvider() *OAuthAccountUpsertBulk {
	return u.Update(func(s *OAuthAccountUpsert) {
		s.UpdateProvider()
	})
}

// SetSubject sets the "subject" field.
func (u *OAuthAccountUpsertBulk) SetSubject(v string) *OAuthAccountUpsertBulk {
	return u.Update(func(s *OAuthAccountUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *OAuthAccountUpsertBulk) UpdateSubject() *OAuthAccountUpsertBulk {
	return u.Update(func(s *OAuthAccountUpsert) {
		s.UpdateSubject()
	})
}

// SetOwnerKeyHash sets the "owner_key_hash" field.
func (u *OAuthAccountUpsertBulk) SetOwnerKeyHash(v string) *OAuthAccountUpsertBulk {
	return u.Update(func(s *OAuthAccountUpsert) {
		s.SetOwnerKeyHash(v)
	})
}

// UpdateOwnerKeyHash sets the "owner_key_hash" field to the value that was provided on create.
func (u *OAuthAccountUpsertBulk) UpdateOwnerKeyHash() *OAuthAccountUpsertBulk {
	return u.Update(func(s *OAuthAccountUpsert) {
		s.UpdateOwnerKeyHash()
	})
}

// SetEmail sets the "email" field.
func (u *OAuthAccountUpsertBulk) SetEmail(v string) *OAuthAccountUpsertBulk {
	return u.Update(func(s *OAuthAccountUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *OAuthAccountUpsertBulk) UpdateEmail() *OAuthAccountUpsertBulk {
	return u.Update(func(s *OAuthAccountUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *OAuthAccountUpsertBulk) ClearEmail() *OAuthAccountUpsertBulk {
	return u.Update(func(s *OAuthAccountUpsert) {
		s.ClearEmail()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *OAuthAccountUpsertBulk) SetCreatedAt(v time.Time) *OAuthAccountUpsertBulk {
	return u.Update(func(s *OAuthAccountUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *OAuthAccountUpsertBulk) UpdateCreatedAt() *OAuthAccountUpsertBulk {
	return u.Update(func(s *OAuthAccountUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *OAuthAccountUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the OAuthAccountCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OAuthAccountCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OAuthAccountUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
