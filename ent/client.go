// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/forgeproject/forge/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeproject/forge/ent/artifact"
	"github.com/forgeproject/forge/ent/containersnapshot"
	"github.com/forgeproject/forge/ent/event"
	"github.com/forgeproject/forge/ent/oauthaccount"
	"github.com/forgeproject/forge/ent/project"
	"github.com/forgeproject/forge/ent/ratelimitbucket"
	"github.com/forgeproject/forge/ent/task"
	"github.com/forgeproject/forge/ent/taskfile"
	"github.com/forgeproject/forge/ent/usagecounter"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Artifact is the client for interacting with the Artifact builders.
	Artifact *ArtifactClient
	// ContainerSnapshot is the client for interacting with the ContainerSnapshot builders.
	ContainerSnapshot *ContainerSnapshotClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// OAuthAccount is the client for interacting with the OAuthAccount builders.
	OAuthAccount *OAuthAccountClient
	// Project is the client for interacting with the Project builders.
	Project *ProjectClient
	// RateLimitBucket is the client for interacting with the RateLimitBucket builders.
	RateLimitBucket *RateLimitBucketClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// TaskFile is the client for interacting with the TaskFile builders.
	TaskFile *TaskFileClient
	// UsageCounter is the client for interacting with the UsageCounter builders.
	UsageCounter *UsageCounterClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Artifact = NewArtifactClient(c.config)
	c.ContainerSnapshot = NewContainerSnapshotClient(c.config)
	c.Event = NewEventClient(c.config)
	c.OAuthAccount = NewOAuthAccountClient(c.config)
	c.Project = NewProjectClient(c.config)
	c.RateLimitBucket = NewRateLimitBucketClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.TaskFile = NewTaskFileClient(c.config)
	c.UsageCounter = NewUsageCounterClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		Artifact:          NewArtifactClient(cfg),
		ContainerSnapshot: NewContainerSnapshotClient(cfg),
		Event:             NewEventClient(cfg),
		OAuthAccount:      NewOAuthAccountClient(cfg),
		Project:           NewProjectClient(cfg),
		RateLimitBucket:   NewRateLimitBucketClient(cfg),
		Task:              NewTaskClient(cfg),
		TaskFile:          NewTaskFileClient(cfg),
		UsageCounter:      NewUsageCounterClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		Artifact:          NewArtifactClient(cfg),
		ContainerSnapshot: NewContainerSnapshotClient(cfg),
		Event:             NewEventClient(cfg),
		OAuthAccount:      NewOAuthAccountClient(cfg),
		Project:           NewProjectClient(cfg),
		RateLimitBucket:   NewRateLimitBucketClient(cfg),
		Task:              NewTaskClient(cfg),
		TaskFile:          NewTaskFileClient(cfg),
		UsageCounter:      NewUsageCounterClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Artifact.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Artifact, c.ContainerSnapshot, c.Event, c.OAuthAccount, c.Project,
		c.RateLimitBucket, c.Task, c.TaskFile, c.UsageCounter,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Artifact, c.ContainerSnapshot, c.Event, c.OAuthAccount, c.Project,
		c.RateLimitBucket, c.Task, c.TaskFile, c.UsageCounter,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ArtifactMutation:
		return c.Artifact.mutate(ctx, m)
	case *ContainerSnapshotMutation:
		return c.ContainerSnapshot.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *OAuthAccountMutation:
		return c.OAuthAccount.mutate(ctx, m)
	case *ProjectMutation:
		return c.Project.mutate(ctx, m)
	case *RateLimitBucketMutation:
		return c.RateLimitBucket.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *TaskFileMutation:
		return c.TaskFile.mutate(ctx, m)
	case *UsageCounterMutation:
		return c.UsageCounter.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ArtifactClient is a client for the Artifact schema.
type ArtifactClient struct {
	config
}

// NewArtifactClient returns a client for the Artifact from the given config.
func NewArtifactClient(c config) *ArtifactClient {
	return &ArtifactClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `artifact.Hooks(f(g(h())))`.
func (c *ArtifactClient) Use(hooks ...Hook) {
	c.hooks.Artifact = append(c.hooks.Artifact, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `artifact.Intercept(f(g(h())))`.
func (c *ArtifactClient) Intercept(interceptors ...Interceptor) {
	c.inters.Artifact = append(c.inters.Artifact, interceptors...)
}

// Create returns a builder for creating a Artifact entity.
func (c *ArtifactClient) Create() *ArtifactCreate {
	mutation := newArtifactMutation(c.config, OpCreate)
	return &ArtifactCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Artifact entities.
func (c *ArtifactClient) CreateBulk(builders ...*ArtifactCreate) *ArtifactCreateBulk {
	return &ArtifactCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ArtifactClient) MapCreateBulk(slice any, setFunc func(*ArtifactCreate, int)) *ArtifactCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ArtifactCreateBulk{err: fmt.Errorf("calling to ArtifactClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ArtifactCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ArtifactCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Artifact.
func (c *ArtifactClient) Update() *ArtifactUpdate {
	mutation := newArtifactMutation(c.config, OpUpdate)
	return &ArtifactUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ArtifactClient) UpdateOne(_m *Artifact) *ArtifactUpdateOne {
	mutation := newArtifactMutation(c.config, OpUpdateOne, withArtifact(_m))
	return &ArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ArtifactClient) UpdateOneID(id string) *ArtifactUpdateOne {
	mutation := newArtifactMutation(c.config, OpUpdateOne, withArtifactID(id))
	return &ArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Artifact.
func (c *ArtifactClient) Delete() *ArtifactDelete {
	mutation := newArtifactMutation(c.config, OpDelete)
	return &ArtifactDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ArtifactClient) DeleteOne(_m *Artifact) *ArtifactDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ArtifactClient) DeleteOneID(id string) *ArtifactDeleteOne {
	builder := c.Delete().Where(artifact.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ArtifactDeleteOne{builder}
}

// Query returns a query builder for Artifact.
func (c *ArtifactClient) Query() *ArtifactQuery {
	return &ArtifactQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeArtifact},
		inters: c.Interceptors(),
	}
}

// Get returns a Artifact entity by its id.
func (c *ArtifactClient) Get(ctx context.Context, id string) (*Artifact, error) {
	return c.Query().Where(artifact.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ArtifactClient) GetX(ctx context.Context, id string) *Artifact {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ArtifactClient) Hooks() []Hook {
	return c.hooks.Artifact
}

// Interceptors returns the client interceptors.
func (c *ArtifactClient) Interceptors() []Interceptor {
	return c.inters.Artifact
}

func (c *ArtifactClient) mutate(ctx context.Context, m *ArtifactMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ArtifactCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ArtifactUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ArtifactDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Artifact mutation op: %q", m.Op())
	}
}

// ContainerSnapshotClient is a client for the ContainerSnapshot schema.
type ContainerSnapshotClient struct {
	config
}

// NewContainerSnapshotClient returns a client for the ContainerSnapshot from the given config.
func NewContainerSnapshotClient(c config) *ContainerSnapshotClient {
	return &ContainerSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `containersnapshot.Hooks(f(g(h())))`.
func (c *ContainerSnapshotClient) Use(hooks ...Hook) {
	c.hooks.ContainerSnapshot = append(c.hooks.ContainerSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `containersnapshot.Intercept(f(g(h())))`.
func (c *ContainerSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContainerSnapshot = append(c.inters.ContainerSnapshot, interceptors...)
}

// Create returns a builder for creating a ContainerSnapshot entity.
func (c *ContainerSnapshotClient) Create() *ContainerSnapshotCreate {
	mutation := newContainerSnapshotMutation(c.config, OpCreate)
	return &ContainerSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContainerSnapshot entities.
func (c *ContainerSnapshotClient) CreateBulk(builders ...*ContainerSnapshotCreate) *ContainerSnapshotCreateBulk {
	return &ContainerSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContainerSnapshotClient) MapCreateBulk(slice any, setFunc func(*ContainerSnapshotCreate, int)) *ContainerSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContainerSnapshotCreateBulk{err: fmt.Errorf("calling to ContainerSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContainerSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContainerSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContainerSnapshot.
func (c *ContainerSnapshotClient) Update() *ContainerSnapshotUpdate {
	mutation := newContainerSnapshotMutation(c.config, OpUpdate)
	return &ContainerSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContainerSnapshotClient) UpdateOne(_m *ContainerSnapshot) *ContainerSnapshotUpdateOne {
	mutation := newContainerSnapshotMutation(c.config, OpUpdateOne, withContainerSnapshot(_m))
	return &ContainerSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContainerSnapshotClient) UpdateOneID(id int) *ContainerSnapshotUpdateOne {
	mutation := newContainerSnapshotMutation(c.config, OpUpdateOne, withContainerSnapshotID(id))
	return &ContainerSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContainerSnapshot.
func (c *ContainerSnapshotClient) Delete() *ContainerSnapshotDelete {
	mutation := newContainerSnapshotMutation(c.config, OpDelete)
	return &ContainerSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContainerSnapshotClient) DeleteOne(_m *ContainerSnapshot) *ContainerSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContainerSnapshotClient) DeleteOneID(id int) *ContainerSnapshotDeleteOne {
	builder := c.Delete().Where(containersnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContainerSnapshotDeleteOne{builder}
}

// Query returns a query builder for ContainerSnapshot.
func (c *ContainerSnapshotClient) Query() *ContainerSnapshotQuery {
	return &ContainerSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContainerSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a ContainerSnapshot entity by its id.
func (c *ContainerSnapshotClient) Get(ctx context.Context, id int) (*ContainerSnapshot, error) {
	return c.Query().Where(containersnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContainerSnapshotClient) GetX(ctx context.Context, id int) *ContainerSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ContainerSnapshotClient) Hooks() []Hook {
	return c.hooks.ContainerSnapshot
}

// Interceptors returns the client interceptors.
func (c *ContainerSnapshotClient) Interceptors() []Interceptor {
	return c.inters.ContainerSnapshot
}

func (c *ContainerSnapshotClient) mutate(ctx context.Context, m *ContainerSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContainerSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContainerSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContainerSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContainerSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ContainerSnapshot mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// OAuthAccountClient is a client for the OAuthAccount schema.
type OAuthAccountClient struct {
	config
}

// NewOAuthAccountClient returns a client for the OAuthAccount from the given config.
func NewOAuthAccountClient(c config) *OAuthAccountClient {
	return &OAuthAccountClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `oauthaccount.Hooks(f(g(h())))`.
func (c *OAuthAccountClient) Use(hooks ...Hook) {
	c.hooks.OAuthAccount = append(c.hooks.OAuthAccount, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `oauthaccount.Intercept(f(g(h())))`.
func (c *OAuthAccountClient) Intercept(interceptors ...Interceptor) {
	c.inters.OAuthAccount = append(c.inters.OAuthAccount, interceptors...)
}

// Create returns a builder for creating a OAuthAccount entity.
func (c *OAuthAccountClient) Create() *OAuthAccountCreate {
	mutation := newOAuthAccountMutation(c.config, OpCreate)
	return &OAuthAccountCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OAuthAccount entities.
func (c *OAuthAccountClient) CreateBulk(builders ...*OAuthAccountCreate) *OAuthAccountCreateBulk {
	return &OAuthAccountCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OAuthAccountClient) MapCreateBulk(slice any, setFunc func(*OAuthAccountCreate, int)) *OAuthAccountCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OAuthAccountCreateBulk{err: fmt.Errorf("calling to OAuthAccountClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OAuthAccountCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OAuthAccountCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OAuthAccount.
func (c *OAuthAccountClient) Update() *OAuthAccountUpdate {
	mutation := newOAuthAccountMutation(c.config, OpUpdate)
	return &OAuthAccountUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OAuthAccountClient) UpdateOne(_m *OAuthAccount) *OAuthAccountUpdateOne {
	mutation := newOAuthAccountMutation(c.config, OpUpdateOne, withOAuthAccount(_m))
	return &OAuthAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OAuthAccountClient) UpdateOneID(id string) *OAuthAccountUpdateOne {
	mutation := newOAuthAccountMutation(c.config, OpUpdateOne, withOAuthAccountID(id))
	return &OAuthAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OAuthAccount.
func (c *OAuthAccountClient) Delete() *OAuthAccountDelete {
	mutation := newOAuthAccountMutation(c.config, OpDelete)
	return &OAuthAccountDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OAuthAccountClient) DeleteOne(_m *OAuthAccount) *OAuthAccountDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OAuthAccountClient) DeleteOneID(id string) *OAuthAccountDeleteOne {
	builder := c.Delete().Where(oauthaccount.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OAuthAccountDeleteOne{builder}
}

// Query returns a query builder for OAuthAccount.
func (c *OAuthAccountClient) Query() *OAuthAccountQuery {
	return &OAuthAccountQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOAuthAccount},
		inters: c.Interceptors(),
	}
}

// Get returns a OAuthAccount entity by its id.
func (c *OAuthAccountClient) Get(ctx context.Context, id string) (*OAuthAccount, error) {
	return c.Query().Where(oauthaccount.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OAuthAccountClient) GetX(ctx context.Context, id string) *OAuthAccount {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OAuthAccountClient) Hooks() []Hook {
	return c.hooks.OAuthAccount
}

// Interceptors returns the client interceptors.
func (c *OAuthAccountClient) Interceptors() []Interceptor {
	return c.inters.OAuthAccount
}

func (c *OAuthAccountClient) mutate(ctx context.Context, m *OAuthAccountMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OAuthAccountCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OAuthAccountUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OAuthAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OAuthAccountDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OAuthAccount mutation op: %q", m.Op())
	}
}

// ProjectClient is a client for the Project schema.
type ProjectClient struct {
	config
}

// NewProjectClient returns a client for the Project from the given config.
func NewProjectClient(c config) *ProjectClient {
	return &ProjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `project.Hooks(f(g(h())))`.
func (c *ProjectClient) Use(hooks ...Hook) {
	c.hooks.Project = append(c.hooks.Project, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `project.Intercept(f(g(h())))`.
func (c *ProjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Project = append(c.inters.Project, interceptors...)
}

// Create returns a builder for creating a Project entity.
func (c *ProjectClient) Create() *ProjectCreate {
	mutation := newProjectMutation(c.config, OpCreate)
	return &ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Project entities.
func (c *ProjectClient) CreateBulk(builders ...*ProjectCreate) *ProjectCreateBulk {
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectClient) MapCreateBulk(slice any, setFunc func(*ProjectCreate, int)) *ProjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectCreateBulk{err: fmt.Errorf("calling to ProjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Project.
func (c *ProjectClient) Update() *ProjectUpdate {
	mutation := newProjectMutation(c.config, OpUpdate)
	return &ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectClient) UpdateOne(_m *Project) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProject(_m))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectClient) UpdateOneID(id string) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProjectID(id))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Project.
func (c *ProjectClient) Delete() *ProjectDelete {
	mutation := newProjectMutation(c.config, OpDelete)
	return &ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectClient) DeleteOne(_m *Project) *ProjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectClient) DeleteOneID(id string) *ProjectDeleteOne {
	builder := c.Delete().Where(project.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectDeleteOne{builder}
}

// Query returns a query builder for Project.
func (c *ProjectClient) Query() *ProjectQuery {
	return &ProjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProject},
		inters: c.Interceptors(),
	}
}

// Get returns a Project entity by its id.
func (c *ProjectClient) Get(ctx context.Context, id string) (*Project, error) {
	return c.Query().Where(project.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectClient) GetX(ctx context.Context, id string) *Project {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProjectClient) Hooks() []Hook {
	return c.hooks.Project
}

// Interceptors returns the client interceptors.
func (c *ProjectClient) Interceptors() []Interceptor {
	return c.inters.Project
}

func (c *ProjectClient) mutate(ctx context.Context, m *ProjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Project mutation op: %q", m.Op())
	}
}

// RateLimitBucketClient is a client for the RateLimitBucket schema.
type RateLimitBucketClient struct {
	config
}

// NewRateLimitBucketClient returns a client for the RateLimitBucket from the given config.
func NewRateLimitBucketClient(c config) *RateLimitBucketClient {
	return &RateLimitBucketClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ratelimitbucket.Hooks(f(g(h())))`.
func (c *RateLimitBucketClient) Use(hooks ...Hook) {
	c.hooks.RateLimitBucket = append(c.hooks.RateLimitBucket, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ratelimitbucket.Intercept(f(g(h())))`.
func (c *RateLimitBucketClient) Intercept(interceptors ...Interceptor) {
	c.inters.RateLimitBucket = append(c.inters.RateLimitBucket, interceptors...)
}

// Create returns a builder for creating a RateLimitBucket entity.
func (c *RateLimitBucketClient) Create() *RateLimitBucketCreate {
	mutation := newRateLimitBucketMutation(c.config, OpCreate)
	return &RateLimitBucketCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RateLimitBucket entities.
func (c *RateLimitBucketClient) CreateBulk(builders ...*RateLimitBucketCreate) *RateLimitBucketCreateBulk {
	return &RateLimitBucketCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RateLimitBucketClient) MapCreateBulk(slice any, setFunc func(*RateLimitBucketCreate, int)) *RateLimitBucketCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RateLimitBucketCreateBulk{err: fmt.Errorf("calling to RateLimitBucketClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RateLimitBucketCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RateLimitBucketCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RateLimitBucket.
func (c *RateLimitBucketClient) Update() *RateLimitBucketUpdate {
	mutation := newRateLimitBucketMutation(c.config, OpUpdate)
	return &RateLimitBucketUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RateLimitBucketClient) UpdateOne(_m *RateLimitBucket) *RateLimitBucketUpdateOne {
	mutation := newRateLimitBucketMutation(c.config, OpUpdateOne, withRateLimitBucket(_m))
	return &RateLimitBucketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RateLimitBucketClient) UpdateOneID(id int) *RateLimitBucketUpdateOne {
	mutation := newRateLimitBucketMutation(c.config, OpUpdateOne, withRateLimitBucketID(id))
	return &RateLimitBucketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RateLimitBucket.
func (c *RateLimitBucketClient) Delete() *RateLimitBucketDelete {
	mutation := newRateLimitBucketMutation(c.config, OpDelete)
	return &RateLimitBucketDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RateLimitBucketClient) DeleteOne(_m *RateLimitBucket) *RateLimitBucketDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RateLimitBucketClient) DeleteOneID(id int) *RateLimitBucketDeleteOne {
	builder := c.Delete().Where(ratelimitbucket.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RateLimitBucketDeleteOne{builder}
}

// Query returns a query builder for RateLimitBucket.
func (c *RateLimitBucketClient) Query() *RateLimitBucketQuery {
	return &RateLimitBucketQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRateLimitBucket},
		inters: c.Interceptors(),
	}
}

// Get returns a RateLimitBucket entity by its id.
func (c *RateLimitBucketClient) Get(ctx context.Context, id int) (*RateLimitBucket, error) {
	return c.Query().Where(ratelimitbucket.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RateLimitBucketClient) GetX(ctx context.Context, id int) *RateLimitBucket {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RateLimitBucketClient) Hooks() []Hook {
	return c.hooks.RateLimitBucket
}

// Interceptors returns the client interceptors.
func (c *RateLimitBucketClient) Interceptors() []Interceptor {
	return c.inters.RateLimitBucket
}

func (c *RateLimitBucketClient) mutate(ctx context.Context, m *RateLimitBucketMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RateLimitBucketCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RateLimitBucketUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RateLimitBucketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RateLimitBucketDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RateLimitBucket mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id string) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id string) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id string) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id string) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// TaskFileClient is a client for the TaskFile schema.
type TaskFileClient struct {
	config
}

// NewTaskFileClient returns a client for the TaskFile from the given config.
func NewTaskFileClient(c config) *TaskFileClient {
	return &TaskFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taskfile.Hooks(f(g(h())))`.
func (c *TaskFileClient) Use(hooks ...Hook) {
	c.hooks.TaskFile = append(c.hooks.TaskFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taskfile.Intercept(f(g(h())))`.
func (c *TaskFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskFile = append(c.inters.TaskFile, interceptors...)
}

// Create returns a builder for creating a TaskFile entity.
func (c *TaskFileClient) Create() *TaskFileCreate {
	mutation := newTaskFileMutation(c.config, OpCreate)
	return &TaskFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskFile entities.
func (c *TaskFileClient) CreateBulk(builders ...*TaskFileCreate) *TaskFileCreateBulk {
	return &TaskFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskFileClient) MapCreateBulk(slice any, setFunc func(*TaskFileCreate, int)) *TaskFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskFileCreateBulk{err: fmt.Errorf("calling to TaskFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskFile.
func (c *TaskFileClient) Update() *TaskFileUpdate {
	mutation := newTaskFileMutation(c.config, OpUpdate)
	return &TaskFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskFileClient) UpdateOne(_m *TaskFile) *TaskFileUpdateOne {
	mutation := newTaskFileMutation(c.config, OpUpdateOne, withTaskFile(_m))
	return &TaskFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskFileClient) UpdateOneID(id int) *TaskFileUpdateOne {
	mutation := newTaskFileMutation(c.config, OpUpdateOne, withTaskFileID(id))
	return &TaskFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskFile.
func (c *TaskFileClient) Delete() *TaskFileDelete {
	mutation := newTaskFileMutation(c.config, OpDelete)
	return &TaskFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskFileClient) DeleteOne(_m *TaskFile) *TaskFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskFileClient) DeleteOneID(id int) *TaskFileDeleteOne {
	builder := c.Delete().Where(taskfile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskFileDeleteOne{builder}
}

// Query returns a query builder for TaskFile.
func (c *TaskFileClient) Query() *TaskFileQuery {
	return &TaskFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskFile},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskFile entity by its id.
func (c *TaskFileClient) Get(ctx context.Context, id int) (*TaskFile, error) {
	return c.Query().Where(taskfile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskFileClient) GetX(ctx context.Context, id int) *TaskFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TaskFileClient) Hooks() []Hook {
	return c.hooks.TaskFile
}

// Interceptors returns the client interceptors.
func (c *TaskFileClient) Interceptors() []Interceptor {
	return c.inters.TaskFile
}

func (c *TaskFileClient) mutate(ctx context.Context, m *TaskFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskFile mutation op: %q", m.Op())
	}
}

// UsageCounterClient is a client for the UsageCounter schema.
type UsageCounterClient struct {
	config
}

// NewUsageCounterClient returns a client for the UsageCounter from the given config.
func NewUsageCounterClient(c config) *UsageCounterClient {
	return &UsageCounterClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usagecounter.Hooks(f(g(h())))`.
func (c *UsageCounterClient) Use(hooks ...Hook) {
	c.hooks.UsageCounter = append(c.hooks.UsageCounter, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usagecounter.Intercept(f(g(h())))`.
func (c *UsageCounterClient) Intercept(interceptors ...Interceptor) {
	c.inters.UsageCounter = append(c.inters.UsageCounter, interceptors...)
}

// Create returns a builder for creating a UsageCounter entity.
func (c *UsageCounterClient) Create() *UsageCounterCreate {
	mutation := newUsageCounterMutation(c.config, OpCreate)
	return &UsageCounterCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UsageCounter entities.
func (c *UsageCounterClient) CreateBulk(builders ...*UsageCounterCreate) *UsageCounterCreateBulk {
	return &UsageCounterCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UsageCounterClient) MapCreateBulk(slice any, setFunc func(*UsageCounterCreate, int)) *UsageCounterCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UsageCounterCreateBulk{err: fmt.Errorf("calling to UsageCounterClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UsageCounterCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UsageCounterCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UsageCounter.
func (c *UsageCounterClient) Update() *UsageCounterUpdate {
	mutation := newUsageCounterMutation(c.config, OpUpdate)
	return &UsageCounterUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UsageCounterClient) UpdateOne(_m *UsageCounter) *UsageCounterUpdateOne {
	mutation := newUsageCounterMutation(c.config, OpUpdateOne, withUsageCounter(_m))
	return &UsageCounterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UsageCounterClient) UpdateOneID(id int) *UsageCounterUpdateOne {
	mutation := newUsageCounterMutation(c.config, OpUpdateOne, withUsageCounterID(id))
	return &UsageCounterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UsageCounter.
func (c *UsageCounterClient) Delete() *UsageCounterDelete {
	mutation := newUsageCounterMutation(c.config, OpDelete)
	return &UsageCounterDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UsageCounterClient) DeleteOne(_m *UsageCounter) *UsageCounterDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UsageCounterClient) DeleteOneID(id int) *UsageCounterDeleteOne {
	builder := c.Delete().Where(usagecounter.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UsageCounterDeleteOne{builder}
}

// Query returns a query builder for UsageCounter.
func (c *UsageCounterClient) Query() *UsageCounterQuery {
	return &UsageCounterQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUsageCounter},
		inters: c.Interceptors(),
	}
}

// Get returns a UsageCounter entity by its id.
func (c *UsageCounterClient) Get(ctx context.Context, id int) (*UsageCounter, error) {
	return c.Query().Where(usagecounter.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UsageCounterClient) GetX(ctx context.Context, id int) *UsageCounter {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UsageCounterClient) Hooks() []Hook {
	return c.hooks.UsageCounter
}

// Interceptors returns the client interceptors.
func (c *UsageCounterClient) Interceptors() []Interceptor {
	return c.inters.UsageCounter
}

func (c *UsageCounterClient) mutate(ctx context.Context, m *UsageCounterMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UsageCounterCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UsageCounterUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UsageCounterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UsageCounterDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UsageCounter mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Artifact, ContainerSnapshot, Event, OAuthAccount, Project, RateLimitBucket,
		Task, TaskFile, UsageCounter []ent.Hook
	}
	inters struct {
		Artifact, ContainerSnapshot, Event, OAuthAccount, Project, RateLimitBucket,
		Task, TaskFile, UsageCounter []ent.Interceptor
	}
)
