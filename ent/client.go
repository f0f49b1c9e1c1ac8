// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/adaptiq/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/adaptiq/ent/paramsnapshot"
	"github.com/abhisek/adaptiq/ent/scoreevent"
	"github.com/abhisek/adaptiq/ent/trainingrun"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ParamSnapshot is the client for interacting with the ParamSnapshot builders.
	ParamSnapshot *ParamSnapshotClient
	// ScoreEvent is the client for interacting with the ScoreEvent builders.
	ScoreEvent *ScoreEventClient
	// TrainingRun is the client for interacting with the TrainingRun builders.
	TrainingRun *TrainingRunClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ParamSnapshot = NewParamSnapshotClient(c.config)
	c.ScoreEvent = NewScoreEventClient(c.config)
	c.TrainingRun = NewTrainingRunClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		ParamSnapshot: NewParamSnapshotClient(cfg),
		ScoreEvent:    NewScoreEventClient(cfg),
		TrainingRun:   NewTrainingRunClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		ParamSnapshot: NewParamSnapshotClient(cfg),
		ScoreEvent:    NewScoreEventClient(cfg),
		TrainingRun:   NewTrainingRunClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ParamSnapshot.
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
	c.ParamSnapshot.Use(hooks...)
	c.ScoreEvent.Use(hooks...)
	c.TrainingRun.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ParamSnapshot.Intercept(interceptors...)
	c.ScoreEvent.Intercept(interceptors...)
	c.TrainingRun.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ParamSnapshotMutation:
		return c.ParamSnapshot.mutate(ctx, m)
	case *ScoreEventMutation:
		return c.ScoreEvent.mutate(ctx, m)
	case *TrainingRunMutation:
		return c.TrainingRun.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ParamSnapshotClient is a client for the ParamSnapshot schema.
type ParamSnapshotClient struct {
	config
}

// NewParamSnapshotClient returns a client for the ParamSnapshot from the given config.
func NewParamSnapshotClient(c config) *ParamSnapshotClient {
	return &ParamSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `paramsnapshot.Hooks(f(g(h())))`.
func (c *ParamSnapshotClient) Use(hooks ...Hook) {
	c.hooks.ParamSnapshot = append(c.hooks.ParamSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `paramsnapshot.Intercept(f(g(h())))`.
func (c *ParamSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.ParamSnapshot = append(c.inters.ParamSnapshot, interceptors...)
}

// Create returns a builder for creating a ParamSnapshot entity.
func (c *ParamSnapshotClient) Create() *ParamSnapshotCreate {
	mutation := newParamSnapshotMutation(c.config, OpCreate)
	return &ParamSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ParamSnapshot entities.
func (c *ParamSnapshotClient) CreateBulk(builders ...*ParamSnapshotCreate) *ParamSnapshotCreateBulk {
	return &ParamSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ParamSnapshotClient) MapCreateBulk(slice any, setFunc func(*ParamSnapshotCreate, int)) *ParamSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ParamSnapshotCreateBulk{err: fmt.Errorf("calling to ParamSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ParamSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ParamSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ParamSnapshot.
func (c *ParamSnapshotClient) Update() *ParamSnapshotUpdate {
	mutation := newParamSnapshotMutation(c.config, OpUpdate)
	return &ParamSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ParamSnapshotClient) UpdateOne(_m *ParamSnapshot) *ParamSnapshotUpdateOne {
	mutation := newParamSnapshotMutation(c.config, OpUpdateOne, withParamSnapshot(_m))
	return &ParamSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ParamSnapshotClient) UpdateOneID(id int) *ParamSnapshotUpdateOne {
	mutation := newParamSnapshotMutation(c.config, OpUpdateOne, withParamSnapshotID(id))
	return &ParamSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ParamSnapshot.
func (c *ParamSnapshotClient) Delete() *ParamSnapshotDelete {
	mutation := newParamSnapshotMutation(c.config, OpDelete)
	return &ParamSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ParamSnapshotClient) DeleteOne(_m *ParamSnapshot) *ParamSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ParamSnapshotClient) DeleteOneID(id int) *ParamSnapshotDeleteOne {
	builder := c.Delete().Where(paramsnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ParamSnapshotDeleteOne{builder}
}

// Query returns a query builder for ParamSnapshot.
func (c *ParamSnapshotClient) Query() *ParamSnapshotQuery {
	return &ParamSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeParamSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a ParamSnapshot entity by its id.
func (c *ParamSnapshotClient) Get(ctx context.Context, id int) (*ParamSnapshot, error) {
	return c.Query().Where(paramsnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ParamSnapshotClient) GetX(ctx context.Context, id int) *ParamSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ParamSnapshotClient) Hooks() []Hook {
	return c.hooks.ParamSnapshot
}

// Interceptors returns the client interceptors.
func (c *ParamSnapshotClient) Interceptors() []Interceptor {
	return c.inters.ParamSnapshot
}

func (c *ParamSnapshotClient) mutate(ctx context.Context, m *ParamSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ParamSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ParamSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ParamSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ParamSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ParamSnapshot mutation op: %q", m.Op())
	}
}

// ScoreEventClient is a client for the ScoreEvent schema.
type ScoreEventClient struct {
	config
}

// NewScoreEventClient returns a client for the ScoreEvent from the given config.
func NewScoreEventClient(c config) *ScoreEventClient {
	return &ScoreEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scoreevent.Hooks(f(g(h())))`.
func (c *ScoreEventClient) Use(hooks ...Hook) {
	c.hooks.ScoreEvent = append(c.hooks.ScoreEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scoreevent.Intercept(f(g(h())))`.
func (c *ScoreEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScoreEvent = append(c.inters.ScoreEvent, interceptors...)
}

// Create returns a builder for creating a ScoreEvent entity.
func (c *ScoreEventClient) Create() *ScoreEventCreate {
	mutation := newScoreEventMutation(c.config, OpCreate)
	return &ScoreEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScoreEvent entities.
func (c *ScoreEventClient) CreateBulk(builders ...*ScoreEventCreate) *ScoreEventCreateBulk {
	return &ScoreEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScoreEventClient) MapCreateBulk(slice any, setFunc func(*ScoreEventCreate, int)) *ScoreEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScoreEventCreateBulk{err: fmt.Errorf("calling to ScoreEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScoreEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScoreEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScoreEvent.
func (c *ScoreEventClient) Update() *ScoreEventUpdate {
	mutation := newScoreEventMutation(c.config, OpUpdate)
	return &ScoreEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScoreEventClient) UpdateOne(_m *ScoreEvent) *ScoreEventUpdateOne {
	mutation := newScoreEventMutation(c.config, OpUpdateOne, withScoreEvent(_m))
	return &ScoreEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScoreEventClient) UpdateOneID(id int) *ScoreEventUpdateOne {
	mutation := newScoreEventMutation(c.config, OpUpdateOne, withScoreEventID(id))
	return &ScoreEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScoreEvent.
func (c *ScoreEventClient) Delete() *ScoreEventDelete {
	mutation := newScoreEventMutation(c.config, OpDelete)
	return &ScoreEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScoreEventClient) DeleteOne(_m *ScoreEvent) *ScoreEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScoreEventClient) DeleteOneID(id int) *ScoreEventDeleteOne {
	builder := c.Delete().Where(scoreevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScoreEventDeleteOne{builder}
}

// Query returns a query builder for ScoreEvent.
func (c *ScoreEventClient) Query() *ScoreEventQuery {
	return &ScoreEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScoreEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ScoreEvent entity by its id.
func (c *ScoreEventClient) Get(ctx context.Context, id int) (*ScoreEvent, error) {
	return c.Query().Where(scoreevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScoreEventClient) GetX(ctx context.Context, id int) *ScoreEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScoreEventClient) Hooks() []Hook {
	return c.hooks.ScoreEvent
}

// Interceptors returns the client interceptors.
func (c *ScoreEventClient) Interceptors() []Interceptor {
	return c.inters.ScoreEvent
}

func (c *ScoreEventClient) mutate(ctx context.Context, m *ScoreEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScoreEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScoreEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScoreEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScoreEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScoreEvent mutation op: %q", m.Op())
	}
}

// TrainingRunClient is a client for the TrainingRun schema.
type TrainingRunClient struct {
	config
}

// NewTrainingRunClient returns a client for the TrainingRun from the given config.
func NewTrainingRunClient(c config) *TrainingRunClient {
	return &TrainingRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `trainingrun.Hooks(f(g(h())))`.
func (c *TrainingRunClient) Use(hooks ...Hook) {
	c.hooks.TrainingRun = append(c.hooks.TrainingRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `trainingrun.Intercept(f(g(h())))`.
func (c *TrainingRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.TrainingRun = append(c.inters.TrainingRun, interceptors...)
}

// Create returns a builder for creating a TrainingRun entity.
func (c *TrainingRunClient) Create() *TrainingRunCreate {
	mutation := newTrainingRunMutation(c.config, OpCreate)
	return &TrainingRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TrainingRun entities.
func (c *TrainingRunClient) CreateBulk(builders ...*TrainingRunCreate) *TrainingRunCreateBulk {
	return &TrainingRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TrainingRunClient) MapCreateBulk(slice any, setFunc func(*TrainingRunCreate, int)) *TrainingRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TrainingRunCreateBulk{err: fmt.Errorf("calling to TrainingRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TrainingRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TrainingRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TrainingRun.
func (c *TrainingRunClient) Update() *TrainingRunUpdate {
	mutation := newTrainingRunMutation(c.config, OpUpdate)
	return &TrainingRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TrainingRunClient) UpdateOne(_m *TrainingRun) *TrainingRunUpdateOne {
	mutation := newTrainingRunMutation(c.config, OpUpdateOne, withTrainingRun(_m))
	return &TrainingRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TrainingRunClient) UpdateOneID(id int) *TrainingRunUpdateOne {
	mutation := newTrainingRunMutation(c.config, OpUpdateOne, withTrainingRunID(id))
	return &TrainingRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TrainingRun.
func (c *TrainingRunClient) Delete() *TrainingRunDelete {
	mutation := newTrainingRunMutation(c.config, OpDelete)
	return &TrainingRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TrainingRunClient) DeleteOne(_m *TrainingRun) *TrainingRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TrainingRunClient) DeleteOneID(id int) *TrainingRunDeleteOne {
	builder := c.Delete().Where(trainingrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TrainingRunDeleteOne{builder}
}

// Query returns a query builder for TrainingRun.
func (c *TrainingRunClient) Query() *TrainingRunQuery {
	return &TrainingRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTrainingRun},
		inters: c.Interceptors(),
	}
}

// Get returns a TrainingRun entity by its id.
func (c *TrainingRunClient) Get(ctx context.Context, id int) (*TrainingRun, error) {
	return c.Query().Where(trainingrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TrainingRunClient) GetX(ctx context.Context, id int) *TrainingRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TrainingRunClient) Hooks() []Hook {
	return c.hooks.TrainingRun
}

// Interceptors returns the client interceptors.
func (c *TrainingRunClient) Interceptors() []Interceptor {
	return c.inters.TrainingRun
}

func (c *TrainingRunClient) mutate(ctx context.Context, m *TrainingRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TrainingRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TrainingRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TrainingRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TrainingRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TrainingRun mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ParamSnapshot, ScoreEvent, TrainingRun []ent.Hook
	}
	inters struct {
		ParamSnapshot, ScoreEvent, TrainingRun []ent.Interceptor
	}
)
