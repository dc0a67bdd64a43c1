// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/mnemonic-nexus/mnx/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/mnemonic-nexus/mnx/ent/deadletter"
	"github.com/mnemonic-nexus/mnx/ent/emocurrent"
	"github.com/mnemonic-nexus/mnx/ent/emohistory"
	"github.com/mnemonic-nexus/mnx/ent/emolink"
	"github.com/mnemonic-nexus/mnx/ent/graphedge"
	"github.com/mnemonic-nexus/mnx/ent/graphnode"
	"github.com/mnemonic-nexus/mnx/ent/note"
	"github.com/mnemonic-nexus/mnx/ent/notelink"
	"github.com/mnemonic-nexus/mnx/ent/notetag"
	"github.com/mnemonic-nexus/mnx/ent/outboxentry"
	"github.com/mnemonic-nexus/mnx/ent/watermark"
	"github.com/mnemonic-nexus/mnx/ent/worldevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// DeadLetter is the client for interacting with the DeadLetter builders.
	DeadLetter *DeadLetterClient
	// EmoCurrent is the client for interacting with the EmoCurrent builders.
	EmoCurrent *EmoCurrentClient
	// EmoHistory is the client for interacting with the EmoHistory builders.
	EmoHistory *EmoHistoryClient
	// EmoLink is the client for interacting with the EmoLink builders.
	EmoLink *EmoLinkClient
	// GraphEdge is the client for interacting with the GraphEdge builders.
	GraphEdge *GraphEdgeClient
	// GraphNode is the client for interacting with the GraphNode builders.
	GraphNode *GraphNodeClient
	// Note is the client for interacting with the Note builders.
	Note *NoteClient
	// NoteLink is the client for interacting with the NoteLink builders.
	NoteLink *NoteLinkClient
	// NoteTag is the client for interacting with the NoteTag builders.
	NoteTag *NoteTagClient
	// OutboxEntry is the client for interacting with the OutboxEntry builders.
	OutboxEntry *OutboxEntryClient
	// Watermark is the client for interacting with the Watermark builders.
	Watermark *WatermarkClient
	// WorldEvent is the client for interacting with the WorldEvent builders.
	WorldEvent *WorldEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.DeadLetter = NewDeadLetterClient(c.config)
	c.EmoCurrent = NewEmoCurrentClient(c.config)
	c.EmoHistory = NewEmoHistoryClient(c.config)
	c.EmoLink = NewEmoLinkClient(c.config)
	c.GraphEdge = NewGraphEdgeClient(c.config)
	c.GraphNode = NewGraphNodeClient(c.config)
	c.Note = NewNoteClient(c.config)
	c.NoteLink = NewNoteLinkClient(c.config)
	c.NoteTag = NewNoteTagClient(c.config)
	c.OutboxEntry = NewOutboxEntryClient(c.config)
	c.Watermark = NewWatermarkClient(c.config)
	c.WorldEvent = NewWorldEventClient(c.config)
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
		ctx:         ctx,
		config:      cfg,
		DeadLetter:  NewDeadLetterClient(cfg),
		EmoCurrent:  NewEmoCurrentClient(cfg),
		EmoHistory:  NewEmoHistoryClient(cfg),
		EmoLink:     NewEmoLinkClient(cfg),
		GraphEdge:   NewGraphEdgeClient(cfg),
		GraphNode:   NewGraphNodeClient(cfg),
		Note:        NewNoteClient(cfg),
		NoteLink:    NewNoteLinkClient(cfg),
		NoteTag:     NewNoteTagClient(cfg),
		OutboxEntry: NewOutboxEntryClient(cfg),
		Watermark:   NewWatermarkClient(cfg),
		WorldEvent:  NewWorldEventClient(cfg),
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
		ctx:         ctx,
		config:      cfg,
		DeadLetter:  NewDeadLetterClient(cfg),
		EmoCurrent:  NewEmoCurrentClient(cfg),
		EmoHistory:  NewEmoHistoryClient(cfg),
		EmoLink:     NewEmoLinkClient(cfg),
		GraphEdge:   NewGraphEdgeClient(cfg),
		GraphNode:   NewGraphNodeClient(cfg),
		Note:        NewNoteClient(cfg),
		NoteLink:    NewNoteLinkClient(cfg),
		NoteTag:     NewNoteTagClient(cfg),
		OutboxEntry: NewOutboxEntryClient(cfg),
		Watermark:   NewWatermarkClient(cfg),
		WorldEvent:  NewWorldEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		DeadLetter.
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
		c.DeadLetter, c.EmoCurrent, c.EmoHistory, c.EmoLink, c.GraphEdge, c.GraphNode,
		c.Note, c.NoteLink, c.NoteTag, c.OutboxEntry, c.Watermark, c.WorldEvent,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.DeadLetter, c.EmoCurrent, c.EmoHistory, c.EmoLink, c.GraphEdge, c.GraphNode,
		c.Note, c.NoteLink, c.NoteTag, c.OutboxEntry, c.Watermark, c.WorldEvent,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DeadLetterMutation:
		return c.DeadLetter.mutate(ctx, m)
	case *EmoCurrentMutation:
		return c.EmoCurrent.mutate(ctx, m)
	case *EmoHistoryMutation:
		return c.EmoHistory.mutate(ctx, m)
	case *EmoLinkMutation:
		return c.EmoLink.mutate(ctx, m)
	case *GraphEdgeMutation:
		return c.GraphEdge.mutate(ctx, m)
	case *GraphNodeMutation:
		return c.GraphNode.mutate(ctx, m)
	case *NoteMutation:
		return c.Note.mutate(ctx, m)
	case *NoteLinkMutation:
		return c.NoteLink.mutate(ctx, m)
	case *NoteTagMutation:
		return c.NoteTag.mutate(ctx, m)
	case *OutboxEntryMutation:
		return c.OutboxEntry.mutate(ctx, m)
	case *WatermarkMutation:
		return c.Watermark.mutate(ctx, m)
	case *WorldEventMutation:
		return c.WorldEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DeadLetterClient is a client for the DeadLetter schema.
type DeadLetterClient struct {
	config
}

// NewDeadLetterClient returns a client for the DeadLetter from the given config.
func NewDeadLetterClient(c config) *DeadLetterClient {
	return &DeadLetterClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `deadletter.Hooks(f(g(h())))`.
func (c *DeadLetterClient) Use(hooks ...Hook) {
	c.hooks.DeadLetter = append(c.hooks.DeadLetter, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `deadletter.Intercept(f(g(h())))`.
func (c *DeadLetterClient) Intercept(interceptors ...Interceptor) {
	c.inters.DeadLetter = append(c.inters.DeadLetter, interceptors...)
}

// Create returns a builder for creating a DeadLetter entity.
func (c *DeadLetterClient) Create() *DeadLetterCreate {
	mutation := newDeadLetterMutation(c.config, OpCreate)
	return &DeadLetterCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DeadLetter entities.
func (c *DeadLetterClient) CreateBulk(builders ...*DeadLetterCreate) *DeadLetterCreateBulk {
	return &DeadLetterCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DeadLetterClient) MapCreateBulk(slice any, setFunc func(*DeadLetterCreate, int)) *DeadLetterCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DeadLetterCreateBulk{err: fmt.Errorf("calling to DeadLetterClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DeadLetterCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DeadLetterCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DeadLetter.
func (c *DeadLetterClient) Update() *DeadLetterUpdate {
	mutation := newDeadLetterMutation(c.config, OpUpdate)
	return &DeadLetterUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DeadLetterClient) UpdateOne(_m *DeadLetter) *DeadLetterUpdateOne {
	mutation := newDeadLetterMutation(c.config, OpUpdateOne, withDeadLetter(_m))
	return &DeadLetterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DeadLetterClient) UpdateOneID(id int64) *DeadLetterUpdateOne {
	mutation := newDeadLetterMutation(c.config, OpUpdateOne, withDeadLetterID(id))
	return &DeadLetterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DeadLetter.
func (c *DeadLetterClient) Delete() *DeadLetterDelete {
	mutation := newDeadLetterMutation(c.config, OpDelete)
	return &DeadLetterDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DeadLetterClient) DeleteOne(_m *DeadLetter) *DeadLetterDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DeadLetterClient) DeleteOneID(id int64) *DeadLetterDeleteOne {
	builder := c.Delete().Where(deadletter.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DeadLetterDeleteOne{builder}
}

// Query returns a query builder for DeadLetter.
func (c *DeadLetterClient) Query() *DeadLetterQuery {
	return &DeadLetterQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDeadLetter},
		inters: c.Interceptors(),
	}
}

// Get returns a DeadLetter entity by its id.
func (c *DeadLetterClient) Get(ctx context.Context, id int64) (*DeadLetter, error) {
	return c.Query().Where(deadletter.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DeadLetterClient) GetX(ctx context.Context, id int64) *DeadLetter {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DeadLetterClient) Hooks() []Hook {
	return c.hooks.DeadLetter
}

// Interceptors returns the client interceptors.
func (c *DeadLetterClient) Interceptors() []Interceptor {
	return c.inters.DeadLetter
}

func (c *DeadLetterClient) mutate(ctx context.Context, m *DeadLetterMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DeadLetterCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DeadLetterUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DeadLetterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DeadLetterDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DeadLetter mutation op: %q", m.Op())
	}
}

// EmoCurrentClient is a client for the EmoCurrent schema.
type EmoCurrentClient struct {
	config
}

// NewEmoCurrentClient returns a client for the EmoCurrent from the given config.
func NewEmoCurrentClient(c config) *EmoCurrentClient {
	return &EmoCurrentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `emocurrent.Hooks(f(g(h())))`.
func (c *EmoCurrentClient) Use(hooks ...Hook) {
	c.hooks.EmoCurrent = append(c.hooks.EmoCurrent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `emocurrent.Intercept(f(g(h())))`.
func (c *EmoCurrentClient) Intercept(interceptors ...Interceptor) {
	c.inters.EmoCurrent = append(c.inters.EmoCurrent, interceptors...)
}

// Create returns a builder for creating a EmoCurrent entity.
func (c *EmoCurrentClient) Create() *EmoCurrentCreate {
	mutation := newEmoCurrentMutation(c.config, OpCreate)
	return &EmoCurrentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EmoCurrent entities.
func (c *EmoCurrentClient) CreateBulk(builders ...*EmoCurrentCreate) *EmoCurrentCreateBulk {
	return &EmoCurrentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EmoCurrentClient) MapCreateBulk(slice any, setFunc func(*EmoCurrentCreate, int)) *EmoCurrentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EmoCurrentCreateBulk{err: fmt.Errorf("calling to EmoCurrentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EmoCurrentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EmoCurrentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EmoCurrent.
func (c *EmoCurrentClient) Update() *EmoCurrentUpdate {
	mutation := newEmoCurrentMutation(c.config, OpUpdate)
	return &EmoCurrentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EmoCurrentClient) UpdateOne(_m *EmoCurrent) *EmoCurrentUpdateOne {
	mutation := newEmoCurrentMutation(c.config, OpUpdateOne, withEmoCurrent(_m))
	return &EmoCurrentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EmoCurrentClient) UpdateOneID(id int) *EmoCurrentUpdateOne {
	mutation := newEmoCurrentMutation(c.config, OpUpdateOne, withEmoCurrentID(id))
	return &EmoCurrentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EmoCurrent.
func (c *EmoCurrentClient) Delete() *EmoCurrentDelete {
	mutation := newEmoCurrentMutation(c.config, OpDelete)
	return &EmoCurrentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EmoCurrentClient) DeleteOne(_m *EmoCurrent) *EmoCurrentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EmoCurrentClient) DeleteOneID(id int) *EmoCurrentDeleteOne {
	builder := c.Delete().Where(emocurrent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EmoCurrentDeleteOne{builder}
}

// Query returns a query builder for EmoCurrent.
func (c *EmoCurrentClient) Query() *EmoCurrentQuery {
	return &EmoCurrentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEmoCurrent},
		inters: c.Interceptors(),
	}
}

// Get returns a EmoCurrent entity by its id.
func (c *EmoCurrentClient) Get(ctx context.Context, id int) (*EmoCurrent, error) {
	return c.Query().Where(emocurrent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EmoCurrentClient) GetX(ctx context.Context, id int) *EmoCurrent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EmoCurrentClient) Hooks() []Hook {
	return c.hooks.EmoCurrent
}

// Interceptors returns the client interceptors.
func (c *EmoCurrentClient) Interceptors() []Interceptor {
	return c.inters.EmoCurrent
}

func (c *EmoCurrentClient) mutate(ctx context.Context, m *EmoCurrentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EmoCurrentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EmoCurrentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EmoCurrentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EmoCurrentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EmoCurrent mutation op: %q", m.Op())
	}
}

// EmoHistoryClient is a client for the EmoHistory schema.
type EmoHistoryClient struct {
	config
}

// NewEmoHistoryClient returns a client for the EmoHistory from the given config.
func NewEmoHistoryClient(c config) *EmoHistoryClient {
	return &EmoHistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `emohistory.Hooks(f(g(h())))`.
func (c *EmoHistoryClient) Use(hooks ...Hook) {
	c.hooks.EmoHistory = append(c.hooks.EmoHistory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `emohistory.Intercept(f(g(h())))`.
func (c *EmoHistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.EmoHistory = append(c.inters.EmoHistory, interceptors...)
}

// Create returns a builder for creating a EmoHistory entity.
func (c *EmoHistoryClient) Create() *EmoHistoryCreate {
	mutation := newEmoHistoryMutation(c.config, OpCreate)
	return &EmoHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EmoHistory entities.
func (c *EmoHistoryClient) CreateBulk(builders ...*EmoHistoryCreate) *EmoHistoryCreateBulk {
	return &EmoHistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EmoHistoryClient) MapCreateBulk(slice any, setFunc func(*EmoHistoryCreate, int)) *EmoHistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EmoHistoryCreateBulk{err: fmt.Errorf("calling to EmoHistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EmoHistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EmoHistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EmoHistory.
func (c *EmoHistoryClient) Update() *EmoHistoryUpdate {
	mutation := newEmoHistoryMutation(c.config, OpUpdate)
	return &EmoHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EmoHistoryClient) UpdateOne(_m *EmoHistory) *EmoHistoryUpdateOne {
	mutation := newEmoHistoryMutation(c.config, OpUpdateOne, withEmoHistory(_m))
	return &EmoHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EmoHistoryClient) UpdateOneID(id int) *EmoHistoryUpdateOne {
	mutation := newEmoHistoryMutation(c.config, OpUpdateOne, withEmoHistoryID(id))
	return &EmoHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EmoHistory.
func (c *EmoHistoryClient) Delete() *EmoHistoryDelete {
	mutation := newEmoHistoryMutation(c.config, OpDelete)
	return &EmoHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EmoHistoryClient) DeleteOne(_m *EmoHistory) *EmoHistoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EmoHistoryClient) DeleteOneID(id int) *EmoHistoryDeleteOne {
	builder := c.Delete().Where(emohistory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EmoHistoryDeleteOne{builder}
}

// Query returns a query builder for EmoHistory.
func (c *EmoHistoryClient) Query() *EmoHistoryQuery {
	return &EmoHistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEmoHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a EmoHistory entity by its id.
func (c *EmoHistoryClient) Get(ctx context.Context, id int) (*EmoHistory, error) {
	return c.Query().Where(emohistory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EmoHistoryClient) GetX(ctx context.Context, id int) *EmoHistory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EmoHistoryClient) Hooks() []Hook {
	return c.hooks.EmoHistory
}

// Interceptors returns the client interceptors.
func (c *EmoHistoryClient) Interceptors() []Interceptor {
	return c.inters.EmoHistory
}

func (c *EmoHistoryClient) mutate(ctx context.Context, m *EmoHistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EmoHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EmoHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EmoHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EmoHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EmoHistory mutation op: %q", m.Op())
	}
}

// EmoLinkClient is a client for the EmoLink schema.
type EmoLinkClient struct {
	config
}

// NewEmoLinkClient returns a client for the EmoLink from the given config.
func NewEmoLinkClient(c config) *EmoLinkClient {
	return &EmoLinkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `emolink.Hooks(f(g(h())))`.
func (c *EmoLinkClient) Use(hooks ...Hook) {
	c.hooks.EmoLink = append(c.hooks.EmoLink, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `emolink.Intercept(f(g(h())))`.
func (c *EmoLinkClient) Intercept(interceptors ...Interceptor) {
	c.inters.EmoLink = append(c.inters.EmoLink, interceptors...)
}

// Create returns a builder for creating a EmoLink entity.
func (c *EmoLinkClient) Create() *EmoLinkCreate {
	mutation := newEmoLinkMutation(c.config, OpCreate)
	return &EmoLinkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EmoLink entities.
func (c *EmoLinkClient) CreateBulk(builders ...*EmoLinkCreate) *EmoLinkCreateBulk {
	return &EmoLinkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EmoLinkClient) MapCreateBulk(slice any, setFunc func(*EmoLinkCreate, int)) *EmoLinkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EmoLinkCreateBulk{err: fmt.Errorf("calling to EmoLinkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EmoLinkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EmoLinkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EmoLink.
func (c *EmoLinkClient) Update() *EmoLinkUpdate {
	mutation := newEmoLinkMutation(c.config, OpUpdate)
	return &EmoLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EmoLinkClient) UpdateOne(_m *EmoLink) *EmoLinkUpdateOne {
	mutation := newEmoLinkMutation(c.config, OpUpdateOne, withEmoLink(_m))
	return &EmoLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EmoLinkClient) UpdateOneID(id int) *EmoLinkUpdateOne {
	mutation := newEmoLinkMutation(c.config, OpUpdateOne, withEmoLinkID(id))
	return &EmoLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EmoLink.
func (c *EmoLinkClient) Delete() *EmoLinkDelete {
	mutation := newEmoLinkMutation(c.config, OpDelete)
	return &EmoLinkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EmoLinkClient) DeleteOne(_m *EmoLink) *EmoLinkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EmoLinkClient) DeleteOneID(id int) *EmoLinkDeleteOne {
	builder := c.Delete().Where(emolink.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EmoLinkDeleteOne{builder}
}

// Query returns a query builder for EmoLink.
func (c *EmoLinkClient) Query() *EmoLinkQuery {
	return &EmoLinkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEmoLink},
		inters: c.Interceptors(),
	}
}

// Get returns a EmoLink entity by its id.
func (c *EmoLinkClient) Get(ctx context.Context, id int) (*EmoLink, error) {
	return c.Query().Where(emolink.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EmoLinkClient) GetX(ctx context.Context, id int) *EmoLink {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EmoLinkClient) Hooks() []Hook {
	return c.hooks.EmoLink
}

// Interceptors returns the client interceptors.
func (c *EmoLinkClient) Interceptors() []Interceptor {
	return c.inters.EmoLink
}

func (c *EmoLinkClient) mutate(ctx context.Context, m *EmoLinkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EmoLinkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EmoLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EmoLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EmoLinkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EmoLink mutation op: %q", m.Op())
	}
}

// GraphEdgeClient is a client for the GraphEdge schema.
type GraphEdgeClient struct {
	config
}

// NewGraphEdgeClient returns a client for the GraphEdge from the given config.
func NewGraphEdgeClient(c config) *GraphEdgeClient {
	return &GraphEdgeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `graphedge.Hooks(f(g(h())))`.
func (c *GraphEdgeClient) Use(hooks ...Hook) {
	c.hooks.GraphEdge = append(c.hooks.GraphEdge, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `graphedge.Intercept(f(g(h())))`.
func (c *GraphEdgeClient) Intercept(interceptors ...Interceptor) {
	c.inters.GraphEdge = append(c.inters.GraphEdge, interceptors...)
}

// Create returns a builder for creating a GraphEdge entity.
func (c *GraphEdgeClient) Create() *GraphEdgeCreate {
	mutation := newGraphEdgeMutation(c.config, OpCreate)
	return &GraphEdgeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GraphEdge entities.
func (c *GraphEdgeClient) CreateBulk(builders ...*GraphEdgeCreate) *GraphEdgeCreateBulk {
	return &GraphEdgeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GraphEdgeClient) MapCreateBulk(slice any, setFunc func(*GraphEdgeCreate, int)) *GraphEdgeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GraphEdgeCreateBulk{err: fmt.Errorf("calling to GraphEdgeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GraphEdgeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GraphEdgeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GraphEdge.
func (c *GraphEdgeClient) Update() *GraphEdgeUpdate {
	mutation := newGraphEdgeMutation(c.config, OpUpdate)
	return &GraphEdgeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GraphEdgeClient) UpdateOne(_m *GraphEdge) *GraphEdgeUpdateOne {
	mutation := newGraphEdgeMutation(c.config, OpUpdateOne, withGraphEdge(_m))
	return &GraphEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GraphEdgeClient) UpdateOneID(id int) *GraphEdgeUpdateOne {
	mutation := newGraphEdgeMutation(c.config, OpUpdateOne, withGraphEdgeID(id))
	return &GraphEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GraphEdge.
func (c *GraphEdgeClient) Delete() *GraphEdgeDelete {
	mutation := newGraphEdgeMutation(c.config, OpDelete)
	return &GraphEdgeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GraphEdgeClient) DeleteOne(_m *GraphEdge) *GraphEdgeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GraphEdgeClient) DeleteOneID(id int) *GraphEdgeDeleteOne {
	builder := c.Delete().Where(graphedge.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GraphEdgeDeleteOne{builder}
}

// Query returns a query builder for GraphEdge.
func (c *GraphEdgeClient) Query() *GraphEdgeQuery {
	return &GraphEdgeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGraphEdge},
		inters: c.Interceptors(),
	}
}

// Get returns a GraphEdge entity by its id.
func (c *GraphEdgeClient) Get(ctx context.Context, id int) (*GraphEdge, error) {
	return c.Query().Where(graphedge.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GraphEdgeClient) GetX(ctx context.Context, id int) *GraphEdge {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GraphEdgeClient) Hooks() []Hook {
	return c.hooks.GraphEdge
}

// Interceptors returns the client interceptors.
func (c *GraphEdgeClient) Interceptors() []Interceptor {
	return c.inters.GraphEdge
}

func (c *GraphEdgeClient) mutate(ctx context.Context, m *GraphEdgeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GraphEdgeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GraphEdgeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GraphEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GraphEdgeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GraphEdge mutation op: %q", m.Op())
	}
}

// GraphNodeClient is a client for the GraphNode schema.
type GraphNodeClient struct {
	config
}

// NewGraphNodeClient returns a client for the GraphNode from the given config.
func NewGraphNodeClient(c config) *GraphNodeClient {
	return &GraphNodeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `graphnode.Hooks(f(g(h())))`.
func (c *GraphNodeClient) Use(hooks ...Hook) {
	c.hooks.GraphNode = append(c.hooks.GraphNode, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `graphnode.Intercept(f(g(h())))`.
func (c *GraphNodeClient) Intercept(interceptors ...Interceptor) {
	c.inters.GraphNode = append(c.inters.GraphNode, interceptors...)
}

// Create returns a builder for creating a GraphNode entity.
func (c *GraphNodeClient) Create() *GraphNodeCreate {
	mutation := newGraphNodeMutation(c.config, OpCreate)
	return &GraphNodeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GraphNode entities.
func (c *GraphNodeClient) CreateBulk(builders ...*GraphNodeCreate) *GraphNodeCreateBulk {
	return &GraphNodeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GraphNodeClient) MapCreateBulk(slice any, setFunc func(*GraphNodeCreate, int)) *GraphNodeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GraphNodeCreateBulk{err: fmt.Errorf("calling to GraphNodeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GraphNodeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GraphNodeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GraphNode.
func (c *GraphNodeClient) Update() *GraphNodeUpdate {
	mutation := newGraphNodeMutation(c.config, OpUpdate)
	return &GraphNodeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GraphNodeClient) UpdateOne(_m *GraphNode) *GraphNodeUpdateOne {
	mutation := newGraphNodeMutation(c.config, OpUpdateOne, withGraphNode(_m))
	return &GraphNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GraphNodeClient) UpdateOneID(id int) *GraphNodeUpdateOne {
	mutation := newGraphNodeMutation(c.config, OpUpdateOne, withGraphNodeID(id))
	return &GraphNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GraphNode.
func (c *GraphNodeClient) Delete() *GraphNodeDelete {
	mutation := newGraphNodeMutation(c.config, OpDelete)
	return &GraphNodeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GraphNodeClient) DeleteOne(_m *GraphNode) *GraphNodeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GraphNodeClient) DeleteOneID(id int) *GraphNodeDeleteOne {
	builder := c.Delete().Where(graphnode.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GraphNodeDeleteOne{builder}
}

// Query returns a query builder for GraphNode.
func (c *GraphNodeClient) Query() *GraphNodeQuery {
	return &GraphNodeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGraphNode},
		inters: c.Interceptors(),
	}
}

// Get returns a GraphNode entity by its id.
func (c *GraphNodeClient) Get(ctx context.Context, id int) (*GraphNode, error) {
	return c.Query().Where(graphnode.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GraphNodeClient) GetX(ctx context.Context, id int) *GraphNode {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GraphNodeClient) Hooks() []Hook {
	return c.hooks.GraphNode
}

// Interceptors returns the client interceptors.
func (c *GraphNodeClient) Interceptors() []Interceptor {
	return c.inters.GraphNode
}

func (c *GraphNodeClient) mutate(ctx context.Context, m *GraphNodeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GraphNodeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GraphNodeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GraphNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GraphNodeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GraphNode mutation op: %q", m.Op())
	}
}

// NoteClient is a client for the Note schema.
type NoteClient struct {
	config
}

// NewNoteClient returns a client for the Note from the given config.
func NewNoteClient(c config) *NoteClient {
	return &NoteClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `note.Hooks(f(g(h())))`.
func (c *NoteClient) Use(hooks ...Hook) {
	c.hooks.Note = append(c.hooks.Note, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `note.Intercept(f(g(h())))`.
func (c *NoteClient) Intercept(interceptors ...Interceptor) {
	c.inters.Note = append(c.inters.Note, interceptors...)
}

// Create returns a builder for creating a Note entity.
func (c *NoteClient) Create() *NoteCreate {
	mutation := newNoteMutation(c.config, OpCreate)
	return &NoteCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Note entities.
func (c *NoteClient) CreateBulk(builders ...*NoteCreate) *NoteCreateBulk {
	return &NoteCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NoteClient) MapCreateBulk(slice any, setFunc func(*NoteCreate, int)) *NoteCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NoteCreateBulk{err: fmt.Errorf("calling to NoteClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NoteCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NoteCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Note.
func (c *NoteClient) Update() *NoteUpdate {
	mutation := newNoteMutation(c.config, OpUpdate)
	return &NoteUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NoteClient) UpdateOne(_m *Note) *NoteUpdateOne {
	mutation := newNoteMutation(c.config, OpUpdateOne, withNote(_m))
	return &NoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NoteClient) UpdateOneID(id int) *NoteUpdateOne {
	mutation := newNoteMutation(c.config, OpUpdateOne, withNoteID(id))
	return &NoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Note.
func (c *NoteClient) Delete() *NoteDelete {
	mutation := newNoteMutation(c.config, OpDelete)
	return &NoteDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NoteClient) DeleteOne(_m *Note) *NoteDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NoteClient) DeleteOneID(id int) *NoteDeleteOne {
	builder := c.Delete().Where(note.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NoteDeleteOne{builder}
}

// Query returns a query builder for Note.
func (c *NoteClient) Query() *NoteQuery {
	return &NoteQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNote},
		inters: c.Interceptors(),
	}
}

// Get returns a Note entity by its id.
func (c *NoteClient) Get(ctx context.Context, id int) (*Note, error) {
	return c.Query().Where(note.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NoteClient) GetX(ctx context.Context, id int) *Note {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NoteClient) Hooks() []Hook {
	return c.hooks.Note
}

// Interceptors returns the client interceptors.
func (c *NoteClient) Interceptors() []Interceptor {
	return c.inters.Note
}

func (c *NoteClient) mutate(ctx context.Context, m *NoteMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NoteCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NoteUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NoteDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Note mutation op: %q", m.Op())
	}
}

// NoteLinkClient is a client for the NoteLink schema.
type NoteLinkClient struct {
	config
}

// NewNoteLinkClient returns a client for the NoteLink from the given config.
func NewNoteLinkClient(c config) *NoteLinkClient {
	return &NoteLinkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notelink.Hooks(f(g(h())))`.
func (c *NoteLinkClient) Use(hooks ...Hook) {
	c.hooks.NoteLink = append(c.hooks.NoteLink, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notelink.Intercept(f(g(h())))`.
func (c *NoteLinkClient) Intercept(interceptors ...Interceptor) {
	c.inters.NoteLink = append(c.inters.NoteLink, interceptors...)
}

// Create returns a builder for creating a NoteLink entity.
func (c *NoteLinkClient) Create() *NoteLinkCreate {
	mutation := newNoteLinkMutation(c.config, OpCreate)
	return &NoteLinkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of NoteLink entities.
func (c *NoteLinkClient) CreateBulk(builders ...*NoteLinkCreate) *NoteLinkCreateBulk {
	return &NoteLinkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NoteLinkClient) MapCreateBulk(slice any, setFunc func(*NoteLinkCreate, int)) *NoteLinkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NoteLinkCreateBulk{err: fmt.Errorf("calling to NoteLinkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NoteLinkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NoteLinkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for NoteLink.
func (c *NoteLinkClient) Update() *NoteLinkUpdate {
	mutation := newNoteLinkMutation(c.config, OpUpdate)
	return &NoteLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NoteLinkClient) UpdateOne(_m *NoteLink) *NoteLinkUpdateOne {
	mutation := newNoteLinkMutation(c.config, OpUpdateOne, withNoteLink(_m))
	return &NoteLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NoteLinkClient) UpdateOneID(id int) *NoteLinkUpdateOne {
	mutation := newNoteLinkMutation(c.config, OpUpdateOne, withNoteLinkID(id))
	return &NoteLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for NoteLink.
func (c *NoteLinkClient) Delete() *NoteLinkDelete {
	mutation := newNoteLinkMutation(c.config, OpDelete)
	return &NoteLinkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NoteLinkClient) DeleteOne(_m *NoteLink) *NoteLinkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NoteLinkClient) DeleteOneID(id int) *NoteLinkDeleteOne {
	builder := c.Delete().Where(notelink.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NoteLinkDeleteOne{builder}
}

// Query returns a query builder for NoteLink.
func (c *NoteLinkClient) Query() *NoteLinkQuery {
	return &NoteLinkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNoteLink},
		inters: c.Interceptors(),
	}
}

// Get returns a NoteLink entity by its id.
func (c *NoteLinkClient) Get(ctx context.Context, id int) (*NoteLink, error) {
	return c.Query().Where(notelink.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NoteLinkClient) GetX(ctx context.Context, id int) *NoteLink {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NoteLinkClient) Hooks() []Hook {
	return c.hooks.NoteLink
}

// Interceptors returns the client interceptors.
func (c *NoteLinkClient) Interceptors() []Interceptor {
	return c.inters.NoteLink
}

func (c *NoteLinkClient) mutate(ctx context.Context, m *NoteLinkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NoteLinkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NoteLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NoteLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NoteLinkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown NoteLink mutation op: %q", m.Op())
	}
}

// NoteTagClient is a client for the NoteTag schema.
type NoteTagClient struct {
	config
}

// NewNoteTagClient returns a client for the NoteTag from the given config.
func NewNoteTagClient(c config) *NoteTagClient {
	return &NoteTagClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notetag.Hooks(f(g(h())))`.
func (c *NoteTagClient) Use(hooks ...Hook) {
	c.hooks.NoteTag = append(c.hooks.NoteTag, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notetag.Intercept(f(g(h())))`.
func (c *NoteTagClient) Intercept(interceptors ...Interceptor) {
	c.inters.NoteTag = append(c.inters.NoteTag, interceptors...)
}

// Create returns a builder for creating a NoteTag entity.
func (c *NoteTagClient) Create() *NoteTagCreate {
	mutation := newNoteTagMutation(c.config, OpCreate)
	return &NoteTagCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of NoteTag entities.
func (c *NoteTagClient) CreateBulk(builders ...*NoteTagCreate) *NoteTagCreateBulk {
	return &NoteTagCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NoteTagClient) MapCreateBulk(slice any, setFunc func(*NoteTagCreate, int)) *NoteTagCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NoteTagCreateBulk{err: fmt.Errorf("calling to NoteTagClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NoteTagCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NoteTagCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for NoteTag.
func (c *NoteTagClient) Update() *NoteTagUpdate {
	mutation := newNoteTagMutation(c.config, OpUpdate)
	return &NoteTagUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NoteTagClient) UpdateOne(_m *NoteTag) *NoteTagUpdateOne {
	mutation := newNoteTagMutation(c.config, OpUpdateOne, withNoteTag(_m))
	return &NoteTagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NoteTagClient) UpdateOneID(id int) *NoteTagUpdateOne {
	mutation := newNoteTagMutation(c.config, OpUpdateOne, withNoteTagID(id))
	return &NoteTagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for NoteTag.
func (c *NoteTagClient) Delete() *NoteTagDelete {
	mutation := newNoteTagMutation(c.config, OpDelete)
	return &NoteTagDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NoteTagClient) DeleteOne(_m *NoteTag) *NoteTagDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NoteTagClient) DeleteOneID(id int) *NoteTagDeleteOne {
	builder := c.Delete().Where(notetag.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NoteTagDeleteOne{builder}
}

// Query returns a query builder for NoteTag.
func (c *NoteTagClient) Query() *NoteTagQuery {
	return &NoteTagQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNoteTag},
		inters: c.Interceptors(),
	}
}

// Get returns a NoteTag entity by its id.
func (c *NoteTagClient) Get(ctx context.Context, id int) (*NoteTag, error) {
	return c.Query().Where(notetag.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NoteTagClient) GetX(ctx context.Context, id int) *NoteTag {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NoteTagClient) Hooks() []Hook {
	return c.hooks.NoteTag
}

// Interceptors returns the client interceptors.
func (c *NoteTagClient) Interceptors() []Interceptor {
	return c.inters.NoteTag
}

func (c *NoteTagClient) mutate(ctx context.Context, m *NoteTagMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NoteTagCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NoteTagUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NoteTagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NoteTagDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown NoteTag mutation op: %q", m.Op())
	}
}

// OutboxEntryClient is a client for the OutboxEntry schema.
type OutboxEntryClient struct {
	config
}

// NewOutboxEntryClient returns a client for the OutboxEntry from the given config.
func NewOutboxEntryClient(c config) *OutboxEntryClient {
	return &OutboxEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `outboxentry.Hooks(f(g(h())))`.
func (c *OutboxEntryClient) Use(hooks ...Hook) {
	c.hooks.OutboxEntry = append(c.hooks.OutboxEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `outboxentry.Intercept(f(g(h())))`.
func (c *OutboxEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.OutboxEntry = append(c.inters.OutboxEntry, interceptors...)
}

// Create returns a builder for creating a OutboxEntry entity.
func (c *OutboxEntryClient) Create() *OutboxEntryCreate {
	mutation := newOutboxEntryMutation(c.config, OpCreate)
	return &OutboxEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OutboxEntry entities.
func (c *OutboxEntryClient) CreateBulk(builders ...*OutboxEntryCreate) *OutboxEntryCreateBulk {
	return &OutboxEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OutboxEntryClient) MapCreateBulk(slice any, setFunc func(*OutboxEntryCreate, int)) *OutboxEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OutboxEntryCreateBulk{err: fmt.Errorf("calling to OutboxEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OutboxEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OutboxEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OutboxEntry.
func (c *OutboxEntryClient) Update() *OutboxEntryUpdate {
	mutation := newOutboxEntryMutation(c.config, OpUpdate)
	return &OutboxEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OutboxEntryClient) UpdateOne(_m *OutboxEntry) *OutboxEntryUpdateOne {
	mutation := newOutboxEntryMutation(c.config, OpUpdateOne, withOutboxEntry(_m))
	return &OutboxEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OutboxEntryClient) UpdateOneID(id int64) *OutboxEntryUpdateOne {
	mutation := newOutboxEntryMutation(c.config, OpUpdateOne, withOutboxEntryID(id))
	return &OutboxEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OutboxEntry.
func (c *OutboxEntryClient) Delete() *OutboxEntryDelete {
	mutation := newOutboxEntryMutation(c.config, OpDelete)
	return &OutboxEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OutboxEntryClient) DeleteOne(_m *OutboxEntry) *OutboxEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OutboxEntryClient) DeleteOneID(id int64) *OutboxEntryDeleteOne {
	builder := c.Delete().Where(outboxentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OutboxEntryDeleteOne{builder}
}

// Query returns a query builder for OutboxEntry.
func (c *OutboxEntryClient) Query() *OutboxEntryQuery {
	return &OutboxEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOutboxEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a OutboxEntry entity by its id.
func (c *OutboxEntryClient) Get(ctx context.Context, id int64) (*OutboxEntry, error) {
	return c.Query().Where(outboxentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OutboxEntryClient) GetX(ctx context.Context, id int64) *OutboxEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OutboxEntryClient) Hooks() []Hook {
	return c.hooks.OutboxEntry
}

// Interceptors returns the client interceptors.
func (c *OutboxEntryClient) Interceptors() []Interceptor {
	return c.inters.OutboxEntry
}

func (c *OutboxEntryClient) mutate(ctx context.Context, m *OutboxEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OutboxEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OutboxEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OutboxEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OutboxEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OutboxEntry mutation op: %q", m.Op())
	}
}

// WatermarkClient is a client for the Watermark schema.
type WatermarkClient struct {
	config
}

// NewWatermarkClient returns a client for the Watermark from the given config.
func NewWatermarkClient(c config) *WatermarkClient {
	return &WatermarkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `watermark.Hooks(f(g(h())))`.
func (c *WatermarkClient) Use(hooks ...Hook) {
	c.hooks.Watermark = append(c.hooks.Watermark, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `watermark.Intercept(f(g(h())))`.
func (c *WatermarkClient) Intercept(interceptors ...Interceptor) {
	c.inters.Watermark = append(c.inters.Watermark, interceptors...)
}

// Create returns a builder for creating a Watermark entity.
func (c *WatermarkClient) Create() *WatermarkCreate {
	mutation := newWatermarkMutation(c.config, OpCreate)
	return &WatermarkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Watermark entities.
func (c *WatermarkClient) CreateBulk(builders ...*WatermarkCreate) *WatermarkCreateBulk {
	return &WatermarkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WatermarkClient) MapCreateBulk(slice any, setFunc func(*WatermarkCreate, int)) *WatermarkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WatermarkCreateBulk{err: fmt.Errorf("calling to WatermarkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WatermarkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WatermarkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Watermark.
func (c *WatermarkClient) Update() *WatermarkUpdate {
	mutation := newWatermarkMutation(c.config, OpUpdate)
	return &WatermarkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WatermarkClient) UpdateOne(_m *Watermark) *WatermarkUpdateOne {
	mutation := newWatermarkMutation(c.config, OpUpdateOne, withWatermark(_m))
	return &WatermarkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WatermarkClient) UpdateOneID(id int) *WatermarkUpdateOne {
	mutation := newWatermarkMutation(c.config, OpUpdateOne, withWatermarkID(id))
	return &WatermarkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Watermark.
func (c *WatermarkClient) Delete() *WatermarkDelete {
	mutation := newWatermarkMutation(c.config, OpDelete)
	return &WatermarkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WatermarkClient) DeleteOne(_m *Watermark) *WatermarkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WatermarkClient) DeleteOneID(id int) *WatermarkDeleteOne {
	builder := c.Delete().Where(watermark.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WatermarkDeleteOne{builder}
}

// Query returns a query builder for Watermark.
func (c *WatermarkClient) Query() *WatermarkQuery {
	return &WatermarkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWatermark},
		inters: c.Interceptors(),
	}
}

// Get returns a Watermark entity by its id.
func (c *WatermarkClient) Get(ctx context.Context, id int) (*Watermark, error) {
	return c.Query().Where(watermark.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WatermarkClient) GetX(ctx context.Context, id int) *Watermark {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WatermarkClient) Hooks() []Hook {
	return c.hooks.Watermark
}

// Interceptors returns the client interceptors.
func (c *WatermarkClient) Interceptors() []Interceptor {
	return c.inters.Watermark
}

func (c *WatermarkClient) mutate(ctx context.Context, m *WatermarkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WatermarkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WatermarkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WatermarkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WatermarkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Watermark mutation op: %q", m.Op())
	}
}

// WorldEventClient is a client for the WorldEvent schema.
type WorldEventClient struct {
	config
}

// NewWorldEventClient returns a client for the WorldEvent from the given config.
func NewWorldEventClient(c config) *WorldEventClient {
	return &WorldEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `worldevent.Hooks(f(g(h())))`.
func (c *WorldEventClient) Use(hooks ...Hook) {
	c.hooks.WorldEvent = append(c.hooks.WorldEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `worldevent.Intercept(f(g(h())))`.
func (c *WorldEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorldEvent = append(c.inters.WorldEvent, interceptors...)
}

// Create returns a builder for creating a WorldEvent entity.
func (c *WorldEventClient) Create() *WorldEventCreate {
	mutation := newWorldEventMutation(c.config, OpCreate)
	return &WorldEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorldEvent entities.
func (c *WorldEventClient) CreateBulk(builders ...*WorldEventCreate) *WorldEventCreateBulk {
	return &WorldEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorldEventClient) MapCreateBulk(slice any, setFunc func(*WorldEventCreate, int)) *WorldEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorldEventCreateBulk{err: fmt.Errorf("calling to WorldEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorldEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorldEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorldEvent.
func (c *WorldEventClient) Update() *WorldEventUpdate {
	mutation := newWorldEventMutation(c.config, OpUpdate)
	return &WorldEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorldEventClient) UpdateOne(_m *WorldEvent) *WorldEventUpdateOne {
	mutation := newWorldEventMutation(c.config, OpUpdateOne, withWorldEvent(_m))
	return &WorldEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorldEventClient) UpdateOneID(id int64) *WorldEventUpdateOne {
	mutation := newWorldEventMutation(c.config, OpUpdateOne, withWorldEventID(id))
	return &WorldEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorldEvent.
func (c *WorldEventClient) Delete() *WorldEventDelete {
	mutation := newWorldEventMutation(c.config, OpDelete)
	return &WorldEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorldEventClient) DeleteOne(_m *WorldEvent) *WorldEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorldEventClient) DeleteOneID(id int64) *WorldEventDeleteOne {
	builder := c.Delete().Where(worldevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorldEventDeleteOne{builder}
}

// Query returns a query builder for WorldEvent.
func (c *WorldEventClient) Query() *WorldEventQuery {
	return &WorldEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorldEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a WorldEvent entity by its id.
func (c *WorldEventClient) Get(ctx context.Context, id int64) (*WorldEvent, error) {
	return c.Query().Where(worldevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorldEventClient) GetX(ctx context.Context, id int64) *WorldEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WorldEventClient) Hooks() []Hook {
	return c.hooks.WorldEvent
}

// Interceptors returns the client interceptors.
func (c *WorldEventClient) Interceptors() []Interceptor {
	return c.inters.WorldEvent
}

func (c *WorldEventClient) mutate(ctx context.Context, m *WorldEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorldEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorldEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorldEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorldEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorldEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		DeadLetter, EmoCurrent, EmoHistory, EmoLink, GraphEdge, GraphNode, Note,
		NoteLink, NoteTag, OutboxEntry, Watermark, WorldEvent []ent.Hook
	}
	inters struct {
		DeadLetter, EmoCurrent, EmoHistory, EmoLink, GraphEdge, GraphNode, Note,
		NoteLink, NoteTag, OutboxEntry, Watermark, WorldEvent []ent.Interceptor
	}
)
