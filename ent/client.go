// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/apa-platform/apacore/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/apa-platform/apacore/ent/agent"
	"github.com/apa-platform/apacore/ent/execution"
	"github.com/apa-platform/apacore/ent/hitlrequest"
	"github.com/apa-platform/apacore/ent/learningfeedback"
	"github.com/apa-platform/apacore/ent/memoryitem"
	"github.com/apa-platform/apacore/ent/reasoningtrace"
	"github.com/apa-platform/apacore/ent/tool"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Agent is the client for interacting with the Agent builders.
	Agent *AgentClient
	// Execution is the client for interacting with the Execution builders.
	Execution *ExecutionClient
	// HITLRequest is the client for interacting with the HITLRequest builders.
	HITLRequest *HITLRequestClient
	// LearningFeedback is the client for interacting with the LearningFeedback builders.
	LearningFeedback *LearningFeedbackClient
	// MemoryItem is the client for interacting with the MemoryItem builders.
	MemoryItem *MemoryItemClient
	// ReasoningTrace is the client for interacting with the ReasoningTrace builders.
	ReasoningTrace *ReasoningTraceClient
	// Tool is the client for interacting with the Tool builders.
	Tool *ToolClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Agent = NewAgentClient(c.config)
	c.Execution = NewExecutionClient(c.config)
	c.HITLRequest = NewHITLRequestClient(c.config)
	c.LearningFeedback = NewLearningFeedbackClient(c.config)
	c.MemoryItem = NewMemoryItemClient(c.config)
	c.ReasoningTrace = NewReasoningTraceClient(c.config)
	c.Tool = NewToolClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		Agent:            NewAgentClient(cfg),
		Execution:        NewExecutionClient(cfg),
		HITLRequest:      NewHITLRequestClient(cfg),
		LearningFeedback: NewLearningFeedbackClient(cfg),
		MemoryItem:       NewMemoryItemClient(cfg),
		ReasoningTrace:   NewReasoningTraceClient(cfg),
		Tool:             NewToolClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		Agent:            NewAgentClient(cfg),
		Execution:        NewExecutionClient(cfg),
		HITLRequest:      NewHITLRequestClient(cfg),
		LearningFeedback: NewLearningFeedbackClient(cfg),
		MemoryItem:       NewMemoryItemClient(cfg),
		ReasoningTrace:   NewReasoningTraceClient(cfg),
		Tool:             NewToolClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Agent.
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
		c.Agent, c.Execution, c.HITLRequest, c.LearningFeedback, c.MemoryItem,
		c.ReasoningTrace, c.Tool,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Agent, c.Execution, c.HITLRequest, c.LearningFeedback, c.MemoryItem,
		c.ReasoningTrace, c.Tool,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentMutation:
		return c.Agent.mutate(ctx, m)
	case *ExecutionMutation:
		return c.Execution.mutate(ctx, m)
	case *HITLRequestMutation:
		return c.HITLRequest.mutate(ctx, m)
	case *LearningFeedbackMutation:
		return c.LearningFeedback.mutate(ctx, m)
	case *MemoryItemMutation:
		return c.MemoryItem.mutate(ctx, m)
	case *ReasoningTraceMutation:
		return c.ReasoningTrace.mutate(ctx, m)
	case *ToolMutation:
		return c.Tool.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentClient is a client for the Agent schema.
type AgentClient struct {
	config
}

// NewAgentClient returns a client for the Agent from the given config.
func NewAgentClient(c config) *AgentClient {
	return &AgentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agent.Hooks(f(g(h())))`.
func (c *AgentClient) Use(hooks ...Hook) {
	c.hooks.Agent = append(c.hooks.Agent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agent.Intercept(f(g(h())))`.
func (c *AgentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Agent = append(c.inters.Agent, interceptors...)
}

// Create returns a builder for creating a Agent entity.
func (c *AgentClient) Create() *AgentCreate {
	mutation := newAgentMutation(c.config, OpCreate)
	return &AgentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Agent entities.
func (c *AgentClient) CreateBulk(builders ...*AgentCreate) *AgentCreateBulk {
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentClient) MapCreateBulk(slice any, setFunc func(*AgentCreate, int)) *AgentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentCreateBulk{err: fmt.Errorf("calling to AgentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Agent.
func (c *AgentClient) Update() *AgentUpdate {
	mutation := newAgentMutation(c.config, OpUpdate)
	return &AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentClient) UpdateOne(_m *Agent) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgent(_m))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentClient) UpdateOneID(id string) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgentID(id))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Agent.
func (c *AgentClient) Delete() *AgentDelete {
	mutation := newAgentMutation(c.config, OpDelete)
	return &AgentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentClient) DeleteOne(_m *Agent) *AgentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentClient) DeleteOneID(id string) *AgentDeleteOne {
	builder := c.Delete().Where(agent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentDeleteOne{builder}
}

// Query returns a query builder for Agent.
func (c *AgentClient) Query() *AgentQuery {
	return &AgentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgent},
		inters: c.Interceptors(),
	}
}

// Get returns a Agent entity by its id.
func (c *AgentClient) Get(ctx context.Context, id string) (*Agent, error) {
	return c.Query().Where(agent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentClient) GetX(ctx context.Context, id string) *Agent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentClient) Hooks() []Hook {
	return c.hooks.Agent
}

// Interceptors returns the client interceptors.
func (c *AgentClient) Interceptors() []Interceptor {
	return c.inters.Agent
}

func (c *AgentClient) mutate(ctx context.Context, m *AgentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Agent mutation op: %q", m.Op())
	}
}

// ExecutionClient is a client for the Execution schema.
type ExecutionClient struct {
	config
}

// NewExecutionClient returns a client for the Execution from the given config.
func NewExecutionClient(c config) *ExecutionClient {
	return &ExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `execution.Hooks(f(g(h())))`.
func (c *ExecutionClient) Use(hooks ...Hook) {
	c.hooks.Execution = append(c.hooks.Execution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `execution.Intercept(f(g(h())))`.
func (c *ExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Execution = append(c.inters.Execution, interceptors...)
}

// Create returns a builder for creating a Execution entity.
func (c *ExecutionClient) Create() *ExecutionCreate {
	mutation := newExecutionMutation(c.config, OpCreate)
	return &ExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Execution entities.
func (c *ExecutionClient) CreateBulk(builders ...*ExecutionCreate) *ExecutionCreateBulk {
	return &ExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExecutionClient) MapCreateBulk(slice any, setFunc func(*ExecutionCreate, int)) *ExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExecutionCreateBulk{err: fmt.Errorf("calling to ExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Execution.
func (c *ExecutionClient) Update() *ExecutionUpdate {
	mutation := newExecutionMutation(c.config, OpUpdate)
	return &ExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExecutionClient) UpdateOne(_m *Execution) *ExecutionUpdateOne {
	mutation := newExecutionMutation(c.config, OpUpdateOne, withExecution(_m))
	return &ExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExecutionClient) UpdateOneID(id string) *ExecutionUpdateOne {
	mutation := newExecutionMutation(c.config, OpUpdateOne, withExecutionID(id))
	return &ExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Execution.
func (c *ExecutionClient) Delete() *ExecutionDelete {
	mutation := newExecutionMutation(c.config, OpDelete)
	return &ExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExecutionClient) DeleteOne(_m *Execution) *ExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExecutionClient) DeleteOneID(id string) *ExecutionDeleteOne {
	builder := c.Delete().Where(execution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExecutionDeleteOne{builder}
}

// Query returns a query builder for Execution.
func (c *ExecutionClient) Query() *ExecutionQuery {
	return &ExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a Execution entity by its id.
func (c *ExecutionClient) Get(ctx context.Context, id string) (*Execution, error) {
	return c.Query().Where(execution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExecutionClient) GetX(ctx context.Context, id string) *Execution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExecutionClient) Hooks() []Hook {
	return c.hooks.Execution
}

// Interceptors returns the client interceptors.
func (c *ExecutionClient) Interceptors() []Interceptor {
	return c.inters.Execution
}

func (c *ExecutionClient) mutate(ctx context.Context, m *ExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Execution mutation op: %q", m.Op())
	}
}

// HITLRequestClient is a client for the HITLRequest schema.
type HITLRequestClient struct {
	config
}

// NewHITLRequestClient returns a client for the HITLRequest from the given config.
func NewHITLRequestClient(c config) *HITLRequestClient {
	return &HITLRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `hitlrequest.Hooks(f(g(h())))`.
func (c *HITLRequestClient) Use(hooks ...Hook) {
	c.hooks.HITLRequest = append(c.hooks.HITLRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `hitlrequest.Intercept(f(g(h())))`.
func (c *HITLRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.HITLRequest = append(c.inters.HITLRequest, interceptors...)
}

// Create returns a builder for creating a HITLRequest entity.
func (c *HITLRequestClient) Create() *HITLRequestCreate {
	mutation := newHITLRequestMutation(c.config, OpCreate)
	return &HITLRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HITLRequest entities.
func (c *HITLRequestClient) CreateBulk(builders ...*HITLRequestCreate) *HITLRequestCreateBulk {
	return &HITLRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HITLRequestClient) MapCreateBulk(slice any, setFunc func(*HITLRequestCreate, int)) *HITLRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HITLRequestCreateBulk{err: fmt.Errorf("calling to HITLRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HITLRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HITLRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HITLRequest.
func (c *HITLRequestClient) Update() *HITLRequestUpdate {
	mutation := newHITLRequestMutation(c.config, OpUpdate)
	return &HITLRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HITLRequestClient) UpdateOne(_m *HITLRequest) *HITLRequestUpdateOne {
	mutation := newHITLRequestMutation(c.config, OpUpdateOne, withHITLRequest(_m))
	return &HITLRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HITLRequestClient) UpdateOneID(id string) *HITLRequestUpdateOne {
	mutation := newHITLRequestMutation(c.config, OpUpdateOne, withHITLRequestID(id))
	return &HITLRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HITLRequest.
func (c *HITLRequestClient) Delete() *HITLRequestDelete {
	mutation := newHITLRequestMutation(c.config, OpDelete)
	return &HITLRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HITLRequestClient) DeleteOne(_m *HITLRequest) *HITLRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HITLRequestClient) DeleteOneID(id string) *HITLRequestDeleteOne {
	builder := c.Delete().Where(hitlrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HITLRequestDeleteOne{builder}
}

// Query returns a query builder for HITLRequest.
func (c *HITLRequestClient) Query() *HITLRequestQuery {
	return &HITLRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHITLRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a HITLRequest entity by its id.
func (c *HITLRequestClient) Get(ctx context.Context, id string) (*HITLRequest, error) {
	return c.Query().Where(hitlrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HITLRequestClient) GetX(ctx context.Context, id string) *HITLRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *HITLRequestClient) Hooks() []Hook {
	return c.hooks.HITLRequest
}

// Interceptors returns the client interceptors.
func (c *HITLRequestClient) Interceptors() []Interceptor {
	return c.inters.HITLRequest
}

func (c *HITLRequestClient) mutate(ctx context.Context, m *HITLRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HITLRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HITLRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HITLRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HITLRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown HITLRequest mutation op: %q", m.Op())
	}
}

// LearningFeedbackClient is a client for the LearningFeedback schema.
type LearningFeedbackClient struct {
	config
}

// NewLearningFeedbackClient returns a client for the LearningFeedback from the given config.
func NewLearningFeedbackClient(c config) *LearningFeedbackClient {
	return &LearningFeedbackClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learningfeedback.Hooks(f(g(h())))`.
func (c *LearningFeedbackClient) Use(hooks ...Hook) {
	c.hooks.LearningFeedback = append(c.hooks.LearningFeedback, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learningfeedback.Intercept(f(g(h())))`.
func (c *LearningFeedbackClient) Intercept(interceptors ...Interceptor) {
	c.inters.LearningFeedback = append(c.inters.LearningFeedback, interceptors...)
}

// Create returns a builder for creating a LearningFeedback entity.
func (c *LearningFeedbackClient) Create() *LearningFeedbackCreate {
	mutation := newLearningFeedbackMutation(c.config, OpCreate)
	return &LearningFeedbackCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LearningFeedback entities.
func (c *LearningFeedbackClient) CreateBulk(builders ...*LearningFeedbackCreate) *LearningFeedbackCreateBulk {
	return &LearningFeedbackCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearningFeedbackClient) MapCreateBulk(slice any, setFunc func(*LearningFeedbackCreate, int)) *LearningFeedbackCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearningFeedbackCreateBulk{err: fmt.Errorf("calling to LearningFeedbackClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearningFeedbackCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearningFeedbackCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LearningFeedback.
func (c *LearningFeedbackClient) Update() *LearningFeedbackUpdate {
	mutation := newLearningFeedbackMutation(c.config, OpUpdate)
	return &LearningFeedbackUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearningFeedbackClient) UpdateOne(_m *LearningFeedback) *LearningFeedbackUpdateOne {
	mutation := newLearningFeedbackMutation(c.config, OpUpdateOne, withLearningFeedback(_m))
	return &LearningFeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearningFeedbackClient) UpdateOneID(id string) *LearningFeedbackUpdateOne {
	mutation := newLearningFeedbackMutation(c.config, OpUpdateOne, withLearningFeedbackID(id))
	return &LearningFeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LearningFeedback.
func (c *LearningFeedbackClient) Delete() *LearningFeedbackDelete {
	mutation := newLearningFeedbackMutation(c.config, OpDelete)
	return &LearningFeedbackDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearningFeedbackClient) DeleteOne(_m *LearningFeedback) *LearningFeedbackDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearningFeedbackClient) DeleteOneID(id string) *LearningFeedbackDeleteOne {
	builder := c.Delete().Where(learningfeedback.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearningFeedbackDeleteOne{builder}
}

// Query returns a query builder for LearningFeedback.
func (c *LearningFeedbackClient) Query() *LearningFeedbackQuery {
	return &LearningFeedbackQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearningFeedback},
		inters: c.Interceptors(),
	}
}

// Get returns a LearningFeedback entity by its id.
func (c *LearningFeedbackClient) Get(ctx context.Context, id string) (*LearningFeedback, error) {
	return c.Query().Where(learningfeedback.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearningFeedbackClient) GetX(ctx context.Context, id string) *LearningFeedback {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LearningFeedbackClient) Hooks() []Hook {
	return c.hooks.LearningFeedback
}

// Interceptors returns the client interceptors.
func (c *LearningFeedbackClient) Interceptors() []Interceptor {
	return c.inters.LearningFeedback
}

func (c *LearningFeedbackClient) mutate(ctx context.Context, m *LearningFeedbackMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearningFeedbackCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearningFeedbackUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearningFeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearningFeedbackDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LearningFeedback mutation op: %q", m.Op())
	}
}

// MemoryItemClient is a client for the MemoryItem schema.
type MemoryItemClient struct {
	config
}

// NewMemoryItemClient returns a client for the MemoryItem from the given config.
func NewMemoryItemClient(c config) *MemoryItemClient {
	return &MemoryItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `memoryitem.Hooks(f(g(h())))`.
func (c *MemoryItemClient) Use(hooks ...Hook) {
	c.hooks.MemoryItem = append(c.hooks.MemoryItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `memoryitem.Intercept(f(g(h())))`.
func (c *MemoryItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.MemoryItem = append(c.inters.MemoryItem, interceptors...)
}

// Create returns a builder for creating a MemoryItem entity.
func (c *MemoryItemClient) Create() *MemoryItemCreate {
	mutation := newMemoryItemMutation(c.config, OpCreate)
	return &MemoryItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MemoryItem entities.
func (c *MemoryItemClient) CreateBulk(builders ...*MemoryItemCreate) *MemoryItemCreateBulk {
	return &MemoryItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MemoryItemClient) MapCreateBulk(slice any, setFunc func(*MemoryItemCreate, int)) *MemoryItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MemoryItemCreateBulk{err: fmt.Errorf("calling to MemoryItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MemoryItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MemoryItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MemoryItem.
func (c *MemoryItemClient) Update() *MemoryItemUpdate {
	mutation := newMemoryItemMutation(c.config, OpUpdate)
	return &MemoryItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MemoryItemClient) UpdateOne(_m *MemoryItem) *MemoryItemUpdateOne {
	mutation := newMemoryItemMutation(c.config, OpUpdateOne, withMemoryItem(_m))
	return &MemoryItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MemoryItemClient) UpdateOneID(id string) *MemoryItemUpdateOne {
	mutation := newMemoryItemMutation(c.config, OpUpdateOne, withMemoryItemID(id))
	return &MemoryItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MemoryItem.
func (c *MemoryItemClient) Delete() *MemoryItemDelete {
	mutation := newMemoryItemMutation(c.config, OpDelete)
	return &MemoryItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MemoryItemClient) DeleteOne(_m *MemoryItem) *MemoryItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MemoryItemClient) DeleteOneID(id string) *MemoryItemDeleteOne {
	builder := c.Delete().Where(memoryitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MemoryItemDeleteOne{builder}
}

// Query returns a query builder for MemoryItem.
func (c *MemoryItemClient) Query() *MemoryItemQuery {
	return &MemoryItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMemoryItem},
		inters: c.Interceptors(),
	}
}

// Get returns a MemoryItem entity by its id.
func (c *MemoryItemClient) Get(ctx context.Context, id string) (*MemoryItem, error) {
	return c.Query().Where(memoryitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MemoryItemClient) GetX(ctx context.Context, id string) *MemoryItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MemoryItemClient) Hooks() []Hook {
	return c.hooks.MemoryItem
}

// Interceptors returns the client interceptors.
func (c *MemoryItemClient) Interceptors() []Interceptor {
	return c.inters.MemoryItem
}

func (c *MemoryItemClient) mutate(ctx context.Context, m *MemoryItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MemoryItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MemoryItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MemoryItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MemoryItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MemoryItem mutation op: %q", m.Op())
	}
}

// ReasoningTraceClient is a client for the ReasoningTrace schema.
type ReasoningTraceClient struct {
	config
}

// NewReasoningTraceClient returns a client for the ReasoningTrace from the given config.
func NewReasoningTraceClient(c config) *ReasoningTraceClient {
	return &ReasoningTraceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reasoningtrace.Hooks(f(g(h())))`.
func (c *ReasoningTraceClient) Use(hooks ...Hook) {
	c.hooks.ReasoningTrace = append(c.hooks.ReasoningTrace, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reasoningtrace.Intercept(f(g(h())))`.
func (c *ReasoningTraceClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReasoningTrace = append(c.inters.ReasoningTrace, interceptors...)
}

// Create returns a builder for creating a ReasoningTrace entity.
func (c *ReasoningTraceClient) Create() *ReasoningTraceCreate {
	mutation := newReasoningTraceMutation(c.config, OpCreate)
	return &ReasoningTraceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReasoningTrace entities.
func (c *ReasoningTraceClient) CreateBulk(builders ...*ReasoningTraceCreate) *ReasoningTraceCreateBulk {
	return &ReasoningTraceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReasoningTraceClient) MapCreateBulk(slice any, setFunc func(*ReasoningTraceCreate, int)) *ReasoningTraceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReasoningTraceCreateBulk{err: fmt.Errorf("calling to ReasoningTraceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReasoningTraceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReasoningTraceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReasoningTrace.
func (c *ReasoningTraceClient) Update() *ReasoningTraceUpdate {
	mutation := newReasoningTraceMutation(c.config, OpUpdate)
	return &ReasoningTraceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReasoningTraceClient) UpdateOne(_m *ReasoningTrace) *ReasoningTraceUpdateOne {
	mutation := newReasoningTraceMutation(c.config, OpUpdateOne, withReasoningTrace(_m))
	return &ReasoningTraceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReasoningTraceClient) UpdateOneID(id string) *ReasoningTraceUpdateOne {
	mutation := newReasoningTraceMutation(c.config, OpUpdateOne, withReasoningTraceID(id))
	return &ReasoningTraceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReasoningTrace.
func (c *ReasoningTraceClient) Delete() *ReasoningTraceDelete {
	mutation := newReasoningTraceMutation(c.config, OpDelete)
	return &ReasoningTraceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReasoningTraceClient) DeleteOne(_m *ReasoningTrace) *ReasoningTraceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReasoningTraceClient) DeleteOneID(id string) *ReasoningTraceDeleteOne {
	builder := c.Delete().Where(reasoningtrace.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReasoningTraceDeleteOne{builder}
}

// Query returns a query builder for ReasoningTrace.
func (c *ReasoningTraceClient) Query() *ReasoningTraceQuery {
	return &ReasoningTraceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReasoningTrace},
		inters: c.Interceptors(),
	}
}

// Get returns a ReasoningTrace entity by its id.
func (c *ReasoningTraceClient) Get(ctx context.Context, id string) (*ReasoningTrace, error) {
	return c.Query().Where(reasoningtrace.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReasoningTraceClient) GetX(ctx context.Context, id string) *ReasoningTrace {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReasoningTraceClient) Hooks() []Hook {
	return c.hooks.ReasoningTrace
}

// Interceptors returns the client interceptors.
func (c *ReasoningTraceClient) Interceptors() []Interceptor {
	return c.inters.ReasoningTrace
}

func (c *ReasoningTraceClient) mutate(ctx context.Context, m *ReasoningTraceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReasoningTraceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReasoningTraceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReasoningTraceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReasoningTraceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReasoningTrace mutation op: %q", m.Op())
	}
}

// ToolClient is a client for the Tool schema.
type ToolClient struct {
	config
}

// NewToolClient returns a client for the Tool from the given config.
func NewToolClient(c config) *ToolClient {
	return &ToolClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tool.Hooks(f(g(h())))`.
func (c *ToolClient) Use(hooks ...Hook) {
	c.hooks.Tool = append(c.hooks.Tool, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tool.Intercept(f(g(h())))`.
func (c *ToolClient) Intercept(interceptors ...Interceptor) {
	c.inters.Tool = append(c.inters.Tool, interceptors...)
}

// Create returns a builder for creating a Tool entity.
func (c *ToolClient) Create() *ToolCreate {
	mutation := newToolMutation(c.config, OpCreate)
	return &ToolCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Tool entities.
func (c *ToolClient) CreateBulk(builders ...*ToolCreate) *ToolCreateBulk {
	return &ToolCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ToolClient) MapCreateBulk(slice any, setFunc func(*ToolCreate, int)) *ToolCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ToolCreateBulk{err: fmt.Errorf("calling to ToolClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ToolCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ToolCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Tool.
func (c *ToolClient) Update() *ToolUpdate {
	mutation := newToolMutation(c.config, OpUpdate)
	return &ToolUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ToolClient) UpdateOne(_m *Tool) *ToolUpdateOne {
	mutation := newToolMutation(c.config, OpUpdateOne, withTool(_m))
	return &ToolUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ToolClient) UpdateOneID(id string) *ToolUpdateOne {
	mutation := newToolMutation(c.config, OpUpdateOne, withToolID(id))
	return &ToolUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Tool.
func (c *ToolClient) Delete() *ToolDelete {
	mutation := newToolMutation(c.config, OpDelete)
	return &ToolDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ToolClient) DeleteOne(_m *Tool) *ToolDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ToolClient) DeleteOneID(id string) *ToolDeleteOne {
	builder := c.Delete().Where(tool.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ToolDeleteOne{builder}
}

// Query returns a query builder for Tool.
func (c *ToolClient) Query() *ToolQuery {
	return &ToolQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTool},
		inters: c.Interceptors(),
	}
}

// Get returns a Tool entity by its id.
func (c *ToolClient) Get(ctx context.Context, id string) (*Tool, error) {
	return c.Query().Where(tool.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ToolClient) GetX(ctx context.Context, id string) *Tool {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ToolClient) Hooks() []Hook {
	return c.hooks.Tool
}

// Interceptors returns the client interceptors.
func (c *ToolClient) Interceptors() []Interceptor {
	return c.inters.Tool
}

func (c *ToolClient) mutate(ctx context.Context, m *ToolMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ToolCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ToolUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ToolUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ToolDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Tool mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Agent, Execution, HITLRequest, LearningFeedback, MemoryItem, ReasoningTrace,
		Tool []ent.Hook
	}
	inters struct {
		Agent, Execution, HITLRequest, LearningFeedback, MemoryItem, ReasoningTrace,
		Tool []ent.Interceptor
	}
)
