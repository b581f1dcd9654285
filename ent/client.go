// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"biomind/ent/migrate"

	"biomind/ent/careergoal"
	"biomind/ent/lablog"
	"biomind/ent/quizresult"
	"biomind/ent/skillscore"
	"biomind/ent/topicmastery"
	"biomind/ent/user"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CareerGoal is the client for interacting with the CareerGoal builders.
	CareerGoal *CareerGoalClient
	// LabLog is the client for interacting with the LabLog builders.
	LabLog *LabLogClient
	// QuizResult is the client for interacting with the QuizResult builders.
	QuizResult *QuizResultClient
	// SkillScore is the client for interacting with the SkillScore builders.
	SkillScore *SkillScoreClient
	// TopicMastery is the client for interacting with the TopicMastery builders.
	TopicMastery *TopicMasteryClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CareerGoal = NewCareerGoalClient(c.config)
	c.LabLog = NewLabLogClient(c.config)
	c.QuizResult = NewQuizResultClient(c.config)
	c.SkillScore = NewSkillScoreClient(c.config)
	c.TopicMastery = NewTopicMasteryClient(c.config)
	c.User = NewUserClient(c.config)
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
		ctx:          ctx,
		config:       cfg,
		CareerGoal:   NewCareerGoalClient(cfg),
		LabLog:       NewLabLogClient(cfg),
		QuizResult:   NewQuizResultClient(cfg),
		SkillScore:   NewSkillScoreClient(cfg),
		TopicMastery: NewTopicMasteryClient(cfg),
		User:         NewUserClient(cfg),
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
		ctx:          ctx,
		config:       cfg,
		CareerGoal:   NewCareerGoalClient(cfg),
		LabLog:       NewLabLogClient(cfg),
		QuizResult:   NewQuizResultClient(cfg),
		SkillScore:   NewSkillScoreClient(cfg),
		TopicMastery: NewTopicMasteryClient(cfg),
		User:         NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CareerGoal.
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
		c.CareerGoal, c.LabLog, c.QuizResult, c.SkillScore, c.TopicMastery, c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.CareerGoal, c.LabLog, c.QuizResult, c.SkillScore, c.TopicMastery, c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CareerGoalMutation:
		return c.CareerGoal.mutate(ctx, m)
	case *LabLogMutation:
		return c.LabLog.mutate(ctx, m)
	case *QuizResultMutation:
		return c.QuizResult.mutate(ctx, m)
	case *SkillScoreMutation:
		return c.SkillScore.mutate(ctx, m)
	case *TopicMasteryMutation:
		return c.TopicMastery.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CareerGoalClient is a client for the CareerGoal schema.
type CareerGoalClient struct {
	config
}

// NewCareerGoalClient returns a client for the CareerGoal from the given config.
func NewCareerGoalClient(c config) *CareerGoalClient {
	return &CareerGoalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `careergoal.Hooks(f(g(h())))`.
func (c *CareerGoalClient) Use(hooks ...Hook) {
	c.hooks.CareerGoal = append(c.hooks.CareerGoal, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `careergoal.Intercept(f(g(h())))`.
func (c *CareerGoalClient) Intercept(interceptors ...Interceptor) {
	c.inters.CareerGoal = append(c.inters.CareerGoal, interceptors...)
}

// Create returns a builder for creating a CareerGoal entity.
func (c *CareerGoalClient) Create() *CareerGoalCreate {
	mutation := newCareerGoalMutation(c.config, OpCreate)
	return &CareerGoalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CareerGoal entities.
func (c *CareerGoalClient) CreateBulk(builders ...*CareerGoalCreate) *CareerGoalCreateBulk {
	return &CareerGoalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CareerGoalClient) MapCreateBulk(slice any, setFunc func(*CareerGoalCreate, int)) *CareerGoalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CareerGoalCreateBulk{err: fmt.Errorf("calling to CareerGoalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CareerGoalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CareerGoalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CareerGoal.
func (c *CareerGoalClient) Update() *CareerGoalUpdate {
	mutation := newCareerGoalMutation(c.config, OpUpdate)
	return &CareerGoalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CareerGoalClient) UpdateOne(_m *CareerGoal) *CareerGoalUpdateOne {
	mutation := newCareerGoalMutation(c.config, OpUpdateOne, withCareerGoal(_m))
	return &CareerGoalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CareerGoalClient) UpdateOneID(id int) *CareerGoalUpdateOne {
	mutation := newCareerGoalMutation(c.config, OpUpdateOne, withCareerGoalID(id))
	return &CareerGoalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CareerGoal.
func (c *CareerGoalClient) Delete() *CareerGoalDelete {
	mutation := newCareerGoalMutation(c.config, OpDelete)
	return &CareerGoalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CareerGoalClient) DeleteOne(_m *CareerGoal) *CareerGoalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CareerGoalClient) DeleteOneID(id int) *CareerGoalDeleteOne {
	builder := c.Delete().Where(careergoal.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CareerGoalDeleteOne{builder}
}

// Query returns a query builder for CareerGoal.
func (c *CareerGoalClient) Query() *CareerGoalQuery {
	return &CareerGoalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCareerGoal},
		inters: c.Interceptors(),
	}
}

// Get returns a CareerGoal entity by its id.
func (c *CareerGoalClient) Get(ctx context.Context, id int) (*CareerGoal, error) {
	return c.Query().Where(careergoal.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CareerGoalClient) GetX(ctx context.Context, id int) *CareerGoal {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CareerGoalClient) Hooks() []Hook {
	return c.hooks.CareerGoal
}

// Interceptors returns the client interceptors.
func (c *CareerGoalClient) Interceptors() []Interceptor {
	return c.inters.CareerGoal
}

func (c *CareerGoalClient) mutate(ctx context.Context, m *CareerGoalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CareerGoalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CareerGoalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CareerGoalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CareerGoalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CareerGoal mutation op: %q", m.Op())
	}
}

// LabLogClient is a client for the LabLog schema.
type LabLogClient struct {
	config
}

// NewLabLogClient returns a client for the LabLog from the given config.
func NewLabLogClient(c config) *LabLogClient {
	return &LabLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lablog.Hooks(f(g(h())))`.
func (c *LabLogClient) Use(hooks ...Hook) {
	c.hooks.LabLog = append(c.hooks.LabLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lablog.Intercept(f(g(h())))`.
func (c *LabLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.LabLog = append(c.inters.LabLog, interceptors...)
}

// Create returns a builder for creating a LabLog entity.
func (c *LabLogClient) Create() *LabLogCreate {
	mutation := newLabLogMutation(c.config, OpCreate)
	return &LabLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LabLog entities.
func (c *LabLogClient) CreateBulk(builders ...*LabLogCreate) *LabLogCreateBulk {
	return &LabLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LabLogClient) MapCreateBulk(slice any, setFunc func(*LabLogCreate, int)) *LabLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LabLogCreateBulk{err: fmt.Errorf("calling to LabLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LabLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LabLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LabLog.
func (c *LabLogClient) Update() *LabLogUpdate {
	mutation := newLabLogMutation(c.config, OpUpdate)
	return &LabLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LabLogClient) UpdateOne(_m *LabLog) *LabLogUpdateOne {
	mutation := newLabLogMutation(c.config, OpUpdateOne, withLabLog(_m))
	return &LabLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LabLogClient) UpdateOneID(id int) *LabLogUpdateOne {
	mutation := newLabLogMutation(c.config, OpUpdateOne, withLabLogID(id))
	return &LabLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LabLog.
func (c *LabLogClient) Delete() *LabLogDelete {
	mutation := newLabLogMutation(c.config, OpDelete)
	return &LabLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LabLogClient) DeleteOne(_m *LabLog) *LabLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LabLogClient) DeleteOneID(id int) *LabLogDeleteOne {
	builder := c.Delete().Where(lablog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LabLogDeleteOne{builder}
}

// Query returns a query builder for LabLog.
func (c *LabLogClient) Query() *LabLogQuery {
	return &LabLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLabLog},
		inters: c.Interceptors(),
	}
}

// Get returns a LabLog entity by its id.
func (c *LabLogClient) Get(ctx context.Context, id int) (*LabLog, error) {
	return c.Query().Where(lablog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LabLogClient) GetX(ctx context.Context, id int) *LabLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LabLogClient) Hooks() []Hook {
	return c.hooks.LabLog
}

// Interceptors returns the client interceptors.
func (c *LabLogClient) Interceptors() []Interceptor {
	return c.inters.LabLog
}

func (c *LabLogClient) mutate(ctx context.Context, m *LabLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LabLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LabLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LabLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LabLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LabLog mutation op: %q", m.Op())
	}
}

// QuizResultClient is a client for the QuizResult schema.
type QuizResultClient struct {
	config
}

// NewQuizResultClient returns a client for the QuizResult from the given config.
func NewQuizResultClient(c config) *QuizResultClient {
	return &QuizResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quizresult.Hooks(f(g(h())))`.
func (c *QuizResultClient) Use(hooks ...Hook) {
	c.hooks.QuizResult = append(c.hooks.QuizResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quizresult.Intercept(f(g(h())))`.
func (c *QuizResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuizResult = append(c.inters.QuizResult, interceptors...)
}

// Create returns a builder for creating a QuizResult entity.
func (c *QuizResultClient) Create() *QuizResultCreate {
	mutation := newQuizResultMutation(c.config, OpCreate)
	return &QuizResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuizResult entities.
func (c *QuizResultClient) CreateBulk(builders ...*QuizResultCreate) *QuizResultCreateBulk {
	return &QuizResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuizResultClient) MapCreateBulk(slice any, setFunc func(*QuizResultCreate, int)) *QuizResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuizResultCreateBulk{err: fmt.Errorf("calling to QuizResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuizResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuizResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuizResult.
func (c *QuizResultClient) Update() *QuizResultUpdate {
	mutation := newQuizResultMutation(c.config, OpUpdate)
	return &QuizResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuizResultClient) UpdateOne(_m *QuizResult) *QuizResultUpdateOne {
	mutation := newQuizResultMutation(c.config, OpUpdateOne, withQuizResult(_m))
	return &QuizResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuizResultClient) UpdateOneID(id int) *QuizResultUpdateOne {
	mutation := newQuizResultMutation(c.config, OpUpdateOne, withQuizResultID(id))
	return &QuizResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuizResult.
func (c *QuizResultClient) Delete() *QuizResultDelete {
	mutation := newQuizResultMutation(c.config, OpDelete)
	return &QuizResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuizResultClient) DeleteOne(_m *QuizResult) *QuizResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuizResultClient) DeleteOneID(id int) *QuizResultDeleteOne {
	builder := c.Delete().Where(quizresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuizResultDeleteOne{builder}
}

// Query returns a query builder for QuizResult.
func (c *QuizResultClient) Query() *QuizResultQuery {
	return &QuizResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuizResult},
		inters: c.Interceptors(),
	}
}

// Get returns a QuizResult entity by its id.
func (c *QuizResultClient) Get(ctx context.Context, id int) (*QuizResult, error) {
	return c.Query().Where(quizresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuizResultClient) GetX(ctx context.Context, id int) *QuizResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuizResultClient) Hooks() []Hook {
	return c.hooks.QuizResult
}

// Interceptors returns the client interceptors.
func (c *QuizResultClient) Interceptors() []Interceptor {
	return c.inters.QuizResult
}

func (c *QuizResultClient) mutate(ctx context.Context, m *QuizResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuizResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuizResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuizResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuizResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuizResult mutation op: %q", m.Op())
	}
}

// SkillScoreClient is a client for the SkillScore schema.
type SkillScoreClient struct {
	config
}

// NewSkillScoreClient returns a client for the SkillScore from the given config.
func NewSkillScoreClient(c config) *SkillScoreClient {
	return &SkillScoreClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `skillscore.Hooks(f(g(h())))`.
func (c *SkillScoreClient) Use(hooks ...Hook) {
	c.hooks.SkillScore = append(c.hooks.SkillScore, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `skillscore.Intercept(f(g(h())))`.
func (c *SkillScoreClient) Intercept(interceptors ...Interceptor) {
	c.inters.SkillScore = append(c.inters.SkillScore, interceptors...)
}

// Create returns a builder for creating a SkillScore entity.
func (c *SkillScoreClient) Create() *SkillScoreCreate {
	mutation := newSkillScoreMutation(c.config, OpCreate)
	return &SkillScoreCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SkillScore entities.
func (c *SkillScoreClient) CreateBulk(builders ...*SkillScoreCreate) *SkillScoreCreateBulk {
	return &SkillScoreCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SkillScoreClient) MapCreateBulk(slice any, setFunc func(*SkillScoreCreate, int)) *SkillScoreCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SkillScoreCreateBulk{err: fmt.Errorf("calling to SkillScoreClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SkillScoreCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SkillScoreCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SkillScore.
func (c *SkillScoreClient) Update() *SkillScoreUpdate {
	mutation := newSkillScoreMutation(c.config, OpUpdate)
	return &SkillScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SkillScoreClient) UpdateOne(_m *SkillScore) *SkillScoreUpdateOne {
	mutation := newSkillScoreMutation(c.config, OpUpdateOne, withSkillScore(_m))
	return &SkillScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SkillScoreClient) UpdateOneID(id int) *SkillScoreUpdateOne {
	mutation := newSkillScoreMutation(c.config, OpUpdateOne, withSkillScoreID(id))
	return &SkillScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SkillScore.
func (c *SkillScoreClient) Delete() *SkillScoreDelete {
	mutation := newSkillScoreMutation(c.config, OpDelete)
	return &SkillScoreDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SkillScoreClient) DeleteOne(_m *SkillScore) *SkillScoreDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SkillScoreClient) DeleteOneID(id int) *SkillScoreDeleteOne {
	builder := c.Delete().Where(skillscore.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SkillScoreDeleteOne{builder}
}

// Query returns a query builder for SkillScore.
func (c *SkillScoreClient) Query() *SkillScoreQuery {
	return &SkillScoreQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSkillScore},
		inters: c.Interceptors(),
	}
}

// Get returns a SkillScore entity by its id.
func (c *SkillScoreClient) Get(ctx context.Context, id int) (*SkillScore, error) {
	return c.Query().Where(skillscore.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SkillScoreClient) GetX(ctx context.Context, id int) *SkillScore {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SkillScoreClient) Hooks() []Hook {
	return c.hooks.SkillScore
}

// Interceptors returns the client interceptors.
func (c *SkillScoreClient) Interceptors() []Interceptor {
	return c.inters.SkillScore
}

func (c *SkillScoreClient) mutate(ctx context.Context, m *SkillScoreMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SkillScoreCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SkillScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SkillScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SkillScoreDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SkillScore mutation op: %q", m.Op())
	}
}

// TopicMasteryClient is a client for the TopicMastery schema.
type TopicMasteryClient struct {
	config
}

// NewTopicMasteryClient returns a client for the TopicMastery from the given config.
func NewTopicMasteryClient(c config) *TopicMasteryClient {
	return &TopicMasteryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `topicmastery.Hooks(f(g(h())))`.
func (c *TopicMasteryClient) Use(hooks ...Hook) {
	c.hooks.TopicMastery = append(c.hooks.TopicMastery, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `topicmastery.Intercept(f(g(h())))`.
func (c *TopicMasteryClient) Intercept(interceptors ...Interceptor) {
	c.inters.TopicMastery = append(c.inters.TopicMastery, interceptors...)
}

// Create returns a builder for creating a TopicMastery entity.
func (c *TopicMasteryClient) Create() *TopicMasteryCreate {
	mutation := newTopicMasteryMutation(c.config, OpCreate)
	return &TopicMasteryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TopicMastery entities.
func (c *TopicMasteryClient) CreateBulk(builders ...*TopicMasteryCreate) *TopicMasteryCreateBulk {
	return &TopicMasteryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TopicMasteryClient) MapCreateBulk(slice any, setFunc func(*TopicMasteryCreate, int)) *TopicMasteryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TopicMasteryCreateBulk{err: fmt.Errorf("calling to TopicMasteryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TopicMasteryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TopicMasteryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TopicMastery.
func (c *TopicMasteryClient) Update() *TopicMasteryUpdate {
	mutation := newTopicMasteryMutation(c.config, OpUpdate)
	return &TopicMasteryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TopicMasteryClient) UpdateOne(_m *TopicMastery) *TopicMasteryUpdateOne {
	mutation := newTopicMasteryMutation(c.config, OpUpdateOne, withTopicMastery(_m))
	return &TopicMasteryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TopicMasteryClient) UpdateOneID(id int) *TopicMasteryUpdateOne {
	mutation := newTopicMasteryMutation(c.config, OpUpdateOne, withTopicMasteryID(id))
	return &TopicMasteryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TopicMastery.
func (c *TopicMasteryClient) Delete() *TopicMasteryDelete {
	mutation := newTopicMasteryMutation(c.config, OpDelete)
	return &TopicMasteryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TopicMasteryClient) DeleteOne(_m *TopicMastery) *TopicMasteryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TopicMasteryClient) DeleteOneID(id int) *TopicMasteryDeleteOne {
	builder := c.Delete().Where(topicmastery.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TopicMasteryDeleteOne{builder}
}

// Query returns a query builder for TopicMastery.
func (c *TopicMasteryClient) Query() *TopicMasteryQuery {
	return &TopicMasteryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTopicMastery},
		inters: c.Interceptors(),
	}
}

// Get returns a TopicMastery entity by its id.
func (c *TopicMasteryClient) Get(ctx context.Context, id int) (*TopicMastery, error) {
	return c.Query().Where(topicmastery.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TopicMasteryClient) GetX(ctx context.Context, id int) *TopicMastery {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TopicMasteryClient) Hooks() []Hook {
	return c.hooks.TopicMastery
}

// Interceptors returns the client interceptors.
func (c *TopicMasteryClient) Interceptors() []Interceptor {
	return c.inters.TopicMastery
}

func (c *TopicMasteryClient) mutate(ctx context.Context, m *TopicMasteryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TopicMasteryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TopicMasteryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TopicMasteryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TopicMasteryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TopicMastery mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id int) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id int) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id int) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id int) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CareerGoal, LabLog, QuizResult, SkillScore, TopicMastery, User []ent.Hook
	}
	inters struct {
		CareerGoal, LabLog, QuizResult, SkillScore, TopicMastery, User []ent.Interceptor
	}
)
