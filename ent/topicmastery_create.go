// Code generated by ent, DO NOT EDIT.

package ent

import (
	"biomind/ent/topicmastery"
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// TopicMasteryCreate is the builder for creating a TopicMastery entity.
type TopicMasteryCreate struct {
	config
	mutation *TopicMasteryMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *TopicMasteryCreate) SetUserID(v int) *TopicMasteryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTopicName sets the "topic_name" field.
func (_c *TopicMasteryCreate) SetTopicName(v string) *TopicMasteryCreate {
	_c.mutation.SetTopicName(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *TopicMasteryCreate) SetAttempts(v int) *TopicMasteryCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *TopicMasteryCreate) SetNillableAttempts(v *int) *TopicMasteryCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *TopicMasteryCreate) SetCorrect(v int) *TopicMasteryCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_c *TopicMasteryCreate) SetNillableCorrect(v *int) *TopicMasteryCreate {
	if v != nil {
		_c.SetCorrect(*v)
	}
	return _c
}

// SetAccuracy sets the "accuracy" field.
func (_c *TopicMasteryCreate) SetAccuracy(v float64) *TopicMasteryCreate {
	_c.mutation.SetAccuracy(v)
	return _c
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_c *TopicMasteryCreate) SetNillableAccuracy(v *float64) *TopicMasteryCreate {
	if v != nil {
		_c.SetAccuracy(*v)
	}
	return _c
}

// SetCurrentLevel sets the "current_level" field.
func (_c *TopicMasteryCreate) SetCurrentLevel(v topicmastery.CurrentLevel) *TopicMasteryCreate {
	_c.mutation.SetCurrentLevel(v)
	return _c
}

// SetNillableCurrentLevel sets the "current_level" field if the given value is not nil.
func (_c *TopicMasteryCreate) SetNillableCurrentLevel(v *topicmastery.CurrentLevel) *TopicMasteryCreate {
	if v != nil {
		_c.SetCurrentLevel(*v)
	}
	return _c
}

// Mutation returns the TopicMasteryMutation object of the builder.
func (_c *TopicMasteryCreate) Mutation() *TopicMasteryMutation {
	return _c.mutation
}

// Save creates the TopicMastery in the database.
func (_c *TopicMasteryCreate) Save(ctx context.Context) (*TopicMastery, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TopicMasteryCreate) SaveX(ctx context.Context) *TopicMastery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicMasteryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicMasteryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TopicMasteryCreate) defaults() {
	if _, ok := _c.mutation.Attempts(); !ok {
		v := topicmastery.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.Correct(); !ok {
		v := topicmastery.DefaultCorrect
		_c.mutation.SetCorrect(v)
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		v := topicmastery.DefaultAccuracy
		_c.mutation.SetAccuracy(v)
	}
	if _, ok := _c.mutation.CurrentLevel(); !ok {
		v := topicmastery.DefaultCurrentLevel
		_c.mutation.SetCurrentLevel(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TopicMasteryCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "TopicMastery.user_id"`)}
	}
	if _, ok := _c.mutation.TopicName(); !ok {
		return &ValidationError{Name: "topic_name", err: errors.New(`ent: missing required field "TopicMastery.topic_name"`)}
	}
	if v, ok := _c.mutation.TopicName(); ok {
		if err := topicmastery.TopicNameValidator(v); err != nil {
			return &ValidationError{Name: "topic_name", err: fmt.Errorf(`ent: validator failed for field "TopicMastery.topic_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "TopicMastery.attempts"`)}
	}
	if v, ok := _c.mutation.Attempts(); ok {
		if err := topicmastery.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "TopicMastery.attempts": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "TopicMastery.correct"`)}
	}
	if v, ok := _c.mutation.Correct(); ok {
		if err := topicmastery.CorrectValidator(v); err != nil {
			return &ValidationError{Name: "correct", err: fmt.Errorf(`ent: validator failed for field "TopicMastery.correct": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		return &ValidationError{Name: "accuracy", err: errors.New(`ent: missing required field "TopicMastery.accuracy"`)}
	}
	if _, ok := _c.mutation.CurrentLevel(); !ok {
		return &ValidationError{Name: "current_level", err: errors.New(`ent: missing required field "TopicMastery.current_level"`)}
	}
	if v, ok := _c.mutation.CurrentLevel(); ok {
		if err := topicmastery.CurrentLevelValidator(v); err != nil {
			return &ValidationError{Name: "current_level", err: fmt.Errorf(`ent: validator failed for field "TopicMastery.current_level": %w`, err)}
		}
	}
	return nil
}

func (_c *TopicMasteryCreate) sqlSave(ctx context.Context) (*TopicMastery, error) {
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

func (_c *TopicMasteryCreate) createSpec() (*TopicMastery, *sqlgraph.CreateSpec) {
	var (
		_node = &TopicMastery{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(topicmastery.Table, sqlgraph.NewFieldSpec(topicmastery.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(topicmastery.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TopicName(); ok {
		_spec.SetField(topicmastery.FieldTopicName, field.TypeString, value)
		_node.TopicName = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(topicmastery.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(topicmastery.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Accuracy(); ok {
		_spec.SetField(topicmastery.FieldAccuracy, field.TypeFloat64, value)
		_node.Accuracy = value
	}
	if value, ok := _c.mutation.CurrentLevel(); ok {
		_spec.SetField(topicmastery.FieldCurrentLevel, field.TypeEnum, value)
		_node.CurrentLevel = value
	}
	return _node, _spec
}

// TopicMasteryCreateBulk is the builder for creating many TopicMastery entities in bulk.
type TopicMasteryCreateBulk struct {
	config
	err      error
	builders []*TopicMasteryCreate
}

// Save creates the TopicMastery entities in the database.
func (_c *TopicMasteryCreateBulk) Save(ctx context.Context) ([]*TopicMastery, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TopicMastery, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TopicMasteryMutation)
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
func (_c *TopicMasteryCreateBulk) SaveX(ctx context.Context) []*TopicMastery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicMasteryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicMasteryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
