// Code generated by ent, DO NOT EDIT.

package ent

import (
	"biomind/ent/predicate"
	"biomind/ent/topicmastery"
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// TopicMasteryUpdate is the builder for updating TopicMastery entities.
type TopicMasteryUpdate struct {
	config
	hooks    []Hook
	mutation *TopicMasteryMutation
}

// Where appends a list predicates to the TopicMasteryUpdate builder.
func (_u *TopicMasteryUpdate) Where(ps ...predicate.TopicMastery) *TopicMasteryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TopicMasteryUpdate) SetUserID(v int) *TopicMasteryUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TopicMasteryUpdate) SetNillableUserID(v *int) *TopicMasteryUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *TopicMasteryUpdate) AddUserID(v int) *TopicMasteryUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetTopicName sets the "topic_name" field.
func (_u *TopicMasteryUpdate) SetTopicName(v string) *TopicMasteryUpdate {
	_u.mutation.SetTopicName(v)
	return _u
}

// SetNillableTopicName sets the "topic_name" field if the given value is not nil.
func (_u *TopicMasteryUpdate) SetNillableTopicName(v *string) *TopicMasteryUpdate {
	if v != nil {
		_u.SetTopicName(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *TopicMasteryUpdate) SetAttempts(v int) *TopicMasteryUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *TopicMasteryUpdate) SetNillableAttempts(v *int) *TopicMasteryUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *TopicMasteryUpdate) AddAttempts(v int) *TopicMasteryUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *TopicMasteryUpdate) SetCorrect(v int) *TopicMasteryUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *TopicMasteryUpdate) SetNillableCorrect(v *int) *TopicMasteryUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *TopicMasteryUpdate) AddCorrect(v int) *TopicMasteryUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *TopicMasteryUpdate) SetAccuracy(v float64) *TopicMasteryUpdate {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *TopicMasteryUpdate) SetNillableAccuracy(v *float64) *TopicMasteryUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *TopicMasteryUpdate) AddAccuracy(v float64) *TopicMasteryUpdate {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetCurrentLevel sets the "current_level" field.
func (_u *TopicMasteryUpdate) SetCurrentLevel(v topicmastery.CurrentLevel) *TopicMasteryUpdate {
	_u.mutation.SetCurrentLevel(v)
	return _u
}

// SetNillableCurrentLevel sets the "current_level" field if the given value is not nil.
func (_u *TopicMasteryUpdate) SetNillableCurrentLevel(v *topicmastery.CurrentLevel) *TopicMasteryUpdate {
	if v != nil {
		_u.SetCurrentLevel(*v)
	}
	return _u
}

// Mutation returns the TopicMasteryMutation object of the builder.
func (_u *TopicMasteryUpdate) Mutation() *TopicMasteryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TopicMasteryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicMasteryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TopicMasteryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicMasteryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicMasteryUpdate) check() error {
	if v, ok := _u.mutation.TopicName(); ok {
		if err := topicmastery.TopicNameValidator(v); err != nil {
			return &ValidationError{Name: "topic_name", err: fmt.Errorf(`ent: validator failed for field "TopicMastery.topic_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := topicmastery.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "TopicMastery.attempts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Correct(); ok {
		if err := topicmastery.CorrectValidator(v); err != nil {
			return &ValidationError{Name: "correct", err: fmt.Errorf(`ent: validator failed for field "TopicMastery.correct": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentLevel(); ok {
		if err := topicmastery.CurrentLevelValidator(v); err != nil {
			return &ValidationError{Name: "current_level", err: fmt.Errorf(`ent: validator failed for field "TopicMastery.current_level": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicMasteryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicmastery.Table, topicmastery.Columns, sqlgraph.NewFieldSpec(topicmastery.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(topicmastery.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(topicmastery.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TopicName(); ok {
		_spec.SetField(topicmastery.FieldTopicName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(topicmastery.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(topicmastery.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(topicmastery.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(topicmastery.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(topicmastery.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(topicmastery.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrentLevel(); ok {
		_spec.SetField(topicmastery.FieldCurrentLevel, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicmastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TopicMasteryUpdateOne is the builder for updating a single TopicMastery entity.
type TopicMasteryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicMasteryMutation
}

// SetUserID sets the "user_id" field.
func (_u *TopicMasteryUpdateOne) SetUserID(v int) *TopicMasteryUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TopicMasteryUpdateOne) SetNillableUserID(v *int) *TopicMasteryUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *TopicMasteryUpdateOne) AddUserID(v int) *TopicMasteryUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetTopicName sets the "topic_name" field.
func (_u *TopicMasteryUpdateOne) SetTopicName(v string) *TopicMasteryUpdateOne {
	_u.mutation.SetTopicName(v)
	return _u
}

// SetNillableTopicName sets the "topic_name" field if the given value is not nil.
func (_u *TopicMasteryUpdateOne) SetNillableTopicName(v *string) *TopicMasteryUpdateOne {
	if v != nil {
		_u.SetTopicName(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *TopicMasteryUpdateOne) SetAttempts(v int) *TopicMasteryUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *TopicMasteryUpdateOne) SetNillableAttempts(v *int) *TopicMasteryUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *TopicMasteryUpdateOne) AddAttempts(v int) *TopicMasteryUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *TopicMasteryUpdateOne) SetCorrect(v int) *TopicMasteryUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *TopicMasteryUpdateOne) SetNillableCorrect(v *int) *TopicMasteryUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *TopicMasteryUpdateOne) AddCorrect(v int) *TopicMasteryUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *TopicMasteryUpdateOne) SetAccuracy(v float64) *TopicMasteryUpdateOne {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *TopicMasteryUpdateOne) SetNillableAccuracy(v *float64) *TopicMasteryUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *TopicMasteryUpdateOne) AddAccuracy(v float64) *TopicMasteryUpdateOne {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetCurrentLevel sets the "current_level" field.
func (_u *TopicMasteryUpdateOne) SetCurrentLevel(v topicmastery.CurrentLevel) *TopicMasteryUpdateOne {
	_u.mutation.SetCurrentLevel(v)
	return _u
}

// SetNillableCurrentLevel sets the "current_level" field if the given value is not nil.
func (_u *TopicMasteryUpdateOne) SetNillableCurrentLevel(v *topicmastery.CurrentLevel) *TopicMasteryUpdateOne {
	if v != nil {
		_u.SetCurrentLevel(*v)
	}
	return _u
}

// Mutation returns the TopicMasteryMutation object of the builder.
func (_u *TopicMasteryUpdateOne) Mutation() *TopicMasteryMutation {
	return _u.mutation
}

// Where appends a list predicates to the TopicMasteryUpdate builder.
func (_u *TopicMasteryUpdateOne) Where(ps ...predicate.TopicMastery) *TopicMasteryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TopicMasteryUpdateOne) Select(field string, fields ...string) *TopicMasteryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TopicMastery entity.
func (_u *TopicMasteryUpdateOne) Save(ctx context.Context) (*TopicMastery, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicMasteryUpdateOne) SaveX(ctx context.Context) *TopicMastery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TopicMasteryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicMasteryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicMasteryUpdateOne) check() error {
	if v, ok := _u.mutation.TopicName(); ok {
		if err := topicmastery.TopicNameValidator(v); err != nil {
			return &ValidationError{Name: "topic_name", err: fmt.Errorf(`ent: validator failed for field "TopicMastery.topic_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := topicmastery.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "TopicMastery.attempts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Correct(); ok {
		if err := topicmastery.CorrectValidator(v); err != nil {
			return &ValidationError{Name: "correct", err: fmt.Errorf(`ent: validator failed for field "TopicMastery.correct": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentLevel(); ok {
		if err := topicmastery.CurrentLevelValidator(v); err != nil {
			return &ValidationError{Name: "current_level", err: fmt.Errorf(`ent: validator failed for field "TopicMastery.current_level": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicMasteryUpdateOne) sqlSave(ctx context.Context) (_node *TopicMastery, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicmastery.Table, topicmastery.Columns, sqlgraph.NewFieldSpec(topicmastery.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TopicMastery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topicmastery.FieldID)
		for _, f := range fields {
			if !topicmastery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topicmastery.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(topicmastery.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(topicmastery.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TopicName(); ok {
		_spec.SetField(topicmastery.FieldTopicName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(topicmastery.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(topicmastery.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(topicmastery.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(topicmastery.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(topicmastery.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(topicmastery.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrentLevel(); ok {
		_spec.SetField(topicmastery.FieldCurrentLevel, field.TypeEnum, value)
	}
	_node = &TopicMastery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicmastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
