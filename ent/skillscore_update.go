// Code generated by ent, DO NOT EDIT.

package ent

import (
	"biomind/ent/predicate"
	"biomind/ent/skillscore"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// SkillScoreUpdate is the builder for updating SkillScore entities.
type SkillScoreUpdate struct {
	config
	hooks    []Hook
	mutation *SkillScoreMutation
}

// Where appends a list predicates to the SkillScoreUpdate builder.
func (_u *SkillScoreUpdate) Where(ps ...predicate.SkillScore) *SkillScoreUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SkillScoreUpdate) SetUserID(v int) *SkillScoreUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SkillScoreUpdate) SetNillableUserID(v *int) *SkillScoreUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *SkillScoreUpdate) AddUserID(v int) *SkillScoreUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetSkillName sets the "skill_name" field.
func (_u *SkillScoreUpdate) SetSkillName(v string) *SkillScoreUpdate {
	_u.mutation.SetSkillName(v)
	return _u
}

// SetNillableSkillName sets the "skill_name" field if the given value is not nil.
func (_u *SkillScoreUpdate) SetNillableSkillName(v *string) *SkillScoreUpdate {
	if v != nil {
		_u.SetSkillName(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *SkillScoreUpdate) SetScore(v float64) *SkillScoreUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SkillScoreUpdate) SetNillableScore(v *float64) *SkillScoreUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SkillScoreUpdate) AddScore(v float64) *SkillScoreUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *SkillScoreUpdate) SetSource(v string) *SkillScoreUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *SkillScoreUpdate) SetNillableSource(v *string) *SkillScoreUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *SkillScoreUpdate) ClearSource() *SkillScoreUpdate {
	_u.mutation.ClearSource()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SkillScoreUpdate) SetUpdatedAt(v time.Time) *SkillScoreUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SkillScoreMutation object of the builder.
func (_u *SkillScoreUpdate) Mutation() *SkillScoreMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SkillScoreUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillScoreUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SkillScoreUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillScoreUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SkillScoreUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := skillscore.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SkillScoreUpdate) check() error {
	if v, ok := _u.mutation.SkillName(); ok {
		if err := skillscore.SkillNameValidator(v); err != nil {
			return &ValidationError{Name: "skill_name", err: fmt.Errorf(`ent: validator failed for field "SkillScore.skill_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := skillscore.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "SkillScore.source": %w`, err)}
		}
	}
	return nil
}

func (_u *SkillScoreUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(skillscore.Table, skillscore.Columns, sqlgraph.NewFieldSpec(skillscore.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(skillscore.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(skillscore.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkillName(); ok {
		_spec.SetField(skillscore.FieldSkillName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(skillscore.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(skillscore.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(skillscore.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(skillscore.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(skillscore.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SkillScoreUpdateOne is the builder for updating a single SkillScore entity.
type SkillScoreUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SkillScoreMutation
}

// SetUserID sets the "user_id" field.
func (_u *SkillScoreUpdateOne) SetUserID(v int) *SkillScoreUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SkillScoreUpdateOne) SetNillableUserID(v *int) *SkillScoreUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *SkillScoreUpdateOne) AddUserID(v int) *SkillScoreUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetSkillName sets the "skill_name" field.
func (_u *SkillScoreUpdateOne) SetSkillName(v string) *SkillScoreUpdateOne {
	_u.mutation.SetSkillName(v)
	return _u
}

// SetNillableSkillName sets the "skill_name" field if the given value is not nil.
func (_u *SkillScoreUpdateOne) SetNillableSkillName(v *string) *SkillScoreUpdateOne {
	if v != nil {
		_u.SetSkillName(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *SkillScoreUpdateOne) SetScore(v float64) *SkillScoreUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SkillScoreUpdateOne) SetNillableScore(v *float64) *SkillScoreUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SkillScoreUpdateOne) AddScore(v float64) *SkillScoreUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *SkillScoreUpdateOne) SetSource(v string) *SkillScoreUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *SkillScoreUpdateOne) SetNillableSource(v *string) *SkillScoreUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *SkillScoreUpdateOne) ClearSource() *SkillScoreUpdateOne {
	_u.mutation.ClearSource()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SkillScoreUpdateOne) SetUpdatedAt(v time.Time) *SkillScoreUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SkillScoreMutation object of the builder.
func (_u *SkillScoreUpdateOne) Mutation() *SkillScoreMutation {
	return _u.mutation
}

// Where appends a list predicates to the SkillScoreUpdate builder.
func (_u *SkillScoreUpdateOne) Where(ps ...predicate.SkillScore) *SkillScoreUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SkillScoreUpdateOne) Select(field string, fields ...string) *SkillScoreUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SkillScore entity.
func (_u *SkillScoreUpdateOne) Save(ctx context.Context) (*SkillScore, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillScoreUpdateOne) SaveX(ctx context.Context) *SkillScore {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SkillScoreUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillScoreUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SkillScoreUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := skillscore.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SkillScoreUpdateOne) check() error {
	if v, ok := _u.mutation.SkillName(); ok {
		if err := skillscore.SkillNameValidator(v); err != nil {
			return &ValidationError{Name: "skill_name", err: fmt.Errorf(`ent: validator failed for field "SkillScore.skill_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := skillscore.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "SkillScore.source": %w`, err)}
		}
	}
	return nil
}

func (_u *SkillScoreUpdateOne) sqlSave(ctx context.Context) (_node *SkillScore, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(skillscore.Table, skillscore.Columns, sqlgraph.NewFieldSpec(skillscore.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SkillScore.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, skillscore.FieldID)
		for _, f := range fields {
			if !skillscore.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != skillscore.FieldID {
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
		_spec.SetField(skillscore.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(skillscore.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkillName(); ok {
		_spec.SetField(skillscore.FieldSkillName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(skillscore.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(skillscore.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(skillscore.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(skillscore.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(skillscore.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SkillScore{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
