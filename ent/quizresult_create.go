// Code generated by ent, DO NOT EDIT.

package ent

import (
	"biomind/ent/quizresult"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// QuizResultCreate is the builder for creating a QuizResult entity.
type QuizResultCreate struct {
	config
	mutation *QuizResultMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *QuizResultCreate) SetUserID(v int) *QuizResultCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *QuizResultCreate) SetTopic(v string) *QuizResultCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *QuizResultCreate) SetQuestionType(v string) *QuizResultCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetQuestionData sets the "question_data" field.
func (_c *QuizResultCreate) SetQuestionData(v map[string]interface{}) *QuizResultCreate {
	_c.mutation.SetQuestionData(v)
	return _c
}

// SetStudentAnswer sets the "student_answer" field.
func (_c *QuizResultCreate) SetStudentAnswer(v string) *QuizResultCreate {
	_c.mutation.SetStudentAnswer(v)
	return _c
}

// SetNillableStudentAnswer sets the "student_answer" field if the given value is not nil.
func (_c *QuizResultCreate) SetNillableStudentAnswer(v *string) *QuizResultCreate {
	if v != nil {
		_c.SetStudentAnswer(*v)
	}
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *QuizResultCreate) SetCorrectAnswer(v string) *QuizResultCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_c *QuizResultCreate) SetNillableCorrectAnswer(v *string) *QuizResultCreate {
	if v != nil {
		_c.SetCorrectAnswer(*v)
	}
	return _c
}

// SetIsCorrect sets the "is_correct" field.
func (_c *QuizResultCreate) SetIsCorrect(v bool) *QuizResultCreate {
	_c.mutation.SetIsCorrect(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *QuizResultCreate) SetScore(v float64) *QuizResultCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *QuizResultCreate) SetNillableScore(v *float64) *QuizResultCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetLlmExplanation sets the "llm_explanation" field.
func (_c *QuizResultCreate) SetLlmExplanation(v string) *QuizResultCreate {
	_c.mutation.SetLlmExplanation(v)
	return _c
}

// SetNillableLlmExplanation sets the "llm_explanation" field if the given value is not nil.
func (_c *QuizResultCreate) SetNillableLlmExplanation(v *string) *QuizResultCreate {
	if v != nil {
		_c.SetLlmExplanation(*v)
	}
	return _c
}

// SetAttemptedAt sets the "attempted_at" field.
func (_c *QuizResultCreate) SetAttemptedAt(v time.Time) *QuizResultCreate {
	_c.mutation.SetAttemptedAt(v)
	return _c
}

// SetNillableAttemptedAt sets the "attempted_at" field if the given value is not nil.
func (_c *QuizResultCreate) SetNillableAttemptedAt(v *time.Time) *QuizResultCreate {
	if v != nil {
		_c.SetAttemptedAt(*v)
	}
	return _c
}

// Mutation returns the QuizResultMutation object of the builder.
func (_c *QuizResultCreate) Mutation() *QuizResultMutation {
	return _c.mutation
}

// Save creates the QuizResult in the database.
func (_c *QuizResultCreate) Save(ctx context.Context) (*QuizResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizResultCreate) SaveX(ctx context.Context) *QuizResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizResultCreate) defaults() {
	if _, ok := _c.mutation.Score(); !ok {
		v := quizresult.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.AttemptedAt(); !ok {
		v := quizresult.DefaultAttemptedAt()
		_c.mutation.SetAttemptedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizResultCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "QuizResult.user_id"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "QuizResult.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := quizresult.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuizResult.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "QuizResult.question_type"`)}
	}
	if v, ok := _c.mutation.QuestionType(); ok {
		if err := quizresult.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "QuizResult.question_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsCorrect(); !ok {
		return &ValidationError{Name: "is_correct", err: errors.New(`ent: missing required field "QuizResult.is_correct"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "QuizResult.score"`)}
	}
	if _, ok := _c.mutation.AttemptedAt(); !ok {
		return &ValidationError{Name: "attempted_at", err: errors.New(`ent: missing required field "QuizResult.attempted_at"`)}
	}
	return nil
}

func (_c *QuizResultCreate) sqlSave(ctx context.Context) (*QuizResult, error) {
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

func (_c *QuizResultCreate) createSpec() (*QuizResult, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizresult.Table, sqlgraph.NewFieldSpec(quizresult.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(quizresult.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(quizresult.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(quizresult.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.QuestionData(); ok {
		_spec.SetField(quizresult.FieldQuestionData, field.TypeJSON, value)
		_node.QuestionData = value
	}
	if value, ok := _c.mutation.StudentAnswer(); ok {
		_spec.SetField(quizresult.FieldStudentAnswer, field.TypeString, value)
		_node.StudentAnswer = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(quizresult.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.IsCorrect(); ok {
		_spec.SetField(quizresult.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(quizresult.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.LlmExplanation(); ok {
		_spec.SetField(quizresult.FieldLlmExplanation, field.TypeString, value)
		_node.LlmExplanation = value
	}
	if value, ok := _c.mutation.AttemptedAt(); ok {
		_spec.SetField(quizresult.FieldAttemptedAt, field.TypeTime, value)
		_node.AttemptedAt = value
	}
	return _node, _spec
}

// QuizResultCreateBulk is the builder for creating many QuizResult entities in bulk.
type QuizResultCreateBulk struct {
	config
	err      error
	builders []*QuizResultCreate
}

// Save creates the QuizResult entities in the database.
func (_c *QuizResultCreateBulk) Save(ctx context.Context) ([]*QuizResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizResultMutation)
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
func (_c *QuizResultCreateBulk) SaveX(ctx context.Context) []*QuizResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
