// Code generated by ent, DO NOT EDIT.

package ent

import (
	"biomind/ent/predicate"
	"biomind/ent/quizresult"
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// QuizResultUpdate is the builder for updating QuizResult entities.
type QuizResultUpdate struct {
	config
	hooks    []Hook
	mutation *QuizResultMutation
}

// Where appends a list predicates to the QuizResultUpdate builder.
func (_u *QuizResultUpdate) Where(ps ...predicate.QuizResult) *QuizResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *QuizResultUpdate) SetUserID(v int) *QuizResultUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableUserID(v *int) *QuizResultUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *QuizResultUpdate) AddUserID(v int) *QuizResultUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuizResultUpdate) SetTopic(v string) *QuizResultUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableTopic(v *string) *QuizResultUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *QuizResultUpdate) SetQuestionType(v string) *QuizResultUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableQuestionType(v *string) *QuizResultUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetQuestionData sets the "question_data" field.
func (_u *QuizResultUpdate) SetQuestionData(v map[string]interface{}) *QuizResultUpdate {
	_u.mutation.SetQuestionData(v)
	return _u
}

// ClearQuestionData clears the value of the "question_data" field.
func (_u *QuizResultUpdate) ClearQuestionData() *QuizResultUpdate {
	_u.mutation.ClearQuestionData()
	return _u
}

// SetStudentAnswer sets the "student_answer" field.
func (_u *QuizResultUpdate) SetStudentAnswer(v string) *QuizResultUpdate {
	_u.mutation.SetStudentAnswer(v)
	return _u
}

// SetNillableStudentAnswer sets the "student_answer" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableStudentAnswer(v *string) *QuizResultUpdate {
	if v != nil {
		_u.SetStudentAnswer(*v)
	}
	return _u
}

// ClearStudentAnswer clears the value of the "student_answer" field.
func (_u *QuizResultUpdate) ClearStudentAnswer() *QuizResultUpdate {
	_u.mutation.ClearStudentAnswer()
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *QuizResultUpdate) SetCorrectAnswer(v string) *QuizResultUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableCorrectAnswer(v *string) *QuizResultUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// ClearCorrectAnswer clears the value of the "correct_answer" field.
func (_u *QuizResultUpdate) ClearCorrectAnswer() *QuizResultUpdate {
	_u.mutation.ClearCorrectAnswer()
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *QuizResultUpdate) SetIsCorrect(v bool) *QuizResultUpdate {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableIsCorrect(v *bool) *QuizResultUpdate {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizResultUpdate) SetScore(v float64) *QuizResultUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableScore(v *float64) *QuizResultUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizResultUpdate) AddScore(v float64) *QuizResultUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetLlmExplanation sets the "llm_explanation" field.
func (_u *QuizResultUpdate) SetLlmExplanation(v string) *QuizResultUpdate {
	_u.mutation.SetLlmExplanation(v)
	return _u
}

// SetNillableLlmExplanation sets the "llm_explanation" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableLlmExplanation(v *string) *QuizResultUpdate {
	if v != nil {
		_u.SetLlmExplanation(*v)
	}
	return _u
}

// ClearLlmExplanation clears the value of the "llm_explanation" field.
func (_u *QuizResultUpdate) ClearLlmExplanation() *QuizResultUpdate {
	_u.mutation.ClearLlmExplanation()
	return _u
}

// Mutation returns the QuizResultMutation object of the builder.
func (_u *QuizResultUpdate) Mutation() *QuizResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizResultUpdate) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := quizresult.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuizResult.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := quizresult.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "QuizResult.question_type": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizresult.Table, quizresult.Columns, sqlgraph.NewFieldSpec(quizresult.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(quizresult.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(quizresult.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(quizresult.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(quizresult.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionData(); ok {
		_spec.SetField(quizresult.FieldQuestionData, field.TypeJSON, value)
	}
	if _u.mutation.QuestionDataCleared() {
		_spec.ClearField(quizresult.FieldQuestionData, field.TypeJSON)
	}
	if value, ok := _u.mutation.StudentAnswer(); ok {
		_spec.SetField(quizresult.FieldStudentAnswer, field.TypeString, value)
	}
	if _u.mutation.StudentAnswerCleared() {
		_spec.ClearField(quizresult.FieldStudentAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(quizresult.FieldCorrectAnswer, field.TypeString, value)
	}
	if _u.mutation.CorrectAnswerCleared() {
		_spec.ClearField(quizresult.FieldCorrectAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(quizresult.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizresult.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizresult.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LlmExplanation(); ok {
		_spec.SetField(quizresult.FieldLlmExplanation, field.TypeString, value)
	}
	if _u.mutation.LlmExplanationCleared() {
		_spec.ClearField(quizresult.FieldLlmExplanation, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizResultUpdateOne is the builder for updating a single QuizResult entity.
type QuizResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizResultMutation
}

// SetUserID sets the "user_id" field.
func (_u *QuizResultUpdateOne) SetUserID(v int) *QuizResultUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableUserID(v *int) *QuizResultUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *QuizResultUpdateOne) AddUserID(v int) *QuizResultUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuizResultUpdateOne) SetTopic(v string) *QuizResultUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableTopic(v *string) *QuizResultUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *QuizResultUpdateOne) SetQuestionType(v string) *QuizResultUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableQuestionType(v *string) *QuizResultUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetQuestionData sets the "question_data" field.
func (_u *QuizResultUpdateOne) SetQuestionData(v map[string]interface{}) *QuizResultUpdateOne {
	_u.mutation.SetQuestionData(v)
	return _u
}

// ClearQuestionData clears the value of the "question_data" field.
func (_u *QuizResultUpdateOne) ClearQuestionData() *QuizResultUpdateOne {
	_u.mutation.ClearQuestionData()
	return _u
}

// SetStudentAnswer sets the "student_answer" field.
func (_u *QuizResultUpdateOne) SetStudentAnswer(v string) *QuizResultUpdateOne {
	_u.mutation.SetStudentAnswer(v)
	return _u
}

// SetNillableStudentAnswer sets the "student_answer" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableStudentAnswer(v *string) *QuizResultUpdateOne {
	if v != nil {
		_u.SetStudentAnswer(*v)
	}
	return _u
}

// ClearStudentAnswer clears the value of the "student_answer" field.
func (_u *QuizResultUpdateOne) ClearStudentAnswer() *QuizResultUpdateOne {
	_u.mutation.ClearStudentAnswer()
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *QuizResultUpdateOne) SetCorrectAnswer(v string) *QuizResultUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableCorrectAnswer(v *string) *QuizResultUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// ClearCorrectAnswer clears the value of the "correct_answer" field.
func (_u *QuizResultUpdateOne) ClearCorrectAnswer() *QuizResultUpdateOne {
	_u.mutation.ClearCorrectAnswer()
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *QuizResultUpdateOne) SetIsCorrect(v bool) *QuizResultUpdateOne {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableIsCorrect(v *bool) *QuizResultUpdateOne {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizResultUpdateOne) SetScore(v float64) *QuizResultUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableScore(v *float64) *QuizResultUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizResultUpdateOne) AddScore(v float64) *QuizResultUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetLlmExplanation sets the "llm_explanation" field.
func (_u *QuizResultUpdateOne) SetLlmExplanation(v string) *QuizResultUpdateOne {
	_u.mutation.SetLlmExplanation(v)
	return _u
}

// SetNillableLlmExplanation sets the "llm_explanation" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableLlmExplanation(v *string) *QuizResultUpdateOne {
	if v != nil {
		_u.SetLlmExplanation(*v)
	}
	return _u
}

// ClearLlmExplanation clears the value of the "llm_explanation" field.
func (_u *QuizResultUpdateOne) ClearLlmExplanation() *QuizResultUpdateOne {
	_u.mutation.ClearLlmExplanation()
	return _u
}

// Mutation returns the QuizResultMutation object of the builder.
func (_u *QuizResultUpdateOne) Mutation() *QuizResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizResultUpdate builder.
func (_u *QuizResultUpdateOne) Where(ps ...predicate.QuizResult) *QuizResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizResultUpdateOne) Select(field string, fields ...string) *QuizResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizResult entity.
func (_u *QuizResultUpdateOne) Save(ctx context.Context) (*QuizResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizResultUpdateOne) SaveX(ctx context.Context) *QuizResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizResultUpdateOne) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := quizresult.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuizResult.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := quizresult.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "QuizResult.question_type": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizResultUpdateOne) sqlSave(ctx context.Context) (_node *QuizResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizresult.Table, quizresult.Columns, sqlgraph.NewFieldSpec(quizresult.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizresult.FieldID)
		for _, f := range fields {
			if !quizresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizresult.FieldID {
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
		_spec.SetField(quizresult.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(quizresult.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(quizresult.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(quizresult.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionData(); ok {
		_spec.SetField(quizresult.FieldQuestionData, field.TypeJSON, value)
	}
	if _u.mutation.QuestionDataCleared() {
		_spec.ClearField(quizresult.FieldQuestionData, field.TypeJSON)
	}
	if value, ok := _u.mutation.StudentAnswer(); ok {
		_spec.SetField(quizresult.FieldStudentAnswer, field.TypeString, value)
	}
	if _u.mutation.StudentAnswerCleared() {
		_spec.ClearField(quizresult.FieldStudentAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(quizresult.FieldCorrectAnswer, field.TypeString, value)
	}
	if _u.mutation.CorrectAnswerCleared() {
		_spec.ClearField(quizresult.FieldCorrectAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(quizresult.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizresult.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizresult.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LlmExplanation(); ok {
		_spec.SetField(quizresult.FieldLlmExplanation, field.TypeString, value)
	}
	if _u.mutation.LlmExplanationCleared() {
		_spec.ClearField(quizresult.FieldLlmExplanation, field.TypeString)
	}
	_node = &QuizResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
