// Code generated by ent, DO NOT EDIT.

package ent

import (
	"biomind/ent/lablog"
	"biomind/ent/predicate"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
)

// LabLogUpdate is the builder for updating LabLog entities.
type LabLogUpdate struct {
	config
	hooks    []Hook
	mutation *LabLogMutation
}

// Where appends a list predicates to the LabLogUpdate builder.
func (_u *LabLogUpdate) Where(ps ...predicate.LabLog) *LabLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LabLogUpdate) SetUserID(v int) *LabLogUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LabLogUpdate) SetNillableUserID(v *int) *LabLogUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *LabLogUpdate) AddUserID(v int) *LabLogUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetLabType sets the "lab_type" field.
func (_u *LabLogUpdate) SetLabType(v string) *LabLogUpdate {
	_u.mutation.SetLabType(v)
	return _u
}

// SetNillableLabType sets the "lab_type" field if the given value is not nil.
func (_u *LabLogUpdate) SetNillableLabType(v *string) *LabLogUpdate {
	if v != nil {
		_u.SetLabType(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *LabLogUpdate) SetSessionID(v string) *LabLogUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LabLogUpdate) SetNillableSessionID(v *string) *LabLogUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDecisionChain sets the "decision_chain" field.
func (_u *LabLogUpdate) SetDecisionChain(v []map[string]interface{}) *LabLogUpdate {
	_u.mutation.SetDecisionChain(v)
	return _u
}

// AppendDecisionChain appends value to the "decision_chain" field.
func (_u *LabLogUpdate) AppendDecisionChain(v []map[string]interface{}) *LabLogUpdate {
	_u.mutation.AppendDecisionChain(v)
	return _u
}

// ClearDecisionChain clears the value of the "decision_chain" field.
func (_u *LabLogUpdate) ClearDecisionChain() *LabLogUpdate {
	_u.mutation.ClearDecisionChain()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *LabLogUpdate) SetOutcome(v string) *LabLogUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *LabLogUpdate) SetNillableOutcome(v *string) *LabLogUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *LabLogUpdate) SetScore(v float64) *LabLogUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *LabLogUpdate) SetNillableScore(v *float64) *LabLogUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *LabLogUpdate) AddScore(v float64) *LabLogUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *LabLogUpdate) SetErrorCount(v int) *LabLogUpdate {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *LabLogUpdate) SetNillableErrorCount(v *int) *LabLogUpdate {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *LabLogUpdate) AddErrorCount(v int) *LabLogUpdate {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *LabLogUpdate) SetCompletedAt(v time.Time) *LabLogUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *LabLogUpdate) SetNillableCompletedAt(v *time.Time) *LabLogUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *LabLogUpdate) ClearCompletedAt() *LabLogUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the LabLogMutation object of the builder.
func (_u *LabLogUpdate) Mutation() *LabLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LabLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LabLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabLogUpdate) check() error {
	if v, ok := _u.mutation.LabType(); ok {
		if err := lablog.LabTypeValidator(v); err != nil {
			return &ValidationError{Name: "lab_type", err: fmt.Errorf(`ent: validator failed for field "LabLog.lab_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := lablog.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LabLog.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := lablog.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "LabLog.outcome": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ErrorCount(); ok {
		if err := lablog.ErrorCountValidator(v); err != nil {
			return &ValidationError{Name: "error_count", err: fmt.Errorf(`ent: validator failed for field "LabLog.error_count": %w`, err)}
		}
	}
	return nil
}

func (_u *LabLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lablog.Table, lablog.Columns, sqlgraph.NewFieldSpec(lablog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(lablog.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(lablog.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LabType(); ok {
		_spec.SetField(lablog.FieldLabType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(lablog.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DecisionChain(); ok {
		_spec.SetField(lablog.FieldDecisionChain, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDecisionChain(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lablog.FieldDecisionChain, value)
		})
	}
	if _u.mutation.DecisionChainCleared() {
		_spec.ClearField(lablog.FieldDecisionChain, field.TypeJSON)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(lablog.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(lablog.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(lablog.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(lablog.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(lablog.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(lablog.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(lablog.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lablog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LabLogUpdateOne is the builder for updating a single LabLog entity.
type LabLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LabLogMutation
}

// SetUserID sets the "user_id" field.
func (_u *LabLogUpdateOne) SetUserID(v int) *LabLogUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LabLogUpdateOne) SetNillableUserID(v *int) *LabLogUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *LabLogUpdateOne) AddUserID(v int) *LabLogUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetLabType sets the "lab_type" field.
func (_u *LabLogUpdateOne) SetLabType(v string) *LabLogUpdateOne {
	_u.mutation.SetLabType(v)
	return _u
}

// SetNillableLabType sets the "lab_type" field if the given value is not nil.
func (_u *LabLogUpdateOne) SetNillableLabType(v *string) *LabLogUpdateOne {
	if v != nil {
		_u.SetLabType(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *LabLogUpdateOne) SetSessionID(v string) *LabLogUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LabLogUpdateOne) SetNillableSessionID(v *string) *LabLogUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDecisionChain sets the "decision_chain" field.
func (_u *LabLogUpdateOne) SetDecisionChain(v []map[string]interface{}) *LabLogUpdateOne {
	_u.mutation.SetDecisionChain(v)
	return _u
}

// AppendDecisionChain appends value to the "decision_chain" field.
func (_u *LabLogUpdateOne) AppendDecisionChain(v []map[string]interface{}) *LabLogUpdateOne {
	_u.mutation.AppendDecisionChain(v)
	return _u
}

// ClearDecisionChain clears the value of the "decision_chain" field.
func (_u *LabLogUpdateOne) ClearDecisionChain() *LabLogUpdateOne {
	_u.mutation.ClearDecisionChain()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *LabLogUpdateOne) SetOutcome(v string) *LabLogUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *LabLogUpdateOne) SetNillableOutcome(v *string) *LabLogUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *LabLogUpdateOne) SetScore(v float64) *LabLogUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *LabLogUpdateOne) SetNillableScore(v *float64) *LabLogUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *LabLogUpdateOne) AddScore(v float64) *LabLogUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *LabLogUpdateOne) SetErrorCount(v int) *LabLogUpdateOne {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *LabLogUpdateOne) SetNillableErrorCount(v *int) *LabLogUpdateOne {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *LabLogUpdateOne) AddErrorCount(v int) *LabLogUpdateOne {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *LabLogUpdateOne) SetCompletedAt(v time.Time) *LabLogUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *LabLogUpdateOne) SetNillableCompletedAt(v *time.Time) *LabLogUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *LabLogUpdateOne) ClearCompletedAt() *LabLogUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the LabLogMutation object of the builder.
func (_u *LabLogUpdateOne) Mutation() *LabLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the LabLogUpdate builder.
func (_u *LabLogUpdateOne) Where(ps ...predicate.LabLog) *LabLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LabLogUpdateOne) Select(field string, fields ...string) *LabLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LabLog entity.
func (_u *LabLogUpdateOne) Save(ctx context.Context) (*LabLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabLogUpdateOne) SaveX(ctx context.Context) *LabLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LabLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabLogUpdateOne) check() error {
	if v, ok := _u.mutation.LabType(); ok {
		if err := lablog.LabTypeValidator(v); err != nil {
			return &ValidationError{Name: "lab_type", err: fmt.Errorf(`ent: validator failed for field "LabLog.lab_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := lablog.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LabLog.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := lablog.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "LabLog.outcome": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ErrorCount(); ok {
		if err := lablog.ErrorCountValidator(v); err != nil {
			return &ValidationError{Name: "error_count", err: fmt.Errorf(`ent: validator failed for field "LabLog.error_count": %w`, err)}
		}
	}
	return nil
}

func (_u *LabLogUpdateOne) sqlSave(ctx context.Context) (_node *LabLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lablog.Table, lablog.Columns, sqlgraph.NewFieldSpec(lablog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LabLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lablog.FieldID)
		for _, f := range fields {
			if !lablog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lablog.FieldID {
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
		_spec.SetField(lablog.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(lablog.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LabType(); ok {
		_spec.SetField(lablog.FieldLabType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(lablog.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DecisionChain(); ok {
		_spec.SetField(lablog.FieldDecisionChain, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDecisionChain(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lablog.FieldDecisionChain, value)
		})
	}
	if _u.mutation.DecisionChainCleared() {
		_spec.ClearField(lablog.FieldDecisionChain, field.TypeJSON)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(lablog.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(lablog.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(lablog.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(lablog.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(lablog.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(lablog.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(lablog.FieldCompletedAt, field.TypeTime)
	}
	_node = &LabLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lablog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
