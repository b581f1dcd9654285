// Code generated by ent, DO NOT EDIT.

package ent

import (
	"biomind/ent/lablog"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// LabLogCreate is the builder for creating a LabLog entity.
type LabLogCreate struct {
	config
	mutation *LabLogMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *LabLogCreate) SetUserID(v int) *LabLogCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetLabType sets the "lab_type" field.
func (_c *LabLogCreate) SetLabType(v string) *LabLogCreate {
	_c.mutation.SetLabType(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *LabLogCreate) SetSessionID(v string) *LabLogCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetDecisionChain sets the "decision_chain" field.
func (_c *LabLogCreate) SetDecisionChain(v []map[string]interface{}) *LabLogCreate {
	_c.mutation.SetDecisionChain(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *LabLogCreate) SetOutcome(v string) *LabLogCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_c *LabLogCreate) SetNillableOutcome(v *string) *LabLogCreate {
	if v != nil {
		_c.SetOutcome(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *LabLogCreate) SetScore(v float64) *LabLogCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *LabLogCreate) SetNillableScore(v *float64) *LabLogCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetErrorCount sets the "error_count" field.
func (_c *LabLogCreate) SetErrorCount(v int) *LabLogCreate {
	_c.mutation.SetErrorCount(v)
	return _c
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_c *LabLogCreate) SetNillableErrorCount(v *int) *LabLogCreate {
	if v != nil {
		_c.SetErrorCount(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *LabLogCreate) SetStartedAt(v time.Time) *LabLogCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *LabLogCreate) SetNillableStartedAt(v *time.Time) *LabLogCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *LabLogCreate) SetCompletedAt(v time.Time) *LabLogCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *LabLogCreate) SetNillableCompletedAt(v *time.Time) *LabLogCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// Mutation returns the LabLogMutation object of the builder.
func (_c *LabLogCreate) Mutation() *LabLogMutation {
	return _c.mutation
}

// Save creates the LabLog in the database.
func (_c *LabLogCreate) Save(ctx context.Context) (*LabLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LabLogCreate) SaveX(ctx context.Context) *LabLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LabLogCreate) defaults() {
	if _, ok := _c.mutation.Outcome(); !ok {
		v := lablog.DefaultOutcome
		_c.mutation.SetOutcome(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := lablog.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		v := lablog.DefaultErrorCount
		_c.mutation.SetErrorCount(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := lablog.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LabLogCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LabLog.user_id"`)}
	}
	if _, ok := _c.mutation.LabType(); !ok {
		return &ValidationError{Name: "lab_type", err: errors.New(`ent: missing required field "LabLog.lab_type"`)}
	}
	if v, ok := _c.mutation.LabType(); ok {
		if err := lablog.LabTypeValidator(v); err != nil {
			return &ValidationError{Name: "lab_type", err: fmt.Errorf(`ent: validator failed for field "LabLog.lab_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "LabLog.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := lablog.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LabLog.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "LabLog.outcome"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := lablog.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "LabLog.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "LabLog.score"`)}
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		return &ValidationError{Name: "error_count", err: errors.New(`ent: missing required field "LabLog.error_count"`)}
	}
	if v, ok := _c.mutation.ErrorCount(); ok {
		if err := lablog.ErrorCountValidator(v); err != nil {
			return &ValidationError{Name: "error_count", err: fmt.Errorf(`ent: validator failed for field "LabLog.error_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "LabLog.started_at"`)}
	}
	return nil
}

func (_c *LabLogCreate) sqlSave(ctx context.Context) (*LabLog, error) {
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

func (_c *LabLogCreate) createSpec() (*LabLog, *sqlgraph.CreateSpec) {
	var (
		_node = &LabLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lablog.Table, sqlgraph.NewFieldSpec(lablog.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(lablog.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.LabType(); ok {
		_spec.SetField(lablog.FieldLabType, field.TypeString, value)
		_node.LabType = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(lablog.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.DecisionChain(); ok {
		_spec.SetField(lablog.FieldDecisionChain, field.TypeJSON, value)
		_node.DecisionChain = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(lablog.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(lablog.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.ErrorCount(); ok {
		_spec.SetField(lablog.FieldErrorCount, field.TypeInt, value)
		_node.ErrorCount = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(lablog.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(lablog.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// LabLogCreateBulk is the builder for creating many LabLog entities in bulk.
type LabLogCreateBulk struct {
	config
	err      error
	builders []*LabLogCreate
}

// Save creates the LabLog entities in the database.
func (_c *LabLogCreateBulk) Save(ctx context.Context) ([]*LabLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LabLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LabLogMutation)
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
func (_c *LabLogCreateBulk) SaveX(ctx context.Context) []*LabLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
