// Code generated by ent, DO NOT EDIT.

package ent

import (
	"biomind/ent/careergoal"
	"biomind/ent/predicate"
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CareerGoalDelete is the builder for deleting a CareerGoal entity.
type CareerGoalDelete struct {
	config
	hooks    []Hook
	mutation *CareerGoalMutation
}

// Where appends a list predicates to the CareerGoalDelete builder.
func (_d *CareerGoalDelete) Where(ps ...predicate.CareerGoal) *CareerGoalDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CareerGoalDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CareerGoalDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CareerGoalDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(careergoal.Table, sqlgraph.NewFieldSpec(careergoal.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CareerGoalDeleteOne is the builder for deleting a single CareerGoal entity.
type CareerGoalDeleteOne struct {
	_d *CareerGoalDelete
}

// Where appends a list predicates to the CareerGoalDelete builder.
func (_d *CareerGoalDeleteOne) Where(ps ...predicate.CareerGoal) *CareerGoalDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CareerGoalDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{careergoal.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CareerGoalDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
