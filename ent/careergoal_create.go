// Code generated by ent, DO NOT EDIT.

package ent

import (
	"biomind/ent/careergoal"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CareerGoalCreate is the builder for creating a CareerGoal entity.
type CareerGoalCreate struct {
	config
	mutation *CareerGoalMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *CareerGoalCreate) SetUserID(v int) *CareerGoalCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTargetRole sets the "target_role" field.
func (_c *CareerGoalCreate) SetTargetRole(v careergoal.TargetRole) *CareerGoalCreate {
	_c.mutation.SetTargetRole(v)
	return _c
}

// SetIndustrySkills sets the "industry_skills" field.
func (_c *CareerGoalCreate) SetIndustrySkills(v map[string]float64) *CareerGoalCreate {
	_c.mutation.SetIndustrySkills(v)
	return _c
}

// SetRoadmap sets the "roadmap" field.
func (_c *CareerGoalCreate) SetRoadmap(v []string) *CareerGoalCreate {
	_c.mutation.SetRoadmap(v)
	return _c
}

// SetMiniProjects sets the "mini_projects" field.
func (_c *CareerGoalCreate) SetMiniProjects(v []string) *CareerGoalCreate {
	_c.mutation.SetMiniProjects(v)
	return _c
}

// SetCertifications sets the "certifications" field.
func (_c *CareerGoalCreate) SetCertifications(v []string) *CareerGoalCreate {
	_c.mutation.SetCertifications(v)
	return _c
}

// SetReadinessScore sets the "readiness_score" field.
func (_c *CareerGoalCreate) SetReadinessScore(v float64) *CareerGoalCreate {
	_c.mutation.SetReadinessScore(v)
	return _c
}

// SetNillableReadinessScore sets the "readiness_score" field if the given value is not nil.
func (_c *CareerGoalCreate) SetNillableReadinessScore(v *float64) *CareerGoalCreate {
	if v != nil {
		_c.SetReadinessScore(*v)
	}
	return _c
}

// SetGeneratedAt sets the "generated_at" field.
func (_c *CareerGoalCreate) SetGeneratedAt(v time.Time) *CareerGoalCreate {
	_c.mutation.SetGeneratedAt(v)
	return _c
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_c *CareerGoalCreate) SetNillableGeneratedAt(v *time.Time) *CareerGoalCreate {
	if v != nil {
		_c.SetGeneratedAt(*v)
	}
	return _c
}

// Mutation returns the CareerGoalMutation object of the builder.
func (_c *CareerGoalCreate) Mutation() *CareerGoalMutation {
	return _c.mutation
}

// Save creates the CareerGoal in the database.
func (_c *CareerGoalCreate) Save(ctx context.Context) (*CareerGoal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CareerGoalCreate) SaveX(ctx context.Context) *CareerGoal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CareerGoalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CareerGoalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CareerGoalCreate) defaults() {
	if _, ok := _c.mutation.ReadinessScore(); !ok {
		v := careergoal.DefaultReadinessScore
		_c.mutation.SetReadinessScore(v)
	}
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		v := careergoal.DefaultGeneratedAt()
		_c.mutation.SetGeneratedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CareerGoalCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CareerGoal.user_id"`)}
	}
	if _, ok := _c.mutation.TargetRole(); !ok {
		return &ValidationError{Name: "target_role", err: errors.New(`ent: missing required field "CareerGoal.target_role"`)}
	}
	if v, ok := _c.mutation.TargetRole(); ok {
		if err := careergoal.TargetRoleValidator(v); err != nil {
			return &ValidationError{Name: "target_role", err: fmt.Errorf(`ent: validator failed for field "CareerGoal.target_role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReadinessScore(); !ok {
		return &ValidationError{Name: "readiness_score", err: errors.New(`ent: missing required field "CareerGoal.readiness_score"`)}
	}
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		return &ValidationError{Name: "generated_at", err: errors.New(`ent: missing required field "CareerGoal.generated_at"`)}
	}
	return nil
}

func (_c *CareerGoalCreate) sqlSave(ctx context.Context) (*CareerGoal, error) {
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

func (_c *CareerGoalCreate) createSpec() (*CareerGoal, *sqlgraph.CreateSpec) {
	var (
		_node = &CareerGoal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(careergoal.Table, sqlgraph.NewFieldSpec(careergoal.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(careergoal.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TargetRole(); ok {
		_spec.SetField(careergoal.FieldTargetRole, field.TypeEnum, value)
		_node.TargetRole = value
	}
	if value, ok := _c.mutation.IndustrySkills(); ok {
		_spec.SetField(careergoal.FieldIndustrySkills, field.TypeJSON, value)
		_node.IndustrySkills = value
	}
	if value, ok := _c.mutation.Roadmap(); ok {
		_spec.SetField(careergoal.FieldRoadmap, field.TypeJSON, value)
		_node.Roadmap = value
	}
	if value, ok := _c.mutation.MiniProjects(); ok {
		_spec.SetField(careergoal.FieldMiniProjects, field.TypeJSON, value)
		_node.MiniProjects = value
	}
	if value, ok := _c.mutation.Certifications(); ok {
		_spec.SetField(careergoal.FieldCertifications, field.TypeJSON, value)
		_node.Certifications = value
	}
	if value, ok := _c.mutation.ReadinessScore(); ok {
		_spec.SetField(careergoal.FieldReadinessScore, field.TypeFloat64, value)
		_node.ReadinessScore = value
	}
	if value, ok := _c.mutation.GeneratedAt(); ok {
		_spec.SetField(careergoal.FieldGeneratedAt, field.TypeTime, value)
		_node.GeneratedAt = value
	}
	return _node, _spec
}

// CareerGoalCreateBulk is the builder for creating many CareerGoal entities in bulk.
type CareerGoalCreateBulk struct {
	config
	err      error
	builders []*CareerGoalCreate
}

// Save creates the CareerGoal entities in the database.
func (_c *CareerGoalCreateBulk) Save(ctx context.Context) ([]*CareerGoal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CareerGoal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CareerGoalMutation)
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
func (_c *CareerGoalCreateBulk) SaveX(ctx context.Context) []*CareerGoal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CareerGoalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CareerGoalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
