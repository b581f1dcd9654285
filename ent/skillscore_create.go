// Code generated by ent, DO NOT EDIT.

package ent

import (
	"biomind/ent/skillscore"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// SkillScoreCreate is the builder for creating a SkillScore entity.
type SkillScoreCreate struct {
	config
	mutation *SkillScoreMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *SkillScoreCreate) SetUserID(v int) *SkillScoreCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSkillName sets the "skill_name" field.
func (_c *SkillScoreCreate) SetSkillName(v string) *SkillScoreCreate {
	_c.mutation.SetSkillName(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *SkillScoreCreate) SetScore(v float64) *SkillScoreCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *SkillScoreCreate) SetNillableScore(v *float64) *SkillScoreCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *SkillScoreCreate) SetSource(v string) *SkillScoreCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *SkillScoreCreate) SetNillableSource(v *string) *SkillScoreCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SkillScoreCreate) SetUpdatedAt(v time.Time) *SkillScoreCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SkillScoreCreate) SetNillableUpdatedAt(v *time.Time) *SkillScoreCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the SkillScoreMutation object of the builder.
func (_c *SkillScoreCreate) Mutation() *SkillScoreMutation {
	return _c.mutation
}

// Save creates the SkillScore in the database.
func (_c *SkillScoreCreate) Save(ctx context.Context) (*SkillScore, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SkillScoreCreate) SaveX(ctx context.Context) *SkillScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillScoreCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillScoreCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SkillScoreCreate) defaults() {
	if _, ok := _c.mutation.Score(); !ok {
		v := skillscore.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := skillscore.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SkillScoreCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SkillScore.user_id"`)}
	}
	if _, ok := _c.mutation.SkillName(); !ok {
		return &ValidationError{Name: "skill_name", err: errors.New(`ent: missing required field "SkillScore.skill_name"`)}
	}
	if v, ok := _c.mutation.SkillName(); ok {
		if err := skillscore.SkillNameValidator(v); err != nil {
			return &ValidationError{Name: "skill_name", err: fmt.Errorf(`ent: validator failed for field "SkillScore.skill_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "SkillScore.score"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := skillscore.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "SkillScore.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SkillScore.updated_at"`)}
	}
	return nil
}

func (_c *SkillScoreCreate) sqlSave(ctx context.Context) (*SkillScore, error) {
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

func (_c *SkillScoreCreate) createSpec() (*SkillScore, *sqlgraph.CreateSpec) {
	var (
		_node = &SkillScore{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(skillscore.Table, sqlgraph.NewFieldSpec(skillscore.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(skillscore.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SkillName(); ok {
		_spec.SetField(skillscore.FieldSkillName, field.TypeString, value)
		_node.SkillName = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(skillscore.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(skillscore.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(skillscore.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SkillScoreCreateBulk is the builder for creating many SkillScore entities in bulk.
type SkillScoreCreateBulk struct {
	config
	err      error
	builders []*SkillScoreCreate
}

// Save creates the SkillScore entities in the database.
func (_c *SkillScoreCreateBulk) Save(ctx context.Context) ([]*SkillScore, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SkillScore, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SkillScoreMutation)
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
func (_c *SkillScoreCreateBulk) SaveX(ctx context.Context) []*SkillScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillScoreCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillScoreCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
