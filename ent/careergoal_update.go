// Code generated by ent, DO NOT EDIT.

package ent

import (
	"biomind/ent/careergoal"
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

// CareerGoalUpdate is the builder for updating CareerGoal entities.
type CareerGoalUpdate struct {
	config
	hooks    []Hook
	mutation *CareerGoalMutation
}

// Where appends a list predicates to the CareerGoalUpdate builder.
func (_u *CareerGoalUpdate) Where(ps ...predicate.CareerGoal) *CareerGoalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CareerGoalUpdate) SetUserID(v int) *CareerGoalUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CareerGoalUpdate) SetNillableUserID(v *int) *CareerGoalUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *CareerGoalUpdate) AddUserID(v int) *CareerGoalUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetTargetRole sets the "target_role" field.
func (_u *CareerGoalUpdate) SetTargetRole(v careergoal.TargetRole) *CareerGoalUpdate {
	_u.mutation.SetTargetRole(v)
	return _u
}

// SetNillableTargetRole sets the "target_role" field if the given value is not nil.
func (_u *CareerGoalUpdate) SetNillableTargetRole(v *careergoal.TargetRole) *CareerGoalUpdate {
	if v != nil {
		_u.SetTargetRole(*v)
	}
	return _u
}

// SetIndustrySkills sets the "industry_skills" field.
func (_u *CareerGoalUpdate) SetIndustrySkills(v map[string]float64) *CareerGoalUpdate {
	_u.mutation.SetIndustrySkills(v)
	return _u
}

// ClearIndustrySkills clears the value of the "industry_skills" field.
func (_u *CareerGoalUpdate) ClearIndustrySkills() *CareerGoalUpdate {
	_u.mutation.ClearIndustrySkills()
	return _u
}

// SetRoadmap sets the "roadmap" field.
func (_u *CareerGoalUpdate) SetRoadmap(v []string) *CareerGoalUpdate {
	_u.mutation.SetRoadmap(v)
	return _u
}

// AppendRoadmap appends value to the "roadmap" field.
func (_u *CareerGoalUpdate) AppendRoadmap(v []string) *CareerGoalUpdate {
	_u.mutation.AppendRoadmap(v)
	return _u
}

// ClearRoadmap clears the value of the "roadmap" field.
func (_u *CareerGoalUpdate) ClearRoadmap() *CareerGoalUpdate {
	_u.mutation.ClearRoadmap()
	return _u
}

// SetMiniProjects sets the "mini_projects" field.
func (_u *CareerGoalUpdate) SetMiniProjects(v []string) *CareerGoalUpdate {
	_u.mutation.SetMiniProjects(v)
	return _u
}

// AppendMiniProjects appends value to the "mini_projects" field.
func (_u *CareerGoalUpdate) AppendMiniProjects(v []string) *CareerGoalUpdate {
	_u.mutation.AppendMiniProjects(v)
	return _u
}

// ClearMiniProjects clears the value of the "mini_projects" field.
func (_u *CareerGoalUpdate) ClearMiniProjects() *CareerGoalUpdate {
	_u.mutation.ClearMiniProjects()
	return _u
}

// SetCertifications sets the "certifications" field.
func (_u *CareerGoalUpdate) SetCertifications(v []string) *CareerGoalUpdate {
	_u.mutation.SetCertifications(v)
	return _u
}

// AppendCertifications appends value to the "certifications" field.
func (_u *CareerGoalUpdate) AppendCertifications(v []string) *CareerGoalUpdate {
	_u.mutation.AppendCertifications(v)
	return _u
}

// ClearCertifications clears the value of the "certifications" field.
func (_u *CareerGoalUpdate) ClearCertifications() *CareerGoalUpdate {
	_u.mutation.ClearCertifications()
	return _u
}

// SetReadinessScore sets the "readiness_score" field.
func (_u *CareerGoalUpdate) SetReadinessScore(v float64) *CareerGoalUpdate {
	_u.mutation.ResetReadinessScore()
	_u.mutation.SetReadinessScore(v)
	return _u
}

// SetNillableReadinessScore sets the "readiness_score" field if the given value is not nil.
func (_u *CareerGoalUpdate) SetNillableReadinessScore(v *float64) *CareerGoalUpdate {
	if v != nil {
		_u.SetReadinessScore(*v)
	}
	return _u
}

// AddReadinessScore adds value to the "readiness_score" field.
func (_u *CareerGoalUpdate) AddReadinessScore(v float64) *CareerGoalUpdate {
	_u.mutation.AddReadinessScore(v)
	return _u
}

// SetGeneratedAt sets the "generated_at" field.
func (_u *CareerGoalUpdate) SetGeneratedAt(v time.Time) *CareerGoalUpdate {
	_u.mutation.SetGeneratedAt(v)
	return _u
}

// Mutation returns the CareerGoalMutation object of the builder.
func (_u *CareerGoalUpdate) Mutation() *CareerGoalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CareerGoalUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CareerGoalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CareerGoalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CareerGoalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CareerGoalUpdate) defaults() {
	if _, ok := _u.mutation.GeneratedAt(); !ok {
		v := careergoal.UpdateDefaultGeneratedAt()
		_u.mutation.SetGeneratedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CareerGoalUpdate) check() error {
	if v, ok := _u.mutation.TargetRole(); ok {
		if err := careergoal.TargetRoleValidator(v); err != nil {
			return &ValidationError{Name: "target_role", err: fmt.Errorf(`ent: validator failed for field "CareerGoal.target_role": %w`, err)}
		}
	}
	return nil
}

func (_u *CareerGoalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(careergoal.Table, careergoal.Columns, sqlgraph.NewFieldSpec(careergoal.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(careergoal.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(careergoal.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TargetRole(); ok {
		_spec.SetField(careergoal.FieldTargetRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IndustrySkills(); ok {
		_spec.SetField(careergoal.FieldIndustrySkills, field.TypeJSON, value)
	}
	if _u.mutation.IndustrySkillsCleared() {
		_spec.ClearField(careergoal.FieldIndustrySkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.Roadmap(); ok {
		_spec.SetField(careergoal.FieldRoadmap, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRoadmap(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, careergoal.FieldRoadmap, value)
		})
	}
	if _u.mutation.RoadmapCleared() {
		_spec.ClearField(careergoal.FieldRoadmap, field.TypeJSON)
	}
	if value, ok := _u.mutation.MiniProjects(); ok {
		_spec.SetField(careergoal.FieldMiniProjects, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMiniProjects(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, careergoal.FieldMiniProjects, value)
		})
	}
	if _u.mutation.MiniProjectsCleared() {
		_spec.ClearField(careergoal.FieldMiniProjects, field.TypeJSON)
	}
	if value, ok := _u.mutation.Certifications(); ok {
		_spec.SetField(careergoal.FieldCertifications, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCertifications(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, careergoal.FieldCertifications, value)
		})
	}
	if _u.mutation.CertificationsCleared() {
		_spec.ClearField(careergoal.FieldCertifications, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReadinessScore(); ok {
		_spec.SetField(careergoal.FieldReadinessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReadinessScore(); ok {
		_spec.AddField(careergoal.FieldReadinessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GeneratedAt(); ok {
		_spec.SetField(careergoal.FieldGeneratedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{careergoal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CareerGoalUpdateOne is the builder for updating a single CareerGoal entity.
type CareerGoalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CareerGoalMutation
}

// SetUserID sets the "user_id" field.
func (_u *CareerGoalUpdateOne) SetUserID(v int) *CareerGoalUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CareerGoalUpdateOne) SetNillableUserID(v *int) *CareerGoalUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *CareerGoalUpdateOne) AddUserID(v int) *CareerGoalUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetTargetRole sets the "target_role" field.
func (_u *CareerGoalUpdateOne) SetTargetRole(v careergoal.TargetRole) *CareerGoalUpdateOne {
	_u.mutation.SetTargetRole(v)
	return _u
}

// SetNillableTargetRole sets the "target_role" field if the given value is not nil.
func (_u *CareerGoalUpdateOne) SetNillableTargetRole(v *careergoal.TargetRole) *CareerGoalUpdateOne {
	if v != nil {
		_u.SetTargetRole(*v)
	}
	return _u
}

// SetIndustrySkills sets the "industry_skills" field.
func (_u *CareerGoalUpdateOne) SetIndustrySkills(v map[string]float64) *CareerGoalUpdateOne {
	_u.mutation.SetIndustrySkills(v)
	return _u
}

// ClearIndustrySkills clears the value of the "industry_skills" field.
func (_u *CareerGoalUpdateOne) ClearIndustrySkills() *CareerGoalUpdateOne {
	_u.mutation.ClearIndustrySkills()
	return _u
}

// SetRoadmap sets the "roadmap" field.
func (_u *CareerGoalUpdateOne) SetRoadmap(v []string) *CareerGoalUpdateOne {
	_u.mutation.SetRoadmap(v)
	return _u
}

// AppendRoadmap appends value to the "roadmap" field.
func (_u *CareerGoalUpdateOne) AppendRoadmap(v []string) *CareerGoalUpdateOne {
	_u.mutation.AppendRoadmap(v)
	return _u
}

// ClearRoadmap clears the value of the "roadmap" field.
func (_u *CareerGoalUpdateOne) ClearRoadmap() *CareerGoalUpdateOne {
	_u.mutation.ClearRoadmap()
	return _u
}

// SetMiniProjects sets the "mini_projects" field.
func (_u *CareerGoalUpdateOne) SetMiniProjects(v []string) *CareerGoalUpdateOne {
	_u.mutation.SetMiniProjects(v)
	return _u
}

// AppendMiniProjects appends value to the "mini_projects" field.
func (_u *CareerGoalUpdateOne) AppendMiniProjects(v []string) *CareerGoalUpdateOne {
	_u.mutation.AppendMiniProjects(v)
	return _u
}

// ClearMiniProjects clears the value of the "mini_projects" field.
func (_u *CareerGoalUpdateOne) ClearMiniProjects() *CareerGoalUpdateOne {
	_u.mutation.ClearMiniProjects()
	return _u
}

// SetCertifications sets the "certifications" field.
func (_u *CareerGoalUpdateOne) SetCertifications(v []string) *CareerGoalUpdateOne {
	_u.mutation.SetCertifications(v)
	return _u
}

// AppendCertifications appends value to the "certifications" field.
func (_u *CareerGoalUpdateOne) AppendCertifications(v []string) *CareerGoalUpdateOne {
	_u.mutation.AppendCertifications(v)
	return _u
}

// ClearCertifications clears the value of the "certifications" field.
func (_u *CareerGoalUpdateOne) ClearCertifications() *CareerGoalUpdateOne {
	_u.mutation.ClearCertifications()
	return _u
}

// SetReadinessScore sets the "readiness_score" field.
func (_u *CareerGoalUpdateOne) SetReadinessScore(v float64) *CareerGoalUpdateOne {
	_u.mutation.ResetReadinessScore()
	_u.mutation.SetReadinessScore(v)
	return _u
}

// SetNillableReadinessScore sets the "readiness_score" field if the given value is not nil.
func (_u *CareerGoalUpdateOne) SetNillableReadinessScore(v *float64) *CareerGoalUpdateOne {
	if v != nil {
		_u.SetReadinessScore(*v)
	}
	return _u
}

// AddReadinessScore adds value to the "readiness_score" field.
func (_u *CareerGoalUpdateOne) AddReadinessScore(v float64) *CareerGoalUpdateOne {
	_u.mutation.AddReadinessScore(v)
	return _u
}

// SetGeneratedAt sets the "generated_at" field.
func (_u *CareerGoalUpdateOne) SetGeneratedAt(v time.Time) *CareerGoalUpdateOne {
	_u.mutation.SetGeneratedAt(v)
	return _u
}

// Mutation returns the CareerGoalMutation object of the builder.
func (_u *CareerGoalUpdateOne) Mutation() *CareerGoalMutation {
	return _u.mutation
}

// Where appends a list predicates to the CareerGoalUpdate builder.
func (_u *CareerGoalUpdateOne) Where(ps ...predicate.CareerGoal) *CareerGoalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CareerGoalUpdateOne) Select(field string, fields ...string) *CareerGoalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CareerGoal entity.
func (_u *CareerGoalUpdateOne) Save(ctx context.Context) (*CareerGoal, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CareerGoalUpdateOne) SaveX(ctx context.Context) *CareerGoal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CareerGoalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CareerGoalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CareerGoalUpdateOne) defaults() {
	if _, ok := _u.mutation.GeneratedAt(); !ok {
		v := careergoal.UpdateDefaultGeneratedAt()
		_u.mutation.SetGeneratedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CareerGoalUpdateOne) check() error {
	if v, ok := _u.mutation.TargetRole(); ok {
		if err := careergoal.TargetRoleValidator(v); err != nil {
			return &ValidationError{Name: "target_role", err: fmt.Errorf(`ent: validator failed for field "CareerGoal.target_role": %w`, err)}
		}
	}
	return nil
}

func (_u *CareerGoalUpdateOne) sqlSave(ctx context.Context) (_node *CareerGoal, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(careergoal.Table, careergoal.Columns, sqlgraph.NewFieldSpec(careergoal.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CareerGoal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, careergoal.FieldID)
		for _, f := range fields {
			if !careergoal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != careergoal.FieldID {
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
		_spec.SetField(careergoal.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(careergoal.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TargetRole(); ok {
		_spec.SetField(careergoal.FieldTargetRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IndustrySkills(); ok {
		_spec.SetField(careergoal.FieldIndustrySkills, field.TypeJSON, value)
	}
	if _u.mutation.IndustrySkillsCleared() {
		_spec.ClearField(careergoal.FieldIndustrySkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.Roadmap(); ok {
		_spec.SetField(careergoal.FieldRoadmap, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRoadmap(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, careergoal.FieldRoadmap, value)
		})
	}
	if _u.mutation.RoadmapCleared() {
		_spec.ClearField(careergoal.FieldRoadmap, field.TypeJSON)
	}
	if value, ok := _u.mutation.MiniProjects(); ok {
		_spec.SetField(careergoal.FieldMiniProjects, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMiniProjects(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, careergoal.FieldMiniProjects, value)
		})
	}
	if _u.mutation.MiniProjectsCleared() {
		_spec.ClearField(careergoal.FieldMiniProjects, field.TypeJSON)
	}
	if value, ok := _u.mutation.Certifications(); ok {
		_spec.SetField(careergoal.FieldCertifications, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCertifications(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, careergoal.FieldCertifications, value)
		})
	}
	if _u.mutation.CertificationsCleared() {
		_spec.ClearField(careergoal.FieldCertifications, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReadinessScore(); ok {
		_spec.SetField(careergoal.FieldReadinessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReadinessScore(); ok {
		_spec.AddField(careergoal.FieldReadinessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GeneratedAt(); ok {
		_spec.SetField(careergoal.FieldGeneratedAt, field.TypeTime, value)
	}
	_node = &CareerGoal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{careergoal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
