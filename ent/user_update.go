// Code generated by ent, DO NOT EDIT.

package ent

import (
	"biomind/ent/predicate"
	"biomind/ent/user"
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// UserUpdate is the builder for updating User entities.
type UserUpdate struct {
	config
	hooks    []Hook
	mutation *UserMutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdate) Where(ps ...predicate.User) *UserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *UserUpdate) SetName(v string) *UserUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UserUpdate) SetNillableName(v *string) *UserUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdate) SetEmail(v string) *UserUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEmail(v *string) *UserUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetHashedPw sets the "hashed_pw" field.
func (_u *UserUpdate) SetHashedPw(v string) *UserUpdate {
	_u.mutation.SetHashedPw(v)
	return _u
}

// SetNillableHashedPw sets the "hashed_pw" field if the given value is not nil.
func (_u *UserUpdate) SetNillableHashedPw(v *string) *UserUpdate {
	if v != nil {
		_u.SetHashedPw(*v)
	}
	return _u
}

// SetInstitution sets the "institution" field.
func (_u *UserUpdate) SetInstitution(v string) *UserUpdate {
	_u.mutation.SetInstitution(v)
	return _u
}

// SetNillableInstitution sets the "institution" field if the given value is not nil.
func (_u *UserUpdate) SetNillableInstitution(v *string) *UserUpdate {
	if v != nil {
		_u.SetInstitution(*v)
	}
	return _u
}

// ClearInstitution clears the value of the "institution" field.
func (_u *UserUpdate) ClearInstitution() *UserUpdate {
	_u.mutation.ClearInstitution()
	return _u
}

// SetLevel sets the "level" field.
func (_u *UserUpdate) SetLevel(v user.Level) *UserUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLevel(v *user.Level) *UserUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetXpPoints sets the "xp_points" field.
func (_u *UserUpdate) SetXpPoints(v int) *UserUpdate {
	_u.mutation.ResetXpPoints()
	_u.mutation.SetXpPoints(v)
	return _u
}

// SetNillableXpPoints sets the "xp_points" field if the given value is not nil.
func (_u *UserUpdate) SetNillableXpPoints(v *int) *UserUpdate {
	if v != nil {
		_u.SetXpPoints(*v)
	}
	return _u
}

// AddXpPoints adds value to the "xp_points" field.
func (_u *UserUpdate) AddXpPoints(v int) *UserUpdate {
	_u.mutation.AddXpPoints(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *UserUpdate) SetIsActive(v bool) *UserUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *UserUpdate) SetNillableIsActive(v *bool) *UserUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdate) Mutation() *UserMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := user.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "User.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "User.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HashedPw(); ok {
		if err := user.HashedPwValidator(v); err != nil {
			return &ValidationError{Name: "hashed_pw", err: fmt.Errorf(`ent: validator failed for field "User.hashed_pw": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Institution(); ok {
		if err := user.InstitutionValidator(v); err != nil {
			return &ValidationError{Name: "institution", err: fmt.Errorf(`ent: validator failed for field "User.institution": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := user.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "User.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.XpPoints(); ok {
		if err := user.XpPointsValidator(v); err != nil {
			return &ValidationError{Name: "xp_points", err: fmt.Errorf(`ent: validator failed for field "User.xp_points": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.HashedPw(); ok {
		_spec.SetField(user.FieldHashedPw, field.TypeString, value)
	}
	if value, ok := _u.mutation.Institution(); ok {
		_spec.SetField(user.FieldInstitution, field.TypeString, value)
	}
	if _u.mutation.InstitutionCleared() {
		_spec.ClearField(user.FieldInstitution, field.TypeString)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(user.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.XpPoints(); ok {
		_spec.SetField(user.FieldXpPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpPoints(); ok {
		_spec.AddField(user.FieldXpPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(user.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserUpdateOne is the builder for updating a single User entity.
type UserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMutation
}

// SetName sets the "name" field.
func (_u *UserUpdateOne) SetName(v string) *UserUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableName(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdateOne) SetEmail(v string) *UserUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEmail(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetHashedPw sets the "hashed_pw" field.
func (_u *UserUpdateOne) SetHashedPw(v string) *UserUpdateOne {
	_u.mutation.SetHashedPw(v)
	return _u
}

// SetNillableHashedPw sets the "hashed_pw" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableHashedPw(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetHashedPw(*v)
	}
	return _u
}

// SetInstitution sets the "institution" field.
func (_u *UserUpdateOne) SetInstitution(v string) *UserUpdateOne {
	_u.mutation.SetInstitution(v)
	return _u
}

// SetNillableInstitution sets the "institution" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableInstitution(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetInstitution(*v)
	}
	return _u
}

// ClearInstitution clears the value of the "institution" field.
func (_u *UserUpdateOne) ClearInstitution() *UserUpdateOne {
	_u.mutation.ClearInstitution()
	return _u
}

// SetLevel sets the "level" field.
func (_u *UserUpdateOne) SetLevel(v user.Level) *UserUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLevel(v *user.Level) *UserUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetXpPoints sets the "xp_points" field.
func (_u *UserUpdateOne) SetXpPoints(v int) *UserUpdateOne {
	_u.mutation.ResetXpPoints()
	_u.mutation.SetXpPoints(v)
	return _u
}

// SetNillableXpPoints sets the "xp_points" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableXpPoints(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetXpPoints(*v)
	}
	return _u
}

// AddXpPoints adds value to the "xp_points" field.
func (_u *UserUpdateOne) AddXpPoints(v int) *UserUpdateOne {
	_u.mutation.AddXpPoints(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *UserUpdateOne) SetIsActive(v bool) *UserUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableIsActive(v *bool) *UserUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdateOne) Mutation() *UserMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdateOne) Where(ps ...predicate.User) *UserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserUpdateOne) Select(field string, fields ...string) *UserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated User entity.
func (_u *UserUpdateOne) Save(ctx context.Context) (*User, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdateOne) SaveX(ctx context.Context) *User {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := user.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "User.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "User.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HashedPw(); ok {
		if err := user.HashedPwValidator(v); err != nil {
			return &ValidationError{Name: "hashed_pw", err: fmt.Errorf(`ent: validator failed for field "User.hashed_pw": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Institution(); ok {
		if err := user.InstitutionValidator(v); err != nil {
			return &ValidationError{Name: "institution", err: fmt.Errorf(`ent: validator failed for field "User.institution": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := user.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "User.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.XpPoints(); ok {
		if err := user.XpPointsValidator(v); err != nil {
			return &ValidationError{Name: "xp_points", err: fmt.Errorf(`ent: validator failed for field "User.xp_points": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdateOne) sqlSave(ctx context.Context) (_node *User, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "User.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, user.FieldID)
		for _, f := range fields {
			if !user.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != user.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.HashedPw(); ok {
		_spec.SetField(user.FieldHashedPw, field.TypeString, value)
	}
	if value, ok := _u.mutation.Institution(); ok {
		_spec.SetField(user.FieldInstitution, field.TypeString, value)
	}
	if _u.mutation.InstitutionCleared() {
		_spec.ClearField(user.FieldInstitution, field.TypeString)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(user.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.XpPoints(); ok {
		_spec.SetField(user.FieldXpPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpPoints(); ok {
		_spec.AddField(user.FieldXpPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(user.FieldIsActive, field.TypeBool, value)
	}
	_node = &User{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
