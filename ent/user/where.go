// Code generated by ent, DO NOT EDIT.

package user

import (
	"biomind/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.User {
	return predicate.User(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.User {
	return predicate.User(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// HashedPw applies equality check predicate on the "hashed_pw" field. It's identical to HashedPwEQ.
func HashedPw(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldHashedPw, v))
}

// Institution applies equality check predicate on the "institution" field. It's identical to InstitutionEQ.
func Institution(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldInstitution, v))
}

// XpPoints applies equality check predicate on the "xp_points" field. It's identical to XpPointsEQ.
func XpPoints(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldXpPoints, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.User {
	return predicate.User(sql.FieldEQ(FieldIsActive, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldEmail, v))
}

// HashedPwEQ applies the EQ predicate on the "hashed_pw" field.
func HashedPwEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldHashedPw, v))
}

// HashedPwNEQ applies the NEQ predicate on the "hashed_pw" field.
func HashedPwNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldHashedPw, v))
}

// HashedPwIn applies the In predicate on the "hashed_pw" field.
func HashedPwIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldHashedPw, vs...))
}

// HashedPwNotIn applies the NotIn predicate on the "hashed_pw" field.
func HashedPwNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldHashedPw, vs...))
}

// HashedPwGT applies the GT predicate on the "hashed_pw" field.
func HashedPwGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldHashedPw, v))
}

// HashedPwGTE applies the GTE predicate on the "hashed_pw" field.
func HashedPwGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldHashedPw, v))
}

// HashedPwLT applies the LT predicate on the "hashed_pw" field.
func HashedPwLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldHashedPw, v))
}

// HashedPwLTE applies the LTE predicate on the "hashed_pw" field.
func HashedPwLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldHashedPw, v))
}

// HashedPwContains applies the Contains predicate on the "hashed_pw" field.
func HashedPwContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldHashedPw, v))
}

// HashedPwHasPrefix applies the HasPrefix predicate on the "hashed_pw" field.
func HashedPwHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldHashedPw, v))
}

// HashedPwHasSuffix applies the HasSuffix predicate on the "hashed_pw" field.
func HashedPwHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldHashedPw, v))
}

// HashedPwEqualFold applies the EqualFold predicate on the "hashed_pw" field.
func HashedPwEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldHashedPw, v))
}

// HashedPwContainsFold applies the ContainsFold predicate on the "hashed_pw" field.
func HashedPwContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldHashedPw, v))
}

// InstitutionEQ applies the EQ predicate on the "institution" field.
func InstitutionEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldInstitution, v))
}

// InstitutionNEQ applies the NEQ predicate on the "institution" field.
func InstitutionNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldInstitution, v))
}

// InstitutionIn applies the In predicate on the "institution" field.
func InstitutionIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldInstitution, vs...))
}

// InstitutionNotIn applies the NotIn predicate on the "institution" field.
func InstitutionNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldInstitution, vs...))
}

// InstitutionGT applies the GT predicate on the "institution" field.
func InstitutionGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldInstitution, v))
}

// InstitutionGTE applies the GTE predicate on the "institution" field.
func InstitutionGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldInstitution, v))
}

// InstitutionLT applies the LT predicate on the "institution" field.
func InstitutionLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldInstitution, v))
}

// InstitutionLTE applies the LTE predicate on the "institution" field.
func InstitutionLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldInstitution, v))
}

// InstitutionContains applies the Contains predicate on the "institution" field.
func InstitutionContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldInstitution, v))
}

// InstitutionHasPrefix applies the HasPrefix predicate on the "institution" field.
func InstitutionHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldInstitution, v))
}

// InstitutionHasSuffix applies the HasSuffix predicate on the "institution" field.
func InstitutionHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldInstitution, v))
}

// InstitutionIsNil applies the IsNil predicate on the "institution" field.
func InstitutionIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldInstitution))
}

// InstitutionNotNil applies the NotNil predicate on the "institution" field.
func InstitutionNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldInstitution))
}

// InstitutionEqualFold applies the EqualFold predicate on the "institution" field.
func InstitutionEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldInstitution, v))
}

// InstitutionContainsFold applies the ContainsFold predicate on the "institution" field.
func InstitutionContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldInstitution, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v Level) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v Level) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...Level) predicate.User {
	return predicate.User(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...Level) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLevel, vs...))
}

// XpPointsEQ applies the EQ predicate on the "xp_points" field.
func XpPointsEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldXpPoints, v))
}

// XpPointsNEQ applies the NEQ predicate on the "xp_points" field.
func XpPointsNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldXpPoints, v))
}

// XpPointsIn applies the In predicate on the "xp_points" field.
func XpPointsIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldXpPoints, vs...))
}

// XpPointsNotIn applies the NotIn predicate on the "xp_points" field.
func XpPointsNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldXpPoints, vs...))
}

// XpPointsGT applies the GT predicate on the "xp_points" field.
func XpPointsGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldXpPoints, v))
}

// XpPointsGTE applies the GTE predicate on the "xp_points" field.
func XpPointsGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldXpPoints, v))
}

// XpPointsLT applies the LT predicate on the "xp_points" field.
func XpPointsLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldXpPoints, v))
}

// XpPointsLTE applies the LTE predicate on the "xp_points" field.
func XpPointsLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldXpPoints, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCreatedAt, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.User {
	return predicate.User(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldIsActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.User) predicate.User {
	return predicate.User(sql.NotPredicates(p))
}
