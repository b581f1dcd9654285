// Code generated by ent, DO NOT EDIT.

package careergoal

import (
	"biomind/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldEQ(FieldUserID, v))
}

// ReadinessScore applies equality check predicate on the "readiness_score" field. It's identical to ReadinessScoreEQ.
func ReadinessScore(v float64) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldEQ(FieldReadinessScore, v))
}

// GeneratedAt applies equality check predicate on the "generated_at" field. It's identical to GeneratedAtEQ.
func GeneratedAt(v time.Time) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldEQ(FieldGeneratedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldLTE(FieldUserID, v))
}

// TargetRoleEQ applies the EQ predicate on the "target_role" field.
func TargetRoleEQ(v TargetRole) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldEQ(FieldTargetRole, v))
}

// TargetRoleNEQ applies the NEQ predicate on the "target_role" field.
func TargetRoleNEQ(v TargetRole) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldNEQ(FieldTargetRole, v))
}

// TargetRoleIn applies the In predicate on the "target_role" field.
func TargetRoleIn(vs ...TargetRole) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldIn(FieldTargetRole, vs...))
}

// TargetRoleNotIn applies the NotIn predicate on the "target_role" field.
func TargetRoleNotIn(vs ...TargetRole) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldNotIn(FieldTargetRole, vs...))
}

// IndustrySkillsIsNil applies the IsNil predicate on the "industry_skills" field.
func IndustrySkillsIsNil() predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldIsNull(FieldIndustrySkills))
}

// IndustrySkillsNotNil applies the NotNil predicate on the "industry_skills" field.
func IndustrySkillsNotNil() predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldNotNull(FieldIndustrySkills))
}

// RoadmapIsNil applies the IsNil predicate on the "roadmap" field.
func RoadmapIsNil() predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldIsNull(FieldRoadmap))
}

// RoadmapNotNil applies the NotNil predicate on the "roadmap" field.
func RoadmapNotNil() predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldNotNull(FieldRoadmap))
}

// MiniProjectsIsNil applies the IsNil predicate on the "mini_projects" field.
func MiniProjectsIsNil() predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldIsNull(FieldMiniProjects))
}

// MiniProjectsNotNil applies the NotNil predicate on the "mini_projects" field.
func MiniProjectsNotNil() predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldNotNull(FieldMiniProjects))
}

// CertificationsIsNil applies the IsNil predicate on the "certifications" field.
func CertificationsIsNil() predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldIsNull(FieldCertifications))
}

// CertificationsNotNil applies the NotNil predicate on the "certifications" field.
func CertificationsNotNil() predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldNotNull(FieldCertifications))
}

// ReadinessScoreEQ applies the EQ predicate on the "readiness_score" field.
func ReadinessScoreEQ(v float64) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldEQ(FieldReadinessScore, v))
}

// ReadinessScoreNEQ applies the NEQ predicate on the "readiness_score" field.
func ReadinessScoreNEQ(v float64) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldNEQ(FieldReadinessScore, v))
}

// ReadinessScoreIn applies the In predicate on the "readiness_score" field.
func ReadinessScoreIn(vs ...float64) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldIn(FieldReadinessScore, vs...))
}

// ReadinessScoreNotIn applies the NotIn predicate on the "readiness_score" field.
func ReadinessScoreNotIn(vs ...float64) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldNotIn(FieldReadinessScore, vs...))
}

// ReadinessScoreGT applies the GT predicate on the "readiness_score" field.
func ReadinessScoreGT(v float64) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldGT(FieldReadinessScore, v))
}

// ReadinessScoreGTE applies the GTE predicate on the "readiness_score" field.
func ReadinessScoreGTE(v float64) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldGTE(FieldReadinessScore, v))
}

// ReadinessScoreLT applies the LT predicate on the "readiness_score" field.
func ReadinessScoreLT(v float64) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldLT(FieldReadinessScore, v))
}

// ReadinessScoreLTE applies the LTE predicate on the "readiness_score" field.
func ReadinessScoreLTE(v float64) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldLTE(FieldReadinessScore, v))
}

// GeneratedAtEQ applies the EQ predicate on the "generated_at" field.
func GeneratedAtEQ(v time.Time) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldEQ(FieldGeneratedAt, v))
}

// GeneratedAtNEQ applies the NEQ predicate on the "generated_at" field.
func GeneratedAtNEQ(v time.Time) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldNEQ(FieldGeneratedAt, v))
}

// GeneratedAtIn applies the In predicate on the "generated_at" field.
func GeneratedAtIn(vs ...time.Time) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldIn(FieldGeneratedAt, vs...))
}

// GeneratedAtNotIn applies the NotIn predicate on the "generated_at" field.
func GeneratedAtNotIn(vs ...time.Time) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldNotIn(FieldGeneratedAt, vs...))
}

// GeneratedAtGT applies the GT predicate on the "generated_at" field.
func GeneratedAtGT(v time.Time) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldGT(FieldGeneratedAt, v))
}

// GeneratedAtGTE applies the GTE predicate on the "generated_at" field.
func GeneratedAtGTE(v time.Time) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldGTE(FieldGeneratedAt, v))
}

// GeneratedAtLT applies the LT predicate on the "generated_at" field.
func GeneratedAtLT(v time.Time) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldLT(FieldGeneratedAt, v))
}

// GeneratedAtLTE applies the LTE predicate on the "generated_at" field.
func GeneratedAtLTE(v time.Time) predicate.CareerGoal {
	return predicate.CareerGoal(sql.FieldLTE(FieldGeneratedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CareerGoal) predicate.CareerGoal {
	return predicate.CareerGoal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CareerGoal) predicate.CareerGoal {
	return predicate.CareerGoal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CareerGoal) predicate.CareerGoal {
	return predicate.CareerGoal(sql.NotPredicates(p))
}
