// Code generated by ent, DO NOT EDIT.

package skillscore

import (
	"biomind/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldEQ(FieldUserID, v))
}

// SkillName applies equality check predicate on the "skill_name" field. It's identical to SkillNameEQ.
func SkillName(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldEQ(FieldSkillName, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldEQ(FieldScore, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldEQ(FieldSource, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldLTE(FieldUserID, v))
}

// SkillNameEQ applies the EQ predicate on the "skill_name" field.
func SkillNameEQ(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldEQ(FieldSkillName, v))
}

// SkillNameNEQ applies the NEQ predicate on the "skill_name" field.
func SkillNameNEQ(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldNEQ(FieldSkillName, v))
}

// SkillNameIn applies the In predicate on the "skill_name" field.
func SkillNameIn(vs ...string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldIn(FieldSkillName, vs...))
}

// SkillNameNotIn applies the NotIn predicate on the "skill_name" field.
func SkillNameNotIn(vs ...string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldNotIn(FieldSkillName, vs...))
}

// SkillNameGT applies the GT predicate on the "skill_name" field.
func SkillNameGT(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldGT(FieldSkillName, v))
}

// SkillNameGTE applies the GTE predicate on the "skill_name" field.
func SkillNameGTE(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldGTE(FieldSkillName, v))
}

// SkillNameLT applies the LT predicate on the "skill_name" field.
func SkillNameLT(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldLT(FieldSkillName, v))
}

// SkillNameLTE applies the LTE predicate on the "skill_name" field.
func SkillNameLTE(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldLTE(FieldSkillName, v))
}

// SkillNameContains applies the Contains predicate on the "skill_name" field.
func SkillNameContains(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldContains(FieldSkillName, v))
}

// SkillNameHasPrefix applies the HasPrefix predicate on the "skill_name" field.
func SkillNameHasPrefix(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldHasPrefix(FieldSkillName, v))
}

// SkillNameHasSuffix applies the HasSuffix predicate on the "skill_name" field.
func SkillNameHasSuffix(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldHasSuffix(FieldSkillName, v))
}

// SkillNameEqualFold applies the EqualFold predicate on the "skill_name" field.
func SkillNameEqualFold(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldEqualFold(FieldSkillName, v))
}

// SkillNameContainsFold applies the ContainsFold predicate on the "skill_name" field.
func SkillNameContainsFold(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldContainsFold(FieldSkillName, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldLTE(FieldScore, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldHasSuffix(FieldSource, v))
}

// SourceIsNil applies the IsNil predicate on the "source" field.
func SourceIsNil() predicate.SkillScore {
	return predicate.SkillScore(sql.FieldIsNull(FieldSource))
}

// SourceNotNil applies the NotNil predicate on the "source" field.
func SourceNotNil() predicate.SkillScore {
	return predicate.SkillScore(sql.FieldNotNull(FieldSource))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldContainsFold(FieldSource, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SkillScore) predicate.SkillScore {
	return predicate.SkillScore(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SkillScore) predicate.SkillScore {
	return predicate.SkillScore(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SkillScore) predicate.SkillScore {
	return predicate.SkillScore(sql.NotPredicates(p))
}
