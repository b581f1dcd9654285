// Code generated by ent, DO NOT EDIT.

package topicmastery

import (
	"biomind/ent/predicate"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldUserID, v))
}

// TopicName applies equality check predicate on the "topic_name" field. It's identical to TopicNameEQ.
func TopicName(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldTopicName, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldAttempts, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldCorrect, v))
}

// Accuracy applies equality check predicate on the "accuracy" field. It's identical to AccuracyEQ.
func Accuracy(v float64) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldAccuracy, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLTE(FieldUserID, v))
}

// TopicNameEQ applies the EQ predicate on the "topic_name" field.
func TopicNameEQ(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldTopicName, v))
}

// TopicNameNEQ applies the NEQ predicate on the "topic_name" field.
func TopicNameNEQ(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNEQ(FieldTopicName, v))
}

// TopicNameIn applies the In predicate on the "topic_name" field.
func TopicNameIn(vs ...string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldIn(FieldTopicName, vs...))
}

// TopicNameNotIn applies the NotIn predicate on the "topic_name" field.
func TopicNameNotIn(vs ...string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNotIn(FieldTopicName, vs...))
}

// TopicNameGT applies the GT predicate on the "topic_name" field.
func TopicNameGT(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGT(FieldTopicName, v))
}

// TopicNameGTE applies the GTE predicate on the "topic_name" field.
func TopicNameGTE(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGTE(FieldTopicName, v))
}

// TopicNameLT applies the LT predicate on the "topic_name" field.
func TopicNameLT(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLT(FieldTopicName, v))
}

// TopicNameLTE applies the LTE predicate on the "topic_name" field.
func TopicNameLTE(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLTE(FieldTopicName, v))
}

// TopicNameContains applies the Contains predicate on the "topic_name" field.
func TopicNameContains(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldContains(FieldTopicName, v))
}

// TopicNameHasPrefix applies the HasPrefix predicate on the "topic_name" field.
func TopicNameHasPrefix(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldHasPrefix(FieldTopicName, v))
}

// TopicNameHasSuffix applies the HasSuffix predicate on the "topic_name" field.
func TopicNameHasSuffix(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldHasSuffix(FieldTopicName, v))
}

// TopicNameEqualFold applies the EqualFold predicate on the "topic_name" field.
func TopicNameEqualFold(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEqualFold(FieldTopicName, v))
}

// TopicNameContainsFold applies the ContainsFold predicate on the "topic_name" field.
func TopicNameContainsFold(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldContainsFold(FieldTopicName, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLTE(FieldAttempts, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNEQ(FieldCorrect, v))
}

// CorrectIn applies the In predicate on the "correct" field.
func CorrectIn(vs ...int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldIn(FieldCorrect, vs...))
}

// CorrectNotIn applies the NotIn predicate on the "correct" field.
func CorrectNotIn(vs ...int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNotIn(FieldCorrect, vs...))
}

// CorrectGT applies the GT predicate on the "correct" field.
func CorrectGT(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGT(FieldCorrect, v))
}

// CorrectGTE applies the GTE predicate on the "correct" field.
func CorrectGTE(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGTE(FieldCorrect, v))
}

// CorrectLT applies the LT predicate on the "correct" field.
func CorrectLT(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLT(FieldCorrect, v))
}

// CorrectLTE applies the LTE predicate on the "correct" field.
func CorrectLTE(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLTE(FieldCorrect, v))
}

// AccuracyEQ applies the EQ predicate on the "accuracy" field.
func AccuracyEQ(v float64) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldAccuracy, v))
}

// AccuracyNEQ applies the NEQ predicate on the "accuracy" field.
func AccuracyNEQ(v float64) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNEQ(FieldAccuracy, v))
}

// AccuracyIn applies the In predicate on the "accuracy" field.
func AccuracyIn(vs ...float64) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldIn(FieldAccuracy, vs...))
}

// AccuracyNotIn applies the NotIn predicate on the "accuracy" field.
func AccuracyNotIn(vs ...float64) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNotIn(FieldAccuracy, vs...))
}

// AccuracyGT applies the GT predicate on the "accuracy" field.
func AccuracyGT(v float64) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGT(FieldAccuracy, v))
}

// AccuracyGTE applies the GTE predicate on the "accuracy" field.
func AccuracyGTE(v float64) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGTE(FieldAccuracy, v))
}

// AccuracyLT applies the LT predicate on the "accuracy" field.
func AccuracyLT(v float64) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLT(FieldAccuracy, v))
}

// AccuracyLTE applies the LTE predicate on the "accuracy" field.
func AccuracyLTE(v float64) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLTE(FieldAccuracy, v))
}

// CurrentLevelEQ applies the EQ predicate on the "current_level" field.
func CurrentLevelEQ(v CurrentLevel) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldCurrentLevel, v))
}

// CurrentLevelNEQ applies the NEQ predicate on the "current_level" field.
func CurrentLevelNEQ(v CurrentLevel) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNEQ(FieldCurrentLevel, v))
}

// CurrentLevelIn applies the In predicate on the "current_level" field.
func CurrentLevelIn(vs ...CurrentLevel) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldIn(FieldCurrentLevel, vs...))
}

// CurrentLevelNotIn applies the NotIn predicate on the "current_level" field.
func CurrentLevelNotIn(vs ...CurrentLevel) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNotIn(FieldCurrentLevel, vs...))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TopicMastery) predicate.TopicMastery {
	return predicate.TopicMastery(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TopicMastery) predicate.TopicMastery {
	return predicate.TopicMastery(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TopicMastery) predicate.TopicMastery {
	return predicate.TopicMastery(sql.NotPredicates(p))
}
