// Code generated by ent, DO NOT EDIT.

package lablog

import (
	"biomind/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LabLog {
	return predicate.LabLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LabLog {
	return predicate.LabLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LabLog {
	return predicate.LabLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LabLog {
	return predicate.LabLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LabLog {
	return predicate.LabLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LabLog {
	return predicate.LabLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LabLog {
	return predicate.LabLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LabLog {
	return predicate.LabLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LabLog {
	return predicate.LabLog(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.LabLog {
	return predicate.LabLog(sql.FieldEQ(FieldUserID, v))
}

// LabType applies equality check predicate on the "lab_type" field. It's identical to LabTypeEQ.
func LabType(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldEQ(FieldLabType, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldEQ(FieldSessionID, v))
}

// Outcome applies equality check predicate on the "outcome" field. It's identical to OutcomeEQ.
func Outcome(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldEQ(FieldOutcome, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.LabLog {
	return predicate.LabLog(sql.FieldEQ(FieldScore, v))
}

// ErrorCount applies equality check predicate on the "error_count" field. It's identical to ErrorCountEQ.
func ErrorCount(v int) predicate.LabLog {
	return predicate.LabLog(sql.FieldEQ(FieldErrorCount, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.LabLog {
	return predicate.LabLog(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.LabLog {
	return predicate.LabLog(sql.FieldEQ(FieldCompletedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.LabLog {
	return predicate.LabLog(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.LabLog {
	return predicate.LabLog(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.LabLog {
	return predicate.LabLog(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.LabLog {
	return predicate.LabLog(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.LabLog {
	return predicate.LabLog(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.LabLog {
	return predicate.LabLog(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.LabLog {
	return predicate.LabLog(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.LabLog {
	return predicate.LabLog(sql.FieldLTE(FieldUserID, v))
}

// LabTypeEQ applies the EQ predicate on the "lab_type" field.
func LabTypeEQ(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldEQ(FieldLabType, v))
}

// LabTypeNEQ applies the NEQ predicate on the "lab_type" field.
func LabTypeNEQ(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldNEQ(FieldLabType, v))
}

// LabTypeIn applies the In predicate on the "lab_type" field.
func LabTypeIn(vs ...string) predicate.LabLog {
	return predicate.LabLog(sql.FieldIn(FieldLabType, vs...))
}

// LabTypeNotIn applies the NotIn predicate on the "lab_type" field.
func LabTypeNotIn(vs ...string) predicate.LabLog {
	return predicate.LabLog(sql.FieldNotIn(FieldLabType, vs...))
}

// LabTypeGT applies the GT predicate on the "lab_type" field.
func LabTypeGT(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldGT(FieldLabType, v))
}

// LabTypeGTE applies the GTE predicate on the "lab_type" field.
func LabTypeGTE(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldGTE(FieldLabType, v))
}

// LabTypeLT applies the LT predicate on the "lab_type" field.
func LabTypeLT(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldLT(FieldLabType, v))
}

// LabTypeLTE applies the LTE predicate on the "lab_type" field.
func LabTypeLTE(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldLTE(FieldLabType, v))
}

// LabTypeContains applies the Contains predicate on the "lab_type" field.
func LabTypeContains(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldContains(FieldLabType, v))
}

// LabTypeHasPrefix applies the HasPrefix predicate on the "lab_type" field.
func LabTypeHasPrefix(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldHasPrefix(FieldLabType, v))
}

// LabTypeHasSuffix applies the HasSuffix predicate on the "lab_type" field.
func LabTypeHasSuffix(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldHasSuffix(FieldLabType, v))
}

// LabTypeEqualFold applies the EqualFold predicate on the "lab_type" field.
func LabTypeEqualFold(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldEqualFold(FieldLabType, v))
}

// LabTypeContainsFold applies the ContainsFold predicate on the "lab_type" field.
func LabTypeContainsFold(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldContainsFold(FieldLabType, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.LabLog {
	return predicate.LabLog(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.LabLog {
	return predicate.LabLog(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldContainsFold(FieldSessionID, v))
}

// DecisionChainIsNil applies the IsNil predicate on the "decision_chain" field.
func DecisionChainIsNil() predicate.LabLog {
	return predicate.LabLog(sql.FieldIsNull(FieldDecisionChain))
}

// DecisionChainNotNil applies the NotNil predicate on the "decision_chain" field.
func DecisionChainNotNil() predicate.LabLog {
	return predicate.LabLog(sql.FieldNotNull(FieldDecisionChain))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...string) predicate.LabLog {
	return predicate.LabLog(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...string) predicate.LabLog {
	return predicate.LabLog(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeGT applies the GT predicate on the "outcome" field.
func OutcomeGT(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldGT(FieldOutcome, v))
}

// OutcomeGTE applies the GTE predicate on the "outcome" field.
func OutcomeGTE(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldGTE(FieldOutcome, v))
}

// OutcomeLT applies the LT predicate on the "outcome" field.
func OutcomeLT(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldLT(FieldOutcome, v))
}

// OutcomeLTE applies the LTE predicate on the "outcome" field.
func OutcomeLTE(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldLTE(FieldOutcome, v))
}

// OutcomeContains applies the Contains predicate on the "outcome" field.
func OutcomeContains(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldContains(FieldOutcome, v))
}

// OutcomeHasPrefix applies the HasPrefix predicate on the "outcome" field.
func OutcomeHasPrefix(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldHasPrefix(FieldOutcome, v))
}

// OutcomeHasSuffix applies the HasSuffix predicate on the "outcome" field.
func OutcomeHasSuffix(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldHasSuffix(FieldOutcome, v))
}

// OutcomeEqualFold applies the EqualFold predicate on the "outcome" field.
func OutcomeEqualFold(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldEqualFold(FieldOutcome, v))
}

// OutcomeContainsFold applies the ContainsFold predicate on the "outcome" field.
func OutcomeContainsFold(v string) predicate.LabLog {
	return predicate.LabLog(sql.FieldContainsFold(FieldOutcome, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.LabLog {
	return predicate.LabLog(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.LabLog {
	return predicate.LabLog(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.LabLog {
	return predicate.LabLog(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.LabLog {
	return predicate.LabLog(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.LabLog {
	return predicate.LabLog(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.LabLog {
	return predicate.LabLog(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.LabLog {
	return predicate.LabLog(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.LabLog {
	return predicate.LabLog(sql.FieldLTE(FieldScore, v))
}

// ErrorCountEQ applies the EQ predicate on the "error_count" field.
func ErrorCountEQ(v int) predicate.LabLog {
	return predicate.LabLog(sql.FieldEQ(FieldErrorCount, v))
}

// ErrorCountNEQ applies the NEQ predicate on the "error_count" field.
func ErrorCountNEQ(v int) predicate.LabLog {
	return predicate.LabLog(sql.FieldNEQ(FieldErrorCount, v))
}

// ErrorCountIn applies the In predicate on the "error_count" field.
func ErrorCountIn(vs ...int) predicate.LabLog {
	return predicate.LabLog(sql.FieldIn(FieldErrorCount, vs...))
}

// ErrorCountNotIn applies the NotIn predicate on the "error_count" field.
func ErrorCountNotIn(vs ...int) predicate.LabLog {
	return predicate.LabLog(sql.FieldNotIn(FieldErrorCount, vs...))
}

// ErrorCountGT applies the GT predicate on the "error_count" field.
func ErrorCountGT(v int) predicate.LabLog {
	return predicate.LabLog(sql.FieldGT(FieldErrorCount, v))
}

// ErrorCountGTE applies the GTE predicate on the "error_count" field.
func ErrorCountGTE(v int) predicate.LabLog {
	return predicate.LabLog(sql.FieldGTE(FieldErrorCount, v))
}

// ErrorCountLT applies the LT predicate on the "error_count" field.
func ErrorCountLT(v int) predicate.LabLog {
	return predicate.LabLog(sql.FieldLT(FieldErrorCount, v))
}

// ErrorCountLTE applies the LTE predicate on the "error_count" field.
func ErrorCountLTE(v int) predicate.LabLog {
	return predicate.LabLog(sql.FieldLTE(FieldErrorCount, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.LabLog {
	return predicate.LabLog(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.LabLog {
	return predicate.LabLog(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.LabLog {
	return predicate.LabLog(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.LabLog {
	return predicate.LabLog(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.LabLog {
	return predicate.LabLog(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.LabLog {
	return predicate.LabLog(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.LabLog {
	return predicate.LabLog(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.LabLog {
	return predicate.LabLog(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.LabLog {
	return predicate.LabLog(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.LabLog {
	return predicate.LabLog(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.LabLog {
	return predicate.LabLog(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.LabLog {
	return predicate.LabLog(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.LabLog {
	return predicate.LabLog(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.LabLog {
	return predicate.LabLog(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.LabLog {
	return predicate.LabLog(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.LabLog {
	return predicate.LabLog(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.LabLog {
	return predicate.LabLog(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.LabLog {
	return predicate.LabLog(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LabLog) predicate.LabLog {
	return predicate.LabLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LabLog) predicate.LabLog {
	return predicate.LabLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LabLog) predicate.LabLog {
	return predicate.LabLog(sql.NotPredicates(p))
}
