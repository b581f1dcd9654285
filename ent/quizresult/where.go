// Code generated by ent, DO NOT EDIT.

package quizresult

import (
	"biomind/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldUserID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldTopic, v))
}

// QuestionType applies equality check predicate on the "question_type" field. It's identical to QuestionTypeEQ.
func QuestionType(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldQuestionType, v))
}

// StudentAnswer applies equality check predicate on the "student_answer" field. It's identical to StudentAnswerEQ.
func StudentAnswer(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldStudentAnswer, v))
}

// CorrectAnswer applies equality check predicate on the "correct_answer" field. It's identical to CorrectAnswerEQ.
func CorrectAnswer(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldCorrectAnswer, v))
}

// IsCorrect applies equality check predicate on the "is_correct" field. It's identical to IsCorrectEQ.
func IsCorrect(v bool) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldIsCorrect, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldScore, v))
}

// LlmExplanation applies equality check predicate on the "llm_explanation" field. It's identical to LlmExplanationEQ.
func LlmExplanation(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldLlmExplanation, v))
}

// AttemptedAt applies equality check predicate on the "attempted_at" field. It's identical to AttemptedAtEQ.
func AttemptedAt(v time.Time) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldAttemptedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLTE(FieldUserID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldContainsFold(FieldTopic, v))
}

// QuestionTypeEQ applies the EQ predicate on the "question_type" field.
func QuestionTypeEQ(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldQuestionType, v))
}

// QuestionTypeNEQ applies the NEQ predicate on the "question_type" field.
func QuestionTypeNEQ(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNEQ(FieldQuestionType, v))
}

// QuestionTypeIn applies the In predicate on the "question_type" field.
func QuestionTypeIn(vs ...string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIn(FieldQuestionType, vs...))
}

// QuestionTypeNotIn applies the NotIn predicate on the "question_type" field.
func QuestionTypeNotIn(vs ...string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotIn(FieldQuestionType, vs...))
}

// QuestionTypeGT applies the GT predicate on the "question_type" field.
func QuestionTypeGT(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGT(FieldQuestionType, v))
}

// QuestionTypeGTE applies the GTE predicate on the "question_type" field.
func QuestionTypeGTE(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGTE(FieldQuestionType, v))
}

// QuestionTypeLT applies the LT predicate on the "question_type" field.
func QuestionTypeLT(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLT(FieldQuestionType, v))
}

// QuestionTypeLTE applies the LTE predicate on the "question_type" field.
func QuestionTypeLTE(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLTE(FieldQuestionType, v))
}

// QuestionTypeContains applies the Contains predicate on the "question_type" field.
func QuestionTypeContains(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldContains(FieldQuestionType, v))
}

// QuestionTypeHasPrefix applies the HasPrefix predicate on the "question_type" field.
func QuestionTypeHasPrefix(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldHasPrefix(FieldQuestionType, v))
}

// QuestionTypeHasSuffix applies the HasSuffix predicate on the "question_type" field.
func QuestionTypeHasSuffix(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldHasSuffix(FieldQuestionType, v))
}

// QuestionTypeEqualFold applies the EqualFold predicate on the "question_type" field.
func QuestionTypeEqualFold(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEqualFold(FieldQuestionType, v))
}

// QuestionTypeContainsFold applies the ContainsFold predicate on the "question_type" field.
func QuestionTypeContainsFold(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldContainsFold(FieldQuestionType, v))
}

// QuestionDataIsNil applies the IsNil predicate on the "question_data" field.
func QuestionDataIsNil() predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIsNull(FieldQuestionData))
}

// QuestionDataNotNil applies the NotNil predicate on the "question_data" field.
func QuestionDataNotNil() predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotNull(FieldQuestionData))
}

// StudentAnswerEQ applies the EQ predicate on the "student_answer" field.
func StudentAnswerEQ(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldStudentAnswer, v))
}

// StudentAnswerNEQ applies the NEQ predicate on the "student_answer" field.
func StudentAnswerNEQ(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNEQ(FieldStudentAnswer, v))
}

// StudentAnswerIn applies the In predicate on the "student_answer" field.
func StudentAnswerIn(vs ...string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIn(FieldStudentAnswer, vs...))
}

// StudentAnswerNotIn applies the NotIn predicate on the "student_answer" field.
func StudentAnswerNotIn(vs ...string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotIn(FieldStudentAnswer, vs...))
}

// StudentAnswerGT applies the GT predicate on the "student_answer" field.
func StudentAnswerGT(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGT(FieldStudentAnswer, v))
}

// StudentAnswerGTE applies the GTE predicate on the "student_answer" field.
func StudentAnswerGTE(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGTE(FieldStudentAnswer, v))
}

// StudentAnswerLT applies the LT predicate on the "student_answer" field.
func StudentAnswerLT(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLT(FieldStudentAnswer, v))
}

// StudentAnswerLTE applies the LTE predicate on the "student_answer" field.
func StudentAnswerLTE(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLTE(FieldStudentAnswer, v))
}

// StudentAnswerContains applies the Contains predicate on the "student_answer" field.
func StudentAnswerContains(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldContains(FieldStudentAnswer, v))
}

// StudentAnswerHasPrefix applies the HasPrefix predicate on the "student_answer" field.
func StudentAnswerHasPrefix(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldHasPrefix(FieldStudentAnswer, v))
}

// StudentAnswerHasSuffix applies the HasSuffix predicate on the "student_answer" field.
func StudentAnswerHasSuffix(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldHasSuffix(FieldStudentAnswer, v))
}

// StudentAnswerIsNil applies the IsNil predicate on the "student_answer" field.
func StudentAnswerIsNil() predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIsNull(FieldStudentAnswer))
}

// StudentAnswerNotNil applies the NotNil predicate on the "student_answer" field.
func StudentAnswerNotNil() predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotNull(FieldStudentAnswer))
}

// StudentAnswerEqualFold applies the EqualFold predicate on the "student_answer" field.
func StudentAnswerEqualFold(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEqualFold(FieldStudentAnswer, v))
}

// StudentAnswerContainsFold applies the ContainsFold predicate on the "student_answer" field.
func StudentAnswerContainsFold(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldContainsFold(FieldStudentAnswer, v))
}

// CorrectAnswerEQ applies the EQ predicate on the "correct_answer" field.
func CorrectAnswerEQ(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerNEQ applies the NEQ predicate on the "correct_answer" field.
func CorrectAnswerNEQ(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerIn applies the In predicate on the "correct_answer" field.
func CorrectAnswerIn(vs ...string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerNotIn applies the NotIn predicate on the "correct_answer" field.
func CorrectAnswerNotIn(vs ...string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerGT applies the GT predicate on the "correct_answer" field.
func CorrectAnswerGT(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGT(FieldCorrectAnswer, v))
}

// CorrectAnswerGTE applies the GTE predicate on the "correct_answer" field.
func CorrectAnswerGTE(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGTE(FieldCorrectAnswer, v))
}

// CorrectAnswerLT applies the LT predicate on the "correct_answer" field.
func CorrectAnswerLT(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLT(FieldCorrectAnswer, v))
}

// CorrectAnswerLTE applies the LTE predicate on the "correct_answer" field.
func CorrectAnswerLTE(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLTE(FieldCorrectAnswer, v))
}

// CorrectAnswerContains applies the Contains predicate on the "correct_answer" field.
func CorrectAnswerContains(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldContains(FieldCorrectAnswer, v))
}

// CorrectAnswerHasPrefix applies the HasPrefix predicate on the "correct_answer" field.
func CorrectAnswerHasPrefix(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldHasPrefix(FieldCorrectAnswer, v))
}

// CorrectAnswerHasSuffix applies the HasSuffix predicate on the "correct_answer" field.
func CorrectAnswerHasSuffix(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldHasSuffix(FieldCorrectAnswer, v))
}

// CorrectAnswerIsNil applies the IsNil predicate on the "correct_answer" field.
func CorrectAnswerIsNil() predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIsNull(FieldCorrectAnswer))
}

// CorrectAnswerNotNil applies the NotNil predicate on the "correct_answer" field.
func CorrectAnswerNotNil() predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotNull(FieldCorrectAnswer))
}

// CorrectAnswerEqualFold applies the EqualFold predicate on the "correct_answer" field.
func CorrectAnswerEqualFold(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEqualFold(FieldCorrectAnswer, v))
}

// CorrectAnswerContainsFold applies the ContainsFold predicate on the "correct_answer" field.
func CorrectAnswerContainsFold(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldContainsFold(FieldCorrectAnswer, v))
}

// IsCorrectEQ applies the EQ predicate on the "is_correct" field.
func IsCorrectEQ(v bool) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldIsCorrect, v))
}

// IsCorrectNEQ applies the NEQ predicate on the "is_correct" field.
func IsCorrectNEQ(v bool) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNEQ(FieldIsCorrect, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLTE(FieldScore, v))
}

// LlmExplanationEQ applies the EQ predicate on the "llm_explanation" field.
func LlmExplanationEQ(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldLlmExplanation, v))
}

// LlmExplanationNEQ applies the NEQ predicate on the "llm_explanation" field.
func LlmExplanationNEQ(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNEQ(FieldLlmExplanation, v))
}

// LlmExplanationIn applies the In predicate on the "llm_explanation" field.
func LlmExplanationIn(vs ...string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIn(FieldLlmExplanation, vs...))
}

// LlmExplanationNotIn applies the NotIn predicate on the "llm_explanation" field.
func LlmExplanationNotIn(vs ...string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotIn(FieldLlmExplanation, vs...))
}

// LlmExplanationGT applies the GT predicate on the "llm_explanation" field.
func LlmExplanationGT(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGT(FieldLlmExplanation, v))
}

// LlmExplanationGTE applies the GTE predicate on the "llm_explanation" field.
func LlmExplanationGTE(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGTE(FieldLlmExplanation, v))
}

// LlmExplanationLT applies the LT predicate on the "llm_explanation" field.
func LlmExplanationLT(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLT(FieldLlmExplanation, v))
}

// LlmExplanationLTE applies the LTE predicate on the "llm_explanation" field.
func LlmExplanationLTE(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLTE(FieldLlmExplanation, v))
}

// LlmExplanationContains applies the Contains predicate on the "llm_explanation" field.
func LlmExplanationContains(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldContains(FieldLlmExplanation, v))
}

// LlmExplanationHasPrefix applies the HasPrefix predicate on the "llm_explanation" field.
func LlmExplanationHasPrefix(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldHasPrefix(FieldLlmExplanation, v))
}

// LlmExplanationHasSuffix applies the HasSuffix predicate on the "llm_explanation" field.
func LlmExplanationHasSuffix(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldHasSuffix(FieldLlmExplanation, v))
}

// LlmExplanationIsNil applies the IsNil predicate on the "llm_explanation" field.
func LlmExplanationIsNil() predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIsNull(FieldLlmExplanation))
}

// LlmExplanationNotNil applies the NotNil predicate on the "llm_explanation" field.
func LlmExplanationNotNil() predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotNull(FieldLlmExplanation))
}

// LlmExplanationEqualFold applies the EqualFold predicate on the "llm_explanation" field.
func LlmExplanationEqualFold(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEqualFold(FieldLlmExplanation, v))
}

// LlmExplanationContainsFold applies the ContainsFold predicate on the "llm_explanation" field.
func LlmExplanationContainsFold(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldContainsFold(FieldLlmExplanation, v))
}

// AttemptedAtEQ applies the EQ predicate on the "attempted_at" field.
func AttemptedAtEQ(v time.Time) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldAttemptedAt, v))
}

// AttemptedAtNEQ applies the NEQ predicate on the "attempted_at" field.
func AttemptedAtNEQ(v time.Time) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNEQ(FieldAttemptedAt, v))
}

// AttemptedAtIn applies the In predicate on the "attempted_at" field.
func AttemptedAtIn(vs ...time.Time) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIn(FieldAttemptedAt, vs...))
}

// AttemptedAtNotIn applies the NotIn predicate on the "attempted_at" field.
func AttemptedAtNotIn(vs ...time.Time) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotIn(FieldAttemptedAt, vs...))
}

// AttemptedAtGT applies the GT predicate on the "attempted_at" field.
func AttemptedAtGT(v time.Time) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGT(FieldAttemptedAt, v))
}

// AttemptedAtGTE applies the GTE predicate on the "attempted_at" field.
func AttemptedAtGTE(v time.Time) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGTE(FieldAttemptedAt, v))
}

// AttemptedAtLT applies the LT predicate on the "attempted_at" field.
func AttemptedAtLT(v time.Time) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLT(FieldAttemptedAt, v))
}

// AttemptedAtLTE applies the LTE predicate on the "attempted_at" field.
func AttemptedAtLTE(v time.Time) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLTE(FieldAttemptedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizResult) predicate.QuizResult {
	return predicate.QuizResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizResult) predicate.QuizResult {
	return predicate.QuizResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizResult) predicate.QuizResult {
	return predicate.QuizResult(sql.NotPredicates(p))
}
