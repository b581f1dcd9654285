// Code generated by ent, DO NOT EDIT.

package quizresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quizresult type in the database.
	Label = "quiz_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldQuestionType holds the string denoting the question_type field in the database.
	FieldQuestionType = "question_type"
	// FieldQuestionData holds the string denoting the question_data field in the database.
	FieldQuestionData = "question_data"
	// FieldStudentAnswer holds the string denoting the student_answer field in the database.
	FieldStudentAnswer = "student_answer"
	// FieldCorrectAnswer holds the string denoting the correct_answer field in the database.
	FieldCorrectAnswer = "correct_answer"
	// FieldIsCorrect holds the string denoting the is_correct field in the database.
	FieldIsCorrect = "is_correct"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldLlmExplanation holds the string denoting the llm_explanation field in the database.
	FieldLlmExplanation = "llm_explanation"
	// FieldAttemptedAt holds the string denoting the attempted_at field in the database.
	FieldAttemptedAt = "attempted_at"
	// Table holds the table name of the quizresult in the database.
	Table = "quiz_results"
)

// Columns holds all SQL columns for quizresult fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTopic,
	FieldQuestionType,
	FieldQuestionData,
	FieldStudentAnswer,
	FieldCorrectAnswer,
	FieldIsCorrect,
	FieldScore,
	FieldLlmExplanation,
	FieldAttemptedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	QuestionTypeValidator func(string) error
	// DefaultScore holds the default value on creation for the "score" field.
	DefaultScore float64
	// DefaultAttemptedAt holds the default value on creation for the "attempted_at" field.
	DefaultAttemptedAt func() time.Time
)

// OrderOption defines the ordering options for the QuizResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByQuestionType orders the results by the question_type field.
func ByQuestionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionType, opts...).ToFunc()
}

// ByStudentAnswer orders the results by the student_answer field.
func ByStudentAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentAnswer, opts...).ToFunc()
}

// ByCorrectAnswer orders the results by the correct_answer field.
func ByCorrectAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswer, opts...).ToFunc()
}

// ByIsCorrect orders the results by the is_correct field.
func ByIsCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsCorrect, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByLlmExplanation orders the results by the llm_explanation field.
func ByLlmExplanation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmExplanation, opts...).ToFunc()
}

// ByAttemptedAt orders the results by the attempted_at field.
func ByAttemptedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptedAt, opts...).ToFunc()
}
