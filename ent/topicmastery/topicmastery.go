// Code generated by ent, DO NOT EDIT.

package topicmastery

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the topicmastery type in the database.
	Label = "topic_mastery"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTopicName holds the string denoting the topic_name field in the database.
	FieldTopicName = "topic_name"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldAccuracy holds the string denoting the accuracy field in the database.
	FieldAccuracy = "accuracy"
	// FieldCurrentLevel holds the string denoting the current_level field in the database.
	FieldCurrentLevel = "current_level"
	// Table holds the table name of the topicmastery in the database.
	Table = "topic_masteries"
)

// Columns holds all SQL columns for topicmastery fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTopicName,
	FieldAttempts,
	FieldCorrect,
	FieldAccuracy,
	FieldCurrentLevel,
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
	// TopicNameValidator is a validator for the "topic_name" field. It is called by the builders before save.
	TopicNameValidator func(string) error
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	AttemptsValidator func(int) error
	// DefaultCorrect holds the default value on creation for the "correct" field.
	DefaultCorrect int
	// CorrectValidator is a validator for the "correct" field. It is called by the builders before save.
	CorrectValidator func(int) error
	// DefaultAccuracy holds the default value on creation for the "accuracy" field.
	DefaultAccuracy float64
)

// CurrentLevel defines the type for the "current_level" enum field.
type CurrentLevel string

// CurrentLevelBeginner is the default value of the CurrentLevel enum.
const DefaultCurrentLevel = CurrentLevelBeginner

// CurrentLevel values.
const (
	CurrentLevelBeginner     CurrentLevel = "beginner"
	CurrentLevelIntermediate CurrentLevel = "intermediate"
	CurrentLevelAdvanced     CurrentLevel = "advanced"
)

func (cl CurrentLevel) String() string {
	return string(cl)
}

// CurrentLevelValidator is a validator for the "current_level" field enum values. It is called by the builders before save.
func CurrentLevelValidator(cl CurrentLevel) error {
	switch cl {
	case CurrentLevelBeginner, CurrentLevelIntermediate, CurrentLevelAdvanced:
		return nil
	default:
		return fmt.Errorf("topicmastery: invalid enum value for current_level field: %q", cl)
	}
}

// OrderOption defines the ordering options for the TopicMastery queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTopicName orders the results by the topic_name field.
func ByTopicName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicName, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByAccuracy orders the results by the accuracy field.
func ByAccuracy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccuracy, opts...).ToFunc()
}

// ByCurrentLevel orders the results by the current_level field.
func ByCurrentLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentLevel, opts...).ToFunc()
}
