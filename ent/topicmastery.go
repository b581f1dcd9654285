// Code generated by ent, DO NOT EDIT.

package ent

import (
	"biomind/ent/topicmastery"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// TopicMastery is the model entity for the TopicMastery schema.
type TopicMastery struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int `json:"user_id,omitempty"`
	// TopicName holds the value of the "topic_name" field.
	TopicName string `json:"topic_name,omitempty"`
	// Attempts holds the value of the "attempts" field.
	Attempts int `json:"attempts,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct int `json:"correct,omitempty"`
	// correct / attempts, recomputed on every update
	Accuracy float64 `json:"accuracy,omitempty"`
	// Per-topic difficulty tier, independent of the user's global level
	CurrentLevel topicmastery.CurrentLevel `json:"current_level,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TopicMastery) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case topicmastery.FieldAccuracy:
			values[i] = new(sql.NullFloat64)
		case topicmastery.FieldID, topicmastery.FieldUserID, topicmastery.FieldAttempts, topicmastery.FieldCorrect:
			values[i] = new(sql.NullInt64)
		case topicmastery.FieldTopicName, topicmastery.FieldCurrentLevel:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TopicMastery fields.
func (_m *TopicMastery) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case topicmastery.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case topicmastery.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case topicmastery.FieldTopicName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_name", values[i])
			} else if value.Valid {
				_m.TopicName = value.String
			}
		case topicmastery.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case topicmastery.FieldCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = int(value.Int64)
			}
		case topicmastery.FieldAccuracy:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field accuracy", values[i])
			} else if value.Valid {
				_m.Accuracy = value.Float64
			}
		case topicmastery.FieldCurrentLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_level", values[i])
			} else if value.Valid {
				_m.CurrentLevel = topicmastery.CurrentLevel(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TopicMastery.
// This includes values selected through modifiers, order, etc.
func (_m *TopicMastery) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TopicMastery.
// Note that you need to call TopicMastery.Unwrap() before calling this method if this TopicMastery
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TopicMastery) Update() *TopicMasteryUpdateOne {
	return NewTopicMasteryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TopicMastery entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TopicMastery) Unwrap() *TopicMastery {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TopicMastery is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TopicMastery) String() string {
	var builder strings.Builder
	builder.WriteString("TopicMastery(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("topic_name=")
	builder.WriteString(_m.TopicName)
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("accuracy=")
	builder.WriteString(fmt.Sprintf("%v", _m.Accuracy))
	builder.WriteString(", ")
	builder.WriteString("current_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentLevel))
	builder.WriteByte(')')
	return builder.String()
}

// TopicMasteries is a parsable slice of TopicMastery.
type TopicMasteries []*TopicMastery
