// Code generated by ent, DO NOT EDIT.

package ent

import (
	"biomind/ent/quizresult"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// QuizResult is the model entity for the QuizResult schema.
type QuizResult struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int `json:"user_id,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// mcq, short, or scenario
	QuestionType string `json:"question_type,omitempty"`
	// The full model-produced question payload
	QuestionData map[string]interface{} `json:"question_data,omitempty"`
	// StudentAnswer holds the value of the "student_answer" field.
	StudentAnswer string `json:"student_answer,omitempty"`
	// Normalized correct answer at submission time
	CorrectAnswer string `json:"correct_answer,omitempty"`
	// IsCorrect holds the value of the "is_correct" field.
	IsCorrect bool `json:"is_correct,omitempty"`
	// Score holds the value of the "score" field.
	Score float64 `json:"score,omitempty"`
	// LlmExplanation holds the value of the "llm_explanation" field.
	LlmExplanation string `json:"llm_explanation,omitempty"`
	// AttemptedAt holds the value of the "attempted_at" field.
	AttemptedAt  time.Time `json:"attempted_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizresult.FieldQuestionData:
			values[i] = new([]byte)
		case quizresult.FieldIsCorrect:
			values[i] = new(sql.NullBool)
		case quizresult.FieldScore:
			values[i] = new(sql.NullFloat64)
		case quizresult.FieldID, quizresult.FieldUserID:
			values[i] = new(sql.NullInt64)
		case quizresult.FieldTopic, quizresult.FieldQuestionType, quizresult.FieldStudentAnswer, quizresult.FieldCorrectAnswer, quizresult.FieldLlmExplanation:
			values[i] = new(sql.NullString)
		case quizresult.FieldAttemptedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizResult fields.
func (_m *QuizResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizresult.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quizresult.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case quizresult.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case quizresult.FieldQuestionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_type", values[i])
			} else if value.Valid {
				_m.QuestionType = value.String
			}
		case quizresult.FieldQuestionData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field question_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.QuestionData); err != nil {
					return fmt.Errorf("unmarshal field question_data: %w", err)
				}
			}
		case quizresult.FieldStudentAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_answer", values[i])
			} else if value.Valid {
				_m.StudentAnswer = value.String
			}
		case quizresult.FieldCorrectAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answer", values[i])
			} else if value.Valid {
				_m.CorrectAnswer = value.String
			}
		case quizresult.FieldIsCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_correct", values[i])
			} else if value.Valid {
				_m.IsCorrect = value.Bool
			}
		case quizresult.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case quizresult.FieldLlmExplanation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_explanation", values[i])
			} else if value.Valid {
				_m.LlmExplanation = value.String
			}
		case quizresult.FieldAttemptedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field attempted_at", values[i])
			} else if value.Valid {
				_m.AttemptedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizResult.
// This includes values selected through modifiers, order, etc.
func (_m *QuizResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuizResult.
// Note that you need to call QuizResult.Unwrap() before calling this method if this QuizResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuizResult) Update() *QuizResultUpdateOne {
	return NewQuizResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuizResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuizResult) Unwrap() *QuizResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuizResult) String() string {
	var builder strings.Builder
	builder.WriteString("QuizResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("question_type=")
	builder.WriteString(_m.QuestionType)
	builder.WriteString(", ")
	builder.WriteString("question_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionData))
	builder.WriteString(", ")
	builder.WriteString("student_answer=")
	builder.WriteString(_m.StudentAnswer)
	builder.WriteString(", ")
	builder.WriteString("correct_answer=")
	builder.WriteString(_m.CorrectAnswer)
	builder.WriteString(", ")
	builder.WriteString("is_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsCorrect))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("llm_explanation=")
	builder.WriteString(_m.LlmExplanation)
	builder.WriteString(", ")
	builder.WriteString("attempted_at=")
	builder.WriteString(_m.AttemptedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QuizResults is a parsable slice of QuizResult.
type QuizResults []*QuizResult
