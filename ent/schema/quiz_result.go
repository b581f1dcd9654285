package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizResult is the append-only audit row for a single answer submission.
// Rows are never mutated after creation; aggregation reads them back.
type QuizResult struct {
	ent.Schema
}

func (QuizResult) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id"),
		field.String("topic").
			NotEmpty().
			MaxLen(150),
		field.String("question_type").
			MaxLen(20).
			Comment("mcq, short, or scenario"),
		field.JSON("question_data", map[string]any{}).
			Optional().
			Comment("The full model-produced question payload"),
		field.Text("student_answer").
			Optional(),
		field.Text("correct_answer").
			Optional().
			Comment("Normalized correct answer at submission time"),
		field.Bool("is_correct"),
		field.Float("score").
			Default(0),
		field.Text("llm_explanation").
			Optional(),
		field.Time("attempted_at").
			Default(time.Now).
			Immutable(),
	}
}

func (QuizResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "topic"),
		index.Fields("attempted_at"),
	}
}
