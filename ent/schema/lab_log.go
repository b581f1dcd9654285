package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LabLog records one virtual-lab session from start to completion.
// The decision chain and error count are updated per decision; the
// completion fields are set exactly once at finalization.
type LabLog struct {
	ent.Schema
}

func (LabLog) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id"),
		field.String("lab_type").
			NotEmpty().
			MaxLen(100),
		field.String("session_id").
			NotEmpty().
			MaxLen(36).
			Unique(),
		field.JSON("decision_chain", []map[string]any{}).
			Optional().
			Comment("Ordered decision history: step, choice, result, error"),
		field.String("outcome").
			MaxLen(50).
			Default("incomplete").
			Comment("incomplete, success, or partial"),
		field.Float("score").
			Default(0),
		field.Int("error_count").
			Default(0).
			NonNegative(),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (LabLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("session_id"),
	}
}
