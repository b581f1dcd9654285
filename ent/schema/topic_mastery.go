package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TopicMastery tracks per-topic rolling accuracy for one user.
// Created lazily on the first quiz attempt for a topic.
type TopicMastery struct {
	ent.Schema
}

func (TopicMastery) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id"),
		field.String("topic_name").
			NotEmpty().
			MaxLen(150),
		field.Int("attempts").
			Default(0).
			NonNegative(),
		field.Int("correct").
			Default(0).
			NonNegative(),
		field.Float("accuracy").
			Default(0).
			Comment("correct / attempts, recomputed on every update"),
		field.Enum("current_level").
			Values("beginner", "intermediate", "advanced").
			Default("beginner").
			Comment("Per-topic difficulty tier, independent of the user's global level"),
	}
}

func (TopicMastery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "topic_name").Unique(),
	}
}
