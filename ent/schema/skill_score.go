package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SkillScore is an externally-sourced skill rating for one user.
// When present it overrides the topic-accuracy-derived estimate in
// readiness and gap calculations.
type SkillScore struct {
	ent.Schema
}

func (SkillScore) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id"),
		field.String("skill_name").
			NotEmpty().
			MaxLen(150),
		field.Float("score").
			Default(0),
		field.String("source").
			MaxLen(50).
			Optional().
			Comment("Where the rating came from: assessment, self-report, import"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (SkillScore) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "skill_name").Unique(),
	}
}
