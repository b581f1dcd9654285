package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CareerGoal is the single persisted career-plan snapshot per user,
// overwritten on each re-analysis (not versioned).
type CareerGoal struct {
	ent.Schema
}

func (CareerGoal) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Unique(),
		field.Enum("target_role").
			Values(
				"researcher",
				"lab_technician",
				"bioinformatician",
				"bioprocess_engineer",
				"clinical_associate",
				"regulatory_affairs",
			),
		field.JSON("industry_skills", map[string]float64{}).
			Optional(),
		field.JSON("roadmap", []string{}).
			Optional(),
		field.JSON("mini_projects", []string{}).
			Optional(),
		field.JSON("certifications", []string{}).
			Optional(),
		field.Float("readiness_score").
			Default(0),
		field.Time("generated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (CareerGoal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
