// Code generated by ent, DO NOT EDIT.

package ent

import (
	"biomind/ent/careergoal"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// CareerGoal is the model entity for the CareerGoal schema.
type CareerGoal struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int `json:"user_id,omitempty"`
	// TargetRole holds the value of the "target_role" field.
	TargetRole careergoal.TargetRole `json:"target_role,omitempty"`
	// IndustrySkills holds the value of the "industry_skills" field.
	IndustrySkills map[string]float64 `json:"industry_skills,omitempty"`
	// Roadmap holds the value of the "roadmap" field.
	Roadmap []string `json:"roadmap,omitempty"`
	// MiniProjects holds the value of the "mini_projects" field.
	MiniProjects []string `json:"mini_projects,omitempty"`
	// Certifications holds the value of the "certifications" field.
	Certifications []string `json:"certifications,omitempty"`
	// ReadinessScore holds the value of the "readiness_score" field.
	ReadinessScore float64 `json:"readiness_score,omitempty"`
	// GeneratedAt holds the value of the "generated_at" field.
	GeneratedAt  time.Time `json:"generated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CareerGoal) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case careergoal.FieldIndustrySkills, careergoal.FieldRoadmap, careergoal.FieldMiniProjects, careergoal.FieldCertifications:
			values[i] = new([]byte)
		case careergoal.FieldReadinessScore:
			values[i] = new(sql.NullFloat64)
		case careergoal.FieldID, careergoal.FieldUserID:
			values[i] = new(sql.NullInt64)
		case careergoal.FieldTargetRole:
			values[i] = new(sql.NullString)
		case careergoal.FieldGeneratedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CareerGoal fields.
func (_m *CareerGoal) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case careergoal.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case careergoal.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case careergoal.FieldTargetRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_role", values[i])
			} else if value.Valid {
				_m.TargetRole = careergoal.TargetRole(value.String)
			}
		case careergoal.FieldIndustrySkills:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field industry_skills", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.IndustrySkills); err != nil {
					return fmt.Errorf("unmarshal field industry_skills: %w", err)
				}
			}
		case careergoal.FieldRoadmap:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field roadmap", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Roadmap); err != nil {
					return fmt.Errorf("unmarshal field roadmap: %w", err)
				}
			}
		case careergoal.FieldMiniProjects:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field mini_projects", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MiniProjects); err != nil {
					return fmt.Errorf("unmarshal field mini_projects: %w", err)
				}
			}
		case careergoal.FieldCertifications:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field certifications", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Certifications); err != nil {
					return fmt.Errorf("unmarshal field certifications: %w", err)
				}
			}
		case careergoal.FieldReadinessScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field readiness_score", values[i])
			} else if value.Valid {
				_m.ReadinessScore = value.Float64
			}
		case careergoal.FieldGeneratedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field generated_at", values[i])
			} else if value.Valid {
				_m.GeneratedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CareerGoal.
// This includes values selected through modifiers, order, etc.
func (_m *CareerGoal) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CareerGoal.
// Note that you need to call CareerGoal.Unwrap() before calling this method if this CareerGoal
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CareerGoal) Update() *CareerGoalUpdateOne {
	return NewCareerGoalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CareerGoal entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CareerGoal) Unwrap() *CareerGoal {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CareerGoal is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CareerGoal) String() string {
	var builder strings.Builder
	builder.WriteString("CareerGoal(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("target_role=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetRole))
	builder.WriteString(", ")
	builder.WriteString("industry_skills=")
	builder.WriteString(fmt.Sprintf("%v", _m.IndustrySkills))
	builder.WriteString(", ")
	builder.WriteString("roadmap=")
	builder.WriteString(fmt.Sprintf("%v", _m.Roadmap))
	builder.WriteString(", ")
	builder.WriteString("mini_projects=")
	builder.WriteString(fmt.Sprintf("%v", _m.MiniProjects))
	builder.WriteString(", ")
	builder.WriteString("certifications=")
	builder.WriteString(fmt.Sprintf("%v", _m.Certifications))
	builder.WriteString(", ")
	builder.WriteString("readiness_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReadinessScore))
	builder.WriteString(", ")
	builder.WriteString("generated_at=")
	builder.WriteString(_m.GeneratedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CareerGoals is a parsable slice of CareerGoal.
type CareerGoals []*CareerGoal
