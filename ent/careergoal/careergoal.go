// Code generated by ent, DO NOT EDIT.

package careergoal

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the careergoal type in the database.
	Label = "career_goal"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTargetRole holds the string denoting the target_role field in the database.
	FieldTargetRole = "target_role"
	// FieldIndustrySkills holds the string denoting the industry_skills field in the database.
	FieldIndustrySkills = "industry_skills"
	// FieldRoadmap holds the string denoting the roadmap field in the database.
	FieldRoadmap = "roadmap"
	// FieldMiniProjects holds the string denoting the mini_projects field in the database.
	FieldMiniProjects = "mini_projects"
	// FieldCertifications holds the string denoting the certifications field in the database.
	FieldCertifications = "certifications"
	// FieldReadinessScore holds the string denoting the readiness_score field in the database.
	FieldReadinessScore = "readiness_score"
	// FieldGeneratedAt holds the string denoting the generated_at field in the database.
	FieldGeneratedAt = "generated_at"
	// Table holds the table name of the careergoal in the database.
	Table = "career_goals"
)

// Columns holds all SQL columns for careergoal fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTargetRole,
	FieldIndustrySkills,
	FieldRoadmap,
	FieldMiniProjects,
	FieldCertifications,
	FieldReadinessScore,
	FieldGeneratedAt,
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
	// DefaultReadinessScore holds the default value on creation for the "readiness_score" field.
	DefaultReadinessScore float64
	// DefaultGeneratedAt holds the default value on creation for the "generated_at" field.
	DefaultGeneratedAt func() time.Time
	// UpdateDefaultGeneratedAt holds the default value on update for the "generated_at" field.
	UpdateDefaultGeneratedAt func() time.Time
)

// TargetRole defines the type for the "target_role" enum field.
type TargetRole string

// TargetRole values.
const (
	TargetRoleResearcher         TargetRole = "researcher"
	TargetRoleLabTechnician      TargetRole = "lab_technician"
	TargetRoleBioinformatician   TargetRole = "bioinformatician"
	TargetRoleBioprocessEngineer TargetRole = "bioprocess_engineer"
	TargetRoleClinicalAssociate  TargetRole = "clinical_associate"
	TargetRoleRegulatoryAffairs  TargetRole = "regulatory_affairs"
)

func (tr TargetRole) String() string {
	return string(tr)
}

// TargetRoleValidator is a validator for the "target_role" field enum values. It is called by the builders before save.
func TargetRoleValidator(tr TargetRole) error {
	switch tr {
	case TargetRoleResearcher, TargetRoleLabTechnician, TargetRoleBioinformatician, TargetRoleBioprocessEngineer, TargetRoleClinicalAssociate, TargetRoleRegulatoryAffairs:
		return nil
	default:
		return fmt.Errorf("careergoal: invalid enum value for target_role field: %q", tr)
	}
}

// OrderOption defines the ordering options for the CareerGoal queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTargetRole orders the results by the target_role field.
func ByTargetRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetRole, opts...).ToFunc()
}

// ByReadinessScore orders the results by the readiness_score field.
func ByReadinessScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReadinessScore, opts...).ToFunc()
}

// ByGeneratedAt orders the results by the generated_at field.
func ByGeneratedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneratedAt, opts...).ToFunc()
}
