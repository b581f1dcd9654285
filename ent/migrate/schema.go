// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CareerGoalsColumns holds the columns for the "career_goals" table.
	CareerGoalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt, Unique: true},
		{Name: "target_role", Type: field.TypeEnum, Enums: []string{"researcher", "lab_technician", "bioinformatician", "bioprocess_engineer", "clinical_associate", "regulatory_affairs"}},
		{Name: "industry_skills", Type: field.TypeJSON, Nullable: true},
		{Name: "roadmap", Type: field.TypeJSON, Nullable: true},
		{Name: "mini_projects", Type: field.TypeJSON, Nullable: true},
		{Name: "certifications", Type: field.TypeJSON, Nullable: true},
		{Name: "readiness_score", Type: field.TypeFloat64, Default: 0},
		{Name: "generated_at", Type: field.TypeTime},
	}
	// CareerGoalsTable holds the schema information for the "career_goals" table.
	CareerGoalsTable = &schema.Table{
		Name:       "career_goals",
		Columns:    CareerGoalsColumns,
		PrimaryKey: []*schema.Column{CareerGoalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "careergoal_user_id",
				Unique:  false,
				Columns: []*schema.Column{CareerGoalsColumns[1]},
			},
		},
	}
	// LabLogsColumns holds the columns for the "lab_logs" table.
	LabLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "lab_type", Type: field.TypeString, Size: 100},
		{Name: "session_id", Type: field.TypeString, Unique: true, Size: 36},
		{Name: "decision_chain", Type: field.TypeJSON, Nullable: true},
		{Name: "outcome", Type: field.TypeString, Size: 50, Default: "incomplete"},
		{Name: "score", Type: field.TypeFloat64, Default: 0},
		{Name: "error_count", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// LabLogsTable holds the schema information for the "lab_logs" table.
	LabLogsTable = &schema.Table{
		Name:       "lab_logs",
		Columns:    LabLogsColumns,
		PrimaryKey: []*schema.Column{LabLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lablog_user_id",
				Unique:  false,
				Columns: []*schema.Column{LabLogsColumns[1]},
			},
			{
				Name:    "lablog_session_id",
				Unique:  false,
				Columns: []*schema.Column{LabLogsColumns[3]},
			},
		},
	}
	// QuizResultsColumns holds the columns for the "quiz_results" table.
	QuizResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "topic", Type: field.TypeString, Size: 150},
		{Name: "question_type", Type: field.TypeString, Size: 20},
		{Name: "question_data", Type: field.TypeJSON, Nullable: true},
		{Name: "student_answer", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "correct_answer", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_correct", Type: field.TypeBool},
		{Name: "score", Type: field.TypeFloat64, Default: 0},
		{Name: "llm_explanation", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "attempted_at", Type: field.TypeTime},
	}
	// QuizResultsTable holds the schema information for the "quiz_results" table.
	QuizResultsTable = &schema.Table{
		Name:       "quiz_results",
		Columns:    QuizResultsColumns,
		PrimaryKey: []*schema.Column{QuizResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizresult_user_id",
				Unique:  false,
				Columns: []*schema.Column{QuizResultsColumns[1]},
			},
			{
				Name:    "quizresult_user_id_topic",
				Unique:  false,
				Columns: []*schema.Column{QuizResultsColumns[1], QuizResultsColumns[2]},
			},
			{
				Name:    "quizresult_attempted_at",
				Unique:  false,
				Columns: []*schema.Column{QuizResultsColumns[10]},
			},
		},
	}
	// SkillScoresColumns holds the columns for the "skill_scores" table.
	SkillScoresColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "skill_name", Type: field.TypeString, Size: 150},
		{Name: "score", Type: field.TypeFloat64, Default: 0},
		{Name: "source", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SkillScoresTable holds the schema information for the "skill_scores" table.
	SkillScoresTable = &schema.Table{
		Name:       "skill_scores",
		Columns:    SkillScoresColumns,
		PrimaryKey: []*schema.Column{SkillScoresColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "skillscore_user_id_skill_name",
				Unique:  true,
				Columns: []*schema.Column{SkillScoresColumns[1], SkillScoresColumns[2]},
			},
		},
	}
	// TopicMasteriesColumns holds the columns for the "topic_masteries" table.
	TopicMasteriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "topic_name", Type: field.TypeString, Size: 150},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "correct", Type: field.TypeInt, Default: 0},
		{Name: "accuracy", Type: field.TypeFloat64, Default: 0},
		{Name: "current_level", Type: field.TypeEnum, Enums: []string{"beginner", "intermediate", "advanced"}, Default: "beginner"},
	}
	// TopicMasteriesTable holds the schema information for the "topic_masteries" table.
	TopicMasteriesTable = &schema.Table{
		Name:       "topic_masteries",
		Columns:    TopicMasteriesColumns,
		PrimaryKey: []*schema.Column{TopicMasteriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topicmastery_user_id_topic_name",
				Unique:  true,
				Columns: []*schema.Column{TopicMasteriesColumns[1], TopicMasteriesColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 150},
		{Name: "hashed_pw", Type: field.TypeString, Size: 255},
		{Name: "institution", Type: field.TypeString, Nullable: true, Size: 200},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"beginner", "intermediate", "advanced"}, Default: "beginner"},
		{Name: "xp_points", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CareerGoalsTable,
		LabLogsTable,
		QuizResultsTable,
		SkillScoresTable,
		TopicMasteriesTable,
		UsersTable,
	}
)

func init() {
}
