package store

import (
	"context"
	"errors"
	"time"

	"biomind/ent"
)

// ErrNotFound is returned when a queried row does not exist.
var ErrNotFound = errors.New("not found")

// CreateUserParams holds the fields required to register a user.
type CreateUserParams struct {
	Name        string
	Email       string
	HashedPW    string
	Institution string
	Level       string
}

// UserRepo manages user accounts.
type UserRepo interface {
	// Create registers a new user. Returns an error if the email is taken.
	Create(ctx context.Context, p CreateUserParams) (*ent.User, error)

	// ByEmail returns the user with the given email, or ErrNotFound.
	ByEmail(ctx context.Context, email string) (*ent.User, error)

	// ByID returns the user with the given id, or ErrNotFound.
	ByID(ctx context.Context, id int) (*ent.User, error)

	// SetProgress persists a user's XP total and global level.
	SetProgress(ctx context.Context, id int, xp int, level string) error
}

// MasteryRecord is the full per-topic mastery state persisted after an
// attempt is recorded.
type MasteryRecord struct {
	UserID    int
	TopicName string
	Attempts  int
	Correct   int
	Accuracy  float64
	Level     string
}

// MasteryRepo manages per-topic mastery rows.
type MasteryRepo interface {
	// Get returns the mastery row for (user, topic), or ErrNotFound.
	Get(ctx context.Context, userID int, topic string) (*ent.TopicMastery, error)

	// Save inserts or updates the mastery row for (user, topic).
	Save(ctx context.Context, rec MasteryRecord) error

	// ByUser returns all mastery rows for a user.
	ByUser(ctx context.Context, userID int) ([]*ent.TopicMastery, error)
}

// QuizResultRecord captures one graded quiz attempt.
type QuizResultRecord struct {
	UserID         int
	Topic          string
	QuestionType   string
	QuestionData   map[string]any
	StudentAnswer  string
	CorrectAnswer  string
	IsCorrect      bool
	Score          float64
	LLMExplanation string
}

// QuizResultRepo manages graded quiz attempts.
type QuizResultRepo interface {
	// Create stores a graded attempt.
	Create(ctx context.Context, rec QuizResultRecord) (*ent.QuizResult, error)

	// RecentWrongAnswers returns the correct answers of the user's most
	// recent wrong attempts on a topic, newest first.
	RecentWrongAnswers(ctx context.Context, userID int, topic string, limit int) ([]string, error)

	// Accuracy returns the user's correct and total attempt counts.
	Accuracy(ctx context.Context, userID int) (correct, total int, err error)
}

// LabLogUpdate carries the mutable state of a lab log row.
type LabLogUpdate struct {
	DecisionChain []map[string]any
	ErrorCount    int

	// Final fields. Applied only when Completed is true.
	Completed   bool
	Outcome     string
	Score       float64
	CompletedAt time.Time
}

// LabLogRepo manages persisted lab session logs.
type LabLogRepo interface {
	// Create opens a log row for a new lab session.
	Create(ctx context.Context, userID int, labType, sessionID string) (*ent.LabLog, error)

	// Update persists the session's decision chain and, on completion,
	// its outcome and score.
	Update(ctx context.Context, sessionID string, upd LabLogUpdate) error

	// BySession returns the log row for a session id, or ErrNotFound.
	BySession(ctx context.Context, sessionID string) (*ent.LabLog, error)
}

// CareerGoalRecord is the persisted result of a career analysis.
type CareerGoalRecord struct {
	TargetRole     string
	IndustrySkills map[string]float64
	Roadmap        []string
	MiniProjects   []string
	Certifications []string
	ReadinessScore float64
}

// CareerGoalRepo manages each user's single career goal row.
type CareerGoalRepo interface {
	// Upsert creates or replaces the user's career goal.
	Upsert(ctx context.Context, userID int, rec CareerGoalRecord) (*ent.CareerGoal, error)

	// ByUser returns the user's career goal, or ErrNotFound.
	ByUser(ctx context.Context, userID int) (*ent.CareerGoal, error)
}

// SkillScoreRepo manages standalone skill scores gathered outside quizzes.
type SkillScoreRepo interface {
	// ByUser returns the user's skill scores keyed by skill name.
	ByUser(ctx context.Context, userID int) (map[string]float64, error)

	// Upsert creates or updates one skill score.
	Upsert(ctx context.Context, userID int, skill string, score float64, source string) error
}
