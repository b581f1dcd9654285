package progress

import (
	"context"
	"fmt"
	"sort"

	"biomind/internal/store"
)

// TopicBreakdown is one row of a user's per-topic progress summary.
type TopicBreakdown struct {
	Topic    string  `json:"topic"`
	Attempts int     `json:"attempts"`
	Accuracy float64 `json:"accuracy"`
	Level    string  `json:"level"`
}

// SkillGap compares a student's score on one skill against the industry
// benchmark for their target role.
type SkillGap struct {
	Skill         string  `json:"skill"`
	StudentScore  float64 `json:"student_score"`
	RequiredScore float64 `json:"required_score"`
	Gap           float64 `json:"gap"`
}

// Service aggregates quiz history into mastery, XP, and readiness.
type Service struct {
	users   store.UserRepo
	mastery store.MasteryRepo
	quizzes store.QuizResultRepo
	skills  store.SkillScoreRepo
}

// NewService creates a progress Service over the given repositories.
func NewService(users store.UserRepo, mastery store.MasteryRepo, quizzes store.QuizResultRepo, skills store.SkillScoreRepo) *Service {
	return &Service{users: users, mastery: mastery, quizzes: quizzes, skills: skills}
}

// RecordAttempt folds one graded quiz attempt into the topic's mastery
// row, creating it on first contact. Accuracy is recomputed and the
// topic level moves at most one tier.
func (s *Service) RecordAttempt(ctx context.Context, userID int, topic string, correct bool) error {
	attempts, correctCount := 0, 0
	level := Beginner

	m, err := s.mastery.Get(ctx, userID, topic)
	if err != nil && err != store.ErrNotFound {
		return fmt.Errorf("load mastery: %w", err)
	}
	if m != nil {
		attempts = m.Attempts
		correctCount = m.Correct
		level = Level(m.CurrentLevel)
	}

	attempts++
	if correct {
		correctCount++
	}
	accuracy := float64(correctCount) / float64(attempts)
	level = nextMasteryLevel(level, accuracy, attempts)

	rec := store.MasteryRecord{
		UserID:    userID,
		TopicName: topic,
		Attempts:  attempts,
		Correct:   correctCount,
		Accuracy:  accuracy,
		Level:     string(level),
	}
	if err := s.mastery.Save(ctx, rec); err != nil {
		return fmt.Errorf("save mastery: %w", err)
	}
	return nil
}

// AddXP credits points to a user and applies global level thresholds.
func (s *Service) AddXP(ctx context.Context, userID int, points int) error {
	u, err := s.users.ByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}

	xp := u.XpPoints + points
	level := levelForXP(Level(u.Level), xp)

	if err := s.users.SetProgress(ctx, userID, xp, string(level)); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// WeakTopics returns topics attempted at least once with accuracy below
// the weak threshold.
func (s *Service) WeakTopics(ctx context.Context, userID int) ([]string, error) {
	rows, err := s.mastery.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var weak []string
	for _, m := range rows {
		if m.Attempts > 0 && m.Accuracy < WeakThreshold {
			weak = append(weak, m.TopicName)
		}
	}
	return weak, nil
}

// StrongTopics returns topics attempted at least once with accuracy at
// or above the strong threshold.
func (s *Service) StrongTopics(ctx context.Context, userID int) ([]string, error) {
	rows, err := s.mastery.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var strong []string
	for _, m := range rows {
		if m.Attempts > 0 && m.Accuracy >= StrongThreshold {
			strong = append(strong, m.TopicName)
		}
	}
	return strong, nil
}

// Breakdown returns one row per attempted topic.
func (s *Service) Breakdown(ctx context.Context, userID int) ([]TopicBreakdown, error) {
	rows, err := s.mastery.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	breakdown := make([]TopicBreakdown, 0, len(rows))
	for _, m := range rows {
		if m.Attempts == 0 {
			continue
		}
		breakdown = append(breakdown, TopicBreakdown{
			Topic:    m.TopicName,
			Attempts: m.Attempts,
			Accuracy: round3(m.Accuracy),
			Level:    string(m.CurrentLevel),
		})
	}
	return breakdown, nil
}

// OverallAccuracy returns the user's lifetime quiz accuracy, 0.0 when
// no attempts exist.
func (s *Service) OverallAccuracy(ctx context.Context, userID int) (float64, error) {
	correct, total, err := s.quizzes.Accuracy(ctx, userID)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0.0, nil
	}
	return round3(float64(correct) / float64(total)), nil
}

// studentScores merges standalone skill scores with topic accuracies
// (scaled to 0-100). Skill scores win when both exist.
func (s *Service) studentScores(ctx context.Context, userID int) (map[string]float64, map[string]float64, error) {
	skills, err := s.skills.ByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	rows, err := s.mastery.ByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	topicAcc := make(map[string]float64, len(rows))
	for _, m := range rows {
		topicAcc[m.TopicName] = m.Accuracy * 100
	}

	return skills, topicAcc, nil
}

// scoreFor resolves a student's score on one benchmark skill.
func scoreFor(skill string, skills, topicAcc map[string]float64) float64 {
	if v, ok := skills[skill]; ok {
		return v
	}
	return topicAcc[skill]
}

// Readiness computes the percentage of a role's benchmarks the user
// meets, each skill capped at 100% of its requirement. Returns 0.0 for
// an empty benchmark set.
func (s *Service) Readiness(ctx context.Context, userID int, benchmarks map[string]float64) (float64, error) {
	if len(benchmarks) == 0 {
		return 0.0, nil
	}

	skills, topicAcc, err := s.studentScores(ctx, userID)
	if err != nil {
		return 0, err
	}

	var sum float64
	for skill, required := range benchmarks {
		ratio := scoreFor(skill, skills, topicAcc) / required
		if ratio > 1.0 {
			ratio = 1.0
		}
		sum += ratio
	}
	return round1(sum / float64(len(benchmarks)) * 100), nil
}

// SkillGaps returns one entry per benchmark skill, sorted by largest
// gap first.
func (s *Service) SkillGaps(ctx context.Context, userID int, benchmarks map[string]float64) ([]SkillGap, error) {
	skills, topicAcc, err := s.studentScores(ctx, userID)
	if err != nil {
		return nil, err
	}

	gaps := make([]SkillGap, 0, len(benchmarks))
	for skill, required := range benchmarks {
		score := scoreFor(skill, skills, topicAcc)
		gap := required - score
		if gap < 0 {
			gap = 0
		}
		gaps = append(gaps, SkillGap{
			Skill:         skill,
			StudentScore:  score,
			RequiredScore: required,
			Gap:           gap,
		})
	}

	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].Gap != gaps[j].Gap {
			return gaps[i].Gap > gaps[j].Gap
		}
		return gaps[i].Skill < gaps[j].Skill
	})
	return gaps, nil
}
