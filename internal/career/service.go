package career

import (
	"context"
	"errors"
	"fmt"

	"biomind/ent"
	"biomind/internal/gateway"
	"biomind/internal/progress"
	"biomind/internal/store"
)

// ErrUnknownRole is returned when a requested role is not in the
// benchmark tables.
var ErrUnknownRole = errors.New("unknown target role")

// ProgressReader is the slice of the progress service the analyzer needs.
type ProgressReader interface {
	Readiness(ctx context.Context, userID int, benchmarks map[string]float64) (float64, error)
	SkillGaps(ctx context.Context, userID int, benchmarks map[string]float64) ([]progress.SkillGap, error)
	Breakdown(ctx context.Context, userID int) ([]progress.TopicBreakdown, error)
}

// Analysis is the result of one career analysis.
type Analysis struct {
	TargetRole     string               `json:"target_role"`
	ReadinessScore float64              `json:"readiness_score"`
	SkillGaps      []progress.SkillGap  `json:"skill_gaps"`
	Roadmap        []string             `json:"roadmap"`
	MiniProjects   []string             `json:"mini_projects"`
	Certifications []string             `json:"certifications"`
}

// Service runs career analyses and persists each user's career goal.
type Service struct {
	progress ProgressReader
	goals    store.CareerGoalRepo
	skills   store.SkillScoreRepo
	gw       *gateway.Gateway
}

// NewService creates a career Service.
func NewService(progress ProgressReader, goals store.CareerGoalRepo, skills store.SkillScoreRepo, gw *gateway.Gateway) *Service {
	return &Service{progress: progress, goals: goals, skills: skills, gw: gw}
}

// Analyze scores the user against the role's benchmarks, asks the model
// for a roadmap, and replaces the user's stored career goal. The
// readiness score is always the benchmark-derived number, not the
// model's own estimate.
func (s *Service) Analyze(ctx context.Context, u *ent.User, role Role) (*Analysis, error) {
	if !role.Valid() {
		return nil, ErrUnknownRole
	}
	benchmarks := Benchmarks(role)

	gaps, err := s.progress.SkillGaps(ctx, u.ID, benchmarks)
	if err != nil {
		return nil, fmt.Errorf("skill gaps: %w", err)
	}
	readiness, err := s.progress.Readiness(ctx, u.ID, benchmarks)
	if err != nil {
		return nil, fmt.Errorf("readiness: %w", err)
	}

	breakdown, err := s.progress.Breakdown(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("breakdown: %w", err)
	}
	topicAcc := make(map[string]float64, len(breakdown))
	for _, row := range breakdown {
		topicAcc[row.Topic] = row.Accuracy
	}

	skills, err := s.skills.ByUser(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("skill scores: %w", err)
	}

	plan, err := s.gw.Career(ctx, u.Name, string(role), skills, topicAcc)
	if err != nil {
		return nil, err
	}

	_, err = s.goals.Upsert(ctx, u.ID, store.CareerGoalRecord{
		TargetRole:     string(role),
		IndustrySkills: plan.IndustryRequiredSkills,
		Roadmap:        plan.Roadmap,
		MiniProjects:   plan.MiniProjects,
		Certifications: plan.Certifications,
		ReadinessScore: readiness,
	})
	if err != nil {
		return nil, fmt.Errorf("save career goal: %w", err)
	}

	return &Analysis{
		TargetRole:     string(role),
		ReadinessScore: readiness,
		SkillGaps:      gaps,
		Roadmap:        plan.Roadmap,
		MiniProjects:   plan.MiniProjects,
		Certifications: plan.Certifications,
	}, nil
}

// TargetRole returns the user's stored target role, falling back to the
// default when no analysis has been run.
func (s *Service) TargetRole(ctx context.Context, userID int) Role {
	goal, err := s.goals.ByUser(ctx, userID)
	if err != nil {
		return DefaultRole
	}
	return Role(goal.TargetRole)
}
