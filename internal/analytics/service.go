// Package analytics assembles the progress dashboard and generates
// study guidance from a learner's aggregate history.
package analytics

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"biomind/ent"
	"biomind/internal/career"
	"biomind/internal/gateway"
	"biomind/internal/progress"
)

// ProgressReader is the slice of the progress service the dashboard needs.
type ProgressReader interface {
	Breakdown(ctx context.Context, userID int) ([]progress.TopicBreakdown, error)
	WeakTopics(ctx context.Context, userID int) ([]string, error)
	StrongTopics(ctx context.Context, userID int) ([]string, error)
	OverallAccuracy(ctx context.Context, userID int) (float64, error)
	Readiness(ctx context.Context, userID int, benchmarks map[string]float64) (float64, error)
}

// RoleSource resolves a user's target role.
type RoleSource interface {
	TargetRole(ctx context.Context, userID int) career.Role
}

// Dashboard is the full progress summary for one user.
type Dashboard struct {
	UserID            int                       `json:"user_id"`
	TotalXP           int                       `json:"total_xp"`
	OverallAccuracy   float64                   `json:"overall_accuracy"`
	TopicBreakdown    []progress.TopicBreakdown `json:"topic_breakdown"`
	WeakTopics        []string                  `json:"weak_topics"`
	StrongTopics      []string                  `json:"strong_topics"`
	ImprovementTips   []string                  `json:"improvement_tips"`
	IndustryReadiness float64                   `json:"industry_readiness"`
}

// PathResult wraps a generated learning path with its owner.
type PathResult struct {
	Student string                `json:"student"`
	Level   string                `json:"level"`
	Path    *gateway.LearningPath `json:"path"`
}

// Service builds dashboards and learning paths.
type Service struct {
	progress ProgressReader
	roles    RoleSource
	gw       *gateway.Gateway
	logger   *zap.Logger
}

// NewService creates an analytics Service.
func NewService(progress ProgressReader, roles RoleSource, gw *gateway.Gateway, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{progress: progress, roles: roles, gw: gw, logger: logger}
}

// Dashboard assembles the user's full progress view. Improvement tips
// are generated only when weak topics exist, and any tip failure
// degrades to an empty list rather than failing the dashboard.
func (s *Service) Dashboard(ctx context.Context, u *ent.User) (*Dashboard, error) {
	breakdown, err := s.progress.Breakdown(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("breakdown: %w", err)
	}
	weak, err := s.progress.WeakTopics(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("weak topics: %w", err)
	}
	strong, err := s.progress.StrongTopics(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("strong topics: %w", err)
	}
	accuracy, err := s.progress.OverallAccuracy(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("overall accuracy: %w", err)
	}

	tips := []string{}
	if len(weak) > 0 {
		generated, err := s.gw.Tips(ctx, weak, string(u.Level))
		if err != nil {
			s.logger.Warn("improvement tips unavailable", zap.Error(err))
		} else {
			tips = generated
		}
	}

	role := s.roles.TargetRole(ctx, u.ID)
	readiness, err := s.progress.Readiness(ctx, u.ID, career.Benchmarks(role))
	if err != nil {
		return nil, fmt.Errorf("readiness: %w", err)
	}

	return &Dashboard{
		UserID:            u.ID,
		TotalXP:           u.XpPoints,
		OverallAccuracy:   accuracy,
		TopicBreakdown:    breakdown,
		WeakTopics:        weak,
		StrongTopics:      strong,
		ImprovementTips:   tips,
		IndustryReadiness: readiness,
	}, nil
}

// LearningPath generates a 6-week study plan toward the user's target role.
func (s *Service) LearningPath(ctx context.Context, u *ent.User) (*PathResult, error) {
	weak, err := s.progress.WeakTopics(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("weak topics: %w", err)
	}
	strong, err := s.progress.StrongTopics(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("strong topics: %w", err)
	}

	role := s.roles.TargetRole(ctx, u.ID)
	path, err := s.gw.Path(ctx, string(u.Level), string(role), weak, strong)
	if err != nil {
		return nil, err
	}

	return &PathResult{
		Student: u.Name,
		Level:   string(u.Level),
		Path:    path,
	}, nil
}
