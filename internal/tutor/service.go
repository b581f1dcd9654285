// Package tutor generates lessons and answers free-form study questions.
package tutor

import (
	"context"
	"fmt"

	"biomind/ent"
	"biomind/internal/gateway"
	"biomind/internal/progress"
)

// ProgressAccess is the slice of the progress service the tutor needs.
type ProgressAccess interface {
	WeakTopics(ctx context.Context, userID int) ([]string, error)
	AddXP(ctx context.Context, userID int, points int) error
}

// Lesson is a generated lesson ready to return to the client.
type Lesson struct {
	Topic       string `json:"topic"`
	Difficulty  string `json:"difficulty"`
	Content     string `json:"content"`
	Summary     string `json:"summary"`
	RealExample string `json:"real_example"`
}

// Service generates lessons personalized to a learner's weak spots.
type Service struct {
	gw       *gateway.Gateway
	progress ProgressAccess
}

// NewService creates a tutor Service.
func NewService(gw *gateway.Gateway, progress ProgressAccess) *Service {
	return &Service{gw: gw, progress: progress}
}

// GenerateLesson produces a lesson on topic. An empty difficulty falls
// back to the user's global level. The user's weak topics are fed to the
// prompt so the lesson reinforces them. Awards lesson XP.
func (s *Service) GenerateLesson(ctx context.Context, u *ent.User, topic, difficulty string) (*Lesson, error) {
	if difficulty == "" {
		difficulty = string(u.Level)
	}

	weak, err := s.progress.WeakTopics(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("weak topics: %w", err)
	}

	content, err := s.gw.Lesson(ctx, topic, difficulty, u.Name, weak)
	if err != nil {
		return nil, err
	}

	if err := s.progress.AddXP(ctx, u.ID, progress.XPLesson); err != nil {
		return nil, fmt.Errorf("award xp: %w", err)
	}

	return &Lesson{
		Topic:       topic,
		Difficulty:  difficulty,
		Content:     content.Content,
		Summary:     content.Summary,
		RealExample: content.RealExample,
	}, nil
}

// Ask answers a free-form question without the lesson structure. No XP
// is awarded for open-ended chat.
func (s *Service) Ask(ctx context.Context, u *ent.User, query string) (string, error) {
	weak, err := s.progress.WeakTopics(ctx, u.ID)
	if err != nil {
		return "", fmt.Errorf("weak topics: %w", err)
	}
	return s.gw.Answer(ctx, query, string(u.Level), u.Name, weak)
}
