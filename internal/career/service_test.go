package career

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go.uber.org/zap"

	"biomind/ent"
	"biomind/internal/gateway"
	"biomind/internal/llm"
	"biomind/internal/progress"
	"biomind/internal/store"
)

type stubProgress struct {
	readiness float64
	gaps      []progress.SkillGap
	breakdown []progress.TopicBreakdown
}

func (s *stubProgress) Readiness(context.Context, int, map[string]float64) (float64, error) {
	return s.readiness, nil
}

func (s *stubProgress) SkillGaps(context.Context, int, map[string]float64) ([]progress.SkillGap, error) {
	return s.gaps, nil
}

func (s *stubProgress) Breakdown(context.Context, int) ([]progress.TopicBreakdown, error) {
	return s.breakdown, nil
}

type stubGoalRepo struct {
	saved *store.CareerGoalRecord
}

func (s *stubGoalRepo) Upsert(_ context.Context, _ int, rec store.CareerGoalRecord) (*ent.CareerGoal, error) {
	s.saved = &rec
	return &ent.CareerGoal{}, nil
}

func (s *stubGoalRepo) ByUser(context.Context, int) (*ent.CareerGoal, error) {
	return nil, store.ErrNotFound
}

type stubSkillRepo struct {
	scores map[string]float64
}

func (s *stubSkillRepo) ByUser(context.Context, int) (map[string]float64, error) {
	return s.scores, nil
}

func (s *stubSkillRepo) Upsert(context.Context, int, string, float64, string) error {
	return nil
}

func TestBenchmarks(t *testing.T) {
	for _, role := range Roles {
		bm := Benchmarks(role)
		if len(bm) != 5 {
			t.Errorf("role %s has %d benchmark skills, want 5", role, len(bm))
		}
	}

	if Benchmarks("astronaut") != nil {
		t.Error("unknown role should return nil benchmarks")
	}
	if Role("astronaut").Valid() {
		t.Error("astronaut should not be a valid role")
	}
}

func TestAnalyze(t *testing.T) {
	planJSON, _ := json.Marshal(map[string]any{
		"industry_required_skills": map[string]float64{"PCR": 85},
		"roadmap":                  []string{"step 1", "step 2"},
		"mini_projects":            []string{"project"},
		"certifications":           []string{"cert"},
		"readiness_score":          99.0, // model's guess, must be ignored
	})

	gw := gateway.New(llm.NewMockProvider(llm.MockResponse{Content: planJSON}), zap.NewNop(), time.Second)
	goals := &stubGoalRepo{}
	svc := NewService(
		&stubProgress{
			readiness: 42.5,
			gaps:      []progress.SkillGap{{Skill: "PCR", StudentScore: 40, RequiredScore: 85, Gap: 45}},
		},
		goals,
		&stubSkillRepo{scores: map[string]float64{"PCR": 40}},
		gw,
	)

	u := &ent.User{ID: 1, Name: "Asha"}
	analysis, err := svc.Analyze(context.Background(), u, Researcher)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if analysis.ReadinessScore != 42.5 {
		t.Errorf("readiness = %f, want benchmark-derived 42.5, not the model's 99.0", analysis.ReadinessScore)
	}
	if len(analysis.Roadmap) != 2 {
		t.Errorf("roadmap = %v", analysis.Roadmap)
	}
	if len(analysis.SkillGaps) != 1 || analysis.SkillGaps[0].Skill != "PCR" {
		t.Errorf("gaps = %v", analysis.SkillGaps)
	}

	if goals.saved == nil {
		t.Fatal("career goal was not persisted")
	}
	if goals.saved.TargetRole != "researcher" || goals.saved.ReadinessScore != 42.5 {
		t.Errorf("saved goal = %+v", goals.saved)
	}
}

func TestAnalyze_UnknownRole(t *testing.T) {
	svc := NewService(&stubProgress{}, &stubGoalRepo{}, &stubSkillRepo{}, nil)

	_, err := svc.Analyze(context.Background(), &ent.User{ID: 1}, "astronaut")
	if err != ErrUnknownRole {
		t.Fatalf("err = %v, want ErrUnknownRole", err)
	}
}

func TestTargetRole_DefaultsToResearcher(t *testing.T) {
	svc := NewService(&stubProgress{}, &stubGoalRepo{}, &stubSkillRepo{}, nil)

	if role := svc.TargetRole(context.Background(), 1); role != Researcher {
		t.Errorf("role = %s, want researcher default", role)
	}
}
