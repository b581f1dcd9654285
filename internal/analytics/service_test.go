package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"biomind/ent"
	"biomind/internal/career"
	"biomind/internal/gateway"
	"biomind/internal/llm"
	"biomind/internal/progress"
)

type stubProgress struct {
	breakdown []progress.TopicBreakdown
	weak      []string
	strong    []string
	accuracy  float64
	readiness float64

	gotBenchmarks map[string]float64
}

func (s *stubProgress) Breakdown(context.Context, int) ([]progress.TopicBreakdown, error) {
	return s.breakdown, nil
}

func (s *stubProgress) WeakTopics(context.Context, int) ([]string, error) {
	return s.weak, nil
}

func (s *stubProgress) StrongTopics(context.Context, int) ([]string, error) {
	return s.strong, nil
}

func (s *stubProgress) OverallAccuracy(context.Context, int) (float64, error) {
	return s.accuracy, nil
}

func (s *stubProgress) Readiness(_ context.Context, _ int, benchmarks map[string]float64) (float64, error) {
	s.gotBenchmarks = benchmarks
	return s.readiness, nil
}

type stubRoles struct {
	role career.Role
}

func (s *stubRoles) TargetRole(context.Context, int) career.Role {
	return s.role
}

func testUser() *ent.User {
	return &ent.User{ID: 7, Name: "Asha", Level: "beginner", XpPoints: 120}
}

func TestDashboard(t *testing.T) {
	prog := &stubProgress{
		breakdown: []progress.TopicBreakdown{{Topic: "PCR", Attempts: 4, Accuracy: 0.25, Level: "beginner"}},
		weak:      []string{"PCR"},
		strong:    []string{"CRISPR"},
		accuracy:  0.625,
		readiness: 33.3,
	}
	gw := gateway.New(llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`["review PCR basics","practice primer design","redo the quiz"]`),
	}), zap.NewNop(), time.Second)
	svc := NewService(prog, &stubRoles{role: career.LabTechnician}, gw, zap.NewNop())

	d, err := svc.Dashboard(context.Background(), testUser())
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	if d.TotalXP != 120 || d.UserID != 7 {
		t.Errorf("identity fields = %+v", d)
	}
	if d.OverallAccuracy != 0.625 || d.IndustryReadiness != 33.3 {
		t.Errorf("accuracy/readiness = %f/%f", d.OverallAccuracy, d.IndustryReadiness)
	}
	if len(d.ImprovementTips) != 3 {
		t.Errorf("tips = %v", d.ImprovementTips)
	}

	// Readiness must be computed against the target role's benchmarks.
	if prog.gotBenchmarks["Lab Safety"] != 95 {
		t.Errorf("benchmarks = %v, want lab_technician table", prog.gotBenchmarks)
	}
}

func TestDashboard_NoWeakTopicsSkipsTips(t *testing.T) {
	prog := &stubProgress{}
	mock := llm.NewMockProvider() // empty queue: any call would error
	svc := NewService(prog, &stubRoles{role: career.Researcher}, gateway.New(mock, zap.NewNop(), time.Second), zap.NewNop())

	d, err := svc.Dashboard(context.Background(), testUser())
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if len(d.ImprovementTips) != 0 {
		t.Errorf("tips = %v, want none", d.ImprovementTips)
	}
	if mock.CallCount() != 0 {
		t.Errorf("model called %d times, want 0", mock.CallCount())
	}
}

func TestDashboard_TipFailureDegradesToEmpty(t *testing.T) {
	prog := &stubProgress{weak: []string{"PCR"}}
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	svc := NewService(prog, &stubRoles{role: career.Researcher}, gateway.New(mock, zap.NewNop(), time.Second), zap.NewNop())

	d, err := svc.Dashboard(context.Background(), testUser())
	if err != nil {
		t.Fatalf("dashboard should survive tip failure: %v", err)
	}
	if len(d.ImprovementTips) != 0 {
		t.Errorf("tips = %v, want empty", d.ImprovementTips)
	}
}

func TestLearningPath(t *testing.T) {
	raw, _ := json.Marshal(map[string]any{
		"weeks": []map[string]any{
			{"week": "Week 1-2", "focus": "PCR fundamentals", "topics": []string{"PCR", "primers"}, "priority": "high"},
		},
		"milestone": "Run a clean amplification",
	})
	gw := gateway.New(llm.NewMockProvider(llm.MockResponse{Content: raw}), zap.NewNop(), time.Second)
	svc := NewService(&stubProgress{weak: []string{"PCR"}}, &stubRoles{role: career.Researcher}, gw, zap.NewNop())

	res, err := svc.LearningPath(context.Background(), testUser())
	if err != nil {
		t.Fatalf("path: %v", err)
	}
	if res.Student != "Asha" || res.Level != "beginner" {
		t.Errorf("identity = %+v", res)
	}
	if len(res.Path.Weeks) != 1 || res.Path.Weeks[0].Priority != "high" {
		t.Errorf("path = %+v", res.Path)
	}
	if res.Path.Milestone != "Run a clean amplification" {
		t.Errorf("milestone = %q", res.Path.Milestone)
	}
}
