package progress

import (
	"context"
	"testing"

	"biomind/ent"
	"biomind/ent/topicmastery"
	"biomind/ent/user"
	"biomind/internal/store"
)

// mockMasteryRepo keeps mastery rows in a map keyed by topic.
type mockMasteryRepo struct {
	rows map[string]store.MasteryRecord
}

func newMockMasteryRepo() *mockMasteryRepo {
	return &mockMasteryRepo{rows: make(map[string]store.MasteryRecord)}
}

func (m *mockMasteryRepo) Get(_ context.Context, _ int, topic string) (*ent.TopicMastery, error) {
	rec, ok := m.rows[topic]
	if !ok {
		return nil, store.ErrNotFound
	}
	return toEntMastery(rec), nil
}

func (m *mockMasteryRepo) Save(_ context.Context, rec store.MasteryRecord) error {
	m.rows[rec.TopicName] = rec
	return nil
}

func (m *mockMasteryRepo) ByUser(_ context.Context, _ int) ([]*ent.TopicMastery, error) {
	out := make([]*ent.TopicMastery, 0, len(m.rows))
	for _, rec := range m.rows {
		out = append(out, toEntMastery(rec))
	}
	return out, nil
}

func toEntMastery(rec store.MasteryRecord) *ent.TopicMastery {
	return &ent.TopicMastery{
		UserID:       rec.UserID,
		TopicName:    rec.TopicName,
		Attempts:     rec.Attempts,
		Correct:      rec.Correct,
		Accuracy:     rec.Accuracy,
		CurrentLevel: topicmastery.CurrentLevel(rec.Level),
	}
}

// mockUserRepo holds a single user.
type mockUserRepo struct {
	xp    int
	level string
}

func (m *mockUserRepo) Create(context.Context, store.CreateUserParams) (*ent.User, error) {
	panic("not used")
}

func (m *mockUserRepo) ByEmail(context.Context, string) (*ent.User, error) {
	panic("not used")
}

func (m *mockUserRepo) ByID(_ context.Context, id int) (*ent.User, error) {
	return &ent.User{ID: id, XpPoints: m.xp, Level: user.Level(m.level)}, nil
}

func (m *mockUserRepo) SetProgress(_ context.Context, _ int, xp int, level string) error {
	m.xp = xp
	m.level = level
	return nil
}

// mockQuizRepo returns fixed accuracy counts.
type mockQuizRepo struct {
	correct, total int
}

func (m *mockQuizRepo) Create(context.Context, store.QuizResultRecord) (*ent.QuizResult, error) {
	panic("not used")
}

func (m *mockQuizRepo) RecentWrongAnswers(context.Context, int, string, int) ([]string, error) {
	return nil, nil
}

func (m *mockQuizRepo) Accuracy(context.Context, int) (int, int, error) {
	return m.correct, m.total, nil
}

// mockSkillRepo returns fixed skill scores.
type mockSkillRepo struct {
	scores map[string]float64
}

func (m *mockSkillRepo) ByUser(context.Context, int) (map[string]float64, error) {
	if m.scores == nil {
		return map[string]float64{}, nil
	}
	return m.scores, nil
}

func (m *mockSkillRepo) Upsert(context.Context, int, string, float64, string) error {
	return nil
}

func newTestService(mastery *mockMasteryRepo, users *mockUserRepo, quizzes *mockQuizRepo, skills *mockSkillRepo) *Service {
	if mastery == nil {
		mastery = newMockMasteryRepo()
	}
	if users == nil {
		users = &mockUserRepo{level: "beginner"}
	}
	if quizzes == nil {
		quizzes = &mockQuizRepo{}
	}
	if skills == nil {
		skills = &mockSkillRepo{}
	}
	return NewService(users, mastery, quizzes, skills)
}

func TestRecordAttempt_PromotesAfterFiveStrongAttempts(t *testing.T) {
	mastery := newMockMasteryRepo()
	svc := newTestService(mastery, nil, nil, nil)
	ctx := context.Background()

	// 5 correct attempts: accuracy 1.0, attempts 5 -> promote once.
	for i := 0; i < 5; i++ {
		if err := svc.RecordAttempt(ctx, 1, "PCR", true); err != nil {
			t.Fatalf("attempt %d: %v", i+1, err)
		}
	}

	rec := mastery.rows["PCR"]
	if rec.Level != "intermediate" {
		t.Errorf("level = %s, want intermediate", rec.Level)
	}
	if rec.Attempts != 5 || rec.Correct != 5 {
		t.Errorf("attempts/correct = %d/%d", rec.Attempts, rec.Correct)
	}
}

func TestRecordAttempt_OneTierPerUpdate(t *testing.T) {
	mastery := newMockMasteryRepo()
	mastery.rows["PCR"] = store.MasteryRecord{
		UserID: 1, TopicName: "PCR",
		Attempts: 9, Correct: 9, Accuracy: 1.0, Level: "beginner",
	}
	svc := newTestService(mastery, nil, nil, nil)

	if err := svc.RecordAttempt(context.Background(), 1, "PCR", true); err != nil {
		t.Fatalf("record: %v", err)
	}

	// Even with 10/10 accuracy, a single update moves one tier only.
	if got := mastery.rows["PCR"].Level; got != "intermediate" {
		t.Errorf("level = %s, want intermediate", got)
	}
}

func TestRecordAttempt_DemotesBelowForty(t *testing.T) {
	mastery := newMockMasteryRepo()
	mastery.rows["Cloning"] = store.MasteryRecord{
		UserID: 1, TopicName: "Cloning",
		Attempts: 4, Correct: 1, Accuracy: 0.25, Level: "advanced",
	}
	svc := newTestService(mastery, nil, nil, nil)

	if err := svc.RecordAttempt(context.Background(), 1, "Cloning", false); err != nil {
		t.Fatalf("record: %v", err)
	}

	if got := mastery.rows["Cloning"].Level; got != "intermediate" {
		t.Errorf("level = %s, want intermediate", got)
	}
}

func TestRecordAttempt_NoDemotionBeforeThreeAttempts(t *testing.T) {
	mastery := newMockMasteryRepo()
	mastery.rows["Cloning"] = store.MasteryRecord{
		UserID: 1, TopicName: "Cloning",
		Attempts: 1, Correct: 0, Accuracy: 0.0, Level: "intermediate",
	}
	svc := newTestService(mastery, nil, nil, nil)

	if err := svc.RecordAttempt(context.Background(), 1, "Cloning", false); err != nil {
		t.Fatalf("record: %v", err)
	}

	// 0/2 accuracy but only 2 attempts: level holds.
	if got := mastery.rows["Cloning"].Level; got != "intermediate" {
		t.Errorf("level = %s, want intermediate", got)
	}
}

func TestAddXP_Thresholds(t *testing.T) {
	tests := []struct {
		name      string
		startXP   int
		startLvl  string
		points    int
		wantXP    int
		wantLevel string
	}{
		{"stays beginner", 100, "beginner", 50, 150, "beginner"},
		{"crosses 200", 190, "beginner", 25, 215, "intermediate"},
		{"crosses 600", 590, "intermediate", 50, 640, "advanced"},
		{"exactly 200", 175, "beginner", 25, 200, "intermediate"},
		{"no demotion", 0, "advanced", 10, 10, "advanced"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mockUserRepo{xp: tt.startXP, level: tt.startLvl}
			svc := newTestService(nil, users, nil, nil)

			if err := svc.AddXP(context.Background(), 1, tt.points); err != nil {
				t.Fatalf("add xp: %v", err)
			}
			if users.xp != tt.wantXP || users.level != tt.wantLevel {
				t.Errorf("got xp=%d level=%s, want %d/%s", users.xp, users.level, tt.wantXP, tt.wantLevel)
			}
		})
	}
}

func TestWeakAndStrongTopics(t *testing.T) {
	mastery := newMockMasteryRepo()
	mastery.rows["PCR"] = store.MasteryRecord{TopicName: "PCR", Attempts: 4, Correct: 1, Accuracy: 0.25, Level: "beginner"}
	mastery.rows["CRISPR"] = store.MasteryRecord{TopicName: "CRISPR", Attempts: 5, Correct: 4, Accuracy: 0.80, Level: "beginner"}
	mastery.rows["Cloning"] = store.MasteryRecord{TopicName: "Cloning", Attempts: 0, Correct: 0, Accuracy: 0.0, Level: "beginner"}
	svc := newTestService(mastery, nil, nil, nil)
	ctx := context.Background()

	weak, err := svc.WeakTopics(ctx, 1)
	if err != nil {
		t.Fatalf("weak: %v", err)
	}
	if len(weak) != 1 || weak[0] != "PCR" {
		t.Errorf("weak = %v, want [PCR]; zero-attempt topics are excluded", weak)
	}

	strong, err := svc.StrongTopics(ctx, 1)
	if err != nil {
		t.Fatalf("strong: %v", err)
	}
	// Exactly 0.80 counts as strong.
	if len(strong) != 1 || strong[0] != "CRISPR" {
		t.Errorf("strong = %v, want [CRISPR]", strong)
	}
}

func TestOverallAccuracy(t *testing.T) {
	t.Run("no attempts", func(t *testing.T) {
		svc := newTestService(nil, nil, &mockQuizRepo{}, nil)
		acc, err := svc.OverallAccuracy(context.Background(), 1)
		if err != nil {
			t.Fatalf("accuracy: %v", err)
		}
		if acc != 0.0 {
			t.Errorf("accuracy = %f, want 0.0", acc)
		}
	})

	t.Run("rounded to 3 places", func(t *testing.T) {
		svc := newTestService(nil, nil, &mockQuizRepo{correct: 2, total: 3}, nil)
		acc, err := svc.OverallAccuracy(context.Background(), 1)
		if err != nil {
			t.Fatalf("accuracy: %v", err)
		}
		if acc != 0.667 {
			t.Errorf("accuracy = %f, want 0.667", acc)
		}
	})
}

func TestReadiness(t *testing.T) {
	t.Run("empty benchmarks", func(t *testing.T) {
		svc := newTestService(nil, nil, nil, nil)
		r, err := svc.Readiness(context.Background(), 1, nil)
		if err != nil {
			t.Fatalf("readiness: %v", err)
		}
		if r != 0.0 {
			t.Errorf("readiness = %f, want 0.0", r)
		}
	})

	t.Run("half of one benchmark", func(t *testing.T) {
		skills := &mockSkillRepo{scores: map[string]float64{"PCR": 40}}
		svc := newTestService(nil, nil, nil, skills)

		r, err := svc.Readiness(context.Background(), 1, map[string]float64{"PCR": 80})
		if err != nil {
			t.Fatalf("readiness: %v", err)
		}
		if r != 50.0 {
			t.Errorf("readiness = %f, want 50.0", r)
		}
	})

	t.Run("ratios capped at 1.0", func(t *testing.T) {
		skills := &mockSkillRepo{scores: map[string]float64{"PCR": 200}}
		svc := newTestService(nil, nil, nil, skills)

		r, err := svc.Readiness(context.Background(), 1, map[string]float64{"PCR": 80})
		if err != nil {
			t.Fatalf("readiness: %v", err)
		}
		if r != 100.0 {
			t.Errorf("readiness = %f, want 100.0", r)
		}
	})

	t.Run("topic accuracy fallback", func(t *testing.T) {
		mastery := newMockMasteryRepo()
		mastery.rows["PCR"] = store.MasteryRecord{TopicName: "PCR", Attempts: 4, Correct: 2, Accuracy: 0.5}
		svc := newTestService(mastery, nil, nil, nil)

		// No skill score: accuracy*100 = 50 against a benchmark of 100.
		r, err := svc.Readiness(context.Background(), 1, map[string]float64{"PCR": 100})
		if err != nil {
			t.Fatalf("readiness: %v", err)
		}
		if r != 50.0 {
			t.Errorf("readiness = %f, want 50.0", r)
		}
	})
}

func TestSkillGaps_SortedByLargestGap(t *testing.T) {
	skills := &mockSkillRepo{scores: map[string]float64{"PCR": 70, "CRISPR": 20}}
	svc := newTestService(nil, nil, nil, skills)

	gaps, err := svc.SkillGaps(context.Background(), 1, map[string]float64{
		"PCR":    85,
		"CRISPR": 80,
	})
	if err != nil {
		t.Fatalf("gaps: %v", err)
	}
	if len(gaps) != 2 {
		t.Fatalf("gaps = %v", gaps)
	}
	if gaps[0].Skill != "CRISPR" || gaps[0].Gap != 60 {
		t.Errorf("first gap = %+v, want CRISPR/60", gaps[0])
	}
	if gaps[1].Skill != "PCR" || gaps[1].Gap != 15 {
		t.Errorf("second gap = %+v, want PCR/15", gaps[1])
	}
}

func TestSkillGaps_NeverNegative(t *testing.T) {
	skills := &mockSkillRepo{scores: map[string]float64{"PCR": 95}}
	svc := newTestService(nil, nil, nil, skills)

	gaps, err := svc.SkillGaps(context.Background(), 1, map[string]float64{"PCR": 85})
	if err != nil {
		t.Fatalf("gaps: %v", err)
	}
	if gaps[0].Gap != 0 {
		t.Errorf("gap = %f, want 0 when score exceeds requirement", gaps[0].Gap)
	}
}
