package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func createTestUser(t *testing.T, s *Store, email string) int {
	t.Helper()
	u, err := s.Users().Create(context.Background(), CreateUserParams{
		Name:     "Test Student",
		Email:    email,
		HashedPW: "$2a$10$notarealhashnotarealhashnotarealhash",
	})
	if err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return u.ID
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestUserRepo(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Users()

	t.Run("create and fetch", func(t *testing.T) {
		id := createTestUser(t, s, "asha@example.edu")

		u, err := repo.ByEmail(ctx, "asha@example.edu")
		if err != nil {
			t.Fatalf("by email: %v", err)
		}
		if u.ID != id {
			t.Errorf("id = %d, want %d", u.ID, id)
		}
		if string(u.Level) != "beginner" {
			t.Errorf("level = %q, want beginner default", u.Level)
		}
		if u.XpPoints != 0 {
			t.Errorf("xp = %d, want 0", u.XpPoints)
		}
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := repo.Create(ctx, CreateUserParams{
			Name:     "Dup",
			Email:    "asha@example.edu",
			HashedPW: "x",
		})
		if err == nil {
			t.Fatal("expected unique constraint error")
		}
	})

	t.Run("missing user", func(t *testing.T) {
		if _, err := repo.ByEmail(ctx, "nobody@example.edu"); err != ErrNotFound {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
		if _, err := repo.ByID(ctx, 9999); err != ErrNotFound {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("set progress", func(t *testing.T) {
		id := createTestUser(t, s, "ben@example.edu")
		if err := repo.SetProgress(ctx, id, 250, "intermediate"); err != nil {
			t.Fatalf("set progress: %v", err)
		}
		u, err := repo.ByID(ctx, id)
		if err != nil {
			t.Fatalf("by id: %v", err)
		}
		if u.XpPoints != 250 || string(u.Level) != "intermediate" {
			t.Errorf("got xp=%d level=%s, want 250/intermediate", u.XpPoints, u.Level)
		}
	})
}

func TestMasteryRepo(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	uid := createTestUser(t, s, "mastery@example.edu")
	repo := s.Mastery()

	if _, err := repo.Get(ctx, uid, "PCR"); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound before first save", err)
	}

	rec := MasteryRecord{
		UserID: uid, TopicName: "PCR",
		Attempts: 1, Correct: 1, Accuracy: 1.0, Level: "beginner",
	}
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Upsert path: same (user, topic) updates in place.
	rec.Attempts, rec.Correct, rec.Accuracy = 2, 1, 0.5
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("second save: %v", err)
	}

	m, err := repo.Get(ctx, uid, "PCR")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if m.Attempts != 2 || m.Correct != 1 || m.Accuracy != 0.5 {
		t.Errorf("got attempts=%d correct=%d acc=%f", m.Attempts, m.Correct, m.Accuracy)
	}

	rows, err := repo.ByUser(ctx, uid)
	if err != nil {
		t.Fatalf("by user: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("rows = %d, want 1", len(rows))
	}
}

func TestQuizResultRepo(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	uid := createTestUser(t, s, "quiz@example.edu")
	repo := s.QuizResults()

	save := func(correct bool, answer string) {
		t.Helper()
		_, err := repo.Create(ctx, QuizResultRecord{
			UserID: uid, Topic: "CRISPR", QuestionType: "mcq",
			QuestionData:  map[string]any{"question": "q"},
			StudentAnswer: "x", CorrectAnswer: answer,
			IsCorrect: correct, Score: 1.0,
		})
		if err != nil {
			t.Fatalf("create quiz result: %v", err)
		}
	}

	save(true, "0")
	save(false, "1")
	save(false, "2")

	correct, total, err := repo.Accuracy(ctx, uid)
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if correct != 1 || total != 3 {
		t.Errorf("accuracy = %d/%d, want 1/3", correct, total)
	}

	wrongs, err := repo.RecentWrongAnswers(ctx, uid, "CRISPR", 3)
	if err != nil {
		t.Fatalf("recent wrongs: %v", err)
	}
	if len(wrongs) != 2 {
		t.Errorf("wrongs = %v, want 2 entries", wrongs)
	}
}

func TestLabLogRepo(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	uid := createTestUser(t, s, "lab@example.edu")
	repo := s.LabLogs()

	const sid = "8f14e45f-ceea-4673-9aad-5c2cf0a1b2c3"

	if _, err := repo.Create(ctx, uid, "pcr_lab", sid); err != nil {
		t.Fatalf("create: %v", err)
	}

	chain := []map[string]any{{"step": 1, "choice": "mix reagents"}}
	err := repo.Update(ctx, sid, LabLogUpdate{DecisionChain: chain, ErrorCount: 1})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	err = repo.Update(ctx, sid, LabLogUpdate{
		DecisionChain: chain,
		ErrorCount:    1,
		Completed:     true,
		Outcome:       "partial",
		Score:         85,
		CompletedAt:   time.Now(),
	})
	if err != nil {
		t.Fatalf("final update: %v", err)
	}

	log, err := repo.BySession(ctx, sid)
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if log.Outcome != "partial" || log.Score != 85 || log.CompletedAt == nil {
		t.Errorf("got outcome=%s score=%f completed=%v", log.Outcome, log.Score, log.CompletedAt)
	}

	if err := repo.Update(ctx, "no-such-session", LabLogUpdate{}); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCareerGoalRepo(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	uid := createTestUser(t, s, "career@example.edu")
	repo := s.CareerGoals()

	if _, err := repo.ByUser(ctx, uid); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound before analysis", err)
	}

	rec := CareerGoalRecord{
		TargetRole:     "bioinformatician",
		IndustrySkills: map[string]float64{"Python": 80},
		Roadmap:        []string{"learn python"},
		MiniProjects:   []string{"variant caller"},
		Certifications: []string{"none"},
		ReadinessScore: 40.5,
	}
	if _, err := repo.Upsert(ctx, uid, rec); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	// Second analysis replaces the row rather than adding one.
	rec.TargetRole = "researcher"
	rec.ReadinessScore = 55.0
	if _, err := repo.Upsert(ctx, uid, rec); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	goal, err := repo.ByUser(ctx, uid)
	if err != nil {
		t.Fatalf("by user: %v", err)
	}
	if string(goal.TargetRole) != "researcher" || goal.ReadinessScore != 55.0 {
		t.Errorf("got role=%s readiness=%f", goal.TargetRole, goal.ReadinessScore)
	}
}

func TestSkillScoreRepo(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	uid := createTestUser(t, s, "skills@example.edu")
	repo := s.SkillScores()

	if err := repo.Upsert(ctx, uid, "PCR", 70, "assessment"); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := repo.Upsert(ctx, uid, "PCR", 75, "assessment"); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if err := repo.Upsert(ctx, uid, "CRISPR", 60, "self-report"); err != nil {
		t.Fatalf("third upsert: %v", err)
	}

	scores, err := repo.ByUser(ctx, uid)
	if err != nil {
		t.Fatalf("by user: %v", err)
	}
	if len(scores) != 2 || scores["PCR"] != 75 || scores["CRISPR"] != 60 {
		t.Errorf("scores = %v", scores)
	}
}
