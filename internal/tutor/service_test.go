package tutor

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"biomind/ent"
	"biomind/internal/gateway"
	"biomind/internal/llm"
)

type stubProgress struct {
	weak []string
	xp   int
}

func (s *stubProgress) WeakTopics(context.Context, int) ([]string, error) {
	return s.weak, nil
}

func (s *stubProgress) AddXP(_ context.Context, _ int, points int) error {
	s.xp += points
	return nil
}

func lessonResponse() llm.MockResponse {
	raw, _ := json.Marshal(map[string]any{
		"content":      "CRISPR edits genomes with guide RNAs.",
		"summary":      "- guide RNA\n- Cas9\n- repair",
		"real_example": "Sickle cell therapy",
	})
	return llm.MockResponse{Content: raw}
}

func TestGenerateLesson(t *testing.T) {
	prog := &stubProgress{weak: []string{"PCR"}}
	mock := llm.NewMockProvider(lessonResponse())
	svc := NewService(gateway.New(mock, zap.NewNop(), time.Second), prog)

	u := &ent.User{ID: 1, Name: "Asha", Level: "intermediate"}
	lesson, err := svc.GenerateLesson(context.Background(), u, "CRISPR", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if lesson.Difficulty != "intermediate" {
		t.Errorf("difficulty = %q, want user level fallback", lesson.Difficulty)
	}
	if lesson.Content == "" || lesson.RealExample != "Sickle cell therapy" {
		t.Errorf("lesson = %+v", lesson)
	}
	if prog.xp != 10 {
		t.Errorf("xp = %d, want 10", prog.xp)
	}

	// Weak topics reach the prompt.
	if !strings.Contains(mock.Calls[0].System, "Weak areas: PCR") {
		t.Errorf("prompt missing weak areas: %q", mock.Calls[0].System)
	}
}

func TestGenerateLesson_ExplicitDifficulty(t *testing.T) {
	svc := NewService(gateway.New(llm.NewMockProvider(lessonResponse()), zap.NewNop(), time.Second), &stubProgress{})

	u := &ent.User{ID: 1, Name: "Ben", Level: "beginner"}
	lesson, err := svc.GenerateLesson(context.Background(), u, "PCR", "advanced")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if lesson.Difficulty != "advanced" {
		t.Errorf("difficulty = %q, want advanced", lesson.Difficulty)
	}
}

func TestAsk(t *testing.T) {
	prog := &stubProgress{}
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Gel percentage controls pore size."),
	})
	svc := NewService(gateway.New(mock, zap.NewNop(), time.Second), prog)

	u := &ent.User{ID: 1, Name: "Asha", Level: "beginner"}
	answer, err := svc.Ask(context.Background(), u, "Why does gel percentage matter?")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if answer != "Gel percentage controls pore size." {
		t.Errorf("answer = %q", answer)
	}
	if prog.xp != 0 {
		t.Errorf("xp = %d, want 0 for free-form chat", prog.xp)
	}
}
