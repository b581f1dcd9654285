package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"biomind/ent"
	"biomind/internal/gateway"
	"biomind/internal/llm"
	"biomind/internal/store"
)

type stubResultRepo struct {
	saved  []store.QuizResultRecord
	wrongs []string
}

func (s *stubResultRepo) Create(_ context.Context, rec store.QuizResultRecord) (*ent.QuizResult, error) {
	s.saved = append(s.saved, rec)
	return &ent.QuizResult{}, nil
}

func (s *stubResultRepo) RecentWrongAnswers(context.Context, int, string, int) ([]string, error) {
	return s.wrongs, nil
}

func (s *stubResultRepo) Accuracy(context.Context, int) (int, int, error) {
	return 0, 0, nil
}

type stubProgress struct {
	attempts []bool
	xp       int
}

func (s *stubProgress) RecordAttempt(_ context.Context, _ int, _ string, correct bool) error {
	s.attempts = append(s.attempts, correct)
	return nil
}

func (s *stubProgress) AddXP(_ context.Context, _ int, points int) error {
	s.xp += points
	return nil
}

func intPtr(i int) *int { return &i }

func testUser() *ent.User {
	return &ent.User{ID: 1, Name: "Asha", Level: "beginner"}
}

func newService(results *stubResultRepo, prog *stubProgress, responses ...llm.MockResponse) *Service {
	gw := gateway.New(llm.NewMockProvider(responses...), zap.NewNop(), time.Second)
	return NewService(NewPendingStore(), gw, results, prog)
}

func mcqResponse(answerIndex int) llm.MockResponse {
	raw, _ := json.Marshal(map[string]any{
		"type":         "mcq",
		"question":     "Which enzyme copies DNA?",
		"options":      []string{"Ligase", "Polymerase", "Helicase", "Nuclease"},
		"answer_index": answerIndex,
		"explanation":  "Polymerase synthesizes the new strand.",
	})
	return llm.MockResponse{Content: raw}
}

func TestPendingStore_MonotonicIDs(t *testing.T) {
	s := NewPendingStore()

	id1 := s.Issue(Pending{Topic: "PCR"})
	id2 := s.Issue(Pending{Topic: "CRISPR"})
	if id2 <= id1 {
		t.Errorf("ids not increasing: %d then %d", id1, id2)
	}

	if _, ok := s.Consume(id1); !ok {
		t.Fatal("first consume should succeed")
	}
	if _, ok := s.Consume(id1); ok {
		t.Fatal("second consume of same id should fail")
	}

	// A consumed id is never reissued.
	id3 := s.Issue(Pending{Topic: "Cloning"})
	if id3 == id1 {
		t.Errorf("id %d was reused", id1)
	}
}

func TestGenerate(t *testing.T) {
	results := &stubResultRepo{wrongs: []string{"2"}}
	svc := newService(results, &stubProgress{}, mcqResponse(1))

	q, err := svc.Generate(context.Background(), testUser(), "PCR", "mcq", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if q.QuestionID == 0 {
		t.Error("question id not assigned")
	}
	if q.Question != "Which enzyme copies DNA?" {
		t.Errorf("question = %q", q.Question)
	}
	if len(q.Options) != 4 {
		t.Errorf("options = %v", q.Options)
	}
	if svc.pending.Len() != 1 {
		t.Errorf("pending = %d, want 1", svc.pending.Len())
	}
}

func TestSubmit_CorrectAnswer(t *testing.T) {
	results := &stubResultRepo{}
	prog := &stubProgress{}
	svc := newService(results, prog, mcqResponse(1))
	ctx := context.Background()

	q, err := svc.Generate(ctx, testUser(), "PCR", "mcq", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	fb, err := svc.Submit(ctx, testUser(), q.QuestionID, " 1 ")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if !fb.IsCorrect {
		t.Error("whitespace-padded index should grade correct")
	}
	if fb.Explanation != "Polymerase synthesizes the new strand." {
		t.Errorf("explanation = %q, want payload explanation reused", fb.Explanation)
	}
	if fb.FollowUp != nil {
		t.Error("no follow-up expected on a correct answer")
	}
	if fb.ScoreEarned != 1.0 {
		t.Errorf("score = %f", fb.ScoreEarned)
	}
	if prog.xp != 25 {
		t.Errorf("xp = %d, want 25", prog.xp)
	}
	if len(prog.attempts) != 1 || !prog.attempts[0] {
		t.Errorf("attempts = %v", prog.attempts)
	}
	if len(results.saved) != 1 || !results.saved[0].IsCorrect {
		t.Errorf("saved = %+v", results.saved)
	}
}

func TestSubmit_WrongAnswer(t *testing.T) {
	results := &stubResultRepo{}
	prog := &stubProgress{}
	svc := newService(results, prog,
		mcqResponse(1),
		llm.MockResponse{Content: json.RawMessage("Ligase joins strands, it does not copy them.")},
		llm.MockResponse{Content: json.RawMessage("What does polymerase need to start synthesis?")},
	)
	ctx := context.Background()

	q, err := svc.Generate(ctx, testUser(), "PCR", "mcq", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	fb, err := svc.Submit(ctx, testUser(), q.QuestionID, "0")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if fb.IsCorrect {
		t.Error("wrong index graded correct")
	}
	if fb.Explanation != "Ligase joins strands, it does not copy them." {
		t.Errorf("explanation = %q, want generated explanation", fb.Explanation)
	}
	if fb.FollowUp == nil || *fb.FollowUp != "What does polymerase need to start synthesis?" {
		t.Errorf("follow_up = %v", fb.FollowUp)
	}
	if prog.xp != 5 {
		t.Errorf("xp = %d, want 5", prog.xp)
	}
}

func TestSubmit_UnknownID(t *testing.T) {
	svc := newService(&stubResultRepo{}, &stubProgress{})

	_, err := svc.Submit(context.Background(), testUser(), 42, "0")
	if err != ErrQuestionNotFound {
		t.Fatalf("err = %v, want ErrQuestionNotFound", err)
	}
}

func TestSubmit_DoubleSubmit(t *testing.T) {
	svc := newService(&stubResultRepo{}, &stubProgress{}, mcqResponse(0))
	ctx := context.Background()

	q, err := svc.Generate(ctx, testUser(), "PCR", "mcq", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := svc.Submit(ctx, testUser(), q.QuestionID, "0"); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if _, err := svc.Submit(ctx, testUser(), q.QuestionID, "0"); err != ErrQuestionNotFound {
		t.Fatalf("second submit err = %v, want ErrQuestionNotFound", err)
	}
}

func TestCorrectAnswerOf(t *testing.T) {
	tests := []struct {
		name    string
		payload *gateway.QuizPayload
		want    string
	}{
		{"answer index", &gateway.QuizPayload{AnswerIndex: intPtr(2)}, "2"},
		{"single letter maps to index", &gateway.QuizPayload{SampleAnswer: "C"}, "2"},
		{"lowercase letter maps too", &gateway.QuizPayload{SampleAnswer: "b"}, "1"},
		{"full answer passes through", &gateway.QuizPayload{SampleAnswer: " osmosis "}, "osmosis"},
		{"index wins over sample", &gateway.QuizPayload{AnswerIndex: intPtr(0), SampleAnswer: "C"}, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := correctAnswerOf(tt.payload); got != tt.want {
				t.Errorf("correctAnswerOf = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGrade_LetterMappingIsAsymmetric(t *testing.T) {
	// The stored key "C" becomes "2"; a student typing "2" is right but a
	// student typing "C" is not, since student input is never mapped.
	correct := correctAnswerOf(&gateway.QuizPayload{SampleAnswer: "C"})

	if !grade("2", correct) {
		t.Error(`grade("2") = false, want true`)
	}
	if grade("C", correct) {
		t.Error(`grade("C") = true, want false`)
	}
}

func TestGrade_CaseAndWhitespace(t *testing.T) {
	if !grade("  Osmosis ", "osmosis") {
		t.Error("expected trim + case-insensitive match")
	}
	if grade("diffusion", "osmosis") {
		t.Error("different answers should not match")
	}
}

func TestSubmit_WrongAnswerExplainOutageKeepsPayloadExplanation(t *testing.T) {
	results := &stubResultRepo{}
	prog := &stubProgress{}
	svc := newService(results, prog,
		mcqResponse(1),
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("connection refused")}},
	)
	ctx := context.Background()

	q, err := svc.Generate(ctx, testUser(), "PCR", "mcq", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	fb, err := svc.Submit(ctx, testUser(), q.QuestionID, "0")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if fb.IsCorrect {
		t.Error("wrong index graded correct")
	}
	if fb.Explanation != "Polymerase synthesizes the new strand." {
		t.Errorf("explanation = %q, want the payload explanation kept", fb.Explanation)
	}
	if fb.FollowUp != nil {
		t.Errorf("follow_up = %v, want none when generation is down", *fb.FollowUp)
	}
	if prog.xp != 5 {
		t.Errorf("xp = %d, want 5", prog.xp)
	}
	if len(results.saved) != 1 {
		t.Errorf("results saved = %d, want the attempt recorded", len(results.saved))
	}
}
