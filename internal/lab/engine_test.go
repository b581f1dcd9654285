package lab

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"biomind/ent"
	"biomind/internal/gateway"
	"biomind/internal/llm"
	"biomind/internal/store"
)

type stubLogRepo struct {
	created []string
	updates map[string][]store.LabLogUpdate
}

func newStubLogRepo() *stubLogRepo {
	return &stubLogRepo{updates: make(map[string][]store.LabLogUpdate)}
}

func (s *stubLogRepo) Create(_ context.Context, _ int, _, sessionID string) (*ent.LabLog, error) {
	s.created = append(s.created, sessionID)
	return &ent.LabLog{SessionID: sessionID}, nil
}

func (s *stubLogRepo) Update(_ context.Context, sessionID string, upd store.LabLogUpdate) error {
	s.updates[sessionID] = append(s.updates[sessionID], upd)
	return nil
}

func (s *stubLogRepo) BySession(context.Context, string) (*ent.LabLog, error) {
	return nil, store.ErrNotFound
}

func (s *stubLogRepo) lastUpdate(sessionID string) store.LabLogUpdate {
	ups := s.updates[sessionID]
	return ups[len(ups)-1]
}

type stubXP struct {
	points int
}

func (s *stubXP) AddXP(_ context.Context, _ int, points int) error {
	s.points += points
	return nil
}

func sceneResponse() llm.MockResponse {
	raw, _ := json.Marshal(map[string]any{
		"scenario": "You are at the bench with a PCR kit.",
		"choices":  []string{"Mix reagents", "Skip the primers", "Call it a day", "Read the protocol"},
	})
	return llm.MockResponse{Content: raw}
}

func stepResponse(result string, stepErr any, isFinal bool) llm.MockResponse {
	raw, _ := json.Marshal(map[string]any{
		"result":   result,
		"error":    stepErr,
		"scenario": "Next bench situation",
		"choices":  []string{"a", "b", "c", "d"},
		"is_final": isFinal,
	})
	return llm.MockResponse{Content: raw}
}

func testUser() *ent.User {
	return &ent.User{ID: 1, Name: "Asha", Level: "beginner"}
}

func newEngine(logs *stubLogRepo, xp *stubXP, responses ...llm.MockResponse) (*Engine, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	gw := gateway.New(mock, zap.NewNop(), time.Second)
	return NewEngine(NewSessionStore(), gw, logs, xp), mock
}

func TestStart(t *testing.T) {
	logs := newStubLogRepo()
	eng, _ := newEngine(logs, &stubXP{}, sceneResponse())

	step, err := eng.Start(context.Background(), testUser(), "pcr")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if step.SessionID == "" {
		t.Error("session id empty")
	}
	if step.Step != 1 {
		t.Errorf("step = %d, want 1", step.Step)
	}
	if step.Scenario == "" || len(step.Choices) != 4 {
		t.Errorf("scenario/choices = %q/%v", step.Scenario, step.Choices)
	}
	if len(logs.created) != 1 || logs.created[0] != step.SessionID {
		t.Errorf("log created = %v", logs.created)
	}
	if eng.sessions.Len() != 1 {
		t.Errorf("sessions = %d, want 1", eng.sessions.Len())
	}
}

func TestDecide_ErrorIncrementsCountAndStepAdvances(t *testing.T) {
	logs := newStubLogRepo()
	eng, _ := newEngine(logs, &stubXP{},
		sceneResponse(),
		stepResponse("The tube cracked", "Forgot to balance the centrifuge", false),
	)
	ctx := context.Background()

	start, err := eng.Start(ctx, testUser(), "pcr")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	view, err := eng.Decide(ctx, testUser(), start.SessionID, "Spin it")
	if err != nil {
		t.Fatalf("decide: %v", err)
	}

	if view.Error == nil {
		t.Fatal("expected error on this step")
	}
	if view.Completed {
		t.Error("not final")
	}
	if view.NextStep == nil || view.NextStep.Step != 2 {
		t.Errorf("next step = %+v, want step 2", view.NextStep)
	}

	upd := logs.lastUpdate(start.SessionID)
	if upd.ErrorCount != 1 {
		t.Errorf("error count = %d, want 1", upd.ErrorCount)
	}
	if len(upd.DecisionChain) != 1 {
		t.Errorf("chain = %v", upd.DecisionChain)
	}
	if upd.Completed {
		t.Error("log should not be marked complete")
	}
}

func TestDecide_FinalWithTwoErrors(t *testing.T) {
	logs := newStubLogRepo()
	xp := &stubXP{}
	eng, _ := newEngine(logs, xp,
		sceneResponse(),
		stepResponse("oops", "mistake one", false),
		stepResponse("oops again", "mistake two", false),
		stepResponse("Run complete", nil, true),
	)
	ctx := context.Background()

	start, err := eng.Start(ctx, testUser(), "pcr")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	sid := start.SessionID

	for _, choice := range []string{"a", "b"} {
		if _, err := eng.Decide(ctx, testUser(), sid, choice); err != nil {
			t.Fatalf("decide %s: %v", choice, err)
		}
	}

	view, err := eng.Decide(ctx, testUser(), sid, "finish")
	if err != nil {
		t.Fatalf("final decide: %v", err)
	}

	if !view.Completed {
		t.Fatal("expected completed run")
	}
	if view.Score == nil || *view.Score != 70.0 {
		t.Errorf("score = %v, want 70 (100 - 2*15)", view.Score)
	}
	if view.NextStep != nil {
		t.Error("final step should carry no next step")
	}

	upd := logs.lastUpdate(sid)
	if upd.Outcome != "partial" || upd.Score != 70.0 {
		t.Errorf("log = %+v", upd)
	}
	if xp.points != 20 {
		t.Errorf("xp = %d, want 20 for a run with errors", xp.points)
	}

	// The finished session is gone.
	if _, err := eng.Decide(ctx, testUser(), sid, "again"); err != ErrSessionNotFound {
		t.Errorf("err = %v, want ErrSessionNotFound after completion", err)
	}
}

func TestDecide_PerfectRun(t *testing.T) {
	logs := newStubLogRepo()
	xp := &stubXP{}
	eng, _ := newEngine(logs, xp,
		sceneResponse(),
		stepResponse("Flawless", nil, true),
	)
	ctx := context.Background()

	start, _ := eng.Start(ctx, testUser(), "pcr")
	view, err := eng.Decide(ctx, testUser(), start.SessionID, "do it right")
	if err != nil {
		t.Fatalf("decide: %v", err)
	}

	if view.Score == nil || *view.Score != 100.0 {
		t.Errorf("score = %v, want 100", view.Score)
	}
	if logs.lastUpdate(start.SessionID).Outcome != "success" {
		t.Errorf("outcome = %s, want success", logs.lastUpdate(start.SessionID).Outcome)
	}
	if xp.points != 50 {
		t.Errorf("xp = %d, want 50 for a perfect run", xp.points)
	}
}

func TestFinalScore_ClampedAtZero(t *testing.T) {
	tests := []struct {
		errors int
		want   float64
	}{
		{0, 100},
		{2, 70},
		{6, 10},
		{7, 0},
		{10, 0},
	}
	for _, tt := range tests {
		if got := finalScore(tt.errors); got != tt.want {
			t.Errorf("finalScore(%d) = %f, want %f", tt.errors, got, tt.want)
		}
	}
}

func TestDecide_UnknownSession(t *testing.T) {
	eng, _ := newEngine(newStubLogRepo(), &stubXP{})

	_, err := eng.Decide(context.Background(), testUser(), "no-such-session", "a")
	if err != ErrSessionNotFound {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestDecide_ForeignUserCannotTouchSession(t *testing.T) {
	eng, _ := newEngine(newStubLogRepo(), &stubXP{},
		sceneResponse(),
		stepResponse("x", nil, false),
	)
	ctx := context.Background()

	start, _ := eng.Start(ctx, testUser(), "pcr")

	other := &ent.User{ID: 2, Level: "beginner"}
	if _, err := eng.Decide(ctx, other, start.SessionID, "a"); err != ErrSessionNotFound {
		t.Fatalf("err = %v, want ErrSessionNotFound for another user", err)
	}
}

func TestDecide_HistoryReplayedInOrder(t *testing.T) {
	eng, mock := newEngine(newStubLogRepo(), &stubXP{},
		sceneResponse(),
		stepResponse("first outcome", nil, false),
		stepResponse("second outcome", nil, false),
	)
	ctx := context.Background()

	start, _ := eng.Start(ctx, testUser(), "pcr")
	if _, err := eng.Decide(ctx, testUser(), start.SessionID, "mix reagents"); err != nil {
		t.Fatalf("decide 1: %v", err)
	}
	if _, err := eng.Decide(ctx, testUser(), start.SessionID, "load the gel"); err != nil {
		t.Fatalf("decide 2: %v", err)
	}

	// Third call's system prompt replays the first decision.
	last := mock.Calls[len(mock.Calls)-1]
	if !strings.Contains(last.System, "Step 1: mix reagents") {
		t.Errorf("history missing from prompt: %q", last.System)
	}
	if !strings.Contains(last.System, "Step:2") {
		t.Errorf("step counter missing from prompt: %q", last.System)
	}
}

// barrierProvider holds every Generate call at a barrier so concurrent
// callers proceed past the model call together.
type barrierProvider struct {
	gate    *sync.WaitGroup
	content json.RawMessage
}

func (p *barrierProvider) Generate(context.Context, llm.Request) (*llm.Response, error) {
	p.gate.Done()
	p.gate.Wait()
	return &llm.Response{Content: p.content}, nil
}

func (p *barrierProvider) ModelID() string { return "barrier" }

func TestDecide_ConcurrentFinalDecidesOnce(t *testing.T) {
	logs := newStubLogRepo()
	xp := &stubXP{}

	final, _ := json.Marshal(map[string]any{
		"result": "Run complete", "error": nil,
		"scenario": "", "choices": []string{}, "is_final": true,
	})
	gate := &sync.WaitGroup{}
	gate.Add(2)
	gw := gateway.New(&barrierProvider{gate: gate, content: final}, zap.NewNop(), time.Second)
	eng := NewEngine(NewSessionStore(), gw, logs, xp)

	sid := "11111111-2222-3333-4444-555555555555"
	eng.sessions.Put(sid, &Session{LabType: "pcr", UserID: 1, Step: 1})
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := eng.Decide(ctx, testUser(), sid, "finish")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var wins, notFound int
	for err := range errs {
		switch err {
		case nil:
			wins++
		case ErrSessionNotFound:
			notFound++
		default:
			t.Fatalf("decide: %v", err)
		}
	}
	if wins != 1 || notFound != 1 {
		t.Fatalf("wins = %d, not found = %d, want exactly one terminal decision", wins, notFound)
	}
	if xp.points != 50 {
		t.Errorf("xp = %d, want 50 awarded once", xp.points)
	}

	var completed int
	for _, upd := range logs.updates[sid] {
		if upd.Completed {
			completed++
		}
	}
	if completed != 1 {
		t.Errorf("completed log updates = %d, want 1", completed)
	}
}

func TestDecide_EmptyErrorStringIsNotAMistake(t *testing.T) {
	logs := newStubLogRepo()
	xp := &stubXP{}
	eng, _ := newEngine(logs, xp,
		sceneResponse(),
		stepResponse("Clean transfer", "", false),
		stepResponse("Run complete", "", true),
	)
	ctx := context.Background()

	start, _ := eng.Start(ctx, testUser(), "pcr")
	view, err := eng.Decide(ctx, testUser(), start.SessionID, "pipette carefully")
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	if view.Error != nil {
		t.Errorf("error = %q, want none for an empty error string", *view.Error)
	}
	if upd := logs.lastUpdate(start.SessionID); upd.ErrorCount != 0 {
		t.Errorf("error count = %d, want 0", upd.ErrorCount)
	}

	final, err := eng.Decide(ctx, testUser(), start.SessionID, "finish")
	if err != nil {
		t.Fatalf("final decide: %v", err)
	}
	if final.Score == nil || *final.Score != 100.0 {
		t.Errorf("score = %v, want 100 with no real mistakes", final.Score)
	}
	if xp.points != 50 {
		t.Errorf("xp = %d, want 50 for a clean run", xp.points)
	}
}
