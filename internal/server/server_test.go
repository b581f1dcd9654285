package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"biomind/ent"
	"biomind/ent/topicmastery"
	"biomind/ent/user"
	"biomind/internal/analytics"
	"biomind/internal/auth"
	"biomind/internal/career"
	"biomind/internal/gateway"
	"biomind/internal/lab"
	"biomind/internal/llm"
	"biomind/internal/progress"
	"biomind/internal/quiz"
	"biomind/internal/store"
	"biomind/internal/tutor"
)

// memUserRepo is an in-memory store.UserRepo.
type memUserRepo struct {
	nextID int
	byID   map[int]*ent.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: make(map[int]*ent.User)}
}

func (m *memUserRepo) Create(_ context.Context, p store.CreateUserParams) (*ent.User, error) {
	for _, u := range m.byID {
		if u.Email == p.Email {
			return nil, errors.New("email taken")
		}
	}
	m.nextID++
	level := p.Level
	if level == "" {
		level = "beginner"
	}
	u := &ent.User{
		ID:          m.nextID,
		Name:        p.Name,
		Email:       p.Email,
		HashedPw:    p.HashedPW,
		Institution: p.Institution,
		Level:       user.Level(level),
		IsActive:    true,
	}
	m.byID[u.ID] = u
	return u, nil
}

func (m *memUserRepo) ByEmail(_ context.Context, email string) (*ent.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memUserRepo) ByID(_ context.Context, id int) (*ent.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return u, nil
}

func (m *memUserRepo) SetProgress(_ context.Context, id int, xp int, level string) error {
	u, ok := m.byID[id]
	if !ok {
		return store.ErrNotFound
	}
	u.XpPoints = xp
	if level != "" {
		u.Level = user.Level(level)
	}
	return nil
}

// memMasteryRepo is an in-memory store.MasteryRepo.
type memMasteryRepo struct {
	rows map[string]store.MasteryRecord
}

func newMemMasteryRepo() *memMasteryRepo {
	return &memMasteryRepo{rows: make(map[string]store.MasteryRecord)}
}

func (m *memMasteryRepo) Get(_ context.Context, _ int, topic string) (*ent.TopicMastery, error) {
	rec, ok := m.rows[topic]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &ent.TopicMastery{
		UserID: rec.UserID, TopicName: rec.TopicName,
		Attempts: rec.Attempts, Correct: rec.Correct, Accuracy: rec.Accuracy,
		CurrentLevel: topicmastery.CurrentLevel(rec.Level),
	}, nil
}

func (m *memMasteryRepo) Save(_ context.Context, rec store.MasteryRecord) error {
	m.rows[rec.TopicName] = rec
	return nil
}

func (m *memMasteryRepo) ByUser(_ context.Context, _ int) ([]*ent.TopicMastery, error) {
	out := make([]*ent.TopicMastery, 0, len(m.rows))
	for topic := range m.rows {
		row, _ := m.Get(context.Background(), 0, topic)
		out = append(out, row)
	}
	return out, nil
}

// memQuizRepo is an in-memory store.QuizResultRepo.
type memQuizRepo struct {
	saved []store.QuizResultRecord
}

func (m *memQuizRepo) Create(_ context.Context, rec store.QuizResultRecord) (*ent.QuizResult, error) {
	m.saved = append(m.saved, rec)
	return &ent.QuizResult{}, nil
}

func (m *memQuizRepo) RecentWrongAnswers(context.Context, int, string, int) ([]string, error) {
	return nil, nil
}

func (m *memQuizRepo) Accuracy(context.Context, int) (int, int, error) {
	correct := 0
	for _, r := range m.saved {
		if r.IsCorrect {
			correct++
		}
	}
	return correct, len(m.saved), nil
}

// memLabRepo is an in-memory store.LabLogRepo.
type memLabRepo struct {
	updates map[string][]store.LabLogUpdate
}

func newMemLabRepo() *memLabRepo {
	return &memLabRepo{updates: make(map[string][]store.LabLogUpdate)}
}

func (m *memLabRepo) Create(_ context.Context, _ int, _, sessionID string) (*ent.LabLog, error) {
	m.updates[sessionID] = nil
	return &ent.LabLog{SessionID: sessionID}, nil
}

func (m *memLabRepo) Update(_ context.Context, sessionID string, upd store.LabLogUpdate) error {
	m.updates[sessionID] = append(m.updates[sessionID], upd)
	return nil
}

func (m *memLabRepo) BySession(context.Context, string) (*ent.LabLog, error) {
	return nil, store.ErrNotFound
}

// memGoalRepo is an in-memory store.CareerGoalRepo.
type memGoalRepo struct {
	rec *store.CareerGoalRecord
}

func (m *memGoalRepo) Upsert(_ context.Context, _ int, rec store.CareerGoalRecord) (*ent.CareerGoal, error) {
	m.rec = &rec
	return &ent.CareerGoal{}, nil
}

func (m *memGoalRepo) ByUser(context.Context, int) (*ent.CareerGoal, error) {
	return nil, store.ErrNotFound
}

// memSkillRepo is an in-memory store.SkillScoreRepo.
type memSkillRepo struct{}

func (memSkillRepo) ByUser(context.Context, int) (map[string]float64, error) {
	return map[string]float64{}, nil
}

func (memSkillRepo) Upsert(context.Context, int, string, float64, string) error {
	return nil
}

// testEnv is a fully wired server over in-memory repos and a mock model.
type testEnv struct {
	router *gin.Engine
	mock   *llm.MockProvider
	users  *memUserRepo
}

func newTestEnv(t *testing.T, responses ...llm.MockResponse) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	mock := llm.NewMockProvider(responses...)
	gw := gateway.New(mock, logger, time.Second)

	users := newMemUserRepo()
	mastery := newMemMasteryRepo()
	quizzes := &memQuizRepo{}
	labs := newMemLabRepo()
	goals := &memGoalRepo{}
	skills := memSkillRepo{}

	prog := progress.NewService(users, mastery, quizzes, skills)
	careerSvc := career.NewService(prog, goals, skills, gw)

	srv := New(Deps{
		Logger:    logger,
		Issuer:    auth.NewTokenIssuer("test-secret", time.Hour),
		Users:     users,
		Tutor:     tutor.NewService(gw, prog),
		Quiz:      quiz.NewService(quiz.NewPendingStore(), gw, quizzes, prog),
		Lab:       lab.NewEngine(lab.NewSessionStore(), gw, labs, prog),
		Career:    careerSvc,
		Analytics: analytics.NewService(prog, careerSvc, gw, logger),
	})

	return &testEnv{router: srv.Router(nil), mock: mock, users: users}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) registerAndLogin(t *testing.T) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/auth/register", "", map[string]any{
		"name":     "Asha",
		"email":    "asha@example.edu",
		"password": "grow-great-gels",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body = %s", w.Code, w.Body.String())
	}

	w = e.do(t, http.MethodPost, "/auth/login", "", map[string]any{
		"email":    "asha@example.edu",
		"password": "grow-great-gels",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.AccessToken == "" {
		t.Fatalf("login body = %s", w.Body.String())
	}
	return resp.AccessToken
}

func TestAuthFlow(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t)

	t.Run("me", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/auth/me", token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var me struct {
			Email string `json:"email"`
			Level string `json:"level"`
		}
		json.Unmarshal(w.Body.Bytes(), &me)
		if me.Email != "asha@example.edu" || me.Level != "beginner" {
			t.Errorf("me = %+v", me)
		}
	})

	t.Run("duplicate register", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/auth/register", "", map[string]any{
			"name": "Again", "email": "asha@example.edu", "password": "grow-great-gels",
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("bad password", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/auth/login", "", map[string]any{
			"email": "asha@example.edu", "password": "wrong",
		})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("protected route without token", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/analytics/dashboard", "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}

func TestQuizFlowOverHTTP(t *testing.T) {
	mcq, _ := json.Marshal(map[string]any{
		"type": "mcq", "question": "Which enzyme copies DNA?",
		"options":      []string{"Ligase", "Polymerase", "Helicase", "Nuclease"},
		"answer_index": 1, "explanation": "Polymerase synthesizes DNA.",
	})
	env := newTestEnv(t, llm.MockResponse{Content: mcq})
	token := env.registerAndLogin(t)

	w := env.do(t, http.MethodPost, "/quiz/generate", token, map[string]any{
		"topic": "PCR", "question_type": "mcq",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("generate status = %d, body = %s", w.Code, w.Body.String())
	}
	var q struct {
		QuestionID int64 `json:"question_id"`
	}
	json.Unmarshal(w.Body.Bytes(), &q)

	w = env.do(t, http.MethodPost, "/quiz/submit", token, map[string]any{
		"question_id": q.QuestionID, "student_answer": "1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("submit status = %d, body = %s", w.Code, w.Body.String())
	}
	var fb struct {
		IsCorrect   bool    `json:"is_correct"`
		ScoreEarned float64 `json:"score_earned"`
	}
	json.Unmarshal(w.Body.Bytes(), &fb)
	if !fb.IsCorrect || fb.ScoreEarned != 1.0 {
		t.Errorf("feedback = %+v", fb)
	}

	// XP landed on the account.
	u, _ := env.users.ByEmail(context.Background(), "asha@example.edu")
	if u.XpPoints != 25 {
		t.Errorf("xp = %d, want 25", u.XpPoints)
	}

	// The consumed id is gone.
	w = env.do(t, http.MethodPost, "/quiz/submit", token, map[string]any{
		"question_id": q.QuestionID, "student_answer": "1",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("resubmit status = %d, want 404", w.Code)
	}
}

func TestProviderOutageReturns502(t *testing.T) {
	env := newTestEnv(t, llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("connection refused")},
	})
	token := env.registerAndLogin(t)

	w := env.do(t, http.MethodPost, "/learn/generate-lesson", token, map[string]any{
		"topic": "PCR",
	})
	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502, body = %s", w.Code, w.Body.String())
	}
}

func TestCareerAnalyze_UnknownRole(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t)

	w := env.do(t, http.MethodPost, "/career/analyze", token, map[string]any{
		"target_role": "astronaut",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400, body = %s", w.Code, w.Body.String())
	}
}

func TestLabFlowOverHTTP(t *testing.T) {
	scene, _ := json.Marshal(map[string]any{
		"scenario": "Bench ready", "choices": []string{"a", "b", "c", "d"},
	})
	final, _ := json.Marshal(map[string]any{
		"result": "Done", "error": nil, "scenario": "", "choices": []string{}, "is_final": true,
	})
	env := newTestEnv(t, llm.MockResponse{Content: scene}, llm.MockResponse{Content: final})
	token := env.registerAndLogin(t)

	w := env.do(t, http.MethodPost, "/lab/start", token, map[string]any{"lab_type": "pcr"})
	if w.Code != http.StatusOK {
		t.Fatalf("start status = %d, body = %s", w.Code, w.Body.String())
	}
	var step struct {
		SessionID string `json:"session_id"`
	}
	json.Unmarshal(w.Body.Bytes(), &step)

	w = env.do(t, http.MethodPost, "/lab/decide", token, map[string]any{
		"session_id": step.SessionID, "choice": "a",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("decide status = %d, body = %s", w.Code, w.Body.String())
	}
	var view struct {
		Completed bool     `json:"completed"`
		Score     *float64 `json:"score"`
	}
	json.Unmarshal(w.Body.Bytes(), &view)
	if !view.Completed || view.Score == nil || *view.Score != 100.0 {
		t.Errorf("view = %+v", view)
	}

	// Finished session: a second decide 404s.
	w = env.do(t, http.MethodPost, "/lab/decide", token, map[string]any{
		"session_id": step.SessionID, "choice": "a",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
