package lab

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"biomind/ent"
	"biomind/internal/gateway"
	"biomind/internal/progress"
	"biomind/internal/prompt"
	"biomind/internal/store"
)

// ErrSessionNotFound is returned for unknown, finished, or foreign
// session ids.
var ErrSessionNotFound = errors.New("lab session not found")

// errorPenalty is the score deducted per procedural mistake.
const errorPenalty = 15.0

// XPAwarder is the slice of the progress service the lab engine needs.
type XPAwarder interface {
	AddXP(ctx context.Context, userID int, points int) error
}

// StepView is the client-facing view of a simulation step.
type StepView struct {
	SessionID string   `json:"session_id"`
	Step      int      `json:"step"`
	Scenario  string   `json:"scenario"`
	Choices   []string `json:"choices"`
}

// DecisionView is the outcome of one decision. Score is set only on the
// final step.
type DecisionView struct {
	Result    string    `json:"result"`
	Error     *string   `json:"error,omitempty"`
	NextStep  *StepView `json:"next_step,omitempty"`
	Completed bool      `json:"completed"`
	Score     *float64  `json:"score,omitempty"`
}

// Engine drives lab simulations: one Start, then Decide until the model
// declares the run final.
type Engine struct {
	sessions *SessionStore
	gw       *gateway.Gateway
	logs     store.LabLogRepo
	xp       XPAwarder
}

// NewEngine creates a lab Engine.
func NewEngine(sessions *SessionStore, gw *gateway.Gateway, logs store.LabLogRepo, xp XPAwarder) *Engine {
	return &Engine{sessions: sessions, gw: gw, logs: logs, xp: xp}
}

// Start opens a new simulation for the user and returns its first step.
func (e *Engine) Start(ctx context.Context, u *ent.User, labType string) (*StepView, error) {
	scene, err := e.gw.StartLab(ctx, labType, string(u.Level))
	if err != nil {
		return nil, err
	}

	sid := uuid.NewString()
	e.sessions.Put(sid, &Session{
		LabType: labType,
		UserID:  u.ID,
		Step:    1,
	})

	if _, err := e.logs.Create(ctx, u.ID, labType, sid); err != nil {
		e.sessions.Delete(sid)
		return nil, fmt.Errorf("open lab log: %w", err)
	}

	return &StepView{
		SessionID: sid,
		Step:      1,
		Scenario:  scene.Scenario,
		Choices:   scene.Choices,
	}, nil
}

// Decide advances a session by one student choice. Mistakes increment
// the session's error count; the step counter advances only when the
// simulation continues. On the final step the session is scored,
// logged, awarded XP, and removed.
func (e *Engine) Decide(ctx context.Context, u *ent.User, sessionID, choice string) (*DecisionView, error) {
	sess, ok := e.sessions.Apply(sessionID, nil)
	if !ok || sess.UserID != u.ID {
		return nil, ErrSessionNotFound
	}

	history := make([]prompt.LabDecision, 0, len(sess.Chain))
	for _, d := range sess.Chain {
		history = append(history, prompt.LabDecision{Step: d.Step, Choice: d.Choice})
	}

	step, err := e.gw.AdvanceLab(ctx, sess.LabType, string(u.Level), choice, sess.Step, history)
	if err != nil {
		return nil, err
	}

	// A present-but-empty error string is not a mistake.
	stepErr := step.Error
	if stepErr != nil && *stepErr == "" {
		stepErr = nil
	}

	mutate := func(s *Session) {
		if stepErr != nil {
			s.ErrorCount++
		}
		s.Chain = append(s.Chain, Decision{
			Step:   s.Step,
			Choice: choice,
			Result: step.Result,
			Error:  stepErr,
		})
		if !step.IsFinal {
			s.Step++
		}
	}

	// The terminal transition consumes the session in one critical
	// section, so racing callers see at most one final decision.
	if step.IsFinal {
		sess, ok = e.sessions.Consume(sessionID, mutate)
	} else {
		sess, ok = e.sessions.Apply(sessionID, mutate)
	}
	if !ok {
		return nil, ErrSessionNotFound
	}

	upd := store.LabLogUpdate{
		DecisionChain: chainJSON(sess.Chain),
		ErrorCount:    sess.ErrorCount,
	}

	var score *float64
	if step.IsFinal {
		final := finalScore(sess.ErrorCount)
		score = &final

		upd.Completed = true
		upd.Score = final
		upd.CompletedAt = time.Now().UTC()
		upd.Outcome = "partial"
		if sess.ErrorCount == 0 {
			upd.Outcome = "success"
		}
	}

	if err := e.logs.Update(ctx, sessionID, upd); err != nil && err != store.ErrNotFound {
		return nil, fmt.Errorf("update lab log: %w", err)
	}

	if step.IsFinal {
		points := progress.XPLabComplete
		if sess.ErrorCount == 0 {
			points = progress.XPLabPerfect
		}
		if err := e.xp.AddXP(ctx, u.ID, points); err != nil {
			return nil, fmt.Errorf("award xp: %w", err)
		}
	}

	view := &DecisionView{
		Result:    step.Result,
		Error:     stepErr,
		Completed: step.IsFinal,
		Score:     score,
	}
	if !step.IsFinal && step.Scenario != "" {
		view.NextStep = &StepView{
			SessionID: sessionID,
			Step:      sess.Step,
			Scenario:  step.Scenario,
			Choices:   step.Choices,
		}
	}
	return view, nil
}

// finalScore clamps the penalty-adjusted score at zero. Only the final
// reported score is clamped; the raw error count keeps accumulating.
func finalScore(errorCount int) float64 {
	score := 100.0 - float64(errorCount)*errorPenalty
	if score < 0 {
		score = 0
	}
	return score
}

// chainJSON converts the decision chain to the persisted JSON shape.
func chainJSON(chain []Decision) []map[string]any {
	out := make([]map[string]any, 0, len(chain))
	for _, d := range chain {
		var errVal any
		if d.Error != nil {
			errVal = *d.Error
		}
		out = append(out, map[string]any{
			"step":   d.Step,
			"choice": d.Choice,
			"result": d.Result,
			"error":  errVal,
		})
	}
	return out
}
