package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"biomind/ent"
	"biomind/internal/gateway"
	"biomind/internal/progress"
	"biomind/internal/store"
)

// ErrQuestionNotFound is returned when a submitted question id is
// unknown or was already answered.
var ErrQuestionNotFound = errors.New("question not found")

// recentMistakeLimit caps how many past wrong answers feed the prompt.
const recentMistakeLimit = 3

// ProgressRecorder is the slice of the progress service the quiz flow
// needs after grading.
type ProgressRecorder interface {
	RecordAttempt(ctx context.Context, userID int, topic string, correct bool) error
	AddXP(ctx context.Context, userID int, points int) error
}

// Question is what a client sees when a quiz question is generated: the
// answer key stays on the server.
type Question struct {
	QuestionID int64    `json:"question_id"`
	Topic      string   `json:"topic"`
	Type       string   `json:"type"`
	Question   string   `json:"question"`
	Options    []string `json:"options,omitempty"`
	Scenario   string   `json:"scenario,omitempty"`
}

// Feedback is the graded result of one submission.
type Feedback struct {
	IsCorrect     bool    `json:"is_correct"`
	CorrectAnswer string  `json:"correct_answer"`
	Explanation   string  `json:"explanation"`
	ScoreEarned   float64 `json:"score_earned"`
	FollowUp      *string `json:"follow_up,omitempty"`
}

// Service generates and grades quiz questions.
type Service struct {
	pending  *PendingStore
	gw       *gateway.Gateway
	results  store.QuizResultRepo
	progress ProgressRecorder
}

// NewService creates a quiz Service.
func NewService(pending *PendingStore, gw *gateway.Gateway, results store.QuizResultRepo, progress ProgressRecorder) *Service {
	return &Service{pending: pending, gw: gw, results: results, progress: progress}
}

// Generate creates one question for the user. An empty difficulty falls
// back to the user's global level. The generated payload is parked in
// the pending store under a fresh id.
func (s *Service) Generate(ctx context.Context, u *ent.User, topic, questionType, difficulty string) (*Question, error) {
	if difficulty == "" {
		difficulty = string(u.Level)
	}

	mistakes, err := s.results.RecentWrongAnswers(ctx, u.ID, topic, recentMistakeLimit)
	if err != nil {
		return nil, fmt.Errorf("recent mistakes: %w", err)
	}

	payload, err := s.gw.Quiz(ctx, topic, difficulty, questionType, mistakes)
	if err != nil {
		return nil, err
	}

	id := s.pending.Issue(Pending{Topic: topic, Type: questionType, Payload: payload})

	return &Question{
		QuestionID: id,
		Topic:      topic,
		Type:       questionType,
		Question:   payload.Question,
		Options:    payload.Options,
		Scenario:   payload.Scenario,
	}, nil
}

// Submit grades one answer. The pending question is consumed whether or
// not the answer is right; a second submit for the same id returns
// ErrQuestionNotFound. Wrong answers get a generated explanation and a
// follow-up question; correct answers reuse the payload's explanation.
func (s *Service) Submit(ctx context.Context, u *ent.User, questionID int64, studentAnswer string) (*Feedback, error) {
	p, ok := s.pending.Consume(questionID)
	if !ok {
		return nil, ErrQuestionNotFound
	}

	correct := correctAnswerOf(p.Payload)
	isCorrect := grade(studentAnswer, correct)

	explanation := p.Payload.Explanation
	var followUp *string
	if !isCorrect {
		// The question is already consumed, so generation failures fall
		// back to the payload explanation instead of failing the submit.
		if exp, err := s.gw.Explain(ctx, p.Payload.Question, correct, studentAnswer, p.Topic); err == nil && exp != "" {
			explanation = exp
		}
		if fu, err := s.gw.FollowUp(ctx, p.Topic, p.Payload.Question); err == nil && fu != "" {
			followUp = &fu
		}
	}

	score := 0.0
	if isCorrect {
		score = 1.0
	}

	_, err := s.results.Create(ctx, store.QuizResultRecord{
		UserID:         u.ID,
		Topic:          p.Topic,
		QuestionType:   p.Type,
		QuestionData:   payloadMap(p.Payload),
		StudentAnswer:  studentAnswer,
		CorrectAnswer:  correct,
		IsCorrect:      isCorrect,
		Score:          score,
		LLMExplanation: explanation,
	})
	if err != nil {
		return nil, fmt.Errorf("save result: %w", err)
	}

	if err := s.progress.RecordAttempt(ctx, u.ID, p.Topic, isCorrect); err != nil {
		return nil, fmt.Errorf("record attempt: %w", err)
	}

	points := progress.XPQuizAttempt
	if isCorrect {
		points = progress.XPQuizCorrect
	}
	if err := s.progress.AddXP(ctx, u.ID, points); err != nil {
		return nil, fmt.Errorf("award xp: %w", err)
	}

	return &Feedback{
		IsCorrect:     isCorrect,
		CorrectAnswer: correct,
		Explanation:   explanation,
		ScoreEarned:   score,
		FollowUp:      followUp,
	}, nil
}

// payloadMap flattens a payload into the JSON form stored with the result.
func payloadMap(p *gateway.QuizPayload) map[string]any {
	raw, err := json.Marshal(p)
	if err != nil {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]any{}
	}
	return m
}
