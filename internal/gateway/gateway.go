package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"biomind/internal/llm"
	"biomind/internal/prompt"
)

const (
	defaultTimeout = 60 * time.Second

	maxTokensDefault  = 1024
	maxTokensExplain  = 250
	maxTokensFollowUp = 120

	generationTemperature = 0.7
)

// Gateway issues typed generation calls against an LLM provider.
type Gateway struct {
	provider llm.Provider
	logger   *zap.Logger
	timeout  time.Duration
}

// New creates a Gateway. A non-positive timeout falls back to 60s.
func New(provider llm.Provider, logger *zap.Logger, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{provider: provider, logger: logger, timeout: timeout}
}

// Lesson generates a lesson on a topic, adapted to the student's level
// and weak areas.
func (g *Gateway) Lesson(ctx context.Context, topic, difficulty, studentName string, weakAreas []string) (*LessonContent, error) {
	system, user := prompt.Lesson(topic, difficulty, studentName, weakAreas)

	var out LessonContent
	if err := g.generateInto(ctx, "lesson", system, user, LessonSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Answer responds to a free-form tutoring question in plain text.
func (g *Gateway) Answer(ctx context.Context, query, level, studentName string, weakAreas []string) (string, error) {
	system, user := prompt.Ask(query, level, studentName, weakAreas)
	return g.generateText(ctx, "ask", system, user, maxTokensDefault)
}

// Quiz generates one quiz question of the given type.
func (g *Gateway) Quiz(ctx context.Context, topic, difficulty, questionType string, recentMistakes []string) (*QuizPayload, error) {
	system, user := prompt.Quiz(topic, difficulty, questionType, recentMistakes)

	schema, ok := quizSchemas[questionType]
	if !ok {
		schema = quizSchemas["mcq"]
	}

	var out QuizPayload
	if err := g.generateInto(ctx, "quiz", system, user, schema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Explain returns a short explanation of why a quiz answer was wrong.
// The response is free text, not JSON.
func (g *Gateway) Explain(ctx context.Context, question, correctAnswer, studentAnswer, topic string) (string, error) {
	system, user := prompt.Explain(question, correctAnswer, studentAnswer, topic)
	return g.generateText(ctx, "explain", system, user, maxTokensExplain)
}

// FollowUp returns one short reinforcement question for a missed concept.
func (g *Gateway) FollowUp(ctx context.Context, topic, concept string) (string, error) {
	system, user := prompt.FollowUp(topic, concept)
	return g.generateText(ctx, "followup", system, user, maxTokensFollowUp)
}

// StartLab generates the opening scene of a lab simulation.
func (g *Gateway) StartLab(ctx context.Context, labType, level string) (*LabScene, error) {
	system, user := prompt.StartLab(labType, level)

	var out LabScene
	if err := g.generateInto(ctx, "lab_start", system, user, LabSceneSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdvanceLab generates the outcome of one student decision in a lab
// simulation, replaying the decision history for continuity.
func (g *Gateway) AdvanceLab(ctx context.Context, labType, level, choice string, step int, history []prompt.LabDecision) (*LabStep, error) {
	system, user := prompt.LabStep(labType, level, choice, step, history)

	var out LabStep
	if err := g.generateInto(ctx, "lab_decision", system, user, LabStepSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Career generates a career roadmap toward a target role.
func (g *Gateway) Career(ctx context.Context, studentName, role string, skills, topicAccuracy map[string]float64) (*CareerPlan, error) {
	system, user := prompt.Career(studentName, role, skills, topicAccuracy)

	var out CareerPlan
	if err := g.generateInto(ctx, "career", system, user, CareerPlanSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Tips generates 3-4 short improvement tips. Malformed output degrades
// to an empty list.
func (g *Gateway) Tips(ctx context.Context, weakTopics []string, level string) ([]string, error) {
	system, user := prompt.Tips(weakTopics, level)

	raw, err := g.generate(ctx, "tips", system, user, nil, maxTokensDefault)
	if err != nil {
		if failsSoft(err) {
			g.logger.Warn("tips generation returned invalid output", zap.Error(err))
			return []string{}, nil
		}
		return nil, err
	}

	tips, err := decodeStringList(raw)
	if err != nil {
		g.logger.Warn("tips output not parseable", zap.Error(err))
		return []string{}, nil
	}
	return tips, nil
}

// Path generates a 6-week learning path.
func (g *Gateway) Path(ctx context.Context, level, role string, weakTopics, strongTopics []string) (*LearningPath, error) {
	system, user := prompt.LearningPath(level, role, weakTopics, strongTopics)

	var out LearningPath
	if err := g.generateInto(ctx, "learning_path", system, user, LearningPathSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// generate issues one provider call under the gateway timeout.
func (g *Gateway) generate(ctx context.Context, purpose, system, user string, schema *llm.Schema, maxTokens int) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	ctx = llm.WithPurpose(ctx, purpose)

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      system,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: user}},
		Schema:      schema,
		MaxTokens:   maxTokens,
		Temperature: generationTemperature,
	})
	if err != nil {
		return nil, err
	}
	return resp.Content, nil
}

// generateInto runs a structured generation and decodes the result into
// out. Invalid model output is absorbed: out keeps its zero value and no
// error is returned. Provider failures propagate.
func (g *Gateway) generateInto(ctx context.Context, purpose, system, user string, schema *llm.Schema, out any) error {
	raw, err := g.generate(ctx, purpose, system, user, schema, maxTokensDefault)
	if err != nil {
		if failsSoft(err) {
			g.logger.Warn("model output failed validation",
				zap.String("purpose", purpose), zap.Error(err))
			return nil
		}
		return err
	}

	if err := decodeObject(raw, out); err != nil {
		g.logger.Warn("model output not parseable",
			zap.String("purpose", purpose), zap.Error(err))
	}
	return nil
}

// generateText runs a free-text generation and returns the trimmed body.
func (g *Gateway) generateText(ctx context.Context, purpose, system, user string, maxTokens int) (string, error) {
	raw, err := g.generate(ctx, purpose, system, user, nil, maxTokens)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

// failsSoft reports whether a generation error should degrade to an
// empty payload instead of failing the request. Schema-invalid output is
// absorbed; rate limits and provider outages are not.
func failsSoft(err error) bool {
	var invalid *llm.ErrInvalidResponse
	return errors.As(err, &invalid)
}
