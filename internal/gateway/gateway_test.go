package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"biomind/internal/llm"
)

func newTestGateway(responses ...llm.MockResponse) (*Gateway, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	return New(mock, zap.NewNop(), time.Second), mock
}

func TestGateway_Lesson(t *testing.T) {
	t.Run("clean JSON", func(t *testing.T) {
		g, mock := newTestGateway(llm.MockResponse{
			Content: json.RawMessage(`{"content":"PCR amplifies DNA.","summary":"- cycles\n- primers\n- polymerase","real_example":"COVID-19 diagnostics"}`),
		})

		lesson, err := g.Lesson(context.Background(), "PCR", "beginner", "Asha", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lesson.Content != "PCR amplifies DNA." {
			t.Errorf("content = %q", lesson.Content)
		}
		if lesson.RealExample != "COVID-19 diagnostics" {
			t.Errorf("real_example = %q", lesson.RealExample)
		}
		if mock.CallCount() != 1 {
			t.Errorf("calls = %d, want 1", mock.CallCount())
		}
	})

	t.Run("fenced JSON with prose", func(t *testing.T) {
		g, _ := newTestGateway(llm.MockResponse{
			Content: json.RawMessage("Here you go!\n```json\n{\"content\":\"lesson\",\"summary\":\"s\",\"real_example\":\"e\"}\n```"),
		})

		lesson, err := g.Lesson(context.Background(), "CRISPR", "advanced", "Ben", []string{"PCR"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lesson.Content != "lesson" {
			t.Errorf("content = %q, want fences and prose stripped", lesson.Content)
		}
	})

	t.Run("garbage degrades to zero value", func(t *testing.T) {
		g, _ := newTestGateway(llm.MockResponse{
			Content: json.RawMessage(`the model rambled and produced no JSON at all`),
		})

		lesson, err := g.Lesson(context.Background(), "PCR", "beginner", "Asha", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lesson == nil || lesson.Content != "" {
			t.Errorf("expected zero-value lesson, got %+v", lesson)
		}
	})

	t.Run("schema-invalid output degrades to zero value", func(t *testing.T) {
		g, _ := newTestGateway(llm.MockResponse{
			Err: &llm.ErrInvalidResponse{Err: errors.New("missing required field")},
		})

		lesson, err := g.Lesson(context.Background(), "PCR", "beginner", "Asha", nil)
		if err != nil {
			t.Fatalf("expected soft failure, got: %v", err)
		}
		if lesson.Content != "" {
			t.Errorf("expected zero-value lesson, got %+v", lesson)
		}
	})

	t.Run("provider outage propagates", func(t *testing.T) {
		g, _ := newTestGateway(llm.MockResponse{
			Err: &llm.ErrProviderUnavailable{Err: errors.New("connection refused")},
		})

		_, err := g.Lesson(context.Background(), "PCR", "beginner", "Asha", nil)
		var unavail *llm.ErrProviderUnavailable
		if !errors.As(err, &unavail) {
			t.Fatalf("expected ErrProviderUnavailable, got: %v", err)
		}
	})
}

func TestGateway_Quiz(t *testing.T) {
	t.Run("mcq payload", func(t *testing.T) {
		g, mock := newTestGateway(llm.MockResponse{
			Content: json.RawMessage(`{"type":"mcq","question":"What does PCR stand for?","options":["a","b","c","d"],"answer_index":2,"explanation":"because"}`),
		})

		q, err := g.Quiz(context.Background(), "PCR", "beginner", "mcq", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.AnswerIndex == nil || *q.AnswerIndex != 2 {
			t.Errorf("answer_index = %v, want 2", q.AnswerIndex)
		}
		if len(q.Options) != 4 {
			t.Errorf("options = %v", q.Options)
		}
		if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "quiz-mcq" {
			t.Errorf("expected quiz-mcq schema on request")
		}
	})

	t.Run("short payload has no answer index", func(t *testing.T) {
		g, _ := newTestGateway(llm.MockResponse{
			Content: json.RawMessage(`{"type":"short","question":"Describe PCR.","sample_answer":"Amplifies DNA","key_points":["cycles","primers"]}`),
		})

		q, err := g.Quiz(context.Background(), "PCR", "beginner", "short", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.AnswerIndex != nil {
			t.Errorf("answer_index = %v, want nil", q.AnswerIndex)
		}
		if q.SampleAnswer != "Amplifies DNA" {
			t.Errorf("sample_answer = %q", q.SampleAnswer)
		}
	})
}

func TestGateway_AdvanceLab(t *testing.T) {
	t.Run("error step", func(t *testing.T) {
		g, _ := newTestGateway(llm.MockResponse{
			Content: json.RawMessage(`{"result":"The gel melted","error":"Voltage set too high","scenario":"Start over with a fresh gel","choices":["a","b","c","d"],"is_final":false}`),
		})

		step, err := g.AdvanceLab(context.Background(), "gel_electrophoresis", "beginner", "Set 300V", 1, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if step.Error == nil || *step.Error != "Voltage set too high" {
			t.Errorf("error = %v", step.Error)
		}
		if step.IsFinal {
			t.Error("is_final = true, want false")
		}
	})

	t.Run("null error on sound decision", func(t *testing.T) {
		g, _ := newTestGateway(llm.MockResponse{
			Content: json.RawMessage(`{"result":"Bands separated cleanly","error":null,"scenario":"","choices":[],"is_final":true}`),
		})

		step, err := g.AdvanceLab(context.Background(), "gel_electrophoresis", "beginner", "Set 100V", 4, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if step.Error != nil {
			t.Errorf("error = %v, want nil", step.Error)
		}
		if !step.IsFinal {
			t.Error("is_final = false, want true")
		}
	})
}

func TestGateway_Tips(t *testing.T) {
	t.Run("plain array", func(t *testing.T) {
		g, _ := newTestGateway(llm.MockResponse{
			Content: json.RawMessage(`["review PCR basics","practice dilution math","redo the cloning quiz"]`),
		})

		tips, err := g.Tips(context.Background(), []string{"PCR"}, "beginner")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tips) != 3 {
			t.Errorf("tips = %v", tips)
		}
	})

	t.Run("array wrapped in object", func(t *testing.T) {
		g, _ := newTestGateway(llm.MockResponse{
			Content: json.RawMessage(`{"tips":["one","two"]}`),
		})

		tips, err := g.Tips(context.Background(), []string{"PCR"}, "beginner")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tips) != 2 || tips[0] != "one" {
			t.Errorf("tips = %v", tips)
		}
	})

	t.Run("garbage degrades to empty", func(t *testing.T) {
		g, _ := newTestGateway(llm.MockResponse{
			Content: json.RawMessage(`no json here`),
		})

		tips, err := g.Tips(context.Background(), nil, "beginner")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tips) != 0 {
			t.Errorf("tips = %v, want empty", tips)
		}
	})
}

func TestGateway_Explain(t *testing.T) {
	g, mock := newTestGateway(llm.MockResponse{
		Content: json.RawMessage("  The enzyme denatures above 95C, so the reaction stalls.\n"),
	})

	text, err := g.Explain(context.Background(), "Why did the PCR fail?", "denaturation", "annealing", "PCR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "The enzyme denatures above 95C, so the reaction stalls." {
		t.Errorf("text = %q, want trimmed", text)
	}
	if mock.Calls[0].Schema != nil {
		t.Error("explain should not request a schema")
	}
	if mock.Calls[0].MaxTokens != maxTokensExplain {
		t.Errorf("max tokens = %d, want %d", mock.Calls[0].MaxTokens, maxTokensExplain)
	}
}

func TestNew_DefaultTimeout(t *testing.T) {
	gw := New(llm.NewMockProvider(), zap.NewNop(), 0)
	if gw.timeout != 60*time.Second {
		t.Errorf("timeout = %v, want 60s", gw.timeout)
	}
}
