package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topic":      map[string]any{"type": "string"},
			"attempts":   map[string]any{"type": "integer"},
			"difficulty": map[string]any{"type": "string", "enum": []any{"beginner", "intermediate", "advanced"}},
			"step_scores": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "integer"},
			},
		},
		"required": []any{"topic", "attempts"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["topic"].Type != "STRING" {
		t.Fatalf("expected STRING for topic, got %s", schema.Properties["topic"].Type)
	}
	if schema.Properties["attempts"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for attempts, got %s", schema.Properties["attempts"].Type)
	}
	if len(schema.Properties["difficulty"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["difficulty"].Enum))
	}
	if schema.Properties["step_scores"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for step_scores, got %s", schema.Properties["step_scores"].Type)
	}
	if schema.Properties["step_scores"].Items.Type != "INTEGER" {
		t.Fatalf("expected INTEGER for step_scores items, got %s", schema.Properties["step_scores"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
