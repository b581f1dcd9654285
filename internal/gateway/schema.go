package gateway

import "biomind/internal/llm"

// LessonSchema defines the JSON schema for lesson generation responses.
var LessonSchema = &llm.Schema{
	Name:        "biotech-lesson",
	Description: "A lesson on a biotechnology topic with summary and real-world example",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"content": map[string]any{
				"type":        "string",
				"description": "The lesson body, adapted to the student's level",
			},
			"summary": map[string]any{
				"type":        "string",
				"description": "Three bullet points recapping the lesson",
			},
			"real_example": map[string]any{
				"type":        "string",
				"description": "One real-world example of the topic in industry or research",
			},
		},
		"required":             []any{"content", "summary", "real_example"},
		"additionalProperties": false,
	},
}

// quizSchemas maps question types to their generation schemas. MCQ and
// scenario questions carry an answer index into four options; short
// questions carry a sample answer with key points.
var quizSchemas = map[string]*llm.Schema{
	"mcq": {
		Name:        "quiz-mcq",
		Description: "A multiple choice biotechnology quiz question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"type":     map[string]any{"type": "string", "enum": []any{"mcq"}},
				"question": map[string]any{"type": "string"},
				"options": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Exactly 4 options, one correct",
				},
				"answer_index": map[string]any{
					"type":        "integer",
					"minimum":     0,
					"maximum":     3,
					"description": "Zero-based index of the correct option",
				},
				"explanation": map[string]any{"type": "string"},
			},
			"required":             []any{"type", "question", "options", "answer_index", "explanation"},
			"additionalProperties": false,
		},
	},
	"short": {
		Name:        "quiz-short",
		Description: "A short-answer biotechnology quiz question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"type":          map[string]any{"type": "string", "enum": []any{"short"}},
				"question":      map[string]any{"type": "string"},
				"sample_answer": map[string]any{"type": "string"},
				"key_points": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required":             []any{"type", "question", "sample_answer", "key_points"},
			"additionalProperties": false,
		},
	},
	"scenario": {
		Name:        "quiz-scenario",
		Description: "A scenario-based biotechnology quiz question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"type":     map[string]any{"type": "string", "enum": []any{"scenario"}},
				"scenario": map[string]any{"type": "string"},
				"question": map[string]any{"type": "string"},
				"options": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"answer_index": map[string]any{
					"type":    "integer",
					"minimum": 0,
					"maximum": 3,
				},
				"explanation": map[string]any{"type": "string"},
			},
			"required":             []any{"type", "scenario", "question", "options", "answer_index", "explanation"},
			"additionalProperties": false,
		},
	},
}

// LabSceneSchema defines the JSON schema for opening a lab simulation.
var LabSceneSchema = &llm.Schema{
	Name:        "lab-scene",
	Description: "The opening scene of a virtual lab simulation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"scenario": map[string]any{"type": "string"},
			"choices": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Four actions the student can take next",
			},
		},
		"required":             []any{"scenario", "choices"},
		"additionalProperties": false,
	},
}

// LabStepSchema defines the JSON schema for one lab decision outcome.
var LabStepSchema = &llm.Schema{
	Name:        "lab-step",
	Description: "The outcome of a student decision inside a lab simulation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"result": map[string]any{"type": "string"},
			"error": map[string]any{
				"type":        []any{"string", "null"},
				"description": "Description of the procedural mistake, or null if the decision was sound",
			},
			"scenario": map[string]any{"type": "string"},
			"choices": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"is_final": map[string]any{"type": "boolean"},
		},
		"required":             []any{"result", "error", "scenario", "choices", "is_final"},
		"additionalProperties": false,
	},
}

// CareerPlanSchema defines the JSON schema for career roadmap responses.
var CareerPlanSchema = &llm.Schema{
	Name:        "career-plan",
	Description: "A personalized career roadmap for a biotechnology role",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"industry_required_skills": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "number"},
			},
			"roadmap": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"mini_projects": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"certifications": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"readiness_score": map[string]any{
				"type":    "number",
				"minimum": 0,
				"maximum": 100,
			},
		},
		"required":             []any{"industry_required_skills", "roadmap", "mini_projects", "certifications", "readiness_score"},
		"additionalProperties": false,
	},
}

// LearningPathSchema defines the JSON schema for 6-week learning paths.
var LearningPathSchema = &llm.Schema{
	Name:        "learning-path",
	Description: "A 6-week personalized study plan",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"weeks": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"week":  map[string]any{"type": "string"},
						"focus": map[string]any{"type": "string"},
						"topics": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"priority": map[string]any{
							"type": "string",
							"enum": []any{"high", "medium", "low"},
						},
					},
					"required":             []any{"week", "focus", "topics", "priority"},
					"additionalProperties": false,
				},
			},
			"milestone": map[string]any{"type": "string"},
		},
		"required":             []any{"weeks", "milestone"},
		"additionalProperties": false,
	},
}
