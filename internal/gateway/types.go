// Package gateway is the single entry point for LLM-backed content
// generation. Each method builds the prompt for one task, calls the
// configured provider under a bounded timeout, and decodes the response
// into a typed payload. Malformed model output degrades to a zero-value
// payload rather than an error; only provider failures surface to callers.
package gateway

// LessonContent is a generated lesson on a single topic.
type LessonContent struct {
	Content     string `json:"content"`
	Summary     string `json:"summary"`
	RealExample string `json:"real_example"`
}

// QuizPayload is one generated quiz question. Fields are populated
// according to Type: "mcq" and "scenario" carry Options, AnswerIndex and
// Explanation; "short" carries SampleAnswer and KeyPoints; "scenario"
// additionally carries Scenario.
type QuizPayload struct {
	Type         string   `json:"type"`
	Question     string   `json:"question"`
	Options      []string `json:"options,omitempty"`
	AnswerIndex  *int     `json:"answer_index,omitempty"`
	Explanation  string   `json:"explanation,omitempty"`
	SampleAnswer string   `json:"sample_answer,omitempty"`
	KeyPoints    []string `json:"key_points,omitempty"`
	Scenario     string   `json:"scenario,omitempty"`
}

// LabScene opens a lab simulation: the initial scene and the choices
// offered to the student.
type LabScene struct {
	Scenario string   `json:"scenario"`
	Choices  []string `json:"choices"`
}

// LabStep is the simulation's response to one student decision. Error is
// non-nil when the decision was a procedural mistake. IsFinal marks the
// closing step of the session.
type LabStep struct {
	Result   string   `json:"result"`
	Error    *string  `json:"error"`
	Scenario string   `json:"scenario"`
	Choices  []string `json:"choices"`
	IsFinal  bool     `json:"is_final"`
}

// CareerPlan is a generated career roadmap for a target role.
type CareerPlan struct {
	IndustryRequiredSkills map[string]float64 `json:"industry_required_skills"`
	Roadmap                []string           `json:"roadmap"`
	MiniProjects           []string           `json:"mini_projects"`
	Certifications         []string           `json:"certifications"`
	ReadinessScore         float64            `json:"readiness_score"`
}

// PathWeek is one block of a generated learning path.
type PathWeek struct {
	Week     string   `json:"week"`
	Focus    string   `json:"focus"`
	Topics   []string `json:"topics"`
	Priority string   `json:"priority"`
}

// LearningPath is a 6-week study plan toward a milestone.
type LearningPath struct {
	Weeks     []PathWeek `json:"weeks"`
	Milestone string     `json:"milestone"`
}
