package prompt

import (
	"fmt"
	"strings"
)

// quizFormats maps question types to the JSON shape the model must emit.
var quizFormats = map[string]string{
	"mcq":      `{"type":"mcq","question":"...","options":["A","B","C","D"],"answer_index":0,"explanation":"..."}`,
	"short":    `{"type":"short","question":"...","sample_answer":"...","key_points":["..."]}`,
	"scenario": `{"type":"scenario","scenario":"...","question":"...","options":["A","B","C","D"],"answer_index":0,"explanation":"..."}`,
}

// Quiz builds the prompt pair for generating a single quiz question.
// Recent wrong answers are surfaced so the model can target shaky concepts.
func Quiz(topic, difficulty, questionType string, recentMistakes []string) (string, string) {
	format, ok := quizFormats[questionType]
	if !ok {
		format = quizFormats["mcq"]
	}

	var b strings.Builder

	fmt.Fprintf(&b, "You are a biotechnology assessment specialist. Difficulty: %s | Topic: %s\n",
		strings.ToUpper(difficulty), topic)
	fmt.Fprintf(&b, "Recent mistakes: %s\n", joinOrNone(recentMistakes))
	b.WriteString("answer_index MUST be integer 0-3.\n")
	fmt.Fprintf(&b, "Output ONLY valid JSON: %s", format)

	return b.String(), fmt.Sprintf("Generate %s question for: %s", questionType, topic)
}

// Explain builds the prompt pair for a short, kind explanation of why a
// student's quiz answer was wrong.
func Explain(question, correctAnswer, studentAnswer, topic string) (string, string) {
	system := "You are a biotech tutor. Explain why the student answer is wrong in 2-3 sentences. Be kind."
	user := fmt.Sprintf("Topic:%s\nQuestion:%s\nCorrect:%s\nStudent:%s",
		topic, question, correctAnswer, studentAnswer)
	return system, user
}

// FollowUp builds the prompt pair for a single reinforcement question
// after a wrong answer.
func FollowUp(topic, concept string) (string, string) {
	system := "Generate ONE short follow-up question to reinforce the concept."
	user := fmt.Sprintf("Topic:%s. Concept:%s", topic, concept)
	return system, user
}
