// Package prompt builds the system and user message pairs for every
// LLM-backed task. Each builder returns a (system, user) pair ready to
// hand to the gateway; callers never assemble prompt text themselves.
package prompt

import (
	"fmt"
	"strings"
)

// Lesson builds the prompt pair for generating a lesson on a topic.
// Weak areas are included so the model can reinforce them in passing.
func Lesson(topic, difficulty, studentName string, weakAreas []string) (string, string) {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an expert biotechnology educator. Student: %s | Level: %s\n",
		studentName, strings.ToUpper(difficulty))
	fmt.Fprintf(&b, "Weak areas: %s\n", joinOrNone(weakAreas))
	b.WriteString(`Output ONLY valid JSON: {"content":"lesson text","summary":"3 bullet points","real_example":"1 example"}`)

	return b.String(), fmt.Sprintf("Teach me about: %s", topic)
}

// Ask builds the prompt pair for a free-form tutoring question, outside
// the structured lesson flow.
func Ask(query, level, studentName string, weakAreas []string) (string, string) {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an expert biotechnology educator. Student: %s | Level: %s\n",
		studentName, strings.ToUpper(level))
	fmt.Fprintf(&b, "Weak areas: %s\n", joinOrNone(weakAreas))
	b.WriteString("Answer the student's question directly and concisely in plain text.")

	return b.String(), query
}

// joinOrNone joins items with commas, or returns "none" for an empty list.
func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
