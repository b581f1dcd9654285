package quiz

import (
	"strconv"
	"strings"

	"biomind/internal/gateway"
)

// correctAnswerOf derives the canonical correct answer from a payload.
// MCQ and scenario questions use the answer index; short questions use
// the sample answer. A single-letter sample answer is treated as an
// option letter and mapped to its zero-based index ("C" -> "2"). The
// mapping applies only to the stored key, never to student input.
func correctAnswerOf(p *gateway.QuizPayload) string {
	if p.AnswerIndex != nil {
		return strconv.Itoa(*p.AnswerIndex)
	}

	raw := p.SampleAnswer
	if len(raw) == 1 && isLetter(raw[0]) {
		upper := strings.ToUpper(raw)[0]
		return strconv.Itoa(int(upper - 'A'))
	}
	return strings.TrimSpace(raw)
}

// grade compares a student answer to the canonical one: both sides are
// trimmed and compared case-insensitively.
func grade(studentAnswer, correctAnswer string) bool {
	return strings.EqualFold(strings.TrimSpace(studentAnswer), strings.TrimSpace(correctAnswer))
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
