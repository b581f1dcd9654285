// Package progress aggregates a learner's quiz history into mastery
// levels, XP, and industry-readiness numbers.
package progress

import "math"

// Level is a difficulty tier, used both per-topic and globally.
type Level string

const (
	Beginner     Level = "beginner"
	Intermediate Level = "intermediate"
	Advanced     Level = "advanced"
)

// Accuracy thresholds for topic classification.
const (
	WeakThreshold   = 0.60
	StrongThreshold = 0.80
)

// Mastery movement rules. A topic moves one tier per update, never two.
const (
	promoteAccuracy    = 0.80
	promoteMinAttempts = 5
	demoteAccuracy     = 0.40
	demoteMinAttempts  = 3
)

// XP awards per activity.
const (
	XPLesson      = 10
	XPQuizCorrect = 25
	XPQuizAttempt = 5
	XPLabPerfect  = 50
	XPLabComplete = 20
)

// Global level XP thresholds.
const (
	xpIntermediate = 200
	xpAdvanced     = 600
)

// promote returns the next tier up, capped at advanced.
func (l Level) promote() Level {
	switch l {
	case Beginner:
		return Intermediate
	case Intermediate:
		return Advanced
	}
	return l
}

// demote returns the next tier down, capped at beginner.
func (l Level) demote() Level {
	switch l {
	case Advanced:
		return Intermediate
	case Intermediate:
		return Beginner
	}
	return l
}

// rank orders levels for promotion-only comparisons.
func (l Level) rank() int {
	switch l {
	case Intermediate:
		return 1
	case Advanced:
		return 2
	}
	return 0
}

// nextMasteryLevel applies the movement rules to a topic's updated
// accuracy and attempt count.
func nextMasteryLevel(current Level, accuracy float64, attempts int) Level {
	if accuracy >= promoteAccuracy && attempts >= promoteMinAttempts {
		return current.promote()
	}
	if accuracy < demoteAccuracy && attempts >= demoteMinAttempts {
		return current.demote()
	}
	return current
}

// levelForXP returns the global level earned at an XP total. The global
// level only ever rises: a user already above the earned tier keeps
// their current one.
func levelForXP(current Level, xp int) Level {
	earned := Beginner
	switch {
	case xp >= xpAdvanced:
		earned = Advanced
	case xp >= xpIntermediate:
		earned = Intermediate
	}
	if earned.rank() > current.rank() {
		return earned
	}
	return current
}

// round3 rounds to 3 decimal places, round1 to 1.
func round3(x float64) float64 { return math.Round(x*1000) / 1000 }
func round1(x float64) float64 { return math.Round(x*10) / 10 }
