package prompt

import (
	"strings"
	"testing"
)

func TestLesson(t *testing.T) {
	t.Run("includes weak areas", func(t *testing.T) {
		system, user := Lesson("CRISPR", "intermediate", "Asha", []string{"PCR", "Cloning"})
		if !strings.Contains(system, "Weak areas: PCR, Cloning") {
			t.Errorf("system missing weak areas: %q", system)
		}
		if !strings.Contains(system, "Level: INTERMEDIATE") {
			t.Errorf("system missing upper-cased level: %q", system)
		}
		if user != "Teach me about: CRISPR" {
			t.Errorf("user = %q", user)
		}
	})

	t.Run("no weak areas says none", func(t *testing.T) {
		system, _ := Lesson("PCR", "beginner", "Ben", nil)
		if !strings.Contains(system, "Weak areas: none") {
			t.Errorf("system missing 'none' fallback: %q", system)
		}
	})
}

func TestQuiz(t *testing.T) {
	t.Run("mcq format", func(t *testing.T) {
		system, user := Quiz("PCR", "beginner", "mcq", nil)
		if !strings.Contains(system, `"answer_index":0`) {
			t.Errorf("system missing mcq format: %q", system)
		}
		if !strings.Contains(system, "answer_index MUST be integer 0-3") {
			t.Errorf("system missing index constraint: %q", system)
		}
		if user != "Generate mcq question for: PCR" {
			t.Errorf("user = %q", user)
		}
	})

	t.Run("short format", func(t *testing.T) {
		system, _ := Quiz("Cloning", "advanced", "short", []string{"gel electrophoresis"})
		if !strings.Contains(system, `"sample_answer"`) {
			t.Errorf("system missing short format: %q", system)
		}
		if !strings.Contains(system, "Recent mistakes: gel electrophoresis") {
			t.Errorf("system missing mistakes: %q", system)
		}
	})

	t.Run("unknown type falls back to mcq", func(t *testing.T) {
		system, _ := Quiz("PCR", "beginner", "essay", nil)
		if !strings.Contains(system, `"type":"mcq"`) {
			t.Errorf("expected mcq fallback, got: %q", system)
		}
	})
}

func TestLabStep(t *testing.T) {
	history := []LabDecision{
		{Step: 1, Choice: "Prepare the master mix"},
		{Step: 2, Choice: "Set annealing to 55C"},
	}
	system, user := LabStep("pcr_lab", "beginner", "Run 30 cycles", 3, history)

	if !strings.Contains(system, "Step 1: Prepare the master mix -> Step 2: Set annealing to 55C") {
		t.Errorf("system missing decision chain: %q", system)
	}
	if !strings.Contains(system, "Lab:pcr_lab Level:BEGINNER Step:3") {
		t.Errorf("system missing lab header: %q", system)
	}
	if user != "Student chose: Run 30 cycles" {
		t.Errorf("user = %q", user)
	}
}

func TestCareer(t *testing.T) {
	system, user := Career("Asha", "bioinformatician", map[string]float64{"Python": 70}, map[string]float64{"Genomics": 82.5})
	if !strings.Contains(system, `"Python":70`) {
		t.Errorf("system missing skills JSON: %q", system)
	}
	if !strings.Contains(system, "Role:bioinformatician") {
		t.Errorf("system missing role: %q", system)
	}
	if user != "Generate career roadmap for bioinformatician" {
		t.Errorf("user = %q", user)
	}
}
