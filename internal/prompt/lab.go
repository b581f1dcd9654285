package prompt

import (
	"fmt"
	"strings"
)

// LabDecision is one prior step of a lab session, replayed into the
// prompt so the model keeps the simulation consistent.
type LabDecision struct {
	Step   int
	Choice string
}

// StartLab builds the prompt pair that opens a new lab simulation.
func StartLab(labType, level string) (string, string) {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a virtual lab instructor for %s. Level: %s\n",
		labType, strings.ToUpper(level))
	b.WriteString(`Output ONLY valid JSON: {"scenario":"lab scene","choices":["A","B","C","D"]}`)

	return b.String(), fmt.Sprintf("Start %s simulation", labType)
}

// LabStep builds the prompt pair for advancing a lab simulation by one
// student decision. The full decision chain is replayed in the system
// message so the model narrates a coherent experiment.
func LabStep(labType, level, choice string, step int, history []LabDecision) (string, string) {
	chain := make([]string, 0, len(history))
	for _, d := range history {
		chain = append(chain, fmt.Sprintf("Step %d: %s", d.Step, d.Choice))
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Lab:%s Level:%s Step:%d History:%s\n",
		labType, strings.ToUpper(level), step, strings.Join(chain, " -> "))
	b.WriteString(`Output ONLY valid JSON: {"result":"what happened","error":null,"scenario":"next situation","choices":["A","B","C","D"],"is_final":false}` + "\n")
	b.WriteString("Set is_final=true when done.")

	return b.String(), fmt.Sprintf("Student chose: %s", choice)
}
