package prompt

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Career builds the prompt pair for a personalized career roadmap.
// Skills and topic accuracies are serialized as JSON so the model sees
// exact numbers rather than prose approximations.
func Career(studentName, role string, skills map[string]float64, topicAccuracy map[string]float64) (string, string) {
	skillsJSON, _ := json.Marshal(skills)
	topicsJSON, _ := json.Marshal(topicAccuracy)

	var b strings.Builder

	fmt.Fprintf(&b, "Biotech career advisor. Student:%s | Role:%s\n", studentName, role)
	fmt.Fprintf(&b, "Skills:%s | Topics:%s\n", skillsJSON, topicsJSON)
	b.WriteString(`Output ONLY valid JSON: {"industry_required_skills":{"skill":0},"roadmap":["step1","step2","step3","step4","step5"],"mini_projects":["p1","p2","p3"],"certifications":["c1","c2"],"readiness_score":65.0}`)

	return b.String(), fmt.Sprintf("Generate career roadmap for %s", role)
}

// Tips builds the prompt pair for 3-4 short improvement tips.
func Tips(weakTopics []string, level string) (string, string) {
	system := `Generate 3-4 improvement tips. Output ONLY JSON array: ["tip1","tip2","tip3"]`
	user := fmt.Sprintf("Weak:%s. Level:%s", strings.Join(weakTopics, ", "), level)
	return system, user
}

// LearningPath builds the prompt pair for a 6-week study plan.
func LearningPath(level, role string, weakTopics, strongTopics []string) (string, string) {
	var b strings.Builder

	fmt.Fprintf(&b, "Biotech curriculum designer. Level:%s Role:%s Weak:%v Strong:%v\n",
		level, role, weakTopics, strongTopics)
	b.WriteString(`Output ONLY valid JSON: {"weeks":[{"week":"Week 1-2","focus":"theme","topics":["t1","t2","t3"],"priority":"high"}],"milestone":"goal"}`)

	return b.String(), "Generate 6-week learning path"
}
