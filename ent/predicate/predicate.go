// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CareerGoal is the predicate function for careergoal builders.
type CareerGoal func(*sql.Selector)

// LabLog is the predicate function for lablog builders.
type LabLog func(*sql.Selector)

// QuizResult is the predicate function for quizresult builders.
type QuizResult func(*sql.Selector)

// SkillScore is the predicate function for skillscore builders.
type SkillScore func(*sql.Selector)

// TopicMastery is the predicate function for topicmastery builders.
type TopicMastery func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
