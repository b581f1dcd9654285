// Code generated by ent, DO NOT EDIT.

package ent

import (
	"biomind/ent/careergoal"
	"biomind/ent/lablog"
	"biomind/ent/quizresult"
	"biomind/ent/schema"
	"biomind/ent/skillscore"
	"biomind/ent/topicmastery"
	"biomind/ent/user"
	"time"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	careergoalFields := schema.CareerGoal{}.Fields()
	_ = careergoalFields
	// careergoalDescReadinessScore is the schema descriptor for readiness_score field.
	careergoalDescReadinessScore := careergoalFields[6].Descriptor()
	// careergoal.DefaultReadinessScore holds the default value on creation for the readiness_score field.
	careergoal.DefaultReadinessScore = careergoalDescReadinessScore.Default.(float64)
	// careergoalDescGeneratedAt is the schema descriptor for generated_at field.
	careergoalDescGeneratedAt := careergoalFields[7].Descriptor()
	// careergoal.DefaultGeneratedAt holds the default value on creation for the generated_at field.
	careergoal.DefaultGeneratedAt = careergoalDescGeneratedAt.Default.(func() time.Time)
	// careergoal.UpdateDefaultGeneratedAt holds the default value on update for the generated_at field.
	careergoal.UpdateDefaultGeneratedAt = careergoalDescGeneratedAt.UpdateDefault.(func() time.Time)
	lablogFields := schema.LabLog{}.Fields()
	_ = lablogFields
	// lablogDescLabType is the schema descriptor for lab_type field.
	lablogDescLabType := lablogFields[1].Descriptor()
	// lablog.LabTypeValidator is a validator for the "lab_type" field. It is called by the builders before save.
	lablog.LabTypeValidator = func() func(string) error {
		validators := lablogDescLabType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(lab_type string) error {
			for _, fn := range fns {
				if err := fn(lab_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// lablogDescSessionID is the schema descriptor for session_id field.
	lablogDescSessionID := lablogFields[2].Descriptor()
	// lablog.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	lablog.SessionIDValidator = func() func(string) error {
		validators := lablogDescSessionID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(session_id string) error {
			for _, fn := range fns {
				if err := fn(session_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// lablogDescOutcome is the schema descriptor for outcome field.
	lablogDescOutcome := lablogFields[4].Descriptor()
	// lablog.DefaultOutcome holds the default value on creation for the outcome field.
	lablog.DefaultOutcome = lablogDescOutcome.Default.(string)
	// lablog.OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	lablog.OutcomeValidator = lablogDescOutcome.Validators[0].(func(string) error)
	// lablogDescScore is the schema descriptor for score field.
	lablogDescScore := lablogFields[5].Descriptor()
	// lablog.DefaultScore holds the default value on creation for the score field.
	lablog.DefaultScore = lablogDescScore.Default.(float64)
	// lablogDescErrorCount is the schema descriptor for error_count field.
	lablogDescErrorCount := lablogFields[6].Descriptor()
	// lablog.DefaultErrorCount holds the default value on creation for the error_count field.
	lablog.DefaultErrorCount = lablogDescErrorCount.Default.(int)
	// lablog.ErrorCountValidator is a validator for the "error_count" field. It is called by the builders before save.
	lablog.ErrorCountValidator = lablogDescErrorCount.Validators[0].(func(int) error)
	// lablogDescStartedAt is the schema descriptor for started_at field.
	lablogDescStartedAt := lablogFields[7].Descriptor()
	// lablog.DefaultStartedAt holds the default value on creation for the started_at field.
	lablog.DefaultStartedAt = lablogDescStartedAt.Default.(func() time.Time)
	quizresultFields := schema.QuizResult{}.Fields()
	_ = quizresultFields
	// quizresultDescTopic is the schema descriptor for topic field.
	quizresultDescTopic := quizresultFields[1].Descriptor()
	// quizresult.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	quizresult.TopicValidator = func() func(string) error {
		validators := quizresultDescTopic.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(topic string) error {
			for _, fn := range fns {
				if err := fn(topic); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// quizresultDescQuestionType is the schema descriptor for question_type field.
	quizresultDescQuestionType := quizresultFields[2].Descriptor()
	// quizresult.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	quizresult.QuestionTypeValidator = quizresultDescQuestionType.Validators[0].(func(string) error)
	// quizresultDescScore is the schema descriptor for score field.
	quizresultDescScore := quizresultFields[7].Descriptor()
	// quizresult.DefaultScore holds the default value on creation for the score field.
	quizresult.DefaultScore = quizresultDescScore.Default.(float64)
	// quizresultDescAttemptedAt is the schema descriptor for attempted_at field.
	quizresultDescAttemptedAt := quizresultFields[9].Descriptor()
	// quizresult.DefaultAttemptedAt holds the default value on creation for the attempted_at field.
	quizresult.DefaultAttemptedAt = quizresultDescAttemptedAt.Default.(func() time.Time)
	skillscoreFields := schema.SkillScore{}.Fields()
	_ = skillscoreFields
	// skillscoreDescSkillName is the schema descriptor for skill_name field.
	skillscoreDescSkillName := skillscoreFields[1].Descriptor()
	// skillscore.SkillNameValidator is a validator for the "skill_name" field. It is called by the builders before save.
	skillscore.SkillNameValidator = func() func(string) error {
		validators := skillscoreDescSkillName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(skill_name string) error {
			for _, fn := range fns {
				if err := fn(skill_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// skillscoreDescScore is the schema descriptor for score field.
	skillscoreDescScore := skillscoreFields[2].Descriptor()
	// skillscore.DefaultScore holds the default value on creation for the score field.
	skillscore.DefaultScore = skillscoreDescScore.Default.(float64)
	// skillscoreDescSource is the schema descriptor for source field.
	skillscoreDescSource := skillscoreFields[3].Descriptor()
	// skillscore.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	skillscore.SourceValidator = skillscoreDescSource.Validators[0].(func(string) error)
	// skillscoreDescUpdatedAt is the schema descriptor for updated_at field.
	skillscoreDescUpdatedAt := skillscoreFields[4].Descriptor()
	// skillscore.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	skillscore.DefaultUpdatedAt = skillscoreDescUpdatedAt.Default.(func() time.Time)
	// skillscore.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	skillscore.UpdateDefaultUpdatedAt = skillscoreDescUpdatedAt.UpdateDefault.(func() time.Time)
	topicmasteryFields := schema.TopicMastery{}.Fields()
	_ = topicmasteryFields
	// topicmasteryDescTopicName is the schema descriptor for topic_name field.
	topicmasteryDescTopicName := topicmasteryFields[1].Descriptor()
	// topicmastery.TopicNameValidator is a validator for the "topic_name" field. It is called by the builders before save.
	topicmastery.TopicNameValidator = func() func(string) error {
		validators := topicmasteryDescTopicName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(topic_name string) error {
			for _, fn := range fns {
				if err := fn(topic_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// topicmasteryDescAttempts is the schema descriptor for attempts field.
	topicmasteryDescAttempts := topicmasteryFields[2].Descriptor()
	// topicmastery.DefaultAttempts holds the default value on creation for the attempts field.
	topicmastery.DefaultAttempts = topicmasteryDescAttempts.Default.(int)
	// topicmastery.AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	topicmastery.AttemptsValidator = topicmasteryDescAttempts.Validators[0].(func(int) error)
	// topicmasteryDescCorrect is the schema descriptor for correct field.
	topicmasteryDescCorrect := topicmasteryFields[3].Descriptor()
	// topicmastery.DefaultCorrect holds the default value on creation for the correct field.
	topicmastery.DefaultCorrect = topicmasteryDescCorrect.Default.(int)
	// topicmastery.CorrectValidator is a validator for the "correct" field. It is called by the builders before save.
	topicmastery.CorrectValidator = topicmasteryDescCorrect.Validators[0].(func(int) error)
	// topicmasteryDescAccuracy is the schema descriptor for accuracy field.
	topicmasteryDescAccuracy := topicmasteryFields[4].Descriptor()
	// topicmastery.DefaultAccuracy holds the default value on creation for the accuracy field.
	topicmastery.DefaultAccuracy = topicmasteryDescAccuracy.Default.(float64)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[0].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = func() func(string) error {
		validators := userDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescHashedPw is the schema descriptor for hashed_pw field.
	userDescHashedPw := userFields[2].Descriptor()
	// user.HashedPwValidator is a validator for the "hashed_pw" field. It is called by the builders before save.
	user.HashedPwValidator = func() func(string) error {
		validators := userDescHashedPw.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(hashed_pw string) error {
			for _, fn := range fns {
				if err := fn(hashed_pw); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescInstitution is the schema descriptor for institution field.
	userDescInstitution := userFields[3].Descriptor()
	// user.InstitutionValidator is a validator for the "institution" field. It is called by the builders before save.
	user.InstitutionValidator = userDescInstitution.Validators[0].(func(string) error)
	// userDescXpPoints is the schema descriptor for xp_points field.
	userDescXpPoints := userFields[5].Descriptor()
	// user.DefaultXpPoints holds the default value on creation for the xp_points field.
	user.DefaultXpPoints = userDescXpPoints.Default.(int)
	// user.XpPointsValidator is a validator for the "xp_points" field. It is called by the builders before save.
	user.XpPointsValidator = userDescXpPoints.Validators[0].(func(int) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[6].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[7].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
}
