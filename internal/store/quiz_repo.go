package store

import (
	"context"
	"fmt"

	"biomind/ent"
	"biomind/ent/quizresult"
)

type quizResultRepo struct {
	client *ent.Client
}

func (r *quizResultRepo) Create(ctx context.Context, rec QuizResultRecord) (*ent.QuizResult, error) {
	res, err := r.client.QuizResult.Create().
		SetUserID(rec.UserID).
		SetTopic(rec.Topic).
		SetQuestionType(rec.QuestionType).
		SetQuestionData(rec.QuestionData).
		SetStudentAnswer(rec.StudentAnswer).
		SetCorrectAnswer(rec.CorrectAnswer).
		SetIsCorrect(rec.IsCorrect).
		SetScore(rec.Score).
		SetLlmExplanation(rec.LLMExplanation).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create quiz result: %w", err)
	}
	return res, nil
}

func (r *quizResultRepo) RecentWrongAnswers(ctx context.Context, userID int, topic string, limit int) ([]string, error) {
	rows, err := r.client.QuizResult.Query().
		Where(
			quizresult.UserID(userID),
			quizresult.Topic(topic),
			quizresult.IsCorrect(false),
		).
		Order(ent.Desc(quizresult.FieldAttemptedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query wrong answers: %w", err)
	}

	answers := make([]string, 0, len(rows))
	for _, row := range rows {
		answers = append(answers, row.CorrectAnswer)
	}
	return answers, nil
}

func (r *quizResultRepo) Accuracy(ctx context.Context, userID int) (int, int, error) {
	total, err := r.client.QuizResult.Query().
		Where(quizresult.UserID(userID)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count quiz results: %w", err)
	}

	correct, err := r.client.QuizResult.Query().
		Where(
			quizresult.UserID(userID),
			quizresult.IsCorrect(true),
		).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count correct results: %w", err)
	}

	return correct, total, nil
}
