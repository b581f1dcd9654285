package store

import (
	"context"
	"fmt"

	"biomind/ent"
	"biomind/ent/topicmastery"
)

type masteryRepo struct {
	client *ent.Client
}

func (r *masteryRepo) Get(ctx context.Context, userID int, topic string) (*ent.TopicMastery, error) {
	m, err := r.client.TopicMastery.Query().
		Where(
			topicmastery.UserID(userID),
			topicmastery.TopicName(topic),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query mastery: %w", err)
	}
	return m, nil
}

func (r *masteryRepo) Save(ctx context.Context, rec MasteryRecord) error {
	existing, err := r.Get(ctx, rec.UserID, rec.TopicName)
	if err != nil && err != ErrNotFound {
		return err
	}

	if existing == nil {
		_, err = r.client.TopicMastery.Create().
			SetUserID(rec.UserID).
			SetTopicName(rec.TopicName).
			SetAttempts(rec.Attempts).
			SetCorrect(rec.Correct).
			SetAccuracy(rec.Accuracy).
			SetCurrentLevel(topicmastery.CurrentLevel(rec.Level)).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create mastery: %w", err)
		}
		return nil
	}

	err = r.client.TopicMastery.UpdateOne(existing).
		SetAttempts(rec.Attempts).
		SetCorrect(rec.Correct).
		SetAccuracy(rec.Accuracy).
		SetCurrentLevel(topicmastery.CurrentLevel(rec.Level)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update mastery: %w", err)
	}
	return nil
}

func (r *masteryRepo) ByUser(ctx context.Context, userID int) ([]*ent.TopicMastery, error) {
	rows, err := r.client.TopicMastery.Query().
		Where(topicmastery.UserID(userID)).
		Order(ent.Asc(topicmastery.FieldTopicName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mastery rows: %w", err)
	}
	return rows, nil
}
