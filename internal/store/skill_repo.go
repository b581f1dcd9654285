package store

import (
	"context"
	"fmt"

	"biomind/ent"
	"biomind/ent/skillscore"
)

type skillScoreRepo struct {
	client *ent.Client
}

func (r *skillScoreRepo) ByUser(ctx context.Context, userID int) (map[string]float64, error) {
	rows, err := r.client.SkillScore.Query().
		Where(skillscore.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query skill scores: %w", err)
	}

	scores := make(map[string]float64, len(rows))
	for _, row := range rows {
		scores[row.SkillName] = row.Score
	}
	return scores, nil
}

func (r *skillScoreRepo) Upsert(ctx context.Context, userID int, skill string, score float64, source string) error {
	existing, err := r.client.SkillScore.Query().
		Where(
			skillscore.UserID(userID),
			skillscore.SkillName(skill),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query skill score: %w", err)
	}

	if existing == nil {
		_, err = r.client.SkillScore.Create().
			SetUserID(userID).
			SetSkillName(skill).
			SetScore(score).
			SetSource(source).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create skill score: %w", err)
		}
		return nil
	}

	err = r.client.SkillScore.UpdateOne(existing).
		SetScore(score).
		SetSource(source).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update skill score: %w", err)
	}
	return nil
}
