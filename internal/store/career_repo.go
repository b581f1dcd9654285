package store

import (
	"context"
	"fmt"

	"biomind/ent"
	"biomind/ent/careergoal"
)

type careerGoalRepo struct {
	client *ent.Client
}

func (r *careerGoalRepo) Upsert(ctx context.Context, userID int, rec CareerGoalRecord) (*ent.CareerGoal, error) {
	existing, err := r.ByUser(ctx, userID)
	if err != nil && err != ErrNotFound {
		return nil, err
	}

	if existing == nil {
		goal, err := r.client.CareerGoal.Create().
			SetUserID(userID).
			SetTargetRole(careergoal.TargetRole(rec.TargetRole)).
			SetIndustrySkills(rec.IndustrySkills).
			SetRoadmap(rec.Roadmap).
			SetMiniProjects(rec.MiniProjects).
			SetCertifications(rec.Certifications).
			SetReadinessScore(rec.ReadinessScore).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create career goal: %w", err)
		}
		return goal, nil
	}

	goal, err := r.client.CareerGoal.UpdateOne(existing).
		SetTargetRole(careergoal.TargetRole(rec.TargetRole)).
		SetIndustrySkills(rec.IndustrySkills).
		SetRoadmap(rec.Roadmap).
		SetMiniProjects(rec.MiniProjects).
		SetCertifications(rec.Certifications).
		SetReadinessScore(rec.ReadinessScore).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update career goal: %w", err)
	}
	return goal, nil
}

func (r *careerGoalRepo) ByUser(ctx context.Context, userID int) (*ent.CareerGoal, error) {
	goal, err := r.client.CareerGoal.Query().
		Where(careergoal.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query career goal: %w", err)
	}
	return goal, nil
}
