package store

import (
	"context"
	"fmt"

	"biomind/ent"
	"biomind/ent/lablog"
)

type labLogRepo struct {
	client *ent.Client
}

func (r *labLogRepo) Create(ctx context.Context, userID int, labType, sessionID string) (*ent.LabLog, error) {
	log, err := r.client.LabLog.Create().
		SetUserID(userID).
		SetLabType(labType).
		SetSessionID(sessionID).
		SetDecisionChain([]map[string]any{}).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create lab log: %w", err)
	}
	return log, nil
}

func (r *labLogRepo) Update(ctx context.Context, sessionID string, upd LabLogUpdate) error {
	builder := r.client.LabLog.Update().
		Where(lablog.SessionID(sessionID)).
		SetDecisionChain(upd.DecisionChain).
		SetErrorCount(upd.ErrorCount)

	if upd.Completed {
		builder = builder.
			SetOutcome(upd.Outcome).
			SetScore(upd.Score).
			SetCompletedAt(upd.CompletedAt)
	}

	n, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("update lab log: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *labLogRepo) BySession(ctx context.Context, sessionID string) (*ent.LabLog, error) {
	log, err := r.client.LabLog.Query().
		Where(lablog.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query lab log: %w", err)
	}
	return log, nil
}
