package store

import (
	"context"
	"fmt"

	"biomind/ent"
	"biomind/ent/user"
)

type userRepo struct {
	client *ent.Client
}

func (r *userRepo) Create(ctx context.Context, p CreateUserParams) (*ent.User, error) {
	builder := r.client.User.Create().
		SetName(p.Name).
		SetEmail(p.Email).
		SetHashedPw(p.HashedPW).
		SetInstitution(p.Institution)

	if p.Level != "" {
		builder = builder.SetLevel(user.Level(p.Level))
	}

	u, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (r *userRepo) ByEmail(ctx context.Context, email string) (*ent.User, error) {
	u, err := r.client.User.Query().
		Where(user.EmailEQ(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query user by email: %w", err)
	}
	return u, nil
}

func (r *userRepo) ByID(ctx context.Context, id int) (*ent.User, error) {
	u, err := r.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (r *userRepo) SetProgress(ctx context.Context, id int, xp int, level string) error {
	err := r.client.User.UpdateOneID(id).
		SetXpPoints(xp).
		SetLevel(user.Level(level)).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("update user progress: %w", err)
	}
	return nil
}
