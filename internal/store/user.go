package store

import (
	"context"
	"fmt"

	"github.com/lunara-health/lunara/ent"
	"github.com/lunara-health/lunara/ent/user"
)

// userRepo implements UserRepo using the ent client.
type userRepo struct {
	client *ent.Client
}

func (r *userRepo) Create(ctx context.Context, u *UserRecord) error {
	_, err := r.client.User.Create().
		SetEmail(u.Email).
		SetUsername(u.Username).
		SetPasswordHash(u.PasswordHash).
		SetAge(u.Age).
		SetInterests(u.Interests).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("user %s already exists: %w", u.Email, err)
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*UserRecord, error) {
	u, err := r.client.User.Query().
		Where(user.Email(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user %s: %w", email, err)
	}
	return &UserRecord{
		Email:        u.Email,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Age:          u.Age,
		Interests:    u.Interests,
		CreatedAt:    u.CreatedAt,
	}, nil
}

func (r *userRepo) Update(ctx context.Context, email string, fields UserUpdate) error {
	u, err := r.client.User.Query().
		Where(user.Email(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("user %s not found", email)
		}
		return fmt.Errorf("query user %s: %w", email, err)
	}

	builder := u.Update()
	if fields.Username != nil {
		builder = builder.SetUsername(*fields.Username)
	}
	if fields.Age != nil {
		builder = builder.SetAge(*fields.Age)
	}
	if fields.Interests != nil {
		builder = builder.SetInterests(fields.Interests)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("update user %s: %w", email, err)
	}
	return nil
}
