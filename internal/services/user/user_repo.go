package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepo struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Upsert inserts the user or refreshes an existing row. Webhook deliveries are
// at-least-once, so a replayed created event must not conflict.
func (r *UserRepo) Upsert(ctx context.Context, u *User) (*User, error) {
	query := `
		INSERT INTO users (id, email, name, image_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET email = EXCLUDED.email, name = EXCLUDED.name, image_url = EXCLUDED.image_url, updated_at = NOW()
		RETURNING id, email, name, image_url, created_at, updated_at
	`
	var saved User
	err := r.db.GetContext(ctx, &saved, query, u.ID, u.Email, u.Name, u.ImageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	return &saved, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*User, error) {
	query := `
		SELECT id, email, name, image_url, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	var u User
	err := r.db.GetContext(ctx, &u, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// Delete removes the user. Deleting an already-removed user is a no-op so that
// redelivered deletion events succeed.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
