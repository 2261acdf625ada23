package users

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) UpsertLogin(ctx context.Context, id, email string) (User, error) {
	const query = `
INSERT INTO users (id, email, created_at, updated_at, last_login_at)
VALUES ($1, $2, now(), now(), now())
ON CONFLICT (email) DO UPDATE SET
  updated_at = now(),
  last_login_at = now()
RETURNING id, email, created_at, updated_at, last_login_at`
	return scanUser(r.DB.QueryRowContext(ctx, query, id, email))
}

func (r *PGRepo) GetByID(ctx context.Context, userID string) (User, error) {
	const query = `
SELECT id, email, created_at, updated_at, last_login_at
FROM users
WHERE id = $1
LIMIT 1`
	user, err := scanUser(r.DB.QueryRowContext(ctx, query, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	return user, err
}

func scanUser(row *sql.Row) (User, error) {
	var user User
	var lastLogin sql.NullTime
	if err := row.Scan(&user.ID, &user.Email, &user.CreatedAt, &user.UpdatedAt, &lastLogin); err != nil {
		return User{}, err
	}
	if lastLogin.Valid {
		user.LastLoginAt = &lastLogin.Time
	}
	return user, nil
}

var _ Repo = (*PGRepo)(nil)
