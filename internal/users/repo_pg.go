package users

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const userColumns = `id, email, name, password_hash, role, picture_url, created_at, updated_at`

func (r *PGRepo) GetByID(ctx context.Context, id string) (User, error) {
	const query = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`
	return r.scanUser(r.DB.QueryRowContext(ctx, query, id))
}

func (r *PGRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	const query = `
SELECT ` + userColumns + `
FROM users
WHERE lower(email) = lower($1)`
	return r.scanUser(r.DB.QueryRowContext(ctx, query, email))
}

func (r *PGRepo) scanUser(row *sql.Row) (User, error) {
	var u User
	var passwordHash, pictureURL sql.NullString
	err := row.Scan(&u.ID, &u.Email, &u.Name, &passwordHash, &u.Role, &pictureURL, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	u.PasswordHash = passwordHash.String
	u.PictureURL = pictureURL.String
	return u, nil
}

func (r *PGRepo) Create(ctx context.Context, u User) error {
	const query = `
INSERT INTO users (id, email, name, password_hash, role, picture_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.DB.ExecContext(ctx, query,
		u.ID, u.Email, u.Name, nullable(u.PasswordHash), u.Role, nullable(u.PictureURL), u.CreatedAt, u.UpdatedAt,
	)
	if err != nil && strings.Contains(err.Error(), "duplicate key") {
		return ErrAlreadyExists
	}
	return err
}

func (r *PGRepo) Update(ctx context.Context, u User) error {
	const query = `
UPDATE users
SET email = $1, name = $2, password_hash = $3, role = $4, picture_url = $5, updated_at = $6
WHERE id = $7`
	res, err := r.DB.ExecContext(ctx, query,
		u.Email, u.Name, nullable(u.PasswordHash), u.Role, nullable(u.PictureURL), u.UpdatedAt, u.ID,
	)
	if err != nil {
		return err
	}
	updated, _ := res.RowsAffected()
	if updated == 0 {
		return ErrNotFound
	}
	return nil
}

func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

var _ Repo = (*PGRepo)(nil)
