package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres. The profile table holds at
// most one row.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Get(ctx context.Context) (Profile, error) {
	const query = `
SELECT id, name, title, summary, location, contact_email, contact_phone, social_links, created_at, updated_at
FROM profile
LIMIT 1`
	var p Profile
	var social []byte
	err := r.DB.QueryRowContext(ctx, query).Scan(
		&p.ID,
		&p.Name,
		&p.Title,
		&p.Summary,
		&p.Location,
		&p.Email,
		&p.Phone,
		&social,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	if len(social) > 0 {
		if err := json.Unmarshal(social, &p.Social); err != nil {
			return Profile{}, err
		}
	}
	return p, nil
}

func (r *PGRepo) Create(ctx context.Context, p Profile) error {
	social, err := json.Marshal(p.Social)
	if err != nil {
		return err
	}
	const query = `
INSERT INTO profile (id, name, title, summary, location, contact_email, contact_phone, social_links, created_at, updated_at)
SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10
WHERE NOT EXISTS (SELECT 1 FROM profile)`
	res, err := r.DB.ExecContext(ctx, query,
		p.ID, p.Name, p.Title, p.Summary, p.Location, p.Email, p.Phone, social, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	inserted, _ := res.RowsAffected()
	if inserted == 0 {
		return ErrAlreadyExists
	}
	return nil
}

func (r *PGRepo) Update(ctx context.Context, p Profile) error {
	social, err := json.Marshal(p.Social)
	if err != nil {
		return err
	}
	const query = `
UPDATE profile
SET name = $1, title = $2, summary = $3, location = $4, contact_email = $5, contact_phone = $6, social_links = $7, updated_at = $8`
	res, err := r.DB.ExecContext(ctx, query,
		p.Name, p.Title, p.Summary, p.Location, p.Email, p.Phone, social, p.UpdatedAt,
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

func (r *PGRepo) Delete(ctx context.Context) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM profile`)
	if err != nil {
		return err
	}
	deleted, _ := res.RowsAffected()
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
