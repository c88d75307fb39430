package education

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const entryColumns = `id, degree, institution, year, details, sort_order, created_at, updated_at`

func (r *PGRepo) List(ctx context.Context) ([]Entry, error) {
	const query = `
SELECT ` + entryColumns + `
FROM education
ORDER BY sort_order ASC, created_at DESC`
	return r.queryEntries(ctx, query)
}

func (r *PGRepo) ListRecent(ctx context.Context) ([]Entry, error) {
	const query = `
SELECT ` + entryColumns + `
FROM education
ORDER BY created_at DESC`
	return r.queryEntries(ctx, query)
}

func (r *PGRepo) queryEntries(ctx context.Context, query string) ([]Entry, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Degree, &e.Institution, &e.Year, &e.Details, &e.Order, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Entry, error) {
	const query = `
SELECT ` + entryColumns + `
FROM education
WHERE id = $1`
	var e Entry
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Degree, &e.Institution, &e.Year, &e.Details, &e.Order, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, err
	}
	return e, nil
}

func (r *PGRepo) Create(ctx context.Context, e Entry) error {
	const query = `
INSERT INTO education (id, degree, institution, year, details, sort_order, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.DB.ExecContext(ctx, query,
		e.ID, e.Degree, e.Institution, e.Year, e.Details, e.Order, e.CreatedAt, e.UpdatedAt,
	)
	return err
}

func (r *PGRepo) Update(ctx context.Context, e Entry) error {
	const query = `
UPDATE education
SET degree = $1, institution = $2, year = $3, details = $4, sort_order = $5, updated_at = $6
WHERE id = $7`
	res, err := r.DB.ExecContext(ctx, query,
		e.Degree, e.Institution, e.Year, e.Details, e.Order, e.UpdatedAt, e.ID,
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

func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM education WHERE id = $1`, id)
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
