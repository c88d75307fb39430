package experience

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const entryColumns = `id, title, company, location, start_date, end_date, current, description, skills, sort_order, created_at, updated_at`

func (r *PGRepo) List(ctx context.Context) ([]Entry, error) {
	const query = `
SELECT ` + entryColumns + `
FROM experiences
ORDER BY sort_order ASC, created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Entry, error) {
	const query = `
SELECT ` + entryColumns + `
FROM experiences
WHERE id = $1`
	e, err := scanEntry(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, err
	}
	return e, nil
}

func (r *PGRepo) Create(ctx context.Context, e Entry) error {
	description, skills, err := marshalLists(e)
	if err != nil {
		return err
	}
	const query = `
INSERT INTO experiences (id, title, company, location, start_date, end_date, current, description, skills, sort_order, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.DB.ExecContext(ctx, query,
		e.ID, e.Title, e.Company, e.Location, e.StartDate, e.EndDate, e.Current,
		description, skills, e.Order, e.CreatedAt, e.UpdatedAt,
	)
	return err
}

func (r *PGRepo) Update(ctx context.Context, e Entry) error {
	description, skills, err := marshalLists(e)
	if err != nil {
		return err
	}
	const query = `
UPDATE experiences
SET title = $1, company = $2, location = $3, start_date = $4, end_date = $5, current = $6,
    description = $7, skills = $8, sort_order = $9, updated_at = $10
WHERE id = $11`
	res, err := r.DB.ExecContext(ctx, query,
		e.Title, e.Company, e.Location, e.StartDate, e.EndDate, e.Current,
		description, skills, e.Order, e.UpdatedAt, e.ID,
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
	res, err := r.DB.ExecContext(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		return err
	}
	deleted, _ := res.RowsAffected()
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (Entry, error) {
	var e Entry
	var description, skills []byte
	if err := row.Scan(
		&e.ID, &e.Title, &e.Company, &e.Location, &e.StartDate, &e.EndDate, &e.Current,
		&description, &skills, &e.Order, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return Entry{}, err
	}
	if err := json.Unmarshal(description, &e.Description); err != nil {
		return Entry{}, err
	}
	if err := json.Unmarshal(skills, &e.Skills); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func marshalLists(e Entry) (description, skills []byte, err error) {
	if description, err = json.Marshal(e.Description); err != nil {
		return nil, nil, err
	}
	if skills, err = json.Marshal(e.Skills); err != nil {
		return nil, nil, err
	}
	return description, skills, nil
}

var _ Repo = (*PGRepo)(nil)
