package skills

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

func (r *PGRepo) List(ctx context.Context) ([]Category, error) {
	const query = `
SELECT id, name, skills, created_at, updated_at
FROM skill_categories
ORDER BY created_at ASC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		var cat Category
		var skills []byte
		if err := rows.Scan(&cat.ID, &cat.Name, &skills, &cat.CreatedAt, &cat.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(skills, &cat.Skills); err != nil {
			return nil, err
		}
		out = append(out, cat)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Category, error) {
	const query = `
SELECT id, name, skills, created_at, updated_at
FROM skill_categories
WHERE id = $1`
	var cat Category
	var skills []byte
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&cat.ID, &cat.Name, &skills, &cat.CreatedAt, &cat.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Category{}, ErrNotFound
		}
		return Category{}, err
	}
	if err := json.Unmarshal(skills, &cat.Skills); err != nil {
		return Category{}, err
	}
	return cat, nil
}

func (r *PGRepo) Create(ctx context.Context, cat Category) error {
	skills, err := json.Marshal(cat.Skills)
	if err != nil {
		return err
	}
	const query = `
INSERT INTO skill_categories (id, name, skills, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err = r.DB.ExecContext(ctx, query, cat.ID, cat.Name, skills, cat.CreatedAt, cat.UpdatedAt)
	return err
}

func (r *PGRepo) Update(ctx context.Context, cat Category) error {
	skills, err := json.Marshal(cat.Skills)
	if err != nil {
		return err
	}
	const query = `
UPDATE skill_categories
SET name = $1, skills = $2, updated_at = $3
WHERE id = $4`
	res, err := r.DB.ExecContext(ctx, query, cat.Name, skills, cat.UpdatedAt, cat.ID)
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
	res, err := r.DB.ExecContext(ctx, `DELETE FROM skill_categories WHERE id = $1`, id)
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
