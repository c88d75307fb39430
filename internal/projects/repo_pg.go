package projects

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

const projectColumns = `id, title, description, outcomes, technologies, github_url, live_url, image_url, featured, sort_order, created_at, updated_at`

func (r *PGRepo) List(ctx context.Context) ([]Project, error) {
	const query = `
SELECT ` + projectColumns + `
FROM projects
ORDER BY sort_order ASC, created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Project, error) {
	const query = `
SELECT ` + projectColumns + `
FROM projects
WHERE id = $1`
	p, err := scanProject(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Project{}, ErrNotFound
		}
		return Project{}, err
	}
	return p, nil
}

func (r *PGRepo) Create(ctx context.Context, p Project) error {
	outcomes, technologies, err := marshalLists(p)
	if err != nil {
		return err
	}
	const query = `
INSERT INTO projects (id, title, description, outcomes, technologies, github_url, live_url, image_url, featured, sort_order, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.DB.ExecContext(ctx, query,
		p.ID, p.Title, p.Description, outcomes, technologies,
		p.GitHubURL, p.LiveURL, p.ImageURL, p.Featured, p.Order, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *PGRepo) Update(ctx context.Context, p Project) error {
	outcomes, technologies, err := marshalLists(p)
	if err != nil {
		return err
	}
	const query = `
UPDATE projects
SET title = $1, description = $2, outcomes = $3, technologies = $4, github_url = $5,
    live_url = $6, image_url = $7, featured = $8, sort_order = $9, updated_at = $10
WHERE id = $11`
	res, err := r.DB.ExecContext(ctx, query,
		p.Title, p.Description, outcomes, technologies,
		p.GitHubURL, p.LiveURL, p.ImageURL, p.Featured, p.Order, p.UpdatedAt, p.ID,
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
	res, err := r.DB.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
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

func scanProject(row rowScanner) (Project, error) {
	var p Project
	var outcomes, technologies []byte
	if err := row.Scan(
		&p.ID, &p.Title, &p.Description, &outcomes, &technologies,
		&p.GitHubURL, &p.LiveURL, &p.ImageURL, &p.Featured, &p.Order, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return Project{}, err
	}
	if err := json.Unmarshal(outcomes, &p.Outcomes); err != nil {
		return Project{}, err
	}
	if err := json.Unmarshal(technologies, &p.Technologies); err != nil {
		return Project{}, err
	}
	return p, nil
}

func marshalLists(p Project) (outcomes, technologies []byte, err error) {
	if outcomes, err = json.Marshal(p.Outcomes); err != nil {
		return nil, nil, err
	}
	if technologies, err = json.Marshal(p.Technologies); err != nil {
		return nil, nil, err
	}
	return outcomes, technologies, nil
}

var _ Repo = (*PGRepo)(nil)
