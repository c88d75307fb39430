package generations

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres. The pending-only transitions
// are conditional updates so concurrent writers cannot race a record
// out of a terminal status.
type PGRepo struct {
	DB *sql.DB
}

const generationColumns = `id, user_id, session_id, template_id, snapshot, customizations, status, file_key, file_size, error_message, generated_at, downloaded_at, expires_at, created_at, updated_at`

func (r *PGRepo) Create(ctx context.Context, g Generation) error {
	snapshot, err := json.Marshal(g.Snapshot)
	if err != nil {
		return err
	}
	customizations, err := json.Marshal(g.Customizations)
	if err != nil {
		return err
	}
	const query = `
INSERT INTO resume_generations (id, user_id, session_id, template_id, snapshot, customizations, status, file_key, file_size, error_message, expires_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.DB.ExecContext(ctx, query,
		g.ID, nullable(g.UserID), nullable(g.SessionID), g.TemplateID,
		snapshot, customizations, g.Status, g.FileKey, g.FileSize, g.ErrorMessage,
		g.ExpiresAt, g.CreatedAt, g.UpdatedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Generation, error) {
	const query = `
SELECT ` + generationColumns + `
FROM resume_generations
WHERE id = $1`
	g, err := scanGeneration(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Generation{}, ErrNotFound
		}
		return Generation{}, err
	}
	return g, nil
}

func (r *PGRepo) ListByOwner(ctx context.Context, userID, sessionID string) ([]Generation, error) {
	var (
		query string
		arg   string
	)
	switch {
	case userID != "":
		query = `SELECT ` + generationColumns + ` FROM resume_generations WHERE user_id = $1 ORDER BY created_at DESC`
		arg = userID
	case sessionID != "":
		query = `SELECT ` + generationColumns + ` FROM resume_generations WHERE session_id = $1 ORDER BY created_at DESC`
		arg = sessionID
	default:
		return nil, nil
	}

	rows, err := r.DB.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Generation
	for rows.Next() {
		g, err := scanGeneration(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *PGRepo) MarkGenerated(ctx context.Context, id, fileKey string, fileSize int64, generatedAt time.Time) error {
	const query = `
UPDATE resume_generations
SET status = $1, file_key = $2, file_size = $3, generated_at = $4, updated_at = now()
WHERE id = $5 AND status = $6`
	res, err := r.DB.ExecContext(ctx, query, StatusGenerated, fileKey, fileSize, generatedAt, id, StatusPending)
	if err != nil {
		return err
	}
	return transitionResult(ctx, r.DB, res, id)
}

func (r *PGRepo) MarkFailed(ctx context.Context, id, errorMessage string) error {
	const query = `
UPDATE resume_generations
SET status = $1, error_message = $2, updated_at = now()
WHERE id = $3 AND status = $4`
	res, err := r.DB.ExecContext(ctx, query, StatusFailed, errorMessage, id, StatusPending)
	if err != nil {
		return err
	}
	return transitionResult(ctx, r.DB, res, id)
}

func (r *PGRepo) SetDownloaded(ctx context.Context, id string, at time.Time) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE resume_generations SET downloaded_at = $1, updated_at = now() WHERE id = $2`, at, id)
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
	res, err := r.DB.ExecContext(ctx, `DELETE FROM resume_generations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	deleted, _ := res.RowsAffected()
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) ListExpired(ctx context.Context, now time.Time, limit int) ([]Generation, error) {
	if limit <= 0 {
		limit = 100
	}
	const query = `
SELECT ` + generationColumns + `
FROM resume_generations
WHERE expires_at < $1
ORDER BY expires_at ASC
LIMIT $2`
	rows, err := r.DB.QueryContext(ctx, query, now, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Generation
	for rows.Next() {
		g, err := scanGeneration(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// transitionResult maps a zero-row conditional update to the right
// sentinel: missing record or illegal transition.
func transitionResult(ctx context.Context, db *sql.DB, res sql.Result, id string) error {
	updated, _ := res.RowsAffected()
	if updated > 0 {
		return nil
	}
	var exists bool
	if err := db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM resume_generations WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return ErrInvalidTransition
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGeneration(row rowScanner) (Generation, error) {
	var g Generation
	var userID, sessionID sql.NullString
	var snapshot, customizations []byte
	var generatedAt, downloadedAt sql.NullTime
	if err := row.Scan(
		&g.ID, &userID, &sessionID, &g.TemplateID, &snapshot, &customizations,
		&g.Status, &g.FileKey, &g.FileSize, &g.ErrorMessage,
		&generatedAt, &downloadedAt, &g.ExpiresAt, &g.CreatedAt, &g.UpdatedAt,
	); err != nil {
		return Generation{}, err
	}
	g.UserID = userID.String
	g.SessionID = sessionID.String
	if err := json.Unmarshal(snapshot, &g.Snapshot); err != nil {
		return Generation{}, err
	}
	if err := json.Unmarshal(customizations, &g.Customizations); err != nil {
		return Generation{}, err
	}
	if generatedAt.Valid {
		g.GeneratedAt = &generatedAt.Time
	}
	if downloadedAt.Valid {
		g.DownloadedAt = &downloadedAt.Time
	}
	return g, nil
}

func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

var _ Repo = (*PGRepo)(nil)
