package uploads

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const uploadColumns = `id, kind, file_name, mime_type, size_bytes, storage_key, thumbnail_key, page_count, uploaded_by, created_at`

func (r *PGRepo) Create(ctx context.Context, u Upload) error {
	const query = `
INSERT INTO uploads (id, kind, file_name, mime_type, size_bytes, storage_key, thumbnail_key, page_count, uploaded_by, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	var uploadedBy sql.NullString
	if u.UploadedBy != "" {
		uploadedBy = sql.NullString{String: u.UploadedBy, Valid: true}
	}
	_, err := r.DB.ExecContext(ctx, query,
		u.ID, u.Kind, u.FileName, u.MimeType, u.SizeBytes, u.StorageKey, u.ThumbnailKey, u.PageCount, uploadedBy, u.CreatedAt,
	)
	return err
}

func (r *PGRepo) LatestByKind(ctx context.Context, kind string) (Upload, error) {
	const query = `
SELECT ` + uploadColumns + `
FROM uploads
WHERE kind = $1
ORDER BY created_at DESC
LIMIT 1`
	return r.scanUpload(r.DB.QueryRowContext(ctx, query, kind))
}

func (r *PGRepo) List(ctx context.Context, kind string) ([]Upload, error) {
	query := `SELECT ` + uploadColumns + ` FROM uploads`
	var args []any
	if kind != "" {
		query += ` WHERE kind = $1`
		args = append(args, kind)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Upload
	for rows.Next() {
		var u Upload
		var uploadedBy sql.NullString
		if err := rows.Scan(&u.ID, &u.Kind, &u.FileName, &u.MimeType, &u.SizeBytes,
			&u.StorageKey, &u.ThumbnailKey, &u.PageCount, &uploadedBy, &u.CreatedAt); err != nil {
			return nil, err
		}
		u.UploadedBy = uploadedBy.String
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *PGRepo) Delete(ctx context.Context, id string) (Upload, error) {
	const query = `
DELETE FROM uploads
WHERE id = $1
RETURNING ` + uploadColumns
	return r.scanUpload(r.DB.QueryRowContext(ctx, query, id))
}

func (r *PGRepo) scanUpload(row *sql.Row) (Upload, error) {
	var u Upload
	var uploadedBy sql.NullString
	err := row.Scan(&u.ID, &u.Kind, &u.FileName, &u.MimeType, &u.SizeBytes,
		&u.StorageKey, &u.ThumbnailKey, &u.PageCount, &uploadedBy, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Upload{}, ErrNotFound
		}
		return Upload{}, err
	}
	u.UploadedBy = uploadedBy.String
	return u, nil
}

var _ Repo = (*PGRepo)(nil)
