package resumetemplates

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const templateColumns = `id, name, display_name, description, category, is_active, is_default, template_data, preview_image, download_count, rating_average, rating_count, tags, created_by, created_at, updated_at`

func (r *PGRepo) List(ctx context.Context, f Filter) ([]Template, int, error) {
	where := []string{"1=1"}
	var args []any

	if !f.IncludeInactive {
		where = append(where, "is_active = true")
	}
	if f.Category != "" {
		args = append(args, f.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	for _, tag := range f.Tags {
		args = append(args, tag)
		where = append(where, fmt.Sprintf("tags @> to_jsonb(ARRAY[$%d::text])", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+strings.ToLower(f.Search)+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(lower(name) LIKE $%d OR lower(display_name) LIKE $%d OR lower(description) LIKE $%d)", n, n, n))
	}

	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := `SELECT count(*) FROM resume_templates WHERE ` + whereClause
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	orderBy := "created_at DESC"
	switch f.Sort {
	case "rating":
		orderBy = "rating_average DESC, rating_count DESC"
	case "downloads":
		orderBy = "download_count DESC"
	case "name":
		orderBy = "name ASC"
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)

	query := fmt.Sprintf(`
SELECT %s
FROM resume_templates
WHERE %s
ORDER BY %s
LIMIT $%d OFFSET $%d`, templateColumns, whereClause, orderBy, len(args)-1, len(args))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Template
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, t)
	}
	return out, total, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Template, error) {
	query := `SELECT ` + templateColumns + ` FROM resume_templates WHERE id = $1`
	t, err := scanTemplate(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Template{}, ErrNotFound
		}
		return Template{}, err
	}
	return t, nil
}

func (r *PGRepo) GetByName(ctx context.Context, name string) (Template, error) {
	query := `SELECT ` + templateColumns + ` FROM resume_templates WHERE name = $1`
	t, err := scanTemplate(r.DB.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Template{}, ErrNotFound
		}
		return Template{}, err
	}
	return t, nil
}

func (r *PGRepo) Create(ctx context.Context, t Template) error {
	data, tags, err := marshalTemplate(t)
	if err != nil {
		return err
	}
	const query = `
INSERT INTO resume_templates (id, name, display_name, description, category, is_active, is_default, template_data, preview_image, download_count, rating_average, rating_count, tags, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err = r.DB.ExecContext(ctx, query,
		t.ID, t.Name, t.DisplayName, t.Description, t.Category, t.IsActive, t.IsDefault,
		data, t.PreviewImage, t.DownloadCount, t.RatingAverage, t.RatingCount, tags,
		nullable(t.CreatedBy), t.CreatedAt, t.UpdatedAt,
	)
	if err != nil && strings.Contains(err.Error(), "duplicate key") {
		return ErrAlreadyExists
	}
	return err
}

func (r *PGRepo) Update(ctx context.Context, t Template) error {
	data, tags, err := marshalTemplate(t)
	if err != nil {
		return err
	}
	const query = `
UPDATE resume_templates
SET display_name = $1, description = $2, category = $3, is_default = $4,
    template_data = $5, preview_image = $6, tags = $7, updated_at = $8
WHERE id = $9`
	res, err := r.DB.ExecContext(ctx, query,
		t.DisplayName, t.Description, t.Category, t.IsDefault,
		data, t.PreviewImage, tags, t.UpdatedAt, t.ID,
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

func (r *PGRepo) SetActive(ctx context.Context, id string, active bool) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE resume_templates SET is_active = $1, updated_at = now() WHERE id = $2`, active, id)
	if err != nil {
		return err
	}
	updated, _ := res.RowsAffected()
	if updated == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) UnsetDefaults(ctx context.Context, category, exceptID string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE resume_templates SET is_default = false, updated_at = now() WHERE category = $1 AND id <> $2 AND is_default = true`,
		category, exceptID)
	return err
}

func (r *PGRepo) IncrementDownloads(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE resume_templates SET download_count = download_count + 1, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	updated, _ := res.RowsAffected()
	if updated == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) SetRatingStats(ctx context.Context, id string, average float64, count int) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE resume_templates SET rating_average = $1, rating_count = $2, updated_at = now() WHERE id = $3`,
		average, count, id)
	if err != nil {
		return err
	}
	updated, _ := res.RowsAffected()
	if updated == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) UpsertRating(ctx context.Context, rating Rating) error {
	if rating.UserID != "" {
		const query = `
INSERT INTO resume_ratings (id, template_id, user_id, rating, review, reported, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, false, $6, $7)
ON CONFLICT (template_id, user_id) WHERE user_id IS NOT NULL
DO UPDATE SET rating = EXCLUDED.rating, review = EXCLUDED.review, updated_at = EXCLUDED.updated_at`
		_, err := r.DB.ExecContext(ctx, query,
			rating.ID, rating.TemplateID, rating.UserID, rating.Score, rating.Review, rating.CreatedAt, rating.UpdatedAt)
		return err
	}

	const query = `
INSERT INTO resume_ratings (id, template_id, session_id, rating, review, reported, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, false, $6, $7)
ON CONFLICT (template_id, session_id) WHERE session_id IS NOT NULL
DO UPDATE SET rating = EXCLUDED.rating, review = EXCLUDED.review, updated_at = EXCLUDED.updated_at`
	_, err := r.DB.ExecContext(ctx, query,
		rating.ID, rating.TemplateID, rating.SessionID, rating.Score, rating.Review, rating.CreatedAt, rating.UpdatedAt)
	return err
}

func (r *PGRepo) ListRatings(ctx context.Context, templateID string, limit, offset int) ([]Rating, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx,
		`SELECT count(*) FROM resume_ratings WHERE template_id = $1 AND reported = false`,
		templateID).Scan(&total); err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, template_id, user_id, session_id, rating, review, reported, created_at, updated_at
FROM resume_ratings
WHERE template_id = $1 AND reported = false
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, templateID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Rating
	for rows.Next() {
		var rating Rating
		var userID, sessionID sql.NullString
		if err := rows.Scan(&rating.ID, &rating.TemplateID, &userID, &sessionID,
			&rating.Score, &rating.Review, &rating.Reported, &rating.CreatedAt, &rating.UpdatedAt); err != nil {
			return nil, 0, err
		}
		rating.UserID = userID.String
		rating.SessionID = sessionID.String
		out = append(out, rating)
	}
	return out, total, rows.Err()
}

func (r *PGRepo) RatingStats(ctx context.Context, templateID string) (float64, int, error) {
	var average sql.NullFloat64
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT avg(rating), count(*) FROM resume_ratings WHERE template_id = $1 AND reported = false`,
		templateID).Scan(&average, &count)
	if err != nil {
		return 0, 0, err
	}
	return average.Float64, count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row rowScanner) (Template, error) {
	var t Template
	var data, tags []byte
	var createdBy sql.NullString
	if err := row.Scan(
		&t.ID, &t.Name, &t.DisplayName, &t.Description, &t.Category, &t.IsActive, &t.IsDefault,
		&data, &t.PreviewImage, &t.DownloadCount, &t.RatingAverage, &t.RatingCount, &tags,
		&createdBy, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return Template{}, err
	}
	if err := json.Unmarshal(data, &t.Data); err != nil {
		return Template{}, err
	}
	if err := json.Unmarshal(tags, &t.Tags); err != nil {
		return Template{}, err
	}
	t.CreatedBy = createdBy.String
	return t, nil
}

func marshalTemplate(t Template) (data, tags []byte, err error) {
	if data, err = json.Marshal(t.Data); err != nil {
		return nil, nil, err
	}
	tagList := t.Tags
	if tagList == nil {
		tagList = []string{}
	}
	if tags, err = json.Marshal(tagList); err != nil {
		return nil, nil, err
	}
	return data, tags, nil
}

func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

var _ Repo = (*PGRepo)(nil)
