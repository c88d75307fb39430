package uploads

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"
	"io"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"

	"github.com/james-eo/portfolio/internal/shared/storage/object"
	"github.com/james-eo/portfolio/internal/shared/telemetry"
)

const (
	thumbnailMaxDim = 400
	thumbnailQual   = 85
)

// Service handles admin file uploads: project images (with generated
// thumbnails) and pre-built resume PDFs served on the direct download path.
type Service struct {
	Repo  Repo
	Store object.ObjectStore
}

func NewService(repo Repo, store object.ObjectStore) *Service {
	return &Service{Repo: repo, Store: store}
}

// UploadImage stores an image and a JPEG thumbnail alongside it.
func (s *Service) UploadImage(ctx context.Context, fileName, uploadedBy string, r io.Reader) (Upload, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Upload{}, fmt.Errorf("read image: %w", err)
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return Upload{}, fmt.Errorf("%w: not a supported image format", ErrInvalidInput)
	}

	key, size, mime, err := s.Store.Save(ctx, "uploads/images", fileName, bytes.NewReader(data))
	if err != nil {
		return Upload{}, fmt.Errorf("store image: %w", err)
	}

	thumb := imaging.Fit(img, thumbnailMaxDim, thumbnailMaxDim, imaging.Lanczos)
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: thumbnailQual}); err != nil {
		return Upload{}, fmt.Errorf("encode thumbnail: %w", err)
	}
	thumbKey := thumbKeyFor(key)
	if _, err := s.Store.SaveWithKey(ctx, thumbKey, "image/jpeg", &buf); err != nil {
		return Upload{}, fmt.Errorf("store thumbnail: %w", err)
	}

	u := Upload{
		ID:           uuid.NewString(),
		Kind:         KindImage,
		FileName:     fileName,
		MimeType:     mime,
		SizeBytes:    size,
		StorageKey:   key,
		ThumbnailKey: thumbKey,
		UploadedBy:   uploadedBy,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return Upload{}, err
	}
	telemetry.Info("upload.image", map[string]any{"id": u.ID, "size": size})
	return u, nil
}

// UploadResume validates and stores a pre-built resume PDF. The newest
// resume upload is the one served by the uploaded-resume download path.
func (s *Service) UploadResume(ctx context.Context, fileName, uploadedBy string, r io.Reader) (Upload, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Upload{}, fmt.Errorf("read resume: %w", err)
	}
	pages, err := pdfPageCount(data)
	if err != nil {
		return Upload{}, fmt.Errorf("%w: not a valid PDF", ErrInvalidInput)
	}

	key, size, _, err := s.Store.Save(ctx, "uploads/resumes", fileName, bytes.NewReader(data))
	if err != nil {
		return Upload{}, fmt.Errorf("store resume: %w", err)
	}

	u := Upload{
		ID:         uuid.NewString(),
		Kind:       KindResume,
		FileName:   fileName,
		MimeType:   "application/pdf",
		SizeBytes:  size,
		StorageKey: key,
		PageCount:  pages,
		UploadedBy: uploadedBy,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return Upload{}, err
	}
	telemetry.Info("upload.resume", map[string]any{"id": u.ID, "pages": pages})
	return u, nil
}

// OpenResume streams the most recently uploaded resume PDF.
func (s *Service) OpenResume(ctx context.Context) (io.ReadCloser, int64, error) {
	u, err := s.Repo.LatestByKind(ctx, KindResume)
	if err != nil {
		return nil, 0, err
	}
	rc, err := s.Store.Open(ctx, u.StorageKey)
	if err != nil {
		return nil, 0, err
	}
	return rc, u.SizeBytes, nil
}

func (s *Service) List(ctx context.Context, kind string) ([]Upload, error) {
	if kind != "" && kind != KindImage && kind != KindResume {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidInput, kind)
	}
	return s.Repo.List(ctx, kind)
}

// Delete removes the record and its stored files. Missing files are not
// an error; the record is authoritative.
func (s *Service) Delete(ctx context.Context, id string) error {
	u, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Store.Delete(ctx, u.StorageKey); err != nil {
		telemetry.Warn("upload.delete_file_failed", map[string]any{"id": id, "error": err.Error()})
	}
	if u.ThumbnailKey != "" {
		if err := s.Store.Delete(ctx, u.ThumbnailKey); err != nil {
			telemetry.Warn("upload.delete_thumbnail_failed", map[string]any{"id": id, "error": err.Error()})
		}
	}
	return nil
}

func pdfPageCount(data []byte) (int, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, err
	}
	return reader.NumPage(), nil
}

func thumbKeyFor(key string) string {
	if i := strings.LastIndex(key, "."); i > strings.LastIndex(key, "/") {
		key = key[:i]
	}
	return key + "_thumb.jpg"
}
