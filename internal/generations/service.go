package generations

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/james-eo/portfolio/internal/pdf"
	"github.com/james-eo/portfolio/internal/resumetemplates"
	"github.com/james-eo/portfolio/internal/shared/metrics"
	"github.com/james-eo/portfolio/internal/shared/principal"
	"github.com/james-eo/portfolio/internal/shared/storage/object"
	"github.com/james-eo/portfolio/internal/shared/telemetry"
	"github.com/james-eo/portfolio/resume/model"
	"github.com/james-eo/portfolio/resume/render"
)

// Service runs the generation pipeline: aggregate, render, print,
// store, record. Failures after the record exists land it in failed
// with the reason captured server-side only.
type Service struct {
	Repo       Repo
	Templates  *resumetemplates.Service
	Aggregator *Aggregator
	Renderer   pdf.Renderer
	Store      object.ObjectStore
	Metrics    *metrics.Registry
	TTL        time.Duration
}

// Generate produces a resume PDF for the caller. The record is created
// pending before any rendering starts, so a crash mid-render leaves an
// auditable row.
func (s *Service) Generate(ctx context.Context, p principal.Principal, templateID string, cust model.Customizations) (Generation, error) {
	if templateID == "" {
		return Generation{}, fmt.Errorf("%w: templateId is required", ErrInvalidInput)
	}
	if err := validateCustomizations(cust); err != nil {
		return Generation{}, err
	}

	tmpl, err := s.Templates.GetActive(ctx, templateID)
	if err != nil {
		if errors.Is(err, resumetemplates.ErrNotFound) {
			return Generation{}, fmt.Errorf("%w: template not found or inactive", ErrNotFound)
		}
		return Generation{}, err
	}

	snap, err := s.Aggregator.Snapshot(ctx)
	if err != nil {
		return Generation{}, fmt.Errorf("aggregate content: %w", err)
	}

	merged := mergeCustomizations(tmpl, cust)
	now := time.Now().UTC()
	g := Generation{
		ID:             uuid.NewString(),
		UserID:         p.UserID,
		SessionID:      p.SessionID,
		TemplateID:     templateID,
		Snapshot:       snap,
		Customizations: merged,
		Status:         StatusPending,
		ExpiresAt:      now.Add(s.ttl()),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Repo.Create(ctx, g); err != nil {
		return Generation{}, fmt.Errorf("create generation: %w", err)
	}
	s.Metrics.IncGenerationStarted()

	fileKey, fileSize, err := s.renderAndStore(ctx, g.ID, tmpl.Category, snap, merged)
	if err != nil {
		s.fail(ctx, g.ID, err)
		return Generation{}, ErrRenderFailed
	}

	generatedAt := time.Now().UTC()
	if err := s.Repo.MarkGenerated(ctx, g.ID, fileKey, fileSize, generatedAt); err != nil {
		s.fail(ctx, g.ID, err)
		return Generation{}, ErrRenderFailed
	}
	s.Metrics.IncGenerationCompleted()
	s.Metrics.ObserveRenderDuration(generatedAt.Sub(now))

	if err := s.Templates.RecordDownload(ctx, templateID); err != nil {
		telemetry.Warn("generation.count_download_failed", map[string]any{
			"template_id": templateID,
			"error":       err.Error(),
		})
	}

	g.Status = StatusGenerated
	g.FileKey = fileKey
	g.FileSize = fileSize
	g.GeneratedAt = &generatedAt
	return g, nil
}

func (s *Service) renderAndStore(ctx context.Context, id, category string, snap model.Snapshot, cust model.Customizations) (string, int64, error) {
	html, err := render.Render(category, snap, cust)
	if err != nil {
		return "", 0, fmt.Errorf("render html: %w", err)
	}

	pdfBytes, err := s.Renderer.RenderPDF(ctx, html)
	if err != nil {
		return "", 0, fmt.Errorf("print pdf: %w", err)
	}

	fileKey := "generations/" + id + ".pdf"
	size, err := s.Store.SaveWithKey(ctx, fileKey, "application/pdf", bytes.NewReader(pdfBytes))
	if err != nil {
		return "", 0, fmt.Errorf("store pdf: %w", err)
	}
	return fileKey, size, nil
}

func (s *Service) fail(ctx context.Context, id string, cause error) {
	s.Metrics.IncGenerationFailed()
	telemetry.Error("generation.failed", map[string]any{
		"generation_id":     id,
		"status_transition": StatusPending + "->" + StatusFailed,
		"error":             cause.Error(),
	})
	if err := s.Repo.MarkFailed(ctx, id, cause.Error()); err != nil {
		telemetry.Error("generation.mark_failed_error", map[string]any{
			"generation_id": id,
			"error":         err.Error(),
		})
	}
}

// Open returns the generation and its PDF stream for download or
// preview. Records that are not generated (or are expired) refuse
// without touching storage.
func (s *Service) Open(ctx context.Context, id string, markDownloaded bool) (Generation, io.ReadCloser, error) {
	g, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Generation{}, nil, err
	}
	now := time.Now().UTC()
	if !g.Downloadable(now) {
		return Generation{}, nil, fmt.Errorf("%w: status is %s", ErrNotReady, g.EffectiveStatus(now))
	}

	rc, err := s.Store.Open(ctx, g.FileKey)
	if err != nil {
		return Generation{}, nil, fmt.Errorf("open stored pdf: %w", err)
	}

	if markDownloaded {
		if err := s.Repo.SetDownloaded(ctx, id, now); err != nil {
			telemetry.Warn("generation.set_downloaded_failed", map[string]any{
				"generation_id": id,
				"error":         err.Error(),
			})
		}
		s.Metrics.IncDownloadServed()
	}
	return g, rc, nil
}

// List returns the caller's generations, newest first.
func (s *Service) List(ctx context.Context, p principal.Principal) ([]Generation, error) {
	if p.UserID == "" && p.SessionID == "" {
		return nil, nil
	}
	return s.Repo.ListByOwner(ctx, p.UserID, p.SessionID)
}

// Delete removes a generation and its file. Only the owner may delete;
// file removal failures do not block record deletion.
func (s *Service) Delete(ctx context.Context, p principal.Principal, id string) error {
	g, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !p.Owns(g.UserID, g.SessionID) {
		return ErrForbidden
	}

	if g.FileKey != "" {
		if err := s.Store.Delete(ctx, g.FileKey); err != nil {
			telemetry.Warn("generation.delete_file_failed", map[string]any{
				"generation_id": id,
				"file_key":      g.FileKey,
				"error":         err.Error(),
			})
		}
	}
	return s.Repo.Delete(ctx, id)
}

// RenderAdhoc renders the current portfolio content with a built-in
// category with no persisted record.
func (s *Service) RenderAdhoc(ctx context.Context, category string) ([]byte, error) {
	snap, err := s.Aggregator.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("aggregate content: %w", err)
	}
	html, err := render.Render(category, snap, model.Customizations{})
	if err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	pdfBytes, err := s.Renderer.RenderPDF(ctx, html)
	if err != nil {
		return nil, fmt.Errorf("print pdf: %w", err)
	}
	return pdfBytes, nil
}

func (s *Service) ttl() time.Duration {
	if s.TTL <= 0 {
		return 24 * time.Hour
	}
	return s.TTL
}

// validateCustomizations rejects unknown override values up front so a
// caller typo reads as bad input rather than a render failure.
func validateCustomizations(cust model.Customizations) error {
	if cust.ColorScheme != "" && !render.ValidColorScheme(cust.ColorScheme) {
		return fmt.Errorf("%w: unknown color scheme %q", ErrInvalidInput, cust.ColorScheme)
	}
	if cust.Typography != "" && !render.ValidTypography(cust.Typography) {
		return fmt.Errorf("%w: unknown typography %q", ErrInvalidInput, cust.Typography)
	}
	for _, name := range cust.SectionOrder {
		if !render.ValidSection(name) {
			return fmt.Errorf("%w: unknown section %q", ErrInvalidInput, name)
		}
	}
	return nil
}

// mergeCustomizations layers request overrides on top of the template's
// stored layout parameters.
func mergeCustomizations(tmpl resumetemplates.Template, cust model.Customizations) model.Customizations {
	merged := model.Customizations{
		ColorScheme:       tmpl.Data.ColorScheme,
		Typography:        tmpl.Data.Typography.FontFamily,
		SectionOrder:      tmpl.Data.SectionOrder,
		SectionVisibility: tmpl.Data.SectionVisibility,
	}
	if cust.ColorScheme != "" {
		merged.ColorScheme = cust.ColorScheme
	}
	if cust.Typography != "" {
		merged.Typography = cust.Typography
	}
	if len(cust.SectionOrder) > 0 {
		merged.SectionOrder = cust.SectionOrder
	}
	if len(cust.SectionVisibility) > 0 {
		vis := make(map[string]bool, len(merged.SectionVisibility)+len(cust.SectionVisibility))
		for k, v := range merged.SectionVisibility {
			vis[k] = v
		}
		for k, v := range cust.SectionVisibility {
			vis[k] = v
		}
		merged.SectionVisibility = vis
	}
	return merged
}
