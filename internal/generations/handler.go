package generations

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/james-eo/portfolio/internal/resumetemplates"
	"github.com/james-eo/portfolio/internal/shared/server/middleware"
	"github.com/james-eo/portfolio/internal/shared/server/respond"
	"github.com/james-eo/portfolio/resume/model"
)

// ResumeSource streams the admin-uploaded canonical resume PDF, served
// under the "uploaded" template name.
type ResumeSource interface {
	OpenResume(ctx context.Context) (io.ReadCloser, int64, error)
}

// Handler wires the generation routes.
type Handler struct {
	Svc      *Service
	Uploaded ResumeSource
}

func NewHandler(svc *Service, uploaded ResumeSource) *Handler {
	return &Handler{Svc: svc, Uploaded: uploaded}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resume/generate", h.generate)
	rg.GET("/resume/download/:id", h.download)
	rg.GET("/resume/preview/:id", h.preview)
	rg.GET("/resume/generations", h.list)
	rg.DELETE("/resume/generations/:id", h.remove)
	rg.GET("/resume/:template", h.direct)
}

type generateRequest struct {
	TemplateID     string               `json:"templateId"`
	Customizations model.Customizations `json:"customizations"`
}

type generateResponse struct {
	ID          string    `json:"id"`
	DownloadURL string    `json:"downloadUrl"`
	PreviewURL  string    `json:"previewUrl"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	p := middleware.PrincipalFromContext(c)
	g, err := h.Svc.Generate(c.Request.Context(), p, req.TemplateID, req.Customizations)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "template not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "generation_failed", "failed to generate resume", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, generateResponse{
		ID:          g.ID,
		DownloadURL: "/api/v1/resume/download/" + g.ID,
		PreviewURL:  "/api/v1/resume/preview/" + g.ID,
		ExpiresAt:   g.ExpiresAt,
	})
}

func (h *Handler) download(c *gin.Context) {
	h.stream(c, true)
}

func (h *Handler) preview(c *gin.Context) {
	h.stream(c, false)
}

func (h *Handler) stream(c *gin.Context, attachment bool) {
	id := c.Param("id")
	g, rc, err := h.Svc.Open(c.Request.Context(), id, attachment)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "generation not found", nil)
		case errors.Is(err, ErrNotReady):
			respond.Error(c, http.StatusBadRequest, "not_ready", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to open resume", nil)
		}
		return
	}
	defer rc.Close()

	fileName := "resume-" + g.ID + ".pdf"
	disposition := "attachment"
	if !attachment {
		fileName = "resume-preview-" + g.ID + ".pdf"
		disposition = "inline"
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, fileName))
	c.Header("Content-Length", strconv.FormatInt(g.FileSize, 10))
	c.Status(http.StatusOK)
	io.Copy(c.Writer, rc)
}

type generationResponse struct {
	ID           string     `json:"id"`
	TemplateID   string     `json:"templateId"`
	Status       string     `json:"status"`
	FileSize     int64      `json:"fileSize,omitempty"`
	GeneratedAt  *time.Time `json:"generatedAt,omitempty"`
	DownloadedAt *time.Time `json:"downloadedAt,omitempty"`
	ExpiresAt    time.Time  `json:"expiresAt"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func (h *Handler) list(c *gin.Context) {
	p := middleware.PrincipalFromContext(c)
	items, err := h.Svc.List(c.Request.Context(), p)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list generations", nil)
		return
	}

	now := time.Now().UTC()
	resp := make([]generationResponse, 0, len(items))
	for _, g := range items {
		resp = append(resp, generationResponse{
			ID:           g.ID,
			TemplateID:   g.TemplateID,
			Status:       g.EffectiveStatus(now),
			FileSize:     g.FileSize,
			GeneratedAt:  g.GeneratedAt,
			DownloadedAt: g.DownloadedAt,
			ExpiresAt:    g.ExpiresAt,
			CreatedAt:    g.CreatedAt,
		})
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) remove(c *gin.Context) {
	p := middleware.PrincipalFromContext(c)
	if err := h.Svc.Delete(c.Request.Context(), p, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "generation not found", nil)
		case errors.Is(err, ErrForbidden):
			respond.Error(c, http.StatusForbidden, "forbidden", "not your generation", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete generation", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"deleted": true})
}

// direct renders a built-in category by name with no persisted record.
// The "uploaded" name streams the admin-uploaded PDF instead.
func (h *Handler) direct(c *gin.Context) {
	name := c.Param("template")
	wantDownload := c.Query("download") == "true"

	if wantDownload && !middleware.PrincipalFromContext(c).Admin() {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "admin access required for download", nil)
		return
	}

	if name == "uploaded" {
		h.streamUploaded(c, wantDownload)
		return
	}

	if !validDirectName(name) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unknown template name", nil)
		return
	}

	pdfBytes, err := h.Svc.RenderAdhoc(c.Request.Context(), name)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "generation_failed", "failed to render resume", nil)
		return
	}

	writePDF(c, pdfBytes, "resume-"+name+".pdf", wantDownload)
}

func (h *Handler) streamUploaded(c *gin.Context, wantDownload bool) {
	if h.Uploaded == nil {
		respond.Error(c, http.StatusNotFound, "not_found", "no uploaded resume available", nil)
		return
	}
	rc, size, err := h.Uploaded.OpenResume(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "no uploaded resume available", nil)
		return
	}
	defer rc.Close()

	disposition := "inline"
	if wantDownload {
		disposition = "attachment"
	}
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, "resume.pdf"))
	if size > 0 {
		c.Header("Content-Length", strconv.FormatInt(size, 10))
	}
	c.Status(http.StatusOK)
	io.Copy(c.Writer, rc)
}

func writePDF(c *gin.Context, data []byte, fileName string, attachment bool) {
	disposition := "inline"
	if attachment {
		disposition = "attachment"
	}
	c.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, fileName))
	c.Data(http.StatusOK, "application/pdf", data)
}

func validDirectName(name string) bool {
	for _, cat := range resumetemplates.BuiltinCategories {
		if cat == name {
			return true
		}
	}
	return false
}
