package uploads

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/james-eo/portfolio/internal/shared/server/middleware"
	"github.com/james-eo/portfolio/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10 MiB

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/uploads/images", middleware.RequireAdmin(), h.uploadImage)
	rg.POST("/uploads/resume", middleware.RequireAdmin(), h.uploadResume)
	rg.GET("/uploads", middleware.RequireAdmin(), h.list)
	rg.DELETE("/uploads/:id", middleware.RequireAdmin(), h.remove)
}

type uploadResponse struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	FileName     string    `json:"fileName"`
	MimeType     string    `json:"mimeType"`
	SizeBytes    int64     `json:"sizeBytes"`
	StorageKey   string    `json:"storageKey"`
	ThumbnailKey string    `json:"thumbnailKey,omitempty"`
	PageCount    int       `json:"pageCount,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toResponse(u Upload) uploadResponse {
	return uploadResponse{
		ID:           u.ID,
		Kind:         u.Kind,
		FileName:     u.FileName,
		MimeType:     u.MimeType,
		SizeBytes:    u.SizeBytes,
		StorageKey:   u.StorageKey,
		ThumbnailKey: u.ThumbnailKey,
		PageCount:    u.PageCount,
		CreatedAt:    u.CreatedAt,
	}
}

func (h *Handler) uploadImage(c *gin.Context) {
	h.upload(c, h.Svc.UploadImage)
}

func (h *Handler) uploadResume(c *gin.Context) {
	h.upload(c, h.Svc.UploadResume)
}

type saveFunc func(ctx context.Context, fileName, uploadedBy string, r io.Reader) (Upload, error)

func (h *Handler) upload(c *gin.Context, save saveFunc) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "missing file field", nil)
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unreadable file", nil)
		return
	}
	defer f.Close()

	u, err := save(c.Request.Context(), fileHeader.Filename, middleware.UserIDFromContext(c), f)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store upload", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, toResponse(u))
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context(), c.Query("kind"))
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list uploads", nil)
		return
	}
	resp := make([]uploadResponse, 0, len(items))
	for _, u := range items {
		resp = append(resp, toResponse(u))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "upload not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete upload", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"deleted": true})
}
