package resumetemplates

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/james-eo/portfolio/internal/shared/server/middleware"
	"github.com/james-eo/portfolio/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resume/templates", h.list)
	rg.POST("/resume/templates", middleware.RequireAdmin(), h.create)
	rg.GET("/resume/templates/:id", h.get)
	rg.PUT("/resume/templates/:id", middleware.RequireAdmin(), h.update)
	rg.DELETE("/resume/templates/:id", middleware.RequireAdmin(), h.remove)
	rg.POST("/resume/templates/:id/rate", h.rate)
	rg.GET("/resume/templates/:id/ratings", h.ratings)
	rg.POST("/resume/templates/:id/download", h.download)
}

type templateRequest struct {
	Name         string       `json:"name"`
	DisplayName  string       `json:"displayName"`
	Description  string       `json:"description"`
	Category     string       `json:"category"`
	IsDefault    bool         `json:"isDefault"`
	Data         TemplateData `json:"templateData"`
	PreviewImage string       `json:"previewImage"`
	Tags         []string     `json:"tags"`
}

type templateResponse struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	DisplayName   string       `json:"displayName"`
	Description   string       `json:"description,omitempty"`
	Category      string       `json:"category"`
	IsActive      bool         `json:"isActive"`
	IsDefault     bool         `json:"isDefault"`
	Data          TemplateData `json:"templateData"`
	PreviewImage  string       `json:"previewImage,omitempty"`
	DownloadCount int          `json:"downloadCount"`
	Rating        ratingStats  `json:"rating"`
	Tags          []string     `json:"tags"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

type ratingStats struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type ratingResponse struct {
	ID        string    `json:"id"`
	Rating    int       `json:"rating"`
	Review    string    `json:"review,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toResponse(t Template) templateResponse {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return templateResponse{
		ID:            t.ID,
		Name:          t.Name,
		DisplayName:   t.DisplayName,
		Description:   t.Description,
		Category:      t.Category,
		IsActive:      t.IsActive,
		IsDefault:     t.IsDefault,
		Data:          t.Data,
		PreviewImage:  t.PreviewImage,
		DownloadCount: t.DownloadCount,
		Rating:        ratingStats{Average: t.RatingAverage, Count: t.RatingCount},
		Tags:          tags,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func (h *Handler) list(c *gin.Context) {
	f := Filter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
		Limit:    intQuery(c, "limit", 20),
		Offset:   intQuery(c, "offset", 0),
	}
	if tags := c.Query("tags"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				f.Tags = append(f.Tags, tag)
			}
		}
	}
	if c.Query("includeInactive") == "true" {
		f.IncludeInactive = true
	}

	p := middleware.PrincipalFromContext(c)
	templates, total, err := h.Svc.List(c.Request.Context(), f, p)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list templates", nil)
		return
	}

	items := make([]templateResponse, 0, len(templates))
	for _, t := range templates {
		items = append(items, toResponse(t))
	}
	respond.JSON(c, http.StatusOK, gin.H{
		"templates": items,
		"total":     total,
		"limit":     f.Limit,
		"offset":    f.Offset,
	})
}

func (h *Handler) get(c *gin.Context) {
	p := middleware.PrincipalFromContext(c)
	t, err := h.Svc.Get(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "template not found", nil)
		case errors.Is(err, ErrForbidden):
			respond.Error(c, http.StatusForbidden, "forbidden", "template is not available", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch template", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(t))
}

func (h *Handler) create(c *gin.Context) {
	var req templateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	t, err := h.Svc.Create(c.Request.Context(), req.toModel(), middleware.UserIDFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrAlreadyExists):
			respond.Error(c, http.StatusBadRequest, "validation_error", "template name already in use", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create template", nil)
		}
		return
	}
	respond.JSON(c, http.StatusCreated, toResponse(t))
}

func (r templateRequest) toModel() Template {
	return Template{
		Name:         r.Name,
		DisplayName:  r.DisplayName,
		Description:  r.Description,
		Category:     r.Category,
		IsDefault:    r.IsDefault,
		Data:         r.Data,
		PreviewImage: r.PreviewImage,
		Tags:         r.Tags,
	}
}

func (h *Handler) update(c *gin.Context) {
	var req templateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	t, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.toModel())
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "template not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update template", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(t))
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "template not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete template", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"deactivated": true})
}

type rateRequest struct {
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

func (h *Handler) rate(c *gin.Context) {
	var req rateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	p := middleware.PrincipalFromContext(c)
	t, err := h.Svc.Rate(c.Request.Context(), c.Param("id"), p, req.Rating, req.Review)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "template not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to rate template", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{
		"rating": ratingStats{Average: t.RatingAverage, Count: t.RatingCount},
	})
}

func (h *Handler) ratings(c *gin.Context) {
	limit := intQuery(c, "limit", 20)
	offset := intQuery(c, "offset", 0)

	items, total, err := h.Svc.Ratings(c.Request.Context(), c.Param("id"), limit, offset)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "template not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list ratings", nil)
		return
	}

	resp := make([]ratingResponse, 0, len(items))
	for _, r := range items {
		resp = append(resp, ratingResponse{ID: r.ID, Rating: r.Score, Review: r.Review, CreatedAt: r.CreatedAt})
	}
	respond.JSON(c, http.StatusOK, gin.H{
		"ratings": resp,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

func (h *Handler) download(c *gin.Context) {
	if err := h.Svc.RecordDownload(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "template not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to record download", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"recorded": true})
}

func intQuery(c *gin.Context, name string, def int) int {
	v := c.Query(name)
	if v == "" {
		return def
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed < 0 {
		return def
	}
	return parsed
}
