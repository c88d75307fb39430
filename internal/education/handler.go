package education

import (
	"errors"
	"net/http"
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
	rg.GET("/education", h.list)
	rg.GET("/education/:id", h.get)
	rg.POST("/education", middleware.RequireAdmin(), h.create)
	rg.PUT("/education/:id", middleware.RequireAdmin(), h.update)
	rg.DELETE("/education/:id", middleware.RequireAdmin(), h.remove)
}

type entryRequest struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	Details     string `json:"details"`
	Order       int    `json:"order"`
}

type entryResponse struct {
	ID          string    `json:"id"`
	Degree      string    `json:"degree"`
	Institution string    `json:"institution"`
	Year        string    `json:"year"`
	Details     string    `json:"details,omitempty"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (r entryRequest) toModel() Entry {
	return Entry{
		Degree:      r.Degree,
		Institution: r.Institution,
		Year:        r.Year,
		Details:     r.Details,
		Order:       r.Order,
	}
}

func toResponse(e Entry) entryResponse {
	return entryResponse{
		ID:          e.ID,
		Degree:      e.Degree,
		Institution: e.Institution,
		Year:        e.Year,
		Details:     e.Details,
		Order:       e.Order,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (h *Handler) list(c *gin.Context) {
	entries, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list education", nil)
		return
	}
	resp := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, toResponse(e))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) get(c *gin.Context) {
	e, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "education not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch education", nil)
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(e))
}

func (h *Handler) create(c *gin.Context) {
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	e, err := h.Svc.Create(c.Request.Context(), req.toModel())
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create education", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, toResponse(e))
}

func (h *Handler) update(c *gin.Context) {
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	e, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.toModel())
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "education not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update education", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(e))
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "education not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete education", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"deleted": true})
}
