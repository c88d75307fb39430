package skills

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
	rg.GET("/skills", h.list)
	rg.GET("/skills/:id", h.get)
	rg.POST("/skills", middleware.RequireAdmin(), h.create)
	rg.PUT("/skills/:id", middleware.RequireAdmin(), h.update)
	rg.DELETE("/skills/:id", middleware.RequireAdmin(), h.remove)
}

type categoryRequest struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

type categoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Skills    []string  `json:"skills"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toResponse(cat Category) categoryResponse {
	skills := cat.Skills
	if skills == nil {
		skills = []string{}
	}
	return categoryResponse{
		ID:        cat.ID,
		Name:      cat.Name,
		Skills:    skills,
		CreatedAt: cat.CreatedAt,
		UpdatedAt: cat.UpdatedAt,
	}
}

func (h *Handler) list(c *gin.Context) {
	cats, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list skills", nil)
		return
	}
	resp := make([]categoryResponse, 0, len(cats))
	for _, cat := range cats {
		resp = append(resp, toResponse(cat))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) get(c *gin.Context) {
	cat, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "skill category not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch skill category", nil)
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(cat))
}

func (h *Handler) create(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	cat, err := h.Svc.Create(c.Request.Context(), Category{Name: req.Name, Skills: req.Skills})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create skill category", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, toResponse(cat))
}

func (h *Handler) update(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	cat, err := h.Svc.Update(c.Request.Context(), c.Param("id"), Category{Name: req.Name, Skills: req.Skills})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "skill category not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update skill category", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(cat))
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "skill category not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete skill category", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"deleted": true})
}
