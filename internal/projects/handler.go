package projects

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
	rg.GET("/projects", h.list)
	rg.GET("/projects/:id", h.get)
	rg.POST("/projects", middleware.RequireAdmin(), h.create)
	rg.PUT("/projects/:id", middleware.RequireAdmin(), h.update)
	rg.DELETE("/projects/:id", middleware.RequireAdmin(), h.remove)
}

type projectRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Outcomes     []string `json:"outcomes"`
	Technologies []string `json:"technologies"`
	GitHubURL    string   `json:"githubUrl"`
	LiveURL      string   `json:"liveUrl"`
	ImageURL     string   `json:"imageUrl"`
	Featured     bool     `json:"featured"`
	Order        int      `json:"order"`
}

type projectResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Outcomes     []string  `json:"outcomes"`
	Technologies []string  `json:"technologies"`
	GitHubURL    string    `json:"githubUrl,omitempty"`
	LiveURL      string    `json:"liveUrl,omitempty"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	Featured     bool      `json:"featured"`
	Order        int       `json:"order"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (r projectRequest) toModel() Project {
	return Project{
		Title:        r.Title,
		Description:  r.Description,
		Outcomes:     r.Outcomes,
		Technologies: r.Technologies,
		GitHubURL:    r.GitHubURL,
		LiveURL:      r.LiveURL,
		ImageURL:     r.ImageURL,
		Featured:     r.Featured,
		Order:        r.Order,
	}
}

func toResponse(p Project) projectResponse {
	outcomes := p.Outcomes
	if outcomes == nil {
		outcomes = []string{}
	}
	technologies := p.Technologies
	if technologies == nil {
		technologies = []string{}
	}
	return projectResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Outcomes:     outcomes,
		Technologies: technologies,
		GitHubURL:    p.GitHubURL,
		LiveURL:      p.LiveURL,
		ImageURL:     p.ImageURL,
		Featured:     p.Featured,
		Order:        p.Order,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list projects", nil)
		return
	}
	resp := make([]projectResponse, 0, len(items))
	for _, p := range items {
		resp = append(resp, toResponse(p))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "project not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch project", nil)
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(p))
}

func (h *Handler) create(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), req.toModel())
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create project", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, toResponse(p))
}

func (h *Handler) update(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	p, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.toModel())
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "project not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update project", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(p))
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "project not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete project", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"deleted": true})
}
