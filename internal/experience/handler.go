package experience

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
	rg.GET("/experience", h.list)
	rg.GET("/experience/:id", h.get)
	rg.POST("/experience", middleware.RequireAdmin(), h.create)
	rg.PUT("/experience/:id", middleware.RequireAdmin(), h.update)
	rg.DELETE("/experience/:id", middleware.RequireAdmin(), h.remove)
}

type entryRequest struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Current     bool     `json:"current"`
	Description []string `json:"description"`
	Skills      []string `json:"skills"`
	Order       int      `json:"order"`
}

type entryResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location,omitempty"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate,omitempty"`
	Current     bool      `json:"current"`
	Description []string  `json:"description"`
	Skills      []string  `json:"skills"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (r entryRequest) toModel() Entry {
	return Entry{
		Title:       r.Title,
		Company:     r.Company,
		Location:    r.Location,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Current:     r.Current,
		Description: r.Description,
		Skills:      r.Skills,
		Order:       r.Order,
	}
}

func toResponse(e Entry) entryResponse {
	description := e.Description
	if description == nil {
		description = []string{}
	}
	skills := e.Skills
	if skills == nil {
		skills = []string{}
	}
	return entryResponse{
		ID:          e.ID,
		Title:       e.Title,
		Company:     e.Company,
		Location:    e.Location,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Current:     e.Current,
		Description: description,
		Skills:      skills,
		Order:       e.Order,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (h *Handler) list(c *gin.Context) {
	entries, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list experience", nil)
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
			respond.Error(c, http.StatusNotFound, "not_found", "experience not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch experience", nil)
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
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create experience", nil)
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
			respond.Error(c, http.StatusNotFound, "not_found", "experience not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update experience", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(e))
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "experience not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete experience", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"deleted": true})
}
