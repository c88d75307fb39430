package profile

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/james-eo/portfolio/internal/shared/server/middleware"
	"github.com/james-eo/portfolio/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the about routes. Reads are public, writes
// require admin.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/about", h.get)
	rg.POST("/about", middleware.RequireAdmin(), h.create)
	rg.PUT("/about", middleware.RequireAdmin(), h.put)
	rg.DELETE("/about", middleware.RequireAdmin(), h.remove)
}

type profileRequest struct {
	Name     string      `json:"name"`
	Title    string      `json:"title"`
	Summary  string      `json:"summary"`
	Location string      `json:"location"`
	Email    string      `json:"email"`
	Phone    string      `json:"phone"`
	Social   SocialLinks `json:"social"`
}

type profileResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Title     string      `json:"title"`
	Summary   string      `json:"summary"`
	Location  string      `json:"location,omitempty"`
	Email     string      `json:"email,omitempty"`
	Phone     string      `json:"phone,omitempty"`
	Social    SocialLinks `json:"social"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func toResponse(p Profile) profileResponse {
	return profileResponse{
		ID:        p.ID,
		Name:      p.Name,
		Title:     p.Title,
		Summary:   p.Summary,
		Location:  p.Location,
		Email:     p.Email,
		Phone:     p.Phone,
		Social:    p.Social,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (r profileRequest) toModel() Profile {
	return Profile{
		Name:     r.Name,
		Title:    r.Title,
		Summary:  r.Summary,
		Location: r.Location,
		Email:    r.Email,
		Phone:    r.Phone,
		Social:   r.Social,
	}
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "profile not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch profile", nil)
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(p))
}

func (h *Handler) create(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	p, err := h.Svc.Create(c.Request.Context(), req.toModel())
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrAlreadyExists):
			respond.Error(c, http.StatusBadRequest, "validation_error", "profile already exists, use PUT to update", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create profile", nil)
		}
		return
	}
	respond.JSON(c, http.StatusCreated, toResponse(p))
}

func (h *Handler) put(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	p, err := h.Svc.Put(c.Request.Context(), req.toModel())
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update profile", nil)
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(p))
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context()); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "profile not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete profile", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"deleted": true})
}
