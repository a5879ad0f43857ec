package follow

import (
	"errors"
	"net/http"

	"artgallery/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/follows")
	{
		g.GET("", h.List)
		g.POST("", h.Follow)
		g.DELETE("", h.Unfollow)
	}
}

// List — GET /follows
func (h *Handler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context(), c.GetString("session_id"))
	if err != nil {
		response.Internal(c, err, "Failed to fetch follows")
		return
	}
	response.Success(c, http.StatusOK, list)
}

// Follow — POST /follows {artistId}
func (h *Handler) Follow(c *gin.Context) {
	var req FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidRequest, "Invalid request body")
		return
	}

	f, created, err := h.svc.Follow(c.Request.Context(), c.GetString("session_id"), req.ArtistID)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			response.Error(c, http.StatusBadRequest, response.CodeInvalidRequest, "Artist ID is required")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "Artist not found")
		default:
			response.Internal(c, err, "Failed to follow artist")
		}
		return
	}
	if created {
		response.Success(c, http.StatusCreated, f)
		return
	}
	response.Success(c, http.StatusOK, f)
}

// Unfollow — DELETE /follows?artistId=
func (h *Handler) Unfollow(c *gin.Context) {
	err := h.svc.Unfollow(c.Request.Context(), c.GetString("session_id"), c.Query("artistId"))
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			response.Error(c, http.StatusBadRequest, response.CodeInvalidRequest, "Artist ID is required")
			return
		}
		response.Internal(c, err, "Failed to unfollow artist")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"removed": true})
}
