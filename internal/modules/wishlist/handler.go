package wishlist

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
	g := rg.Group("/wishlist")
	{
		g.GET("", h.List)
		g.POST("", h.Add)
		g.DELETE("", h.Remove)
	}
}

// List — GET /wishlist
func (h *Handler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context(), c.GetString("session_id"))
	if err != nil {
		response.Internal(c, err, "Failed to fetch wishlist")
		return
	}
	response.Success(c, http.StatusOK, items)
}

// Add — POST /wishlist {artworkId}. 201 on insert, 200 when already present.
func (h *Handler) Add(c *gin.Context) {
	var req AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidRequest, "Invalid request body")
		return
	}

	item, created, err := h.svc.Add(c.Request.Context(), c.GetString("session_id"), req.ArtworkID)
	if err != nil {
		handleError(c, err, "Failed to add to wishlist")
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	response.Success(c, status, item)
}

// Remove — DELETE /wishlist?artworkId=
func (h *Handler) Remove(c *gin.Context) {
	if err := h.svc.Remove(c.Request.Context(), c.GetString("session_id"), c.Query("artworkId")); err != nil {
		handleError(c, err, "Failed to remove from wishlist")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"removed": true})
}

func handleError(c *gin.Context, err error, internalMsg string) {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		response.Error(c, http.StatusBadRequest, response.CodeInvalidRequest, "Artwork ID is required")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Artwork not found")
	default:
		response.Internal(c, err, internalMsg)
	}
}
