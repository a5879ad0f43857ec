package review

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
	rg.GET("/reviews", h.List)
	rg.POST("/reviews", h.Create)
}

// Create — POST /reviews {artworkId, userName, rating, comment}
func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidRequest, "Invalid request body")
		return
	}

	rv, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, "Missing required fields", verr.Fields)
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "Artwork not found")
		default:
			response.Internal(c, err, "Failed to create review")
		}
		return
	}

	response.Success(c, http.StatusCreated, rv)
}

// List — GET /reviews?artworkId=
func (h *Handler) List(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context(), c.Query("artworkId"))
	if err != nil {
		response.Internal(c, err, "Failed to fetch reviews")
		return
	}
	response.Success(c, http.StatusOK, out)
}
