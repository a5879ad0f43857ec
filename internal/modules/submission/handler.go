package submission

import (
	"errors"
	"net/http"

	"artgallery/internal/modules/catalog"
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
	rg.POST("/artworks", h.Submit)
}

// Submit — POST /artworks
// Creates the artwork and, if no artist matches by name or instagram, the artist.
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidRequest, "Invalid request body")
		return
	}

	res, err := h.svc.Submit(c.Request.Context(), req)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, "Invalid submission", verr.Fields)
			return
		}
		response.Internal(c, err, "Failed to create artwork")
		return
	}

	response.Success(c, http.StatusCreated, catalog.ToArtworkResponse(*res.Artwork))
}
