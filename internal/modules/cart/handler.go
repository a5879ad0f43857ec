package cart

import (
	"errors"
	"fmt"
	"net/http"

	"artgallery/internal/domain"
	"artgallery/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes expects a group running the session middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")
	{
		cart.GET("", h.List)
		cart.POST("", h.Add)
		cart.PATCH("", h.UpdateQuantity)
		cart.DELETE("", h.Remove)
	}
}

// List — GET /cart
func (h *Handler) List(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context(), c.GetString("session_id"))
	if err != nil {
		response.Internal(c, err, "Failed to fetch cart")
		return
	}
	response.Success(c, http.StatusOK, out)
}

// Add — POST /cart {artworkId, quantity?}
func (h *Handler) Add(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidRequest, "Invalid request body")
		return
	}

	item, err := h.svc.Add(c.Request.Context(), c.GetString("session_id"), req)
	if err != nil {
		h.handleError(c, err, "Failed to add to cart")
		return
	}
	response.Success(c, http.StatusCreated, item)
}

// UpdateQuantity — PATCH /cart {artworkId, quantity}
func (h *Handler) UpdateQuantity(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidRequest, "Invalid request body")
		return
	}

	item, err := h.svc.SetQuantity(c.Request.Context(), c.GetString("session_id"), req)
	if err != nil {
		h.handleError(c, err, "Failed to update cart quantity")
		return
	}
	if item == nil {
		response.Success(c, http.StatusOK, gin.H{"removed": true})
		return
	}
	response.Success(c, http.StatusOK, item)
}

// Remove — DELETE /cart?artworkId=
func (h *Handler) Remove(c *gin.Context) {
	if err := h.svc.Remove(c.Request.Context(), c.GetString("session_id"), c.Query("artworkId")); err != nil {
		h.handleError(c, err, "Failed to remove from cart")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"removed": true})
}

func (h *Handler) handleError(c *gin.Context, err error, internalMsg string) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, "Invalid cart request", verr.Fields)
	case errors.Is(err, ErrQuantityLimit):
		response.Error(c, http.StatusBadRequest, response.CodeInvalidRequest,
			fmt.Sprintf("At most %d copies of one artwork fit in the cart", domain.MaxCartQuantity))
	case errors.Is(err, ErrInvalidRequest):
		response.Error(c, http.StatusBadRequest, response.CodeInvalidRequest, "artworkId is required and quantity must be a positive integer")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Artwork not found")
	case errors.Is(err, ErrItemNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Cart item not found")
	default:
		response.Internal(c, err, internalMsg)
	}
}
