package cart

import (
	"artgallery/internal/domain"
	"artgallery/internal/pkg/currency"
)

// Quantity limits mirror domain.MaxCartQuantity.
type AddItemRequest struct {
	ArtworkID string `json:"artworkId" validate:"required"`
	Quantity  *int   `json:"quantity,omitempty" validate:"omitempty,gte=1,lte=999"`
}

// UpdateQuantityRequest: zero or a negative quantity removes the item.
type UpdateQuantityRequest struct {
	ArtworkID string `json:"artworkId" validate:"required"`
	Quantity  *int   `json:"quantity" validate:"required,lte=999"`
}

// CartResponse is the cart as shown to the client.
type CartResponse struct {
	Items      []domain.CartItem         `json:"items"`
	TotalItems int                       `json:"totalItems"`
	Totals     map[currency.Code]float64 `json:"totals"`
}

// NewCartResponse sums quantities and prices per currency.
func NewCartResponse(items []domain.CartItem) CartResponse {
	if items == nil {
		items = []domain.CartItem{}
	}
	out := CartResponse{Items: items, Totals: make(map[currency.Code]float64)}
	for _, it := range items {
		out.TotalItems += it.Quantity
		if it.Artwork == nil {
			continue
		}
		out.Totals[it.Artwork.Currency] += it.Artwork.Price * float64(it.Quantity)
	}
	return out
}
