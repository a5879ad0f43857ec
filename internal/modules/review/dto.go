package review

import "artgallery/internal/domain"

type CreateReviewRequest struct {
	ArtworkID string `json:"artworkId" validate:"required"`
	UserName  string `json:"userName" validate:"required,max=100"`
	Rating    int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string `json:"comment" validate:"required,max=2000"`
}

type ListResponse struct {
	Reviews       []domain.Review `json:"reviews"`
	AverageRating float64         `json:"averageRating"`
	Count         int64           `json:"count"`
}
