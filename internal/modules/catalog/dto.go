package catalog

import (
	"artgallery/internal/domain"
	"artgallery/internal/repository"
)

type StatsResponse struct {
	TotalArtists  int64                      `json:"totalArtists"`
	TotalArtworks int64                      `json:"totalArtworks"`
	Categories    []repository.CategoryCount `json:"categories"`
}

// ArtworkResponse adds the display price to an artwork.
type ArtworkResponse struct {
	domain.Artwork
	FormattedPrice string `json:"formattedPrice"`
}

func ToArtworkResponse(a domain.Artwork) ArtworkResponse {
	return ArtworkResponse{Artwork: a, FormattedPrice: a.FormattedPrice()}
}

func ToArtworkResponses(list []domain.Artwork) []ArtworkResponse {
	out := make([]ArtworkResponse, 0, len(list))
	for _, a := range list {
		out = append(out, ToArtworkResponse(a))
	}
	return out
}
