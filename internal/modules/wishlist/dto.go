package wishlist

type AddRequest struct {
	ArtworkID string `json:"artworkId"`
}
