package follow

type FollowRequest struct {
	ArtistID string `json:"artistId"`
}
