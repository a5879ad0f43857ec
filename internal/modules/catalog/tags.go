package catalog

// Cache tags. Collection tags cover every cached listing of that kind, entity
// tags cover reads about one artist or artwork.
const (
	TagArtworks        = "get-artworks"
	TagArtists         = "get-artists"
	TagArtist          = "get-artist"
	TagArtwork         = "get-artwork"
	TagRelatedArtworks = "get-related-artworks"
)

func ArtistTag(id string) string  { return "artist-" + id }
func ArtworkTag(id string) string { return "artwork-" + id }
