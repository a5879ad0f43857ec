package catalog

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"artgallery/internal/pkg/cache"
	"artgallery/internal/pkg/response"
	"artgallery/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

/* ---------- ARTIST HANDLERS ---------- */

// ListArtists handles GET /api/v1/artists
func (h *Handler) ListArtists(c *gin.Context) {
	artists, err := h.service.ListArtists(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	setCacheControl(c, h.service.Policies().Days)
	response.Success(c, http.StatusOK, artists)
}

// GetArtist handles GET /api/v1/artists/:id
func (h *Handler) GetArtist(c *gin.Context) {
	artist, err := h.service.GetArtist(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	setCacheControl(c, h.service.Policies().Hours)
	response.Success(c, http.StatusOK, artist)
}

/* ---------- ARTWORK HANDLERS ---------- */

// ListArtworks handles GET /api/v1/artworks?category=&artistId=&currency=&minPrice=&maxPrice=&q=&sort=
func (h *Handler) ListArtworks(c *gin.Context) {
	f := repository.ArtworkFilters{
		Category: strings.TrimSpace(c.Query("category")),
		ArtistID: strings.TrimSpace(c.Query("artistId")),
		Currency: strings.ToUpper(strings.TrimSpace(c.Query("currency"))),
		Query:    strings.TrimSpace(c.Query("q")),
	}

	var ok bool
	if f.Sort, ok = repository.ParseArtworkSort(c.Query("sort")); !ok {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidRequest, "Unknown sort order")
		return
	}

	if v := c.Query("minPrice"); v != "" {
		val, err := strconv.ParseFloat(v, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, response.CodeInvalidRequest, "Invalid minPrice")
			return
		}
		f.MinPrice = val
	}
	if v := c.Query("maxPrice"); v != "" {
		val, err := strconv.ParseFloat(v, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, response.CodeInvalidRequest, "Invalid maxPrice")
			return
		}
		f.MaxPrice = val
	}

	artworks, err := h.service.ListArtworks(c.Request.Context(), f)
	if err != nil {
		handleError(c, err)
		return
	}
	setCacheControl(c, h.service.Policies().Hours)
	response.Success(c, http.StatusOK, ToArtworkResponses(artworks))
}

// GetArtwork handles GET /api/v1/artworks/:id
func (h *Handler) GetArtwork(c *gin.Context) {
	artwork, err := h.service.GetArtwork(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	setCacheControl(c, h.service.Policies().Hours)
	response.Success(c, http.StatusOK, ToArtworkResponse(*artwork))
}

// GetRelated handles GET /api/v1/artworks/:id/related?limit=
func (h *Handler) GetRelated(c *gin.Context) {
	limit := DefaultRelatedLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > MaxRelatedLimit {
			response.Error(c, http.StatusBadRequest, response.CodeInvalidRequest, "limit must be between 1 and 12")
			return
		}
		limit = n
	}

	artwork, err := h.service.GetArtwork(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	related, err := h.service.RelatedArtworks(c.Request.Context(), artwork.ArtistID, artwork.ID, limit)
	if err != nil {
		handleError(c, err)
		return
	}
	setCacheControl(c, h.service.Policies().Hours)
	response.Success(c, http.StatusOK, ToArtworkResponses(related))
}

// Stats handles GET /api/v1/catalog/stats
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	setCacheControl(c, h.service.Policies().Hours)
	response.Success(c, http.StatusOK, stats)
}

/* ---------- ROUTE REGISTRATION ---------- */

// RegisterRoutes registers read-only catalog routes. POST /artworks lives in
// the submission module.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	artists := r.Group("/artists")
	{
		artists.GET("", h.ListArtists)
		artists.GET("/:id", h.GetArtist)
	}

	artworks := r.Group("/artworks")
	{
		artworks.GET("", h.ListArtworks)
		artworks.GET("/:id", h.GetArtwork)
		artworks.GET("/:id/related", h.GetRelated)
	}

	r.GET("/catalog/stats", h.Stats)
}

/* ---------- ERROR HANDLING ---------- */

func setCacheControl(c *gin.Context, p cache.Policy) {
	c.Header("Cache-Control", p.CacheControl())
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		response.Error(c, http.StatusBadRequest, response.CodeInvalidRequest, "Invalid request")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Resource not found")
	default:
		response.Internal(c, err, "An internal error occurred")
	}
}
