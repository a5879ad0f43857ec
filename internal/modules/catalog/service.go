package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"artgallery/internal/domain"
	"artgallery/internal/pkg/cache"
	"artgallery/internal/repository"

	"go.uber.org/zap"
)

const (
	DefaultRelatedLimit = 3
	MaxRelatedLimit     = 12
)

type ArtistReader interface {
	List(ctx context.Context) ([]domain.ArtistWithCount, error)
	GetByID(ctx context.Context, id string) (*domain.Artist, error)
	Count(ctx context.Context) (int64, error)
}

type ArtworkReader interface {
	List(ctx context.Context, f repository.ArtworkFilters) ([]domain.Artwork, error)
	GetByID(ctx context.Context, id string) (*domain.Artwork, error)
	Related(ctx context.Context, artistID, excludeID string, limit int) ([]domain.Artwork, error)
	Count(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context) ([]repository.CategoryCount, error)
}

// Policies groups the two cache lifetimes used by catalog reads.
type Policies struct {
	Hours cache.Policy
	Days  cache.Policy
}

type Service struct {
	artists  ArtistReader
	artworks ArtworkReader
	cache    *cache.Cache
	policies Policies
	log      *zap.Logger
}

func NewService(artists ArtistReader, artworks ArtworkReader, c *cache.Cache, p Policies, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{artists: artists, artworks: artworks, cache: c, policies: p, log: log}
}

func (s *Service) Policies() Policies { return s.policies }

/* ---------- ARTISTS ---------- */

func (s *Service) ListArtists(ctx context.Context) ([]domain.ArtistWithCount, error) {
	return cache.Fetch(ctx, s.cache, "artists", s.policies.Days, []string{TagArtists},
		func(ctx context.Context) ([]domain.ArtistWithCount, error) {
			list, err := s.artists.List(ctx)
			if err != nil {
				return nil, err
			}
			if list == nil {
				list = []domain.ArtistWithCount{}
			}
			return list, nil
		})
}

func (s *Service) GetArtist(ctx context.Context, id string) (*domain.Artist, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidRequest
	}
	return cache.Fetch(ctx, s.cache, "artist:"+id, s.policies.Hours, []string{TagArtist, ArtistTag(id)},
		func(ctx context.Context) (*domain.Artist, error) {
			a, err := s.artists.GetByID(ctx, id)
			if err != nil {
				return nil, mapNotFound(err)
			}
			return a, nil
		})
}

/* ---------- ARTWORKS ---------- */

func (s *Service) ListArtworks(ctx context.Context, f repository.ArtworkFilters) ([]domain.Artwork, error) {
	if f.MinPrice < 0 || f.MaxPrice < 0 || (f.MaxPrice > 0 && f.MinPrice > f.MaxPrice) {
		return nil, ErrInvalidRequest
	}
	if f.Sort == "" {
		f.Sort = repository.SortNewest
	}

	tags := []string{TagArtworks}
	if f.ArtistID != "" {
		tags = append(tags, ArtistTag(f.ArtistID))
	}
	return cache.Fetch(ctx, s.cache, artworksKey(f), s.policies.Hours, tags,
		func(ctx context.Context) ([]domain.Artwork, error) {
			list, err := s.artworks.List(ctx, f)
			if err != nil {
				return nil, err
			}
			if list == nil {
				list = []domain.Artwork{}
			}
			return list, nil
		})
}

func (s *Service) GetArtwork(ctx context.Context, id string) (*domain.Artwork, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidRequest
	}
	return cache.Fetch(ctx, s.cache, "artwork:"+id, s.policies.Hours, []string{TagArtwork, ArtworkTag(id)},
		func(ctx context.Context) (*domain.Artwork, error) {
			a, err := s.artworks.GetByID(ctx, id)
			if err != nil {
				return nil, mapNotFound(err)
			}
			return a, nil
		})
}

// RelatedArtworks returns the newest other artworks of the artist.
func (s *Service) RelatedArtworks(ctx context.Context, artistID, excludeID string, limit int) ([]domain.Artwork, error) {
	if artistID == "" {
		return nil, ErrInvalidRequest
	}
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}
	if limit > MaxRelatedLimit {
		limit = MaxRelatedLimit
	}

	key := fmt.Sprintf("related:%s:%s:%d", artistID, excludeID, limit)
	return cache.Fetch(ctx, s.cache, key, s.policies.Hours, []string{TagRelatedArtworks, ArtistTag(artistID)},
		func(ctx context.Context) ([]domain.Artwork, error) {
			list, err := s.artworks.Related(ctx, artistID, excludeID, limit)
			if err != nil {
				return nil, err
			}
			if list == nil {
				list = []domain.Artwork{}
			}
			return list, nil
		})
}

/* ---------- STATS ---------- */

func (s *Service) Stats(ctx context.Context) (*StatsResponse, error) {
	return cache.Fetch(ctx, s.cache, "stats", s.policies.Hours, []string{TagArtworks, TagArtists},
		func(ctx context.Context) (*StatsResponse, error) {
			artists, err := s.artists.Count(ctx)
			if err != nil {
				return nil, err
			}
			artworks, err := s.artworks.Count(ctx)
			if err != nil {
				return nil, err
			}
			cats, err := s.artworks.CountByCategory(ctx)
			if err != nil {
				return nil, err
			}
			if cats == nil {
				cats = []repository.CategoryCount{}
			}
			return &StatsResponse{TotalArtists: artists, TotalArtworks: artworks, Categories: cats}, nil
		})
}

func mapNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func artworksKey(f repository.ArtworkFilters) string {
	return fmt.Sprintf("artworks:c=%s|a=%s|cur=%s|min=%g|max=%g|q=%s|s=%s",
		f.Category, f.ArtistID, f.Currency, f.MinPrice, f.MaxPrice, strings.ToLower(f.Query), f.Sort)
}
