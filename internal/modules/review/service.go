package review

import (
	"context"
	"math"
	"strings"

	"artgallery/internal/domain"
	"artgallery/internal/pkg/sanitize"
	"artgallery/internal/pkg/validator"
	"artgallery/internal/repository"
)

type Store interface {
	Create(ctx context.Context, r *domain.Review) error
	List(ctx context.Context, artworkID string) ([]domain.Review, error)
	Summary(ctx context.Context, artworkID string) (repository.RatingSummary, error)
}

type ArtworkChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type Service struct {
	reviews  Store
	artworks ArtworkChecker
}

func NewService(reviews Store, artworks ArtworkChecker) *Service {
	return &Service{reviews: reviews, artworks: artworks}
}

func (s *Service) Create(ctx context.Context, req CreateReviewRequest) (*domain.Review, error) {
	req.ArtworkID = strings.TrimSpace(req.ArtworkID)
	req.UserName = sanitize.Text(req.UserName)
	req.Comment = sanitize.Text(req.Comment)

	if errs := validator.Validate(req); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	ok, err := s.artworks.Exists(ctx, req.ArtworkID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	rv := &domain.Review{
		ArtworkID: req.ArtworkID,
		UserName:  req.UserName,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

// List returns reviews newest first together with the current average.
// An empty artworkID lists every review.
func (s *Service) List(ctx context.Context, artworkID string) (*ListResponse, error) {
	artworkID = strings.TrimSpace(artworkID)

	items, err := s.reviews.List(ctx, artworkID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Review{}
	}

	sum, err := s.reviews.Summary(ctx, artworkID)
	if err != nil {
		return nil, err
	}

	return &ListResponse{
		Reviews:       items,
		AverageRating: Average(sum),
		Count:         sum.Count,
	}, nil
}

func (s *Service) AverageRating(ctx context.Context, artworkID string) (float64, error) {
	if strings.TrimSpace(artworkID) == "" {
		return 0, ErrInvalidRequest
	}
	sum, err := s.reviews.Summary(ctx, artworkID)
	if err != nil {
		return 0, err
	}
	return Average(sum), nil
}

// Average is the mean rating rounded half up to one decimal, 0 without reviews.
func Average(s repository.RatingSummary) float64 {
	if s.Count == 0 {
		return 0
	}
	mean := float64(s.Sum) / float64(s.Count)
	return math.Floor(mean*10+0.5) / 10
}
