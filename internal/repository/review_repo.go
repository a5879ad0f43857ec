package repository

import (
	"context"

	"artgallery/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// List returns reviews newest first; empty artworkID lists every review.
func (r *ReviewRepository) List(ctx context.Context, artworkID string) ([]domain.Review, error) {
	q := r.db.WithContext(ctx).Model(&domain.Review{})
	if artworkID != "" {
		q = q.Where("artwork_id = ?", artworkID)
	}
	var out []domain.Review
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// RatingSummary is computed from the rows on each call, nothing is stored.
type RatingSummary struct {
	Count int64
	Sum   int64
}

func (r *ReviewRepository) Summary(ctx context.Context, artworkID string) (RatingSummary, error) {
	var s RatingSummary
	q := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Select("COUNT(*) AS count, COALESCE(SUM(rating), 0) AS sum")
	if artworkID != "" {
		q = q.Where("artwork_id = ?", artworkID)
	}
	err := q.Scan(&s).Error
	return s, err
}
