package repository

import (
	"context"
	"strings"

	"artgallery/internal/domain"

	"gorm.io/gorm"
)

type ArtworkSort string

const (
	SortNewest    ArtworkSort = "newest"
	SortOldest    ArtworkSort = "oldest"
	SortPriceAsc  ArtworkSort = "price_asc"
	SortPriceDesc ArtworkSort = "price_desc"
	SortTitle     ArtworkSort = "title"
)

func ParseArtworkSort(s string) (ArtworkSort, bool) {
	switch ArtworkSort(strings.ToLower(strings.TrimSpace(s))) {
	case "", SortNewest:
		return SortNewest, true
	case SortOldest:
		return SortOldest, true
	case SortPriceAsc:
		return SortPriceAsc, true
	case SortPriceDesc:
		return SortPriceDesc, true
	case SortTitle:
		return SortTitle, true
	}
	return "", false
}

type ArtworkFilters struct {
	Category string
	ArtistID string
	Currency string
	MinPrice float64
	MaxPrice float64
	Query    string
	Sort     ArtworkSort
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type ArtworkRepository struct {
	db *gorm.DB
}

func NewArtworkRepository(db *gorm.DB) *ArtworkRepository {
	return &ArtworkRepository{db: db}
}

func (r *ArtworkRepository) WithTx(tx *gorm.DB) *ArtworkRepository {
	return &ArtworkRepository{db: tx}
}

// List returns artworks with their artist applying optional filters.
func (r *ArtworkRepository) List(ctx context.Context, f ArtworkFilters) ([]domain.Artwork, error) {
	q := r.db.WithContext(ctx).
		Model(&domain.Artwork{}).
		Preload("Artist")

	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.ArtistID != "" {
		q = q.Where("artist_id = ?", f.ArtistID)
	}
	if f.Currency != "" {
		q = q.Where("currency = ?", f.Currency)
	}
	if f.MinPrice > 0 {
		q = q.Where("price >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		q = q.Where("price <= ?", f.MaxPrice)
	}
	if f.Query != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(f.Query)+"%")
	}

	switch f.Sort {
	case SortOldest:
		q = q.Order("created_at ASC")
	case SortPriceAsc:
		q = q.Order("price ASC").Order("created_at DESC")
	case SortPriceDesc:
		q = q.Order("price DESC").Order("created_at DESC")
	case SortTitle:
		q = q.Order("title ASC")
	default:
		q = q.Order("created_at DESC")
	}

	var out []domain.Artwork
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ArtworkRepository) GetByID(ctx context.Context, id string) (*domain.Artwork, error) {
	var a domain.Artwork
	err := r.db.WithContext(ctx).
		Preload("Artist").
		Where("id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

// Related returns the most recent artworks by artistID other than excludeID.
func (r *ArtworkRepository) Related(ctx context.Context, artistID, excludeID string, limit int) ([]domain.Artwork, error) {
	if limit <= 0 {
		limit = 3
	}
	var out []domain.Artwork
	err := r.db.WithContext(ctx).
		Preload("Artist").
		Where("artist_id = ? AND id <> ?", artistID, excludeID).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts the artwork and reloads it with its artist.
func (r *ArtworkRepository) Create(ctx context.Context, a *domain.Artwork) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Preload("Artist").Where("id = ?", a.ID).First(a).Error
}

func (r *ArtworkRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Artwork{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *ArtworkRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Artwork{}).Count(&count).Error
	return count, err
}

func (r *ArtworkRepository) CountByCategory(ctx context.Context) ([]CategoryCount, error) {
	var out []CategoryCount
	err := r.db.WithContext(ctx).
		Model(&domain.Artwork{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("category ASC").
		Scan(&out).Error
	return out, err
}
