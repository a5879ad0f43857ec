package repository

import (
	"context"
	"strings"

	"artgallery/internal/domain"

	"gorm.io/gorm"
)

type ArtistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) *ArtistRepository {
	return &ArtistRepository{db: db}
}

// WithTx returns a copy bound to tx.
func (r *ArtistRepository) WithTx(tx *gorm.DB) *ArtistRepository {
	return &ArtistRepository{db: tx}
}

// List returns all artists sorted by name, each with its artwork count.
func (r *ArtistRepository) List(ctx context.Context) ([]domain.ArtistWithCount, error) {
	var out []domain.ArtistWithCount
	err := r.db.WithContext(ctx).
		Model(&domain.Artist{}).
		Select("artists.*, (SELECT COUNT(*) FROM artworks WHERE artworks.artist_id = artists.id) AS artwork_count").
		Order("artists.name ASC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID loads the artist with artworks, newest first.
func (r *ArtistRepository) GetByID(ctx context.Context, id string) (*domain.Artist, error) {
	var a domain.Artist
	err := r.db.WithContext(ctx).
		Preload("Artworks", func(db *gorm.DB) *gorm.DB {
			return db.Order("artworks.created_at DESC")
		}).
		Where("id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *ArtistRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Artist{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// FindByNameOrInstagram is the best-effort dedup used by submissions: the
// first artist (oldest) whose name matches, or whose instagram handle matches
// when a handle is given.
func (r *ArtistRepository) FindByNameOrInstagram(ctx context.Context, name, instagram string) (*domain.Artist, error) {
	q := r.db.WithContext(ctx).Model(&domain.Artist{})
	instagram = strings.TrimSpace(instagram)
	if instagram != "" {
		q = q.Where("name = ? OR instagram = ?", name, instagram)
	} else {
		q = q.Where("name = ?", name)
	}

	var a domain.Artist
	if err := q.Order("created_at ASC").First(&a).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *ArtistRepository) Create(ctx context.Context, a *domain.Artist) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ArtistRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Artist{}).Count(&count).Error
	return count, err
}
