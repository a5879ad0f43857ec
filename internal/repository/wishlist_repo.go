package repository

import (
	"context"

	"artgallery/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) *WishlistRepository {
	return &WishlistRepository{db: db}
}

func (r *WishlistRepository) ListBySession(ctx context.Context, sessionID string) ([]domain.WishlistItem, error) {
	var items []domain.WishlistItem
	err := r.db.WithContext(ctx).
		Preload("Artwork.Artist").
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Add is idempotent: created reports whether a new row was inserted.
func (r *WishlistRepository) Add(ctx context.Context, sessionID, artworkID string) (*domain.WishlistItem, bool, error) {
	item := &domain.WishlistItem{SessionID: sessionID, ArtworkID: artworkID}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}, {Name: "artwork_id"}},
			DoNothing: true,
		}).
		Create(item)
	if res.Error != nil {
		return nil, false, res.Error
	}

	var out domain.WishlistItem
	err := r.db.WithContext(ctx).
		Preload("Artwork.Artist").
		Where("session_id = ? AND artwork_id = ?", sessionID, artworkID).
		First(&out).Error
	if err != nil {
		return nil, false, translate(err)
	}
	return &out, res.RowsAffected > 0, nil
}

func (r *WishlistRepository) Remove(ctx context.Context, sessionID, artworkID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("session_id = ? AND artwork_id = ?", sessionID, artworkID).
		Delete(&domain.WishlistItem{})
	return res.RowsAffected > 0, res.Error
}
