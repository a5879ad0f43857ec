package repository

import (
	"context"

	"artgallery/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

func (r *FollowRepository) ListBySession(ctx context.Context, sessionID string) ([]domain.ArtistFollow, error) {
	var items []domain.ArtistFollow
	err := r.db.WithContext(ctx).
		Preload("Artist").
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *FollowRepository) Add(ctx context.Context, sessionID, artistID string) (*domain.ArtistFollow, bool, error) {
	f := &domain.ArtistFollow{SessionID: sessionID, ArtistID: artistID}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}, {Name: "artist_id"}},
			DoNothing: true,
		}).
		Create(f)
	if res.Error != nil {
		return nil, false, res.Error
	}

	var out domain.ArtistFollow
	err := r.db.WithContext(ctx).
		Preload("Artist").
		Where("session_id = ? AND artist_id = ?", sessionID, artistID).
		First(&out).Error
	if err != nil {
		return nil, false, translate(err)
	}
	return &out, res.RowsAffected > 0, nil
}

func (r *FollowRepository) Remove(ctx context.Context, sessionID, artistID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("session_id = ? AND artist_id = ?", sessionID, artistID).
		Delete(&domain.ArtistFollow{})
	return res.RowsAffected > 0, res.Error
}
