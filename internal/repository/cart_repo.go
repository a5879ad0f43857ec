package repository

import (
	"context"
	"time"

	"artgallery/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// ListBySession returns cart items with artwork and artist, oldest first.
func (r *CartRepository) ListBySession(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	var items []domain.CartItem
	err := r.db.WithContext(ctx).
		Preload("Artwork.Artist").
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Add inserts the item or increments quantity of the existing one in a single
// statement, so concurrent adds never lose an increment. An increment that
// would exceed domain.MaxCartQuantity leaves the row untouched and returns
// ErrQuantityLimit.
func (r *CartRepository) Add(ctx context.Context, sessionID, artworkID string, qty int) (*domain.CartItem, error) {
	if qty > domain.MaxCartQuantity {
		return nil, ErrQuantityLimit
	}
	item := &domain.CartItem{
		SessionID: sessionID,
		ArtworkID: artworkID,
		Quantity:  qty,
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "session_id"}, {Name: "artwork_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("cart_items.quantity + excluded.quantity"),
				"updated_at": time.Now(),
			}),
			Where: clause.Where{Exprs: []clause.Expression{
				gorm.Expr("cart_items.quantity + excluded.quantity <= ?", domain.MaxCartQuantity),
			}},
		}).
		Create(item)
	if res.Error != nil {
		return nil, res.Error
	}
	// conflict with the WHERE false: nothing inserted, nothing updated
	if res.RowsAffected == 0 {
		return nil, ErrQuantityLimit
	}
	return r.Get(ctx, sessionID, artworkID)
}

func (r *CartRepository) Get(ctx context.Context, sessionID, artworkID string) (*domain.CartItem, error) {
	var item domain.CartItem
	err := r.db.WithContext(ctx).
		Preload("Artwork.Artist").
		Where("session_id = ? AND artwork_id = ?", sessionID, artworkID).
		First(&item).Error
	if err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

// SetQuantity overwrites quantity. ErrNotFound when the session has no such item.
func (r *CartRepository) SetQuantity(ctx context.Context, sessionID, artworkID string, qty int) (*domain.CartItem, error) {
	if qty > domain.MaxCartQuantity {
		return nil, ErrQuantityLimit
	}
	res := r.db.WithContext(ctx).
		Model(&domain.CartItem{}).
		Where("session_id = ? AND artwork_id = ?", sessionID, artworkID).
		Updates(map[string]interface{}{"quantity": qty, "updated_at": time.Now()})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.Get(ctx, sessionID, artworkID)
}

// Remove deletes the item if present. Returns whether a row was deleted.
func (r *CartRepository) Remove(ctx context.Context, sessionID, artworkID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("session_id = ? AND artwork_id = ?", sessionID, artworkID).
		Delete(&domain.CartItem{})
	return res.RowsAffected > 0, res.Error
}

// DeleteStale removes cart items not touched since before.
func (r *CartRepository) DeleteStale(ctx context.Context, before time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("updated_at < ?", before).
		Delete(&domain.CartItem{})
	return res.RowsAffected, res.Error
}
