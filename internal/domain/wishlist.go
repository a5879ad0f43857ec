package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WishlistItem struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	SessionID string    `json:"sessionId" gorm:"type:varchar(64);not null;uniqueIndex:idx_wishlist_session_artwork"`
	ArtworkID string    `json:"artworkId" gorm:"type:varchar(36);not null;uniqueIndex:idx_wishlist_session_artwork"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`

	Artwork *Artwork `json:"artwork,omitempty" gorm:"foreignKey:ArtworkID;constraint:OnDelete:CASCADE"`
}

func (WishlistItem) TableName() string {
	return "wishlist_items"
}

func (w *WishlistItem) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}
