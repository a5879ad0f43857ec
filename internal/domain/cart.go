package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartItem — позиция корзины сессии. Пара (session_id, artwork_id) уникальна,
// повторное добавление увеличивает quantity.
type CartItem struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	SessionID string    `json:"sessionId" gorm:"type:varchar(64);not null;uniqueIndex:idx_cart_session_artwork"`
	ArtworkID string    `json:"artworkId" gorm:"type:varchar(36);not null;uniqueIndex:idx_cart_session_artwork"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`

	Artwork *Artwork `json:"artwork,omitempty" gorm:"foreignKey:ArtworkID;constraint:OnDelete:CASCADE"`
}

// MaxCartQuantity ограничивает количество одной работы в корзине.
const MaxCartQuantity = 999

func (CartItem) TableName() string {
	return "cart_items"
}

func (c *CartItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
