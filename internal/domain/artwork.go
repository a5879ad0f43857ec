package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"artgallery/internal/pkg/currency"
)

type Artwork struct {
	ID          string        `json:"id" gorm:"type:varchar(36);primaryKey"`
	Title       string        `json:"title" gorm:"not null"`
	ArtistID    string        `json:"artistId" gorm:"type:varchar(36);not null;index"`
	Price       float64       `json:"price" gorm:"not null;default:0"`
	Currency    currency.Code `json:"currency" gorm:"type:varchar(3);not null;default:'INR'"`
	Image       string        `json:"image" gorm:"not null"`
	Description string        `json:"description" gorm:"type:text;not null"`
	Dimensions  string        `json:"dimensions" gorm:"not null"`
	Year        int           `json:"year" gorm:"not null"`
	Category    string        `json:"category" gorm:"not null;index"`
	Medium      *string       `json:"medium,omitempty"`
	CreatedAt   time.Time     `json:"createdAt" gorm:"autoCreateTime;index"`

	Artist *Artist `json:"artist,omitempty" gorm:"foreignKey:ArtistID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Artwork) TableName() string {
	return "artworks"
}

func (a *Artwork) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// FormattedPrice возвращает цену для витрины, например "₹34,500".
func (a *Artwork) FormattedPrice() string {
	return currency.Format(a.Price, a.Currency)
}
