package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review — отзыв без авторизации, только добавление.
type Review struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	ArtworkID string    `json:"artworkId" gorm:"type:varchar(36);not null;index"`
	UserName  string    `json:"userName" gorm:"not null"`
	Rating    int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment   string    `json:"comment" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
}

func (Review) TableName() string {
	return "reviews"
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

const (
	MinRating = 1
	MaxRating = 5
)

func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}
