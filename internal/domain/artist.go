package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Artist — автор работ. Уникальность "мягкая": дедупликация при подаче работы
// идёт по имени или instagram, ограничения в БД нет.
type Artist struct {
	ID             string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name           string    `json:"name" gorm:"not null;index"`
	Bio            string    `json:"bio" gorm:"type:text;not null"`
	ProfileImage   string    `json:"profileImage" gorm:"not null"`
	Specialization string    `json:"specialization" gorm:"not null"`
	Website        *string   `json:"website,omitempty"`
	Instagram      *string   `json:"instagram,omitempty" gorm:"index"`
	CreatedAt      time.Time `json:"createdAt" gorm:"autoCreateTime;index"`

	Artworks []Artwork `json:"artworks,omitempty" gorm:"foreignKey:ArtistID"`
}

func (Artist) TableName() string {
	return "artists"
}

func (a *Artist) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// ArtistWithCount — строка списка художников с количеством работ.
type ArtistWithCount struct {
	Artist
	ArtworkCount int64 `json:"artworkCount" gorm:"column:artwork_count"`
}
