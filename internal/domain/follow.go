package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArtistFollow struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	SessionID string    `json:"sessionId" gorm:"type:varchar(64);not null;uniqueIndex:idx_follow_session_artist"`
	ArtistID  string    `json:"artistId" gorm:"type:varchar(36);not null;uniqueIndex:idx_follow_session_artist"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`

	Artist *Artist `json:"artist,omitempty" gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE"`
}

func (ArtistFollow) TableName() string {
	return "artist_follows"
}

func (f *ArtistFollow) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
