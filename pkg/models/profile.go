package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultLanguage = "en"

type Profile struct {
	ID             string    `gorm:"type:uuid;primary_key" json:"id"`
	Username       *string   `gorm:"uniqueIndex" json:"username"`
	FullName       string    `json:"full_name"`
	Bio            string    `json:"bio"`
	Website        string    `json:"website"`
	AvatarURL      string    `json:"avatar_url"`
	Language       string    `gorm:"not null;default:'en'" json:"language"`
	FollowersCount int       `gorm:"not null;default:0" json:"followers_count"`
	FollowingCount int       `gorm:"not null;default:0" json:"following_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Language == "" {
		p.Language = DefaultLanguage
	}
	return nil
}
