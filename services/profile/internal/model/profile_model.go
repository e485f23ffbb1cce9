package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileModel struct {
	ID             string    `gorm:"type:uuid;primary_key" json:"id"`
	Username       *string   `gorm:"uniqueIndex" json:"username"`
	FullName       string    `gorm:"not null;default:''" json:"full_name"`
	Bio            string    `gorm:"not null;default:''" json:"bio"`
	Website        string    `gorm:"not null;default:''" json:"website"`
	AvatarURL      string    `gorm:"not null;default:''" json:"avatar_url"`
	Language       string    `gorm:"not null;default:'en'" json:"language"`
	FollowersCount int       `gorm:"not null;default:0" json:"followers_count"`
	FollowingCount int       `gorm:"not null;default:0" json:"following_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}

func (p *ProfileModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
