package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like targets exactly one of PostID or CommentID.
type Like struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	PostID    *string   `gorm:"type:uuid;index" json:"post_id"`
	CommentID *string   `gorm:"type:uuid;index" json:"comment_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
