package models

import "time"

type Follow struct {
	FollowerID  string    `gorm:"type:uuid;primaryKey" json:"follower_id"`
	FollowingID string    `gorm:"type:uuid;primaryKey" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}
