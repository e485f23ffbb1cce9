package entity

import "time"

const (
	DefaultLanguage = "en"
	MaxAvatarSize   = 500 << 10
)

type Profile struct {
	ID             string    `json:"id"`
	Username       *string   `json:"username"`
	FullName       string    `json:"full_name"`
	Bio            string    `json:"bio"`
	Website        string    `json:"website"`
	AvatarURL      string    `json:"avatar_url"`
	Language       string    `json:"language"`
	FollowersCount int       `json:"followers_count"`
	FollowingCount int       `json:"following_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ProfileUpdate carries only the fields the caller sent; nil means unchanged.
type ProfileUpdate struct {
	Username *string `json:"username"`
	FullName *string `json:"full_name"`
	Bio      *string `json:"bio"`
	Website  *string `json:"website"`
	Language *string `json:"language"`
}
