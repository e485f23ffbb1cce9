package model

// ProfileModel maps the subset of profiles this service reads and adjusts.
type ProfileModel struct {
	ID             string  `gorm:"type:uuid;primary_key" json:"id"`
	Username       *string `json:"username"`
	FullName       string  `json:"full_name"`
	AvatarURL      string  `json:"avatar_url"`
	FollowersCount int     `json:"followers_count"`
	FollowingCount int     `json:"following_count"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}
