package model

type ProfileModel struct {
	ID        string  `gorm:"type:uuid;primary_key" json:"id"`
	Username  *string `json:"username"`
	FullName  string  `json:"full_name"`
	AvatarURL string  `json:"avatar_url"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}
