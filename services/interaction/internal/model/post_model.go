package model

type PostModel struct {
	ID        string `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string `gorm:"type:uuid;not null" json:"user_id"`
	LikeCount int    `json:"like_count"`
}

func (PostModel) TableName() string {
	return "posts"
}
