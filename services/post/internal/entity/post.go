package entity

import "time"

const (
	PageSize     = 20
	MaxImageSize = 10 << 20
)

type Post struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	ImageURL     *string    `json:"image_url"`
	LikeCount    int        `json:"like_count"`
	CommentCount int64      `json:"comment_count"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
	Author       *Author    `json:"author"`
}

type Author struct {
	ID        string  `json:"id"`
	Username  *string `json:"username"`
	FullName  string  `json:"full_name"`
	AvatarURL string  `json:"avatar_url"`
}

type FeedPage struct {
	Posts   []*Post `json:"posts"`
	Page    int     `json:"page"`
	HasMore bool    `json:"has_more"`
}
