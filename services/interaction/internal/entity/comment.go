package entity

import "time"

type Comment struct {
	ID        string     `json:"id"`
	PostID    string     `json:"post_id"`
	UserID    string     `json:"user_id"`
	Content   string     `json:"content"`
	ParentID  *string    `json:"parent_id"`
	LikeCount int        `json:"like_count"`
	CreatedAt time.Time  `json:"created_at"`
	Author    *Author    `json:"author"`
	Replies   []*Comment `json:"replies,omitempty"`
}

func (c *Comment) IsTopLevel() bool {
	return c.ParentID == nil
}
