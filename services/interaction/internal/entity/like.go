package entity

import "time"

type TargetKind string

const (
	TargetPost    TargetKind = "post"
	TargetComment TargetKind = "comment"
)

func (k TargetKind) Valid() bool {
	return k == TargetPost || k == TargetComment
}

type Like struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Kind      TargetKind `json:"kind"`
	TargetID  string     `json:"target_id"`
	CreatedAt time.Time  `json:"created_at"`
}

type LikeState struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}
