package persistent

import (
	"socialhub/services/interaction/internal/entity"
	"socialhub/services/interaction/internal/model"
)

func ToLikeEntity(m *model.LikeModel) *entity.Like {
	if m == nil {
		return nil
	}

	like := &entity.Like{
		ID:        m.ID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
	switch {
	case m.PostID != nil:
		like.Kind = entity.TargetPost
		like.TargetID = *m.PostID
	case m.CommentID != nil:
		like.Kind = entity.TargetComment
		like.TargetID = *m.CommentID
	}
	return like
}

// ToLikeModel returns nil for an entity whose kind is not a known target.
func ToLikeModel(e *entity.Like) *model.LikeModel {
	if e == nil {
		return nil
	}

	m := &model.LikeModel{
		ID:        e.ID,
		UserID:    e.UserID,
		CreatedAt: e.CreatedAt,
	}
	targetID := e.TargetID
	switch e.Kind {
	case entity.TargetPost:
		m.PostID = &targetID
	case entity.TargetComment:
		m.CommentID = &targetID
	default:
		return nil
	}
	return m
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:        m.ID,
		PostID:    m.PostID,
		UserID:    m.UserID,
		Content:   m.Content,
		ParentID:  m.ParentID,
		LikeCount: m.LikeCount,
		CreatedAt: m.CreatedAt,
	}
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}

	return &model.CommentModel{
		ID:        e.ID,
		PostID:    e.PostID,
		UserID:    e.UserID,
		Content:   e.Content,
		ParentID:  e.ParentID,
		LikeCount: e.LikeCount,
		CreatedAt: e.CreatedAt,
	}
}

func ToAuthorEntity(m *model.ProfileModel) *entity.Author {
	if m == nil {
		return nil
	}

	return &entity.Author{
		ID:        m.ID,
		Username:  m.Username,
		FullName:  m.FullName,
		AvatarURL: m.AvatarURL,
	}
}
