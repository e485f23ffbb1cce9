package persistent

import (
	"socialhub/services/search/internal/entity"
	"socialhub/services/search/internal/model"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	return &entity.Post{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Content:   m.Content,
		ImageURL:  m.ImageURL,
		LikeCount: m.LikeCount,
		CreatedAt: m.CreatedAt,
	}
}

func ToUserEntity(m *model.ProfileModel) *entity.User {
	return &entity.User{
		ID:        m.ID,
		Username:  m.Username,
		FullName:  m.FullName,
		Bio:       m.Bio,
		AvatarURL: m.AvatarURL,
	}
}

func ToAuthorEntity(m *model.ProfileModel) *entity.Author {
	return &entity.Author{
		ID:        m.ID,
		Username:  m.Username,
		FullName:  m.FullName,
		AvatarURL: m.AvatarURL,
	}
}
