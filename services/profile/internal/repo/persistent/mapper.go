package persistent

import (
	"socialhub/services/profile/internal/entity"
	"socialhub/services/profile/internal/model"
)

func ToProfileEntity(m *model.ProfileModel) *entity.Profile {
	if m == nil {
		return nil
	}

	return &entity.Profile{
		ID:             m.ID,
		Username:       m.Username,
		FullName:       m.FullName,
		Bio:            m.Bio,
		Website:        m.Website,
		AvatarURL:      m.AvatarURL,
		Language:       m.Language,
		FollowersCount: m.FollowersCount,
		FollowingCount: m.FollowingCount,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func ToProfileModel(e *entity.Profile) *model.ProfileModel {
	if e == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:             e.ID,
		Username:       e.Username,
		FullName:       e.FullName,
		Bio:            e.Bio,
		Website:        e.Website,
		AvatarURL:      e.AvatarURL,
		Language:       e.Language,
		FollowersCount: e.FollowersCount,
		FollowingCount: e.FollowingCount,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
