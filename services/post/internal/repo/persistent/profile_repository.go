package persistent

import (
	"context"
	"fmt"

	"socialhub/services/post/internal/entity"
	"socialhub/services/post/internal/model"

	"gorm.io/gorm"
)

type ProfileRepository interface {
	GetAuthors(ctx context.Context, ids []string) (map[string]*entity.Author, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetAuthors(ctx context.Context, ids []string) (map[string]*entity.Author, error) {
	authors := make(map[string]*entity.Author, len(ids))
	if len(ids) == 0 {
		return authors, nil
	}

	var profiles []model.ProfileModel
	err := r.db.WithContext(ctx).
		Select("id", "username", "full_name", "avatar_url").
		Where("id IN ?", ids).
		Find(&profiles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load authors: %w", err)
	}

	for i := range profiles {
		authors[profiles[i].ID] = ToAuthorEntity(&profiles[i])
	}
	return authors, nil
}
