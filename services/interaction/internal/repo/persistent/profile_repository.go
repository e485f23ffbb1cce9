package persistent

import (
	"context"
	"errors"
	"fmt"

	"socialhub/services/interaction/internal/entity"
	"socialhub/services/interaction/internal/model"

	"gorm.io/gorm"
)

type ProfileRepository interface {
	GetCounts(ctx context.Context, profileID string) (followers int, following int, err error)
	GetAuthors(ctx context.Context, ids []string) (map[string]*entity.Author, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetCounts(ctx context.Context, profileID string) (int, int, error) {
	var profile model.ProfileModel
	err := r.db.WithContext(ctx).
		Select("id", "followers_count", "following_count").
		Where("id = ?", profileID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, entity.ErrProfileNotFound
		}
		return 0, 0, fmt.Errorf("failed to load profile: %w", err)
	}
	return profile.FollowersCount, profile.FollowingCount, nil
}

// GetAuthors loads every requested profile in one IN query. Missing ids are absent from the map.
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
