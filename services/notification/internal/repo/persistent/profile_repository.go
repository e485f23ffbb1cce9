package persistent

import (
	"context"
	"fmt"

	"socialhub/services/notification/internal/model"

	"gorm.io/gorm"
)

type ProfileRepository interface {
	// DisplayName prefers username, then full name.
	DisplayName(ctx context.Context, userID string) (string, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) DisplayName(ctx context.Context, userID string) (string, error) {
	var profile model.ProfileModel
	err := r.db.WithContext(ctx).
		Select("id", "username", "full_name").
		Where("id = ?", userID).
		First(&profile).Error
	if err != nil {
		return "", fmt.Errorf("failed to load profile %s: %w", userID, err)
	}

	if profile.Username != nil && *profile.Username != "" {
		return *profile.Username, nil
	}
	return profile.FullName, nil
}
