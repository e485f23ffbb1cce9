package persistent

import (
	"context"
	"errors"
	"fmt"

	"socialhub/services/profile/internal/entity"
	"socialhub/services/profile/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
	GetByUsername(ctx context.Context, username string) (*entity.Profile, error)
	// Create inserts the profile unless a row with the same id already exists.
	Create(ctx context.Context, profile *entity.Profile) error
	Update(ctx context.Context, id string, update entity.ProfileUpdate) (*entity.Profile, error)
	SetAvatarURL(ctx context.Context, id, avatarURL string) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) get(ctx context.Context, query string, arg string) (*entity.Profile, error) {
	var profileModel model.ProfileModel
	err := r.db.WithContext(ctx).Where(query, arg).First(&profileModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entity.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return ToProfileEntity(&profileModel), nil
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	return r.get(ctx, "id = ?", id)
}

func (r *profileRepository) GetByUsername(ctx context.Context, username string) (*entity.Profile, error) {
	return r.get(ctx, "username = ?", username)
}

func (r *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileModel := ToProfileModel(profile)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(profileModel).Error
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	*profile = *ToProfileEntity(profileModel)
	return nil
}

func (r *profileRepository) Update(ctx context.Context, id string, update entity.ProfileUpdate) (*entity.Profile, error) {
	updates := map[string]interface{}{}
	if update.Username != nil {
		updates["username"] = *update.Username
	}
	if update.FullName != nil {
		updates["full_name"] = *update.FullName
	}
	if update.Bio != nil {
		updates["bio"] = *update.Bio
	}
	if update.Website != nil {
		updates["website"] = *update.Website
	}
	if update.Language != nil {
		updates["language"] = *update.Language
	}

	if len(updates) > 0 {
		result := r.db.WithContext(ctx).Model(&model.ProfileModel{}).Where("id = ?", id).Updates(updates)
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, entity.ErrUsernameTaken
		}
		if result.Error != nil {
			return nil, fmt.Errorf("failed to update profile: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, entity.ErrProfileNotFound
		}
	}

	return r.GetByID(ctx, id)
}

func (r *profileRepository) SetAvatarURL(ctx context.Context, id, avatarURL string) error {
	result := r.db.WithContext(ctx).Model(&model.ProfileModel{}).Where("id = ?", id).Update("avatar_url", avatarURL)
	if result.Error != nil {
		return fmt.Errorf("failed to update avatar: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrProfileNotFound
	}
	return nil
}
