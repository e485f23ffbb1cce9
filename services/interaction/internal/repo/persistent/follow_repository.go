package persistent

import (
	"context"
	"errors"
	"fmt"

	"socialhub/services/interaction/internal/entity"
	"socialhub/services/interaction/internal/model"

	"gorm.io/gorm"
)

type FollowRepository interface {
	IsFollowing(ctx context.Context, followerID, followingID string) (bool, error)
	CreateFollow(ctx context.Context, followerID, followingID string) error
	DeleteFollow(ctx context.Context, followerID, followingID string) error
	AdjustFollowersCount(ctx context.Context, profileID string, delta int) (int, error)
	AdjustFollowingCount(ctx context.Context, profileID string, delta int) (int, error)
	ListFollowerIDs(ctx context.Context, userID string) ([]string, error)
	ListFollowingIDs(ctx context.Context, userID string) ([]string, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.FollowModel{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}
	return count > 0, nil
}

func (r *followRepository) CreateFollow(ctx context.Context, followerID, followingID string) error {
	follow := &model.FollowModel{FollowerID: followerID, FollowingID: followingID}
	if err := r.db.WithContext(ctx).Create(follow).Error; err != nil {
		return fmt.Errorf("failed to create follow: %w", err)
	}
	return nil
}

func (r *followRepository) DeleteFollow(ctx context.Context, followerID, followingID string) error {
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&model.FollowModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}
	return nil
}

func (r *followRepository) AdjustFollowersCount(ctx context.Context, profileID string, delta int) (int, error) {
	return r.adjust(ctx, "followers_count", profileID, delta)
}

func (r *followRepository) AdjustFollowingCount(ctx context.Context, profileID string, delta int) (int, error) {
	return r.adjust(ctx, "following_count", profileID, delta)
}

func (r *followRepository) adjust(ctx context.Context, column, profileID string, delta int) (int, error) {
	count, err := adjustCounter(ctx, r.db, "profiles", column, profileID, delta)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, entity.ErrProfileNotFound
	}
	return count, err
}

// ListFollowerIDs returns who follows userID, newest edge first.
func (r *followRepository) ListFollowerIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.FollowModel{}).
		Where("following_id = ?", userID).
		Order("created_at DESC").
		Pluck("follower_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}
	return ids, nil
}

// ListFollowingIDs returns who userID follows, newest edge first.
func (r *followRepository) ListFollowingIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.FollowModel{}).
		Where("follower_id = ?", userID).
		Order("created_at DESC").
		Pluck("following_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list following: %w", err)
	}
	return ids, nil
}
