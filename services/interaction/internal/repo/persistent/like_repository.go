package persistent

import (
	"context"
	"errors"
	"fmt"

	"socialhub/services/interaction/internal/entity"
	"socialhub/services/interaction/internal/model"

	"gorm.io/gorm"
)

type LikeRepository interface {
	IsLiked(ctx context.Context, userID string, kind entity.TargetKind, targetID string) (bool, error)
	CreateLike(ctx context.Context, like *entity.Like) error
	DeleteLike(ctx context.Context, userID string, kind entity.TargetKind, targetID string) error
	AdjustLikeCount(ctx context.Context, kind entity.TargetKind, targetID string, delta int) (int, error)
	GetLikeCount(ctx context.Context, kind entity.TargetKind, targetID string) (int, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func targetColumn(kind entity.TargetKind) (string, error) {
	switch kind {
	case entity.TargetPost:
		return "post_id", nil
	case entity.TargetComment:
		return "comment_id", nil
	default:
		return "", entity.ErrInvalidTarget
	}
}

func targetTable(kind entity.TargetKind) (string, error) {
	switch kind {
	case entity.TargetPost:
		return "posts", nil
	case entity.TargetComment:
		return "comments", nil
	default:
		return "", entity.ErrInvalidTarget
	}
}

func notFoundFor(kind entity.TargetKind) error {
	if kind == entity.TargetComment {
		return entity.ErrCommentNotFound
	}
	return entity.ErrPostNotFound
}

func (r *likeRepository) IsLiked(ctx context.Context, userID string, kind entity.TargetKind, targetID string) (bool, error) {
	column, err := targetColumn(kind)
	if err != nil {
		return false, err
	}

	var count int64
	err = r.db.WithContext(ctx).Model(&model.LikeModel{}).
		Where("user_id = ? AND "+column+" = ?", userID, targetID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return count > 0, nil
}

func (r *likeRepository) CreateLike(ctx context.Context, like *entity.Like) error {
	likeModel := ToLikeModel(like)
	if likeModel == nil {
		return entity.ErrInvalidTarget
	}
	if err := r.db.WithContext(ctx).Create(likeModel).Error; err != nil {
		return fmt.Errorf("failed to create like: %w", err)
	}
	like.ID = likeModel.ID
	like.CreatedAt = likeModel.CreatedAt
	return nil
}

func (r *likeRepository) DeleteLike(ctx context.Context, userID string, kind entity.TargetKind, targetID string) error {
	column, err := targetColumn(kind)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).
		Where("user_id = ? AND "+column+" = ?", userID, targetID).
		Delete(&model.LikeModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}

func (r *likeRepository) AdjustLikeCount(ctx context.Context, kind entity.TargetKind, targetID string, delta int) (int, error) {
	table, err := targetTable(kind)
	if err != nil {
		return 0, err
	}

	count, err := adjustCounter(ctx, r.db, table, "like_count", targetID, delta)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, notFoundFor(kind)
	}
	return count, err
}

func (r *likeRepository) GetLikeCount(ctx context.Context, kind entity.TargetKind, targetID string) (int, error) {
	table, err := targetTable(kind)
	if err != nil {
		return 0, err
	}

	var counts []int
	err = r.db.WithContext(ctx).Table(table).Where("id = ?", targetID).Pluck("like_count", &counts).Error
	if err != nil {
		return 0, fmt.Errorf("failed to read like count: %w", err)
	}
	if len(counts) == 0 {
		return 0, notFoundFor(kind)
	}
	return counts[0], nil
}
