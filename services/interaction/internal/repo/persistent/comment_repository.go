package persistent

import (
	"context"
	"errors"
	"fmt"

	"socialhub/services/interaction/internal/entity"
	"socialhub/services/interaction/internal/model"

	"gorm.io/gorm"
)

type CommentRepository interface {
	ListByPost(ctx context.Context, postID string) ([]*entity.Comment, error)
	GetByID(ctx context.Context, commentID string) (*entity.Comment, error)
	Create(ctx context.Context, comment *entity.Comment) error
	Delete(ctx context.Context, commentID string) error
	CountByPost(ctx context.Context, postID string) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// ListByPost returns the post's comments flat, oldest first.
func (r *commentRepository) ListByPost(ctx context.Context, postID string) ([]*entity.Comment, error) {
	var models []model.CommentModel
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*entity.Comment, len(models))
	for i := range models {
		comments[i] = ToCommentEntity(&models[i])
	}
	return comments, nil
}

func (r *commentRepository) GetByID(ctx context.Context, commentID string) (*entity.Comment, error) {
	var m model.CommentModel
	if err := r.db.WithContext(ctx).Where("id = ?", commentID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to load comment: %w", err)
	}
	return ToCommentEntity(&m), nil
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	m := ToCommentModel(comment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	comment.ID = m.ID
	comment.CreatedAt = m.CreatedAt
	return nil
}

// Delete removes the comment row; the store cascades its replies and likes.
func (r *commentRepository) Delete(ctx context.Context, commentID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", commentID).Delete(&model.CommentModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrCommentNotFound
	}
	return nil
}

func (r *commentRepository) CountByPost(ctx context.Context, postID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CommentModel{}).Where("post_id = ?", postID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return count, nil
}
