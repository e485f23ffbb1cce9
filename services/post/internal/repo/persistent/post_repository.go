package persistent

import (
	"context"
	"errors"
	"fmt"

	"socialhub/services/post/internal/entity"
	"socialhub/services/post/internal/model"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Post, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Post, error)
	ListFollowing(ctx context.Context, followerID string, limit, offset int) ([]*entity.Post, error)
	Update(ctx context.Context, post *entity.Post) error
	Delete(ctx context.Context, id string) error
	CommentCounts(ctx context.Context, postIDs []string) (map[string]int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postModel := ToPostModel(post)
	if err := r.db.WithContext(ctx).Create(postModel).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&postModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to load post: %w", err)
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) List(ctx context.Context, limit, offset int) ([]*entity.Post, error) {
	var postModels []model.PostModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&postModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return toPostEntities(postModels), nil
}

func (r *postRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Post, error) {
	var postModels []model.PostModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&postModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list user posts: %w", err)
	}
	return toPostEntities(postModels), nil
}

func (r *postRepository) ListFollowing(ctx context.Context, followerID string, limit, offset int) ([]*entity.Post, error) {
	db := r.db.WithContext(ctx)
	followed := db.Table("follows").Select("following_id").Where("follower_id = ?", followerID)

	var postModels []model.PostModel
	err := db.
		Where("user_id IN (?)", followed).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&postModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list following feed: %w", err)
	}
	return toPostEntities(postModels), nil
}

// Update writes the editable columns only; like_count is owned by the interaction service.
func (r *postRepository) Update(ctx context.Context, post *entity.Post) error {
	postModel := ToPostModel(post)
	result := r.db.WithContext(ctx).Model(&model.PostModel{}).
		Where("id = ?", post.ID).
		Select("title", "content", "image_url", "updated_at").
		Updates(postModel)
	if result.Error != nil {
		return fmt.Errorf("failed to update post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrPostNotFound
	}
	return nil
}

// Delete removes the row; the store cascades comments and likes.
func (r *postRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PostModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrPostNotFound
	}
	return nil
}

func (r *postRepository) CommentCounts(ctx context.Context, postIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		PostID string
		Count  int64
	}
	err := r.db.WithContext(ctx).Table("comments").
		Select("post_id, COUNT(*) AS count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}

	for _, row := range rows {
		counts[row.PostID] = row.Count
	}
	return counts, nil
}
