package persistent

import (
	"context"
	"errors"
	"fmt"

	"socialhub/services/interaction/internal/entity"
	"socialhub/services/interaction/internal/model"

	"gorm.io/gorm"
)

type PostRepository interface {
	GetAuthorID(ctx context.Context, postID string) (string, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) GetAuthorID(ctx context.Context, postID string) (string, error) {
	var post model.PostModel
	err := r.db.WithContext(ctx).Select("id", "user_id").Where("id = ?", postID).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", entity.ErrPostNotFound
		}
		return "", fmt.Errorf("failed to load post: %w", err)
	}
	return post.UserID, nil
}
