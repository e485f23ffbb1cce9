package persistent

import (
	"context"
	"fmt"
	"strings"

	"socialhub/services/search/internal/entity"
	"socialhub/services/search/internal/model"

	"gorm.io/gorm"
)

type SearchRepository interface {
	SearchPosts(ctx context.Context, query string) ([]*entity.Post, error)
	SearchUsers(ctx context.Context, query string) ([]*entity.User, error)
	GetAuthors(ctx context.Context, ids []string) (map[string]*entity.Author, error)
}

type searchRepository struct {
	db *gorm.DB
}

func NewSearchRepository(db *gorm.DB) SearchRepository {
	return &searchRepository{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching query literally anywhere in a column.
func containsPattern(query string) string {
	return "%" + likeEscaper.Replace(query) + "%"
}

func (r *searchRepository) SearchPosts(ctx context.Context, query string) ([]*entity.Post, error) {
	pattern := containsPattern(query)

	var posts []model.PostModel
	err := r.db.WithContext(ctx).
		Where(`title ILIKE ? ESCAPE '\' OR content ILIKE ? ESCAPE '\'`, pattern, pattern).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}

	result := make([]*entity.Post, len(posts))
	for i := range posts {
		result[i] = ToPostEntity(&posts[i])
	}
	return result, nil
}

func (r *searchRepository) SearchUsers(ctx context.Context, query string) ([]*entity.User, error) {
	pattern := containsPattern(query)

	var profiles []model.ProfileModel
	err := r.db.WithContext(ctx).
		Select("id", "username", "full_name", "bio", "avatar_url").
		Where(`username ILIKE ? ESCAPE '\' OR full_name ILIKE ? ESCAPE '\'`, pattern, pattern).
		Find(&profiles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	result := make([]*entity.User, len(profiles))
	for i := range profiles {
		result[i] = ToUserEntity(&profiles[i])
	}
	return result, nil
}

func (r *searchRepository) GetAuthors(ctx context.Context, ids []string) (map[string]*entity.Author, error) {
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
