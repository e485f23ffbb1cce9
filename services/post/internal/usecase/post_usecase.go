package usecase

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"socialhub/pkg/logger"
	"socialhub/pkg/s3"
	"socialhub/services/post/internal/entity"
	"socialhub/services/post/internal/repo/persistent"

	"github.com/google/uuid"
)

type ObjectStorage interface {
	Upload(ctx context.Context, bucket, key string, body io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, bucket, key string) error
}

type UpdatePostInput struct {
	Title       *string
	Content     *string
	Image       *multipart.FileHeader
	RemoveImage bool
}

type PostUseCase interface {
	CreatePost(ctx context.Context, userID, title, content string, image *multipart.FileHeader) (*entity.Post, error)
	GetPost(ctx context.Context, postID string) (*entity.Post, error)
	GetFeed(ctx context.Context, page int) (*entity.FeedPage, error)
	GetFollowingFeed(ctx context.Context, userID string, page int) (*entity.FeedPage, error)
	GetUserPosts(ctx context.Context, userID string, page int) (*entity.FeedPage, error)
	UpdatePost(ctx context.Context, postID, userID string, input UpdatePostInput) (*entity.Post, error)
	DeletePost(ctx context.Context, postID, userID string) error
}

type postUseCase struct {
	postRepo    persistent.PostRepository
	profileRepo persistent.ProfileRepository
	storage     ObjectStorage
	bucket      string
	logger      *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	profileRepo persistent.ProfileRepository,
	storage ObjectStorage,
	bucket string,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:    postRepo,
		profileRepo: profileRepo,
		storage:     storage,
		bucket:      bucket,
		logger:      logger,
	}
}

func validateImage(image *multipart.FileHeader) error {
	if image.Size > entity.MaxImageSize {
		return entity.ErrImageTooLarge
	}
	if !strings.HasPrefix(image.Header.Get("Content-Type"), "image/") {
		return entity.ErrInvalidImageType
	}
	return nil
}

func (uc *postUseCase) uploadImage(ctx context.Context, userID string, image *multipart.FileHeader) (string, error) {
	src, err := image.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	fileKey := fmt.Sprintf("posts/%s/%s%s", userID, uuid.New().String(), strings.ToLower(filepath.Ext(image.Filename)))
	imageURL, err := uc.storage.Upload(ctx, uc.bucket, fileKey, src, image.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}
	return imageURL, nil
}

// removeImage deletes a stored image best-effort; failures are only logged.
func (uc *postUseCase) removeImage(ctx context.Context, imageURL *string) {
	if imageURL == nil {
		return
	}
	key, ok := s3.KeyFromURL(uc.bucket, *imageURL)
	if !ok {
		uc.logger.Warn("Could not derive object key from image URL %s", *imageURL)
		return
	}
	if err := uc.storage.Delete(ctx, uc.bucket, key); err != nil {
		uc.logger.Warn("Failed to delete image %s: %v", key, err)
	}
}

func (uc *postUseCase) CreatePost(ctx context.Context, userID, title, content string, image *multipart.FileHeader) (*entity.Post, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return nil, entity.ErrTitleRequired
	}
	if content == "" {
		return nil, entity.ErrContentRequired
	}

	post := &entity.Post{
		UserID:  userID,
		Title:   title,
		Content: content,
	}

	if image != nil {
		if err := validateImage(image); err != nil {
			return nil, err
		}
		imageURL, err := uc.uploadImage(ctx, userID, image)
		if err != nil {
			uc.logger.Error("Failed to upload post image: %v", err)
			return nil, err
		}
		post.ImageURL = &imageURL
	}

	if err := uc.postRepo.Create(ctx, post); err != nil {
		uc.logger.Error("Failed to create post: %v", err)
		uc.removeImage(context.Background(), post.ImageURL)
		return nil, err
	}

	post.Author = uc.author(ctx, userID)
	return post, nil
}

func (uc *postUseCase) author(ctx context.Context, userID string) *entity.Author {
	authors, err := uc.profileRepo.GetAuthors(ctx, []string{userID})
	if err != nil {
		uc.logger.Warn("Failed to load author %s: %v", userID, err)
		return nil
	}
	return authors[userID]
}

func (uc *postUseCase) GetPost(ctx context.Context, postID string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := uc.enrich(ctx, []*entity.Post{post}); err != nil {
		return nil, err
	}
	return post, nil
}

func (uc *postUseCase) GetFeed(ctx context.Context, page int) (*entity.FeedPage, error) {
	return uc.page(ctx, page, func(limit, offset int) ([]*entity.Post, error) {
		return uc.postRepo.List(ctx, limit, offset)
	})
}

func (uc *postUseCase) GetFollowingFeed(ctx context.Context, userID string, page int) (*entity.FeedPage, error) {
	return uc.page(ctx, page, func(limit, offset int) ([]*entity.Post, error) {
		return uc.postRepo.ListFollowing(ctx, userID, limit, offset)
	})
}

func (uc *postUseCase) GetUserPosts(ctx context.Context, userID string, page int) (*entity.FeedPage, error) {
	return uc.page(ctx, page, func(limit, offset int) ([]*entity.Post, error) {
		return uc.postRepo.ListByUser(ctx, userID, limit, offset)
	})
}

// page fetches one row past PageSize to learn whether another page exists.
func (uc *postUseCase) page(ctx context.Context, page int, fetch func(limit, offset int) ([]*entity.Post, error)) (*entity.FeedPage, error) {
	if page < 0 {
		page = 0
	}

	posts, err := fetch(entity.PageSize+1, page*entity.PageSize)
	if err != nil {
		uc.logger.Error("Failed to fetch posts page %d: %v", page, err)
		return nil, err
	}

	hasMore := len(posts) > entity.PageSize
	if hasMore {
		posts = posts[:entity.PageSize]
	}

	if err := uc.enrich(ctx, posts); err != nil {
		return nil, err
	}

	return &entity.FeedPage{Posts: posts, Page: page, HasMore: hasMore}, nil
}

// enrich attaches authors and comment counts with one query each.
func (uc *postUseCase) enrich(ctx context.Context, posts []*entity.Post) error {
	if len(posts) == 0 {
		return nil
	}

	postIDs := make([]string, 0, len(posts))
	authorIDs := make([]string, 0, len(posts))
	seen := make(map[string]struct{}, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
		if _, ok := seen[post.UserID]; !ok {
			seen[post.UserID] = struct{}{}
			authorIDs = append(authorIDs, post.UserID)
		}
	}

	authors, err := uc.profileRepo.GetAuthors(ctx, authorIDs)
	if err != nil {
		uc.logger.Error("Failed to load post authors: %v", err)
		return err
	}
	counts, err := uc.postRepo.CommentCounts(ctx, postIDs)
	if err != nil {
		uc.logger.Error("Failed to load comment counts: %v", err)
		return err
	}

	for _, post := range posts {
		post.Author = authors[post.UserID]
		post.CommentCount = counts[post.ID]
	}
	return nil
}

func (uc *postUseCase) UpdatePost(ctx context.Context, postID, userID string, input UpdatePostInput) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != userID {
		return nil, entity.ErrForbidden
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, entity.ErrTitleRequired
		}
		post.Title = title
	}
	if input.Content != nil {
		content := strings.TrimSpace(*input.Content)
		if content == "" {
			return nil, entity.ErrContentRequired
		}
		post.Content = content
	}

	oldImage := post.ImageURL
	replacedImage := false
	if input.Image != nil {
		if err := validateImage(input.Image); err != nil {
			return nil, err
		}
		imageURL, err := uc.uploadImage(ctx, userID, input.Image)
		if err != nil {
			uc.logger.Error("Failed to upload post image: %v", err)
			return nil, err
		}
		post.ImageURL = &imageURL
		replacedImage = true
	} else if input.RemoveImage {
		post.ImageURL = nil
		replacedImage = true
	}

	now := time.Now()
	post.UpdatedAt = &now

	if err := uc.postRepo.Update(ctx, post); err != nil {
		uc.logger.Error("Failed to update post %s: %v", postID, err)
		if input.Image != nil {
			uc.removeImage(context.Background(), post.ImageURL)
		}
		return nil, err
	}

	if replacedImage {
		uc.removeImage(ctx, oldImage)
	}

	if err := uc.enrich(ctx, []*entity.Post{post}); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes the image best-effort before the row.
func (uc *postUseCase) DeletePost(ctx context.Context, postID, userID string) error {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return entity.ErrForbidden
	}

	uc.removeImage(ctx, post.ImageURL)

	if err := uc.postRepo.Delete(ctx, postID); err != nil {
		uc.logger.Error("Failed to delete post %s: %v", postID, err)
		return err
	}
	return nil
}
