package usecase

import (
	"context"
	"errors"
	"strings"

	"socialhub/pkg/logger"
	"socialhub/pkg/queue"
	"socialhub/services/interaction/internal/entity"
	"socialhub/services/interaction/internal/repo/persistent"
)

type CommentUseCase interface {
	ListComments(ctx context.Context, postID string) ([]*entity.Comment, error)
	CreateComment(ctx context.Context, userID, postID, content string, parentID *string) (*entity.Comment, error)
	DeleteComment(ctx context.Context, userID, commentID string) error
	CountComments(ctx context.Context, postID string) (int64, error)
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	postRepo    persistent.PostRepository
	profileRepo persistent.ProfileRepository
	publisher   NotificationPublisher
	logger      *logger.Logger
}

func NewCommentUseCase(
	commentRepo persistent.CommentRepository,
	postRepo persistent.PostRepository,
	profileRepo persistent.ProfileRepository,
	publisher NotificationPublisher,
	logger *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		profileRepo: profileRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *commentUseCase) ListComments(ctx context.Context, postID string) ([]*entity.Comment, error) {
	if _, err := uc.postRepo.GetAuthorID(ctx, postID); err != nil {
		return nil, err
	}

	flat, err := uc.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		uc.logger.Error("Failed to list comments for post %s: %v", postID, err)
		return nil, err
	}

	authors, err := uc.profileRepo.GetAuthors(ctx, uniqueAuthorIDs(flat))
	if err != nil {
		uc.logger.Error("Failed to load comment authors for post %s: %v", postID, err)
		return nil, err
	}
	for _, c := range flat {
		c.Author = authors[c.UserID]
	}

	return BuildCommentTree(flat), nil
}

func (uc *commentUseCase) CreateComment(ctx context.Context, userID, postID, content string, parentID *string) (*entity.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, entity.ErrEmptyComment
	}

	postAuthorID, err := uc.postRepo.GetAuthorID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if parentID != nil && *parentID == "" {
		parentID = nil
	}

	var parent *entity.Comment
	if parentID != nil {
		parent, err = uc.commentRepo.GetByID(ctx, *parentID)
		if err != nil {
			if errors.Is(err, entity.ErrCommentNotFound) {
				return nil, entity.ErrInvalidParent
			}
			return nil, err
		}
		if parent.PostID != postID || !parent.IsTopLevel() {
			return nil, entity.ErrInvalidParent
		}
	}

	comment := &entity.Comment{
		PostID:   postID,
		UserID:   userID,
		Content:  content,
		ParentID: parentID,
		Replies:  []*entity.Comment{},
	}
	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		uc.logger.Error("Failed to create comment on post %s: %v", postID, err)
		return nil, err
	}

	authors, err := uc.profileRepo.GetAuthors(ctx, []string{userID})
	if err != nil {
		uc.logger.Warn("Failed to load author for new comment %s: %v", comment.ID, err)
	} else {
		comment.Author = authors[userID]
	}

	notifyAsync(uc.publisher, uc.logger, queue.NotificationTask{
		Type:        queue.TaskComment,
		RecipientID: postAuthorID,
		ActorID:     userID,
		PostID:      postID,
		CommentID:   comment.ID,
		Priority:    5,
	})
	if parent != nil && parent.UserID != postAuthorID {
		notifyAsync(uc.publisher, uc.logger, queue.NotificationTask{
			Type:        queue.TaskReply,
			RecipientID: parent.UserID,
			ActorID:     userID,
			PostID:      postID,
			CommentID:   comment.ID,
			Priority:    5,
		})
	}

	return comment, nil
}

func (uc *commentUseCase) DeleteComment(ctx context.Context, userID, commentID string) error {
	comment, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		return entity.ErrForbidden
	}

	if err := uc.commentRepo.Delete(ctx, commentID); err != nil {
		uc.logger.Error("Failed to delete comment %s: %v", commentID, err)
		return err
	}
	return nil
}

func (uc *commentUseCase) CountComments(ctx context.Context, postID string) (int64, error) {
	if _, err := uc.postRepo.GetAuthorID(ctx, postID); err != nil {
		return 0, err
	}
	return uc.commentRepo.CountByPost(ctx, postID)
}
