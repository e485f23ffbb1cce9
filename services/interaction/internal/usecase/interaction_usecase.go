package usecase

import (
	"context"
	"fmt"

	"socialhub/pkg/logger"
	"socialhub/pkg/queue"
	"socialhub/services/interaction/internal/entity"
	"socialhub/services/interaction/internal/repo/persistent"
)

type InteractionUseCase interface {
	ToggleLike(ctx context.Context, userID string, kind entity.TargetKind, targetID string) (*entity.LikeState, error)
	GetLikeState(ctx context.Context, userID string, kind entity.TargetKind, targetID string) (*entity.LikeState, error)
	ToggleFollow(ctx context.Context, followerID, targetID string) (*entity.FollowState, error)
	GetFollowState(ctx context.Context, followerID, targetID string) (*entity.FollowState, error)
	ListFollowers(ctx context.Context, userID string) ([]*entity.Author, error)
	ListFollowing(ctx context.Context, userID string) ([]*entity.Author, error)
}

type interactionUseCase struct {
	likeRepo    persistent.LikeRepository
	followRepo  persistent.FollowRepository
	postRepo    persistent.PostRepository
	commentRepo persistent.CommentRepository
	profileRepo persistent.ProfileRepository
	publisher   NotificationPublisher
	logger      *logger.Logger
}

func NewInteractionUseCase(
	likeRepo persistent.LikeRepository,
	followRepo persistent.FollowRepository,
	postRepo persistent.PostRepository,
	commentRepo persistent.CommentRepository,
	profileRepo persistent.ProfileRepository,
	publisher NotificationPublisher,
	logger *logger.Logger,
) InteractionUseCase {
	return &interactionUseCase{
		likeRepo:    likeRepo,
		followRepo:  followRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		profileRepo: profileRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// likeTarget resolves who owns the target and, for comments, which post it lives on.
func (uc *interactionUseCase) likeTarget(ctx context.Context, kind entity.TargetKind, targetID string) (ownerID, postID string, err error) {
	switch kind {
	case entity.TargetPost:
		ownerID, err = uc.postRepo.GetAuthorID(ctx, targetID)
		return ownerID, targetID, err
	case entity.TargetComment:
		comment, err := uc.commentRepo.GetByID(ctx, targetID)
		if err != nil {
			return "", "", err
		}
		return comment.UserID, comment.PostID, nil
	default:
		return "", "", entity.ErrInvalidTarget
	}
}

// ToggleLike removes the caller's like when present and adds it otherwise. The
// returned count is the value stored by the clamped counter update.
func (uc *interactionUseCase) ToggleLike(ctx context.Context, userID string, kind entity.TargetKind, targetID string) (*entity.LikeState, error) {
	ownerID, postID, err := uc.likeTarget(ctx, kind, targetID)
	if err != nil {
		return nil, err
	}

	liked, err := uc.likeRepo.IsLiked(ctx, userID, kind, targetID)
	if err != nil {
		uc.logger.Error("Failed to check like status: %v", err)
		return nil, fmt.Errorf("failed to check like status: %w", err)
	}

	if liked {
		if err := uc.likeRepo.DeleteLike(ctx, userID, kind, targetID); err != nil {
			uc.logger.Error("Failed to delete like: %v", err)
			return nil, fmt.Errorf("failed to unlike %s: %w", kind, err)
		}
		count, err := uc.likeRepo.AdjustLikeCount(ctx, kind, targetID, -1)
		if err != nil {
			uc.logger.Error("Failed to decrement like count for %s %s: %v", kind, targetID, err)
			return nil, err
		}
		return &entity.LikeState{Liked: false, LikeCount: count}, nil
	}

	like := &entity.Like{UserID: userID, Kind: kind, TargetID: targetID}
	if err := uc.likeRepo.CreateLike(ctx, like); err != nil {
		uc.logger.Error("Failed to create like: %v", err)
		return nil, fmt.Errorf("failed to like %s: %w", kind, err)
	}
	count, err := uc.likeRepo.AdjustLikeCount(ctx, kind, targetID, 1)
	if err != nil {
		uc.logger.Error("Failed to increment like count for %s %s: %v", kind, targetID, err)
		return nil, err
	}

	task := queue.NotificationTask{
		Type:        queue.TaskLike,
		RecipientID: ownerID,
		ActorID:     userID,
		PostID:      postID,
		Priority:    3,
	}
	if kind == entity.TargetComment {
		task.CommentID = targetID
	}
	notifyAsync(uc.publisher, uc.logger, task)

	return &entity.LikeState{Liked: true, LikeCount: count}, nil
}

func (uc *interactionUseCase) GetLikeState(ctx context.Context, userID string, kind entity.TargetKind, targetID string) (*entity.LikeState, error) {
	if !kind.Valid() {
		return nil, entity.ErrInvalidTarget
	}

	count, err := uc.likeRepo.GetLikeCount(ctx, kind, targetID)
	if err != nil {
		return nil, err
	}

	state := &entity.LikeState{LikeCount: count}
	if userID == "" {
		return state, nil
	}

	state.Liked, err = uc.likeRepo.IsLiked(ctx, userID, kind, targetID)
	if err != nil {
		return nil, err
	}
	return state, nil
}

// ToggleFollow flips the follow edge and moves both counters by the same delta.
// Each step is its own round trip; a failed counter update leaves the edge change in place.
func (uc *interactionUseCase) ToggleFollow(ctx context.Context, followerID, targetID string) (*entity.FollowState, error) {
	if followerID == targetID {
		return nil, entity.ErrSelfFollow
	}

	if _, _, err := uc.profileRepo.GetCounts(ctx, targetID); err != nil {
		return nil, err
	}

	following, err := uc.followRepo.IsFollowing(ctx, followerID, targetID)
	if err != nil {
		uc.logger.Error("Failed to check follow status: %v", err)
		return nil, fmt.Errorf("failed to check follow status: %w", err)
	}

	delta := 1
	if following {
		delta = -1
		err = uc.followRepo.DeleteFollow(ctx, followerID, targetID)
	} else {
		err = uc.followRepo.CreateFollow(ctx, followerID, targetID)
	}
	if err != nil {
		uc.logger.Error("Failed to toggle follow %s -> %s: %v", followerID, targetID, err)
		return nil, err
	}

	followers, err := uc.followRepo.AdjustFollowersCount(ctx, targetID, delta)
	if err != nil {
		uc.logger.Error("Failed to adjust followers_count for %s: %v", targetID, err)
		return nil, err
	}
	followingCount, err := uc.followRepo.AdjustFollowingCount(ctx, followerID, delta)
	if err != nil {
		uc.logger.Error("Failed to adjust following_count for %s: %v", followerID, err)
		return nil, err
	}

	if !following {
		notifyAsync(uc.publisher, uc.logger, queue.NotificationTask{
			Type:        queue.TaskFollow,
			RecipientID: targetID,
			ActorID:     followerID,
			Priority:    4,
		})
	}

	return &entity.FollowState{
		Following:      !following,
		FollowersCount: followers,
		FollowingCount: followingCount,
	}, nil
}

func (uc *interactionUseCase) GetFollowState(ctx context.Context, followerID, targetID string) (*entity.FollowState, error) {
	followers, _, err := uc.profileRepo.GetCounts(ctx, targetID)
	if err != nil {
		return nil, err
	}

	state := &entity.FollowState{FollowersCount: followers}
	if followerID == "" || followerID == targetID {
		return state, nil
	}

	state.Following, err = uc.followRepo.IsFollowing(ctx, followerID, targetID)
	if err != nil {
		return nil, err
	}
	_, state.FollowingCount, err = uc.profileRepo.GetCounts(ctx, followerID)
	if err != nil {
		return nil, err
	}
	return state, nil
}

func (uc *interactionUseCase) ListFollowers(ctx context.Context, userID string) ([]*entity.Author, error) {
	if _, _, err := uc.profileRepo.GetCounts(ctx, userID); err != nil {
		return nil, err
	}
	ids, err := uc.followRepo.ListFollowerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.orderedAuthors(ctx, ids)
}

func (uc *interactionUseCase) ListFollowing(ctx context.Context, userID string) ([]*entity.Author, error) {
	if _, _, err := uc.profileRepo.GetCounts(ctx, userID); err != nil {
		return nil, err
	}
	ids, err := uc.followRepo.ListFollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.orderedAuthors(ctx, ids)
}

func (uc *interactionUseCase) orderedAuthors(ctx context.Context, ids []string) ([]*entity.Author, error) {
	authors, err := uc.profileRepo.GetAuthors(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.Author, 0, len(ids))
	for _, id := range ids {
		if author, ok := authors[id]; ok {
			result = append(result, author)
		}
	}
	return result, nil
}
