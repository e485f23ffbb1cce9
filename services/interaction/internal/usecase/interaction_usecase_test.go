package usecase

import (
	"context"
	"testing"
	"time"

	"socialhub/pkg/logger"
	"socialhub/pkg/queue"
	"socialhub/services/interaction/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInteractionUseCase(store *fakeStore, publisher NotificationPublisher) InteractionUseCase {
	return NewInteractionUseCase(store, store, store, store, store, publisher, logger.New())
}

func TestToggleLike_LikeThenUnlikeRestoresCount(t *testing.T) {
	store := newFakeStore()
	store.addProfile("author", "author")
	store.addPost("post-1", "author")
	store.posts["post-1"].likeCount = 7
	uc := newInteractionUseCase(store, nil)
	ctx := context.Background()

	state, err := uc.ToggleLike(ctx, "liker", entity.TargetPost, "post-1")
	require.NoError(t, err)
	assert.True(t, state.Liked)
	assert.Equal(t, 8, state.LikeCount)

	state, err = uc.ToggleLike(ctx, "liker", entity.TargetPost, "post-1")
	require.NoError(t, err)
	assert.False(t, state.Liked)
	assert.Equal(t, 7, state.LikeCount)
	assert.Equal(t, 7, store.posts["post-1"].likeCount)
}

func TestToggleLike_CountNeverNegative(t *testing.T) {
	store := newFakeStore()
	store.addPost("post-1", "author")
	store.likes[likeKey("liker", entity.TargetPost, "post-1")] = true
	uc := newInteractionUseCase(store, nil)

	state, err := uc.ToggleLike(context.Background(), "liker", entity.TargetPost, "post-1")
	require.NoError(t, err)
	assert.False(t, state.Liked)
	assert.Equal(t, 0, state.LikeCount)
}

func TestToggleLike_Comment(t *testing.T) {
	store := newFakeStore()
	store.addPost("post-1", "author")
	store.addComment("c1", "post-1", "commenter", nil)
	publisher := newRecordingPublisher()
	uc := newInteractionUseCase(store, publisher)

	state, err := uc.ToggleLike(context.Background(), "liker", entity.TargetComment, "c1")
	require.NoError(t, err)
	assert.True(t, state.Liked)
	assert.Equal(t, 1, state.LikeCount)

	select {
	case task := <-publisher.tasks:
		assert.Equal(t, queue.TaskLike, task.Type)
		assert.Equal(t, "commenter", task.RecipientID)
		assert.Equal(t, "c1", task.CommentID)
		assert.Equal(t, "post-1", task.PostID)
	case <-time.After(time.Second):
		t.Fatal("expected a like notification")
	}
}

func TestToggleLike_TargetNotFound(t *testing.T) {
	store := newFakeStore()
	uc := newInteractionUseCase(store, nil)

	_, err := uc.ToggleLike(context.Background(), "liker", entity.TargetPost, "missing")
	assert.ErrorIs(t, err, entity.ErrPostNotFound)

	_, err = uc.ToggleLike(context.Background(), "liker", entity.TargetComment, "missing")
	assert.ErrorIs(t, err, entity.ErrCommentNotFound)
}

func TestToggleLike_InvalidKind(t *testing.T) {
	uc := newInteractionUseCase(newFakeStore(), nil)

	_, err := uc.ToggleLike(context.Background(), "liker", entity.TargetKind("profile"), "x")
	assert.ErrorIs(t, err, entity.ErrInvalidTarget)
}

func TestToggleLike_CounterFailureKeepsLikeRow(t *testing.T) {
	store := newFakeStore()
	store.addPost("post-1", "author")
	store.failCount = true
	uc := newInteractionUseCase(store, nil)

	_, err := uc.ToggleLike(context.Background(), "liker", entity.TargetPost, "post-1")
	assert.Error(t, err)
	assert.True(t, store.likes[likeKey("liker", entity.TargetPost, "post-1")])
}

func TestToggleLike_OwnPostDoesNotNotify(t *testing.T) {
	store := newFakeStore()
	store.addPost("post-1", "author")
	publisher := newRecordingPublisher()
	uc := newInteractionUseCase(store, publisher)

	_, err := uc.ToggleLike(context.Background(), "author", entity.TargetPost, "post-1")
	require.NoError(t, err)

	select {
	case task := <-publisher.tasks:
		t.Fatalf("unexpected notification: %+v", task)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestGetLikeState(t *testing.T) {
	store := newFakeStore()
	store.addPost("post-1", "author")
	store.posts["post-1"].likeCount = 2
	store.likes[likeKey("viewer", entity.TargetPost, "post-1")] = true
	uc := newInteractionUseCase(store, nil)

	state, err := uc.GetLikeState(context.Background(), "viewer", entity.TargetPost, "post-1")
	require.NoError(t, err)
	assert.True(t, state.Liked)
	assert.Equal(t, 2, state.LikeCount)

	state, err = uc.GetLikeState(context.Background(), "", entity.TargetPost, "post-1")
	require.NoError(t, err)
	assert.False(t, state.Liked)
}

func TestToggleFollow_FollowThenUnfollowRestoresCounts(t *testing.T) {
	store := newFakeStore()
	store.addProfile("alice", "alice")
	store.addProfile("bob", "bob")
	store.profiles["bob"].followers = 3
	store.profiles["alice"].following = 5
	publisher := newRecordingPublisher()
	uc := newInteractionUseCase(store, publisher)
	ctx := context.Background()

	state, err := uc.ToggleFollow(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.True(t, state.Following)
	assert.Equal(t, 4, state.FollowersCount)
	assert.Equal(t, 6, state.FollowingCount)

	select {
	case task := <-publisher.tasks:
		assert.Equal(t, queue.TaskFollow, task.Type)
		assert.Equal(t, "bob", task.RecipientID)
		assert.Equal(t, "alice", task.ActorID)
	case <-time.After(time.Second):
		t.Fatal("expected a follow notification")
	}

	state, err = uc.ToggleFollow(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.False(t, state.Following)
	assert.Equal(t, 3, state.FollowersCount)
	assert.Equal(t, 5, state.FollowingCount)
}

func TestToggleFollow_SelfRejected(t *testing.T) {
	store := newFakeStore()
	store.addProfile("alice", "alice")
	uc := newInteractionUseCase(store, nil)

	_, err := uc.ToggleFollow(context.Background(), "alice", "alice")
	assert.ErrorIs(t, err, entity.ErrSelfFollow)
	assert.Empty(t, store.follows)
	assert.Equal(t, 0, store.profiles["alice"].followers)
}

func TestToggleFollow_UnknownTarget(t *testing.T) {
	store := newFakeStore()
	store.addProfile("alice", "alice")
	uc := newInteractionUseCase(store, nil)

	_, err := uc.ToggleFollow(context.Background(), "alice", "ghost")
	assert.ErrorIs(t, err, entity.ErrProfileNotFound)
}

func TestToggleFollow_CountersClampAtZero(t *testing.T) {
	store := newFakeStore()
	store.addProfile("alice", "alice")
	store.addProfile("bob", "bob")
	store.follows["alice|bob"] = true
	uc := newInteractionUseCase(store, nil)

	state, err := uc.ToggleFollow(context.Background(), "alice", "bob")
	require.NoError(t, err)
	assert.False(t, state.Following)
	assert.Equal(t, 0, state.FollowersCount)
	assert.Equal(t, 0, state.FollowingCount)
}

func TestListFollowers(t *testing.T) {
	store := newFakeStore()
	store.addProfile("alice", "alice")
	store.addProfile("bob", "bob")
	store.follows["alice|bob"] = true
	uc := newInteractionUseCase(store, nil)

	followers, err := uc.ListFollowers(context.Background(), "bob")
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, "alice", followers[0].ID)

	following, err := uc.ListFollowing(context.Background(), "bob")
	require.NoError(t, err)
	assert.Empty(t, following)
}
