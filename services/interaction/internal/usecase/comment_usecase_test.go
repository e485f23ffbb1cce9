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

func strPtr(s string) *string {
	return &s
}

func TestBuildCommentTree(t *testing.T) {
	flat := []*entity.Comment{
		{ID: "1"},
		{ID: "2", ParentID: strPtr("1")},
		{ID: "3", ParentID: strPtr("99")},
	}

	tree := BuildCommentTree(flat)

	require.Len(t, tree, 1)
	assert.Equal(t, "1", tree[0].ID)
	require.Len(t, tree[0].Replies, 1)
	assert.Equal(t, "2", tree[0].Replies[0].ID)
}

func TestBuildCommentTree_PreservesOrder(t *testing.T) {
	flat := []*entity.Comment{
		{ID: "a"},
		{ID: "b"},
		{ID: "b1", ParentID: strPtr("b")},
		{ID: "a1", ParentID: strPtr("a")},
		{ID: "b2", ParentID: strPtr("b")},
	}

	tree := BuildCommentTree(flat)

	require.Len(t, tree, 2)
	assert.Equal(t, "a", tree[0].ID)
	assert.Equal(t, "b", tree[1].ID)
	assert.Equal(t, "a1", tree[0].Replies[0].ID)
	require.Len(t, tree[1].Replies, 2)
	assert.Equal(t, "b1", tree[1].Replies[0].ID)
	assert.Equal(t, "b2", tree[1].Replies[1].ID)
}

func TestBuildCommentTree_Empty(t *testing.T) {
	tree := BuildCommentTree(nil)
	assert.NotNil(t, tree)
	assert.Empty(t, tree)
}

func TestBuildCommentTree_ReplyToReplyDropped(t *testing.T) {
	flat := []*entity.Comment{
		{ID: "1"},
		{ID: "2", ParentID: strPtr("1")},
		{ID: "3", ParentID: strPtr("2")},
	}

	tree := BuildCommentTree(flat)

	require.Len(t, tree, 1)
	require.Len(t, tree[0].Replies, 1)
	assert.Equal(t, "2", tree[0].Replies[0].ID)
}

func newCommentUseCase(store *fakeStore, publisher NotificationPublisher) CommentUseCase {
	return NewCommentUseCase(store, store, store, publisher, logger.New())
}

func TestListComments_AttachesAuthorsWithOneLookup(t *testing.T) {
	store := newFakeStore()
	store.addProfile("u1", "alice")
	store.addProfile("u2", "bob")
	store.addPost("post-1", "u1")
	store.addComment("1", "post-1", "u1", nil)
	store.addComment("2", "post-1", "u2", strPtr("1"))
	store.addComment("3", "post-1", "u1", strPtr("1"))
	store.addComment("4", "post-1", "u2", strPtr("99"))
	uc := newCommentUseCase(store, nil)

	tree, err := uc.ListComments(context.Background(), "post-1")
	require.NoError(t, err)

	assert.Equal(t, 1, store.authorIN)
	require.Len(t, tree, 1)
	assert.Equal(t, "alice", *tree[0].Author.Username)
	require.Len(t, tree[0].Replies, 2)
	assert.Equal(t, "bob", *tree[0].Replies[0].Author.Username)
	assert.Equal(t, "alice", *tree[0].Replies[1].Author.Username)
}

func TestListComments_PostNotFound(t *testing.T) {
	uc := newCommentUseCase(newFakeStore(), nil)

	_, err := uc.ListComments(context.Background(), "missing")
	assert.ErrorIs(t, err, entity.ErrPostNotFound)
}

func TestCreateComment_TopLevelNotifiesAuthor(t *testing.T) {
	store := newFakeStore()
	store.addProfile("author", "author")
	store.addProfile("reader", "reader")
	store.addPost("post-1", "author")
	publisher := newRecordingPublisher()
	uc := newCommentUseCase(store, publisher)

	comment, err := uc.CreateComment(context.Background(), "reader", "post-1", "  nice post  ", nil)
	require.NoError(t, err)
	assert.Equal(t, "nice post", comment.Content)
	assert.Nil(t, comment.ParentID)
	assert.Equal(t, "reader", *comment.Author.Username)

	select {
	case task := <-publisher.tasks:
		assert.Equal(t, queue.TaskComment, task.Type)
		assert.Equal(t, "author", task.RecipientID)
		assert.Equal(t, comment.ID, task.CommentID)
	case <-time.After(time.Second):
		t.Fatal("expected a comment notification")
	}
}

func TestCreateComment_EmptyContent(t *testing.T) {
	store := newFakeStore()
	store.addPost("post-1", "author")
	uc := newCommentUseCase(store, nil)

	_, err := uc.CreateComment(context.Background(), "reader", "post-1", "   ", nil)
	assert.ErrorIs(t, err, entity.ErrEmptyComment)
}

func TestCreateComment_Reply(t *testing.T) {
	store := newFakeStore()
	store.addPost("post-1", "author")
	store.addComment("1", "post-1", "author", nil)
	uc := newCommentUseCase(store, nil)

	reply, err := uc.CreateComment(context.Background(), "reader", "post-1", "reply", strPtr("1"))
	require.NoError(t, err)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, "1", *reply.ParentID)
}

func TestCreateComment_ReplyNotifiesPostAndParentAuthors(t *testing.T) {
	store := newFakeStore()
	store.addPost("post-1", "author")
	store.addComment("1", "post-1", "commenter", nil)
	publisher := newRecordingPublisher()
	uc := newCommentUseCase(store, publisher)

	_, err := uc.CreateComment(context.Background(), "reader", "post-1", "reply", strPtr("1"))
	require.NoError(t, err)

	got := map[queue.TaskType]string{}
	for i := 0; i < 2; i++ {
		select {
		case task := <-publisher.tasks:
			got[task.Type] = task.RecipientID
		case <-time.After(time.Second):
			t.Fatal("expected two notifications")
		}
	}
	assert.Equal(t, map[queue.TaskType]string{queue.TaskComment: "author", queue.TaskReply: "commenter"}, got)
}

func TestCreateComment_InvalidParent(t *testing.T) {
	store := newFakeStore()
	store.addPost("post-1", "author")
	store.addPost("post-2", "author")
	store.addComment("1", "post-1", "author", nil)
	store.addComment("2", "post-1", "author", strPtr("1"))
	store.addComment("other", "post-2", "author", nil)
	uc := newCommentUseCase(store, nil)
	ctx := context.Background()

	_, err := uc.CreateComment(ctx, "reader", "post-1", "x", strPtr("2"))
	assert.ErrorIs(t, err, entity.ErrInvalidParent)

	_, err = uc.CreateComment(ctx, "reader", "post-1", "x", strPtr("other"))
	assert.ErrorIs(t, err, entity.ErrInvalidParent)

	_, err = uc.CreateComment(ctx, "reader", "post-1", "x", strPtr("missing"))
	assert.ErrorIs(t, err, entity.ErrInvalidParent)
}

func TestDeleteComment(t *testing.T) {
	store := newFakeStore()
	store.addPost("post-1", "author")
	store.addComment("1", "post-1", "author", nil)
	store.addComment("2", "post-1", "reader", strPtr("1"))
	uc := newCommentUseCase(store, nil)
	ctx := context.Background()

	err := uc.DeleteComment(ctx, "reader", "1")
	assert.ErrorIs(t, err, entity.ErrForbidden)

	err = uc.DeleteComment(ctx, "author", "1")
	require.NoError(t, err)

	count, err := uc.CountComments(ctx, "post-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
