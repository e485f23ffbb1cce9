package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"socialhub/pkg/logger"
	"socialhub/services/search/internal/entity"
	"socialhub/services/search/internal/repo/persistent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSearchRepository struct {
	mock.Mock
}

func (m *MockSearchRepository) SearchPosts(ctx context.Context, query string) ([]*entity.Post, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockSearchRepository) SearchUsers(ctx context.Context, query string) ([]*entity.User, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockSearchRepository) GetAuthors(ctx context.Context, ids []string) (map[string]*entity.Author, error) {
	args := m.Called(ids)
	return args.Get(0).(map[string]*entity.Author), args.Error(1)
}

var _ persistent.SearchRepository = (*MockSearchRepository)(nil)

type fakeTracker struct {
	mu     sync.Mutex
	latest map[string]int64
	err    error
}

func newFakeTracker() *fakeTracker {
	return &fakeTracker{latest: map[string]int64{}}
}

func (f *fakeTracker) Advance(ctx context.Context, caller string, gen int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	if cur, ok := f.latest[caller]; ok && gen < cur {
		return false, nil
	}
	f.latest[caller] = gen
	return true, nil
}

func (f *fakeTracker) IsCurrent(ctx context.Context, caller string, gen int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	cur, ok := f.latest[caller]
	return !ok || gen >= cur, nil
}

func gen(n int64) *int64 { return &n }

func strPtr(s string) *string { return &s }

func TestSearch_PostsThenUsers(t *testing.T) {
	repo := new(MockSearchRepository)
	uc := NewSearchUseCase(repo, newFakeTracker(), logger.New())

	repo.On("SearchPosts", "cat").Return([]*entity.Post{
		{ID: "p1", UserID: "a"},
		{ID: "p2", UserID: "b"},
		{ID: "p3", UserID: "a"},
	}, nil)
	repo.On("GetAuthors", []string{"a", "b"}).Return(map[string]*entity.Author{
		"a": {ID: "a", Username: strPtr("alice")},
		"b": {ID: "b", Username: strPtr("bob")},
	}, nil)
	repo.On("SearchUsers", "cat").Return([]*entity.User{{ID: "u1", Username: strPtr("catlover")}}, nil)

	resp, err := uc.Search(context.Background(), SearchRequest{Caller: "me", Query: " cat ", Scope: "all", Generation: gen(1)})
	require.NoError(t, err)
	assert.False(t, resp.Stale)
	require.Len(t, resp.Results, 4)

	kinds := []string{}
	for _, r := range resp.Results {
		kinds = append(kinds, r.Kind)
	}
	assert.Equal(t, []string{"post", "post", "post", "user"}, kinds)
	assert.Equal(t, "alice", *resp.Results[0].Post.Author.Username)
	assert.Equal(t, "bob", *resp.Results[1].Post.Author.Username)
	assert.Equal(t, "u1", resp.Results[3].User.ID)
	repo.AssertNumberOfCalls(t, "GetAuthors", 1)
}

func TestSearch_ScopeFiltering(t *testing.T) {
	repo := new(MockSearchRepository)
	uc := NewSearchUseCase(repo, nil, logger.New())

	repo.On("SearchUsers", "bo").Return([]*entity.User{{ID: "u1"}}, nil)

	resp, err := uc.Search(context.Background(), SearchRequest{Query: "bo", Scope: "users"})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, entity.KindUser, resp.Results[0].Kind)
	repo.AssertNotCalled(t, "SearchPosts", mock.Anything)
}

func TestSearch_InvalidScope(t *testing.T) {
	uc := NewSearchUseCase(new(MockSearchRepository), nil, logger.New())

	_, err := uc.Search(context.Background(), SearchRequest{Query: "x", Scope: "comments"})
	assert.ErrorIs(t, err, entity.ErrInvalidScope)
}

func TestSearch_EmptyQuery(t *testing.T) {
	repo := new(MockSearchRepository)
	uc := NewSearchUseCase(repo, nil, logger.New())

	resp, err := uc.Search(context.Background(), SearchRequest{Query: "   "})
	require.NoError(t, err)
	assert.NotNil(t, resp.Results)
	assert.Empty(t, resp.Results)
	repo.AssertNotCalled(t, "SearchPosts", mock.Anything)
	repo.AssertNotCalled(t, "SearchUsers", mock.Anything)
}

func TestSearch_OlderGenerationAnsweredStaleWithoutQuerying(t *testing.T) {
	repo := new(MockSearchRepository)
	tracker := newFakeTracker()
	tracker.latest["me"] = 5
	uc := NewSearchUseCase(repo, tracker, logger.New())

	resp, err := uc.Search(context.Background(), SearchRequest{Caller: "me", Query: "cat", Generation: gen(4)})
	require.NoError(t, err)
	assert.True(t, resp.Stale)
	assert.Empty(t, resp.Results)
	repo.AssertNotCalled(t, "SearchPosts", mock.Anything)
}

func TestSearch_SupersededWhileRunning(t *testing.T) {
	repo := new(MockSearchRepository)
	tracker := newFakeTracker()
	uc := NewSearchUseCase(repo, tracker, logger.New())

	// a newer request arrives while the posts query for generation 1 is in flight
	repo.On("SearchPosts", "ca").Run(func(mock.Arguments) {
		ok, _ := tracker.Advance(context.Background(), "me", 2)
		require.True(t, ok)
	}).Return([]*entity.Post{}, nil)
	repo.On("GetAuthors", []string{}).Return(map[string]*entity.Author{}, nil)
	repo.On("SearchUsers", "ca").Return([]*entity.User{{ID: "u1"}}, nil)

	resp, err := uc.Search(context.Background(), SearchRequest{Caller: "me", Query: "ca", Generation: gen(1)})
	require.NoError(t, err)
	assert.True(t, resp.Stale)
	assert.Empty(t, resp.Results)
}

func TestSearch_TrackerOutageFailsOpen(t *testing.T) {
	repo := new(MockSearchRepository)
	tracker := newFakeTracker()
	tracker.err = errors.New("redis down")
	uc := NewSearchUseCase(repo, tracker, logger.New())

	repo.On("SearchUsers", "x").Return([]*entity.User{{ID: "u1"}}, nil)

	resp, err := uc.Search(context.Background(), SearchRequest{Caller: "me", Query: "x", Scope: "users", Generation: gen(1)})
	require.NoError(t, err)
	assert.False(t, resp.Stale)
	assert.Len(t, resp.Results, 1)
}

func TestSearch_StoreFailure(t *testing.T) {
	repo := new(MockSearchRepository)
	uc := NewSearchUseCase(repo, nil, logger.New())

	repo.On("SearchPosts", "x").Return(nil, errors.New("db down"))

	_, err := uc.Search(context.Background(), SearchRequest{Query: "x", Scope: "posts"})
	assert.Error(t, err)
}
