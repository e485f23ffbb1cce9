package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"socialhub/pkg/queue"
	"socialhub/services/interaction/internal/entity"
	"socialhub/services/interaction/internal/repo/persistent"
)

// fakeStore is an in-memory stand-in for every repository this package uses.
type fakeStore struct {
	mu sync.Mutex

	posts     map[string]*fakePost
	comments  map[string]*entity.Comment
	order     []string
	profiles  map[string]*fakeProfile
	likes     map[string]bool
	follows   map[string]bool
	authorIN  int
	nextID    int
	failCount bool
}

type fakePost struct {
	authorID  string
	likeCount int
}

type fakeProfile struct {
	username  string
	followers int
	following int
}

var (
	_ persistent.LikeRepository    = (*fakeStore)(nil)
	_ persistent.FollowRepository  = (*fakeStore)(nil)
	_ persistent.PostRepository    = (*fakeStore)(nil)
	_ persistent.CommentRepository = (*fakeStore)(nil)
	_ persistent.ProfileRepository = (*fakeStore)(nil)
)

func newFakeStore() *fakeStore {
	return &fakeStore{
		posts:    make(map[string]*fakePost),
		comments: make(map[string]*entity.Comment),
		profiles: make(map[string]*fakeProfile),
		likes:    make(map[string]bool),
		follows:  make(map[string]bool),
	}
}

func (s *fakeStore) addProfile(id, username string) {
	s.profiles[id] = &fakeProfile{username: username}
}

func (s *fakeStore) addPost(id, authorID string) {
	s.posts[id] = &fakePost{authorID: authorID}
}

func (s *fakeStore) addComment(id, postID, userID string, parentID *string) {
	s.comments[id] = &entity.Comment{ID: id, PostID: postID, UserID: userID, Content: "c-" + id, ParentID: parentID}
	s.order = append(s.order, id)
}

func likeKey(userID string, kind entity.TargetKind, targetID string) string {
	return userID + "|" + string(kind) + "|" + targetID
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func (s *fakeStore) IsLiked(ctx context.Context, userID string, kind entity.TargetKind, targetID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.likes[likeKey(userID, kind, targetID)], nil
}

func (s *fakeStore) CreateLike(ctx context.Context, like *entity.Like) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.likes[likeKey(like.UserID, like.Kind, like.TargetID)] = true
	return nil
}

func (s *fakeStore) DeleteLike(ctx context.Context, userID string, kind entity.TargetKind, targetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.likes, likeKey(userID, kind, targetID))
	return nil
}

func (s *fakeStore) AdjustLikeCount(ctx context.Context, kind entity.TargetKind, targetID string, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failCount {
		return 0, fmt.Errorf("store unavailable")
	}
	switch kind {
	case entity.TargetPost:
		p, ok := s.posts[targetID]
		if !ok {
			return 0, entity.ErrPostNotFound
		}
		p.likeCount = clamp(p.likeCount + delta)
		return p.likeCount, nil
	default:
		c, ok := s.comments[targetID]
		if !ok {
			return 0, entity.ErrCommentNotFound
		}
		c.LikeCount = clamp(c.LikeCount + delta)
		return c.LikeCount, nil
	}
}

func (s *fakeStore) GetLikeCount(ctx context.Context, kind entity.TargetKind, targetID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if kind == entity.TargetPost {
		p, ok := s.posts[targetID]
		if !ok {
			return 0, entity.ErrPostNotFound
		}
		return p.likeCount, nil
	}
	c, ok := s.comments[targetID]
	if !ok {
		return 0, entity.ErrCommentNotFound
	}
	return c.LikeCount, nil
}

func (s *fakeStore) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.follows[followerID+"|"+followingID], nil
}

func (s *fakeStore) CreateFollow(ctx context.Context, followerID, followingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.follows[followerID+"|"+followingID] = true
	return nil
}

func (s *fakeStore) DeleteFollow(ctx context.Context, followerID, followingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.follows, followerID+"|"+followingID)
	return nil
}

func (s *fakeStore) AdjustFollowersCount(ctx context.Context, profileID string, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[profileID]
	if !ok {
		return 0, entity.ErrProfileNotFound
	}
	p.followers = clamp(p.followers + delta)
	return p.followers, nil
}

func (s *fakeStore) AdjustFollowingCount(ctx context.Context, profileID string, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[profileID]
	if !ok {
		return 0, entity.ErrProfileNotFound
	}
	p.following = clamp(p.following + delta)
	return p.following, nil
}

func (s *fakeStore) ListFollowerIDs(ctx context.Context, userID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []string
	for id := range s.profiles {
		if s.follows[id+"|"+userID] {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *fakeStore) ListFollowingIDs(ctx context.Context, userID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []string
	for id := range s.profiles {
		if s.follows[userID+"|"+id] {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *fakeStore) GetAuthorID(ctx context.Context, postID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[postID]
	if !ok {
		return "", entity.ErrPostNotFound
	}
	return p.authorID, nil
}

func (s *fakeStore) ListByPost(ctx context.Context, postID string) ([]*entity.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Comment
	for _, id := range s.order {
		c, ok := s.comments[id]
		if ok && c.PostID == postID {
			copied := *c
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *fakeStore) GetByID(ctx context.Context, commentID string) (*entity.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.comments[commentID]
	if !ok {
		return nil, entity.ErrCommentNotFound
	}
	copied := *c
	return &copied, nil
}

func (s *fakeStore) Create(ctx context.Context, comment *entity.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	comment.ID = fmt.Sprintf("new-%d", s.nextID)
	comment.CreatedAt = time.Now()
	stored := *comment
	s.comments[comment.ID] = &stored
	s.order = append(s.order, comment.ID)
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, commentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.comments[commentID]; !ok {
		return entity.ErrCommentNotFound
	}
	delete(s.comments, commentID)
	for id, c := range s.comments {
		if c.ParentID != nil && *c.ParentID == commentID {
			delete(s.comments, id)
		}
	}
	return nil
}

func (s *fakeStore) CountByPost(ctx context.Context, postID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, c := range s.comments {
		if c.PostID == postID {
			n++
		}
	}
	return n, nil
}

func (s *fakeStore) GetCounts(ctx context.Context, profileID string) (int, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[profileID]
	if !ok {
		return 0, 0, entity.ErrProfileNotFound
	}
	return p.followers, p.following, nil
}

func (s *fakeStore) GetAuthors(ctx context.Context, ids []string) (map[string]*entity.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authorIN++
	out := make(map[string]*entity.Author, len(ids))
	for _, id := range ids {
		if p, ok := s.profiles[id]; ok {
			username := p.username
			out[id] = &entity.Author{ID: id, Username: &username}
		}
	}
	return out, nil
}

// recordingPublisher collects published tasks on a channel.
type recordingPublisher struct {
	tasks chan queue.NotificationTask
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{tasks: make(chan queue.NotificationTask, 16)}
}

func (p *recordingPublisher) PublishNotificationTask(ctx context.Context, task queue.NotificationTask) error {
	p.tasks <- task
	return nil
}
