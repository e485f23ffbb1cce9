package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"socialhub/pkg/logger"
	"socialhub/services/interaction/internal/entity"
	"socialhub/services/interaction/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCommentUseCase is a mock implementation of CommentUseCase
type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) ListComments(ctx context.Context, postID string) ([]*entity.Comment, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) CreateComment(ctx context.Context, userID, postID, content string, parentID *string) (*entity.Comment, error) {
	args := m.Called(userID, postID, content, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) DeleteComment(ctx context.Context, userID, commentID string) error {
	args := m.Called(userID, commentID)
	return args.Error(0)
}

func (m *MockCommentUseCase) CountComments(ctx context.Context, postID string) (int64, error) {
	args := m.Called(postID)
	return args.Get(0).(int64), args.Error(1)
}

var _ usecase.CommentUseCase = (*MockCommentUseCase)(nil)

func TestListComments(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts/:post_id/comments", handler.ListComments)

	parent := "1"
	tree := []*entity.Comment{
		{ID: "1", PostID: "post-1", Content: "top", Replies: []*entity.Comment{
			{ID: "2", PostID: "post-1", Content: "reply", ParentID: &parent, Replies: []*entity.Comment{}},
		}},
	}
	mockUseCase.On("ListComments", "post-1").Return(tree, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/post-1/comments", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Comments []*entity.Comment `json:"comments"`
		Count    int               `json:"count"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 1, response.Count)
	assert.Len(t, response.Comments[0].Replies, 1)
}

func TestCreateComment_Success(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:post_id/comments", withUser("user-1", handler.CreateComment))

	parent := "c1"
	mockUseCase.On("CreateComment", "user-1", "post-1", "hello", &parent).
		Return(&entity.Comment{ID: "c2", PostID: "post-1", Content: "hello", ParentID: &parent}, nil)

	body, _ := json.Marshal(map[string]string{"content": "hello", "parent_id": "c1"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-1/comments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestCreateComment_MissingContent(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:post_id/comments", withUser("user-1", handler.CreateComment))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-1/comments", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "CreateComment")
}

func TestCreateComment_InvalidParent(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:post_id/comments", withUser("user-1", handler.CreateComment))

	mockUseCase.On("CreateComment", "user-1", "post-1", "hi", mock.Anything).Return(nil, entity.ErrInvalidParent)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-1/comments", bytes.NewBufferString(`{"content":"hi","parent_id":"reply-1"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteComment_Forbidden(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/comments/:comment_id", withUser("user-2", handler.DeleteComment))

	mockUseCase.On("DeleteComment", "user-2", "c1").Return(entity.ErrForbidden)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/comments/c1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCountComments(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts/:post_id/comments/count", handler.CountComments)

	mockUseCase.On("CountComments", "post-1").Return(int64(4), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/post-1/comments/count", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"post_id":"post-1","comment_count":4}`, w.Body.String())
}
