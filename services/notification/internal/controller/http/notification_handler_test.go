package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"socialhub/pkg/logger"
	"socialhub/pkg/queue"
	"socialhub/services/notification/internal/entity"
	"socialhub/services/notification/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockNotificationUseCase struct {
	mock.Mock
}

func (m *MockNotificationUseCase) HandleTask(ctx context.Context, task queue.NotificationTask) error {
	return m.Called(task).Error(0)
}

func (m *MockNotificationUseCase) GetNotifications(ctx context.Context, userID string, limit, offset int) (*entity.NotificationPage, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.NotificationPage), args.Error(1)
}

func (m *MockNotificationUseCase) ClearNotifications(ctx context.Context, userID string) error {
	return m.Called(userID).Error(0)
}

var _ usecase.NotificationUseCase = (*MockNotificationUseCase)(nil)

func setupNotificationTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestGetNotifications_Unauthorized(t *testing.T) {
	handler := NewNotificationHandler(new(MockNotificationUseCase), logger.New())

	router := setupNotificationTestRouter()
	router.GET("/notifications", handler.GetNotifications)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/notifications", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Contains(t, response["error"], "Unauthorized")
}

func TestGetNotifications_Success(t *testing.T) {
	mockUseCase := new(MockNotificationUseCase)
	handler := NewNotificationHandler(mockUseCase, logger.New())

	router := setupNotificationTestRouter()
	router.GET("/notifications", func(c *gin.Context) {
		c.Set("user_id", "u1")
		handler.GetNotifications(c)
	})

	mockUseCase.On("GetNotifications", "u1", 20, 5).Return(&entity.NotificationPage{
		Notifications: []entity.Notification{{ID: "n1", Message: "alice liked your post"}},
		Total:         6,
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/notifications?limit=500&offset=5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice liked your post")
	mockUseCase.AssertExpectations(t)
}

func TestClearNotifications(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"cleared", nil, http.StatusNoContent},
		{"store failure", errors.New("redis down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUseCase := new(MockNotificationUseCase)
			handler := NewNotificationHandler(mockUseCase, logger.New())
			router := setupNotificationTestRouter()
			router.DELETE("/notifications", func(c *gin.Context) {
				c.Set("user_id", "u1")
				handler.ClearNotifications(c)
			})

			mockUseCase.On("ClearNotifications", "u1").Return(tt.err)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("DELETE", "/notifications", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expected, w.Code)
		})
	}
}
