package usecase

import (
	"context"
	"fmt"
	"time"

	"socialhub/pkg/logger"
	"socialhub/pkg/queue"
	"socialhub/services/notification/internal/entity"
	"socialhub/services/notification/internal/repo/persistent"

	"github.com/google/uuid"
)

type Inbox interface {
	Push(ctx context.Context, n *entity.Notification) error
	List(ctx context.Context, userID string, limit, offset int) ([]entity.Notification, int64, error)
	Clear(ctx context.Context, userID string) error
}

type NotificationUseCase interface {
	HandleTask(ctx context.Context, task queue.NotificationTask) error
	GetNotifications(ctx context.Context, userID string, limit, offset int) (*entity.NotificationPage, error)
	ClearNotifications(ctx context.Context, userID string) error
}

type notificationUseCase struct {
	profileRepo persistent.ProfileRepository
	inbox       Inbox
	logger      *logger.Logger
	now         func() time.Time
}

func NewNotificationUseCase(profileRepo persistent.ProfileRepository, inbox Inbox, logger *logger.Logger) NotificationUseCase {
	return &notificationUseCase{
		profileRepo: profileRepo,
		inbox:       inbox,
		logger:      logger,
		now:         time.Now,
	}
}

var messageFormats = map[queue.TaskType]string{
	queue.TaskFollow:  "%s started following you",
	queue.TaskComment: "%s commented on your post",
	queue.TaskReply:   "%s replied to your comment",
}

func message(task queue.NotificationTask, actor string) string {
	if task.Type == queue.TaskLike {
		if task.CommentID != "" {
			return fmt.Sprintf("%s liked your comment", actor)
		}
		return fmt.Sprintf("%s liked your post", actor)
	}
	return fmt.Sprintf(messageFormats[task.Type], actor)
}

// HandleTask turns a queued task into an inbox entry for its recipient.
func (uc *notificationUseCase) HandleTask(ctx context.Context, task queue.NotificationTask) error {
	if task.RecipientID == "" || task.ActorID == "" {
		uc.logger.Error("[NOTIFICATION HANDLER] Invalid %s task: missing user_id or actor_id, task=%+v", task.Type, task)
		return fmt.Errorf("%w: missing user_id or actor_id", entity.ErrInvalidTask)
	}
	if _, known := messageFormats[task.Type]; !known && task.Type != queue.TaskLike {
		uc.logger.Error("[NOTIFICATION HANDLER] Unknown notification type: %s", task.Type)
		return fmt.Errorf("%w: unknown type %q", entity.ErrInvalidTask, task.Type)
	}
	if task.RecipientID == task.ActorID {
		return nil
	}

	actor, err := uc.profileRepo.DisplayName(ctx, task.ActorID)
	if err != nil || actor == "" {
		actor = "Someone"
	}

	n := &entity.Notification{
		ID:        uuid.New().String(),
		UserID:    task.RecipientID,
		Type:      string(task.Type),
		ActorID:   task.ActorID,
		PostID:    task.PostID,
		CommentID: task.CommentID,
		Message:   message(task, actor),
		CreatedAt: uc.now().UTC(),
	}

	if err := uc.inbox.Push(ctx, n); err != nil {
		uc.logger.Error("[NOTIFICATION HANDLER] Failed to store %s notification for user %s: %v", task.Type, task.RecipientID, err)
		return err
	}

	uc.logger.Info("[NOTIFICATION HANDLER] Stored %s notification for user %s", task.Type, task.RecipientID)
	return nil
}

func (uc *notificationUseCase) GetNotifications(ctx context.Context, userID string, limit, offset int) (*entity.NotificationPage, error) {
	notifications, total, err := uc.inbox.List(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return &entity.NotificationPage{Notifications: notifications, Total: total}, nil
}

func (uc *notificationUseCase) ClearNotifications(ctx context.Context, userID string) error {
	return uc.inbox.Clear(ctx, userID)
}
