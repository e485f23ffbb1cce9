package usecase

import (
	"context"
	"time"

	"socialhub/pkg/logger"
	"socialhub/pkg/queue"
)

type NotificationPublisher interface {
	PublishNotificationTask(ctx context.Context, task queue.NotificationTask) error
}

const publishTimeout = 5 * time.Second

// notifyAsync publishes in the background. Self-notifications and a nil publisher are no-ops.
func notifyAsync(publisher NotificationPublisher, log *logger.Logger, task queue.NotificationTask) {
	if publisher == nil || task.RecipientID == "" || task.RecipientID == task.ActorID {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		log.Info("[NOTIFICATION QUEUE] Publishing %s notification task to RabbitMQ: actor_id=%s, recipient_id=%s", task.Type, task.ActorID, task.RecipientID)
		if err := publisher.PublishNotificationTask(ctx, task); err != nil {
			log.Error("[NOTIFICATION QUEUE] Failed to publish %s notification task to RabbitMQ: %v", task.Type, err)
			return
		}
		log.Info("[NOTIFICATION QUEUE] Successfully published %s notification task to RabbitMQ", task.Type)
	}()
}
