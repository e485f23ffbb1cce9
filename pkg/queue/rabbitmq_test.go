package queue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPriority(t *testing.T) {
	assert.Equal(t, 0, clampPriority(-3))
	assert.Equal(t, 4, clampPriority(4))
	assert.Equal(t, 10, clampPriority(42))
}

func TestNotificationTask_JSON(t *testing.T) {
	task := NotificationTask{
		Type:        TaskLike,
		RecipientID: "author-1",
		ActorID:     "liker-1",
		PostID:      "post-1",
		Priority:    3,
	}

	body, err := json.Marshal(task)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"type":"like","user_id":"author-1","actor_id":"liker-1","post_id":"post-1","priority":3}`, string(body))
}
