package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"betterBiteAPI/internal/types/notification"
)

func TestNotificationService_ForUser(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	later := notification.NewNotification("u1", "later", now.Add(time.Hour), notification.TypeReminder)
	earlier := notification.NewNotification("u1", "earlier", now.Add(-time.Hour), notification.TypeNewGoal)
	earlier.Read = true
	other := notification.NewNotification("u2", "other", now, notification.TypeAlert)

	s := NewNotificationService([]notification.Notification{later, earlier, other}, zap.NewNop())
	ctx := context.Background()

	resp := s.ForUser(ctx, "u1")
	require.Len(t, resp.Notifications, 2)
	assert.Equal(t, "earlier", resp.Notifications[0].Text)
	assert.Equal(t, 1, resp.UnreadCount)

	assert.Empty(t, s.ForUser(ctx, "nobody").Notifications)

	assert.ErrorIs(t, s.MarkAsRead(ctx, "u2", later.ID), ErrNotificationNotFound)
	require.NoError(t, s.MarkAsRead(ctx, "u1", later.ID))
	assert.Equal(t, 0, s.UnreadCount(ctx, "u1"))
}
