package services

import (
	"context"
	"errors"
	"sort"
	"sync"

	"go.uber.org/zap"

	"betterBiteAPI/internal/types/notification"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationService struct {
	mu            sync.RWMutex
	notifications []notification.Notification
	logger        *zap.Logger
}

func NewNotificationService(seed []notification.Notification, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		notifications: append([]notification.Notification(nil), seed...),
		logger:        logger,
	}
}

// ForUser returns the user's notifications, earliest scheduled first.
func (s *NotificationService) ForUser(ctx context.Context, userID string) *notification.NotificationListResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resp := &notification.NotificationListResponse{Notifications: []notification.Notification{}}
	for _, n := range s.notifications {
		if n.UserID != userID {
			continue
		}
		resp.Notifications = append(resp.Notifications, n)
		if !n.Read {
			resp.UnreadCount++
		}
	}
	sort.SliceStable(resp.Notifications, func(i, j int) bool {
		return resp.Notifications[i].ScheduledFor.Before(resp.Notifications[j].ScheduledFor)
	})
	return resp
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID string) int {
	return s.ForUser(ctx, userID).UnreadCount
}

// MarkAsRead only touches notifications owned by userID.
func (s *NotificationService) MarkAsRead(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id && s.notifications[i].UserID == userID {
			s.notifications[i].Read = true
			s.logger.Debug("notification read", zap.String("notification_id", id))
			return nil
		}
	}
	return ErrNotificationNotFound
}
