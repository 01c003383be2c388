package notification

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	TypeReminder NotificationType = "reminder"
	TypeAlert    NotificationType = "alert"
	TypeNewGoal  NotificationType = "new_goal"
)

type Notification struct {
	ID           string           `json:"id"`
	UserID       string           `json:"user_id"`
	Text         string           `json:"text"`
	ScheduledFor time.Time        `json:"scheduled_for"`
	Type         NotificationType `json:"type"`
	Read         bool             `json:"read"`
}

type NotificationListResponse struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unread_count"`
}

func NewNotification(userID, text string, scheduledFor time.Time, typ NotificationType) Notification {
	return Notification{
		ID:           uuid.NewString(),
		UserID:       userID,
		Text:         text,
		ScheduledFor: scheduledFor,
		Type:         typ,
	}
}
