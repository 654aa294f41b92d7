package domain

import "time"

// Notification represents a user notification.
type Notification struct {
	ID                int64      `json:"id"`
	Title             string     `json:"title"`
	Message           string     `json:"message"`
	Type              string     `json:"type"`
	Priority          string     `json:"priority"`
	RelatedEntityType *string    `json:"related_entity_type,omitempty"`
	RelatedEntityID   *int64     `json:"related_entity_id,omitempty"`
	IsRead            bool       `json:"is_read"`
	IsArchived        bool       `json:"is_archived"`
	ActionURL         *string    `json:"action_url,omitempty"`
	ActionText        *string    `json:"action_text,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	ReadAt            *time.Time `json:"read_at,omitempty"`
	ExpiresAt         *time.Time `json:"expires_at,omitempty"`
}

// Notification type constants
const (
	NotifyTaskDue            = "task_due"
	NotifyTaskCompleted      = "task_completed"
	NotifyProjectDeadline    = "project_deadline"
	NotifyMilestoneCompleted = "milestone_completed"
	NotifyInvoiceOverdue     = "invoice_overdue"
	NotifyPaymentReceived    = "payment_received"
	NotifySystemUpdate       = "system_update"
	NotifyGeneral            = "general"
)

// NotificationFilter narrows notification list requests.
type NotificationFilter struct {
	UnreadOnly bool
	Priority   string
	Type       string
}

// NotificationStats is returned by the notification stats endpoint.
type NotificationStats struct {
	TotalNotifications  int `json:"total_notifications"`
	UnreadNotifications int `json:"unread_notifications"`
	HighPriorityUnread  int `json:"high_priority_unread"`
}
