package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/quickbird-app/quickbird-go/internal/domain"
)

// ListNotifications returns notifications matching the filter.
func (c *Client) ListNotifications(ctx context.Context, filter domain.NotificationFilter) ([]domain.Notification, error) {
	query := url.Values{}
	if filter.UnreadOnly {
		query.Set("unread_only", "true")
	}
	if filter.Priority != "" {
		query.Set("priority", filter.Priority)
	}
	if filter.Type != "" {
		query.Set("type", filter.Type)
	}
	var out []domain.Notification
	if err := c.do(ctx, c.defaultClient, http.MethodGet, "/notifications", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetNotification fetches a single notification.
func (c *Client) GetNotification(ctx context.Context, id int64) (*domain.Notification, error) {
	var out domain.Notification
	if err := c.do(ctx, c.defaultClient, http.MethodGet, fmt.Sprintf("/notifications/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkNotificationRead marks one notification as read. The backend
// acknowledges with a message only.
func (c *Client) MarkNotificationRead(ctx context.Context, id int64) (*domain.MessageResponse, error) {
	var out domain.MessageResponse
	if err := c.do(ctx, c.defaultClient, http.MethodPatch, fmt.Sprintf("/notifications/%d/read", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkAllNotificationsRead marks every unread notification as read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) (*domain.MessageResponse, error) {
	var out domain.MessageResponse
	if err := c.do(ctx, c.defaultClient, http.MethodPatch, "/notifications/read-all", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteNotification removes a notification.
func (c *Client) DeleteNotification(ctx context.Context, id int64) error {
	return c.do(ctx, c.defaultClient, http.MethodDelete, fmt.Sprintf("/notifications/%d", id), nil, nil, nil)
}

// NotificationStats returns unread/priority counters for badges.
func (c *Client) NotificationStats(ctx context.Context) (*domain.NotificationStats, error) {
	var out domain.NotificationStats
	if err := c.do(ctx, c.defaultClient, http.MethodGet, "/notifications/stats/summary", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
