package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/ideatrack/internal/client/models"
)

// NotificationList is the unread/read notification feed for the current user.
type NotificationList struct {
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unreadCount"`
}

type notificationsResponse struct {
	Data NotificationList `json:"data"`
}

// ListNotifications fetches the notification feed.
func (c *Client) ListNotifications(ctx context.Context) (*NotificationList, error) {
	var resp notificationsResponse
	if err := c.do(ctx, http.MethodGet, "/api/notifications", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// MarkNotificationRead marks a single notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	path := "/api/notifications/" + url.PathEscape(id) + "/read"
	return c.do(ctx, http.MethodPut, path, nil, nil)
}

// MarkAllNotificationsRead marks the whole feed as read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPut, "/api/notifications/read-all", nil, nil)
}
