package cli

import (
	"context"
	"fmt"
)

// Notifications prints the notification feed with unread markers.
func (a *App) Notifications(ctx context.Context) error {
	list, err := a.api.ListNotifications(ctx)
	if err != nil {
		printError(err)
		return err
	}

	if len(list.Notifications) == 0 {
		printlnFn("No notifications.")
		return nil
	}

	printlnFn(fmt.Sprintf("%d unread", list.UnreadCount))
	for _, n := range list.Notifications {
		marker := " "
		if !n.IsRead {
			marker = "*"
		}
		printlnFn(fmt.Sprintf("%s %s  %s — %s", marker, n.ID, n.Title, n.Message))
	}
	return nil
}

// Read marks a single notification as read.
func (a *App) Read(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: read <id>")
		return nil
	}

	if err := a.api.MarkNotificationRead(ctx, args[0]); err != nil {
		printError(err)
		return err
	}
	printlnFn("Marked as read.")
	return nil
}

// ReadAll marks the whole feed as read.
func (a *App) ReadAll(ctx context.Context) error {
	if err := a.api.MarkAllNotificationsRead(ctx); err != nil {
		printError(err)
		return err
	}
	printlnFn("All notifications marked as read.")
	return nil
}
