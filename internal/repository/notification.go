package repository

import (
	"context"

	"ucoportal/internal/model"
)

type NotificationRepository interface {
	Insert(ctx context.Context, n *model.Notification) error
	InsertMany(ctx context.Context, ns []model.Notification) error
	List(ctx context.Context, userID string, unreadOnly bool, page PageQuery) (PageResult[model.Notification], error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	// MarkRead marks one notification, or all of a user's notifications when
	// notificationID is empty. Returns the number updated.
	MarkRead(ctx context.Context, userID, notificationID string) (int64, error)
}
