package service

import (
	"context"
	"time"

	"ucoportal/internal/model"
	"ucoportal/internal/repository"
)

// NotificationPage is a page of notifications with the user's unread count.
type NotificationPage struct {
	Notifications []model.Notification `json:"notifications"`
	UnreadCount   int64                `json:"unreadCount"`
	Pagination    model.Pagination     `json:"pagination"`
}

// NotificationService covers in-app notifications.
type NotificationService interface {
	Notify(ctx context.Context, userID string, typ model.NotificationType, title, message string, data *model.NotificationData) error
	NotifyMany(ctx context.Context, userIDs []string, typ model.NotificationType, title, message string, data *model.NotificationData) error
	List(ctx context.Context, userID string, unreadOnly bool, page, limit int) (*NotificationPage, error)
	// MarkRead marks one notification, or all when notificationID is empty.
	MarkRead(ctx context.Context, userID, notificationID string) (int64, error)
}

type notificationService struct {
	notifications repository.NotificationRepository
}

func NewNotificationService(notifications repository.NotificationRepository) NotificationService {
	return &notificationService{notifications: notifications}
}

func (s *notificationService) Notify(ctx context.Context, userID string, typ model.NotificationType, title, message string, data *model.NotificationData) error {
	return s.notifications.Insert(ctx, &model.Notification{
		NotificationID: newID("NOTIF"),
		UserID:         userID,
		Type:           typ,
		Title:          title,
		Message:        message,
		Data:           data,
		CreatedAt:      time.Now().UTC(),
	})
}

func (s *notificationService) NotifyMany(ctx context.Context, userIDs []string, typ model.NotificationType, title, message string, data *model.NotificationData) error {
	if len(userIDs) == 0 {
		return nil
	}
	now := time.Now().UTC()
	ns := make([]model.Notification, 0, len(userIDs))
	for _, id := range userIDs {
		ns = append(ns, model.Notification{
			NotificationID: newID("NOTIF"),
			UserID:         id,
			Type:           typ,
			Title:          title,
			Message:        message,
			Data:           data,
			CreatedAt:      now,
		})
	}
	return s.notifications.InsertMany(ctx, ns)
}

func (s *notificationService) List(ctx context.Context, userID string, unreadOnly bool, page, limit int) (*NotificationPage, error) {
	res, err := s.notifications.List(ctx, userID, unreadOnly, pageQuery(page, limit))
	if err != nil {
		return nil, err
	}
	unread, err := s.notifications.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &NotificationPage{
		Notifications: res.Items,
		UnreadCount:   unread,
		Pagination:    model.NewPagination(page, limit, res.Total),
	}, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID string) (int64, error) {
	n, err := s.notifications.MarkRead(ctx, userID, notificationID)
	if err != nil {
		return 0, err
	}
	if n == 0 && notificationID != "" {
		return 0, NotFound("Notification not found")
	}
	return n, nil
}
