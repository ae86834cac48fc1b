package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ucoportal/internal/model"
	"ucoportal/internal/service"
)

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Notify(ctx context.Context, userID string, typ model.NotificationType, title, message string, data *model.NotificationData) error {
	args := m.Called(ctx, userID, typ, title, message, data)
	return args.Error(0)
}

func (m *MockNotificationService) NotifyMany(ctx context.Context, userIDs []string, typ model.NotificationType, title, message string, data *model.NotificationData) error {
	args := m.Called(ctx, userIDs, typ, title, message, data)
	return args.Error(0)
}

func (m *MockNotificationService) List(ctx context.Context, userID string, unreadOnly bool, page, limit int) (*service.NotificationPage, error) {
	args := m.Called(ctx, userID, unreadOnly, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.NotificationPage), args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, userID, notificationID string) (int64, error) {
	args := m.Called(ctx, userID, notificationID)
	return args.Get(0).(int64), args.Error(1)
}
