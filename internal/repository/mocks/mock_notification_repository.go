package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ucoportal/internal/model"
	"ucoportal/internal/repository"
)

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Insert(ctx context.Context, n *model.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) InsertMany(ctx context.Context, ns []model.Notification) error {
	args := m.Called(ctx, ns)
	return args.Error(0)
}

func (m *MockNotificationRepository) List(ctx context.Context, userID string, unreadOnly bool, page repository.PageQuery) (repository.PageResult[model.Notification], error) {
	args := m.Called(ctx, userID, unreadOnly, page)
	return args.Get(0).(repository.PageResult[model.Notification]), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, userID, notificationID string) (int64, error) {
	args := m.Called(ctx, userID, notificationID)
	return args.Get(0).(int64), args.Error(1)
}
