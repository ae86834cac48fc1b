package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ucoportal/internal/model"
	"ucoportal/internal/service"
)

type MockSettingService struct {
	mock.Mock
}

func (m *MockSettingService) All(ctx context.Context) (map[string]any, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockSettingService) Upsert(ctx context.Context, entries []model.SettingUpsert, by *model.User) error {
	args := m.Called(ctx, entries, by)
	return args.Error(0)
}

func (m *MockSettingService) Contact(ctx context.Context) (*service.ContactInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ContactInfo), args.Error(1)
}

func (m *MockSettingService) ActivePricing(ctx context.Context) ([]model.Pricing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Pricing), args.Error(1)
}

func (m *MockSettingService) SupportEmail(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
