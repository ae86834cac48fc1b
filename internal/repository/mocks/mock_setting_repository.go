package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ucoportal/internal/model"
)

type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) Values(ctx context.Context, keys []string) (map[string]any, error) {
	args := m.Called(ctx, keys)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockSettingRepository) All(ctx context.Context) ([]model.Setting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Setting), args.Error(1)
}

func (m *MockSettingRepository) Upsert(ctx context.Context, s *model.Setting) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockPricingRepository struct {
	mock.Mock
}

func (m *MockPricingRepository) ListActive(ctx context.Context) ([]model.Pricing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Pricing), args.Error(1)
}
