package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ucoportal/internal/model"
	"ucoportal/internal/repository"
	"ucoportal/internal/service"
)

type MockTripService struct {
	mock.Mock
}

func (m *MockTripService) Start(ctx context.Context, in model.TripCreate, by *model.User) (*model.Trip, error) {
	args := m.Called(ctx, in, by)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Trip), args.Error(1)
}

func (m *MockTripService) End(ctx context.Context, tripID string, in model.TripEnd, by *model.User) (*model.Trip, error) {
	args := m.Called(ctx, tripID, in, by)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Trip), args.Error(1)
}

func (m *MockTripService) Active(ctx context.Context, collectorID string) (*model.Trip, error) {
	args := m.Called(ctx, collectorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Trip), args.Error(1)
}

func (m *MockTripService) Get(ctx context.Context, tripID string, by *model.User) (*model.Trip, error) {
	args := m.Called(ctx, tripID, by)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Trip), args.Error(1)
}

func (m *MockTripService) ListMine(ctx context.Context, collectorID string, page, limit int) (*model.Paginated[model.Trip], error) {
	args := m.Called(ctx, collectorID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Paginated[model.Trip]), args.Error(1)
}

func (m *MockTripService) List(ctx context.Context, f repository.TripFilter, page, limit int) (*model.Paginated[service.TripWithCollector], error) {
	args := m.Called(ctx, f, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Paginated[service.TripWithCollector]), args.Error(1)
}
