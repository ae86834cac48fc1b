package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ucoportal/internal/model"
	"ucoportal/internal/repository"
)

type MockTripRepository struct {
	mock.Mock
}

func (m *MockTripRepository) Create(ctx context.Context, t *model.Trip) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTripRepository) FindByID(ctx context.Context, tripID string) (*model.Trip, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Trip), args.Error(1)
}

func (m *MockTripRepository) FindActive(ctx context.Context, collectorID string) (*model.Trip, error) {
	args := m.Called(ctx, collectorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Trip), args.Error(1)
}

func (m *MockTripRepository) List(ctx context.Context, f repository.TripFilter, page repository.PageQuery) (repository.PageResult[model.Trip], error) {
	args := m.Called(ctx, f, page)
	return args.Get(0).(repository.PageResult[model.Trip]), args.Error(1)
}

func (m *MockTripRepository) Update(ctx context.Context, tripID string, fields map[string]any) error {
	args := m.Called(ctx, tripID, fields)
	return args.Error(0)
}

func (m *MockTripRepository) AddCompleted(ctx context.Context, tripID string, c model.TripCompletedCollection) error {
	args := m.Called(ctx, tripID, c)
	return args.Error(0)
}

func (m *MockTripRepository) RemoveCompleted(ctx context.Context, tripID, collectionID string, quantity, amount float64) error {
	args := m.Called(ctx, tripID, collectionID, quantity, amount)
	return args.Error(0)
}
