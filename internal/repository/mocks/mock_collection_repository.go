package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ucoportal/internal/model"
	"ucoportal/internal/repository"
)

type MockCollectionRepository struct {
	mock.Mock
}

func (m *MockCollectionRepository) Create(ctx context.Context, c *model.Collection) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCollectionRepository) FindByID(ctx context.Context, collectionID string) (*model.Collection, error) {
	args := m.Called(ctx, collectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Collection), args.Error(1)
}

func (m *MockCollectionRepository) FindByIDs(ctx context.Context, collectionIDs []string) ([]model.Collection, error) {
	args := m.Called(ctx, collectionIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Collection), args.Error(1)
}

func (m *MockCollectionRepository) List(ctx context.Context, f repository.CollectionFilter, page repository.PageQuery) (repository.PageResult[model.Collection], error) {
	args := m.Called(ctx, f, page)
	return args.Get(0).(repository.PageResult[model.Collection]), args.Error(1)
}

func (m *MockCollectionRepository) Count(ctx context.Context, f repository.CollectionFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCollectionRepository) Update(ctx context.Context, collectionID string, fields map[string]any) error {
	args := m.Called(ctx, collectionID, fields)
	return args.Error(0)
}

func (m *MockCollectionRepository) UpdateMany(ctx context.Context, collectionIDs []string, fields map[string]any) error {
	args := m.Called(ctx, collectionIDs, fields)
	return args.Error(0)
}

func (m *MockCollectionRepository) Delete(ctx context.Context, collectionID string) error {
	args := m.Called(ctx, collectionID)
	return args.Error(0)
}

func (m *MockCollectionRepository) Summary(ctx context.Context, f repository.CollectionFilter) (repository.AmountSummary, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(repository.AmountSummary), args.Error(1)
}

func (m *MockCollectionRepository) AverageQuantity(ctx context.Context, f repository.CollectionFilter) (float64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockCollectionRepository) MonthlySeries(ctx context.Context, f repository.CollectionFilter) ([]repository.MonthBucket, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.MonthBucket), args.Error(1)
}

func (m *MockCollectionRepository) StatusCounts(ctx context.Context, f repository.CollectionFilter) (map[string]repository.StatusAmount, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]repository.StatusAmount), args.Error(1)
}

func (m *MockCollectionRepository) QualityCounts(ctx context.Context, f repository.CollectionFilter) (map[string]int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockCollectionRepository) PerformanceByFBO(ctx context.Context, f repository.CollectionFilter, limit int) ([]repository.FBOPerformance, error) {
	args := m.Called(ctx, f, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.FBOPerformance), args.Error(1)
}

func (m *MockCollectionRepository) FindPaidWithHistory(ctx context.Context, fboID string) ([]model.Collection, error) {
	args := m.Called(ctx, fboID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Collection), args.Error(1)
}
