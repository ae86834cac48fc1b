package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ucoportal/internal/model"
	"ucoportal/internal/repository"
	"ucoportal/internal/service"
)

type MockCollectionService struct {
	mock.Mock
}

func (m *MockCollectionService) Create(ctx context.Context, in service.CollectionInput, by *model.User) (*model.Collection, error) {
	args := m.Called(ctx, in, by)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Collection), args.Error(1)
}

func (m *MockCollectionService) Get(ctx context.Context, collectionID string) (*model.Collection, error) {
	args := m.Called(ctx, collectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Collection), args.Error(1)
}

func (m *MockCollectionService) List(ctx context.Context, f repository.CollectionFilter, page, limit int) (*model.Paginated[model.Collection], *service.CollectionListSummary, error) {
	args := m.Called(ctx, f, page, limit)
	var res *model.Paginated[model.Collection]
	if args.Get(0) != nil {
		res = args.Get(0).(*model.Paginated[model.Collection])
	}
	var summary *service.CollectionListSummary
	if args.Get(1) != nil {
		summary = args.Get(1).(*service.CollectionListSummary)
	}
	return res, summary, args.Error(2)
}

func (m *MockCollectionService) Review(ctx context.Context, collectionID string, review model.CollectionReview, by *model.User) (*service.ReviewResult, error) {
	args := m.Called(ctx, collectionID, review, by)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReviewResult), args.Error(1)
}

func (m *MockCollectionService) UpdateFields(ctx context.Context, collectionID string, fields map[string]any) (map[string]any, error) {
	args := m.Called(ctx, collectionID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockCollectionService) Delete(ctx context.Context, collectionID string) error {
	args := m.Called(ctx, collectionID)
	return args.Error(0)
}

func (m *MockCollectionService) RecordPayment(ctx context.Context, collectionID string, in service.PaymentInput, by *model.User) (*model.PaymentDetails, model.CollectionStatus, error) {
	args := m.Called(ctx, collectionID, in, by)
	var details *model.PaymentDetails
	if args.Get(0) != nil {
		details = args.Get(0).(*model.PaymentDetails)
	}
	return details, args.Get(1).(model.CollectionStatus), args.Error(2)
}

func (m *MockCollectionService) GradeRates(ctx context.Context) (map[string]any, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}
