package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"ucoportal/internal/model"
	"ucoportal/internal/service"
)

type MockVendorService struct {
	mock.Mock
}

func (m *MockVendorService) ResolveFBO(ctx context.Context, user *model.User) (*model.FBO, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FBO), args.Error(1)
}

func (m *MockVendorService) Dashboard(ctx context.Context, user *model.User) (*service.VendorDashboard, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.VendorDashboard), args.Error(1)
}

func (m *MockVendorService) Collections(ctx context.Context, user *model.User, status model.CollectionStatus, page, limit int) (*model.Paginated[model.Collection], error) {
	args := m.Called(ctx, user, status, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Paginated[model.Collection]), args.Error(1)
}

func (m *MockVendorService) Bills(ctx context.Context, user *model.User, page, limit int) (*model.Paginated[model.Bill], error) {
	args := m.Called(ctx, user, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Paginated[model.Bill]), args.Error(1)
}

func (m *MockVendorService) Payments(ctx context.Context, user *model.User, dateFrom, dateTo *time.Time, page, limit int) (*model.Paginated[service.VendorPayment], error) {
	args := m.Called(ctx, user, dateFrom, dateTo, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Paginated[service.VendorPayment]), args.Error(1)
}

func (m *MockVendorService) Profile(ctx context.Context, user *model.User) (*model.FBO, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FBO), args.Error(1)
}

func (m *MockVendorService) UpdateProfile(ctx context.Context, user *model.User, in service.VendorProfileUpdate) (*model.FBO, error) {
	args := m.Called(ctx, user, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FBO), args.Error(1)
}

func (m *MockVendorService) RequestCollection(ctx context.Context, user *model.User, in service.CollectionRequestInput) (*service.CollectionRequest, error) {
	args := m.Called(ctx, user, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CollectionRequest), args.Error(1)
}

func (m *MockVendorService) CreateSupportMessage(ctx context.Context, user *model.User, in model.SupportMessageCreate) (*model.SupportMessage, error) {
	args := m.Called(ctx, user, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SupportMessage), args.Error(1)
}

func (m *MockVendorService) SupportMessages(ctx context.Context, user *model.User) ([]model.SupportMessage, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SupportMessage), args.Error(1)
}
