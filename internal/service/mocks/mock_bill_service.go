package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ucoportal/internal/model"
	"ucoportal/internal/repository"
	"ucoportal/internal/service"
)

type MockBillService struct {
	mock.Mock
}

func (m *MockBillService) Create(ctx context.Context, in model.BillCreate, by *model.User) (*model.Bill, error) {
	args := m.Called(ctx, in, by)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bill), args.Error(1)
}

func (m *MockBillService) Get(ctx context.Context, billID string) (*model.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bill), args.Error(1)
}

func (m *MockBillService) List(ctx context.Context, f repository.BillFilter, page, limit int) (*model.Paginated[model.Bill], error) {
	args := m.Called(ctx, f, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Paginated[model.Bill]), args.Error(1)
}

func (m *MockBillService) RecordPayment(ctx context.Context, billID string, in service.PaymentInput, by *model.User) (*model.Bill, error) {
	args := m.Called(ctx, billID, in, by)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bill), args.Error(1)
}
