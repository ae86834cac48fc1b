package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ucoportal/internal/model"
	"ucoportal/internal/repository"
)

type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) Create(ctx context.Context, b *model.Bill) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBillRepository) FindByID(ctx context.Context, billID string) (*model.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bill), args.Error(1)
}

func (m *MockBillRepository) List(ctx context.Context, f repository.BillFilter, page repository.PageQuery) (repository.PageResult[model.Bill], error) {
	args := m.Called(ctx, f, page)
	return args.Get(0).(repository.PageResult[model.Bill]), args.Error(1)
}

func (m *MockBillRepository) Update(ctx context.Context, billID string, fields map[string]any) error {
	args := m.Called(ctx, billID, fields)
	return args.Error(0)
}

func (m *MockBillRepository) RecordPayment(ctx context.Context, billID string, collections []model.BillCollection, totalPaid, totalBalance float64, status string, txn model.PaymentTransaction) error {
	args := m.Called(ctx, billID, collections, totalPaid, totalBalance, status, txn)
	return args.Error(0)
}

type MockSupportRepository struct {
	mock.Mock
}

func (m *MockSupportRepository) Create(ctx context.Context, msg *model.SupportMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockSupportRepository) ListByUser(ctx context.Context, userID string) ([]model.SupportMessage, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SupportMessage), args.Error(1)
}

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(ctx context.Context, it *model.Item) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}

func (m *MockItemRepository) List(ctx context.Context, f repository.ItemFilter, page repository.PageQuery) (repository.PageResult[model.Item], error) {
	args := m.Called(ctx, f, page)
	return args.Get(0).(repository.PageResult[model.Item]), args.Error(1)
}
