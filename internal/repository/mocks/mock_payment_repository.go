package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ucoportal/internal/model"
	"ucoportal/internal/repository"
)

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *model.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, paymentID string) (*model.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockPaymentRepository) List(ctx context.Context, f repository.PaymentFilter, page repository.PageQuery) (repository.PageResult[model.Payment], error) {
	args := m.Called(ctx, f, page)
	return args.Get(0).(repository.PageResult[model.Payment]), args.Error(1)
}

func (m *MockPaymentRepository) Update(ctx context.Context, paymentID string, fields map[string]any) error {
	args := m.Called(ctx, paymentID, fields)
	return args.Error(0)
}
