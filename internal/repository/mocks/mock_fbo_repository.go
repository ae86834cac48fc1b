package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"ucoportal/internal/model"
	"ucoportal/internal/repository"
)

type MockFBORepository struct {
	mock.Mock
}

func (m *MockFBORepository) Create(ctx context.Context, f *model.FBO) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFBORepository) FindByID(ctx context.Context, fboID string) (*model.FBO, error) {
	args := m.Called(ctx, fboID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FBO), args.Error(1)
}

func (m *MockFBORepository) FindByContactEmail(ctx context.Context, email string) (*model.FBO, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FBO), args.Error(1)
}

func (m *MockFBORepository) FindFirst(ctx context.Context, status model.Status) (*model.FBO, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FBO), args.Error(1)
}

func (m *MockFBORepository) ActiveNameExists(ctx context.Context, businessName, excludeFBOID string) (bool, error) {
	args := m.Called(ctx, businessName, excludeFBOID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFBORepository) List(ctx context.Context, f repository.FBOFilter, page repository.PageQuery) (repository.PageResult[model.FBO], error) {
	args := m.Called(ctx, f, page)
	return args.Get(0).(repository.PageResult[model.FBO]), args.Error(1)
}

func (m *MockFBORepository) Count(ctx context.Context, f repository.FBOFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFBORepository) Update(ctx context.Context, fboID string, fields map[string]any) error {
	args := m.Called(ctx, fboID, fields)
	return args.Error(0)
}

func (m *MockFBORepository) Delete(ctx context.Context, fboID string) error {
	args := m.Called(ctx, fboID)
	return args.Error(0)
}

func (m *MockFBORepository) PushDocument(ctx context.Context, fboID string, doc model.FBODocument) error {
	args := m.Called(ctx, fboID, doc)
	return args.Error(0)
}

func (m *MockFBORepository) RecordCollection(ctx context.Context, fboID string, quantity, amount float64, at time.Time) error {
	args := m.Called(ctx, fboID, quantity, amount, at)
	return args.Error(0)
}

func (m *MockFBORepository) RollbackCollection(ctx context.Context, fboID string, quantity, amount float64) error {
	args := m.Called(ctx, fboID, quantity, amount)
	return args.Error(0)
}

func (m *MockFBORepository) CountAssigned(ctx context.Context, collectorID string) (int64, error) {
	args := m.Called(ctx, collectorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFBORepository) StatusCounts(ctx context.Context, f repository.FBOFilter) (map[string]int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockFBORepository) MonthlyEnrollments(ctx context.Context, enrolledBy string, since time.Time) (map[string]int64, error) {
	args := m.Called(ctx, enrolledBy, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}
