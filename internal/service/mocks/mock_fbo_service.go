package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ucoportal/internal/model"
	"ucoportal/internal/repository"
	"ucoportal/internal/service"
)

type MockFBOService struct {
	mock.Mock
}

func (m *MockFBOService) Enroll(ctx context.Context, in model.FBOCreate, by *model.User) (*model.FBO, error) {
	args := m.Called(ctx, in, by)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FBO), args.Error(1)
}

func (m *MockFBOService) Get(ctx context.Context, fboID string) (*model.FBO, error) {
	args := m.Called(ctx, fboID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FBO), args.Error(1)
}

func (m *MockFBOService) List(ctx context.Context, f repository.FBOFilter, page, limit int) (*model.Paginated[model.FBO], error) {
	args := m.Called(ctx, f, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Paginated[model.FBO]), args.Error(1)
}

func (m *MockFBOService) ListAssigned(ctx context.Context, f repository.FBOFilter) ([]model.FBO, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FBO), args.Error(1)
}

func (m *MockFBOService) Update(ctx context.Context, fboID string, fields map[string]any, by *model.User) error {
	args := m.Called(ctx, fboID, fields, by)
	return args.Error(0)
}

func (m *MockFBOService) UpdateStatus(ctx context.Context, fboID string, status model.Status) error {
	args := m.Called(ctx, fboID, status)
	return args.Error(0)
}

func (m *MockFBOService) AssignCollectors(ctx context.Context, fboID string, collectorIDs []string) error {
	args := m.Called(ctx, fboID, collectorIDs)
	return args.Error(0)
}

func (m *MockFBOService) Delete(ctx context.Context, fboID string) error {
	args := m.Called(ctx, fboID)
	return args.Error(0)
}

func (m *MockFBOService) UploadDocuments(ctx context.Context, fboID string, uploads []service.DocumentUpload) ([]model.FBODocument, error) {
	args := m.Called(ctx, fboID, uploads)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FBODocument), args.Error(1)
}
