package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"ucoportal/internal/model"
	"ucoportal/internal/service"
)

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Admin(ctx context.Context, from, to *time.Time) (*service.AdminDashboard, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AdminDashboard), args.Error(1)
}

func (m *MockDashboardService) Enrollment(ctx context.Context, user *model.User) (*service.EnrollmentDashboard, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.EnrollmentDashboard), args.Error(1)
}

func (m *MockDashboardService) Collector(ctx context.Context, user *model.User) (*service.CollectorDashboard, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CollectorDashboard), args.Error(1)
}

func (m *MockDashboardService) CollectorPerformance(ctx context.Context, collectorID string, from, to *time.Time) (*service.CollectorPerformance, error) {
	args := m.Called(ctx, collectorID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CollectorPerformance), args.Error(1)
}
