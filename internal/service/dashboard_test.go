package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ucoportal/internal/model"
	"ucoportal/internal/repository"
	"ucoportal/internal/repository/mocks"
)

func TestLastMonths(t *testing.T) {
	now := time.Date(2026, time.August, 28, 10, 0, 0, 0, time.UTC)
	keys, labels := lastMonths(3, now)

	assert.Equal(t, []string{"2026-06", "2026-07", "2026-08"}, keys)
	assert.Equal(t, []string{"Jun", "Jul", "Aug"}, labels)
}

func TestDashboardService_Admin(t *testing.T) {
	ctx := context.Background()
	fbos := new(mocks.MockFBORepository)
	collections := new(mocks.MockCollectionRepository)
	trips := new(mocks.MockTripRepository)

	fbos.On("Count", ctx, repository.FBOFilter{}).Return(int64(50), nil)
	fbos.On("Count", ctx, repository.FBOFilter{Status: model.StatusActive}).Return(int64(40), nil)
	collections.On("Count", ctx, repository.CollectionFilter{}).Return(int64(300), nil)
	// Revenue counts every collection regardless of status.
	collections.On("Summary", ctx, repository.CollectionFilter{}).
		Return(repository.AmountSummary{TotalQuantity: 4000, TotalAmount: 120000}, nil)
	collections.On("List", ctx, repository.CollectionFilter{}, repository.PageQuery{Limit: 5}).
		Return(repository.PageResult[model.Collection]{Items: []model.Collection{{CollectionID: "COL1"}}, Total: 300}, nil)
	fbos.On("StatusCounts", ctx, repository.FBOFilter{}).Return(map[string]int64{
		"active": 40, "pending": 6, "inactive": 3, "suspended": 1,
	}, nil)
	collections.On("MonthlySeries", ctx, mock.MatchedBy(func(f repository.CollectionFilter) bool {
		return f.DateFrom != nil && f.DateTo == nil && len(f.Statuses) == 0
	})).Return([]repository.MonthBucket{
		{Month: "2026-07", Revenue: 8000, Volume: 260},
		{Month: "2026-08", Revenue: 9500, Volume: 310},
	}, nil)
	collections.On("PerformanceByFBO", ctx, repository.CollectionFilter{}, 10).
		Return([]repository.FBOPerformance{{FBOID: "FBO1", FBOName: "Spice Garden", Revenue: 9000, Volume: 300}}, nil)

	svc := NewDashboardService(fbos, collections, trips)
	d, err := svc.Admin(ctx, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, int64(50), d.TotalFBOs)
	assert.Equal(t, int64(40), d.ActiveFBOs)
	assert.Equal(t, 120000.0, d.TotalRevenue)
	assert.Equal(t, []NameValue{
		{Name: "Active", Value: 40},
		{Name: "Pending", Value: 6},
		{Name: "Inactive", Value: 4},
	}, d.StatusDistribution)
	// Only months with data show up on the chart.
	require.Len(t, d.ChartData, 2)
	assert.Equal(t, ChartPoint{Month: "Jul", Payouts: 8000, Collections: 260}, d.ChartData[0])
	assert.Len(t, d.FBOPerformance, 1)
}

func TestDashboardService_Admin_DateRange(t *testing.T) {
	ctx := context.Background()
	fbos := new(mocks.MockFBORepository)
	collections := new(mocks.MockCollectionRepository)
	from := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.March, 31, 23, 59, 59, 0, time.UTC)
	scope := repository.CollectionFilter{DateFrom: &from, DateTo: &to}
	fboScope := repository.FBOFilter{CreatedFrom: &from, CreatedTo: &to}

	fbos.On("Count", ctx, fboScope).Return(int64(12), nil)
	fbos.On("Count", ctx, repository.FBOFilter{Status: model.StatusActive, CreatedFrom: &from, CreatedTo: &to}).
		Return(int64(9), nil)
	collections.On("Count", ctx, scope).Return(int64(80), nil)
	collections.On("Summary", ctx, scope).
		Return(repository.AmountSummary{TotalQuantity: 900, TotalAmount: 27000}, nil)
	collections.On("List", ctx, scope, repository.PageQuery{Limit: 5}).
		Return(repository.PageResult[model.Collection]{Items: nil, Total: 80}, nil)
	fbos.On("StatusCounts", ctx, fboScope).Return(map[string]int64{"active": 9, "pending": 3}, nil)
	// The requested range drives the chart as-is, no six month fallback.
	collections.On("MonthlySeries", ctx, scope).Return([]repository.MonthBucket{
		{Month: "2026-02", Revenue: 11000, Volume: 380},
	}, nil)
	collections.On("PerformanceByFBO", ctx, scope, 10).
		Return([]repository.FBOPerformance{}, nil)

	svc := NewDashboardService(fbos, collections, new(mocks.MockTripRepository))
	d, err := svc.Admin(ctx, &from, &to)

	require.NoError(t, err)
	assert.Equal(t, int64(12), d.TotalFBOs)
	assert.Equal(t, 27000.0, d.TotalRevenue)
	require.Len(t, d.ChartData, 1)
	assert.Equal(t, "Feb", d.ChartData[0].Month)
	collections.AssertExpectations(t)
	fbos.AssertExpectations(t)
}

func TestDashboardService_Enrollment_ScopesToEnroller(t *testing.T) {
	ctx := context.Background()
	fbos := new(mocks.MockFBORepository)
	collections := new(mocks.MockCollectionRepository)
	enroller := &model.User{UserID: "USR5", Role: model.RoleEnrollmentTeam}

	fbos.On("Count", ctx, mock.MatchedBy(func(f repository.FBOFilter) bool {
		return f.EnrolledBy == "USR5"
	})).Return(int64(7), nil)
	fbos.On("MonthlyEnrollments", ctx, "USR5", mock.Anything).Return(map[string]int64{}, nil)
	fbos.On("List", ctx, mock.MatchedBy(func(f repository.FBOFilter) bool {
		return f.EnrolledBy == "USR5"
	}), repository.PageQuery{Limit: 5}).
		Return(repository.PageResult[model.FBO]{Items: []model.FBO{{FBOID: "FBO1"}}, Total: 7}, nil)

	svc := NewDashboardService(fbos, collections, new(mocks.MockTripRepository))
	d, err := svc.Enrollment(ctx, enroller)

	require.NoError(t, err)
	assert.Equal(t, int64(7), d.TotalEnrolled)
	assert.Equal(t, int64(monthlyEnrollmentTarget), d.MonthlyTarget)
	assert.Len(t, d.TrendData, 6)
	assert.Len(t, d.PerformanceData, 4)
	assert.Len(t, d.RecentEnrollments, 1)
}

func TestDashboardService_Collector(t *testing.T) {
	ctx := context.Background()
	fbos := new(mocks.MockFBORepository)
	collections := new(mocks.MockCollectionRepository)
	trips := new(mocks.MockTripRepository)
	collector := &model.User{UserID: "USR1", Role: model.RoleCollectionTeam}

	collections.On("Count", ctx, mock.Anything).Return(int64(3), nil)
	collections.On("Summary", ctx, mock.Anything).Return(repository.AmountSummary{TotalQuantity: 60, TotalAmount: 1800}, nil)
	fbos.On("CountAssigned", ctx, "USR1").Return(int64(12), nil)
	trips.On("FindActive", ctx, "USR1").Return(nil, repository.ErrNotFound)

	svc := NewDashboardService(fbos, collections, trips)
	d, err := svc.Collector(ctx, collector)

	require.NoError(t, err)
	assert.Equal(t, int64(3), d.TodayCollections)
	assert.Equal(t, 60.0, d.TodayQuantity)
	assert.Equal(t, int64(12), d.AssignedFBOs)
	assert.Nil(t, d.ActiveTrip)
}
