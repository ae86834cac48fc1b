package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ucoportal/internal/model"
	"ucoportal/internal/repository"
)

// Enrollment targets used for team dashboards until targets become
// configurable settings.
const (
	monthlyEnrollmentTarget = 50
	weeklyEnrollmentTarget  = 12
)

// ChartPoint is one month of the admin revenue/volume chart.
type ChartPoint struct {
	Month       string  `json:"month"`
	Payouts     float64 `json:"payouts"`
	Collections float64 `json:"collections"`
}

// AdminDashboard is the operations overview payload.
type AdminDashboard struct {
	TotalFBOs          int64                       `json:"totalFBOs"`
	ActiveFBOs         int64                       `json:"activeFBOs"`
	TotalCollections   int64                       `json:"totalCollections"`
	TotalRevenue       float64                     `json:"totalRevenue"`
	MonthlyGrowth      float64                     `json:"monthlyGrowth"`
	CollectionGrowth   float64                     `json:"collectionGrowth"`
	RecentCollections  []model.Collection          `json:"recentCollections"`
	StatusDistribution []NameValue                 `json:"statusDistribution"`
	ChartData          []ChartPoint                `json:"chartData"`
	FBOPerformance     []repository.FBOPerformance `json:"fboPerformance"`
}

// TrendPoint is one month of the enrollment trend chart.
type TrendPoint struct {
	Month       string `json:"month"`
	Enrollments int64  `json:"enrollments"`
	Active      int64  `json:"active"`
}

// WeekPoint is one week of the enrollment performance chart.
type WeekPoint struct {
	Week    string `json:"week"`
	Actual  int64  `json:"actual"`
	Target  int64  `json:"target"`
}

// EnrollmentDashboard is the enrollment team overview payload.
type EnrollmentDashboard struct {
	TotalEnrolled     int64        `json:"totalEnrolled"`
	ActiveClients     int64        `json:"activeClients"`
	PendingApprovals  int64        `json:"pendingApprovals"`
	MonthlyTarget     int64        `json:"monthlyTarget"`
	Achieved          int64        `json:"achieved"`
	TrendData         []TrendPoint `json:"trendData"`
	PerformanceData   []WeekPoint  `json:"performanceData"`
	GrowthInsight     string       `json:"growthInsight"`
	RecentEnrollments []model.FBO  `json:"recentEnrollments"`
}

// CollectorDashboard is the collection team overview payload.
type CollectorDashboard struct {
	TodayCollections int64       `json:"todayCollections"`
	TodayQuantity    float64     `json:"todayQuantity"`
	MonthCollections int64       `json:"monthCollections"`
	MonthQuantity    float64     `json:"monthQuantity"`
	MonthAmount      float64     `json:"monthAmount"`
	AssignedFBOs     int64       `json:"assignedFBOs"`
	ActiveTrip       *model.Trip `json:"activeTrip,omitempty"`
}

// CollectorPerformance summarizes one collector's output over a period.
type CollectorPerformance struct {
	TotalCollections int64   `json:"totalCollections"`
	TotalQuantity    float64 `json:"totalQuantity"`
	TotalAmount      float64 `json:"totalAmount"`
	AverageQuantity  float64 `json:"averageQuantity"`
}

// DashboardService aggregates the role-specific overview payloads.
type DashboardService interface {
	Admin(ctx context.Context, from, to *time.Time) (*AdminDashboard, error)
	Enrollment(ctx context.Context, user *model.User) (*EnrollmentDashboard, error)
	Collector(ctx context.Context, user *model.User) (*CollectorDashboard, error)
	CollectorPerformance(ctx context.Context, collectorID string, from, to *time.Time) (*CollectorPerformance, error)
}

type dashboardService struct {
	fbos        repository.FBORepository
	collections repository.CollectionRepository
	trips       repository.TripRepository
}

func NewDashboardService(
	fbos repository.FBORepository,
	collections repository.CollectionRepository,
	trips repository.TripRepository,
) DashboardService {
	return &dashboardService{fbos: fbos, collections: collections, trips: trips}
}

// lastMonths returns YYYY-MM keys and month labels for the trailing n months,
// oldest first.
func lastMonths(n int, now time.Time) ([]string, []string) {
	keys := make([]string, 0, n)
	labels := make([]string, 0, n)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := n - 1; i >= 0; i-- {
		m := first.AddDate(0, -i, 0)
		keys = append(keys, m.Format("2006-01"))
		labels = append(labels, m.Format("Jan"))
	}
	return keys, labels
}

func (s *dashboardService) Admin(ctx context.Context, from, to *time.Time) (*AdminDashboard, error) {
	fboScope := repository.FBOFilter{CreatedFrom: from, CreatedTo: to}
	collectionScope := repository.CollectionFilter{DateFrom: from, DateTo: to}

	totalFBOs, err := s.fbos.Count(ctx, fboScope)
	if err != nil {
		return nil, err
	}
	activeScope := fboScope
	activeScope.Status = model.StatusActive
	activeFBOs, err := s.fbos.Count(ctx, activeScope)
	if err != nil {
		return nil, err
	}
	totalCollections, err := s.collections.Count(ctx, collectionScope)
	if err != nil {
		return nil, err
	}
	revenue, err := s.collections.Summary(ctx, collectionScope)
	if err != nil {
		return nil, err
	}

	recent, err := s.collections.List(ctx, collectionScope, repository.PageQuery{Limit: 5})
	if err != nil {
		return nil, err
	}

	statusCounts, err := s.fbos.StatusCounts(ctx, fboScope)
	if err != nil {
		return nil, err
	}
	distribution := []NameValue{
		{Name: "Active", Value: float64(statusCounts[string(model.StatusActive)])},
		{Name: "Pending", Value: float64(statusCounts[string(model.StatusPending)])},
		{Name: "Inactive", Value: float64(statusCounts[string(model.StatusInactive)] + statusCounts[string(model.StatusSuspended)])},
	}

	// The chart follows the requested range; without one it trails back six
	// months from today.
	chartScope := collectionScope
	if from == nil && to == nil {
		now := time.Now().UTC()
		since := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -5, 0)
		chartScope.DateFrom = &since
	}
	series, err := s.collections.MonthlySeries(ctx, chartScope)
	if err != nil {
		return nil, err
	}
	chart := make([]ChartPoint, 0, len(series))
	for _, b := range series {
		label := b.Month
		if m, err := time.Parse("2006-01", b.Month); err == nil {
			label = m.Format("Jan")
		}
		chart = append(chart, ChartPoint{
			Month:       label,
			Payouts:     b.Revenue,
			Collections: b.Volume,
		})
	}

	performance, err := s.collections.PerformanceByFBO(ctx, collectionScope, 10)
	if err != nil {
		return nil, err
	}

	return &AdminDashboard{
		TotalFBOs:          totalFBOs,
		ActiveFBOs:         activeFBOs,
		TotalCollections:   totalCollections,
		TotalRevenue:       revenue.TotalAmount,
		RecentCollections:  recent.Items,
		StatusDistribution: distribution,
		ChartData:          chart,
		FBOPerformance:     performance,
	}, nil
}

func (s *dashboardService) Enrollment(ctx context.Context, user *model.User) (*EnrollmentDashboard, error) {
	enrolledBy := user.UserID
	if user.Role == model.RoleAdmin {
		enrolledBy = ""
	}
	scope := repository.FBOFilter{EnrolledBy: enrolledBy}

	totalEnrolled, err := s.fbos.Count(ctx, scope)
	if err != nil {
		return nil, err
	}
	active := scope
	active.Status = model.StatusActive
	activeClients, err := s.fbos.Count(ctx, active)
	if err != nil {
		return nil, err
	}
	pendingScope := scope
	pendingScope.Status = model.StatusPending
	pending, err := s.fbos.Count(ctx, pendingScope)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	achievedScope := scope
	achievedScope.EnrolledFrom = &monthStart
	achieved, err := s.fbos.Count(ctx, achievedScope)
	if err != nil {
		return nil, err
	}

	since := monthStart.AddDate(0, -5, 0)
	monthly, err := s.fbos.MonthlyEnrollments(ctx, enrolledBy, since)
	if err != nil {
		return nil, err
	}
	keys, labels := lastMonths(6, now)
	trend := make([]TrendPoint, 0, len(keys))
	for i, key := range keys {
		n := monthly[key]
		trend = append(trend, TrendPoint{
			Month:       labels[i],
			Enrollments: n,
			// Rough retention estimate until per-month status history exists.
			Active: n * 80 / 100,
		})
	}

	weeks := make([]WeekPoint, 0, 4)
	for w := 3; w >= 0; w-- {
		weekStart := now.AddDate(0, 0, -7*(w+1))
		weekEnd := now.AddDate(0, 0, -7*w)
		weekScope := scope
		weekScope.EnrolledFrom = &weekStart
		weekScope.EnrolledTo = &weekEnd
		n, err := s.fbos.Count(ctx, weekScope)
		if err != nil {
			return nil, err
		}
		weeks = append(weeks, WeekPoint{
			Week:   fmt.Sprintf("Week %d", 4-w),
			Actual: n,
			Target: weeklyEnrollmentTarget,
		})
	}

	insight := "No enrollments in the previous month yet"
	if len(trend) >= 2 && trend[len(trend)-2].Enrollments > 0 {
		prev := trend[len(trend)-2].Enrollments
		cur := trend[len(trend)-1].Enrollments
		growth := float64(cur-prev) / float64(prev) * 100
		insight = fmt.Sprintf("Enrollments changed %.1f%% compared to last month", growth)
	}

	recentScope := scope
	recent, err := s.fbos.List(ctx, recentScope, repository.PageQuery{Limit: 5})
	if err != nil {
		return nil, err
	}

	return &EnrollmentDashboard{
		TotalEnrolled:     totalEnrolled,
		ActiveClients:     activeClients,
		PendingApprovals:  pending,
		MonthlyTarget:     monthlyEnrollmentTarget,
		Achieved:          achieved,
		TrendData:         trend,
		PerformanceData:   weeks,
		GrowthInsight:     insight,
		RecentEnrollments: recent.Items,
	}, nil
}

func (s *dashboardService) Collector(ctx context.Context, user *model.User) (*CollectorDashboard, error) {
	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	today := repository.CollectionFilter{CollectorID: user.UserID, DateFrom: &dayStart}
	todayCount, err := s.collections.Count(ctx, today)
	if err != nil {
		return nil, err
	}
	todaySummary, err := s.collections.Summary(ctx, today)
	if err != nil {
		return nil, err
	}

	month := repository.CollectionFilter{CollectorID: user.UserID, DateFrom: &monthStart}
	monthCount, err := s.collections.Count(ctx, month)
	if err != nil {
		return nil, err
	}
	monthSummary, err := s.collections.Summary(ctx, month)
	if err != nil {
		return nil, err
	}

	assigned, err := s.fbos.CountAssigned(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	activeTrip, err := s.trips.FindActive(ctx, user.UserID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	return &CollectorDashboard{
		TodayCollections: todayCount,
		TodayQuantity:    todaySummary.TotalQuantity,
		MonthCollections: monthCount,
		MonthQuantity:    monthSummary.TotalQuantity,
		MonthAmount:      monthSummary.TotalAmount,
		AssignedFBOs:     assigned,
		ActiveTrip:       activeTrip,
	}, nil
}

func (s *dashboardService) CollectorPerformance(ctx context.Context, collectorID string, from, to *time.Time) (*CollectorPerformance, error) {
	f := repository.CollectionFilter{CollectorID: collectorID, DateFrom: from, DateTo: to}
	count, err := s.collections.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	summary, err := s.collections.Summary(ctx, f)
	if err != nil {
		return nil, err
	}
	avg, err := s.collections.AverageQuantity(ctx, f)
	if err != nil {
		return nil, err
	}
	return &CollectorPerformance{
		TotalCollections: count,
		TotalQuantity:    summary.TotalQuantity,
		TotalAmount:      summary.TotalAmount,
		AverageQuantity:  avg,
	}, nil
}
