package service

import (
	"context"
	"errors"
	"time"

	"ucoportal/internal/model"
	"ucoportal/internal/repository"
)

// TripWithCollector decorates a trip with the collector's employee id for
// admin listings.
type TripWithCollector struct {
	model.Trip
	CollectorEmployeeID string `json:"collectorEmployeeId,omitempty"`
}

// TripService covers collector route management.
type TripService interface {
	Start(ctx context.Context, in model.TripCreate, by *model.User) (*model.Trip, error)
	End(ctx context.Context, tripID string, in model.TripEnd, by *model.User) (*model.Trip, error)
	// Active returns the collector's planned or in-progress trip, or nil
	// when there is none.
	Active(ctx context.Context, collectorID string) (*model.Trip, error)
	Get(ctx context.Context, tripID string, by *model.User) (*model.Trip, error)
	ListMine(ctx context.Context, collectorID string, page, limit int) (*model.Paginated[model.Trip], error)
	List(ctx context.Context, f repository.TripFilter, page, limit int) (*model.Paginated[TripWithCollector], error)
}

type tripService struct {
	trips repository.TripRepository
	users repository.UserRepository
}

func NewTripService(trips repository.TripRepository, users repository.UserRepository) TripService {
	return &tripService{trips: trips, users: users}
}

func (s *tripService) Start(ctx context.Context, in model.TripCreate, by *model.User) (*model.Trip, error) {
	now := time.Now().UTC()
	planned := in.PlannedFBOs
	if planned == nil {
		planned = []model.TripPlannedFBO{}
	}
	t := &model.Trip{
		TripID:               newID("TRIP"),
		CollectorID:          by.UserID,
		CollectorName:        by.Name,
		VehicleNumber:        in.VehicleNumber,
		TripDate:             now,
		StartTime:            now,
		StartOdometer:        in.StartOdometer,
		PlannedFBOs:          planned,
		CompletedCollections: []model.TripCompletedCollection{},
		Status:               model.TripInProgress,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := s.trips.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *tripService) End(ctx context.Context, tripID string, in model.TripEnd, by *model.User) (*model.Trip, error) {
	t, err := s.get(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if by.Role != model.RoleAdmin && t.CollectorID != by.UserID {
		return nil, Forbidden("Not authorized to end this trip")
	}
	if t.Status == model.TripCompleted {
		return nil, BadRequest("Trip already completed")
	}

	now := time.Now().UTC()
	totalKm := in.EndOdometer - t.StartOdometer
	fields := map[string]any{
		"status":          model.TripCompleted,
		"endTime":         now,
		"endOdometer":     in.EndOdometer,
		"totalKmTraveled": totalKm,
		"updatedAt":       now,
	}
	if in.Notes != "" {
		fields["notes"] = in.Notes
	}
	if err := s.trips.Update(ctx, tripID, fields); err != nil {
		return nil, err
	}

	t.Status = model.TripCompleted
	t.EndTime = &now
	t.EndOdometer = &in.EndOdometer
	t.TotalKmTraveled = &totalKm
	t.UpdatedAt = now
	return t, nil
}

func (s *tripService) Active(ctx context.Context, collectorID string) (*model.Trip, error) {
	t, err := s.trips.FindActive(ctx, collectorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

func (s *tripService) Get(ctx context.Context, tripID string, by *model.User) (*model.Trip, error) {
	t, err := s.get(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if by.Role != model.RoleAdmin && t.CollectorID != by.UserID {
		return nil, Forbidden("Not authorized to view this trip")
	}
	return t, nil
}

func (s *tripService) get(ctx context.Context, tripID string) (*model.Trip, error) {
	t, err := s.trips.FindByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("Trip not found")
		}
		return nil, err
	}
	return t, nil
}

func (s *tripService) ListMine(ctx context.Context, collectorID string, page, limit int) (*model.Paginated[model.Trip], error) {
	res, err := s.trips.List(ctx, repository.TripFilter{CollectorID: collectorID}, pageQuery(page, limit))
	if err != nil {
		return nil, err
	}
	return &model.Paginated[model.Trip]{
		Data:       res.Items,
		Pagination: model.NewPagination(page, limit, res.Total),
	}, nil
}

func (s *tripService) List(ctx context.Context, f repository.TripFilter, page, limit int) (*model.Paginated[TripWithCollector], error) {
	res, err := s.trips.List(ctx, f, pageQuery(page, limit))
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(res.Items))
	seen := make(map[string]bool, len(res.Items))
	for _, t := range res.Items {
		if !seen[t.CollectorID] {
			seen[t.CollectorID] = true
			ids = append(ids, t.CollectorID)
		}
	}
	employeeIDs := make(map[string]string, len(ids))
	if len(ids) > 0 {
		collectors, err := s.users.FindByUserIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, u := range collectors {
			employeeIDs[u.UserID] = u.EmployeeID
		}
	}

	items := make([]TripWithCollector, 0, len(res.Items))
	for _, t := range res.Items {
		items = append(items, TripWithCollector{Trip: t, CollectorEmployeeID: employeeIDs[t.CollectorID]})
	}
	return &model.Paginated[TripWithCollector]{
		Data:       items,
		Pagination: model.NewPagination(page, limit, res.Total),
	}, nil
}
