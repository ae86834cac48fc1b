package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ucoportal/internal/model"
	"ucoportal/internal/repository"
	"ucoportal/internal/repository/mocks"
)

func TestTripService_Start(t *testing.T) {
	ctx := context.Background()
	collector := &model.User{UserID: "USR1", Name: "Ravi", Role: model.RoleCollectionTeam}

	trips := new(mocks.MockTripRepository)
	trips.On("Create", ctx, mock.MatchedBy(func(tr *model.Trip) bool {
		return tr.CollectorID == "USR1" &&
			tr.Status == model.TripInProgress &&
			tr.StartOdometer == 1200.5 &&
			tr.PlannedFBOs != nil &&
			tr.CompletedCollections != nil
	})).Return(nil)

	svc := NewTripService(trips, new(mocks.MockUserRepository))
	tr, err := svc.Start(ctx, model.TripCreate{VehicleNumber: "KA01AB1234", StartOdometer: 1200.5}, collector)

	require.NoError(t, err)
	assert.Contains(t, tr.TripID, "TRIP")
	trips.AssertExpectations(t)
}

func TestTripService_End(t *testing.T) {
	ctx := context.Background()
	collector := &model.User{UserID: "USR1", Role: model.RoleCollectionTeam}

	t.Run("computes distance", func(t *testing.T) {
		trips := new(mocks.MockTripRepository)
		trips.On("FindByID", ctx, "TRIP1").Return(&model.Trip{
			TripID:        "TRIP1",
			CollectorID:   "USR1",
			StartOdometer: 1000,
			Status:        model.TripInProgress,
		}, nil)
		trips.On("Update", ctx, "TRIP1", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["totalKmTraveled"] == 45.5 && fields["status"] == model.TripCompleted
		})).Return(nil)

		svc := NewTripService(trips, new(mocks.MockUserRepository))
		tr, err := svc.End(ctx, "TRIP1", model.TripEnd{EndOdometer: 1045.5}, collector)

		require.NoError(t, err)
		assert.Equal(t, model.TripCompleted, tr.Status)
		assert.Equal(t, 45.5, *tr.TotalKmTraveled)
		trips.AssertExpectations(t)
	})

	t.Run("foreign collector forbidden", func(t *testing.T) {
		trips := new(mocks.MockTripRepository)
		trips.On("FindByID", ctx, "TRIP1").Return(&model.Trip{TripID: "TRIP1", CollectorID: "USR2"}, nil)

		svc := NewTripService(trips, new(mocks.MockUserRepository))
		_, err := svc.End(ctx, "TRIP1", model.TripEnd{EndOdometer: 1100}, collector)
		assert.EqualError(t, err, "Not authorized to end this trip")
	})

	t.Run("already completed", func(t *testing.T) {
		trips := new(mocks.MockTripRepository)
		trips.On("FindByID", ctx, "TRIP1").Return(&model.Trip{
			TripID:      "TRIP1",
			CollectorID: "USR1",
			Status:      model.TripCompleted,
		}, nil)

		svc := NewTripService(trips, new(mocks.MockUserRepository))
		_, err := svc.End(ctx, "TRIP1", model.TripEnd{EndOdometer: 1100}, collector)
		assert.EqualError(t, err, "Trip already completed")
	})
}

func TestTripService_Active(t *testing.T) {
	ctx := context.Background()

	t.Run("none is not an error", func(t *testing.T) {
		trips := new(mocks.MockTripRepository)
		trips.On("FindActive", ctx, "USR1").Return(nil, repository.ErrNotFound)

		svc := NewTripService(trips, new(mocks.MockUserRepository))
		tr, err := svc.Active(ctx, "USR1")
		require.NoError(t, err)
		assert.Nil(t, tr)
	})
}

func TestTripService_List_AttachesEmployeeIDs(t *testing.T) {
	ctx := context.Background()
	trips := new(mocks.MockTripRepository)
	users := new(mocks.MockUserRepository)

	trips.On("List", ctx, repository.TripFilter{}, repository.PageQuery{Limit: 20}).
		Return(repository.PageResult[model.Trip]{
			Items: []model.Trip{
				{TripID: "TRIP1", CollectorID: "USR1"},
				{TripID: "TRIP2", CollectorID: "USR1"},
			},
			Total: 2,
		}, nil)
	users.On("FindByUserIDs", ctx, []string{"USR1"}).
		Return([]model.User{{UserID: "USR1", EmployeeID: "EMP004"}}, nil)

	svc := NewTripService(trips, users)
	res, err := svc.List(ctx, repository.TripFilter{}, 1, 20)

	require.NoError(t, err)
	require.Len(t, res.Data, 2)
	assert.Equal(t, "EMP004", res.Data[0].CollectorEmployeeID)
	assert.Equal(t, "EMP004", res.Data[1].CollectorEmployeeID)
	users.AssertExpectations(t)
}
