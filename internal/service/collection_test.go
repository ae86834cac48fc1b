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
	storeMocks "ucoportal/internal/storage/mocks"
)

func collectionFixtures() (*mocks.MockCollectionRepository, *mocks.MockFBORepository, *mocks.MockTripRepository, *mocks.MockSettingRepository, *storeMocks.MockStorage) {
	return new(mocks.MockCollectionRepository),
		new(mocks.MockFBORepository),
		new(mocks.MockTripRepository),
		new(mocks.MockSettingRepository),
		new(storeMocks.MockStorage)
}

func TestCollectionService_Create(t *testing.T) {
	ctx := context.Background()
	collector := &model.User{UserID: "USR1", Name: "Ravi", Role: model.RoleCollectionTeam}
	fbo := &model.FBO{FBOID: "FBO1", BusinessName: "Spice Garden"}

	t.Run("prices from grade rate", func(t *testing.T) {
		collections, fbos, trips, settings, store := collectionFixtures()
		fbos.On("FindByID", ctx, "FBO1").Return(fbo, nil)
		settings.On("Values", ctx, gradeRateKeys).Return(map[string]any{"gradeARate": 45.0}, nil)
		collections.On("Create", ctx, mock.MatchedBy(func(c *model.Collection) bool {
			return c.FBOID == "FBO1" &&
				c.FBOName == "Spice Garden" &&
				c.CollectorID == "USR1" &&
				*c.PricePerKg == 45.0 &&
				*c.TotalAmount == 450.0 &&
				c.Status == model.CollectionPending
		})).Return(nil)
		fbos.On("RecordCollection", ctx, "FBO1", 10.0, 0.0, mock.Anything).Return(nil)

		svc := NewCollectionService(collections, fbos, trips, settings, store)
		c, err := svc.Create(ctx, CollectionInput{FBOID: "FBO1", Quantity: 10, Grade: model.GradeA}, collector)

		require.NoError(t, err)
		assert.Equal(t, "Spice Garden", c.FBOName)
		collections.AssertExpectations(t)
		fbos.AssertExpectations(t)
	})

	t.Run("pay now in full marks paid", func(t *testing.T) {
		collections, fbos, trips, settings, store := collectionFixtures()
		fbos.On("FindByID", ctx, "FBO1").Return(fbo, nil)
		settings.On("Values", ctx, gradeRateKeys).Return(map[string]any{"gradeBRate": 30.0}, nil)
		collections.On("Create", ctx, mock.MatchedBy(func(c *model.Collection) bool {
			return c.Status == model.CollectionPaid &&
				c.PaymentDetails != nil &&
				c.PaymentDetails.Status == model.PaymentCompleted &&
				*c.PaymentDetails.Balance == 0.0 &&
				len(c.PaymentDetails.History) == 1 &&
				c.PaymentDetails.History[0].PaidBy == "USR1"
		})).Return(nil)
		trips.On("AddCompleted", ctx, "TRIP1", mock.MatchedBy(func(cc model.TripCompletedCollection) bool {
			return cc.FBOID == "FBO1" && cc.QuantityCollected == 5.0 && cc.Amount == 150.0
		})).Return(nil)
		fbos.On("RecordCollection", ctx, "FBO1", 5.0, 0.0, mock.Anything).Return(nil)

		svc := NewCollectionService(collections, fbos, trips, settings, store)
		_, err := svc.Create(ctx, CollectionInput{
			FBOID:         "FBO1",
			TripID:        "TRIP1",
			Quantity:      5,
			Grade:         model.GradeB,
			PayNow:        true,
			PaymentMethod: model.MethodUPI,
			AmountPaid:    150,
		}, collector)

		require.NoError(t, err)
		trips.AssertExpectations(t)
	})

	t.Run("unknown fbo", func(t *testing.T) {
		collections, fbos, trips, settings, store := collectionFixtures()
		fbos.On("FindByID", ctx, "FBO404").Return(nil, repository.ErrNotFound)

		svc := NewCollectionService(collections, fbos, trips, settings, store)
		_, err := svc.Create(ctx, CollectionInput{FBOID: "FBO404"}, collector)
		assert.EqualError(t, err, "FBO not found")
	})
}

func TestCollectionService_Review(t *testing.T) {
	ctx := context.Background()
	admin := &model.User{UserID: "ADM1", Role: model.RoleAdmin}

	tests := []struct {
		name       string
		review     model.CollectionReview
		collection *model.Collection
		wantStatus string
		wantErr    string
	}{
		{
			name:       "approve",
			review:     model.CollectionReview{Action: "approve"},
			collection: &model.Collection{CollectionID: "COL1", Status: model.CollectionPending, QuantityCollected: 10},
			wantStatus: "approved",
		},
		{
			name:       "reject",
			review:     model.CollectionReview{Action: "reject", Notes: "contaminated"},
			collection: &model.Collection{CollectionID: "COL1", Status: model.CollectionPending},
			wantStatus: "rejected",
		},
		{
			name:       "not pending",
			review:     model.CollectionReview{Action: "approve"},
			collection: &model.Collection{CollectionID: "COL1", Status: model.CollectionApproved},
			wantErr:    "Collection not pending review",
		},
		{
			name:       "bad action",
			review:     model.CollectionReview{Action: "hold"},
			collection: &model.Collection{CollectionID: "COL1", Status: model.CollectionPending},
			wantErr:    "Action must be approve or reject",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collections, fbos, trips, settings, store := collectionFixtures()
			collections.On("FindByID", ctx, "COL1").Return(tt.collection, nil).Maybe()
			collections.On("Update", ctx, "COL1", mock.MatchedBy(func(fields map[string]any) bool {
				return string(fields["status"].(model.CollectionStatus)) == tt.wantStatus &&
					fields["approvedBy"] == "ADM1"
			})).Return(nil).Maybe()

			svc := NewCollectionService(collections, fbos, trips, settings, store)
			res, err := svc.Review(ctx, "COL1", tt.review, admin)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantStatus, res.Status)
			}
		})
	}
}

func TestCollectionService_Review_RepricesOnOverride(t *testing.T) {
	ctx := context.Background()
	admin := &model.User{UserID: "ADM1", Role: model.RoleAdmin}
	collections, fbos, trips, settings, store := collectionFixtures()

	collections.On("FindByID", ctx, "COL1").
		Return(&model.Collection{CollectionID: "COL1", Status: model.CollectionPending, QuantityCollected: 20}, nil)
	collections.On("Update", ctx, "COL1", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["pricePerKg"] == 38.0 && fields["totalAmount"] == 760.0
	})).Return(nil)

	svc := NewCollectionService(collections, fbos, trips, settings, store)
	price := 38.0
	res, err := svc.Review(ctx, "COL1", model.CollectionReview{Action: "approve", PricePerKg: &price}, admin)

	require.NoError(t, err)
	require.NotNil(t, res.TotalAmount)
	assert.Equal(t, 760.0, *res.TotalAmount)
	collections.AssertExpectations(t)
}

func TestCollectionService_Delete_RollsBackTotals(t *testing.T) {
	ctx := context.Background()
	collections, fbos, trips, settings, store := collectionFixtures()

	amount := 300.0
	collections.On("FindByID", ctx, "COL1").Return(&model.Collection{
		CollectionID:      "COL1",
		FBOID:             "FBO1",
		TripID:            "TRIP1",
		QuantityCollected: 12,
		TotalAmount:       &amount,
	}, nil)
	trips.On("RemoveCompleted", ctx, "TRIP1", "COL1", 12.0, 300.0).Return(nil)
	fbos.On("RollbackCollection", ctx, "FBO1", 12.0, 0.0).Return(nil)
	collections.On("Delete", ctx, "COL1").Return(nil)

	svc := NewCollectionService(collections, fbos, trips, settings, store)
	require.NoError(t, svc.Delete(ctx, "COL1"))
	trips.AssertExpectations(t)
	fbos.AssertExpectations(t)
	collections.AssertExpectations(t)
}

func TestCollectionService_RecordPayment(t *testing.T) {
	ctx := context.Background()
	total := 1000.0
	collector := &model.User{UserID: "USR1", Name: "Ravi", Role: model.RoleCollectionTeam}

	t.Run("full payment completes", func(t *testing.T) {
		collections, fbos, trips, settings, store := collectionFixtures()
		collections.On("FindByID", ctx, "COL1").Return(&model.Collection{
			CollectionID: "COL1",
			CollectorID:  "USR1",
			Status:       model.CollectionApproved,
			TotalAmount:  &total,
		}, nil)
		collections.On("Update", ctx, "COL1", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["status"] == model.CollectionPaid
		})).Return(nil)

		svc := NewCollectionService(collections, fbos, trips, settings, store)
		details, status, err := svc.RecordPayment(ctx, "COL1", PaymentInput{Method: "Cash", AmountPaid: 1000}, collector)

		require.NoError(t, err)
		assert.Equal(t, model.CollectionPaid, status)
		assert.Equal(t, model.PaymentCompleted, details.Status)
		assert.Equal(t, 0.0, *details.Balance)
		require.Len(t, details.History, 1)
		assert.Equal(t, "Ravi", details.History[0].PaidByName)
	})

	t.Run("partial payment demotes paid collection", func(t *testing.T) {
		collections, fbos, trips, settings, store := collectionFixtures()
		paid := 200.0
		collections.On("FindByID", ctx, "COL1").Return(&model.Collection{
			CollectionID: "COL1",
			CollectorID:  "USR1",
			Status:       model.CollectionPaid,
			TotalAmount:  &total,
			PaymentDetails: &model.PaymentDetails{
				PaymentID:  "PAY1",
				AmountPaid: &paid,
				History:    []model.PaymentTransaction{{TransactionID: "TXN1", Amount: 200}},
			},
		}, nil)
		collections.On("Update", ctx, "COL1", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["status"] == model.CollectionPending
		})).Return(nil)

		svc := NewCollectionService(collections, fbos, trips, settings, store)
		details, status, err := svc.RecordPayment(ctx, "COL1", PaymentInput{Method: "UPI", AmountPaid: 300}, collector)

		require.NoError(t, err)
		assert.Equal(t, model.CollectionPending, status)
		assert.Equal(t, model.PaymentPartial, details.Status)
		assert.Equal(t, 500.0, *details.AmountPaid)
		assert.Equal(t, "PAY1", details.PaymentID)
		assert.Len(t, details.History, 2)
	})

	t.Run("foreign collector forbidden", func(t *testing.T) {
		collections, fbos, trips, settings, store := collectionFixtures()
		collections.On("FindByID", ctx, "COL1").Return(&model.Collection{
			CollectionID: "COL1",
			CollectorID:  "USR2",
			TotalAmount:  &total,
		}, nil)

		svc := NewCollectionService(collections, fbos, trips, settings, store)
		_, _, err := svc.RecordPayment(ctx, "COL1", PaymentInput{AmountPaid: 100}, collector)
		assert.EqualError(t, err, "Not authorized")
	})
}

func TestCollectionService_UpdateFields_RecomputesPrice(t *testing.T) {
	ctx := context.Background()
	collections, fbos, trips, settings, store := collectionFixtures()

	collections.On("FindByID", ctx, "COL1").Return(&model.Collection{
		CollectionID:      "COL1",
		QuantityCollected: 10,
		QualityGrade:      model.GradeA,
	}, nil)
	settings.On("Values", ctx, gradeRateKeys).Return(map[string]any{"gradeCRate": 15.0}, nil)
	collections.On("Update", ctx, "COL1", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["pricePerKg"] == 15.0 && fields["totalAmount"] == 150.0
	})).Return(nil)

	svc := NewCollectionService(collections, fbos, trips, settings, store)
	_, err := svc.UpdateFields(ctx, "COL1", map[string]any{"qualityGrade": "C"})
	require.NoError(t, err)
	collections.AssertExpectations(t)
}
