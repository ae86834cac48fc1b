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

func TestPaymentService_Process(t *testing.T) {
	ctx := context.Background()
	admin := &model.User{UserID: "ADM1", Role: model.RoleAdmin}
	rateA, rateB := 40.0, 30.0
	fbo := &model.FBO{FBOID: "FBO1", BusinessName: "Spice Garden", BankDetails: &model.FBOBankDetails{BankName: "HDFC"}}

	t.Run("happy path", func(t *testing.T) {
		payments := new(mocks.MockPaymentRepository)
		collections := new(mocks.MockCollectionRepository)
		fbos := new(mocks.MockFBORepository)

		collections.On("FindByIDs", ctx, []string{"COL1", "COL2"}).Return([]model.Collection{
			{CollectionID: "COL1", QuantityCollected: 10, PricePerKg: &rateA, Status: model.CollectionApproved},
			{CollectionID: "COL2", QuantityCollected: 20, PricePerKg: &rateB, Status: model.CollectionApproved},
		}, nil)
		fbos.On("FindByID", ctx, "FBO1").Return(fbo, nil)
		payments.On("Create", ctx, mock.MatchedBy(func(p *model.Payment) bool {
			// 10*40 + 20*30 = 1000 over 30 kg, minus a 50 deduction.
			return p.TotalQuantity == 30 &&
				p.TotalAmount == 1000 &&
				p.NetAmount == 950 &&
				p.AveragePricePerKg > 33.2 && p.AveragePricePerKg < 33.4 &&
				p.Status == model.PaymentProcessing &&
				p.BankDetails == fbo.BankDetails
		})).Return(nil)
		collections.On("UpdateMany", ctx, []string{"COL1", "COL2"}, mock.MatchedBy(func(fields map[string]any) bool {
			return fields["status"] == model.CollectionPaid
		})).Return(nil)

		svc := NewPaymentService(payments, collections, fbos)
		p, err := svc.Process(ctx, model.PaymentCreate{
			FBOID:         "FBO1",
			CollectionIDs: []string{"COL1", "COL2"},
			PaymentMethod: model.MethodBankTransfer,
			Deductions:    []model.PaymentDeduction{{Type: "quality", Amount: 50}},
		}, admin)

		require.NoError(t, err)
		assert.Equal(t, "Spice Garden", p.FBOName)
		payments.AssertExpectations(t)
		collections.AssertExpectations(t)
		// Payouts settle existing pickups; FBO collection counters stay put.
		fbos.AssertNotCalled(t, "RecordCollection", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing collections", func(t *testing.T) {
		payments := new(mocks.MockPaymentRepository)
		collections := new(mocks.MockCollectionRepository)
		collections.On("FindByIDs", ctx, []string{"COL1", "COL404"}).Return([]model.Collection{
			{CollectionID: "COL1"},
		}, nil)

		svc := NewPaymentService(payments, collections, new(mocks.MockFBORepository))
		_, err := svc.Process(ctx, model.PaymentCreate{FBOID: "FBO1", CollectionIDs: []string{"COL1", "COL404"}}, admin)
		assert.EqualError(t, err, "Some collections not found")
	})

	t.Run("already paid collection", func(t *testing.T) {
		payments := new(mocks.MockPaymentRepository)
		collections := new(mocks.MockCollectionRepository)
		collections.On("FindByIDs", ctx, []string{"COL1"}).Return([]model.Collection{
			{CollectionID: "COL1", Status: model.CollectionPaid},
		}, nil)

		svc := NewPaymentService(payments, collections, new(mocks.MockFBORepository))
		_, err := svc.Process(ctx, model.PaymentCreate{FBOID: "FBO1", CollectionIDs: []string{"COL1"}}, admin)
		assert.EqualError(t, err, "Collection COL1 is already paid")
	})

	t.Run("unknown fbo", func(t *testing.T) {
		payments := new(mocks.MockPaymentRepository)
		collections := new(mocks.MockCollectionRepository)
		fbos := new(mocks.MockFBORepository)
		collections.On("FindByIDs", ctx, []string{"COL1"}).Return([]model.Collection{{CollectionID: "COL1"}}, nil)
		fbos.On("FindByID", ctx, "FBO404").Return(nil, repository.ErrNotFound)

		svc := NewPaymentService(payments, collections, fbos)
		_, err := svc.Process(ctx, model.PaymentCreate{FBOID: "FBO404", CollectionIDs: []string{"COL1"}}, admin)
		assert.EqualError(t, err, "FBO not found")
	})
}

func TestPaymentService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("completion cascades to collections", func(t *testing.T) {
		payments := new(mocks.MockPaymentRepository)
		collections := new(mocks.MockCollectionRepository)

		payments.On("FindByID", ctx, "PAY1").Return(&model.Payment{
			PaymentID:     "PAY1",
			CollectionIDs: []string{"COL1", "COL2"},
			Status:        model.PaymentProcessing,
		}, nil)
		collections.On("UpdateMany", ctx, []string{"COL1", "COL2"}, mock.MatchedBy(func(fields map[string]any) bool {
			return fields["paymentDetails.status"] == model.PaymentCompleted &&
				fields["paymentDetails.transactionReference"] == "UTR123"
		})).Return(nil)
		payments.On("Update", ctx, "PAY1", mock.MatchedBy(func(fields map[string]any) bool {
			_, hasDate := fields["paymentDate"]
			return fields["status"] == model.PaymentCompleted && hasDate
		})).Return(nil)

		svc := NewPaymentService(payments, collections, new(mocks.MockFBORepository))
		p, err := svc.UpdateStatus(ctx, "PAY1", model.PaymentUpdate{Status: model.PaymentCompleted, TransactionReference: "UTR123"})

		require.NoError(t, err)
		assert.Equal(t, model.PaymentCompleted, p.Status)
		assert.NotNil(t, p.PaymentDate)
		payments.AssertExpectations(t)
		collections.AssertExpectations(t)
	})

	t.Run("failure does not touch collections", func(t *testing.T) {
		payments := new(mocks.MockPaymentRepository)
		collections := new(mocks.MockCollectionRepository)

		payments.On("FindByID", ctx, "PAY1").Return(&model.Payment{PaymentID: "PAY1"}, nil)
		payments.On("Update", ctx, "PAY1", mock.Anything).Return(nil)

		svc := NewPaymentService(payments, collections, new(mocks.MockFBORepository))
		_, err := svc.UpdateStatus(ctx, "PAY1", model.PaymentUpdate{Status: model.PaymentFailed})

		require.NoError(t, err)
		collections.AssertNotCalled(t, "UpdateMany", mock.Anything, mock.Anything, mock.Anything)
	})
}
