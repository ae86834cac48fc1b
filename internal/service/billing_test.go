package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ucoportal/internal/model"
	"ucoportal/internal/repository"
	"ucoportal/internal/repository/mocks"
	"ucoportal/internal/storage"
	storeMocks "ucoportal/internal/storage/mocks"
)

func TestBillService_Create(t *testing.T) {
	ctx := context.Background()
	admin := &model.User{UserID: "ADM1", Name: "Admin", Role: model.RoleAdmin}

	t.Run("happy path", func(t *testing.T) {
		bills := new(mocks.MockBillRepository)
		bills.On("Create", ctx, mock.MatchedBy(func(b *model.Bill) bool {
			return b.FBOID == "FBO1" &&
				b.Status == "generated" &&
				b.CreatedBy == "ADM1" &&
				b.CreatedByName == "Admin" &&
				b.BillID != ""
		})).Return(nil)

		svc := NewBillService(bills, new(mocks.MockUserRepository), new(storeMocks.MockStorage))
		b, err := svc.Create(ctx, model.BillCreate{FBOID: "FBO1", BillNumber: "B-001", TotalAmount: 500, TotalBalance: 500}, admin)

		require.NoError(t, err)
		assert.NotEmpty(t, b.BillID)
		bills.AssertExpectations(t)
	})

	t.Run("explicit status honored", func(t *testing.T) {
		bills := new(mocks.MockBillRepository)
		bills.On("Create", ctx, mock.MatchedBy(func(b *model.Bill) bool {
			return b.Status == "draft"
		})).Return(nil)

		svc := NewBillService(bills, new(mocks.MockUserRepository), new(storeMocks.MockStorage))
		_, err := svc.Create(ctx, model.BillCreate{FBOID: "FBO1", Status: "draft"}, admin)
		require.NoError(t, err)
	})

	t.Run("missing fbo id", func(t *testing.T) {
		svc := NewBillService(new(mocks.MockBillRepository), new(mocks.MockUserRepository), new(storeMocks.MockStorage))
		_, err := svc.Create(ctx, model.BillCreate{}, admin)
		assert.EqualError(t, err, "FBO ID required")
	})
}

func TestBillService_List_BackfillsCreatorNames(t *testing.T) {
	ctx := context.Background()
	bills := new(mocks.MockBillRepository)
	users := new(mocks.MockUserRepository)

	bills.On("List", ctx, repository.BillFilter{}, repository.PageQuery{Limit: 20}).
		Return(repository.PageResult[model.Bill]{
			Items: []model.Bill{
				{BillID: "BILL1", CreatedBy: "USR1"},
				{BillID: "BILL2", CreatedBy: "USR2", CreatedByName: "Priya"},
			},
			Total: 2,
		}, nil)
	users.On("FindByUserIDs", ctx, []string{"USR1"}).Return([]model.User{{UserID: "USR1", Name: "Ravi"}}, nil)

	svc := NewBillService(bills, users, new(storeMocks.MockStorage))
	res, err := svc.List(ctx, repository.BillFilter{}, 1, 20)

	require.NoError(t, err)
	assert.Equal(t, "Ravi", res.Data[0].CreatedByName)
	assert.Equal(t, "Priya", res.Data[1].CreatedByName)
	users.AssertExpectations(t)
}

func TestBillService_RecordPayment(t *testing.T) {
	ctx := context.Background()
	admin := &model.User{UserID: "ADM1", Name: "Admin", Role: model.RoleAdmin}

	bill := func() *model.Bill {
		return &model.Bill{
			BillID: "BILL1",
			Collections: []model.BillCollection{
				{ID: "COL1", Amount: 300, Balance: 300},
				{ID: "COL2", Amount: 200, Balance: 200},
			},
			TotalAmount:  500,
			TotalBalance: 500,
			Status:       "generated",
		}
	}

	t.Run("partial payment spreads oldest first", func(t *testing.T) {
		bills := new(mocks.MockBillRepository)
		bills.On("FindByID", ctx, "BILL1").Return(bill(), nil)
		bills.On("RecordPayment", ctx, "BILL1", mock.MatchedBy(func(cs []model.BillCollection) bool {
			return cs[0].Paid == 300 && cs[0].Balance == 0 && cs[1].Paid == 50 && cs[1].Balance == 150
		}), 350.0, 150.0, "partial", mock.Anything).Return(nil)

		svc := NewBillService(bills, new(mocks.MockUserRepository), new(storeMocks.MockStorage))
		b, err := svc.RecordPayment(ctx, "BILL1", PaymentInput{AmountPaid: 350}, admin)

		require.NoError(t, err)
		assert.Equal(t, "partial", b.Status)
		assert.Equal(t, 150.0, b.TotalBalance)
		bills.AssertExpectations(t)
	})

	t.Run("transaction appended to payment history", func(t *testing.T) {
		bills := new(mocks.MockBillRepository)
		store := new(storeMocks.MockStorage)
		bills.On("FindByID", ctx, "BILL1").Return(bill(), nil)
		store.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{Key: "payments/BILL1/proof.jpg"}, nil)
		store.On("PresignGet", ctx, "payments/BILL1/proof.jpg", mock.Anything).
			Return("https://storage.example.com/proof.jpg", nil)
		bills.On("RecordPayment", ctx, "BILL1", mock.Anything, 100.0, 400.0, "partial",
			mock.MatchedBy(func(txn model.PaymentTransaction) bool {
				return txn.TransactionID != "" &&
					txn.Amount == 100 &&
					txn.Method == "upi" &&
					txn.Reference == "REF-9" &&
					txn.ProofURL == "https://storage.example.com/proof.jpg" &&
					txn.PaidBy == "ADM1"
			})).Return(nil)

		svc := NewBillService(bills, new(mocks.MockUserRepository), store)
		b, err := svc.RecordPayment(ctx, "BILL1", PaymentInput{
			Method:     "upi",
			AmountPaid: 100,
			Reference:  "REF-9",
			Proof: &DocumentUpload{
				Type:        "payment_proof",
				Filename:    "proof.jpg",
				ContentType: "image/jpeg",
				Size:        10,
				Content:     strings.NewReader("fake image"),
			},
		}, admin)

		require.NoError(t, err)
		require.Len(t, b.PaymentHistory, 1)
		assert.Equal(t, "upi", b.PaymentHistory[0].Method)
		assert.Equal(t, "REF-9", b.PaymentHistory[0].Reference)
		assert.WithinDuration(t, time.Now().UTC(), b.PaymentHistory[0].Date, time.Minute)
		bills.AssertExpectations(t)
		store.AssertExpectations(t)
	})

	t.Run("near-zero balance settles", func(t *testing.T) {
		bills := new(mocks.MockBillRepository)
		bills.On("FindByID", ctx, "BILL1").Return(bill(), nil)
		bills.On("RecordPayment", ctx, "BILL1", mock.Anything, 499.5, 0.0, "paid", mock.Anything).Return(nil)

		svc := NewBillService(bills, new(mocks.MockUserRepository), new(storeMocks.MockStorage))
		b, err := svc.RecordPayment(ctx, "BILL1", PaymentInput{AmountPaid: 499.5}, admin)

		require.NoError(t, err)
		assert.Equal(t, "paid", b.Status)
		assert.Equal(t, 0.0, b.TotalBalance)
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		bills := new(mocks.MockBillRepository)
		bills.On("FindByID", ctx, "BILL1").Return(bill(), nil)

		svc := NewBillService(bills, new(mocks.MockUserRepository), new(storeMocks.MockStorage))
		_, err := svc.RecordPayment(ctx, "BILL1", PaymentInput{AmountPaid: 0}, admin)
		assert.EqualError(t, err, "Payment amount must be positive")
	})
}
