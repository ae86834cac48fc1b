package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ucoportal/internal/model"
	"ucoportal/internal/repository"
	"ucoportal/internal/storage"
)

// Balances within a rupee of zero count as settled.
const billSettleTolerance = 1.0

// BillService generates and settles billing statements.
type BillService interface {
	Create(ctx context.Context, in model.BillCreate, by *model.User) (*model.Bill, error)
	Get(ctx context.Context, billID string) (*model.Bill, error)
	List(ctx context.Context, f repository.BillFilter, page, limit int) (*model.Paginated[model.Bill], error)
	// RecordPayment spreads a payment amount over the bill's collection
	// lines oldest first.
	RecordPayment(ctx context.Context, billID string, in PaymentInput, by *model.User) (*model.Bill, error)
}

type billService struct {
	bills repository.BillRepository
	users repository.UserRepository
	store storage.Storage
}

func NewBillService(bills repository.BillRepository, users repository.UserRepository, store storage.Storage) BillService {
	return &billService{bills: bills, users: users, store: store}
}

func (s *billService) Create(ctx context.Context, in model.BillCreate, by *model.User) (*model.Bill, error) {
	if in.FBOID == "" {
		return nil, BadRequest("FBO ID required")
	}
	now := time.Now().UTC()
	billDate := in.BillDate
	if billDate.IsZero() {
		billDate = now
	}
	collections := in.Collections
	if collections == nil {
		collections = []model.BillCollection{}
	}
	status := in.Status
	if status == "" {
		status = "generated"
	}
	b := &model.Bill{
		BillID:          newID("BILL"),
		BillNumber:      in.BillNumber,
		BillDate:        billDate,
		FBOID:           in.FBOID,
		FBOName:         in.FBOName,
		FBOAddress:      in.FBOAddress,
		DateFrom:        in.DateFrom,
		DateTo:          in.DateTo,
		Collections:     collections,
		TotalVolume:     in.TotalVolume,
		TotalAmount:     in.TotalAmount,
		TotalPaid:       in.TotalPaid,
		TotalBalance:    in.TotalBalance,
		CompanySettings: in.CompanySettings,
		Status:          status,
		CreatedBy:       by.UserID,
		CreatedByName:   by.Name,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.bills.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *billService) Get(ctx context.Context, billID string) (*model.Bill, error) {
	b, err := s.bills.FindByID(ctx, billID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("Bill not found")
		}
		return nil, err
	}
	return b, nil
}

func (s *billService) List(ctx context.Context, f repository.BillFilter, page, limit int) (*model.Paginated[model.Bill], error) {
	res, err := s.bills.List(ctx, f, pageQuery(page, limit))
	if err != nil {
		return nil, err
	}

	// Older bills predate the createdByName column.
	missing := make([]string, 0)
	for _, b := range res.Items {
		if b.CreatedByName == "" && b.CreatedBy != "" {
			missing = append(missing, b.CreatedBy)
		}
	}
	if len(missing) > 0 {
		users, err := s.users.FindByUserIDs(ctx, missing)
		if err != nil {
			return nil, err
		}
		names := make(map[string]string, len(users))
		for _, u := range users {
			names[u.UserID] = u.Name
		}
		for i := range res.Items {
			if res.Items[i].CreatedByName == "" {
				res.Items[i].CreatedByName = names[res.Items[i].CreatedBy]
			}
		}
	}

	return &model.Paginated[model.Bill]{
		Data:       res.Items,
		Pagination: model.NewPagination(page, limit, res.Total),
	}, nil
}

func (s *billService) RecordPayment(ctx context.Context, billID string, in PaymentInput, by *model.User) (*model.Bill, error) {
	b, err := s.Get(ctx, billID)
	if err != nil {
		return nil, err
	}
	if in.AmountPaid <= 0 {
		return nil, BadRequest("Payment amount must be positive")
	}

	remaining := in.AmountPaid
	collections := make([]model.BillCollection, len(b.Collections))
	copy(collections, b.Collections)
	for i := range collections {
		if remaining <= 0 {
			break
		}
		due := collections[i].Balance
		if due <= 0 {
			continue
		}
		applied := min(due, remaining)
		collections[i].Paid += applied
		collections[i].Balance = due - applied
		remaining -= applied
	}

	totalPaid := b.TotalPaid + in.AmountPaid
	totalBalance := b.TotalAmount - totalPaid
	if totalBalance < 0 {
		totalBalance = 0
	}
	status := b.Status
	if status == "" {
		status = "generated"
	}
	switch {
	case totalBalance <= billSettleTolerance:
		totalBalance = 0
		status = "paid"
	case totalPaid > 0:
		status = "partial"
	}

	proofURL := ""
	if in.Proof != nil {
		proofURL, err = s.uploadProof(ctx, billID, *in.Proof)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	txn := model.PaymentTransaction{
		TransactionID: newID("TXN"),
		Amount:        in.AmountPaid,
		Date:          now,
		Method:        in.Method,
		Reference:     in.Reference,
		ProofURL:      proofURL,
		PaidBy:        by.UserID,
		PaidByName:    by.Name,
	}

	if err := s.bills.RecordPayment(ctx, billID, collections, totalPaid, totalBalance, status, txn); err != nil {
		return nil, err
	}

	b.Collections = collections
	b.TotalPaid = totalPaid
	b.TotalBalance = totalBalance
	b.Status = status
	b.PaymentHistory = append(b.PaymentHistory, txn)
	b.UpdatedAt = now
	return b, nil
}

func (s *billService) uploadProof(ctx context.Context, billID string, f DocumentUpload) (string, error) {
	key := storage.ObjectKey("payments", billID, f.Filename)
	info, err := s.store.Put(ctx, key, f.Content, storage.PutObjectOptions{
		Size:        f.Size,
		ContentType: f.ContentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload payment proof: %w", err)
	}
	return s.store.PresignGet(ctx, info.Key, 7*24*time.Hour)
}
