package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ucoportal/internal/model"
	"ucoportal/internal/repository"
)

// PaymentService processes FBO payouts against approved collections.
type PaymentService interface {
	Process(ctx context.Context, in model.PaymentCreate, by *model.User) (*model.Payment, error)
	Get(ctx context.Context, paymentID string) (*model.Payment, error)
	List(ctx context.Context, f repository.PaymentFilter, page, limit int) (*model.Paginated[model.Payment], error)
	UpdateStatus(ctx context.Context, paymentID string, in model.PaymentUpdate) (*model.Payment, error)
}

type paymentService struct {
	payments    repository.PaymentRepository
	collections repository.CollectionRepository
	fbos        repository.FBORepository
}

func NewPaymentService(
	payments repository.PaymentRepository,
	collections repository.CollectionRepository,
	fbos repository.FBORepository,
) PaymentService {
	return &paymentService{payments: payments, collections: collections, fbos: fbos}
}

// Process aggregates the named collections into one payout, marking each of
// them paid with an embedded payment reference.
func (s *paymentService) Process(ctx context.Context, in model.PaymentCreate, by *model.User) (*model.Payment, error) {
	if len(in.CollectionIDs) == 0 {
		return nil, BadRequest("Collection IDs required")
	}
	collections, err := s.collections.FindByIDs(ctx, in.CollectionIDs)
	if err != nil {
		return nil, err
	}
	if len(collections) != len(in.CollectionIDs) {
		return nil, NotFound("Some collections not found")
	}
	for _, c := range collections {
		if c.Status == model.CollectionPaid {
			return nil, BadRequest(fmt.Sprintf("Collection %s is already paid", c.CollectionID))
		}
	}

	fbo, err := s.fbos.FindByID(ctx, in.FBOID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("FBO not found")
		}
		return nil, err
	}

	var totalQuantity, totalAmount float64
	for _, c := range collections {
		totalQuantity += c.QuantityCollected
		if c.PricePerKg != nil {
			totalAmount += c.QuantityCollected * *c.PricePerKg
		}
	}
	avgPrice := 0.0
	if totalQuantity > 0 {
		avgPrice = totalAmount / totalQuantity
	}
	netAmount := totalAmount
	for _, d := range in.Deductions {
		netAmount -= d.Amount
	}

	now := time.Now().UTC()
	p := &model.Payment{
		PaymentID:         newID("PAY"),
		FBOID:             in.FBOID,
		FBOName:           fbo.BusinessName,
		BillingPeriod:     in.BillingPeriod,
		CollectionIDs:     in.CollectionIDs,
		TotalQuantity:     totalQuantity,
		AveragePricePerKg: avgPrice,
		TotalAmount:       totalAmount,
		Deductions:        in.Deductions,
		NetAmount:         netAmount,
		PaymentMethod:     in.PaymentMethod,
		BankDetails:       fbo.BankDetails,
		Status:            model.PaymentProcessing,
		ProcessedBy:       by.UserID,
		Notes:             in.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}

	err = s.collections.UpdateMany(ctx, in.CollectionIDs, map[string]any{
		"status": model.CollectionPaid,
		"paymentDetails": model.PaymentDetails{
			PaymentID:            p.PaymentID,
			PaymentDate:          now,
			PaymentMethod:        in.PaymentMethod,
			TransactionReference: "",
			Status:               model.PaymentProcessing,
		},
		"updatedAt": now,
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *paymentService) Get(ctx context.Context, paymentID string) (*model.Payment, error) {
	p, err := s.payments.FindByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("Payment not found")
		}
		return nil, err
	}
	return p, nil
}

func (s *paymentService) List(ctx context.Context, f repository.PaymentFilter, page, limit int) (*model.Paginated[model.Payment], error) {
	res, err := s.payments.List(ctx, f, pageQuery(page, limit))
	if err != nil {
		return nil, err
	}
	return &model.Paginated[model.Payment]{
		Data:       res.Items,
		Pagination: model.NewPagination(page, limit, res.Total),
	}, nil
}

func (s *paymentService) UpdateStatus(ctx context.Context, paymentID string, in model.PaymentUpdate) (*model.Payment, error) {
	p, err := s.Get(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	fields := map[string]any{"status": in.Status, "updatedAt": now}
	if in.TransactionReference != "" {
		fields["transactionReference"] = in.TransactionReference
	}
	if in.Notes != "" {
		fields["notes"] = in.Notes
	}
	if in.Status == model.PaymentCompleted {
		fields["paymentDate"] = now
		p.PaymentDate = &now

		err := s.collections.UpdateMany(ctx, p.CollectionIDs, map[string]any{
			"paymentDetails.status":               model.PaymentCompleted,
			"paymentDetails.transactionReference": in.TransactionReference,
			"updatedAt":                           now,
		})
		if err != nil {
			return nil, err
		}
	}
	if err := s.payments.Update(ctx, paymentID, fields); err != nil {
		return nil, err
	}

	p.Status = in.Status
	if in.TransactionReference != "" {
		p.TransactionReference = in.TransactionReference
	}
	if in.Notes != "" {
		p.Notes = in.Notes
	}
	p.UpdatedAt = now
	return p, nil
}
