package repository

import (
	"context"

	"ucoportal/internal/model"
)

// PaymentFilter narrows payment listings.
type PaymentFilter struct {
	FBOID  string
	FBOIDs []string
	Status model.PaymentStatus
}

type PaymentRepository interface {
	Create(ctx context.Context, p *model.Payment) error
	FindByID(ctx context.Context, paymentID string) (*model.Payment, error)
	List(ctx context.Context, f PaymentFilter, page PageQuery) (PageResult[model.Payment], error)
	Update(ctx context.Context, paymentID string, fields map[string]any) error
}
