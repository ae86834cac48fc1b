package repository

import (
	"context"
	"time"

	"ucoportal/internal/model"
)

// BillFilter narrows bill listings.
type BillFilter struct {
	FBOID  string
	Status string
}

type BillRepository interface {
	Create(ctx context.Context, b *model.Bill) error
	FindByID(ctx context.Context, billID string) (*model.Bill, error)
	List(ctx context.Context, f BillFilter, page PageQuery) (PageResult[model.Bill], error)
	Update(ctx context.Context, billID string, fields map[string]any) error
	// RecordPayment applies a payment amount against the bill's collection
	// lines and totals and appends the transaction to the payment history.
	RecordPayment(ctx context.Context, billID string, collections []model.BillCollection, totalPaid, totalBalance float64, status string, txn model.PaymentTransaction) error
}

type SupportRepository interface {
	Create(ctx context.Context, m *model.SupportMessage) error
	ListByUser(ctx context.Context, userID string) ([]model.SupportMessage, error)
}

// ItemFilter narrows item listings.
type ItemFilter struct {
	Search    string
	CreatedBy string
	DateFrom  *time.Time
	DateTo    *time.Time
}

type ItemRepository interface {
	Create(ctx context.Context, it *model.Item) error
	List(ctx context.Context, f ItemFilter, page PageQuery) (PageResult[model.Item], error)
}
