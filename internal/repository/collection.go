package repository

import (
	"context"
	"time"

	"ucoportal/internal/model"
)

// CollectionFilter narrows collection listings.
type CollectionFilter struct {
	FBOID         string
	FBOIDs        []string
	CollectorID   string
	Status        model.CollectionStatus
	Statuses      []model.CollectionStatus
	PaymentStatus model.PaymentStatus
	QualityGrade  model.QualityGrade
	DateFrom      *time.Time
	DateTo        *time.Time
}

type CollectionRepository interface {
	Create(ctx context.Context, c *model.Collection) error
	FindByID(ctx context.Context, collectionID string) (*model.Collection, error)
	FindByIDs(ctx context.Context, collectionIDs []string) ([]model.Collection, error)
	List(ctx context.Context, f CollectionFilter, page PageQuery) (PageResult[model.Collection], error)
	Count(ctx context.Context, f CollectionFilter) (int64, error)
	Update(ctx context.Context, collectionID string, fields map[string]any) error
	UpdateMany(ctx context.Context, collectionIDs []string, fields map[string]any) error
	Delete(ctx context.Context, collectionID string) error
	Summary(ctx context.Context, f CollectionFilter) (AmountSummary, error)
	AverageQuantity(ctx context.Context, f CollectionFilter) (float64, error)
	// MonthlySeries buckets matching collections by collection month,
	// oldest first, keyed YYYY-MM.
	MonthlySeries(ctx context.Context, f CollectionFilter) ([]MonthBucket, error)
	StatusCounts(ctx context.Context, f CollectionFilter) (map[string]StatusAmount, error)
	QualityCounts(ctx context.Context, f CollectionFilter) (map[string]int64, error)
	PerformanceByFBO(ctx context.Context, f CollectionFilter, limit int) ([]FBOPerformance, error)
	// FindPaidWithHistory returns an FBO's collections that carry payment
	// history entries, newest first.
	FindPaidWithHistory(ctx context.Context, fboID string) ([]model.Collection, error)
}
