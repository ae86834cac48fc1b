package repository

import (
	"context"
	"time"

	"ucoportal/internal/model"
)

// TripFilter narrows trip listings.
type TripFilter struct {
	CollectorID string
	Status      model.TripStatus
	DateFrom    *time.Time
	DateTo      *time.Time
}

type TripRepository interface {
	Create(ctx context.Context, t *model.Trip) error
	FindByID(ctx context.Context, tripID string) (*model.Trip, error)
	// FindActive returns a collector's planned or in-progress trip, if any.
	FindActive(ctx context.Context, collectorID string) (*model.Trip, error)
	List(ctx context.Context, f TripFilter, page PageQuery) (PageResult[model.Trip], error)
	Update(ctx context.Context, tripID string, fields map[string]any) error
	AddCompleted(ctx context.Context, tripID string, c model.TripCompletedCollection) error
	RemoveCompleted(ctx context.Context, tripID, collectionID string, quantity, amount float64) error
}
