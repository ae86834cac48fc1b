package repository

import (
	"context"
	"time"

	"ucoportal/internal/model"
)

// FBOFilter narrows FBO listings.
type FBOFilter struct {
	Status            model.Status
	City              string
	BusinessType      model.BusinessType
	AssignedCollector string
	Search            string
	EnrolledBy        string
	EnrollmentStatus  model.Status
	EnrolledFrom      *time.Time
	EnrolledTo        *time.Time
	CreatedFrom       *time.Time
	CreatedTo         *time.Time
	// SortBy is a document field name; createdAt descending when empty.
	SortBy  string
	SortAsc bool
}

type FBORepository interface {
	Create(ctx context.Context, f *model.FBO) error
	FindByID(ctx context.Context, fboID string) (*model.FBO, error)
	// FindByContactEmail resolves the FBO record a vendor account maps to.
	FindByContactEmail(ctx context.Context, email string) (*model.FBO, error)
	FindFirst(ctx context.Context, status model.Status) (*model.FBO, error)
	// ActiveNameExists reports whether a non-inactive FBO with the business
	// name already exists, excluding fboID when non-empty.
	ActiveNameExists(ctx context.Context, businessName, excludeFBOID string) (bool, error)
	List(ctx context.Context, f FBOFilter, page PageQuery) (PageResult[model.FBO], error)
	Count(ctx context.Context, f FBOFilter) (int64, error)
	Update(ctx context.Context, fboID string, fields map[string]any) error
	Delete(ctx context.Context, fboID string) error
	PushDocument(ctx context.Context, fboID string, doc model.FBODocument) error
	// RecordCollection bumps the running totals after an approved pickup.
	RecordCollection(ctx context.Context, fboID string, quantity, amount float64, at time.Time) error
	// RollbackCollection reverses RecordCollection when a collection is deleted.
	RollbackCollection(ctx context.Context, fboID string, quantity, amount float64) error
	CountAssigned(ctx context.Context, collectorID string) (int64, error)
	StatusCounts(ctx context.Context, f FBOFilter) (map[string]int64, error)
	// MonthlyEnrollments counts an enroller's FBOs per enrollment month.
	// An empty enrolledBy covers all enrollers.
	MonthlyEnrollments(ctx context.Context, enrolledBy string, since time.Time) (map[string]int64, error)
}
