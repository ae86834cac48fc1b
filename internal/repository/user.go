package repository

import (
	"context"

	"ucoportal/internal/model"
)

// UserFilter narrows user listings.
type UserFilter struct {
	Role   model.Role
	Status model.Status
	Search string
}

type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	FindByUserID(ctx context.Context, userID string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUserIDs(ctx context.Context, userIDs []string) ([]model.User, error)
	FindByRole(ctx context.Context, role model.Role) ([]model.User, error)
	FindFirstByRole(ctx context.Context, role model.Role) (*model.User, error)
	List(ctx context.Context, f UserFilter, page PageQuery) (PageResult[model.User], error)
	Update(ctx context.Context, userID string, fields map[string]any) error
	Delete(ctx context.Context, userID string) error
	// EmployeeIDs returns all employeeId values starting with prefix,
	// used to allocate the next sequential id.
	EmployeeIDs(ctx context.Context, prefix string) ([]string, error)
}
