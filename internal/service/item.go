package service

import (
	"context"
	"time"

	"ucoportal/internal/model"
	"ucoportal/internal/repository"
)

// ItemService manages the item master catalogue.
type ItemService interface {
	Create(ctx context.Context, in model.ItemCreate, by *model.User) (*model.Item, error)
	List(ctx context.Context, f repository.ItemFilter, page, limit int) (*model.Paginated[model.Item], error)
}

type itemService struct {
	items repository.ItemRepository
}

func NewItemService(items repository.ItemRepository) ItemService {
	return &itemService{items: items}
}

func (s *itemService) Create(ctx context.Context, in model.ItemCreate, by *model.User) (*model.Item, error) {
	if in.Name == "" {
		return nil, BadRequest("Item name required")
	}
	it := &model.Item{
		ItemID:        newItemID(),
		Name:          in.Name,
		Description:   in.Description,
		CreatedBy:     by.UserID,
		CreatedByName: by.Name,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.items.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *itemService) List(ctx context.Context, f repository.ItemFilter, page, limit int) (*model.Paginated[model.Item], error) {
	res, err := s.items.List(ctx, f, pageQuery(page, limit))
	if err != nil {
		return nil, err
	}
	return &model.Paginated[model.Item]{
		Data:       res.Items,
		Pagination: model.NewPagination(page, limit, res.Total),
	}, nil
}
