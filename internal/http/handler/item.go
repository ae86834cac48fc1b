package handler

import (
	"github.com/gofiber/fiber/v2"

	"ucoportal/internal/http/middleware"
	"ucoportal/internal/model"
	"ucoportal/internal/repository"
	"ucoportal/internal/service"
)

type ItemHandler struct {
	items service.ItemService
}

func NewItemHandler(items service.ItemService) *ItemHandler {
	return &ItemHandler{items: items}
}

func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in model.ItemCreate
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	item, err := h.items.Create(c.UserContext(), in, middleware.CurrentUser(c))
	if err != nil {
		return fail(c, err)
	}
	return created(c, "Item created successfully", item)
}

func (h *ItemHandler) List(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	f := repository.ItemFilter{
		Search:    c.Query("search"),
		CreatedBy: c.Query("created_by"),
		DateFrom:  dateQuery(c, "start_date"),
		DateTo:    endDateQuery(c, "end_date"),
	}
	res, err := h.items.List(c.UserContext(), f, page, limit)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Items retrieved", res)
}
