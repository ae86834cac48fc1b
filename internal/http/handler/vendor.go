package handler

import (
	"github.com/gofiber/fiber/v2"

	"ucoportal/internal/http/middleware"
	"ucoportal/internal/model"
	"ucoportal/internal/service"
)

// VendorHandler serves the FBO self-service surface.
type VendorHandler struct {
	vendors service.VendorService
}

func NewVendorHandler(vendors service.VendorService) *VendorHandler {
	return &VendorHandler{vendors: vendors}
}

func (h *VendorHandler) Dashboard(c *fiber.Ctx) error {
	d, err := h.vendors.Dashboard(c.UserContext(), middleware.CurrentUser(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Dashboard stats", d)
}

func (h *VendorHandler) Collections(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	res, err := h.vendors.Collections(
		c.UserContext(),
		middleware.CurrentUser(c),
		model.CollectionStatus(c.Query("status")),
		page, limit,
	)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Collections retrieved", res)
}

func (h *VendorHandler) Bills(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	res, err := h.vendors.Bills(c.UserContext(), middleware.CurrentUser(c), page, limit)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Bills retrieved", res)
}

func (h *VendorHandler) Payments(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	res, err := h.vendors.Payments(
		c.UserContext(),
		middleware.CurrentUser(c),
		dateQuery(c, "start_date"),
		endDateQuery(c, "end_date"),
		page, limit,
	)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Payments retrieved", res)
}

func (h *VendorHandler) Profile(c *fiber.Ctx) error {
	fbo, err := h.vendors.Profile(c.UserContext(), middleware.CurrentUser(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Profile retrieved", fbo)
}

func (h *VendorHandler) UpdateProfile(c *fiber.Ctx) error {
	var in service.VendorProfileUpdate
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	fbo, err := h.vendors.UpdateProfile(c.UserContext(), middleware.CurrentUser(c), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Profile updated successfully", fbo)
}

func (h *VendorHandler) RequestCollection(c *fiber.Ctx) error {
	var in service.CollectionRequestInput
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req, err := h.vendors.RequestCollection(c.UserContext(), middleware.CurrentUser(c), in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, "Collection request submitted successfully", req)
}

func (h *VendorHandler) CreateSupportMessage(c *fiber.Ctx) error {
	var in model.SupportMessageCreate
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	msg, err := h.vendors.CreateSupportMessage(c.UserContext(), middleware.CurrentUser(c), in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, "Support message sent successfully", msg)
}

func (h *VendorHandler) SupportMessages(c *fiber.Ctx) error {
	msgs, err := h.vendors.SupportMessages(c.UserContext(), middleware.CurrentUser(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Support messages retrieved", fiber.Map{"messages": msgs})
}
