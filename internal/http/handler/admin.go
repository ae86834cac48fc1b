package handler

import (
	"github.com/gofiber/fiber/v2"

	"ucoportal/internal/http/middleware"
	"ucoportal/internal/model"
	"ucoportal/internal/repository"
	"ucoportal/internal/service"
)

// AdminHandler serves the back-office surface: user administration, FBO
// oversight, collection review, payouts, and system settings.
type AdminHandler struct {
	users       service.UserService
	fbos        service.FBOService
	collections service.CollectionService
	trips       service.TripService
	payments    service.PaymentService
	settings    service.SettingService
	dashboards  service.DashboardService
}

func NewAdminHandler(
	users service.UserService,
	fbos service.FBOService,
	collections service.CollectionService,
	trips service.TripService,
	payments service.PaymentService,
	settings service.SettingService,
	dashboards service.DashboardService,
) *AdminHandler {
	return &AdminHandler{
		users:       users,
		fbos:        fbos,
		collections: collections,
		trips:       trips,
		payments:    payments,
		settings:    settings,
		dashboards:  dashboards,
	}
}

func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	d, err := h.dashboards.Admin(c.UserContext(), dateQuery(c, "start_date"), endDateQuery(c, "end_date"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Dashboard stats", d)
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	f := repository.UserFilter{
		Role:   model.Role(c.Query("role")),
		Status: model.Status(c.Query("status")),
		Search: c.Query("search"),
	}
	res, err := h.users.List(c.UserContext(), f, page, limit)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Users retrieved", res)
}

func (h *AdminHandler) CreateUser(c *fiber.Ctx) error {
	var in model.UserCreate
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	user, err := h.users.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, "User created successfully", user)
}

func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	fields := map[string]any{}
	if err := c.BodyParser(&fields); err != nil {
		return writeError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.users.Update(c.UserContext(), c.Params("userId"), fields); err != nil {
		return fail(c, err)
	}
	return ok(c, "User updated successfully", nil)
}

func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.users.Delete(c.UserContext(), c.Params("userId")); err != nil {
		return fail(c, err)
	}
	return ok(c, "User deleted successfully", nil)
}

func fboListFilter(c *fiber.Ctx) repository.FBOFilter {
	return repository.FBOFilter{
		Status:            model.Status(c.Query("status")),
		City:              c.Query("city"),
		BusinessType:      model.BusinessType(c.Query("business_type")),
		AssignedCollector: c.Query("assigned_collector"),
		Search:            c.Query("search"),
		CreatedFrom:       dateQuery(c, "start_date"),
		CreatedTo:         endDateQuery(c, "end_date"),
		SortBy:            c.Query("sort_by"),
		SortAsc:           c.Query("sort_order") == "asc",
	}
}

func (h *AdminHandler) ListFBOs(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	res, err := h.fbos.List(c.UserContext(), fboListFilter(c), page, limit)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "FBOs retrieved", res)
}

func (h *AdminHandler) GetFBO(c *fiber.Ctx) error {
	fbo, err := h.fbos.Get(c.UserContext(), c.Params("fboId"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "FBO retrieved", fbo)
}

func (h *AdminHandler) UpdateFBOStatus(c *fiber.Ctx) error {
	var in struct {
		Status model.Status `json:"status"`
	}
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.fbos.UpdateStatus(c.UserContext(), c.Params("fboId"), in.Status); err != nil {
		return fail(c, err)
	}
	return ok(c, "FBO status updated successfully", nil)
}

func (h *AdminHandler) AssignCollectors(c *fiber.Ctx) error {
	var in struct {
		CollectorIDs []string `json:"collectorIds"`
	}
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.fbos.AssignCollectors(c.UserContext(), c.Params("fboId"), in.CollectorIDs); err != nil {
		return fail(c, err)
	}
	return ok(c, "Collectors assigned successfully", nil)
}

func (h *AdminHandler) DeleteFBO(c *fiber.Ctx) error {
	if err := h.fbos.Delete(c.UserContext(), c.Params("fboId")); err != nil {
		return fail(c, err)
	}
	return ok(c, "FBO deleted successfully", nil)
}

func (h *AdminHandler) ListCollections(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	f := repository.CollectionFilter{
		FBOID:         c.Query("fbo_id"),
		CollectorID:   c.Query("collector_id"),
		Status:        model.CollectionStatus(c.Query("status")),
		PaymentStatus: model.PaymentStatus(c.Query("payment_status")),
		QualityGrade:  model.QualityGrade(c.Query("quality_grade")),
		DateFrom:      dateQuery(c, "start_date"),
		DateTo:        endDateQuery(c, "end_date"),
	}
	res, summary, err := h.collections.List(c.UserContext(), f, page, limit)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Collections retrieved", fiber.Map{
		"collections": res.Data,
		"pagination":  res.Pagination,
		"summary":     summary,
	})
}

func (h *AdminHandler) GetCollection(c *fiber.Ctx) error {
	col, err := h.collections.Get(c.UserContext(), c.Params("collectionId"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Collection retrieved", col)
}

func (h *AdminHandler) ReviewCollection(c *fiber.Ctx) error {
	var in model.CollectionReview
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	res, err := h.collections.Review(c.UserContext(), c.Params("collectionId"), in, middleware.CurrentUser(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Collection "+res.Status+" successfully", res)
}

func (h *AdminHandler) UpdateCollection(c *fiber.Ctx) error {
	fields := map[string]any{}
	if err := c.BodyParser(&fields); err != nil {
		return writeError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	updated, err := h.collections.UpdateFields(c.UserContext(), c.Params("collectionId"), fields)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Collection updated successfully", updated)
}

func (h *AdminHandler) DeleteCollection(c *fiber.Ctx) error {
	if err := h.collections.Delete(c.UserContext(), c.Params("collectionId")); err != nil {
		return fail(c, err)
	}
	return ok(c, "Collection deleted successfully", nil)
}

func (h *AdminHandler) RecordCollectionPayment(c *fiber.Ctx) error {
	in, err := paymentInputFromForm(c)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, err.Error())
	}
	details, status, err := h.collections.RecordPayment(c.UserContext(), c.Params("collectionId"), in, middleware.CurrentUser(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Payment recorded successfully", fiber.Map{
		"paymentDetails": details,
		"status":         status,
	})
}

func (h *AdminHandler) ListTrips(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	f := repository.TripFilter{
		CollectorID: c.Query("collector_id"),
		Status:      model.TripStatus(c.Query("status")),
		DateFrom:    dateQuery(c, "start_date"),
		DateTo:      endDateQuery(c, "end_date"),
	}
	res, err := h.trips.List(c.UserContext(), f, page, limit)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Trips retrieved", res)
}

func (h *AdminHandler) ProcessPayment(c *fiber.Ctx) error {
	var in model.PaymentCreate
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	p, err := h.payments.Process(c.UserContext(), in, middleware.CurrentUser(c))
	if err != nil {
		return fail(c, err)
	}
	return created(c, "Payment processed successfully", p)
}

func (h *AdminHandler) ListPayments(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	f := repository.PaymentFilter{
		FBOID:  c.Query("fbo_id"),
		Status: model.PaymentStatus(c.Query("status")),
	}
	res, err := h.payments.List(c.UserContext(), f, page, limit)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Payments retrieved", res)
}

func (h *AdminHandler) UpdatePayment(c *fiber.Ctx) error {
	var in model.PaymentUpdate
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	p, err := h.payments.UpdateStatus(c.UserContext(), c.Params("paymentId"), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Payment updated successfully", p)
}

func (h *AdminHandler) GetSettings(c *fiber.Ctx) error {
	values, err := h.settings.All(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Settings retrieved", values)
}

func (h *AdminHandler) UpdateSettings(c *fiber.Ctx) error {
	var in struct {
		Settings []model.SettingUpsert `json:"settings"`
	}
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.settings.Upsert(c.UserContext(), in.Settings, middleware.CurrentUser(c)); err != nil {
		return fail(c, err)
	}
	return ok(c, "Settings updated successfully", nil)
}

func (h *AdminHandler) CollectorPerformance(c *fiber.Ctx) error {
	perf, err := h.dashboards.CollectorPerformance(
		c.UserContext(),
		c.Query("collector_id"),
		dateQuery(c, "start_date"),
		endDateQuery(c, "end_date"),
	)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Collector performance", perf)
}
