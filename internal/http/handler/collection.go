package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"ucoportal/internal/http/middleware"
	"ucoportal/internal/model"
	"ucoportal/internal/repository"
	"ucoportal/internal/service"
)

// CollectionHandler serves the field collector surface: recording pickups,
// running trips, and viewing assigned FBOs.
type CollectionHandler struct {
	collections service.CollectionService
	trips       service.TripService
	fbos        service.FBOService
	bills       service.BillService
	dashboards  service.DashboardService
}

func NewCollectionHandler(
	collections service.CollectionService,
	trips service.TripService,
	fbos service.FBOService,
	bills service.BillService,
	dashboards service.DashboardService,
) *CollectionHandler {
	return &CollectionHandler{
		collections: collections,
		trips:       trips,
		fbos:        fbos,
		bills:       bills,
		dashboards:  dashboards,
	}
}

func (h *CollectionHandler) Dashboard(c *fiber.Ctx) error {
	d, err := h.dashboards.Collector(c.UserContext(), middleware.CurrentUser(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Dashboard stats", d)
}

func (h *CollectionHandler) AssignedFBOs(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	f := repository.FBOFilter{
		AssignedCollector: user.UserID,
		Search:            c.Query("search"),
	}
	fbos, err := h.fbos.ListAssigned(c.UserContext(), f)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Assigned FBOs retrieved", fiber.Map{"fbos": fbos})
}

func formFloat(c *fiber.Ctx, key string) *float64 {
	raw := c.FormValue(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func formInt(c *fiber.Ctx, key string) *int {
	raw := c.FormValue(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

// collectionInputFromForm parses the multipart pickup submission. Images
// arrive as repeated "images" files with parallel "image_types" values.
func collectionInputFromForm(c *fiber.Ctx) (service.CollectionInput, error) {
	quantity, err := strconv.ParseFloat(c.FormValue("quantity_collected"), 64)
	if err != nil {
		return service.CollectionInput{}, fiber.NewError(fiber.StatusBadRequest, "Invalid quantity")
	}
	in := service.CollectionInput{
		FBOID:          c.FormValue("fbo_id"),
		TripID:         c.FormValue("trip_id"),
		Quantity:       quantity,
		Grade:          model.QualityGrade(c.FormValue("quality_grade")),
		Notes:          c.FormValue("quality_notes"),
		ContainerType:  model.ContainerType(c.FormValue("container_type")),
		ContainerCount: formInt(c, "container_count"),
		Latitude:       formFloat(c, "latitude"),
		Longitude:      formFloat(c, "longitude"),
		Amount:         formFloat(c, "amount"),
		Status:         model.CollectionStatus(c.FormValue("status")),
	}
	if ids := c.FormValue("container_ids"); ids != "" {
		for _, id := range strings.Split(ids, ",") {
			if id = strings.TrimSpace(id); id != "" {
				in.ContainerIDs = append(in.ContainerIDs, id)
			}
		}
	}
	if form, err := c.MultipartForm(); err == nil && form != nil {
		types := form.Value["image_types"]
		for i, fh := range form.File["images"] {
			imgType := "collection"
			if i < len(types) && types[i] != "" {
				imgType = types[i]
			}
			up, err := documentUpload(fh, imgType)
			if err != nil {
				return service.CollectionInput{}, fiber.NewError(fiber.StatusBadRequest, "Invalid image file")
			}
			in.Images = append(in.Images, *up)
		}
	}
	if c.FormValue("is_pay_now") == "true" {
		in.PayNow = true
		in.PaymentMethod = model.NormalizePaymentMethod(c.FormValue("payment_method"))
		in.PaymentReference = c.FormValue("payment_reference")
		if paid := formFloat(c, "amount_paid"); paid != nil {
			in.AmountPaid = *paid
		}
		if fh, err := c.FormFile("payment_proof"); err == nil && fh != nil {
			proof, err := documentUpload(fh, "payment_proof")
			if err != nil {
				return service.CollectionInput{}, fiber.NewError(fiber.StatusBadRequest, "Invalid payment proof file")
			}
			in.PaymentProof = proof
		}
	}
	return in, nil
}

func (h *CollectionHandler) Create(c *fiber.Ctx) error {
	in, err := collectionInputFromForm(c)
	if err != nil {
		if fe, okCast := err.(*fiber.Error); okCast {
			return writeError(c, fe.Code, fe.Message)
		}
		return writeError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	col, err := h.collections.Create(c.UserContext(), in, middleware.CurrentUser(c))
	if err != nil {
		return fail(c, err)
	}
	return created(c, "Collection recorded successfully", col)
}

func (h *CollectionHandler) ListMine(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	f := repository.CollectionFilter{
		CollectorID: middleware.CurrentUser(c).UserID,
		FBOID:       c.Query("fbo_id"),
		Status:      model.CollectionStatus(c.Query("status")),
		DateFrom:    dateQuery(c, "start_date"),
		DateTo:      endDateQuery(c, "end_date"),
	}
	res, _, err := h.collections.List(c.UserContext(), f, page, limit)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Collections retrieved", res)
}

func (h *CollectionHandler) RecordPayment(c *fiber.Ctx) error {
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

// PricingSettings exposes the current per-grade rate card.
func (h *CollectionHandler) PricingSettings(c *fiber.Ctx) error {
	rates, err := h.collections.GradeRates(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Pricing settings retrieved", rates)
}

func (h *CollectionHandler) CreateBill(c *fiber.Ctx) error {
	var in model.BillCreate
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	b, err := h.bills.Create(c.UserContext(), in, middleware.CurrentUser(c))
	if err != nil {
		return fail(c, err)
	}
	return created(c, "Bill created successfully", b)
}

func (h *CollectionHandler) ListBills(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	f := repository.BillFilter{
		FBOID:  c.Query("fbo_id"),
		Status: c.Query("status"),
	}
	res, err := h.bills.List(c.UserContext(), f, page, limit)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Bills retrieved", res)
}

func (h *CollectionHandler) RecordBillPayment(c *fiber.Ctx) error {
	in, err := paymentInputFromForm(c)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, err.Error())
	}
	b, err := h.bills.RecordPayment(c.UserContext(), c.Params("billId"), in, middleware.CurrentUser(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Bill payment recorded successfully", b)
}

func (h *CollectionHandler) StartTrip(c *fiber.Ctx) error {
	var in model.TripCreate
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	trip, err := h.trips.Start(c.UserContext(), in, middleware.CurrentUser(c))
	if err != nil {
		return fail(c, err)
	}
	return created(c, "Trip started successfully", trip)
}

func (h *CollectionHandler) EndTrip(c *fiber.Ctx) error {
	var in model.TripEnd
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	trip, err := h.trips.End(c.UserContext(), c.Params("tripId"), in, middleware.CurrentUser(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Trip ended successfully", trip)
}

func (h *CollectionHandler) ActiveTrip(c *fiber.Ctx) error {
	trip, err := h.trips.Active(c.UserContext(), middleware.CurrentUser(c).UserID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Active trip", trip)
}

func (h *CollectionHandler) ListMyTrips(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	res, err := h.trips.ListMine(c.UserContext(), middleware.CurrentUser(c).UserID, page, limit)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Trips retrieved", res)
}

func (h *CollectionHandler) GetTrip(c *fiber.Ctx) error {
	trip, err := h.trips.Get(c.UserContext(), c.Params("tripId"), middleware.CurrentUser(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Trip retrieved", trip)
}
