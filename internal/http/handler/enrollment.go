package handler

import (
	"github.com/gofiber/fiber/v2"

	"ucoportal/internal/http/middleware"
	"ucoportal/internal/model"
	"ucoportal/internal/service"
)

// EnrollmentHandler serves the enrollment team surface: onboarding new
// FBOs and tracking the ones they enrolled.
type EnrollmentHandler struct {
	fbos       service.FBOService
	dashboards service.DashboardService
}

func NewEnrollmentHandler(fbos service.FBOService, dashboards service.DashboardService) *EnrollmentHandler {
	return &EnrollmentHandler{fbos: fbos, dashboards: dashboards}
}

func (h *EnrollmentHandler) Dashboard(c *fiber.Ctx) error {
	d, err := h.dashboards.Enrollment(c.UserContext(), middleware.CurrentUser(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Dashboard stats", d)
}

func (h *EnrollmentHandler) EnrollFBO(c *fiber.Ctx) error {
	var in model.FBOCreate
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	fbo, err := h.fbos.Enroll(c.UserContext(), in, middleware.CurrentUser(c))
	if err != nil {
		return fail(c, err)
	}
	return created(c, "FBO enrolled successfully", fbo)
}

// ListFBOs returns the caller's own enrollments. Admins see everything.
func (h *EnrollmentHandler) ListFBOs(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	f := fboListFilter(c)
	if user := middleware.CurrentUser(c); user != nil && user.Role != model.RoleAdmin {
		f.EnrolledBy = user.UserID
	}
	res, err := h.fbos.List(c.UserContext(), f, page, limit)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "FBOs retrieved", res)
}

func (h *EnrollmentHandler) GetFBO(c *fiber.Ctx) error {
	fbo, err := h.fbos.Get(c.UserContext(), c.Params("fboId"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "FBO retrieved", fbo)
}

func (h *EnrollmentHandler) UpdateFBO(c *fiber.Ctx) error {
	fields := map[string]any{}
	if err := c.BodyParser(&fields); err != nil {
		return writeError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.fbos.Update(c.UserContext(), c.Params("fboId"), fields, middleware.CurrentUser(c)); err != nil {
		return fail(c, err)
	}
	return ok(c, "FBO updated successfully", nil)
}

// UploadDocuments accepts multipart "documents" files with parallel
// "document_types" values.
func (h *EnrollmentHandler) UploadDocuments(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "Invalid multipart form")
	}
	files := form.File["documents"]
	if len(files) == 0 {
		return writeError(c, fiber.StatusBadRequest, "No documents provided")
	}
	types := form.Value["document_types"]
	uploads := make([]service.DocumentUpload, 0, len(files))
	for i, fh := range files {
		docType := "other"
		if i < len(types) && types[i] != "" {
			docType = types[i]
		}
		up, err := documentUpload(fh, docType)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid document file")
		}
		uploads = append(uploads, *up)
	}
	docs, err := h.fbos.UploadDocuments(c.UserContext(), c.Params("fboId"), uploads)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Documents uploaded successfully", fiber.Map{"documents": docs})
}
