package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"ucoportal/internal/http/middleware"
	"ucoportal/internal/model"
	"ucoportal/internal/service"
	"ucoportal/internal/storage"
)

// CommonHandler serves endpoints shared across roles: notifications,
// pricing, ad-hoc uploads, and user lookups.
type CommonHandler struct {
	notifications service.NotificationService
	settings      service.SettingService
	users         service.UserService
	store         storage.Storage
}

func NewCommonHandler(
	notifications service.NotificationService,
	settings service.SettingService,
	users service.UserService,
	store storage.Storage,
) *CommonHandler {
	return &CommonHandler{
		notifications: notifications,
		settings:      settings,
		users:         users,
		store:         store,
	}
}

func (h *CommonHandler) Notifications(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	res, err := h.notifications.List(
		c.UserContext(),
		middleware.CurrentUser(c).UserID,
		c.QueryBool("unreadOnly", false),
		page, limit,
	)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Notifications retrieved", res)
}

func (h *CommonHandler) MarkNotificationRead(c *fiber.Ctx) error {
	updated, err := h.notifications.MarkRead(
		c.UserContext(),
		middleware.CurrentUser(c).UserID,
		c.Params("notificationId"),
	)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Notification marked as read", fiber.Map{"updated": updated})
}

func (h *CommonHandler) MarkAllNotificationsRead(c *fiber.Ctx) error {
	updated, err := h.notifications.MarkRead(c.UserContext(), middleware.CurrentUser(c).UserID, "")
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "All notifications marked as read", fiber.Map{"updated": updated})
}

func (h *CommonHandler) Pricing(c *fiber.Ctx) error {
	pricing, err := h.settings.ActivePricing(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Pricing retrieved", fiber.Map{"pricing": pricing})
}

func (h *CommonHandler) ContactSettings(c *fiber.Ctx) error {
	contact, err := h.settings.Contact(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Contact info retrieved", contact)
}

// Upload stores a single file and returns a week-long presigned URL
// along with the stored key and size.
func (h *CommonHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "File required")
	}
	kind := c.FormValue("type")
	if kind == "" {
		kind = "uploads"
	}
	up, err := documentUpload(fh, kind)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "Invalid file")
	}
	ctx := c.UserContext()
	key := storage.ObjectKey(kind, middleware.CurrentUser(c).UserID, up.Filename)
	info, err := h.store.Put(ctx, key, up.Content, storage.PutObjectOptions{
		Size:        up.Size,
		ContentType: up.ContentType,
	})
	if err != nil {
		return fail(c, err)
	}
	url, err := h.store.PresignGet(ctx, info.Key, 7*24*time.Hour)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Image uploaded successfully", fiber.Map{
		"url":      url,
		"filename": info.Key,
		"size":     info.Size,
	})
}

func (h *CommonHandler) UsersByRole(c *fiber.Ctx) error {
	users, err := h.users.ListByRole(c.UserContext(), model.Role(c.Query("role")))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Users retrieved", users)
}
