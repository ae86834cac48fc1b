package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"ucoportal/internal/http/middleware"
	"ucoportal/internal/model"
)

// Handlers groups the per-surface handlers wired in main.
type Handlers struct {
	Auth       *AuthHandler
	Admin      *AdminHandler
	Enrollment *EnrollmentHandler
	Collection *CollectionHandler
	Vendor     *VendorHandler
	Common     *CommonHandler
	Items      *ItemHandler
}

// RegisterRoutes attaches all HTTP routes. authn is the bearer-token
// middleware; role checks sit on each group.
func RegisterRoutes(app *fiber.App, db *mongo.Database, h Handlers, authn fiber.Handler) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Health endpoint: checks database connectivity only
	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.Client().Ping(ctx, readpref.Primary()); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "Dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	})

	// Simple liveness probe
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	// Diagnostic endpoint reporting which collections exist
	app.Get("/db-check", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()
		names, err := db.ListCollectionNames(ctx, bson.D{})
		if err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "Database unreachable")
		}
		return c.JSON(fiber.Map{
			"database":    db.Name(),
			"collections": names,
		})
	})

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.Refresh)
	authGroup.Post("/logout", authn, h.Auth.Logout)
	authGroup.Post("/change-password", authn, h.Auth.ChangePassword)
	authGroup.Get("/me", authn, h.Auth.Me)
	authGroup.Patch("/profile", authn, h.Auth.UpdateProfile)

	admin := api.Group("/admin", authn, middleware.RequireRole())
	admin.Get("/dashboard/stats", h.Admin.Dashboard)
	admin.Get("/fbos", h.Admin.ListFBOs)
	admin.Get("/fbos/:fboId", h.Admin.GetFBO)
	admin.Delete("/fbos/:fboId", h.Admin.DeleteFBO)
	admin.Patch("/fbos/:fboId/status", h.Admin.UpdateFBOStatus)
	admin.Patch("/fbos/:fboId/assign-collectors", h.Admin.AssignCollectors)
	admin.Get("/trips", h.Admin.ListTrips)
	admin.Get("/collections", h.Admin.ListCollections)
	admin.Get("/collections/:collectionId", h.Admin.GetCollection)
	admin.Patch("/collections/:collectionId/review", h.Admin.ReviewCollection)
	admin.Patch("/collections/:collectionId/payment", h.Admin.RecordCollectionPayment)
	admin.Put("/collections/:collectionId", h.Admin.UpdateCollection)
	admin.Delete("/collections/:collectionId", h.Admin.DeleteCollection)
	admin.Get("/performance/collectors", h.Admin.CollectorPerformance)
	admin.Get("/payments", h.Admin.ListPayments)
	admin.Post("/payments/process", h.Admin.ProcessPayment)
	admin.Patch("/payments/:paymentId/status", h.Admin.UpdatePayment)
	admin.Get("/users", h.Admin.ListUsers)
	admin.Post("/users", h.Admin.CreateUser)
	admin.Patch("/users/:userId", h.Admin.UpdateUser)
	admin.Delete("/users/:userId", h.Admin.DeleteUser)
	admin.Get("/settings", h.Admin.GetSettings)
	admin.Put("/settings", h.Admin.UpdateSettings)

	enrollment := api.Group("/enrollment", authn, middleware.RequireRole(model.RoleEnrollmentTeam))
	enrollment.Get("/dashboard/stats", h.Enrollment.Dashboard)
	enrollment.Post("/fbos", h.Enrollment.EnrollFBO)
	enrollment.Post("/fbos/:fboId/documents", h.Enrollment.UploadDocuments)
	enrollment.Get("/list", h.Enrollment.ListFBOs)
	enrollment.Get("/fbos/:fboId", h.Enrollment.GetFBO)
	enrollment.Put("/fbos/:fboId", h.Enrollment.UpdateFBO)

	collection := api.Group("/collection", authn, middleware.RequireRole(model.RoleCollectionTeam))
	collection.Get("/dashboard/stats", h.Collection.Dashboard)
	collection.Get("/pricing-settings", h.Collection.PricingSettings)
	collection.Get("/assigned-fbos", h.Collection.AssignedFBOs)
	collection.Post("/collections", h.Collection.Create)
	collection.Patch("/collections/:collectionId/payment", h.Collection.RecordPayment)
	collection.Get("/my-collections", h.Collection.ListMine)
	collection.Post("/bills", h.Collection.CreateBill)
	collection.Get("/bills", h.Collection.ListBills)
	collection.Patch("/bills/:billId/payment", h.Collection.RecordBillPayment)
	collection.Post("/trips/start", h.Collection.StartTrip)
	collection.Get("/trips/active", h.Collection.ActiveTrip)
	collection.Patch("/trips/:tripId/end", h.Collection.EndTrip)
	collection.Get("/trips/:tripId", h.Collection.GetTrip)
	collection.Get("/my-trips", h.Collection.ListMyTrips)
	collection.Get("/notifications", h.Common.Notifications)

	vendor := api.Group("/vendor", authn, middleware.RequireRole(model.RoleFBO))
	vendor.Get("/dashboard/stats", h.Vendor.Dashboard)
	vendor.Get("/bills", h.Vendor.Bills)
	vendor.Get("/collections", h.Vendor.Collections)
	vendor.Get("/payments", h.Vendor.Payments)
	vendor.Get("/profile", h.Vendor.Profile)
	vendor.Put("/profile", h.Vendor.UpdateProfile)
	vendor.Post("/request-collection", h.Vendor.RequestCollection)
	vendor.Post("/support", h.Vendor.CreateSupportMessage)
	vendor.Get("/support", h.Vendor.SupportMessages)

	common := api.Group("/common", authn)
	common.Get("/notifications", h.Common.Notifications)
	common.Patch("/notifications/read-all", h.Common.MarkAllNotificationsRead)
	common.Patch("/notifications/:notificationId/read", h.Common.MarkNotificationRead)
	common.Get("/pricing", h.Common.Pricing)
	common.Post("/upload/image", h.Common.Upload)
	common.Get("/users/by-role", h.Common.UsersByRole)
	common.Get("/settings/contact", h.Common.ContactSettings)

	items := api.Group("/item-master", authn)
	items.Post("/", h.Items.Create)
	items.Get("/", h.Items.List)
}
