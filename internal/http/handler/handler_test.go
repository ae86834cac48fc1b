package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ucoportal/internal/http/middleware"
	"ucoportal/internal/model"
	"ucoportal/internal/repository"
	"ucoportal/internal/service"
	serviceMocks "ucoportal/internal/service/mocks"
)

type responseBody struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func decodeBody(t *testing.T, resp *http.Response) responseBody {
	t.Helper()
	var body responseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// asUser injects an authenticated user, standing in for the bearer-token
// middleware.
func asUser(user *model.User) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(middleware.UserLocalKey, user)
		return c.Next()
	}
}

func adminUser() *model.User {
	return &model.User{UserID: "USR1", Name: "Admin", Role: model.RoleAdmin, Status: model.StatusActive}
}

func collectorUser() *model.User {
	return &model.User{UserID: "USR2", Name: "Collector", Role: model.RoleCollectionTeam, Status: model.StatusActive}
}

func jsonRequest(method, target string, payload any) *http.Request {
	var body *bytes.Buffer
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewBuffer(raw)
	} else {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	return req
}

func TestAuthHandlerLogin(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuthService)
	app := fiber.New()
	app.Post("/api/auth/login", NewAuthHandler(mockSvc).Login)

	t.Run("success", func(t *testing.T) {
		result := &model.LoginResult{
			User:  &model.User{UserID: "USR1", Email: "admin@example.com"},
			Token: "access",
		}
		mockSvc.On("Login", mock.Anything, model.UserLogin{Email: "admin@example.com", Password: "secret"}).
			Return(result, nil).Once()

		req := jsonRequest(http.MethodPost, "/api/auth/login", fiber.Map{
			"email":    "admin@example.com",
			"password": "secret",
		})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.True(t, body.Success)
		assert.Equal(t, "Login successful", body.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing credentials", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/api/auth/login", fiber.Map{"email": "admin@example.com"})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "EMAIL_AND_PASSWORD_REQUIRED", body.Error)
	})

	t.Run("bad credentials", func(t *testing.T) {
		mockSvc.On("Login", mock.Anything, mock.Anything).
			Return(nil, service.Unauthorized("Invalid email or password")).Once()

		req := jsonRequest(http.MethodPost, "/api/auth/login", fiber.Map{
			"email":    "admin@example.com",
			"password": "wrong",
		})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "INVALID_EMAIL_OR_PASSWORD", body.Error)
		mockSvc.AssertExpectations(t)
	})
}

func TestAuthHandlerRefresh(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuthService)
	app := fiber.New()
	app.Post("/api/auth/refresh", NewAuthHandler(mockSvc).Refresh)

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Refresh", mock.Anything, "refresh-token").
			Return(&service.RefreshResult{Token: "new-access", ExpiresIn: 86400}, nil).Once()

		form := "refresh_token_str=refresh-token"
		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", strings.NewReader(form))
		req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "REFRESH_TOKEN_REQUIRED", body.Error)
	})
}

func TestAdminReviewCollection(t *testing.T) {
	mockSvc := new(serviceMocks.MockCollectionService)
	h := NewAdminHandler(nil, nil, mockSvc, nil, nil, nil, nil)
	app := fiber.New()
	app.Patch("/api/admin/collections/:collectionId/review", asUser(adminUser()), h.ReviewCollection)

	t.Run("approved", func(t *testing.T) {
		amount := 450.0
		mockSvc.On("Review", mock.Anything, "COL1",
			model.CollectionReview{Action: "approve"}, mock.Anything).
			Return(&service.ReviewResult{CollectionID: "COL1", Status: "approved", TotalAmount: &amount}, nil).Once()

		req := jsonRequest(http.MethodPatch, "/api/admin/collections/COL1/review", fiber.Map{"action": "approve"})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Collection approved successfully", body.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not pending", func(t *testing.T) {
		mockSvc.On("Review", mock.Anything, "COL2", mock.Anything, mock.Anything).
			Return(nil, service.BadRequest("Collection not pending review")).Once()

		req := jsonRequest(http.MethodPatch, "/api/admin/collections/COL2/review", fiber.Map{"action": "approve"})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "COLLECTION_NOT_PENDING_REVIEW", body.Error)
		mockSvc.AssertExpectations(t)
	})
}

func TestAdminListCollections(t *testing.T) {
	mockSvc := new(serviceMocks.MockCollectionService)
	h := NewAdminHandler(nil, nil, mockSvc, nil, nil, nil, nil)
	app := fiber.New()
	app.Get("/api/admin/collections", asUser(adminUser()), h.ListCollections)

	page := &model.Paginated[model.Collection]{
		Data:       []model.Collection{{CollectionID: "COL1"}},
		Pagination: model.NewPagination(1, 20, 1),
	}
	summary := &service.CollectionListSummary{TotalQuantity: 10, TotalAmount: 450, PendingApprovals: 1}
	mockSvc.On("List", mock.Anything, mock.Anything, 1, 20).Return(page, summary, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/collections", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)

	var data struct {
		Collections []model.Collection            `json:"collections"`
		Summary     service.CollectionListSummary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Len(t, data.Collections, 1)
	assert.Equal(t, int64(1), data.Summary.PendingApprovals)
	mockSvc.AssertExpectations(t)
}

func TestAdminProcessPayment(t *testing.T) {
	mockSvc := new(serviceMocks.MockPaymentService)
	h := NewAdminHandler(nil, nil, nil, nil, mockSvc, nil, nil)
	app := fiber.New()
	app.Post("/api/admin/payments/process", asUser(adminUser()), h.ProcessPayment)

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Process", mock.Anything, mock.MatchedBy(func(in model.PaymentCreate) bool {
			return in.FBOID == "FBO1" && len(in.CollectionIDs) == 2
		}), mock.Anything).
			Return(&model.Payment{PaymentID: "PAY1", Status: model.PaymentProcessing}, nil).Once()

		req := jsonRequest(http.MethodPost, "/api/admin/payments/process", fiber.Map{
			"fboId":         "FBO1",
			"collectionIds": []string{"COL1", "COL2"},
			"paymentMethod": "bank_transfer",
		})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("already paid", func(t *testing.T) {
		mockSvc.On("Process", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, service.BadRequest("Collection COL1 is already paid")).Once()

		req := jsonRequest(http.MethodPost, "/api/admin/payments/process", fiber.Map{
			"fboId":         "FBO1",
			"collectionIds": []string{"COL1"},
		})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestCollectionCreateMultipart(t *testing.T) {
	mockSvc := new(serviceMocks.MockCollectionService)
	h := NewCollectionHandler(mockSvc, nil, nil, nil, nil)
	app := fiber.New()
	app.Post("/api/collection/collections", asUser(collectorUser()), h.Create)

	t.Run("success with image and pay now", func(t *testing.T) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		writer.WriteField("fbo_id", "FBO1")
		writer.WriteField("quantity_collected", "12.5")
		writer.WriteField("quality_grade", "A")
		writer.WriteField("container_ids", "D1, D2")
		writer.WriteField("is_pay_now", "true")
		writer.WriteField("payment_method", "Cash")
		writer.WriteField("amount_paid", "500")
		part, _ := writer.CreateFormFile("images", "pickup.jpg")
		part.Write([]byte("jpeg-bytes"))
		writer.Close()

		mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(in service.CollectionInput) bool {
			return in.FBOID == "FBO1" &&
				in.Quantity == 12.5 &&
				in.Grade == model.GradeA &&
				len(in.ContainerIDs) == 2 &&
				in.PayNow &&
				in.PaymentMethod == model.MethodCash &&
				in.AmountPaid == 500 &&
				len(in.Images) == 1
		}), mock.Anything).
			Return(&model.Collection{CollectionID: "COL1"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/collection/collections", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid quantity", func(t *testing.T) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		writer.WriteField("fbo_id", "FBO1")
		writer.WriteField("quantity_collected", "abc")
		writer.Close()

		req := httptest.NewRequest(http.MethodPost, "/api/collection/collections", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body2 := decodeBody(t, resp)
		assert.Equal(t, "INVALID_QUANTITY", body2.Error)
	})
}

func TestCollectionTripRoutes(t *testing.T) {
	mockSvc := new(serviceMocks.MockTripService)
	h := NewCollectionHandler(nil, mockSvc, nil, nil, nil)
	user := collectorUser()
	app := fiber.New()
	app.Post("/trips/start", asUser(user), h.StartTrip)
	app.Get("/trips/active", asUser(user), h.ActiveTrip)

	t.Run("start", func(t *testing.T) {
		mockSvc.On("Start", mock.Anything, mock.MatchedBy(func(in model.TripCreate) bool {
			return in.VehicleNumber == "KA01AB1234"
		}), user).
			Return(&model.Trip{TripID: "TRIP1", Status: model.TripInProgress}, nil).Once()

		req := jsonRequest(http.MethodPost, "/trips/start", fiber.Map{
			"vehicleNumber": "KA01AB1234",
			"startOdometer": 1200.5,
		})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("active none", func(t *testing.T) {
		mockSvc.On("Active", mock.Anything, user.UserID).Return(nil, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/trips/active", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "null", string(body.Data))
		mockSvc.AssertExpectations(t)
	})
}

func TestEnrollmentUploadDocuments(t *testing.T) {
	mockSvc := new(serviceMocks.MockFBOService)
	h := NewEnrollmentHandler(mockSvc, nil)
	app := fiber.New()
	app.Post("/fbos/:fboId/documents", asUser(adminUser()), h.UploadDocuments)

	t.Run("success", func(t *testing.T) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, _ := writer.CreateFormFile("documents", "license.pdf")
		part.Write([]byte("pdf-bytes"))
		writer.WriteField("document_types", "fssai_license")
		writer.Close()

		mockSvc.On("UploadDocuments", mock.Anything, "FBO1", mock.MatchedBy(func(uploads []service.DocumentUpload) bool {
			return len(uploads) == 1 && uploads[0].Type == "fssai_license" && uploads[0].Filename == "license.pdf"
		})).
			Return([]model.FBODocument{{Type: "fssai_license"}}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/fbos/FBO1/documents", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no documents", func(t *testing.T) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		writer.WriteField("document_types", "fssai_license")
		writer.Close()

		req := httptest.NewRequest(http.MethodPost, "/fbos/FBO1/documents", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		res := decodeBody(t, resp)
		assert.Equal(t, "NO_DOCUMENTS_PROVIDED", res.Error)
	})
}

func TestEnrollmentListScopesToEnroller(t *testing.T) {
	mockSvc := new(serviceMocks.MockFBOService)
	h := NewEnrollmentHandler(mockSvc, nil)
	enroller := &model.User{UserID: "USR9", Role: model.RoleEnrollmentTeam, Status: model.StatusActive}
	app := fiber.New()
	app.Get("/fbos", asUser(enroller), h.ListFBOs)

	mockSvc.On("List", mock.Anything, mock.MatchedBy(func(f repository.FBOFilter) bool {
		return f.EnrolledBy == "USR9"
	}), 1, 20).
		Return(&model.Paginated[model.FBO]{Pagination: model.NewPagination(1, 20, 0)}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/fbos", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestVendorSupportMessage(t *testing.T) {
	mockSvc := new(serviceMocks.MockVendorService)
	h := NewVendorHandler(mockSvc)
	vendor := &model.User{UserID: "USR5", Role: model.RoleFBO, Status: model.StatusActive}
	app := fiber.New()
	app.Post("/support", asUser(vendor), h.CreateSupportMessage)

	t.Run("success", func(t *testing.T) {
		mockSvc.On("CreateSupportMessage", mock.Anything, vendor,
			model.SupportMessageCreate{Subject: "Pickup delay", Message: "No pickup this week"}).
			Return(&model.SupportMessage{TicketID: "TKT1"}, nil).Once()

		req := jsonRequest(http.MethodPost, "/support", fiber.Map{
			"subject": "Pickup delay",
			"message": "No pickup this week",
		})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing subject", func(t *testing.T) {
		mockSvc.On("CreateSupportMessage", mock.Anything, vendor, mock.Anything).
			Return(nil, service.BadRequest("Subject and message required")).Once()

		req := jsonRequest(http.MethodPost, "/support", fiber.Map{"message": "hello"})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestCommonNotifications(t *testing.T) {
	mockSvc := new(serviceMocks.MockNotificationService)
	h := NewCommonHandler(mockSvc, nil, nil, nil)
	user := adminUser()
	app := fiber.New()
	app.Get("/notifications", asUser(user), h.Notifications)
	app.Patch("/notifications/read-all", asUser(user), h.MarkAllNotificationsRead)
	app.Patch("/notifications/:notificationId/read", asUser(user), h.MarkNotificationRead)

	t.Run("list", func(t *testing.T) {
		page := &service.NotificationPage{
			Notifications: []model.Notification{{NotificationID: "NOTIF1"}},
			UnreadCount:   1,
			Pagination:    model.NewPagination(1, 20, 1),
		}
		mockSvc.On("List", mock.Anything, user.UserID, false, 1, 20).Return(page, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("mark one", func(t *testing.T) {
		mockSvc.On("MarkRead", mock.Anything, user.UserID, "NOTIF1").Return(int64(1), nil).Once()

		req := httptest.NewRequest(http.MethodPatch, "/notifications/NOTIF1/read", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("mark all", func(t *testing.T) {
		mockSvc.On("MarkRead", mock.Anything, user.UserID, "").Return(int64(4), nil).Once()

		req := httptest.NewRequest(http.MethodPatch, "/notifications/read-all", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unknown id", func(t *testing.T) {
		mockSvc.On("MarkRead", mock.Anything, user.UserID, "NOPE").
			Return(int64(0), service.NotFound("Notification not found")).Once()

		req := httptest.NewRequest(http.MethodPatch, "/notifications/NOPE/read", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestItemHandler(t *testing.T) {
	mockSvc := new(serviceMocks.MockItemService)
	h := NewItemHandler(mockSvc)
	user := adminUser()
	app := fiber.New()
	app.Post("/items", asUser(user), h.Create)
	app.Get("/items", asUser(user), h.List)

	t.Run("create", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, model.ItemCreate{Name: "Drum 50L"}, user).
			Return(&model.Item{ItemID: "ITM-A1B2C3D4", Name: "Drum 50L"}, nil).Once()

		req := jsonRequest(http.MethodPost, "/items", fiber.Map{"name": "Drum 50L"})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("list with search", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, repository.ItemFilter{Search: "drum"}, 1, 20).
			Return(&model.Paginated[model.Item]{Pagination: model.NewPagination(1, 20, 0)}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/items?search=drum", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("list filtered by creator and date range", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, mock.MatchedBy(func(f repository.ItemFilter) bool {
			return f.CreatedBy == "ADM1" &&
				f.DateFrom != nil && f.DateFrom.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) &&
				f.DateTo != nil && f.DateTo.Equal(time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC))
		}), 1, 20).
			Return(&model.Paginated[model.Item]{Pagination: model.NewPagination(1, 20, 0)}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/items?created_by=ADM1&start_date=2024-01-01&end_date=2024-01-31", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestErrorCode(t *testing.T) {
	cases := map[string]string{
		"FBO not found":                  "FBO_NOT_FOUND",
		"Collection COL1 is already paid": "COLLECTION_COL1_IS_ALREADY_PAID",
		"Internal server error":          "INTERNAL_SERVER_ERROR",
	}
	for in, want := range cases {
		assert.Equal(t, want, errorCode(in))
	}
}
