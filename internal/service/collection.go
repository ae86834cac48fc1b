package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ucoportal/internal/model"
	"ucoportal/internal/repository"
	"ucoportal/internal/storage"
)

// Settings keys holding the per-grade rate card.
var gradeRateKeys = []string{"gradeARate", "gradeBRate", "gradeCRate"}

// CollectionInput carries everything a collector submits for a new pickup,
// including optional images and an optional immediate payment.
type CollectionInput struct {
	FBOID          string
	TripID         string
	Quantity       float64
	Grade          model.QualityGrade
	Notes          string
	ContainerType  model.ContainerType
	ContainerCount *int
	ContainerIDs   []string
	Latitude       *float64
	Longitude      *float64
	Amount         *float64
	Status         model.CollectionStatus
	Images         []DocumentUpload

	PayNow           bool
	PaymentMethod    model.PaymentMethod
	PaymentReference string
	AmountPaid       float64
	PaymentProof     *DocumentUpload
}

// PaymentInput is one incremental payment against a collection or bill.
type PaymentInput struct {
	Method     string
	AmountPaid float64
	Reference  string
	Proof      *DocumentUpload
}

// CollectionListSummary accompanies admin collection listings.
type CollectionListSummary struct {
	TotalQuantity    float64 `json:"totalQuantity"`
	TotalAmount      float64 `json:"totalAmount"`
	PendingApprovals int64   `json:"pendingApprovals"`
}

// ReviewResult reports the outcome of an approve/reject decision.
type ReviewResult struct {
	CollectionID string   `json:"collectionId"`
	Status       string   `json:"status"`
	TotalAmount  *float64 `json:"totalAmount,omitempty"`
}

// CollectionService covers pickup recording, review, and payment tracking.
type CollectionService interface {
	Create(ctx context.Context, in CollectionInput, by *model.User) (*model.Collection, error)
	Get(ctx context.Context, collectionID string) (*model.Collection, error)
	List(ctx context.Context, f repository.CollectionFilter, page, limit int) (*model.Paginated[model.Collection], *CollectionListSummary, error)
	Review(ctx context.Context, collectionID string, review model.CollectionReview, by *model.User) (*ReviewResult, error)
	// UpdateFields applies arbitrary changes, recalculating price when
	// quantity or grade change.
	UpdateFields(ctx context.Context, collectionID string, fields map[string]any) (map[string]any, error)
	Delete(ctx context.Context, collectionID string) error
	// RecordPayment appends a transaction to the collection's payment history
	// and rolls the payment status forward (or back).
	RecordPayment(ctx context.Context, collectionID string, in PaymentInput, by *model.User) (*model.PaymentDetails, model.CollectionStatus, error)
	GradeRates(ctx context.Context) (map[string]any, error)
}

type collectionService struct {
	collections repository.CollectionRepository
	fbos        repository.FBORepository
	trips       repository.TripRepository
	settings    repository.SettingRepository
	store       storage.Storage
}

func NewCollectionService(
	collections repository.CollectionRepository,
	fbos repository.FBORepository,
	trips repository.TripRepository,
	settings repository.SettingRepository,
	store storage.Storage,
) CollectionService {
	return &collectionService{
		collections: collections,
		fbos:        fbos,
		trips:       trips,
		settings:    settings,
		store:       store,
	}
}

func (s *collectionService) GradeRates(ctx context.Context) (map[string]any, error) {
	return s.settings.Values(ctx, gradeRateKeys)
}

// gradeRate resolves the configured price per kg for a quality grade.
// Rejected oil has no rate.
func (s *collectionService) gradeRate(ctx context.Context, grade model.QualityGrade) (float64, error) {
	values, err := s.settings.Values(ctx, gradeRateKeys)
	if err != nil {
		return 0, err
	}
	key := map[model.QualityGrade]string{
		model.GradeA: "gradeARate",
		model.GradeB: "gradeBRate",
		model.GradeC: "gradeCRate",
	}[grade]
	if key == "" {
		return 0, nil
	}
	return toFloat(values[key]), nil
}

func (s *collectionService) Create(ctx context.Context, in CollectionInput, by *model.User) (*model.Collection, error) {
	fbo, err := s.fbos.FindByID(ctx, in.FBOID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("FBO not found")
		}
		return nil, err
	}

	collectionID := newID("COL")
	now := time.Now().UTC()

	images := make([]model.CollectionImage, 0, len(in.Images))
	for _, img := range in.Images {
		url, err := s.upload(ctx, "collections", collectionID, img)
		if err != nil {
			return nil, err
		}
		images = append(images, model.CollectionImage{Type: img.Type, URL: url, UploadedAt: now})
	}

	var location *model.CollectionLocation
	if in.Latitude != nil && in.Longitude != nil {
		location = &model.CollectionLocation{
			Latitude:  *in.Latitude,
			Longitude: *in.Longitude,
			Address:   fbo.Address.Street,
		}
	}

	pricePerKg, err := s.gradeRate(ctx, in.Grade)
	if err != nil {
		return nil, err
	}
	totalAmount := in.Quantity * pricePerKg
	if in.Amount != nil {
		totalAmount = *in.Amount
	}

	status := in.Status
	if status == "" {
		status = model.CollectionPending
	}

	var paymentDetails *model.PaymentDetails
	if in.PayNow {
		method := in.PaymentMethod
		if method == "" {
			method = model.MethodCash
		}
		proofURL := ""
		if in.PaymentProof != nil {
			proofURL, err = s.upload(ctx, "payments", collectionID, *in.PaymentProof)
			if err != nil {
				return nil, err
			}
		}
		balance := totalAmount - in.AmountPaid
		paid := in.AmountPaid
		paymentDetails = &model.PaymentDetails{
			PaymentID:            newID("PAY"),
			PaymentDate:          now,
			PaymentMethod:        method,
			TransactionReference: in.PaymentReference,
			Status:               model.PaymentPending,
			AmountPaid:           &paid,
			Balance:              &balance,
			PaymentProofURL:      proofURL,
			History: []model.PaymentTransaction{{
				TransactionID: newID("TXN"),
				Amount:        in.AmountPaid,
				Date:          now,
				Method:        string(method),
				Reference:     in.PaymentReference,
				ProofURL:      proofURL,
				PaidBy:        by.UserID,
				PaidByName:    by.Name,
			}},
		}
		if balance <= 0 && in.AmountPaid > 0 {
			paymentDetails.Status = model.PaymentCompleted
			if status == model.CollectionPending {
				status = model.CollectionPaid
			}
		}
	}

	containerIDs := in.ContainerIDs
	if containerIDs == nil {
		containerIDs = []string{}
	}

	c := &model.Collection{
		CollectionID:      collectionID,
		FBOID:             in.FBOID,
		FBOName:           fbo.BusinessName,
		CollectorID:       by.UserID,
		CollectorName:     by.Name,
		TripID:            in.TripID,
		CollectionDate:    now,
		QuantityCollected: in.Quantity,
		QualityGrade:      in.Grade,
		QualityNotes:      in.Notes,
		PricePerKg:        &pricePerKg,
		TotalAmount:       &totalAmount,
		ContainerType:     in.ContainerType,
		ContainerCount:    in.ContainerCount,
		ContainerIDs:      containerIDs,
		Images:            images,
		Location:          location,
		Status:            status,
		PaymentDetails:    paymentDetails,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.collections.Create(ctx, c); err != nil {
		return nil, err
	}

	if in.TripID != "" {
		err := s.trips.AddCompleted(ctx, in.TripID, model.TripCompletedCollection{
			CollectionID:      collectionID,
			FBOID:             in.FBOID,
			QuantityCollected: in.Quantity,
			Amount:            totalAmount,
			CompletedAt:       now,
		})
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}
	if err := s.fbos.RecordCollection(ctx, in.FBOID, in.Quantity, 0, now); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *collectionService) upload(ctx context.Context, kind, ownerID string, f DocumentUpload) (string, error) {
	key := storage.ObjectKey(kind, ownerID, f.Filename)
	info, err := s.store.Put(ctx, key, f.Content, storage.PutObjectOptions{
		Size:        f.Size,
		ContentType: f.ContentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", kind, err)
	}
	return s.store.PresignGet(ctx, info.Key, 7*24*time.Hour)
}

func (s *collectionService) Get(ctx context.Context, collectionID string) (*model.Collection, error) {
	c, err := s.collections.FindByID(ctx, collectionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("Collection not found")
		}
		return nil, err
	}
	return c, nil
}

func (s *collectionService) List(ctx context.Context, f repository.CollectionFilter, page, limit int) (*model.Paginated[model.Collection], *CollectionListSummary, error) {
	res, err := s.collections.List(ctx, f, pageQuery(page, limit))
	if err != nil {
		return nil, nil, err
	}
	summary, err := s.collections.Summary(ctx, f)
	if err != nil {
		return nil, nil, err
	}
	pendingFilter := f
	pendingFilter.Status = model.CollectionPending
	pendingFilter.Statuses = nil
	pending, err := s.collections.Count(ctx, pendingFilter)
	if err != nil {
		return nil, nil, err
	}
	return &model.Paginated[model.Collection]{
			Data:       res.Items,
			Pagination: model.NewPagination(page, limit, res.Total),
		}, &CollectionListSummary{
			TotalQuantity:    summary.TotalQuantity,
			TotalAmount:      summary.TotalAmount,
			PendingApprovals: pending,
		}, nil
}

func (s *collectionService) Review(ctx context.Context, collectionID string, review model.CollectionReview, by *model.User) (*ReviewResult, error) {
	if review.Action != "approve" && review.Action != "reject" {
		return nil, BadRequest("Action must be approve or reject")
	}
	c, err := s.Get(ctx, collectionID)
	if err != nil {
		return nil, err
	}
	if c.Status != model.CollectionPending {
		return nil, BadRequest("Collection not pending review")
	}

	status := model.CollectionApproved
	if review.Action == "reject" {
		status = model.CollectionRejected
	}
	fields := map[string]any{
		"status":     status,
		"approvedBy": by.UserID,
		"approvedAt": time.Now().UTC(),
	}
	result := &ReviewResult{CollectionID: collectionID, Status: string(status)}
	if review.QualityGrade != nil {
		fields["qualityGrade"] = *review.QualityGrade
	}
	if review.PricePerKg != nil {
		total := c.QuantityCollected * *review.PricePerKg
		fields["pricePerKg"] = *review.PricePerKg
		fields["totalAmount"] = total
		result.TotalAmount = &total
	}
	if review.Notes != "" {
		fields["qualityNotes"] = review.Notes
	}
	if err := s.collections.Update(ctx, collectionID, fields); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *collectionService) UpdateFields(ctx context.Context, collectionID string, fields map[string]any) (map[string]any, error) {
	delete(fields, "collectionId")
	fields["updatedAt"] = time.Now().UTC()

	_, quantityChanged := fields["quantityCollected"]
	_, gradeChanged := fields["qualityGrade"]
	if quantityChanged || gradeChanged {
		c, err := s.Get(ctx, collectionID)
		if err != nil {
			return nil, err
		}
		qty := c.QuantityCollected
		if v, ok := fields["quantityCollected"]; ok {
			qty = toFloat(v)
		}
		grade := c.QualityGrade
		if v, ok := fields["qualityGrade"].(string); ok {
			grade = model.QualityGrade(v)
		}
		rate, err := s.gradeRate(ctx, grade)
		if err != nil {
			return nil, err
		}
		fields["pricePerKg"] = rate
		fields["totalAmount"] = qty * rate
	}

	if err := s.collections.Update(ctx, collectionID, fields); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("Collection not found")
		}
		return nil, err
	}
	return fields, nil
}

// Delete removes a collection and rolls back the trip and FBO running totals
// it contributed to.
func (s *collectionService) Delete(ctx context.Context, collectionID string) error {
	c, err := s.Get(ctx, collectionID)
	if err != nil {
		return err
	}
	quantity := c.QuantityCollected
	amount := 0.0
	if c.TotalAmount != nil {
		amount = *c.TotalAmount
	}

	if c.TripID != "" {
		if err := s.trips.RemoveCompleted(ctx, c.TripID, collectionID, quantity, amount); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
	}
	if err := s.fbos.RollbackCollection(ctx, c.FBOID, quantity, 0); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return s.collections.Delete(ctx, collectionID)
}

func (s *collectionService) RecordPayment(ctx context.Context, collectionID string, in PaymentInput, by *model.User) (*model.PaymentDetails, model.CollectionStatus, error) {
	c, err := s.Get(ctx, collectionID)
	if err != nil {
		return nil, "", err
	}
	if by.Role != model.RoleAdmin && c.CollectorID != by.UserID {
		return nil, "", Forbidden("Not authorized")
	}

	totalAmount := 0.0
	if c.TotalAmount != nil {
		totalAmount = *c.TotalAmount
	}
	previousPaid := 0.0
	var history []model.PaymentTransaction
	paymentID := newID("PAY")
	if c.PaymentDetails != nil {
		if c.PaymentDetails.AmountPaid != nil {
			previousPaid = *c.PaymentDetails.AmountPaid
		}
		history = c.PaymentDetails.History
		if c.PaymentDetails.PaymentID != "" {
			paymentID = c.PaymentDetails.PaymentID
		}
	}

	newTotalPaid := previousPaid + in.AmountPaid
	newBalance := totalAmount - newTotalPaid

	proofURL := ""
	if in.Proof != nil {
		proofURL, err = s.upload(ctx, "payments", collectionID, *in.Proof)
		if err != nil {
			return nil, "", err
		}
	}

	now := time.Now().UTC()
	history = append(history, model.PaymentTransaction{
		TransactionID: newID("TXN"),
		Amount:        in.AmountPaid,
		Date:          now,
		Method:        in.Method,
		Reference:     in.Reference,
		ProofURL:      proofURL,
		PaidBy:        by.UserID,
		PaidByName:    by.Name,
	})

	details := &model.PaymentDetails{
		PaymentID:            paymentID,
		PaymentDate:          now,
		PaymentMethod:        model.NormalizePaymentMethod(in.Method),
		TransactionReference: in.Reference,
		Status:               model.PaymentPending,
		AmountPaid:           &newTotalPaid,
		Balance:              &newBalance,
		PaymentProofURL:      proofURL,
		History:              history,
	}

	fields := map[string]any{"paymentDetails": details}
	status := c.Status
	switch {
	case newBalance <= 0:
		details.Status = model.PaymentCompleted
		status = model.CollectionPaid
		fields["status"] = status
	case newTotalPaid > 0:
		details.Status = model.PaymentPartial
		// A partially paid collection can no longer be marked fully paid.
		if c.Status == model.CollectionPaid {
			status = model.CollectionPending
			fields["status"] = status
		}
	}

	if err := s.collections.Update(ctx, collectionID, fields); err != nil {
		return nil, "", err
	}
	return details, status, nil
}

func toFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		var f float64
		fmt.Sscanf(t, "%g", &f)
		return f
	default:
		return 0
	}
}
