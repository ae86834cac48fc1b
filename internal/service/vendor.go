package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"ucoportal/internal/mailer"
	"ucoportal/internal/model"
	"ucoportal/internal/repository"
)

// NameValue is one slice of a dashboard distribution chart.
type NameValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// VendorDashboard is the FBO-facing overview payload.
type VendorDashboard struct {
	FBOID               string             `json:"fboId,omitempty"`
	BusinessName        string             `json:"businessName,omitempty"`
	TotalCollections    int64              `json:"totalCollections"`
	TotalQuantity       float64            `json:"totalQuantity"`
	TotalEarnings       float64            `json:"totalEarnings"`
	QualityScore        string             `json:"qualityScore"`
	QualityConsistency  float64            `json:"qualityConsistency"`
	PaymentDistribution []NameValue        `json:"paymentDistribution"`
	RecentCollections   []model.Collection `json:"recentCollections"`
	IsUnlinked          bool               `json:"isUnlinked,omitempty"`
}

// VendorPayment is one flattened payment history entry across an FBO's
// collections.
type VendorPayment struct {
	TransactionID string    `json:"transactionId"`
	CollectionID  string    `json:"collectionId"`
	Amount        float64   `json:"amount"`
	Date          time.Time `json:"date"`
	Method        string    `json:"method"`
	Reference     string    `json:"reference,omitempty"`
	ProofURL      string    `json:"proofUrl,omitempty"`
	PaidByName    string    `json:"paidByName,omitempty"`
}

// CollectionRequest is a vendor's ask for a pickup.
type CollectionRequest struct {
	RequestID         string  `json:"requestId"`
	PreferredDate     string  `json:"preferredDate,omitempty"`
	EstimatedQuantity float64 `json:"estimatedQuantity,omitempty"`
	Notes             string  `json:"notes,omitempty"`
}

// CollectionRequestInput is the request-collection body.
type CollectionRequestInput struct {
	PreferredDate     string  `json:"preferredDate,omitempty"`
	EstimatedQuantity float64 `json:"estimatedQuantity,omitempty"`
	Notes             string  `json:"notes,omitempty"`
}

// VendorProfileUpdate limits which FBO sections a vendor may edit.
type VendorProfileUpdate struct {
	ContactPerson *model.FBOContact     `json:"contactPerson,omitempty"`
	Address       *model.FBOAddress     `json:"address,omitempty"`
	BankDetails   *model.FBOBankDetails `json:"bankDetails,omitempty"`
	OilDetails    *model.FBOOilDetails  `json:"oilDetails,omitempty"`
}

// VendorService serves the FBO self-service surface.
type VendorService interface {
	// ResolveFBO maps a logged-in vendor account to its FBO record.
	ResolveFBO(ctx context.Context, user *model.User) (*model.FBO, error)
	Dashboard(ctx context.Context, user *model.User) (*VendorDashboard, error)
	Collections(ctx context.Context, user *model.User, status model.CollectionStatus, page, limit int) (*model.Paginated[model.Collection], error)
	Bills(ctx context.Context, user *model.User, page, limit int) (*model.Paginated[model.Bill], error)
	Payments(ctx context.Context, user *model.User, dateFrom, dateTo *time.Time, page, limit int) (*model.Paginated[VendorPayment], error)
	Profile(ctx context.Context, user *model.User) (*model.FBO, error)
	UpdateProfile(ctx context.Context, user *model.User, in VendorProfileUpdate) (*model.FBO, error)
	RequestCollection(ctx context.Context, user *model.User, in CollectionRequestInput) (*CollectionRequest, error)
	CreateSupportMessage(ctx context.Context, user *model.User, in model.SupportMessageCreate) (*model.SupportMessage, error)
	SupportMessages(ctx context.Context, user *model.User) ([]model.SupportMessage, error)
}

type vendorService struct {
	fbos        repository.FBORepository
	collections repository.CollectionRepository
	bills       repository.BillRepository
	users       repository.UserRepository
	support     repository.SupportRepository
	notifier    NotificationService
	settings    SettingService
	mail        mailer.Mailer
	log         zerolog.Logger
}

func NewVendorService(
	fbos repository.FBORepository,
	collections repository.CollectionRepository,
	bills repository.BillRepository,
	users repository.UserRepository,
	support repository.SupportRepository,
	notifier NotificationService,
	settings SettingService,
	mail mailer.Mailer,
	log zerolog.Logger,
) VendorService {
	return &vendorService{
		fbos:        fbos,
		collections: collections,
		bills:       bills,
		users:       users,
		support:     support,
		notifier:    notifier,
		settings:    settings,
		mail:        mail,
		log:         log,
	}
}

func (s *vendorService) ResolveFBO(ctx context.Context, user *model.User) (*model.FBO, error) {
	f, err := s.fbos.FindByContactEmail(ctx, user.Email)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	// Admins browsing the vendor surface fall back to any FBO.
	if user.Role == model.RoleAdmin {
		if f, err := s.fbos.FindFirst(ctx, model.StatusActive); err == nil {
			return f, nil
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		if f, err := s.fbos.FindFirst(ctx, ""); err == nil {
			return f, nil
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}
	return nil, NotFound(fmt.Sprintf("FBO Profile not found for %s. Please contact support to link your account", user.Email))
}

func (s *vendorService) Dashboard(ctx context.Context, user *model.User) (*VendorDashboard, error) {
	fbo, err := s.ResolveFBO(ctx, user)
	if err != nil {
		if svcErr, ok := AsError(err); ok && svcErr.Status == 404 {
			return &VendorDashboard{
				QualityScore:        "N/A",
				PaymentDistribution: []NameValue{{Name: "No Data", Value: 1}},
				RecentCollections:   []model.Collection{},
				IsUnlinked:          true,
			}, nil
		}
		return nil, err
	}

	f := repository.CollectionFilter{FBOID: fbo.FBOID}
	total, err := s.collections.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	summary, err := s.collections.Summary(ctx, f)
	if err != nil {
		return nil, err
	}

	qualityScore, consistency, err := s.qualityScore(ctx, fbo.FBOID)
	if err != nil {
		return nil, err
	}
	distribution, err := s.paymentDistribution(ctx, fbo.FBOID)
	if err != nil {
		return nil, err
	}

	recent, err := s.collections.List(ctx, f, repository.PageQuery{Limit: 5})
	if err != nil {
		return nil, err
	}

	return &VendorDashboard{
		FBOID:               fbo.FBOID,
		BusinessName:        fbo.BusinessName,
		TotalCollections:    total,
		TotalQuantity:       summary.TotalQuantity,
		TotalEarnings:       summary.TotalAmount,
		QualityScore:        qualityScore,
		QualityConsistency:  consistency,
		PaymentDistribution: distribution,
		RecentCollections:   recent.Items,
	}, nil
}

// qualityScore grades the FBO by its most frequent oil quality grade and
// reports how consistently that grade occurs.
func (s *vendorService) qualityScore(ctx context.Context, fboID string) (string, float64, error) {
	counts, err := s.collections.QualityCounts(ctx, repository.CollectionFilter{FBOID: fboID})
	if err != nil {
		return "", 0, err
	}
	var total, modeCount int64
	mode := ""
	for grade, n := range counts {
		total += n
		if n > modeCount || (n == modeCount && grade < mode) {
			mode, modeCount = grade, n
		}
	}
	if total == 0 {
		return "N/A", 0, nil
	}
	labels := map[string]string{"A": "Excellent", "B": "Good", "C": "Fair", "Rejected": "Poor"}
	label, ok := labels[mode]
	if !ok {
		label = "N/A"
	}
	return label, float64(modeCount) / float64(total) * 100, nil
}

func (s *vendorService) paymentDistribution(ctx context.Context, fboID string) ([]NameValue, error) {
	byStatus, err := s.collections.StatusCounts(ctx, repository.CollectionFilter{FBOID: fboID})
	if err != nil {
		return nil, err
	}
	out := make([]NameValue, 0, 3)
	for _, slice := range []struct {
		name   string
		status model.CollectionStatus
	}{
		{"Paid", model.CollectionPaid},
		{"Processing", model.CollectionApproved},
		{"Pending", model.CollectionPending},
	} {
		if amount := byStatus[string(slice.status)].Amount; amount > 0 {
			out = append(out, NameValue{Name: slice.name, Value: amount})
		}
	}
	if len(out) == 0 {
		out = []NameValue{{Name: "No Data", Value: 1}}
	}
	return out, nil
}

func (s *vendorService) Collections(ctx context.Context, user *model.User, status model.CollectionStatus, page, limit int) (*model.Paginated[model.Collection], error) {
	fbo, err := s.ResolveFBO(ctx, user)
	if err != nil {
		return nil, err
	}
	res, err := s.collections.List(ctx, repository.CollectionFilter{FBOID: fbo.FBOID, Status: status}, pageQuery(page, limit))
	if err != nil {
		return nil, err
	}
	return &model.Paginated[model.Collection]{
		Data:       res.Items,
		Pagination: model.NewPagination(page, limit, res.Total),
	}, nil
}

func (s *vendorService) Bills(ctx context.Context, user *model.User, page, limit int) (*model.Paginated[model.Bill], error) {
	fbo, err := s.ResolveFBO(ctx, user)
	if err != nil {
		return nil, err
	}
	res, err := s.bills.List(ctx, repository.BillFilter{FBOID: fbo.FBOID}, pageQuery(page, limit))
	if err != nil {
		return nil, err
	}
	return &model.Paginated[model.Bill]{
		Data:       res.Items,
		Pagination: model.NewPagination(page, limit, res.Total),
	}, nil
}

// Payments flattens the payment history entries of the FBO's collections.
// History lives embedded per collection, so filtering and paging happen here
// rather than in the database.
func (s *vendorService) Payments(ctx context.Context, user *model.User, dateFrom, dateTo *time.Time, page, limit int) (*model.Paginated[VendorPayment], error) {
	fbo, err := s.ResolveFBO(ctx, user)
	if err != nil {
		return nil, err
	}
	collections, err := s.collections.FindPaidWithHistory(ctx, fbo.FBOID)
	if err != nil {
		return nil, err
	}

	payments := make([]VendorPayment, 0)
	for _, c := range collections {
		if c.PaymentDetails == nil {
			continue
		}
		for _, txn := range c.PaymentDetails.History {
			if dateFrom != nil && txn.Date.Before(*dateFrom) {
				continue
			}
			if dateTo != nil && txn.Date.After(*dateTo) {
				continue
			}
			payments = append(payments, VendorPayment{
				TransactionID: txn.TransactionID,
				CollectionID:  c.CollectionID,
				Amount:        txn.Amount,
				Date:          txn.Date,
				Method:        txn.Method,
				Reference:     txn.Reference,
				ProofURL:      txn.ProofURL,
				PaidByName:    txn.PaidByName,
			})
		}
	}
	sort.Slice(payments, func(i, j int) bool { return payments[i].Date.After(payments[j].Date) })

	q := pageQuery(page, limit)
	total := int64(len(payments))
	start := min(q.Offset, len(payments))
	end := min(start+q.Limit, len(payments))
	return &model.Paginated[VendorPayment]{
		Data:       payments[start:end],
		Pagination: model.NewPagination(page, limit, total),
	}, nil
}

func (s *vendorService) Profile(ctx context.Context, user *model.User) (*model.FBO, error) {
	return s.ResolveFBO(ctx, user)
}

func (s *vendorService) UpdateProfile(ctx context.Context, user *model.User, in VendorProfileUpdate) (*model.FBO, error) {
	fbo, err := s.ResolveFBO(ctx, user)
	if err != nil {
		return nil, err
	}
	fields := map[string]any{"updatedAt": time.Now().UTC()}
	if in.ContactPerson != nil {
		fields["contactPerson"] = in.ContactPerson
	}
	if in.Address != nil {
		fields["address"] = in.Address
	}
	if in.BankDetails != nil {
		fields["bankDetails"] = in.BankDetails
	}
	if in.OilDetails != nil {
		fields["oilDetails"] = in.OilDetails
	}
	if err := s.fbos.Update(ctx, fbo.FBOID, fields); err != nil {
		return nil, err
	}
	return s.fbos.FindByID(ctx, fbo.FBOID)
}

func (s *vendorService) RequestCollection(ctx context.Context, user *model.User, in CollectionRequestInput) (*CollectionRequest, error) {
	fbo, err := s.ResolveFBO(ctx, user)
	if err != nil {
		return nil, err
	}

	req := &CollectionRequest{
		RequestID:         newID("REQ"),
		PreferredDate:     in.PreferredDate,
		EstimatedQuantity: in.EstimatedQuantity,
		Notes:             in.Notes,
	}

	title := "Collection Requested"
	message := fmt.Sprintf("%s requested an oil collection", fbo.BusinessName)
	if in.PreferredDate != "" {
		message = fmt.Sprintf("%s requested an oil collection on %s", fbo.BusinessName, in.PreferredDate)
	}

	recipients := []string{user.UserID}
	if admin, err := s.users.FindFirstByRole(ctx, model.RoleAdmin); err == nil {
		recipients = append(recipients, admin.UserID)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	recipients = append(recipients, fbo.AssignedCollectors...)
	if err := s.notifier.NotifyMany(ctx, recipients, model.NotifTripAssigned, title, message, nil); err != nil {
		return nil, err
	}

	s.sendMail(user.Email, "Collection Request Received", fmt.Sprintf(
		"Your collection request %s has been received. Our team will reach out shortly.", req.RequestID))
	if supportEmail, err := s.settings.SupportEmail(ctx); err == nil {
		s.sendMail(supportEmail, "New Collection Request", fmt.Sprintf(
			"%s (%s) requested a collection. Request ID: %s. Notes: %s", fbo.BusinessName, fbo.FBOID, req.RequestID, in.Notes))
	}
	return req, nil
}

func (s *vendorService) CreateSupportMessage(ctx context.Context, user *model.User, in model.SupportMessageCreate) (*model.SupportMessage, error) {
	if in.Subject == "" || in.Message == "" {
		return nil, BadRequest("Subject and message required")
	}

	fboID := "UNLINKED"
	if fbo, err := s.ResolveFBO(ctx, user); err == nil {
		fboID = fbo.FBOID
	}

	msg := &model.SupportMessage{
		TicketID:  newID("TKT"),
		UserID:    user.UserID,
		FBOID:     fboID,
		Subject:   in.Subject,
		Message:   in.Message,
		Status:    "open",
		CreatedAt: time.Now().UTC(),
	}
	if err := s.support.Create(ctx, msg); err != nil {
		return nil, err
	}

	s.sendMail(user.Email, "Copy: "+in.Subject, in.Message)
	if supportEmail, err := s.settings.SupportEmail(ctx); err == nil {
		s.sendMail(supportEmail, "Support: "+in.Subject, fmt.Sprintf("Ticket %s from %s (%s):\n\n%s", msg.TicketID, user.Name, user.Email, in.Message))
	}
	return msg, nil
}

func (s *vendorService) SupportMessages(ctx context.Context, user *model.User) ([]model.SupportMessage, error) {
	return s.support.ListByUser(ctx, user.UserID)
}

// sendMail delivers best effort. Mail failures never fail the request.
func (s *vendorService) sendMail(to, subject, body string) {
	if err := s.mail.Send(to, subject, body); err != nil {
		s.log.Warn().Err(err).Str("to", to).Str("subject", subject).Msg("send mail failed")
	}
}
