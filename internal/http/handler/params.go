package handler

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"ucoportal/internal/service"
)

func pageParams(c *fiber.Ctx) (page, limit int) {
	return c.QueryInt("page", 1), c.QueryInt("limit", 20)
}

// dateQuery parses an optional date query parameter, accepting plain dates
// and RFC 3339 timestamps.
func dateQuery(c *fiber.Ctx, key string) *time.Time {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

// endDateQuery parses an end-of-range date query parameter. A plain date is
// widened to the last second of that day so $lte filters keep the day itself.
func endDateQuery(c *fiber.Ctx, key string) *time.Time {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		end := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, time.UTC)
		return &end
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	return nil
}

// documentUpload opens a multipart file header as a service upload. The
// caller owns closing nothing; the opened reader is consumed by storage
// within the request lifetime.
func documentUpload(fh *multipart.FileHeader, docType string) (*service.DocumentUpload, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &service.DocumentUpload{
		Type:        docType,
		Filename:    filepath.Base(fh.Filename),
		ContentType: contentType,
		Size:        fh.Size,
		Content:     f,
	}, nil
}

// paymentInputFromForm reads the shared payment form fields used when
// recording a payment against a collection or a bill. An attached
// payment_proof file is optional.
func paymentInputFromForm(c *fiber.Ctx) (service.PaymentInput, error) {
	raw := c.FormValue("amount_paid")
	if raw == "" {
		return service.PaymentInput{}, errors.New("Payment amount required")
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return service.PaymentInput{}, errors.New("Invalid payment amount")
	}
	in := service.PaymentInput{
		Method:     c.FormValue("payment_method"),
		AmountPaid: amount,
		Reference:  c.FormValue("payment_reference"),
	}
	if fh, err := c.FormFile("payment_proof"); err == nil && fh != nil {
		proof, err := documentUpload(fh, "payment_proof")
		if err != nil {
			return service.PaymentInput{}, errors.New("Invalid payment proof file")
		}
		in.Proof = proof
	}
	return in, nil
}
