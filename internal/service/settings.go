package service

import (
	"context"
	"time"

	"ucoportal/internal/model"
	"ucoportal/internal/repository"
)

// Contact details served when no settings rows override them.
const (
	defaultSupportEmail   = "support@krbcleanenergy.com"
	defaultSupportPhone   = "+91 1800 123 4567"
	defaultSupportAddress = "Bangalore, Karnataka"
)

// ContactInfo is the public support contact block.
type ContactInfo struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// SettingService exposes system configuration and the active rate card.
type SettingService interface {
	// All returns every setting as a flat key to value map.
	All(ctx context.Context) (map[string]any, error)
	Upsert(ctx context.Context, entries []model.SettingUpsert, by *model.User) error
	Contact(ctx context.Context) (*ContactInfo, error)
	ActivePricing(ctx context.Context) ([]model.Pricing, error)
	SupportEmail(ctx context.Context) (string, error)
}

type settingService struct {
	settings repository.SettingRepository
	pricing  repository.PricingRepository
}

func NewSettingService(settings repository.SettingRepository, pricing repository.PricingRepository) SettingService {
	return &settingService{settings: settings, pricing: pricing}
}

func (s *settingService) All(ctx context.Context) (map[string]any, error) {
	rows, err := s.settings.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any, len(rows))
	for _, row := range rows {
		out[row.SettingKey] = row.SettingValue
	}
	return out, nil
}

func (s *settingService) Upsert(ctx context.Context, entries []model.SettingUpsert, by *model.User) error {
	if len(entries) == 0 {
		return BadRequest("Settings required")
	}
	now := time.Now().UTC()
	for _, e := range entries {
		if e.SettingKey == "" {
			return BadRequest("Setting key required")
		}
		dataType := e.DataType
		if dataType == "" {
			dataType = "string"
		}
		category := e.Category
		if category == "" {
			category = "general"
		}
		err := s.settings.Upsert(ctx, &model.Setting{
			SettingKey:   e.SettingKey,
			SettingValue: e.SettingValue,
			Description:  e.Description,
			DataType:     dataType,
			Category:     category,
			UpdatedBy:    by.UserID,
			UpdatedAt:    now,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *settingService) Contact(ctx context.Context) (*ContactInfo, error) {
	values, err := s.settings.Values(ctx, []string{"supportEmail", "supportPhone", "supportAddress"})
	if err != nil {
		return nil, err
	}
	info := &ContactInfo{
		Email:   defaultSupportEmail,
		Phone:   defaultSupportPhone,
		Address: defaultSupportAddress,
	}
	if v, ok := values["supportEmail"].(string); ok && v != "" {
		info.Email = v
	}
	if v, ok := values["supportPhone"].(string); ok && v != "" {
		info.Phone = v
	}
	if v, ok := values["supportAddress"].(string); ok && v != "" {
		info.Address = v
	}
	return info, nil
}

func (s *settingService) ActivePricing(ctx context.Context) ([]model.Pricing, error) {
	return s.pricing.ListActive(ctx)
}

func (s *settingService) SupportEmail(ctx context.Context) (string, error) {
	values, err := s.settings.Values(ctx, []string{"supportEmail"})
	if err != nil {
		return "", err
	}
	if v, ok := values["supportEmail"].(string); ok && v != "" {
		return v, nil
	}
	return defaultSupportEmail, nil
}
