package repository

import (
	"context"

	"ucoportal/internal/model"
)

type SettingRepository interface {
	// Values returns settingKey to settingValue for the given keys. Missing
	// keys are simply absent from the map.
	Values(ctx context.Context, keys []string) (map[string]any, error)
	All(ctx context.Context) ([]model.Setting, error)
	Upsert(ctx context.Context, s *model.Setting) error
}

type PricingRepository interface {
	ListActive(ctx context.Context) ([]model.Pricing, error)
}
