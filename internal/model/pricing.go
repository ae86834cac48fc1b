package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pricing is the per-grade rate card.
type Pricing struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PricingID     string             `json:"pricingId" bson:"pricingId"`
	QualityGrade  QualityGrade       `json:"qualityGrade" bson:"qualityGrade"`
	PricePerKg    float64            `json:"pricePerKg" bson:"pricePerKg"`
	EffectiveFrom time.Time          `json:"effectiveFrom" bson:"effectiveFrom"`
	EffectiveTo   *time.Time         `json:"effectiveTo,omitempty" bson:"effectiveTo,omitempty"`
	Description   string             `json:"description" bson:"description"`
	Criteria      string             `json:"criteria" bson:"criteria"`
	Status        Status             `json:"status" bson:"status"`
	CreatedBy     string             `json:"createdBy" bson:"createdBy"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}
