package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Setting is one key/value row of system configuration.
type Setting struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SettingKey   string             `json:"settingKey" bson:"settingKey"`
	SettingValue any                `json:"settingValue" bson:"settingValue"`
	Description  string             `json:"description,omitempty" bson:"description,omitempty"`
	DataType     string             `json:"dataType" bson:"dataType"`
	Category     string             `json:"category" bson:"category"`
	UpdatedBy    string             `json:"updatedBy" bson:"updatedBy"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type SettingUpsert struct {
	SettingKey   string `json:"settingKey"`
	SettingValue any    `json:"settingValue"`
	Description  string `json:"description,omitempty"`
	DataType     string `json:"dataType,omitempty"`
	Category     string `json:"category,omitempty"`
}
