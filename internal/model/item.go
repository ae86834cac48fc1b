package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Item is a master-data catalogue entry.
type Item struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ItemID        string             `json:"itemId" bson:"itemId"`
	Name          string             `json:"name" bson:"name"`
	Description   string             `json:"description,omitempty" bson:"description,omitempty"`
	CreatedBy     string             `json:"createdBy" bson:"createdBy"`
	CreatedByName string             `json:"createdByName,omitempty" bson:"createdByName,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}

type ItemCreate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
