package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TripPlannedFBO struct {
	FBOID             string  `json:"fboId" bson:"fboId"`
	FBOName           string  `json:"fboName" bson:"fboName"`
	Address           string  `json:"address" bson:"address"`
	EstimatedQuantity float64 `json:"estimatedQuantity" bson:"estimatedQuantity"`
	Sequence          int     `json:"sequence" bson:"sequence"`
}

type TripCompletedCollection struct {
	CollectionID      string    `json:"collectionId" bson:"collectionId"`
	FBOID             string    `json:"fboId" bson:"fboId"`
	QuantityCollected float64   `json:"quantityCollected" bson:"quantityCollected"`
	Amount            float64   `json:"amount" bson:"amount"`
	CompletedAt       time.Time `json:"completedAt" bson:"completedAt"`
}

// Trip is one collector route with planned stops and completed pickups.
type Trip struct {
	ID                     primitive.ObjectID        `json:"id,omitempty" bson:"_id,omitempty"`
	TripID                 string                    `json:"tripId" bson:"tripId"`
	CollectorID            string                    `json:"collectorId" bson:"collectorId"`
	CollectorName          string                    `json:"collectorName" bson:"collectorName"`
	VehicleNumber          string                    `json:"vehicleNumber" bson:"vehicleNumber"`
	TripDate               time.Time                 `json:"tripDate" bson:"tripDate"`
	StartTime              time.Time                 `json:"startTime" bson:"startTime"`
	EndTime                *time.Time                `json:"endTime,omitempty" bson:"endTime,omitempty"`
	StartOdometer          float64                   `json:"startOdometer" bson:"startOdometer"`
	EndOdometer            *float64                  `json:"endOdometer,omitempty" bson:"endOdometer,omitempty"`
	TotalKmTraveled        *float64                  `json:"totalKmTraveled,omitempty" bson:"totalKmTraveled,omitempty"`
	PlannedFBOs            []TripPlannedFBO          `json:"plannedFBOs" bson:"plannedFBOs"`
	CompletedCollections   []TripCompletedCollection `json:"completedCollections" bson:"completedCollections"`
	TotalQuantityCollected float64                   `json:"totalQuantityCollected" bson:"totalQuantityCollected"`
	TotalAmountCollected   float64                   `json:"totalAmountCollected" bson:"totalAmountCollected"`
	Status                 TripStatus                `json:"status" bson:"status"`
	CreatedAt              time.Time                 `json:"createdAt" bson:"createdAt"`
	UpdatedAt              time.Time                 `json:"updatedAt" bson:"updatedAt"`
}

type TripCreate struct {
	VehicleNumber string           `json:"vehicleNumber"`
	StartOdometer float64          `json:"startOdometer"`
	PlannedFBOs   []TripPlannedFBO `json:"plannedFBOs"`
}

type TripEnd struct {
	EndOdometer float64 `json:"endOdometer"`
	Notes       string  `json:"notes,omitempty"`
}
