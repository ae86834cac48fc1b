package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CollectionImage struct {
	Type       string    `json:"type" bson:"type"`
	URL        string    `json:"url" bson:"url"`
	UploadedAt time.Time `json:"uploadedAt" bson:"uploadedAt"`
}

type CollectionLocation struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
	Address   string  `json:"address" bson:"address"`
}

// PaymentTransaction is one entry of a collection's payment history.
type PaymentTransaction struct {
	TransactionID string    `json:"transactionId" bson:"transactionId"`
	Amount        float64   `json:"amount" bson:"amount"`
	Date          time.Time `json:"date" bson:"date"`
	Method        string    `json:"method" bson:"method"`
	Reference     string    `json:"reference,omitempty" bson:"reference,omitempty"`
	ProofURL      string    `json:"proofUrl,omitempty" bson:"proofUrl,omitempty"`
	PaidBy        string    `json:"paidBy,omitempty" bson:"paidBy,omitempty"`
	PaidByName    string    `json:"paidByName,omitempty" bson:"paidByName,omitempty"`
}

type PaymentDetails struct {
	PaymentID            string               `json:"paymentId" bson:"paymentId"`
	PaymentDate          time.Time            `json:"paymentDate" bson:"paymentDate"`
	PaymentMethod        PaymentMethod        `json:"paymentMethod" bson:"paymentMethod"`
	TransactionReference string               `json:"transactionReference" bson:"transactionReference"`
	Status               PaymentStatus        `json:"status" bson:"status"`
	AmountPaid           *float64             `json:"amountPaid,omitempty" bson:"amountPaid,omitempty"`
	Balance              *float64             `json:"balance,omitempty" bson:"balance,omitempty"`
	PaymentProofURL      string               `json:"paymentProofUrl,omitempty" bson:"paymentProofUrl,omitempty"`
	History              []PaymentTransaction `json:"history" bson:"history"`
}

// Collection is a single oil pickup from an FBO.
type Collection struct {
	ID                primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	CollectionID      string              `json:"collectionId" bson:"collectionId"`
	FBOID             string              `json:"fboId" bson:"fboId"`
	FBOName           string              `json:"fboName" bson:"fboName"`
	CollectorID       string              `json:"collectorId" bson:"collectorId"`
	CollectorName     string              `json:"collectorName" bson:"collectorName"`
	TripID            string              `json:"tripId,omitempty" bson:"tripId,omitempty"`
	CollectionDate    time.Time           `json:"collectionDate" bson:"collectionDate"`
	QuantityCollected float64             `json:"quantityCollected" bson:"quantityCollected"`
	QualityGrade      QualityGrade        `json:"qualityGrade" bson:"qualityGrade"`
	QualityNotes      string              `json:"qualityNotes,omitempty" bson:"qualityNotes,omitempty"`
	PricePerKg        *float64            `json:"pricePerKg,omitempty" bson:"pricePerKg,omitempty"`
	TotalAmount       *float64            `json:"totalAmount,omitempty" bson:"totalAmount,omitempty"`
	ContainerType     ContainerType       `json:"containerType,omitempty" bson:"containerType,omitempty"`
	ContainerCount    *int                `json:"containerCount,omitempty" bson:"containerCount,omitempty"`
	ContainerIDs      []string            `json:"containerIds,omitempty" bson:"containerIds,omitempty"`
	Images            []CollectionImage   `json:"images" bson:"images"`
	Location          *CollectionLocation `json:"location,omitempty" bson:"location,omitempty"`
	Status            CollectionStatus    `json:"status" bson:"status"`
	ApprovedBy        string              `json:"approvedBy,omitempty" bson:"approvedBy,omitempty"`
	ApprovedAt        *time.Time          `json:"approvedAt,omitempty" bson:"approvedAt,omitempty"`
	PaymentDetails    *PaymentDetails     `json:"paymentDetails,omitempty" bson:"paymentDetails,omitempty"`
	CreatedAt         time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// CollectionCreate carries the multipart form fields of a new collection.
type CollectionCreate struct {
	FBOID             string       `json:"fboId"`
	TripID            string       `json:"tripId,omitempty"`
	QuantityCollected float64      `json:"quantityCollected"`
	QualityGrade      QualityGrade `json:"qualityGrade"`
	QualityNotes      string       `json:"qualityNotes,omitempty"`
	ContainerType     ContainerType `json:"containerType,omitempty"`
	ContainerCount    *int         `json:"containerCount,omitempty"`
	ContainerIDs      []string     `json:"containerIds,omitempty"`
	Latitude          *float64     `json:"latitude,omitempty"`
	Longitude         *float64     `json:"longitude,omitempty"`
}

// CollectionReview approves or rejects a pending collection.
type CollectionReview struct {
	Action       string        `json:"action"`
	QualityGrade *QualityGrade `json:"qualityGrade,omitempty"`
	PricePerKg   *float64      `json:"pricePerKg,omitempty"`
	Notes        string        `json:"notes,omitempty"`
}
