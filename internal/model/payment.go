package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentBillingPeriod struct {
	StartDate time.Time `json:"startDate" bson:"startDate"`
	EndDate   time.Time `json:"endDate" bson:"endDate"`
}

type PaymentDeduction struct {
	Type   string  `json:"type" bson:"type"`
	Amount float64 `json:"amount" bson:"amount"`
	Reason string  `json:"reason" bson:"reason"`
}

// Payment settles one or more approved collections for an FBO.
type Payment struct {
	ID                   primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	PaymentID            string               `json:"paymentId" bson:"paymentId"`
	FBOID                string               `json:"fboId" bson:"fboId"`
	FBOName              string               `json:"fboName" bson:"fboName"`
	BillingPeriod        PaymentBillingPeriod `json:"billingPeriod" bson:"billingPeriod"`
	CollectionIDs        []string             `json:"collectionIds" bson:"collectionIds"`
	TotalQuantity        float64              `json:"totalQuantity" bson:"totalQuantity"`
	AveragePricePerKg    float64              `json:"averagePricePerKg" bson:"averagePricePerKg"`
	TotalAmount          float64              `json:"totalAmount" bson:"totalAmount"`
	Deductions           []PaymentDeduction   `json:"deductions,omitempty" bson:"deductions,omitempty"`
	NetAmount            float64              `json:"netAmount" bson:"netAmount"`
	PaymentMethod        PaymentMethod        `json:"paymentMethod" bson:"paymentMethod"`
	TransactionReference string               `json:"transactionReference,omitempty" bson:"transactionReference,omitempty"`
	PaymentDate          *time.Time           `json:"paymentDate,omitempty" bson:"paymentDate,omitempty"`
	BankDetails          *FBOBankDetails      `json:"bankDetails,omitempty" bson:"bankDetails,omitempty"`
	Status               PaymentStatus        `json:"status" bson:"status"`
	ProcessedBy          string               `json:"processedBy,omitempty" bson:"processedBy,omitempty"`
	Notes                string               `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt            time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt            time.Time            `json:"updatedAt" bson:"updatedAt"`
}

type PaymentCreate struct {
	FBOID         string               `json:"fboId"`
	BillingPeriod PaymentBillingPeriod `json:"billingPeriod"`
	CollectionIDs []string             `json:"collectionIds"`
	PaymentMethod PaymentMethod        `json:"paymentMethod"`
	Deductions    []PaymentDeduction   `json:"deductions,omitempty"`
	Notes         string               `json:"notes,omitempty"`
}

type PaymentUpdate struct {
	Status               PaymentStatus `json:"status"`
	TransactionReference string        `json:"transactionReference,omitempty"`
	Notes                string        `json:"notes,omitempty"`
}
