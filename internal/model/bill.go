package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BillCollection is one collection line of a generated bill.
type BillCollection struct {
	ID      string    `json:"id" bson:"id"`
	Date    time.Time `json:"date" bson:"date"`
	Volume  float64   `json:"volume" bson:"volume"`
	Quality string    `json:"quality" bson:"quality"`
	Rate    float64   `json:"rate" bson:"rate"`
	Amount  float64   `json:"amount" bson:"amount"`
	Paid    float64   `json:"paid" bson:"paid"`
	Balance float64   `json:"balance" bson:"balance"`
}

// Bill is a statement over a date range of an FBO's collections.
type Bill struct {
	ID              primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	BillID          string               `json:"billId" bson:"billId"`
	BillNumber      string               `json:"billNumber" bson:"billNumber"`
	BillDate        time.Time            `json:"billDate" bson:"billDate"`
	FBOID           string               `json:"fboId" bson:"fboId"`
	FBOName         string               `json:"fboName" bson:"fboName"`
	FBOAddress      string               `json:"fboAddress,omitempty" bson:"fboAddress,omitempty"`
	DateFrom        string               `json:"dateFrom" bson:"dateFrom"`
	DateTo          string               `json:"dateTo" bson:"dateTo"`
	Collections     []BillCollection     `json:"collections" bson:"collections"`
	TotalVolume     float64              `json:"totalVolume" bson:"totalVolume"`
	TotalAmount     float64              `json:"totalAmount" bson:"totalAmount"`
	TotalPaid       float64              `json:"totalPaid" bson:"totalPaid"`
	TotalBalance    float64              `json:"totalBalance" bson:"totalBalance"`
	CompanySettings map[string]any       `json:"companySettings,omitempty" bson:"companySettings,omitempty"`
	Status          string               `json:"status" bson:"status"`
	PaymentHistory  []PaymentTransaction `json:"paymentHistory,omitempty" bson:"paymentHistory,omitempty"`
	CreatedBy       string               `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedByName   string               `json:"createdByName,omitempty" bson:"createdByName,omitempty"`
	CreatedAt       time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt" bson:"updatedAt"`
}

type BillCreate struct {
	BillNumber      string           `json:"billNumber"`
	BillDate        time.Time        `json:"billDate"`
	FBOID           string           `json:"fboId"`
	FBOName         string           `json:"fboName"`
	FBOAddress      string           `json:"fboAddress,omitempty"`
	DateFrom        string           `json:"dateFrom"`
	DateTo          string           `json:"dateTo"`
	Collections     []BillCollection `json:"collections"`
	TotalVolume     float64          `json:"totalVolume"`
	TotalAmount     float64          `json:"totalAmount"`
	TotalPaid       float64          `json:"totalPaid"`
	TotalBalance    float64          `json:"totalBalance"`
	CompanySettings map[string]any   `json:"companySettings,omitempty"`
	Status          string           `json:"status,omitempty"`
}
