package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FBOContact struct {
	Name           string `json:"name" bson:"name"`
	Designation    string `json:"designation,omitempty" bson:"designation,omitempty"`
	Phone          string `json:"phone" bson:"phone"`
	AlternatePhone string `json:"alternatePhone,omitempty" bson:"alternatePhone,omitempty"`
	Email          string `json:"email" bson:"email"`
}

type FBOAddress struct {
	Street    string   `json:"street" bson:"street"`
	Area      string   `json:"area,omitempty" bson:"area,omitempty"`
	City      string   `json:"city" bson:"city"`
	State     string   `json:"state,omitempty" bson:"state,omitempty"`
	Pincode   string   `json:"pincode" bson:"pincode"`
	Landmark  string   `json:"landmark,omitempty" bson:"landmark,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty" bson:"longitude,omitempty"`
	MapLink   string   `json:"mapLink,omitempty" bson:"mapLink,omitempty"`
}

type FBOBusinessDetails struct {
	Type              BusinessType `json:"type" bson:"type"`
	GSTNumber         string       `json:"gstNumber" bson:"gstNumber"`
	FSSAINumber       string       `json:"fssaiNumber" bson:"fssaiNumber"`
	KitchenCode       string       `json:"kitchenCode,omitempty" bson:"kitchenCode,omitempty"`
	PANNumber         string       `json:"panNumber,omitempty" bson:"panNumber,omitempty"`
	AadharNumber      string       `json:"aadharNumber,omitempty" bson:"aadharNumber,omitempty"`
	EstablishmentYear *int         `json:"establishmentYear,omitempty" bson:"establishmentYear,omitempty"`
	SeatingCapacity   *int         `json:"seatingCapacity,omitempty" bson:"seatingCapacity,omitempty"`
	AvgDailyFootfall  *int         `json:"avgDailyFootfall,omitempty" bson:"avgDailyFootfall,omitempty"`
	FBOType           string       `json:"fboType,omitempty" bson:"fboType,omitempty"`
}

type FBOOilDetails struct {
	EstimatedMonthlyUCO float64             `json:"estimatedMonthlyUCO" bson:"estimatedMonthlyUCO"`
	CurrentStorage      string              `json:"currentStorage" bson:"currentStorage"`
	StorageCapacity     float64             `json:"storageCapacity" bson:"storageCapacity"`
	CollectionFrequency CollectionFrequency `json:"collectionFrequency" bson:"collectionFrequency"`
	PricePerKg          *float64            `json:"pricePerKg,omitempty" bson:"pricePerKg,omitempty"`
	DisposalProducts    []string            `json:"disposalProducts" bson:"disposalProducts"`
}

type FBOBankDetails struct {
	AccountHolderName string `json:"accountHolderName" bson:"accountHolderName"`
	AccountNumber     string `json:"accountNumber" bson:"accountNumber"`
	BankName          string `json:"bankName" bson:"bankName"`
	IFSCCode          string `json:"ifscCode" bson:"ifscCode"`
	Branch            string `json:"branch" bson:"branch"`
	AccountType       string `json:"accountType" bson:"accountType"`
}

type FBODocument struct {
	Type       string    `json:"type" bson:"type"`
	URL        string    `json:"url" bson:"url"`
	UploadedAt time.Time `json:"uploadedAt" bson:"uploadedAt"`
}

type FBOEnrollmentDetails struct {
	EnrolledBy     string     `json:"enrolledBy" bson:"enrolledBy"`
	EnrolledByName string     `json:"enrolledByName,omitempty" bson:"enrolledByName,omitempty"`
	EnrolledByRole Role       `json:"enrolledByRole,omitempty" bson:"enrolledByRole,omitempty"`
	EnrolledAt     time.Time  `json:"enrolledAt" bson:"enrolledAt"`
	VerifiedBy     string     `json:"verifiedBy,omitempty" bson:"verifiedBy,omitempty"`
	VerifiedAt     *time.Time `json:"verifiedAt,omitempty" bson:"verifiedAt,omitempty"`
	Status         Status     `json:"status" bson:"status"`
}

// FBO is a food business operator enrolled for oil collection.
type FBO struct {
	ID                     primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	FBOID                  string               `json:"fboId" bson:"fboId"`
	BusinessName           string               `json:"businessName" bson:"businessName"`
	ContactPerson          FBOContact           `json:"contactPerson" bson:"contactPerson"`
	Address                FBOAddress           `json:"address" bson:"address"`
	BusinessDetails        FBOBusinessDetails   `json:"businessDetails" bson:"businessDetails"`
	OilDetails             FBOOilDetails        `json:"oilDetails" bson:"oilDetails"`
	BankDetails            *FBOBankDetails      `json:"bankDetails,omitempty" bson:"bankDetails,omitempty"`
	Documents              []FBODocument        `json:"documents" bson:"documents"`
	EnrollmentDetails      FBOEnrollmentDetails `json:"enrollmentDetails" bson:"enrollmentDetails"`
	AssignedCollectors     []string             `json:"assignedCollectors" bson:"assignedCollectors"`
	LastCollectionDate     *time.Time           `json:"lastCollectionDate,omitempty" bson:"lastCollectionDate,omitempty"`
	TotalCollections       int                  `json:"totalCollections" bson:"totalCollections"`
	TotalQuantityCollected float64              `json:"totalQuantityCollected" bson:"totalQuantityCollected"`
	TotalAmountPaid        float64              `json:"totalAmountPaid" bson:"totalAmountPaid"`
	Status                 Status               `json:"status" bson:"status"`
	CreatedAt              time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt              time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// FBOCreate is the enrollment request body.
type FBOCreate struct {
	BusinessName    string             `json:"businessName"`
	ContactPerson   FBOContact         `json:"contactPerson"`
	Address         FBOAddress         `json:"address"`
	BusinessDetails FBOBusinessDetails `json:"businessDetails"`
	OilDetails      FBOOilDetails      `json:"oilDetails"`
	BankDetails     *FBOBankDetails    `json:"bankDetails,omitempty"`
	Status          Status             `json:"status,omitempty"`
	Documents       []FBODocument      `json:"documents,omitempty"`
}
