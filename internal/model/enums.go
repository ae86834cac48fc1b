package model

import "strings"

// Role identifies which route group a user may access.
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleEnrollmentTeam Role = "enrollment_team"
	RoleCollectionTeam Role = "collection_team"
	RoleFBO            Role = "fbo"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEnrollmentTeam, RoleCollectionTeam, RoleFBO:
		return true
	}
	return false
}

// Status is the lifecycle state shared by users and FBOs.
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
	StatusPending   Status = "pending"
	StatusVerified  Status = "verified"
)

// QualityGrade classifies collected oil quality.
type QualityGrade string

const (
	GradeA        QualityGrade = "A"
	GradeB        QualityGrade = "B"
	GradeC        QualityGrade = "C"
	GradeRejected QualityGrade = "Rejected"
)

// CollectionStatus tracks a collection entry through review and payout.
type CollectionStatus string

const (
	CollectionPending  CollectionStatus = "pending"
	CollectionApproved CollectionStatus = "approved"
	CollectionRejected CollectionStatus = "rejected"
	CollectionPaid     CollectionStatus = "paid"
)

// TripStatus tracks a collector trip.
type TripStatus string

const (
	TripPlanned    TripStatus = "planned"
	TripInProgress TripStatus = "in_progress"
	TripCompleted  TripStatus = "completed"
	TripCancelled  TripStatus = "cancelled"
)

// PaymentStatus tracks a payment or a collection's payment details.
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentPartial    PaymentStatus = "partial"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentFailed     PaymentStatus = "failed"
)

// NotificationType categorizes in-app notifications.
type NotificationType string

const (
	NotifCollectionApproved NotificationType = "collection_approved"
	NotifPaymentProcessed   NotificationType = "payment_processed"
	NotifNewFBO             NotificationType = "new_fbo"
	NotifTripAssigned       NotificationType = "trip_assigned"
)

// BusinessType classifies an FBO's line of business.
type BusinessType string

const (
	BusinessRestaurant   BusinessType = "restaurant"
	BusinessHotel        BusinessType = "hotel"
	BusinessCloudKitchen BusinessType = "cloud_kitchen"
	BusinessMess         BusinessType = "mess"
	BusinessCanteen      BusinessType = "canteen"
	BusinessCatering     BusinessType = "catering"
	BusinessManufacturer BusinessType = "manufacturer"
	BusinessStreetVendor BusinessType = "street_vendor"
	BusinessOther        BusinessType = "other"
)

// ContainerType classifies the containers used during a collection.
type ContainerType string

const (
	ContainerDrum     ContainerType = "Drum"
	ContainerJerryCan ContainerType = "Jerry Can"
	ContainerIBCTank  ContainerType = "IBC Tank"
)

// PaymentMethod is how a payout was made.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "Cash"
	MethodBankTransfer PaymentMethod = "Bank Transfer"
	MethodUPI          PaymentMethod = "UPI"
	MethodCheque       PaymentMethod = "Cheque"
)

// NormalizePaymentMethod maps case-insensitive client input onto the canonical values.
func NormalizePaymentMethod(v string) PaymentMethod {
	switch {
	case strings.EqualFold(v, "bank transfer"):
		return MethodBankTransfer
	case strings.EqualFold(v, "cash"):
		return MethodCash
	case strings.EqualFold(v, "upi"):
		return MethodUPI
	case strings.EqualFold(v, "cheque"):
		return MethodCheque
	}
	return PaymentMethod(v)
}

// CollectionFrequency is how often an FBO expects pickups.
type CollectionFrequency string

const (
	FrequencyWeekly   CollectionFrequency = "weekly"
	FrequencyBiWeekly CollectionFrequency = "bi-weekly"
	FrequencyMonthly  CollectionFrequency = "monthly"
)
