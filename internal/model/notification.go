package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationData struct {
	CollectionID string   `json:"collectionId,omitempty" bson:"collectionId,omitempty"`
	Amount       *float64 `json:"amount,omitempty" bson:"amount,omitempty"`
}

// Notification is an in-app message for one user.
type Notification struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	NotificationID string             `json:"notificationId" bson:"notificationId"`
	UserID         string             `json:"userId" bson:"userId"`
	Type           NotificationType   `json:"type" bson:"type"`
	Title          string             `json:"title" bson:"title"`
	Message        string             `json:"message" bson:"message"`
	Data           *NotificationData  `json:"data,omitempty" bson:"data,omitempty"`
	IsRead         bool               `json:"isRead" bson:"isRead"`
	ReadAt         *time.Time         `json:"readAt,omitempty" bson:"readAt,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
}
