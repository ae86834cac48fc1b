package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SupportMessage is a vendor help ticket.
type SupportMessage struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	TicketID   string             `json:"ticketId" bson:"ticketId"`
	UserID     string             `json:"userId" bson:"userId"`
	FBOID      string             `json:"fboId" bson:"fboId"`
	Subject    string             `json:"subject" bson:"subject"`
	Message    string             `json:"message" bson:"message"`
	Status     string             `json:"status" bson:"status"`
	Response   string             `json:"response,omitempty" bson:"response,omitempty"`
	ResolvedAt *time.Time         `json:"resolvedAt,omitempty" bson:"resolvedAt,omitempty"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}

type SupportMessageCreate struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}
