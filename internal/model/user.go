package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a portal account. PasswordHash is never serialized to JSON.
type User struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID       string             `json:"userId" bson:"userId"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	Phone        string             `json:"phone" bson:"phone"`
	Role         Role               `json:"role" bson:"role"`
	Status       Status             `json:"status" bson:"status"`
	EmployeeID   string             `json:"employeeId,omitempty" bson:"employeeId,omitempty"`
	ProfileImage string             `json:"profileImage,omitempty" bson:"profileImage,omitempty"`
	Permissions  []string           `json:"permissions" bson:"permissions"`
	Metadata     map[string]any     `json:"metadata" bson:"metadata"`
	PasswordHash string             `json:"-" bson:"password,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
	LastLogin    *time.Time         `json:"lastLogin,omitempty" bson:"lastLogin,omitempty"`
}

// UserCreate is the admin user-creation request body.
type UserCreate struct {
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone"`
	Role       Role           `json:"role"`
	Status     Status         `json:"status"`
	EmployeeID string         `json:"employeeId"`
	Password   string         `json:"password"`
	Metadata   map[string]any `json:"metadata"`
}

// UserLogin is the login request body. Role, when set, must match the account's role.
type UserLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role,omitempty"`
}

// UserUpdate holds the self-service profile fields a user may change.
type UserUpdate struct {
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`
}

// LoginResult is the payload of a successful login.
type LoginResult struct {
	User         *User  `json:"user"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"`
}
