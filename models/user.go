package models

import "time"

// RoleAdmin is the only role with write access to the dashboard API.
const RoleAdmin = "admin"

// User is a dashboard account.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"` // unique
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	FCMToken     string    `bson:"fcm_token,omitempty" json:"-"` // device token for admin pushes
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}
