package models

import "time"

// OpsAdmin is an operations-dashboard user.
type OpsAdmin struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	CreatedBy    string    `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
