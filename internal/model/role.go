package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Built-in role names. RoleUser is assigned by default on signup and is
// created lazily the first time it is referenced.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
	RoleAgent = "Agent"
)

// Role is a named permission label referenced by users. Name uniqueness is
// backed by a unique index on roles.name.
type Role struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
