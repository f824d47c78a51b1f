package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the central identity document. The password field always holds a
// bcrypt hash after any write path completes; plaintext values can only
// exist as pre-migration legacy data and are upgraded on first login.
type User struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name      string              `bson:"name" json:"name"`
	Email     string              `bson:"email" json:"email"`
	Password  string              `bson:"password" json:"-"` // Omit password hash from JSON responses
	Phone     string              `bson:"phone,omitempty" json:"phone,omitempty"`
	RoleID    *primitive.ObjectID `bson:"role_id,omitempty" json:"role_id,omitempty"`
	CreatedAt time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time           `bson:"updated_at" json:"updated_at"`

	// Profile fields, managed through the /profile endpoints.
	FullName       string `bson:"full_name,omitempty" json:"full_name,omitempty"`
	Bio            string `bson:"bio,omitempty" json:"bio,omitempty"`
	ProfilePicture string `bson:"profile_picture,omitempty" json:"profile_picture,omitempty"`
}
