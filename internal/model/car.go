package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Car is a marketplace listing. UserID must reference an existing user at
// creation time and is immutable through the agent-gated mutation paths.
type Car struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Make      string             `bson:"make" json:"make"`
	Model     string             `bson:"model" json:"model"`
	Price     float64            `bson:"price" json:"price"`
	Color     string             `bson:"color" json:"color"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	CityID    primitive.ObjectID `bson:"city_id" json:"city_id"`
	KmsDriven int                `bson:"kms_driven" json:"kms_driven"`

	// Extended attributes, present only when the richer creation path
	// supplied them.
	Year             int       `bson:"year,omitempty" json:"year,omitempty"`
	FuelType         string    `bson:"fuel_type,omitempty" json:"fuel_type,omitempty"`
	TransmissionType string    `bson:"transmission_type,omitempty" json:"transmission_type,omitempty"`
	RegistrationNum  string    `bson:"registration_num,omitempty" json:"registration_num,omitempty"`
	ImageURL         string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updated_at"`
}

// CarDetails is the 1:1 supplementary record for a car, keyed by car_id
// with a unique index. Writes are upserts: an existing record is merged
// field by field, never replaced wholesale.
type CarDetails struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	CarID       primitive.ObjectID `bson:"car_id" json:"car_id"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Features    []string           `bson:"features,omitempty" json:"features,omitempty"`
	Accessories []string           `bson:"accessories,omitempty" json:"accessories,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
