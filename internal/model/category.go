package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category groups listings (e.g. "SUV", "Hatchback").
type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}

// SubCategory belongs to a category.
type SubCategory struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	CategoryID primitive.ObjectID `bson:"category_id" json:"category_id"`
}
