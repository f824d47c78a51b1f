package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// State is the root of the geographic hierarchy.
type State struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
}

// City belongs to a state.
type City struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name    string             `bson:"name" json:"name"`
	StateID primitive.ObjectID `bson:"state_id" json:"state_id"`
}

// Area belongs to a city. Reads embed the parent city when it still
// exists; a dangling reference is tolerated and the embed is omitted.
type Area struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   string             `bson:"name" json:"name"`
	CityID primitive.ObjectID `bson:"city_id" json:"city_id"`
}
