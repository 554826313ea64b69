package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking records a table reservation owned by a single email.
type Booking struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email  string             `bson:"email" json:"email"`
	Name   string             `bson:"name,omitempty" json:"name,omitempty"`
	Phone  string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Date   string             `bson:"date" json:"date"`
	Time   string             `bson:"time,omitempty" json:"time,omitempty"`
	Guests int                `bson:"guests,omitempty" json:"guests,omitempty"`
}
