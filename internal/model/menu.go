package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// MenuItem is written only by admins and read by everyone.
type MenuItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Category string             `bson:"category" json:"category"`
	Price    float64            `bson:"price" json:"price"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Recipe   string             `bson:"recipe,omitempty" json:"recipe,omitempty"`
}
