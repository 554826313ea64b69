package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review is immutable once created — no update or delete operation exists.
type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Details string             `bson:"details" json:"details"`
	Rating  float64            `bson:"rating" json:"rating"`
}
