package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const CartStatusPending = "Pending"

// CartItem belongs to exactly one email for its whole lifetime.
// Status is forced to "Pending" at creation regardless of client input;
// the item disappears either by an owner/admin delete or as part of
// payment settlement.
type CartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email      string             `bson:"email" json:"email"`
	MenuItemID string             `bson:"menuItemId,omitempty" json:"menuItemId,omitempty"`
	Name       string             `bson:"name" json:"name"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	Price      float64            `bson:"price" json:"price"`
	Status     string             `bson:"status" json:"status"`
}
