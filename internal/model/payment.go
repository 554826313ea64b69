package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is written exactly once at settlement and never mutated
// afterwards, except for CartsCleared: false means the post-insert
// bulk cart delete failed and the reconciler still owes a cleanup run.
type Payment struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string               `bson:"email" json:"email"`
	Price         float64              `bson:"price" json:"price"`
	TransactionID string               `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Date          time.Time            `bson:"date" json:"date"`
	Status        string               `bson:"status,omitempty" json:"status,omitempty"`
	MenuItemIDs   []primitive.ObjectID `bson:"menuItemIds" json:"menuItemIds"`
	CartIDs       []primitive.ObjectID `bson:"cartIds" json:"cartIds"`
	CartsCleared  bool                 `bson:"cartsCleared" json:"cartsCleared"`
}
