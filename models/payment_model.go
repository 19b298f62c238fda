package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is an append-only audit record; it is never mutated after insert.
type Payment struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserEmail     string               `bson:"user_email" json:"user_email"`
	Amount        float64              `bson:"amount" json:"amount"`
	TransactionID string               `bson:"transaction_id" json:"transaction_id"`
	ClassesID     []primitive.ObjectID `bson:"classes_id" json:"classes_id"`
	Date          time.Time            `bson:"date" json:"date"`
}
