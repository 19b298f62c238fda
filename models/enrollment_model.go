package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Enrollment is created exactly once per successful checkout; append-only.
type Enrollment struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserEmail     string               `bson:"user_email" json:"user_email"`
	ClassesID     []primitive.ObjectID `bson:"classes_id" json:"classes_id"`
	TransactionID string               `bson:"transaction_id" json:"transaction_id"`
	CreatedAt     time.Time            `bson:"created_at" json:"created_at"`
}
