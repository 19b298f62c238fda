package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is ephemeral: it exists between add-to-cart and checkout or
// removal, and the janitor job purges entries that were never checked out.
type CartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClassID   primitive.ObjectID `bson:"class_id" json:"class_id"`
	UserEmail string             `bson:"user_email" json:"user_email"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
