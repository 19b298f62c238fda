package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InstructorApplication struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Experience string             `bson:"experience" json:"experience"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
