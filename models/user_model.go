package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Role     string             `bson:"role" json:"role"`
	Password string             `bson:"password,omitempty" json:"-"`

	Gender  string   `bson:"gender,omitempty" json:"gender,omitempty"`
	Phone   string   `bson:"phone,omitempty" json:"phone,omitempty"`
	Address string   `bson:"address,omitempty" json:"address,omitempty"`
	About   string   `bson:"about,omitempty" json:"about,omitempty"`
	Photo   string   `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	Skills  []string `bson:"skills,omitempty" json:"skills,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)
