package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Class status moves pending -> approved/rejected by an admin, and back to
// pending whenever the owning instructor edits the class.
const (
	ClassStatusPending  = "pending"
	ClassStatusApproved = "approved"
	ClassStatusRejected = "rejected"
)

type Class struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Description     string             `bson:"description" json:"description"`
	Image           string             `bson:"image,omitempty" json:"image,omitempty"`
	InstructorName  string             `bson:"instructor_name" json:"instructor_name"`
	InstructorEmail string             `bson:"instructor_email" json:"instructor_email"`
	Status          string             `bson:"status" json:"status"`
	Reason          string             `bson:"reason,omitempty" json:"reason,omitempty"`
	Price           float64            `bson:"price" json:"price"`
	AvailableSeats  int                `bson:"available_seats" json:"available_seats"`
	TotalEnrolled   int                `bson:"total_enrolled" json:"total_enrolled"`
	VideoLink       string             `bson:"video_link,omitempty" json:"video_link,omitempty"`
	SubmittedAt     time.Time          `bson:"submitted_at" json:"submitted_at"`
}
