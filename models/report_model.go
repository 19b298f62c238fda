package models

// AdminStats carries five independent counts. Each is computed by its own
// query, so the numbers may be momentarily inconsistent under concurrent
// writes.
type AdminStats struct {
	ApprovedClasses  int64 `json:"approved_classes"`
	PendingClasses   int64 `json:"pending_classes"`
	Instructors      int64 `json:"instructors"`
	TotalClasses     int64 `json:"total_classes"`
	TotalEnrollments int64 `json:"total_enrollments"`
}

// PopularInstructor is one row of the popular-instructors view. Instructor
// stays nil when no user profile matches the grouped email; those rows are
// kept rather than filtered out.
type PopularInstructor struct {
	InstructorEmail string `bson:"_id" json:"instructor_email"`
	TotalEnrolled   int    `bson:"total_enrolled" json:"total_enrolled"`
	Instructor      *User  `bson:"instructor,omitempty" json:"instructor,omitempty"`
}

// EnrolledClass is one row of the enrolled-classes view: a class the user
// paid for, joined to the owning instructor's profile.
type EnrolledClass struct {
	Class      Class `bson:"class" json:"class"`
	Instructor *User `bson:"instructor,omitempty" json:"instructor,omitempty"`
}
