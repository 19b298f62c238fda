package stores

import (
	"context"

	"github.com/yogamaster/yoga_master/database"
	"github.com/yogamaster/yoga_master/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const popularLimit = 6

// ReportStore serves the read-only composite views. All of them are pure
// reads over current store state; staleness under concurrent writes is
// acceptable.
type ReportStore interface {
	PopularClasses(ctx context.Context) ([]models.Class, error)
	PopularInstructors(ctx context.Context) ([]models.PopularInstructor, error)
	AdminStats(ctx context.Context) (*models.AdminStats, error)
	EnrolledClasses(ctx context.Context, email string) ([]models.EnrolledClass, error)
}

type reportStore struct {
	classes     *mongo.Collection
	users       *mongo.Collection
	enrollments *mongo.Collection
}

func NewReportStore(classes, users, enrollments *mongo.Collection) ReportStore {
	return &reportStore{classes: classes, users: users, enrollments: enrollments}
}

func (s *reportStore) PopularClasses(ctx context.Context) ([]models.Class, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "total_enrolled", Value: -1}}).
		SetLimit(popularLimit)

	cursor, err := s.classes.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var classes []models.Class
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

// PopularInstructors groups classes by instructor email, sums enrollment per
// instructor and joins the user profile. Rows whose email matches no profile
// are kept with instructor unset rather than dropped by the join.
func (s *reportStore) PopularInstructors(ctx context.Context) ([]models.PopularInstructor, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$instructor_email"},
			{Key: "total_enrolled", Value: bson.M{"$sum": "$total_enrolled"}},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         database.CollUsers,
			"localField":   "_id",
			"foreignField": "email",
			"as":           "instructor",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$instructor",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":            1,
			"total_enrolled": 1,
			"instructor":     1,
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "total_enrolled", Value: -1}}}},
		{{Key: "$limit", Value: popularLimit}},
	}

	cursor, err := s.classes.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.PopularInstructor
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// AdminStats runs five independent counts. There is no snapshot across them,
// so the totals can disagree briefly under concurrent writes.
func (s *reportStore) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	var stats models.AdminStats
	var err error

	if stats.ApprovedClasses, err = s.classes.CountDocuments(ctx, bson.M{"status": models.ClassStatusApproved}); err != nil {
		return nil, err
	}
	if stats.PendingClasses, err = s.classes.CountDocuments(ctx, bson.M{"status": models.ClassStatusPending}); err != nil {
		return nil, err
	}
	if stats.Instructors, err = s.users.CountDocuments(ctx, bson.M{"role": models.RoleInstructor}); err != nil {
		return nil, err
	}
	if stats.TotalClasses, err = s.classes.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if stats.TotalEnrollments, err = s.enrollments.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}

	return &stats, nil
}

// EnrolledClasses flattens the user's enrollments into one row per class,
// joined to the class document and the owning instructor's profile.
func (s *reportStore) EnrolledClasses(ctx context.Context, email string) ([]models.EnrolledClass, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_email": email}}},
		{{Key: "$unwind", Value: "$classes_id"}},
		{{Key: "$lookup", Value: bson.M{
			"from":         database.CollClasses,
			"localField":   "classes_id",
			"foreignField": "_id",
			"as":           "class",
		}}},
		{{Key: "$unwind", Value: "$class"}},
		{{Key: "$lookup", Value: bson.M{
			"from":         database.CollUsers,
			"localField":   "class.instructor_email",
			"foreignField": "email",
			"as":           "instructor",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$instructor",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":        0,
			"class":      1,
			"instructor": 1,
		}}},
	}

	cursor, err := s.enrollments.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.EnrolledClass
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
