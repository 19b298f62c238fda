package stores

import (
	"context"
	"time"

	"github.com/yogamaster/yoga_master/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type EnrollmentStore interface {
	Insert(ctx context.Context, enrollment *models.Enrollment) (primitive.ObjectID, error)
}

type enrollmentStore struct {
	collection *mongo.Collection
}

func NewEnrollmentStore(collection *mongo.Collection) EnrollmentStore {
	return &enrollmentStore{collection: collection}
}

func (s *enrollmentStore) Insert(ctx context.Context, enrollment *models.Enrollment) (primitive.ObjectID, error) {
	enrollment.ID = primitive.NewObjectID()
	enrollment.CreatedAt = time.Now()

	if _, err := s.collection.InsertOne(ctx, enrollment); err != nil {
		return primitive.NilObjectID, err
	}
	return enrollment.ID, nil
}
