package stores

import (
	"context"
	"errors"
	"time"

	"github.com/yogamaster/yoga_master/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ApplicationStore interface {
	Insert(ctx context.Context, application *models.InstructorApplication) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) (*models.InstructorApplication, error)
}

type applicationStore struct {
	collection *mongo.Collection
}

func NewApplicationStore(collection *mongo.Collection) ApplicationStore {
	return &applicationStore{collection: collection}
}

func (s *applicationStore) Insert(ctx context.Context, application *models.InstructorApplication) (primitive.ObjectID, error) {
	application.ID = primitive.NewObjectID()
	application.CreatedAt = time.Now()

	if _, err := s.collection.InsertOne(ctx, application); err != nil {
		return primitive.NilObjectID, err
	}
	return application.ID, nil
}

func (s *applicationStore) FindByEmail(ctx context.Context, email string) (*models.InstructorApplication, error) {
	var application models.InstructorApplication
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&application)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &application, nil
}
