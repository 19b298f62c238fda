package stores

import (
	"context"
	"errors"
	"time"

	"github.com/yogamaster/yoga_master/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ClassStore interface {
	Insert(ctx context.Context, class *models.Class) (primitive.ObjectID, error)
	FindApproved(ctx context.Context) ([]models.Class, error)
	FindAll(ctx context.Context) ([]models.Class, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Class, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Class, error)
	FindByInstructor(ctx context.Context, email string) ([]models.Class, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status, reason string) (int64, error)
	UpdateDetails(ctx context.Context, id primitive.ObjectID, class *models.Class) (int64, error)
	ApplyEnrollmentTotals(ctx context.Context, ids []primitive.ObjectID, totalEnrolled, availableSeats int) (*models.UpdateOutcome, error)
}

type classStore struct {
	collection *mongo.Collection
}

func NewClassStore(collection *mongo.Collection) ClassStore {
	return &classStore{collection: collection}
}

func (s *classStore) Insert(ctx context.Context, class *models.Class) (primitive.ObjectID, error) {
	class.ID = primitive.NewObjectID()
	class.Status = models.ClassStatusPending
	class.SubmittedAt = time.Now()

	if _, err := s.collection.InsertOne(ctx, class); err != nil {
		return primitive.NilObjectID, err
	}
	return class.ID, nil
}

func (s *classStore) FindApproved(ctx context.Context) ([]models.Class, error) {
	return s.findMany(ctx, bson.M{"status": models.ClassStatusApproved})
}

func (s *classStore) FindAll(ctx context.Context) ([]models.Class, error) {
	return s.findMany(ctx, bson.M{})
}

func (s *classStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Class, error) {
	var class models.Class
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&class)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &class, nil
}

func (s *classStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Class, error) {
	return s.findMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (s *classStore) FindByInstructor(ctx context.Context, email string) ([]models.Class, error) {
	return s.findMany(ctx, bson.M{"instructor_email": email})
}

func (s *classStore) SetStatus(ctx context.Context, id primitive.ObjectID, status, reason string) (int64, error) {
	update := bson.M{"$set": bson.M{"status": status, "reason": reason}}

	res, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// UpdateDetails rewrites the editable fields and drops the class back to
// pending so an admin has to re-approve it.
func (s *classStore) UpdateDetails(ctx context.Context, id primitive.ObjectID, class *models.Class) (int64, error) {
	update := bson.M{"$set": bson.M{
		"name":            class.Name,
		"description":     class.Description,
		"image":           class.Image,
		"price":           class.Price,
		"available_seats": class.AvailableSeats,
		"video_link":      class.VideoLink,
		"status":          models.ClassStatusPending,
	}}

	res, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// ApplyEnrollmentTotals sets the same enrollment and seat totals on every
// matched class in one UpdateMany. The checkout workflow is the only caller
// and the only component allowed to touch these two fields.
func (s *classStore) ApplyEnrollmentTotals(ctx context.Context, ids []primitive.ObjectID, totalEnrolled, availableSeats int) (*models.UpdateOutcome, error) {
	filter := bson.M{"_id": bson.M{"$in": ids}}
	update := bson.M{"$set": bson.M{
		"total_enrolled":  totalEnrolled,
		"available_seats": availableSeats,
	}}

	res, err := s.collection.UpdateMany(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, err
	}
	return &models.UpdateOutcome{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}, nil
}

func (s *classStore) findMany(ctx context.Context, filter bson.M) ([]models.Class, error) {
	cursor, err := s.collection.Find(ctx, filter)
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
