package stores

import (
	"context"
	"errors"
	"time"

	"github.com/yogamaster/yoga_master/database"
	"github.com/yogamaster/yoga_master/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CartStore interface {
	Insert(ctx context.Context, item *models.CartItem) (primitive.ObjectID, error)
	FindByClassAndEmail(ctx context.Context, classID primitive.ObjectID, email string) (*models.CartItem, error)
	FindByEmail(ctx context.Context, email string) ([]bson.M, error)
	DeleteByClassAndEmail(ctx context.Context, classID primitive.ObjectID, email string) (int64, error)
	DeleteByClassesAndEmail(ctx context.Context, classIDs []primitive.ObjectID, email string) (int64, error)
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type cartStore struct {
	collection *mongo.Collection
}

func NewCartStore(collection *mongo.Collection) CartStore {
	return &cartStore{collection: collection}
}

func (s *cartStore) Insert(ctx context.Context, item *models.CartItem) (primitive.ObjectID, error) {
	item.ID = primitive.NewObjectID()
	item.CreatedAt = time.Now()

	if _, err := s.collection.InsertOne(ctx, item); err != nil {
		return primitive.NilObjectID, err
	}
	return item.ID, nil
}

func (s *cartStore) FindByClassAndEmail(ctx context.Context, classID primitive.ObjectID, email string) (*models.CartItem, error) {
	var item models.CartItem
	err := s.collection.FindOne(ctx, bson.M{"class_id": classID, "user_email": email}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByEmail returns the user's cart joined to the class documents so the
// client can render name, price and seats without extra round trips.
func (s *cartStore) FindByEmail(ctx context.Context, email string) ([]bson.M, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_email": email}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         database.CollClasses,
			"localField":   "class_id",
			"foreignField": "_id",
			"as":           "class",
		}}},
		{{Key: "$unwind", Value: "$class"}},
		{{Key: "$project", Value: bson.M{
			"_id":        1,
			"class_id":   1,
			"user_email": 1,
			"created_at": 1,
			"class":      1,
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
	}

	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []bson.M
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *cartStore) DeleteByClassAndEmail(ctx context.Context, classID primitive.ObjectID, email string) (int64, error) {
	res, err := s.collection.DeleteOne(ctx, bson.M{"class_id": classID, "user_email": email})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *cartStore) DeleteByClassesAndEmail(ctx context.Context, classIDs []primitive.ObjectID, email string) (int64, error) {
	filter := bson.M{"class_id": bson.M{"$in": classIDs}, "user_email": email}

	res, err := s.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteCreatedBefore backs the janitor job that clears abandoned carts.
func (s *cartStore) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.collection.DeleteMany(ctx, bson.M{"created_at": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
