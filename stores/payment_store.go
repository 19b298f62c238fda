package stores

import (
	"context"

	"github.com/yogamaster/yoga_master/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PaymentStore interface {
	Insert(ctx context.Context, payment *models.Payment) (primitive.ObjectID, error)
	ExistsByTransaction(ctx context.Context, transactionID string) (bool, error)
	FindByEmail(ctx context.Context, email string) ([]models.Payment, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
}

type paymentStore struct {
	collection *mongo.Collection
}

func NewPaymentStore(collection *mongo.Collection) PaymentStore {
	return &paymentStore{collection: collection}
}

func (s *paymentStore) Insert(ctx context.Context, payment *models.Payment) (primitive.ObjectID, error) {
	payment.ID = primitive.NewObjectID()

	if _, err := s.collection.InsertOne(ctx, payment); err != nil {
		return primitive.NilObjectID, err
	}
	return payment.ID, nil
}

func (s *paymentStore) ExistsByTransaction(ctx context.Context, transactionID string) (bool, error) {
	count, err := s.collection.CountDocuments(ctx, bson.M{"transaction_id": transactionID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *paymentStore) FindByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := s.collection.Find(ctx, bson.M{"user_email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *paymentStore) CountByEmail(ctx context.Context, email string) (int64, error) {
	return s.collection.CountDocuments(ctx, bson.M{"user_email": email})
}
