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

type UserStore interface {
	Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, user *models.User) (int64, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type userStore struct {
	collection *mongo.Collection
}

func NewUserStore(collection *mongo.Collection) UserStore {
	return &userStore{collection: collection}
}

func (s *userStore) Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	count, err := s.collection.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		return primitive.NilObjectID, err
	}
	if count > 0 {
		return primitive.NilObjectID, ErrDuplicateEmail
	}

	user.ID = primitive.NewObjectID()
	if user.Role == "" {
		user.Role = models.RoleStudent
	}
	user.CreatedAt = time.Now()

	if _, err := s.collection.InsertOne(ctx, user); err != nil {
		return primitive.NilObjectID, err
	}
	return user.ID, nil
}

func (s *userStore) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *userStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *userStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *userStore) UpdateByID(ctx context.Context, id primitive.ObjectID, user *models.User) (int64, error) {
	update := bson.M{"$set": bson.M{
		"name":      user.Name,
		"role":      user.Role,
		"gender":    user.Gender,
		"phone":     user.Phone,
		"address":   user.Address,
		"about":     user.About,
		"photo_url": user.Photo,
		"skills":    user.Skills,
	}}

	res, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *userStore) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *userStore) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
