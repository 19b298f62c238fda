package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yogamaster/yoga_master/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type recordingCartStore struct {
	cutoff  time.Time
	deleted int64
}

func (r *recordingCartStore) Insert(ctx context.Context, item *models.CartItem) (primitive.ObjectID, error) {
	panic("not used")
}
func (r *recordingCartStore) FindByClassAndEmail(ctx context.Context, classID primitive.ObjectID, email string) (*models.CartItem, error) {
	panic("not used")
}
func (r *recordingCartStore) FindByEmail(ctx context.Context, email string) ([]bson.M, error) {
	panic("not used")
}
func (r *recordingCartStore) DeleteByClassAndEmail(ctx context.Context, classID primitive.ObjectID, email string) (int64, error) {
	panic("not used")
}
func (r *recordingCartStore) DeleteByClassesAndEmail(ctx context.Context, classIDs []primitive.ObjectID, email string) (int64, error) {
	panic("not used")
}

func (r *recordingCartStore) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	r.cutoff = cutoff
	return r.deleted, nil
}

func TestPurgeStaleCartItemsUsesTTLCutoff(t *testing.T) {
	store := &recordingCartStore{deleted: 3}
	ttl := 14 * 24 * time.Hour

	PurgeStaleCartItems(store, ttl)()

	assert.WithinDuration(t, time.Now().Add(-ttl), store.cutoff, time.Minute)
}
