package repository

import (
	"context"
	"time"

	"github.com/example/cravecurve/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoCart struct {
	coll *mongo.Collection
}

var _ CartRepository = (*mongoCart)(nil)

// AddOrIncrement is a single atomic upsert: concurrent adds of the same
// product can never produce two rows.
func (r *mongoCart) AddOrIncrement(ctx context.Context, productID primitive.ObjectID, quantity int64) (*models.CartItem, bool, error) {
	filter := bson.M{"productId": productID}
	update := bson.M{
		"$inc":         bson.M{"quantity": quantity},
		"$setOnInsert": bson.M{"addedAt": time.Now()},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, false, err
	}
	created := res.UpsertedCount > 0

	var item models.CartItem
	if err := r.coll.FindOne(ctx, filter).Decode(&item); err != nil {
		return nil, created, err
	}
	return &item, created, nil
}

func (r *mongoCart) List(ctx context.Context) ([]models.CartItem, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "addedAt", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.CartItem, 0)
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mongoCart) RemoveByProduct(ctx context.Context, productID primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"productId": productID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
