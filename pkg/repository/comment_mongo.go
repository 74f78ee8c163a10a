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

type mongoComments struct {
	coll *mongo.Collection
}

var _ CommentRepository = (*mongoComments)(nil)

func (r *mongoComments) Create(ctx context.Context, c *models.Comment) error {
	c.CreatedAt = time.Now()
	res, err := r.coll.InsertOne(ctx, c)
	if err != nil {
		return err
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoComments) ListByProduct(ctx context.Context, productID primitive.ObjectID) ([]models.Comment, error) {
	filter := bson.M{"productId": productID}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	comments := make([]models.Comment, 0)
	if err = cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
