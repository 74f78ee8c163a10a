package repository

import (
	"context"
	"time"

	"github.com/example/cravecurve/pkg/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepository struct {
	client   *mongo.Client
	database *mongo.Database
	config   *config.MongoDBConfig
}

func NewMongoRepository(cfg *config.MongoDBConfig) (*MongoRepository, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}

	return &MongoRepository{
		client:   client,
		database: client.Database(cfg.Database),
		config:   cfg,
	}, nil
}

func (m *MongoRepository) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

func (m *MongoRepository) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *MongoRepository) Products() ProductRepository {
	return &mongoProducts{coll: m.database.Collection("products")}
}

func (m *MongoRepository) Cart() CartRepository {
	return &mongoCart{coll: m.database.Collection("cart")}
}

func (m *MongoRepository) Orders() OrderRepository {
	return &mongoOrders{coll: m.database.Collection("orders")}
}

func (m *MongoRepository) Comments() CommentRepository {
	return &mongoComments{coll: m.database.Collection("comments")}
}
