package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is the root catalog entity. ImageURL always points at the remote
// media store; a product is never persisted with a local path.
type Product struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ProductName    string             `json:"productName" bson:"productName"`
	Price          float64            `json:"price" bson:"price"`
	Description    string             `json:"description" bson:"description"`
	Category       string             `json:"category" bson:"category"`
	RestaurantName string             `json:"restaurantName" bson:"restaurantName"`
	ImageURL       string             `json:"imageUrl" bson:"imageUrl"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}
