package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "Pending"
	OrderStatusAccepted OrderStatus = "Accepted"
	OrderStatusRejected OrderStatus = "Rejected"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusAccepted, OrderStatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further status transition is allowed.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusAccepted || s == OrderStatusRejected
}

// UserDetails is embedded buyer data, required in full at order time.
type UserDetails struct {
	Name    string `json:"name" bson:"name"`
	Address string `json:"address" bson:"address"`
	Phone   string `json:"phone" bson:"phone"`
}

// Order snapshots product display fields at placement so later catalog edits
// or deletions do not corrupt history. Only Status may change afterwards.
type Order struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ProductID    primitive.ObjectID `json:"productId" bson:"productId"`
	ProductName  string             `json:"productName" bson:"productName"`
	ProductPrice float64            `json:"productPrice" bson:"productPrice"`
	ProductImage string             `json:"productImage" bson:"productImage"`
	UserDetails  UserDetails        `json:"userDetails" bson:"userDetails"`
	OrderDate    time.Time          `json:"orderDate" bson:"orderDate"`
	Status       OrderStatus        `json:"status" bson:"status"`
}
