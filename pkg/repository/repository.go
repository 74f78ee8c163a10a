package repository

import (
	"context"
	"errors"

	"github.com/example/cravecurve/pkg/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when a referenced id does not resolve.
var ErrNotFound = errors.New("not found")

// ProductUpdate carries a partial-field merge; nil fields are left untouched.
type ProductUpdate struct {
	ProductName    *string
	Price          *float64
	Description    *string
	Category       *string
	RestaurantName *string
	ImageURL       *string
}

type ProductRepository interface {
	Create(ctx context.Context, p *models.Product) error
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Update(ctx context.Context, id primitive.ObjectID, upd ProductUpdate) (*models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// CartRepository enforces the one-row-per-product invariant.
// AddOrIncrement reports whether a new row was created.
type CartRepository interface {
	AddOrIncrement(ctx context.Context, productID primitive.ObjectID, quantity int64) (*models.CartItem, bool, error)
	List(ctx context.Context) ([]models.CartItem, error)
	RemoveByProduct(ctx context.Context, productID primitive.ObjectID) error
}

type OrderRepository interface {
	Create(ctx context.Context, o *models.Order) error
	List(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error)
}

type CommentRepository interface {
	Create(ctx context.Context, c *models.Comment) error
	ListByProduct(ctx context.Context, productID primitive.ObjectID) ([]models.Comment, error)
}
