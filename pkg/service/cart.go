package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/cravecurve/pkg/models"
	"github.com/example/cravecurve/pkg/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CartService owns cart rows. It reads (never writes) catalog data to
// resolve products.
type CartService struct {
	cart     repository.CartRepository
	products repository.ProductRepository
	logger   *zap.Logger
}

func NewCartService(cart repository.CartRepository, products repository.ProductRepository, logger *zap.Logger) *CartService {
	return &CartService{cart: cart, products: products, logger: logger}
}

// CartRow is a cart item joined with its product's display data. Product is
// nil when the referenced product no longer exists.
type CartRow struct {
	models.CartItem
	Product *models.Product `json:"product,omitempty"`
}

// AddItem resolves the product first, then merges into an existing row or
// creates one. The returned bool reports whether a new row was created.
func (s *CartService) AddItem(ctx context.Context, productID primitive.ObjectID, quantity int64) (*models.CartItem, bool, error) {
	if quantity < 0 {
		return nil, false, fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}
	if quantity == 0 {
		quantity = 1
	}

	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, false, err
	}

	item, created, err := s.cart.AddOrIncrement(ctx, productID, quantity)
	if err != nil {
		return nil, false, err
	}

	s.logger.Info("Cart item upserted",
		zap.String("product_id", productID.Hex()),
		zap.Int64("quantity", item.Quantity),
		zap.Bool("created", created))
	return item, created, nil
}

// List joins each row with its product. A dangling product reference does
// not fail the listing; the row comes back without a product.
func (s *CartService) List(ctx context.Context) ([]CartRow, error) {
	items, err := s.cart.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]CartRow, 0, len(items))
	for _, item := range items {
		row := CartRow{CartItem: item}
		p, err := s.products.GetByID(ctx, item.ProductID)
		switch {
		case err == nil:
			row.Product = p
		case !errors.Is(err, repository.ErrNotFound):
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *CartService) RemoveByProductID(ctx context.Context, productID primitive.ObjectID) error {
	return s.cart.RemoveByProduct(ctx, productID)
}
