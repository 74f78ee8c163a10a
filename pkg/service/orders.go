package service

import (
	"context"
	"fmt"

	"github.com/example/cravecurve/pkg/models"
	"github.com/example/cravecurve/pkg/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// OrderService owns the order lifecycle: Pending -> Accepted | Rejected.
type OrderService struct {
	orders repository.OrderRepository
	logger *zap.Logger
}

func NewOrderService(orders repository.OrderRepository, logger *zap.Logger) *OrderService {
	return &OrderService{orders: orders, logger: logger}
}

// PlaceOrderInput carries the snapshot fields as submitted by the buyer.
// They are trusted as-is; no re-validation against the live product happens.
type PlaceOrderInput struct {
	ProductID    primitive.ObjectID
	ProductName  string
	ProductPrice float64
	ProductImage string
	UserDetails  models.UserDetails
}

func (s *OrderService) Place(ctx context.Context, in PlaceOrderInput) (*models.Order, error) {
	if in.ProductID.IsZero() {
		return nil, fmt.Errorf("%w: productId is required", ErrInvalidInput)
	}
	if in.ProductName == "" || in.ProductImage == "" {
		return nil, fmt.Errorf("%w: productName and productImage are required", ErrInvalidInput)
	}
	if in.ProductPrice <= 0 {
		return nil, fmt.Errorf("%w: productPrice must be a positive number", ErrInvalidInput)
	}
	if in.UserDetails.Name == "" || in.UserDetails.Address == "" || in.UserDetails.Phone == "" {
		return nil, fmt.Errorf("%w: userDetails name, address and phone are required", ErrInvalidInput)
	}

	o := &models.Order{
		ProductID:    in.ProductID,
		ProductName:  in.ProductName,
		ProductPrice: in.ProductPrice,
		ProductImage: in.ProductImage,
		UserDetails:  in.UserDetails,
		Status:       models.OrderStatusPending,
	}
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}

	s.logger.Info("Order placed",
		zap.String("id", o.ID.Hex()),
		zap.String("product_id", o.ProductID.Hex()))
	return o, nil
}

func (s *OrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	return s.orders.List(ctx)
}

// SetStatus overwrites status only. Accepted and Rejected are terminal:
// transitioning out of them is rejected.
func (s *OrderService) SetStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: status must be one of Pending, Accepted or Rejected", ErrInvalidInput)
	}

	current, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status.Terminal() {
		return nil, fmt.Errorf("%w: order is already %s", ErrInvalidState, current.Status)
	}

	o, err := s.orders.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Order status updated",
		zap.String("id", id.Hex()),
		zap.String("status", string(status)))
	return o, nil
}
