package service

import (
	"context"
	"testing"

	"github.com/example/cravecurve/pkg/models"
	"github.com/example/cravecurve/pkg/repository"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newOrders(t *testing.T) *OrderService {
	t.Helper()
	store := repository.NewMemoryStore()
	return NewOrderService(repository.NewMemoryOrders(store), zap.NewNop())
}

func validOrderInput() PlaceOrderInput {
	return PlaceOrderInput{
		ProductID:    primitive.NewObjectID(),
		ProductName:  "Burger",
		ProductPrice: 5,
		ProductImage: "https://cdn/burger.jpg",
		UserDetails:  models.UserDetails{Name: "A", Address: "B", Phone: "C"},
	}
}

func TestPlaceOrderStartsPending(t *testing.T) {
	svc := newOrders(t)

	o, err := svc.Place(context.Background(), validOrderInput())
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusPending, o.Status)
	require.False(t, o.ID.IsZero())
	require.False(t, o.OrderDate.IsZero())
}

func TestPlaceOrderValidation(t *testing.T) {
	cases := map[string]func(*PlaceOrderInput){
		"zero product id": func(in *PlaceOrderInput) { in.ProductID = primitive.NilObjectID },
		"missing name":    func(in *PlaceOrderInput) { in.ProductName = "" },
		"missing image":   func(in *PlaceOrderInput) { in.ProductImage = "" },
		"zero price":      func(in *PlaceOrderInput) { in.ProductPrice = 0 },
		"missing buyer":   func(in *PlaceOrderInput) { in.UserDetails.Name = "" },
		"missing address": func(in *PlaceOrderInput) { in.UserDetails.Address = "" },
		"missing phone":   func(in *PlaceOrderInput) { in.UserDetails.Phone = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			svc := newOrders(t)
			in := validOrderInput()
			mutate(&in)
			_, err := svc.Place(context.Background(), in)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestSetStatusChangesOnlyStatus(t *testing.T) {
	svc := newOrders(t)
	ctx := context.Background()
	in := validOrderInput()

	placed, err := svc.Place(ctx, in)
	require.NoError(t, err)

	updated, err := svc.SetStatus(ctx, placed.ID, models.OrderStatusAccepted)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusAccepted, updated.Status)

	// The snapshot stays bit-identical to what was submitted.
	require.Equal(t, in.ProductID, updated.ProductID)
	require.Equal(t, in.ProductName, updated.ProductName)
	require.Equal(t, in.ProductPrice, updated.ProductPrice)
	require.Equal(t, in.ProductImage, updated.ProductImage)
	require.Equal(t, in.UserDetails, updated.UserDetails)
	require.Equal(t, placed.OrderDate, updated.OrderDate)
}

func TestSetStatusRejectsTerminalTransition(t *testing.T) {
	svc := newOrders(t)
	ctx := context.Background()

	placed, err := svc.Place(ctx, validOrderInput())
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, placed.ID, models.OrderStatusRejected)
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, placed.ID, models.OrderStatusAccepted)
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestSetStatusValidatesLiteral(t *testing.T) {
	svc := newOrders(t)
	ctx := context.Background()

	placed, err := svc.Place(ctx, validOrderInput())
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, placed.ID, models.OrderStatus("Shipped"))
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestSetStatusUnknownOrder(t *testing.T) {
	svc := newOrders(t)
	_, err := svc.SetStatus(context.Background(), primitive.NewObjectID(), models.OrderStatusAccepted)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListAll(t *testing.T) {
	svc := newOrders(t)
	ctx := context.Background()

	_, err := svc.Place(ctx, validOrderInput())
	require.NoError(t, err)
	_, err = svc.Place(ctx, validOrderInput())
	require.NoError(t, err)

	orders, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
}
