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

func newCart(t *testing.T) (*CartService, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	svc := NewCartService(repository.NewMemoryCart(store), store, zap.NewNop())
	return svc, store
}

func seedProduct(t *testing.T, store *repository.MemoryStore) *models.Product {
	t.Helper()
	p := &models.Product{
		ProductName:    "Burger",
		Price:          5,
		Description:    "d",
		Category:       "fast food",
		RestaurantName: "R",
		ImageURL:       "https://cdn/burger.jpg",
	}
	require.NoError(t, store.Create(context.Background(), p))
	return p
}

func TestAddItemMergesIntoSingleRow(t *testing.T) {
	svc, store := newCart(t)
	ctx := context.Background()
	p := seedProduct(t, store)

	item, created, err := svc.AddItem(ctx, p.ID, 1)
	require.NoError(t, err)
	require.True(t, created)
	require.EqualValues(t, 1, item.Quantity)

	item, created, err = svc.AddItem(ctx, p.ID, 2)
	require.NoError(t, err)
	require.False(t, created)
	require.EqualValues(t, 3, item.Quantity)

	rows, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1, "repeated adds must never produce duplicate rows")
	require.EqualValues(t, 3, rows[0].Quantity)
	require.NotNil(t, rows[0].Product)
	require.Equal(t, "Burger", rows[0].Product.ProductName)
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc, _ := newCart(t)
	_, _, err := svc.AddItem(context.Background(), primitive.NewObjectID(), 1)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAddItemQuantityDefaults(t *testing.T) {
	svc, store := newCart(t)
	ctx := context.Background()
	p := seedProduct(t, store)

	item, _, err := svc.AddItem(ctx, p.ID, 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, item.Quantity, "zero quantity defaults to 1")

	_, _, err = svc.AddItem(ctx, p.ID, -2)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestRemoveByProductID(t *testing.T) {
	svc, store := newCart(t)
	ctx := context.Background()
	p := seedProduct(t, store)

	_, _, err := svc.AddItem(ctx, p.ID, 1)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveByProductID(ctx, p.ID))

	rows, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, rows)

	require.ErrorIs(t, svc.RemoveByProductID(ctx, p.ID), repository.ErrNotFound)
}

func TestListToleratesDanglingProductReference(t *testing.T) {
	svc, store := newCart(t)
	ctx := context.Background()
	p := seedProduct(t, store)

	_, _, err := svc.AddItem(ctx, p.ID, 2)
	require.NoError(t, err)

	// Product vanishes after the row was created; the weak reference dangles.
	require.NoError(t, store.Delete(ctx, p.ID))

	rows, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Nil(t, rows[0].Product)
	require.Equal(t, p.ID, rows[0].ProductID)
}
