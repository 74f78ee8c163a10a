package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/cravecurve/pkg/repository"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const fakeImageURL = "https://res.cloudinary.com/demo/image/upload/v1/burger.jpg"

func newCatalog(t *testing.T) (*CatalogService, *repository.MemoryStore, *fakeIngestor) {
	t.Helper()
	store := repository.NewMemoryStore()
	ing := &fakeIngestor{url: fakeImageURL}
	svc := NewCatalogService(store, ing, nil, zap.NewNop())
	return svc, store, ing
}

func validInput() ProductInput {
	return ProductInput{
		ProductName:    "Burger",
		Price:          5,
		Description:    "Cheesy smash burger",
		Category:       "fast food",
		RestaurantName: "Crave Curve",
	}
}

func TestCreateProductValidatesBeforeUpload(t *testing.T) {
	cases := map[string]func(*ProductInput, *string){
		"missing name":        func(in *ProductInput, _ *string) { in.ProductName = "" },
		"missing description": func(in *ProductInput, _ *string) { in.Description = "" },
		"missing category":    func(in *ProductInput, _ *string) { in.Category = "" },
		"missing restaurant":  func(in *ProductInput, _ *string) { in.RestaurantName = "" },
		"zero price":          func(in *ProductInput, _ *string) { in.Price = 0 },
		"negative price":      func(in *ProductInput, _ *string) { in.Price = -1 },
		"missing image":       func(_ *ProductInput, staged *string) { *staged = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			svc, store, ing := newCatalog(t)
			in := validInput()
			staged := "/tmp/staged.jpg"
			mutate(&in, &staged)

			_, err := svc.Create(context.Background(), in, staged)
			require.ErrorIs(t, err, ErrInvalidInput)
			require.Zero(t, ing.calls, "invalid input must never trigger an upload")

			products, err := store.List(context.Background())
			require.NoError(t, err)
			require.Empty(t, products)
		})
	}
}

func TestCreateProductStoresRemoteURL(t *testing.T) {
	svc, store, ing := newCatalog(t)

	p, err := svc.Create(context.Background(), validInput(), "/tmp/staged.jpg")
	require.NoError(t, err)
	require.Equal(t, 1, ing.calls)
	require.Equal(t, fakeImageURL, p.ImageURL)
	require.True(t, strings.HasPrefix(p.ImageURL, "https://"), "stored image URL must never be a local path")
	require.False(t, p.ID.IsZero())

	stored, err := store.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.Equal(t, fakeImageURL, stored.ImageURL)
}

func TestCreateProductUploadFailureStoresNothing(t *testing.T) {
	svc, store, ing := newCatalog(t)
	ing.err = errors.New("remote store unavailable")

	_, err := svc.Create(context.Background(), validInput(), "/tmp/staged.jpg")
	require.Error(t, err)

	products, err := store.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, products, "no partial product may be stored after an upload failure")
}

func TestUpdateProductPartialMerge(t *testing.T) {
	svc, _, _ := newCatalog(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, validInput(), "/tmp/staged.jpg")
	require.NoError(t, err)

	newPrice := 7.5
	updated, err := svc.Update(ctx, p.ID, repository.ProductUpdate{Price: &newPrice})
	require.NoError(t, err)
	require.Equal(t, 7.5, updated.Price)
	require.Equal(t, p.ProductName, updated.ProductName)
	require.Equal(t, p.ImageURL, updated.ImageURL)

	badPrice := -3.0
	_, err = svc.Update(ctx, p.ID, repository.ProductUpdate{Price: &badPrice})
	require.ErrorIs(t, err, ErrInvalidInput)

	empty := ""
	_, err = svc.Update(ctx, p.ID, repository.ProductUpdate{ProductName: &empty})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateAndDeleteUnknownProduct(t *testing.T) {
	svc, _, _ := newCatalog(t)
	ctx := context.Background()
	unknown := primitive.NewObjectID()

	name := "Pizza"
	_, err := svc.Update(ctx, unknown, repository.ProductUpdate{ProductName: &name})
	require.ErrorIs(t, err, repository.ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, unknown), repository.ErrNotFound)
}

func TestGetByIDReadThroughCache(t *testing.T) {
	store := repository.NewMemoryStore()
	cache := newFakeCache()
	svc := NewCatalogService(store, &fakeIngestor{url: fakeImageURL}, cache, zap.NewNop())
	ctx := context.Background()

	p, err := svc.Create(ctx, validInput(), "/tmp/staged.jpg")
	require.NoError(t, err)

	// First lookup fills the cache, second one hits it.
	_, err = svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Contains(t, cache.byID, p.ID.Hex())

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, p.ProductName, got.ProductName)

	// Writes invalidate.
	newPrice := 9.0
	_, err = svc.Update(ctx, p.ID, repository.ProductUpdate{Price: &newPrice})
	require.NoError(t, err)
	require.NotContains(t, cache.byID, p.ID.Hex())

	_, err = svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, p.ID))
	require.NotContains(t, cache.byID, p.ID.Hex())
}
