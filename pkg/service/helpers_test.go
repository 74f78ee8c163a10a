package service

import (
	"context"
	"errors"

	"github.com/example/cravecurve/pkg/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errCacheMiss = errors.New("cache miss")

type fakeIngestor struct {
	url   string
	err   error
	calls int
}

func (f *fakeIngestor) Ingest(ctx context.Context, localPath string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

type fakeCache struct {
	byID        map[string]*models.Product
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{byID: make(map[string]*models.Product)}
}

func (f *fakeCache) CacheProduct(ctx context.Context, p *models.Product) error {
	cp := *p
	f.byID[p.ID.Hex()] = &cp
	return nil
}

func (f *fakeCache) GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	if p, ok := f.byID[id.Hex()]; ok {
		return p, nil
	}
	return nil, errCacheMiss
}

func (f *fakeCache) InvalidateProduct(ctx context.Context, id primitive.ObjectID) error {
	delete(f.byID, id.Hex())
	f.invalidated = append(f.invalidated, id.Hex())
	return nil
}
