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

var (
	// ErrInvalidInput marks missing or malformed required input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidState marks an operation the entity's current state forbids.
	ErrInvalidState = errors.New("invalid state")
)

// MediaIngestor is the upload pipeline; see pkg/media.
type MediaIngestor interface {
	Ingest(ctx context.Context, localPath string) (string, error)
}

// ProductCache is an optional read-through cache for product lookups.
type ProductCache interface {
	CacheProduct(ctx context.Context, p *models.Product) error
	GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	InvalidateProduct(ctx context.Context, id primitive.ObjectID) error
}

// CatalogService owns Product records.
type CatalogService struct {
	repo   repository.ProductRepository
	media  MediaIngestor
	cache  ProductCache // nil disables caching
	logger *zap.Logger
}

func NewCatalogService(repo repository.ProductRepository, media MediaIngestor, cache ProductCache, logger *zap.Logger) *CatalogService {
	return &CatalogService{repo: repo, media: media, cache: cache, logger: logger}
}

// ProductInput bundles the metadata fields of a new product.
type ProductInput struct {
	ProductName    string
	Price          float64
	Description    string
	Category       string
	RestaurantName string
}

// Create validates first, uploads second, persists last: a validation error
// never triggers an upload, and an upload failure never stores a partial
// product.
func (s *CatalogService) Create(ctx context.Context, in ProductInput, stagedImagePath string) (*models.Product, error) {
	if in.ProductName == "" || in.Description == "" || in.Category == "" || in.RestaurantName == "" || stagedImagePath == "" {
		return nil, fmt.Errorf("%w: all fields, including the image, are required", ErrInvalidInput)
	}
	if in.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be a positive number", ErrInvalidInput)
	}

	imageURL, err := s.media.Ingest(ctx, stagedImagePath)
	if err != nil {
		return nil, err
	}

	p := &models.Product{
		ProductName:    in.ProductName,
		Price:          in.Price,
		Description:    in.Description,
		Category:       in.Category,
		RestaurantName: in.RestaurantName,
		ImageURL:       imageURL,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("Product created",
		zap.String("id", p.ID.Hex()),
		zap.String("name", p.ProductName))
	return p, nil
}

func (s *CatalogService) List(ctx context.Context) ([]models.Product, error) {
	return s.repo.List(ctx)
}

func (s *CatalogService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	if s.cache != nil {
		if p, err := s.cache.GetProduct(ctx, id); err == nil {
			return p, nil
		}
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.CacheProduct(ctx, p); err != nil {
			s.logger.Warn("Failed to cache product", zap.String("id", id.Hex()), zap.Error(err))
		}
	}
	return p, nil
}

// Update applies a partial merge, re-validating any constrained field that
// was supplied.
func (s *CatalogService) Update(ctx context.Context, id primitive.ObjectID, upd repository.ProductUpdate) (*models.Product, error) {
	if upd.ProductName != nil && *upd.ProductName == "" {
		return nil, fmt.Errorf("%w: productName must not be empty", ErrInvalidInput)
	}
	if upd.Price != nil && *upd.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be a positive number", ErrInvalidInput)
	}
	if upd.Description != nil && *upd.Description == "" {
		return nil, fmt.Errorf("%w: description must not be empty", ErrInvalidInput)
	}
	if upd.Category != nil && *upd.Category == "" {
		return nil, fmt.Errorf("%w: category must not be empty", ErrInvalidInput)
	}
	if upd.RestaurantName != nil && *upd.RestaurantName == "" {
		return nil, fmt.Errorf("%w: restaurantName must not be empty", ErrInvalidInput)
	}
	if upd.ImageURL != nil && *upd.ImageURL == "" {
		return nil, fmt.Errorf("%w: imageUrl must not be empty", ErrInvalidInput)
	}

	p, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return p, nil
}

func (s *CatalogService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	s.logger.Info("Product deleted", zap.String("id", id.Hex()))
	return nil
}

func (s *CatalogService) invalidate(ctx context.Context, id primitive.ObjectID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateProduct(ctx, id); err != nil {
		s.logger.Warn("Failed to invalidate product cache", zap.String("id", id.Hex()), zap.Error(err))
	}
}
