package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/cravecurve/pkg/models"
	"github.com/example/cravecurve/pkg/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CommentService owns per-product comment threads.
type CommentService struct {
	comments repository.CommentRepository
	logger   *zap.Logger
}

func NewCommentService(comments repository.CommentRepository, logger *zap.Logger) *CommentService {
	return &CommentService{comments: comments, logger: logger}
}

func (s *CommentService) Add(ctx context.Context, productID primitive.ObjectID, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}

	c := &models.Comment{
		ProductID: productID,
		Text:      text,
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CommentService) ListByProduct(ctx context.Context, productID primitive.ObjectID) ([]models.Comment, error) {
	return s.comments.ListByProduct(ctx, productID)
}
