// Package reels is the typed repository over the 'reels' collection.
package reels

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Het4705/chic-dashboard-haven/internal/catalog"
	"github.com/Het4705/chic-dashboard-haven/internal/models"
	"github.com/Het4705/chic-dashboard-haven/internal/store"
)

// Service is the reel repository. It leans on the product service to
// denormalize display fields at creation time.
type Service struct {
	db       store.Store
	products *catalog.ProductService
}

func NewService(db store.Store, products *catalog.ProductService) *Service {
	return &Service{db: db, products: products}
}

// ReelInput is the payload for creating a reel. Title, description and
// price are not accepted: they are copied from the linked product.
type ReelInput struct {
	Src       string `json:"src" binding:"required"`
	Thumbnail string `json:"thumbnail"`
	ProductID string `json:"productId" binding:"required"`
	Featured  bool   `json:"featured"`
}

// Create inserts a reel with the linked product's title, description
// and price frozen in. The product must exist; a reel without its
// product is meaningless.
func (s *Service) Create(ctx context.Context, in ReelInput) (string, error) {
	product, err := s.products.Get(ctx, in.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return "", catalog.ErrProductNotFound
		}
		return "", fmt.Errorf("failed to read linked product: %w", err)
	}

	reel := models.Reel{
		Src:         in.Src,
		Thumbnail:   in.Thumbnail,
		ProductID:   in.ProductID,
		Title:       product.Name,
		Description: product.Description,
		Price:       strconv.FormatFloat(product.Price, 'f', 2, 64),
		Featured:    in.Featured,
	}

	id, err := s.db.Create(ctx, store.Reels, reel)
	if err != nil {
		return "", fmt.Errorf("failed to create reel: %w", err)
	}
	return id, nil
}

// List returns every reel, optionally only the featured ones.
func (s *Service) List(ctx context.Context, featuredOnly bool) ([]models.Reel, error) {
	q := store.Query{}
	if featuredOnly {
		q.Filters = append(q.Filters, store.Eq("featured", true))
	}
	var all []models.Reel
	if err := s.db.Find(ctx, store.Reels, q, &all); err != nil {
		return nil, err
	}
	return all, nil
}
