// Package catalog holds the product and collection repositories,
// including the item-count bookkeeping that keeps Collection.Items in
// step with live product references, and the media cleanup that keeps
// the media store free of orphaned files.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Het4705/chic-dashboard-haven/internal/media"
	"github.com/Het4705/chic-dashboard-haven/internal/models"
	"github.com/Het4705/chic-dashboard-haven/internal/store"
)

// ErrProductNotFound is returned when a product id does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductService is the typed repository over the 'products' collection.
type ProductService struct {
	db    store.Store
	media media.Uploader
}

func NewProductService(db store.Store, uploader media.Uploader) *ProductService {
	return &ProductService{db: db, media: uploader}
}

// ProductInput is the payload for creating a product. Rating and review
// count are not accepted from the caller; new products start at zero.
type ProductInput struct {
	Name            string              `json:"name" binding:"required"`
	Price           float64             `json:"price" binding:"gte=0"`
	Category        string              `json:"category" binding:"required"`
	Description     string              `json:"description"`
	Material        string              `json:"material"`
	Stock           int                 `json:"stock" binding:"gte=0"`
	Gender          models.Gender       `json:"gender" binding:"required,oneof=male female unisex"`
	Images          []string            `json:"images" binding:"max=5"`
	VideoURL        string              `json:"videoUrl"`
	FeaturedProduct bool                `json:"featuredProduct"`
	CollectionID    string              `json:"collectionId"`
	Discount        *models.Discount    `json:"discount,omitempty"`
	Size            []models.SizeOption `json:"size"`
}

// ProductUpdate is a partial update. A nil field is left untouched; an
// explicit empty CollectionID clears the membership.
type ProductUpdate struct {
	Name            *string              `json:"name"`
	Price           *float64             `json:"price" binding:"omitempty,gte=0"`
	Category        *string              `json:"category"`
	Description     *string              `json:"description"`
	Material        *string              `json:"material"`
	Stock           *int                 `json:"stock" binding:"omitempty,gte=0"`
	Gender          *models.Gender       `json:"gender" binding:"omitempty,oneof=male female unisex"`
	Images          *[]string            `json:"images" binding:"omitempty,max=5"`
	VideoURL        *string              `json:"videoUrl"`
	FeaturedProduct *bool                `json:"featuredProduct"`
	CollectionID    *string              `json:"collectionId"`
	Discount        *models.Discount     `json:"discount"`
	Size            *[]models.SizeOption `json:"size"`
}

// Create inserts the product and, when it references a collection,
// increments that collection's item count. A missing collection is a
// soft failure: the product stays created and the count is untouched.
func (s *ProductService) Create(ctx context.Context, in ProductInput) (string, error) {
	product := models.Product{
		Name:            in.Name,
		Price:           in.Price,
		Category:        in.Category,
		Description:     in.Description,
		Material:        in.Material,
		Stock:           in.Stock,
		Gender:          in.Gender,
		Images:          in.Images,
		VideoURL:        in.VideoURL,
		FeaturedProduct: in.FeaturedProduct,
		CollectionID:    in.CollectionID,
		Discount:        in.Discount,
		Size:            in.Size,
		Rating:          0,
		ReviewCount:     0,
	}

	id, err := s.db.Create(ctx, store.Products, product)
	if err != nil {
		return "", fmt.Errorf("failed to create product: %w", err)
	}

	if in.CollectionID != "" {
		if err := s.adjustItems(ctx, in.CollectionID, +1); err != nil {
			return id, err
		}
	}
	return id, nil
}

// Update applies the partial update. The previous collection reference
// is read fresh from the store, never trusted from caller state; when it
// changes, the old collection's count is decremented (clamped at zero)
// and the new one's incremented, in that order.
func (s *ProductService) Update(ctx context.Context, id string, upd ProductUpdate) error {
	var current models.Product
	if err := s.db.Get(ctx, store.Products, id, &current); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to read product: %w", err)
	}

	if upd.CollectionID != nil && *upd.CollectionID != current.CollectionID {
		if current.CollectionID != "" {
			if err := s.adjustItems(ctx, current.CollectionID, -1); err != nil {
				return err
			}
		}
		if *upd.CollectionID != "" {
			if err := s.adjustItems(ctx, *upd.CollectionID, +1); err != nil {
				return err
			}
		}
	}

	fields := map[string]interface{}{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.Price != nil {
		fields["price"] = *upd.Price
	}
	if upd.Category != nil {
		fields["category"] = *upd.Category
	}
	if upd.Description != nil {
		fields["description"] = *upd.Description
	}
	if upd.Material != nil {
		fields["material"] = *upd.Material
	}
	if upd.Stock != nil {
		fields["stock"] = *upd.Stock
	}
	if upd.Gender != nil {
		fields["gender"] = *upd.Gender
	}
	if upd.Images != nil {
		fields["images"] = *upd.Images
	}
	if upd.VideoURL != nil {
		fields["videoUrl"] = *upd.VideoURL
	}
	if upd.FeaturedProduct != nil {
		fields["featuredProduct"] = *upd.FeaturedProduct
	}
	if upd.CollectionID != nil {
		fields["collectionId"] = *upd.CollectionID
	}
	if upd.Discount != nil {
		fields["discount"] = *upd.Discount
	}
	if upd.Size != nil {
		fields["size"] = *upd.Size
	}

	if err := s.db.Update(ctx, store.Products, id, fields); err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

// Delete removes the product document first, then best-effort fixes the
// owning collection's count and purges the product's images. Count and
// media failures are logged and never roll back the completed deletion.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	var product models.Product
	if err := s.db.Get(ctx, store.Products, id, &product); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to read product: %w", err)
	}

	if err := s.db.Delete(ctx, store.Products, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if product.CollectionID != "" {
		if err := s.adjustItems(ctx, product.CollectionID, -1); err != nil {
			log.Printf("Failed to update collection count after product deletion: %v", err)
		}
	}

	// One delete call per image, regardless of individual failures.
	for _, imageURL := range product.Images {
		if err := s.media.Delete(ctx, imageURL); err != nil {
			log.Printf("Failed to delete image %s after document deletion: %v", imageURL, err)
		}
	}
	return nil
}

// adjustItems applies a read-modify-write delta to a collection's item
// count. Decrements are clamped: a count already at zero stays at zero.
// A missing collection is a silent no-op.
//
// The read-then-write here races with concurrent writers, and the store
// offers no atomic increment; concurrent adds to the same collection can
// lose a count. Accepted as-is.
func (s *ProductService) adjustItems(ctx context.Context, collectionID string, delta int) error {
	var col models.Collection
	if err := s.db.Get(ctx, store.Collections, collectionID, &col); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to read collection %s: %w", collectionID, err)
	}

	if delta < 0 && col.Items <= 0 {
		return nil
	}

	fields := map[string]interface{}{"items": col.Items + delta}
	if err := s.db.Update(ctx, store.Collections, collectionID, fields); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to update collection %s item count: %w", collectionID, err)
	}
	return nil
}

// Get returns one product by id.
func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := s.db.Get(ctx, store.Products, id, &product); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// List returns every product, optionally filtered by category.
func (s *ProductService) List(ctx context.Context, category string) ([]models.Product, error) {
	q := store.Query{}
	if category != "" {
		q.Filters = append(q.Filters, store.Eq("category", category))
	}
	var products []models.Product
	if err := s.db.Find(ctx, store.Products, q, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Featured returns the products flagged for the storefront spotlight.
func (s *ProductService) Featured(ctx context.Context) ([]models.Product, error) {
	q := store.Query{Filters: []store.Filter{store.Eq("featuredProduct", true)}}
	var products []models.Product
	if err := s.db.Find(ctx, store.Products, q, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Top returns the limit products with the highest review counts.
func (s *ProductService) Top(ctx context.Context, limit int64) ([]models.Product, error) {
	q := store.Query{Sort: store.Desc("reviewCount"), Limit: limit}
	var products []models.Product
	if err := s.db.Find(ctx, store.Products, q, &products); err != nil {
		return nil, err
	}
	return products, nil
}
