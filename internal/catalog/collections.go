package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Het4705/chic-dashboard-haven/internal/media"
	"github.com/Het4705/chic-dashboard-haven/internal/models"
	"github.com/Het4705/chic-dashboard-haven/internal/store"
	"github.com/gosimple/slug"
)

// ErrCollectionNotFound is returned when a collection id does not exist.
var ErrCollectionNotFound = errors.New("collection not found")

// CollectionService is the typed repository over the 'collections'
// collection.
type CollectionService struct {
	db    store.Store
	media media.Uploader
}

func NewCollectionService(db store.Store, uploader media.Uploader) *CollectionService {
	return &CollectionService{db: db, media: uploader}
}

// CollectionInput is the payload for creating a collection. The image
// URL points at an already-uploaded asset; new collections start with
// zero items.
type CollectionInput struct {
	Name        string `json:"name" binding:"required"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Color       string `json:"color" binding:"required,oneof=purple indigo amber red blue green"`
}

// CollectionUpdate is a partial update. Item counts are never set
// directly here; they move only through product bookkeeping.
type CollectionUpdate struct {
	Name        *string `json:"name"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
	Color       *string `json:"color" binding:"omitempty,oneof=purple indigo amber red blue green"`
}

// Create inserts the collection. The image was uploaded before this
// call, so a failed document write compensates by best-effort deleting
// the fresh upload; if that also fails, the orphan is logged and left.
func (s *CollectionService) Create(ctx context.Context, in CollectionInput) (string, error) {
	col := models.Collection{
		Name:        in.Name,
		Slug:        slug.Make(in.Name),
		Image:       in.Image,
		Description: in.Description,
		Items:       0,
		Color:       in.Color,
	}

	id, err := s.db.Create(ctx, store.Collections, col)
	if err != nil {
		if in.Image != "" {
			if cleanupErr := s.media.Delete(ctx, in.Image); cleanupErr != nil {
				log.Printf("Failed to clean up image after document creation error: %v", cleanupErr)
			}
		}
		return "", fmt.Errorf("failed to create collection: %w", err)
	}
	return id, nil
}

// Update applies the partial update, keeping the slug in step with a
// renamed collection. When a freshly uploaded image was part of the
// update and the write fails, the upload is compensated the same way as
// on create.
func (s *CollectionService) Update(ctx context.Context, id string, upd CollectionUpdate) error {
	fields := map[string]interface{}{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
		fields["slug"] = slug.Make(*upd.Name)
	}
	if upd.Image != nil {
		fields["image"] = *upd.Image
	}
	if upd.Description != nil {
		fields["description"] = *upd.Description
	}
	if upd.Color != nil {
		fields["color"] = *upd.Color
	}

	if err := s.db.Update(ctx, store.Collections, id, fields); err != nil {
		if upd.Image != nil && *upd.Image != "" {
			if cleanupErr := s.media.Delete(ctx, *upd.Image); cleanupErr != nil {
				log.Printf("Failed to clean up image after document update error: %v", cleanupErr)
			}
		}
		if errors.Is(err, store.ErrNotFound) {
			return ErrCollectionNotFound
		}
		return fmt.Errorf("failed to update collection: %w", err)
	}
	return nil
}

// Delete removes the document first, then best-effort purges its image.
// Leaving a document with a dead image link is recoverable by
// re-upload; deleting media a live document still references is not,
// so the order is never reversed.
func (s *CollectionService) Delete(ctx context.Context, id string) error {
	var col models.Collection
	if err := s.db.Get(ctx, store.Collections, id, &col); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCollectionNotFound
		}
		return fmt.Errorf("failed to read collection: %w", err)
	}

	if err := s.db.Delete(ctx, store.Collections, id); err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}

	if col.Image != "" {
		if err := s.media.Delete(ctx, col.Image); err != nil {
			log.Printf("Failed to delete image after document deletion: %v", err)
		}
	}
	return nil
}

// Get returns one collection by id.
func (s *CollectionService) Get(ctx context.Context, id string) (*models.Collection, error) {
	var col models.Collection
	if err := s.db.Get(ctx, store.Collections, id, &col); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCollectionNotFound
		}
		return nil, err
	}
	return &col, nil
}

// List returns every collection.
func (s *CollectionService) List(ctx context.Context) ([]models.Collection, error) {
	var cols []models.Collection
	if err := s.db.Find(ctx, store.Collections, store.Query{}, &cols); err != nil {
		return nil, err
	}
	return cols, nil
}
