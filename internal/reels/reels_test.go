package reels

import (
	"context"
	"io"
	"testing"

	"github.com/Het4705/chic-dashboard-haven/internal/catalog"
	"github.com/Het4705/chic-dashboard-haven/internal/models"
	"github.com/Het4705/chic-dashboard-haven/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopMedia struct{}

func (nopMedia) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	return "https://cdn.example.com/" + filename, nil
}

func (nopMedia) Delete(ctx context.Context, publicURL string) error { return nil }

func newTestService(t *testing.T) (*Service, *catalog.ProductService) {
	t.Helper()
	db := store.NewMemory()
	products := catalog.NewProductService(db, nopMedia{})
	return NewService(db, products), products
}

func TestCreateReelDenormalizesProduct(t *testing.T) {
	svc, products := newTestService(t)
	ctx := context.Background()

	productID, err := products.Create(ctx, catalog.ProductInput{
		Name:        "Linen Shirt",
		Price:       49.9,
		Category:    "shirts",
		Description: "Breathable summer wear",
		Gender:      models.GenderUnisex,
	})
	require.NoError(t, err)

	id, err := svc.Create(ctx, ReelInput{
		Src:       "https://cdn.example.com/reel.mp4",
		ProductID: productID,
		Featured:  true,
	})
	require.NoError(t, err)

	all, err := svc.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 1)

	reel := all[0]
	assert.Equal(t, id, reel.ID)
	assert.Equal(t, "Linen Shirt", reel.Title)
	assert.Equal(t, "Breathable summer wear", reel.Description)
	assert.Equal(t, "49.90", reel.Price)
	assert.True(t, reel.Featured)
}

func TestCreateReelCopyIsFrozen(t *testing.T) {
	svc, products := newTestService(t)
	ctx := context.Background()

	productID, err := products.Create(ctx, catalog.ProductInput{
		Name:     "Linen Shirt",
		Price:    49.9,
		Category: "shirts",
		Gender:   models.GenderUnisex,
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, ReelInput{Src: "https://cdn.example.com/reel.mp4", ProductID: productID})
	require.NoError(t, err)

	// Renaming the product later must not touch the reel.
	newName := "Linen Shirt v2"
	require.NoError(t, products.Update(ctx, productID, catalog.ProductUpdate{Name: &newName}))

	all, err := svc.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Linen Shirt", all[0].Title)
}

func TestCreateReelRequiresProduct(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), ReelInput{
		Src:       "https://cdn.example.com/reel.mp4",
		ProductID: "no-such-product",
	})
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestListFeaturedOnly(t *testing.T) {
	svc, products := newTestService(t)
	ctx := context.Background()

	productID, err := products.Create(ctx, catalog.ProductInput{
		Name:     "Linen Shirt",
		Price:    49.9,
		Category: "shirts",
		Gender:   models.GenderUnisex,
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, ReelInput{Src: "https://cdn.example.com/a.mp4", ProductID: productID, Featured: true})
	require.NoError(t, err)
	_, err = svc.Create(ctx, ReelInput{Src: "https://cdn.example.com/b.mp4", ProductID: productID})
	require.NoError(t, err)

	featured, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "https://cdn.example.com/a.mp4", featured[0].Src)
}
