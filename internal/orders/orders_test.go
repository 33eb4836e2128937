package orders

import (
	"context"
	"testing"

	"github.com/Het4705/chic-dashboard-haven/internal/models"
	"github.com/Het4705/chic-dashboard-haven/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *store.Memory) {
	t.Helper()
	db := store.NewMemory()
	return NewService(db), db
}

func sampleInput(userID string) OrderInput {
	return OrderInput{
		UserID: userID,
		Items: []models.OrderItem{
			{ProductID: "p1", Name: "Linen Shirt", Price: 49.99, Quantity: 2},
		},
		Subtotal:      99.98,
		Shipping:      5,
		Tax:           8.4,
		Total:         113.38,
		PaymentMethod: "card",
		ShippingAddress: models.Address{
			Name: "Jo Customer", AddressLine1: "1 Main St",
			City: "Springfield", State: "IL", PostalCode: "62701", Country: "US",
		},
	}
}

func TestCreateOrderStartsPending(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, sampleInput("u1"))
	require.NoError(t, err)

	order, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.Equal(t, models.PaymentPending, order.PaymentStatus)
	assert.Equal(t, 113.38, order.Total, "total is caller-supplied, not re-derived")
	assert.False(t, order.CreatedAt.IsZero())
}

func TestSetStatusHasNoTransitionGraph(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, sampleInput("u1"))
	require.NoError(t, err)

	// Forward, terminal, and backward again: all legal.
	for _, status := range []models.OrderStatus{
		models.OrderShipped,
		models.OrderDelivered,
		models.OrderPending,
		models.OrderReturned,
	} {
		require.NoError(t, svc.SetStatus(ctx, id, status))

		order, err := svc.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, status, order.Status)
	}
}

func TestSetStatusRejectsUnknownValue(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, sampleInput("u1"))
	require.NoError(t, err)

	err = svc.SetStatus(ctx, id, models.OrderStatus("misplaced"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	err = svc.SetPaymentStatus(ctx, id, models.PaymentStatus("iou"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestSetPaymentStatusIndependentOfStatus(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, sampleInput("u1"))
	require.NoError(t, err)

	require.NoError(t, svc.SetStatus(ctx, id, models.OrderCancelled))
	require.NoError(t, svc.SetPaymentStatus(ctx, id, models.PaymentRefunded))

	order, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.OrderCancelled, order.Status)
	assert.Equal(t, models.PaymentRefunded, order.PaymentStatus)
}

func TestSetStatusMissingOrder(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.SetStatus(context.Background(), "no-such-order", models.OrderShipped)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestSetTracking(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, sampleInput("u1"))
	require.NoError(t, err)

	require.NoError(t, svc.SetTracking(ctx, id, "TRK-12345"))

	order, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "TRK-12345", order.TrackingNumber)
}

func TestByUserFiltersOrders(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, sampleInput("u1"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, sampleInput("u2"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, sampleInput("u1"))
	require.NoError(t, err)

	mine, err := svc.ByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestDeleteOrder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, sampleInput("u1"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, id))

	_, err = svc.Get(ctx, id)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, id), ErrOrderNotFound)
}
