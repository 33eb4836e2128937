// Package orders is the typed repository over the 'orders' collection,
// including the status and payment-status workflow.
package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/Het4705/chic-dashboard-haven/internal/models"
	"github.com/Het4705/chic-dashboard-haven/internal/store"
)

var (
	// ErrOrderNotFound is returned when an order id does not exist.
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidStatus is returned for a value outside the enumerated set.
	ErrInvalidStatus = errors.New("invalid status value")
)

// Service is the order repository.
type Service struct {
	db store.Store
}

func NewService(db store.Store) *Service {
	return &Service{db: db}
}

// OrderInput is the payload for creating an order. Subtotal, shipping,
// tax and total are caller-supplied and trusted; the system does not
// re-derive the total from the items.
type OrderInput struct {
	UserID          string             `json:"userId" binding:"required"`
	Items           []models.OrderItem `json:"items" binding:"required,min=1"`
	Subtotal        float64            `json:"subtotal" binding:"gte=0"`
	Shipping        float64            `json:"shipping" binding:"gte=0"`
	Tax             float64            `json:"tax" binding:"gte=0"`
	Total           float64            `json:"total" binding:"gte=0"`
	PaymentMethod   string             `json:"paymentMethod"`
	ShippingAddress models.Address     `json:"shippingAddress"`
	BillingAddress  *models.Address    `json:"billingAddress,omitempty"`
}

// Create inserts a new order in the initial pending/pending state.
func (s *Service) Create(ctx context.Context, in OrderInput) (string, error) {
	order := models.Order{
		UserID:          in.UserID,
		Items:           in.Items,
		Subtotal:        in.Subtotal,
		Shipping:        in.Shipping,
		Tax:             in.Tax,
		Total:           in.Total,
		Status:          models.OrderPending,
		PaymentStatus:   models.PaymentPending,
		PaymentMethod:   in.PaymentMethod,
		ShippingAddress: in.ShippingAddress,
		BillingAddress:  in.BillingAddress,
	}

	id, err := s.db.Create(ctx, store.Orders, order)
	if err != nil {
		return "", fmt.Errorf("failed to create order: %w", err)
	}
	return id, nil
}

// SetStatus moves the order to any member of the status set. There is
// deliberately no transition graph: delivered -> pending is as legal as
// pending -> processing, and confirming the change is the operator's
// job, not the data layer's.
func (s *Service) SetStatus(ctx context.Context, id string, status models.OrderStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.update(ctx, id, map[string]interface{}{"status": status})
}

// SetPaymentStatus moves the payment status, likewise unconstrained.
func (s *Service) SetPaymentStatus(ctx context.Context, id string, status models.PaymentStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.update(ctx, id, map[string]interface{}{"paymentStatus": status})
}

// SetTracking records the carrier tracking number.
func (s *Service) SetTracking(ctx context.Context, id, trackingNumber string) error {
	return s.update(ctx, id, map[string]interface{}{"trackingNumber": trackingNumber})
}

func (s *Service) update(ctx context.Context, id string, fields map[string]interface{}) error {
	if err := s.db.Update(ctx, store.Orders, id, fields); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to update order: %w", err)
	}
	return nil
}

// Get returns one order by id.
func (s *Service) Get(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := s.db.Get(ctx, store.Orders, id, &order); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// List returns every order.
func (s *Service) List(ctx context.Context) ([]models.Order, error) {
	var all []models.Order
	if err := s.db.Find(ctx, store.Orders, store.Query{}, &all); err != nil {
		return nil, err
	}
	return all, nil
}

// Recent returns the newest orders, most recent first.
func (s *Service) Recent(ctx context.Context, limit int64) ([]models.Order, error) {
	q := store.Query{Sort: store.Desc("createdAt"), Limit: limit}
	var recent []models.Order
	if err := s.db.Find(ctx, store.Orders, q, &recent); err != nil {
		return nil, err
	}
	return recent, nil
}

// ByUser returns every order placed by one user.
func (s *Service) ByUser(ctx context.Context, userID string) ([]models.Order, error) {
	q := store.Query{Filters: []store.Filter{store.Eq("userId", userID)}}
	var found []models.Order
	if err := s.db.Find(ctx, store.Orders, q, &found); err != nil {
		return nil, err
	}
	return found, nil
}

// Delete removes an order. Orders own no media, so there is no cleanup.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.db.Delete(ctx, store.Orders, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}
