package models

import "time"

// OrderStatus is the fulfilment state of an order. There is no enforced
// transition graph: an operator may set any status from any other.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
	OrderReturned   OrderStatus = "returned"
)

// OrderStatuses lists every status in declaration order. The dashboard
// reports counts in exactly this order.
var OrderStatuses = []OrderStatus{
	OrderPending,
	OrderProcessing,
	OrderShipped,
	OrderDelivered,
	OrderCancelled,
	OrderReturned,
}

func (s OrderStatus) IsValid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// PaymentStatus is the payment state of an order, likewise unconstrained.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

var PaymentStatuses = []PaymentStatus{
	PaymentPending,
	PaymentPaid,
	PaymentFailed,
	PaymentRefunded,
}

func (s PaymentStatus) IsValid() bool {
	for _, known := range PaymentStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// OrderItem is one line of an order, with the price at purchase time.
type OrderItem struct {
	ProductID string  `json:"productId" bson:"productId"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

// Order is a document in the 'orders' collection. Totals are
// caller-supplied; the system does not re-derive total from the items.
type Order struct {
	ID     string      `json:"id" bson:"_id,omitempty"`
	UserID string      `json:"userId" bson:"userId"`
	Items  []OrderItem `json:"items" bson:"items"`

	Subtotal float64 `json:"subtotal" bson:"subtotal"`
	Shipping float64 `json:"shipping" bson:"shipping"`
	Tax      float64 `json:"tax" bson:"tax"`
	Total    float64 `json:"total" bson:"total"`

	Status        OrderStatus   `json:"status" bson:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus" bson:"paymentStatus"`
	PaymentMethod string        `json:"paymentMethod" bson:"paymentMethod"`

	ShippingAddress Address  `json:"shippingAddress" bson:"shippingAddress"`
	BillingAddress  *Address `json:"billingAddress,omitempty" bson:"billingAddress,omitempty"`
	TrackingNumber  string   `json:"trackingNumber,omitempty" bson:"trackingNumber,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
