package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Het4705/chic-dashboard-haven/internal/models"
	"github.com/Het4705/chic-dashboard-haven/internal/orders"
	"github.com/gin-gonic/gin"
)

// CreateOrder is the handler for POST /v1/orders.
func (h *Handlers) CreateOrder(c *gin.Context) {
	var input orders.OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Orders.Create(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Order saved", "orderId": id})
}

// GetOrders is the handler for GET /v1/orders.
func (h *Handlers) GetOrders(c *gin.Context) {
	all, err := h.Orders.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": all})
}

// GetRecentOrders is the handler for GET /v1/orders/recent.
func (h *Handlers) GetRecentOrders(c *gin.Context) {
	limit := int64(10)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	recent, err := h.Orders.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": recent})
}

// GetOrder is the handler for GET /v1/orders/:id.
func (h *Handlers) GetOrder(c *gin.Context) {
	order, err := h.Orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, orders.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// GetOrdersByUser is the handler for GET /v1/users/:id/orders.
func (h *Handlers) GetOrdersByUser(c *gin.Context) {
	found, err := h.Orders.ByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": found})
}

type UpdateOrderStatusInput struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus is the handler for PATCH /v1/orders/:id/status.
// Any status can follow any other; the confirmation dialog in the
// console is the only guard.
func (h *Handlers) UpdateOrderStatus(c *gin.Context) {
	var input UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Orders.SetStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		h.respondOrderUpdateError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
}

type UpdatePaymentStatusInput struct {
	PaymentStatus models.PaymentStatus `json:"paymentStatus" binding:"required"`
}

// UpdatePaymentStatus is the handler for PATCH /v1/orders/:id/payment-status.
func (h *Handlers) UpdatePaymentStatus(c *gin.Context) {
	var input UpdatePaymentStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Orders.SetPaymentStatus(c.Request.Context(), c.Param("id"), input.PaymentStatus)
	if err != nil {
		h.respondOrderUpdateError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment status updated"})
}

type UpdateTrackingInput struct {
	TrackingNumber string `json:"trackingNumber" binding:"required"`
}

// UpdateTracking is the handler for PATCH /v1/orders/:id/tracking.
func (h *Handlers) UpdateTracking(c *gin.Context) {
	var input UpdateTrackingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Orders.SetTracking(c.Request.Context(), c.Param("id"), input.TrackingNumber)
	if err != nil {
		h.respondOrderUpdateError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tracking number updated"})
}

// DeleteOrder is the handler for DELETE /v1/orders/:id.
func (h *Handlers) DeleteOrder(c *gin.Context) {
	if err := h.Orders.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, orders.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}

func (h *Handlers) respondOrderUpdateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, orders.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case errors.Is(err, orders.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
	}
}
