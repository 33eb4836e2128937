package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Het4705/chic-dashboard-haven/internal/catalog"
	"github.com/gin-gonic/gin"
)

// CreateProduct is the handler for POST /v1/products.
func (h *Handlers) CreateProduct(c *gin.Context) {
	var input catalog.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Products.Create(c.Request.Context(), input)
	if err != nil {
		// The product may already exist when only the collection count
		// update failed; surface the error either way.
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "productId": id})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Product saved", "productId": id})
}

// GetProducts is the handler for GET /v1/products.
// Supports ?category= and ?featured=true filters.
func (h *Handlers) GetProducts(c *gin.Context) {
	if c.Query("featured") == "true" {
		products, err := h.Products.Featured(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
		return
	}

	products, err := h.Products.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetTopProducts is the handler for GET /v1/products/top.
func (h *Handlers) GetTopProducts(c *gin.Context) {
	limit := int64(5)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	products, err := h.Products.Top(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct is the handler for GET /v1/products/:id.
func (h *Handlers) GetProduct(c *gin.Context) {
	product, err := h.Products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// UpdateProduct is the handler for PUT /v1/products/:id.
func (h *Handlers) UpdateProduct(c *gin.Context) {
	var input catalog.ProductUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Products.Update(c.Request.Context(), c.Param("id"), input); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

// DeleteProduct is the handler for DELETE /v1/products/:id.
func (h *Handlers) DeleteProduct(c *gin.Context) {
	if err := h.Products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
