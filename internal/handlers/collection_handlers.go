package handlers

import (
	"errors"
	"net/http"

	"github.com/Het4705/chic-dashboard-haven/internal/catalog"
	"github.com/gin-gonic/gin"
)

// CreateCollection is the handler for POST /v1/collections.
func (h *Handlers) CreateCollection(c *gin.Context) {
	var input catalog.CollectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Collections.Create(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create collection"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Collection saved", "collectionId": id})
}

// GetCollections is the handler for GET /v1/collections.
func (h *Handlers) GetCollections(c *gin.Context) {
	collections, err := h.Collections.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"collections": collections})
}

// GetCollection is the handler for GET /v1/collections/:id.
func (h *Handlers) GetCollection(c *gin.Context) {
	collection, err := h.Collections.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrCollectionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"collection": collection})
}

// UpdateCollection is the handler for PUT /v1/collections/:id.
func (h *Handlers) UpdateCollection(c *gin.Context) {
	var input catalog.CollectionUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Collections.Update(c.Request.Context(), c.Param("id"), input); err != nil {
		if errors.Is(err, catalog.ErrCollectionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update collection"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Collection updated successfully"})
}

// DeleteCollection is the handler for DELETE /v1/collections/:id.
func (h *Handlers) DeleteCollection(c *gin.Context) {
	if err := h.Collections.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, catalog.ErrCollectionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete collection"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Collection deleted successfully"})
}
