package handlers

import (
	"errors"
	"net/http"

	"github.com/Het4705/chic-dashboard-haven/internal/catalog"
	"github.com/Het4705/chic-dashboard-haven/internal/reels"
	"github.com/gin-gonic/gin"
)

// CreateReel is the handler for POST /v1/reels.
func (h *Handlers) CreateReel(c *gin.Context) {
	var input reels.ReelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Reels.Create(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Linked product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reel"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Reel saved", "reelId": id})
}

// GetReels is the handler for GET /v1/reels. Supports ?featured=true.
func (h *Handlers) GetReels(c *gin.Context) {
	all, err := h.Reels.List(c.Request.Context(), c.Query("featured") == "true")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reels": all})
}
