package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type GenerateDescriptionInput struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
	Material string `json:"material"`
	Model    string `json:"model"`
}

// GenerateDescription is the handler for POST /v1/products/generate-description.
// It drafts storefront copy the operator can paste into the product form.
func (h *Handlers) GenerateDescription(c *gin.Context) {
	if h.AIService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI assistance is not configured"})
		return
	}

	var input GenerateDescriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	description, err := h.AIService.GenerateProductDescription(
		c.Request.Context(), input.Name, input.Category, input.Material, input.Model)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate description"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"description": description})
}
