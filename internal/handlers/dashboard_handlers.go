package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetDashboard returns the summary counters and time-bucketed series
// for the console's landing page.
// GET /v1/dashboard
func (h *Handlers) GetDashboard(c *gin.Context) {
	data, err := h.Analytics.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, data)
}
