package handlers

import (
	"net/http"

	"github.com/Het4705/chic-dashboard-haven/internal/auth"
	"github.com/Het4705/chic-dashboard-haven/internal/models"
	"github.com/Het4705/chic-dashboard-haven/internal/store"
	"github.com/gin-gonic/gin"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login is the handler for POST /v1/login. It checks the operator's
// credentials against the admins collection and issues a session token.
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q := store.Query{Filters: []store.Filter{store.Eq("email", input.Email)}, Limit: 1}
	var admins []models.Admin
	if err := h.Store.Find(c.Request.Context(), store.Admins, q, &admins); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up account"})
		return
	}
	if len(admins) == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	admin := admins[0]
	password := models.Password{Hash: admin.PasswordHash}
	match, err := password.Matches(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify password"})
		return
	}
	if !match {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := auth.GenerateToken(admin.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
