package handlers

import (
	"errors"
	"net/http"

	"github.com/Het4705/chic-dashboard-haven/internal/users"
	"github.com/gin-gonic/gin"
)

// CreateUser is the handler for POST /v1/users.
func (h *Handlers) CreateUser(c *gin.Context) {
	var input users.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Users.Create(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User saved", "userId": id})
}

// GetUsers is the handler for GET /v1/users. Supports ?email= lookup.
func (h *Handlers) GetUsers(c *gin.Context) {
	if email := c.Query("email"); email != "" {
		user, err := h.Users.GetByEmail(c.Request.Context(), email)
		if err != nil {
			if errors.Is(err, users.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
		return
	}

	all, err := h.Users.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": all})
}

// GetUser is the handler for GET /v1/users/:id.
func (h *Handlers) GetUser(c *gin.Context) {
	user, err := h.Users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateUser is the handler for PUT /v1/users/:id.
func (h *Handlers) UpdateUser(c *gin.Context) {
	var input users.UserUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Users.Update(c.Request.Context(), c.Param("id"), input); err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}

// AddUserAddress is the handler for POST /v1/users/:id/addresses.
func (h *Handlers) AddUserAddress(c *gin.Context) {
	var input users.AddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	addressID, err := h.Users.AddAddress(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add address"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Address added", "addressId": addressID})
}

// ToggleFavorite is the handler for POST /v1/users/:id/favorites/:productId.
func (h *Handlers) ToggleFavorite(c *gin.Context) {
	favorited, err := h.Users.ToggleFavorite(c.Request.Context(), c.Param("id"), c.Param("productId"))
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorited": favorited})
}

// DeleteUser is the handler for DELETE /v1/users/:id.
func (h *Handlers) DeleteUser(c *gin.Context) {
	if err := h.Users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
